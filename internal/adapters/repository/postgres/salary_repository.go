package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/salary"
	pgdb "github.com/ogurasousui/codex-hr-clean-arch/internal/platform/db/postgres"
)

const salaryColumns = `id, employee_id, base_amount, bonus, gross_amount, tax_deductions, net_amount, payment_frequency,
               effective_date, previous_salary_id, adjustment_type, notes, created_at, updated_at`

// SalaryRepository は PostgreSQL を利用した給与レコード永続化の実装です。
// 読み出したレコードには salary.Normalize を適用し、派生金額を常に再計算します。
type SalaryRepository struct {
	pool pgdb.Queryer
}

// NewSalaryRepository は SalaryRepository を生成します。
func NewSalaryRepository(pool pgdb.Queryer) *SalaryRepository {
	return &SalaryRepository{pool: pool}
}

// Create は給与レコードを作成します。
func (r *SalaryRepository) Create(ctx context.Context, s *salary.Salary) (*salary.Salary, error) {
	record := salary.Normalize(s)

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO salaries (employee_id, base_amount, bonus, gross_amount, tax_deductions, net_amount, payment_frequency,
                              effective_date, previous_salary_id, adjustment_type, notes, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING `+salaryColumns+`
    `,
		record.EmployeeID,
		record.BaseAmount,
		record.Bonus,
		record.GrossAmount,
		record.TaxDeductions,
		record.NetAmount,
		string(record.PaymentFrequency),
		dateOnly(record.EffectiveDate),
		nullableInt64(record.PreviousSalaryID),
		nullableAdjustment(record.AdjustmentType),
		nullableString(record.Notes),
		record.CreatedAt,
		record.UpdatedAt,
	)

	created, err := scanSalary(row)
	if err != nil {
		return nil, translateSalaryPgError(err)
	}
	return created, nil
}

// Update は給与レコードを更新します。
func (r *SalaryRepository) Update(ctx context.Context, s *salary.Salary) (*salary.Salary, error) {
	record := salary.Normalize(s)

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE salaries
           SET base_amount = $1,
               bonus = $2,
               gross_amount = $3,
               tax_deductions = $4,
               net_amount = $5,
               payment_frequency = $6,
               effective_date = $7,
               adjustment_type = $8,
               notes = $9,
               updated_at = $10
         WHERE id = $11
        RETURNING `+salaryColumns+`
    `,
		record.BaseAmount,
		record.Bonus,
		record.GrossAmount,
		record.TaxDeductions,
		record.NetAmount,
		string(record.PaymentFrequency),
		dateOnly(record.EffectiveDate),
		nullableAdjustment(record.AdjustmentType),
		nullableString(record.Notes),
		record.UpdatedAt,
		record.ID,
	)

	updated, err := scanSalary(row)
	if err != nil {
		return nil, translateSalaryPgError(err)
	}
	return updated, nil
}

// Delete は給与レコードを削除します。
func (r *SalaryRepository) Delete(ctx context.Context, id int64) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM salaries WHERE id = $1`, id)
	if err != nil {
		return translateSalaryPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrSalaryNotFound
	}
	return nil
}

// FindByID は ID で給与レコードを取得します。
func (r *SalaryRepository) FindByID(ctx context.Context, id int64) (*salary.Salary, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+salaryColumns+`
          FROM salaries
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanSalary(row)
	if err != nil {
		return nil, translateSalaryPgError(err)
	}
	return found, nil
}

// ListByEmployee は社員の給与履歴を適用日の新しい順に取得します。
func (r *SalaryRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]*salary.Salary, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+salaryColumns+`
          FROM salaries
         WHERE employee_id = $1
         ORDER BY effective_date DESC, id DESC
    `, employeeID)
	if err != nil {
		return nil, translateSalaryPgError(err)
	}
	defer rows.Close()

	var history []*salary.Salary
	for rows.Next() {
		found, err := scanSalary(rows)
		if err != nil {
			return nil, translateSalaryPgError(err)
		}
		history = append(history, found)
	}

	if err := rows.Err(); err != nil {
		return nil, translateSalaryPgError(err)
	}
	return history, nil
}

// List は給与レコードの一覧を取得します。
func (r *SalaryRepository) List(ctx context.Context, filter salary.ListSalariesFilter) ([]*salary.Salary, string, error) {
	if filter.Limit <= 0 {
		return nil, "", salary.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", salary.ErrInvalidPageToken
	}

	var (
		p          placeholders
		conditions []string
	)
	if filter.EmployeeID != nil {
		conditions = append(conditions, "employee_id = "+p.add(*filter.EmployeeID))
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		ph := p.add("%" + term + "%")
		conditions = append(conditions, "(payment_frequency ILIKE "+ph+" OR adjustment_type ILIKE "+ph+" OR notes ILIKE "+ph+")")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limitPlaceholder := p.add(filter.Limit + 1)
	offsetPlaceholder := p.add(filter.Offset)

	query := `
        SELECT ` + salaryColumns + `
          FROM salaries` + whereClause + `
         ORDER BY effective_date DESC, id DESC
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, p.args...)
	if err != nil {
		return nil, "", translateSalaryPgError(err)
	}
	defer rows.Close()

	salaries := make([]*salary.Salary, 0, filter.Limit)
	for rows.Next() {
		found, err := scanSalary(rows)
		if err != nil {
			return nil, "", translateSalaryPgError(err)
		}
		salaries = append(salaries, found)
	}

	if err := rows.Err(); err != nil {
		return nil, "", translateSalaryPgError(err)
	}

	nextToken := nextPageToken(len(salaries), filter.Limit, filter.Offset)
	if nextToken != "" {
		salaries = salaries[:filter.Limit]
	}

	return salaries, nextToken, nil
}

// scanSalary は保存済みの派生金額を読み捨て、基本給と賞与から再計算します。
func scanSalary(row pgx.Row) (*salary.Salary, error) {
	var (
		id                   int64
		employeeID           int64
		baseAmount           float64
		bonus                float64
		grossAmount          float64
		taxDeductions        float64
		netAmount            float64
		paymentFrequency     string
		effectiveDate        time.Time
		previousSalaryID     sql.NullInt64
		adjustmentType       sql.NullString
		notes                sql.NullString
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(
		&id,
		&employeeID,
		&baseAmount,
		&bonus,
		&grossAmount,
		&taxDeductions,
		&netAmount,
		&paymentFrequency,
		&effectiveDate,
		&previousSalaryID,
		&adjustmentType,
		&notes,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, salary.ErrSalaryNotFound
		}
		return nil, err
	}

	var adjustment *salary.AdjustmentType
	if adjustmentType.Valid {
		a := salary.AdjustmentType(adjustmentType.String)
		adjustment = &a
	}

	return salary.Normalize(&salary.Salary{
		ID:               id,
		EmployeeID:       employeeID,
		BaseAmount:       baseAmount,
		Bonus:            bonus,
		GrossAmount:      grossAmount,
		TaxDeductions:    taxDeductions,
		NetAmount:        netAmount,
		PaymentFrequency: salary.PaymentFrequency(paymentFrequency),
		EffectiveDate:    dateOnly(effectiveDate),
		PreviousSalaryID: int64Ptr(previousSalaryID),
		AdjustmentType:   adjustment,
		Notes:            stringPtr(notes),
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}), nil
}

func nullableAdjustment(value *salary.AdjustmentType) any {
	if value == nil {
		return nil
	}
	return string(*value)
}

func translateSalaryPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return salary.ErrSalaryNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolationCode:
			if pgErr.ConstraintName == "salaries_previous_salary_id_fkey" {
				return salary.ErrSalaryNotFound
			}
			return salary.ErrEmployeeNotFound
		case checkViolationCode:
			switch pgErr.ConstraintName {
			case "salaries_bonus_check":
				return salary.ErrInvalidBonus
			case "salaries_payment_frequency_check":
				return salary.ErrInvalidPaymentFrequency
			default:
				return salary.ErrInvalidBaseAmount
			}
		}
	}
	return err
}

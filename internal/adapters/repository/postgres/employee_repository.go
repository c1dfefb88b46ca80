package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/employee"
	pgdb "github.com/ogurasousui/codex-hr-clean-arch/internal/platform/db/postgres"
)

const employeeColumns = `id, name, email, department_id, phone_number, address, date_of_birth, position, hire_date,
               emergency_contact, emergency_contact_phone, employment_type, status, created_at, updated_at`

// EmployeeRepository は PostgreSQL を利用した社員永続化の実装です。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// Create は社員を新規作成します。
func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO employees (name, email, department_id, phone_number, address, date_of_birth, position, hire_date,
                               emergency_contact, emergency_contact_phone, employment_type, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING `+employeeColumns+`
    `,
		e.Name,
		e.Email,
		e.DepartmentID,
		nullableString(e.PhoneNumber),
		nullableString(e.Address),
		nullableDate(e.DateOfBirth),
		nullableString(e.Position),
		nullableDate(e.HireDate),
		nullableString(e.EmergencyContact),
		nullableString(e.EmergencyContactPhone),
		string(e.EmploymentType),
		string(e.Status),
		e.CreatedAt,
		e.UpdatedAt,
	)

	created, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return created, nil
}

// Update は社員情報を更新します。
func (r *EmployeeRepository) Update(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE employees
           SET name = $1,
               email = $2,
               department_id = $3,
               phone_number = $4,
               address = $5,
               date_of_birth = $6,
               position = $7,
               hire_date = $8,
               emergency_contact = $9,
               emergency_contact_phone = $10,
               employment_type = $11,
               status = $12,
               updated_at = $13
         WHERE id = $14
        RETURNING `+employeeColumns+`
    `,
		e.Name,
		e.Email,
		e.DepartmentID,
		nullableString(e.PhoneNumber),
		nullableString(e.Address),
		nullableDate(e.DateOfBirth),
		nullableString(e.Position),
		nullableDate(e.HireDate),
		nullableString(e.EmergencyContact),
		nullableString(e.EmergencyContactPhone),
		string(e.EmploymentType),
		string(e.Status),
		e.UpdatedAt,
		e.ID,
	)

	updated, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return updated, nil
}

// Delete は社員を削除します。給与レコードは外部キーによりカスケード削除されます。
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return translateEmployeePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// FindByID は ID で社員を取得します。
func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+employeeColumns+`
          FROM employees
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return found, nil
}

// FindByEmail はメールアドレスで社員を取得します。
func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+employeeColumns+`
          FROM employees
         WHERE email = $1
         LIMIT 1
    `, email)

	found, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return found, nil
}

// List は社員の一覧を取得します。
func (r *EmployeeRepository) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]*employee.Employee, string, error) {
	if filter.Limit <= 0 {
		return nil, "", employee.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", employee.ErrInvalidPageToken
	}

	var (
		p          placeholders
		conditions []string
	)

	if filter.DepartmentID != nil {
		conditions = append(conditions, "department_id = "+p.add(*filter.DepartmentID))
	}
	if filter.Status != nil {
		conditions = append(conditions, "status = "+p.add(string(*filter.Status)))
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		ph := p.add("%" + term + "%")
		conditions = append(conditions, "(name ILIKE "+ph+" OR email ILIKE "+ph+" OR position ILIKE "+ph+")")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limitPlaceholder := p.add(filter.Limit + 1)
	offsetPlaceholder := p.add(filter.Offset)

	query := `
        SELECT ` + employeeColumns + `
          FROM employees` + whereClause + `
         ORDER BY id ASC
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, p.args...)
	if err != nil {
		return nil, "", translateEmployeePgError(err)
	}
	defer rows.Close()

	employees := make([]*employee.Employee, 0, filter.Limit)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, "", translateEmployeePgError(err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, "", translateEmployeePgError(err)
	}

	nextToken := nextPageToken(len(employees), filter.Limit, filter.Offset)
	if nextToken != "" {
		employees = employees[:filter.Limit]
	}

	return employees, nextToken, nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		id                    int64
		name                  string
		email                 string
		departmentID          int64
		phoneNumber           sql.NullString
		address               sql.NullString
		dateOfBirth           sql.NullTime
		position              sql.NullString
		hireDate              sql.NullTime
		emergencyContact      sql.NullString
		emergencyContactPhone sql.NullString
		employmentType        string
		status                string
		createdAt             time.Time
		updatedAt             time.Time
	)

	if err := row.Scan(
		&id,
		&name,
		&email,
		&departmentID,
		&phoneNumber,
		&address,
		&dateOfBirth,
		&position,
		&hireDate,
		&emergencyContact,
		&emergencyContactPhone,
		&employmentType,
		&status,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}

	return &employee.Employee{
		ID:                    id,
		Name:                  name,
		Email:                 email,
		DepartmentID:          departmentID,
		PhoneNumber:           stringPtr(phoneNumber),
		Address:               stringPtr(address),
		DateOfBirth:           datePtr(dateOfBirth),
		Position:              stringPtr(position),
		HireDate:              datePtr(hireDate),
		EmergencyContact:      stringPtr(emergencyContact),
		EmergencyContactPhone: stringPtr(emergencyContactPhone),
		EmploymentType:        employee.EmploymentType(employmentType),
		Status:                employee.Status(status),
		CreatedAt:             createdAt,
		UpdatedAt:             updatedAt,
	}, nil
}

func translateEmployeePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return employee.ErrEmailAlreadyExists
		case foreignKeyViolationCode:
			if pgErr.ConstraintName == "employees_department_id_fkey" {
				return employee.ErrDepartmentNotFound
			}
			return err
		case checkViolationCode:
			if pgErr.ConstraintName == "employees_date_of_birth_check" {
				return employee.ErrInvalidDateOfBirth
			}
			return err
		}
	}

	return err
}

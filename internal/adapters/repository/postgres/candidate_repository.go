package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/candidate"
	pgdb "github.com/ogurasousui/codex-hr-clean-arch/internal/platform/db/postgres"
)

const candidateColumns = `id, name, email, phone, applied_position, applied_department_id, resume, status, application_date, created_at, updated_at`

// CandidateRepository は PostgreSQL を利用した応募者永続化の実装です。
type CandidateRepository struct {
	pool pgdb.Queryer
}

// NewCandidateRepository は CandidateRepository を生成します。
func NewCandidateRepository(pool pgdb.Queryer) *CandidateRepository {
	return &CandidateRepository{pool: pool}
}

// Create は応募者を登録します。
func (r *CandidateRepository) Create(ctx context.Context, c *candidate.Candidate) (*candidate.Candidate, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO candidates (name, email, phone, applied_position, applied_department_id, resume, status, application_date, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING `+candidateColumns+`
    `,
		c.Name,
		c.Email,
		c.Phone,
		c.AppliedPosition,
		nullableInt64(c.AppliedDepartmentID),
		nullableString(c.Resume),
		string(c.Status),
		c.ApplicationDate,
		c.CreatedAt,
		c.UpdatedAt,
	)

	created, err := scanCandidate(row)
	if err != nil {
		return nil, translateCandidatePgError(err)
	}
	return created, nil
}

// Update は応募者情報を更新します。
func (r *CandidateRepository) Update(ctx context.Context, c *candidate.Candidate) (*candidate.Candidate, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE candidates
           SET name = $1,
               email = $2,
               phone = $3,
               applied_position = $4,
               applied_department_id = $5,
               resume = $6,
               status = $7,
               updated_at = $8
         WHERE id = $9
        RETURNING `+candidateColumns+`
    `,
		c.Name,
		c.Email,
		c.Phone,
		c.AppliedPosition,
		nullableInt64(c.AppliedDepartmentID),
		nullableString(c.Resume),
		string(c.Status),
		c.UpdatedAt,
		c.ID,
	)

	updated, err := scanCandidate(row)
	if err != nil {
		return nil, translateCandidatePgError(err)
	}
	return updated, nil
}

// UpdateStatus は選考状態のみを更新します。
func (r *CandidateRepository) UpdateStatus(ctx context.Context, id int64, status candidate.Status) (*candidate.Candidate, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE candidates
           SET status = $1,
               updated_at = NOW()
         WHERE id = $2
        RETURNING `+candidateColumns+`
    `, string(status), id)

	updated, err := scanCandidate(row)
	if err != nil {
		return nil, translateCandidatePgError(err)
	}
	return updated, nil
}

// Delete は応募者を削除します。
func (r *CandidateRepository) Delete(ctx context.Context, id int64) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return translateCandidatePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return candidate.ErrCandidateNotFound
	}
	return nil
}

// FindByID は ID で応募者を取得します。
func (r *CandidateRepository) FindByID(ctx context.Context, id int64) (*candidate.Candidate, error) {
	return r.findByID(ctx, id, "")
}

// FindByIDForUpdate は SELECT ... FOR UPDATE で応募者を取得します。
// 選考状態の遷移チェックと更新の間に他のトランザクションが割り込まないようにします。
func (r *CandidateRepository) FindByIDForUpdate(ctx context.Context, id int64) (*candidate.Candidate, error) {
	return r.findByID(ctx, id, " FOR UPDATE")
}

func (r *CandidateRepository) findByID(ctx context.Context, id int64, lock string) (*candidate.Candidate, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+candidateColumns+`
          FROM candidates
         WHERE id = $1
         LIMIT 1`+lock+`
    `, id)

	found, err := scanCandidate(row)
	if err != nil {
		return nil, translateCandidatePgError(err)
	}
	return found, nil
}

// List は応募者の一覧を取得します。
func (r *CandidateRepository) List(ctx context.Context, filter candidate.ListCandidatesFilter) ([]*candidate.Candidate, string, error) {
	if filter.Limit <= 0 {
		return nil, "", candidate.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", candidate.ErrInvalidPageToken
	}

	var (
		p          placeholders
		conditions []string
	)

	if filter.DepartmentID != nil {
		conditions = append(conditions, "applied_department_id = "+p.add(*filter.DepartmentID))
	}
	if filter.Status != nil {
		conditions = append(conditions, "status = "+p.add(string(*filter.Status)))
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		ph := p.add("%" + term + "%")
		conditions = append(conditions, "(name ILIKE "+ph+" OR applied_position ILIKE "+ph+" OR email ILIKE "+ph+")")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limitPlaceholder := p.add(filter.Limit + 1)
	offsetPlaceholder := p.add(filter.Offset)

	query := `
        SELECT ` + candidateColumns + `
          FROM candidates` + whereClause + `
         ORDER BY application_date DESC, id DESC
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, p.args...)
	if err != nil {
		return nil, "", translateCandidatePgError(err)
	}
	defer rows.Close()

	candidates := make([]*candidate.Candidate, 0, filter.Limit)
	for rows.Next() {
		found, err := scanCandidate(rows)
		if err != nil {
			return nil, "", translateCandidatePgError(err)
		}
		candidates = append(candidates, found)
	}

	if err := rows.Err(); err != nil {
		return nil, "", translateCandidatePgError(err)
	}

	nextToken := nextPageToken(len(candidates), filter.Limit, filter.Offset)
	if nextToken != "" {
		candidates = candidates[:filter.Limit]
	}

	return candidates, nextToken, nil
}

func scanCandidate(row pgx.Row) (*candidate.Candidate, error) {
	var (
		id                   int64
		name                 string
		email                string
		phone                string
		appliedPosition      string
		appliedDepartmentID  sql.NullInt64
		resume               sql.NullString
		status               string
		applicationDate      time.Time
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(
		&id,
		&name,
		&email,
		&phone,
		&appliedPosition,
		&appliedDepartmentID,
		&resume,
		&status,
		&applicationDate,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, candidate.ErrCandidateNotFound
		}
		return nil, err
	}

	return &candidate.Candidate{
		ID:                  id,
		Name:                name,
		Email:               email,
		Phone:               phone,
		AppliedPosition:     appliedPosition,
		AppliedDepartmentID: int64Ptr(appliedDepartmentID),
		Resume:              stringPtr(resume),
		Status:              candidate.Status(status),
		ApplicationDate:     applicationDate,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}, nil
}

func translateCandidatePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return candidate.ErrCandidateNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolationCode:
			return candidate.ErrDepartmentNotFound
		case checkViolationCode:
			return candidate.ErrInvalidStatus
		}
	}
	return err
}

package employee

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

const (
	defaultListPageSize = 50
	maxListPageSize     = 200
)

// Service は社員に関するユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
}

// UseCase は社員ユースケースの公開インターフェースです。
type UseCase interface {
	CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error)
	GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error)
	ListEmployees(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error)
	UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error)
	TerminateEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error)
	ReactivateEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error)
	DeleteEmployee(ctx context.Context, in DeleteEmployeeInput) error
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, clock: clock, tx: tx}
}

// CreateEmployeeInput は社員作成時の入力です。
type CreateEmployeeInput struct {
	Name                  string
	Email                 string
	DepartmentID          int64
	PhoneNumber           *string
	Address               *string
	DateOfBirth           *time.Time
	Position              *string
	HireDate              *time.Time
	EmergencyContact      *string
	EmergencyContactPhone *string
	EmploymentType        *EmploymentType
	Status                *Status
}

// UpdateEmployeeInput は社員更新時の入力です。*Set が true の日付項目は nil で消去します。
type UpdateEmployeeInput struct {
	ID                    int64
	Name                  *string
	Email                 *string
	DepartmentID          *int64
	PhoneNumber           *string
	Address               *string
	DateOfBirth           *time.Time
	DateOfBirthSet        bool
	Position              *string
	HireDate              *time.Time
	HireDateSet           bool
	EmergencyContact      *string
	EmergencyContactPhone *string
	EmploymentType        *EmploymentType
	Status                *Status
}

// DeleteEmployeeInput は社員削除時の入力です。
type DeleteEmployeeInput struct {
	ID int64
}

// GetEmployeeInput は社員取得時の入力です。
type GetEmployeeInput struct {
	ID int64
}

// ListEmployeesInput は一覧取得時の入力です。
type ListEmployeesInput struct {
	DepartmentID *int64
	Status       *Status
	Search       string
	PageSize     int
	PageToken    string
}

// ListEmployeesResult は一覧取得結果を表します。
type ListEmployeesResult struct {
	Employees     []*Employee
	NextPageToken string
}

// CreateEmployee は新しい社員を作成します。
func (s *Service) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}

	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}

	if in.DepartmentID <= 0 {
		return nil, ErrInvalidDepartmentID
	}

	employmentType := EmploymentFullTime
	if in.EmploymentType != nil {
		if !IsValidEmploymentType(*in.EmploymentType) {
			return nil, ErrInvalidEmploymentType
		}
		employmentType = *in.EmploymentType
	}

	status := StatusActive
	if in.Status != nil {
		if !IsValidStatus(*in.Status) {
			return nil, ErrInvalidStatus
		}
		status = *in.Status
	}

	dob := normalizeDate(in.DateOfBirth)
	hireDate := normalizeDate(in.HireDate)
	if err := validateDates(dob, hireDate); err != nil {
		return nil, err
	}

	var created *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := s.ensureEmailNotExists(txCtx, email, 0); err != nil {
			return err
		}

		now := s.clock.Now()
		emp := &Employee{
			Name:                  name,
			Email:                 email,
			DepartmentID:          in.DepartmentID,
			PhoneNumber:           normalizeOptional(in.PhoneNumber),
			Address:               normalizeOptional(in.Address),
			DateOfBirth:           dob,
			Position:              normalizeOptional(in.Position),
			HireDate:              hireDate,
			EmergencyContact:      normalizeOptional(in.EmergencyContact),
			EmergencyContactPhone: normalizeOptional(in.EmergencyContactPhone),
			EmploymentType:        employmentType,
			Status:                status,
			CreatedAt:             now,
			UpdatedAt:             now,
		}

		result, err := s.repo.Create(txCtx, emp)
		if err != nil {
			return err
		}

		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateEmployee は社員情報を更新します。
func (s *Service) UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error) {
	if in.ID <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var updated *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		if in.Name != nil {
			name, err := normalizeName(*in.Name)
			if err != nil {
				return err
			}
			existing.Name = name
		}

		if in.Email != nil {
			email, err := normalizeEmail(*in.Email)
			if err != nil {
				return err
			}
			if email != existing.Email {
				if err := s.ensureEmailNotExists(txCtx, email, existing.ID); err != nil {
					return err
				}
				existing.Email = email
			}
		}

		if in.DepartmentID != nil {
			if *in.DepartmentID <= 0 {
				return ErrInvalidDepartmentID
			}
			existing.DepartmentID = *in.DepartmentID
		}

		if in.PhoneNumber != nil {
			existing.PhoneNumber = normalizeOptional(in.PhoneNumber)
		}
		if in.Address != nil {
			existing.Address = normalizeOptional(in.Address)
		}
		if in.Position != nil {
			existing.Position = normalizeOptional(in.Position)
		}
		if in.EmergencyContact != nil {
			existing.EmergencyContact = normalizeOptional(in.EmergencyContact)
		}
		if in.EmergencyContactPhone != nil {
			existing.EmergencyContactPhone = normalizeOptional(in.EmergencyContactPhone)
		}

		if in.DateOfBirthSet {
			existing.DateOfBirth = normalizeDate(in.DateOfBirth)
		}
		if in.HireDateSet {
			existing.HireDate = normalizeDate(in.HireDate)
		}
		if err := validateDates(existing.DateOfBirth, existing.HireDate); err != nil {
			return err
		}

		if in.EmploymentType != nil {
			if !IsValidEmploymentType(*in.EmploymentType) {
				return ErrInvalidEmploymentType
			}
			existing.EmploymentType = *in.EmploymentType
		}

		if in.Status != nil {
			if !IsValidStatus(*in.Status) {
				return ErrInvalidStatus
			}
			existing.Status = *in.Status
		}

		existing.UpdatedAt = s.clock.Now()

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// TerminateEmployee は社員を退職状態にします。
func (s *Service) TerminateEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error) {
	return s.changeStatus(ctx, in.ID, func(current Status) (Status, error) {
		if current == StatusTerminated {
			return "", ErrAlreadyTerminated
		}
		return StatusTerminated, nil
	})
}

// ReactivateEmployee は退職済みの社員を在籍状態に戻します。
func (s *Service) ReactivateEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error) {
	return s.changeStatus(ctx, in.ID, func(current Status) (Status, error) {
		if current != StatusTerminated {
			return "", ErrNotTerminated
		}
		return StatusActive, nil
	})
}

func (s *Service) changeStatus(ctx context.Context, id int64, next func(Status) (Status, error)) (*Employee, error) {
	if id <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var updated *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}

		status, err := next(existing.Status)
		if err != nil {
			return err
		}
		existing.Status = status
		existing.UpdatedAt = s.clock.Now()

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}
		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteEmployee は社員を削除します。
func (s *Service) DeleteEmployee(ctx context.Context, in DeleteEmployeeInput) error {
	if in.ID <= 0 {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}

	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, in.ID)
	})
}

// GetEmployee は社員を取得します。
func (s *Service) GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error) {
	if in.ID <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// ListEmployees は社員の一覧を取得します。
func (s *Service) ListEmployees(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error) {
	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}

	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	if in.DepartmentID != nil && *in.DepartmentID <= 0 {
		return nil, ErrInvalidDepartmentID
	}

	var statusPtr *Status
	if in.Status != nil {
		if !IsValidStatus(*in.Status) {
			return nil, ErrInvalidStatus
		}
		status := *in.Status
		statusPtr = &status
	}

	var (
		employees []*Employee
		nextToken string
	)

	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		resultEmployees, token, err := s.repo.List(txCtx, ListEmployeesFilter{
			DepartmentID: in.DepartmentID,
			Status:       statusPtr,
			Search:       strings.TrimSpace(in.Search),
			Limit:        limit,
			Offset:       offset,
		})
		if err != nil {
			return err
		}
		employees = resultEmployees
		nextToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListEmployeesResult{Employees: employees, NextPageToken: nextToken}, nil
}

func (s *Service) ensureEmailNotExists(ctx context.Context, email string, selfID int64) error {
	emp, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrEmployeeNotFound) {
		return err
	}
	if emp != nil && emp.ID != selfID {
		return ErrEmailAlreadyExists
	}
	return nil
}

// IsValidStatus は在籍状態が既知の値か判定します。
func IsValidStatus(status Status) bool {
	switch status {
	case StatusActive, StatusOnLeave, StatusTerminated:
		return true
	default:
		return false
	}
}

// IsValidEmploymentType は雇用形態が既知の値か判定します。
func IsValidEmploymentType(t EmploymentType) bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract:
		return true
	default:
		return false
	}
}

func normalizeName(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidName
	}
	return trimmed, nil
}

func normalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(trimmed)
	if err != nil {
		return "", ErrInvalidEmail
	}

	return strings.ToLower(addr.Address), nil
}

func normalizeOptional(raw *string) *string {
	if raw == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func normalizeDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	normalized := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &normalized
}

func validateDates(dateOfBirth, hireDate *time.Time) error {
	if dateOfBirth == nil || hireDate == nil {
		return nil
	}
	if !dateOfBirth.Before(*hireDate) {
		return ErrInvalidDateOfBirth
	}
	return nil
}

func normalizePageSize(pageSize int) (int, error) {
	if pageSize <= 0 {
		return defaultListPageSize, nil
	}
	if pageSize > maxListPageSize {
		return 0, ErrInvalidPageSize
	}
	return pageSize, nil
}

func parsePageToken(token string) (int, error) {
	if strings.TrimSpace(token) == "" {
		return 0, nil
	}

	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, ErrInvalidPageToken
	}

	return offset, nil
}

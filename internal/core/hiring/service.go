package hiring

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/candidate"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/employee"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/salary"
)

// EmployeeStore は採用フローが利用する社員ストアの契約です。
type EmployeeStore interface {
	Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error)
}

// SalaryStore は採用フローが利用する給与ストアの契約です。
type SalaryStore interface {
	Create(ctx context.Context, s *salary.Salary) (*salary.Salary, error)
}

// CandidateStore は採用フローが利用する応募者ストアの契約です。
type CandidateStore interface {
	FindByID(ctx context.Context, id int64) (*candidate.Candidate, error)
	UpdateStatus(ctx context.Context, id int64, status candidate.Status) (*candidate.Candidate, error)
}

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// Policy は採用可否に関する運用ポリシーです。
type Policy struct {
	// RequireInterviewed が true の場合、Interviewed 以外の応募者は採用できません。
	RequireInterviewed bool
}

// SalarySeed は初任給の入力です。
type SalarySeed struct {
	BaseAmount       float64
	Bonus            *float64
	PaymentFrequency salary.PaymentFrequency
	EffectiveDate    *time.Time
	Notes            *string
}

// PersonalDetails は採用時に追加入力する個人情報です。
type PersonalDetails struct {
	DateOfBirth           *time.Time
	Address               *string
	EmergencyContact      *string
	EmergencyContactPhone *string
}

// HireInput は採用フローの入力です。Position が nil の場合は応募職種を使います。
type HireInput struct {
	Candidate *candidate.Candidate
	Position  *string
	Salary    SalarySeed
	Personal  PersonalDetails
}

// UseCase は採用フローの公開インターフェースです。
type UseCase interface {
	HireCandidate(ctx context.Context, in HireInput) (*HireResult, error)
	HireCandidateByID(ctx context.Context, candidateID int64, in HireInput) (*HireResult, error)
}

// Service は応募者を社員へ変換する採用フローを実行します。
// 各段階は逐次実行され、トランザクションや補償処理は行いません。
type Service struct {
	employees  EmployeeStore
	salaries   SalaryStore
	candidates CandidateStore
	clock      Clock
	logger     *zap.Logger
	policy     Policy
}

// NewService は Service を生成します。
func NewService(employees EmployeeStore, salaries SalaryStore, candidates CandidateStore, clock Clock, logger *zap.Logger, policy Policy) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		employees:  employees,
		salaries:   salaries,
		candidates: candidates,
		clock:      clock,
		logger:     logger.Named("hiring"),
		policy:     policy,
	}
}

// HireCandidateByID は応募者をストアから取得してから採用フローを実行します。
func (s *Service) HireCandidateByID(ctx context.Context, candidateID int64, in HireInput) (*HireResult, error) {
	if candidateID <= 0 {
		return nil, &ValidationError{Field: "candidate_id", Err: ErrInvalidCandidateID}
	}

	found, err := s.candidates.FindByID(ctx, candidateID)
	if err != nil {
		return nil, &StoreOperationError{Step: StepLoadCandidate, Err: err}
	}

	in.Candidate = found
	return s.HireCandidate(ctx, in)
}

// HireCandidate は社員作成、給与作成、応募者状態の更新を順に行います。
//
// 社員作成に失敗した場合は *StoreOperationError を返します。
// 給与作成に失敗した場合は結果と *PartialFailureError を同時に返し、応募者状態は変更しません。
// 応募者状態の更新失敗はエラーとして返さず、結果の Outcome に反映します。
func (s *Service) HireCandidate(ctx context.Context, in HireInput) (*HireResult, error) {
	now := s.clock.Now()
	if err := s.validate(in, now); err != nil {
		return nil, err
	}

	c := in.Candidate
	result := &HireResult{WorkflowID: uuid.NewString(), Candidate: c}
	log := s.logger.With(
		zap.String("workflow_id", result.WorkflowID),
		zap.Int64("candidate_id", c.ID),
	)

	createdEmployee, err := s.employees.Create(ctx, s.buildEmployee(in, now))
	if err != nil {
		log.Error("employee creation failed", zap.Error(err))
		return nil, &StoreOperationError{Step: StepCreateEmployee, Err: err}
	}
	result.Employee = createdEmployee
	log = log.With(zap.Int64("employee_id", createdEmployee.ID))

	createdSalary, err := s.salaries.Create(ctx, buildSalary(in, createdEmployee.ID, c.ID, now))
	if err != nil {
		log.Error("employee created but salary creation failed", zap.Error(err))
		result.Outcome = OutcomeSalaryMissing
		return result, &PartialFailureError{Step: StepCreateSalary, EmployeeID: createdEmployee.ID, Err: err}
	}
	result.Salary = salary.Normalize(createdSalary)

	updated, err := s.candidates.UpdateStatus(ctx, c.ID, candidate.StatusHired)
	if err != nil {
		log.Warn("candidate status update failed after hire", zap.Error(err))
		result.Outcome = OutcomeCandidateStatusPending
		result.StatusErr = fmt.Errorf("%s: %w", StepUpdateCandidateStatus, err)
		return result, nil
	}

	result.Candidate = updated
	result.Outcome = OutcomeCompleted
	log.Info("candidate hired", zap.Int64("salary_id", result.Salary.ID))
	return result, nil
}

func (s *Service) validate(in HireInput, now time.Time) error {
	c := in.Candidate
	if c == nil {
		return &ValidationError{Field: "candidate", Err: ErrMissingCandidate}
	}
	if c.AppliedDepartmentID == nil || *c.AppliedDepartmentID <= 0 {
		return &ValidationError{Field: "applied_department_id", Err: ErrMissingDepartment}
	}
	if resolvePosition(in) == "" {
		return &ValidationError{Field: "position", Err: ErrMissingPosition}
	}
	if s.policy.RequireInterviewed && c.Status != candidate.StatusInterviewed {
		return &ValidationError{Field: "status", Err: ErrCandidateNotInterviewed}
	}

	if err := salary.ValidateAmounts(in.Salary.BaseAmount, bonusOf(in.Salary)); err != nil {
		field := "base_amount"
		if errors.Is(err, salary.ErrInvalidBonus) {
			field = "bonus"
		}
		return &ValidationError{Field: field, Err: err}
	}
	if !salary.IsValidFrequency(in.Salary.PaymentFrequency) {
		return &ValidationError{Field: "payment_frequency", Err: salary.ErrInvalidPaymentFrequency}
	}

	// 入社日は当日なので、生年月日はそれより前の日付でなければならない
	if dob := in.Personal.DateOfBirth; dob != nil && !truncateDate(*dob).Before(truncateDate(now)) {
		return &ValidationError{Field: "date_of_birth", Err: employee.ErrInvalidDateOfBirth}
	}
	return nil
}

func (s *Service) buildEmployee(in HireInput, now time.Time) *employee.Employee {
	c := in.Candidate
	position := resolvePosition(in)
	hireDate := truncateDate(now)
	var dateOfBirth *time.Time
	if in.Personal.DateOfBirth != nil {
		dob := truncateDate(*in.Personal.DateOfBirth)
		dateOfBirth = &dob
	}

	return &employee.Employee{
		Name:                  strings.TrimSpace(c.Name),
		Email:                 strings.ToLower(strings.TrimSpace(c.Email)),
		DepartmentID:          *c.AppliedDepartmentID,
		PhoneNumber:           optionalString(c.Phone),
		Address:               trimmed(in.Personal.Address),
		DateOfBirth:           dateOfBirth,
		Position:              &position,
		HireDate:              &hireDate,
		EmergencyContact:      trimmed(in.Personal.EmergencyContact),
		EmergencyContactPhone: trimmed(in.Personal.EmergencyContactPhone),
		EmploymentType:        employee.EmploymentFullTime,
		Status:                employee.StatusActive,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

func buildSalary(in HireInput, employeeID, candidateID int64, now time.Time) *salary.Salary {
	effective := truncateDate(now)
	if in.Salary.EffectiveDate != nil {
		effective = truncateDate(*in.Salary.EffectiveDate)
	}

	notes := fmt.Sprintf("Hired from candidate %d", candidateID)
	if extra := trimmed(in.Salary.Notes); extra != nil {
		notes += ". " + *extra
	}
	adjustment := salary.AdjustmentRaise

	return salary.Normalize(&salary.Salary{
		EmployeeID:       employeeID,
		BaseAmount:       in.Salary.BaseAmount,
		Bonus:            bonusOf(in.Salary),
		PaymentFrequency: in.Salary.PaymentFrequency,
		EffectiveDate:    effective,
		AdjustmentType:   &adjustment,
		Notes:            &notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
}

func resolvePosition(in HireInput) string {
	if p := trimmed(in.Position); p != nil {
		return *p
	}
	if in.Candidate == nil {
		return ""
	}
	return strings.TrimSpace(in.Candidate.AppliedPosition)
}

func bonusOf(seed SalarySeed) float64 {
	if seed.Bonus == nil {
		return 0
	}
	return *seed.Bonus
}

func trimmed(raw *string) *string {
	if raw == nil {
		return nil
	}
	return optionalString(*raw)
}

func optionalString(raw string) *string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil
	}
	return &v
}

func truncateDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

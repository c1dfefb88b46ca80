package salary

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
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

// Service は給与に関するユースケースをまとめます。
type Service struct {
	repo   Repository
	clock  Clock
	tx     TransactionManager
	logger *zap.Logger
}

// UseCase は給与ユースケースの公開インターフェースです。
type UseCase interface {
	CreateSalary(ctx context.Context, in CreateSalaryInput) (*Salary, error)
	GetSalary(ctx context.Context, in GetSalaryInput) (*Salary, error)
	ListSalaries(ctx context.Context, in ListSalariesInput) (*ListSalariesResult, error)
	ListSalariesByEmployee(ctx context.Context, employeeID int64) ([]*Salary, error)
	GetCurrentSalaryForEmployee(ctx context.Context, employeeID int64) (*Salary, error)
	UpdateSalary(ctx context.Context, in UpdateSalaryInput) (*Salary, error)
	AdjustSalary(ctx context.Context, in AdjustSalaryInput) (*Salary, error)
	DeleteSalary(ctx context.Context, in DeleteSalaryInput) error
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock, tx TransactionManager, logger *zap.Logger) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, clock: clock, tx: tx, logger: logger.Named("salary")}
}

// CreateSalaryInput は給与作成時の入力です。派生フィールドは受け付けません。
type CreateSalaryInput struct {
	EmployeeID       int64
	BaseAmount       float64
	Bonus            *float64
	PaymentFrequency PaymentFrequency
	EffectiveDate    *time.Time
	PreviousSalaryID *int64
	AdjustmentType   *AdjustmentType
	Notes            *string
}

// UpdateSalaryInput は給与更新時の入力です。
type UpdateSalaryInput struct {
	ID               int64
	BaseAmount       *float64
	Bonus            *float64
	PaymentFrequency *PaymentFrequency
	EffectiveDate    *time.Time
	AdjustmentType   *AdjustmentType
	Notes            *string
}

// AdjustSalaryInput は昇給などによる新規給与レコード追加の入力です。
// 未指定の項目は現行レコードから引き継ぎます。
type AdjustSalaryInput struct {
	EmployeeID       int64
	BaseAmount       *float64
	Bonus            *float64
	PaymentFrequency *PaymentFrequency
	EffectiveDate    *time.Time
	AdjustmentType   AdjustmentType
	Notes            *string
}

// GetSalaryInput は給与取得時の入力です。
type GetSalaryInput struct {
	ID int64
}

// DeleteSalaryInput は給与削除時の入力です。
type DeleteSalaryInput struct {
	ID int64
}

// ListSalariesInput は一覧取得時の入力です。
type ListSalariesInput struct {
	EmployeeID *int64
	Search     string
	PageSize   int
	PageToken  string
}

// ListSalariesResult は一覧取得結果です。
type ListSalariesResult struct {
	Salaries      []*Salary
	NextPageToken string
}

// CreateSalary は給与レコードを作成します。
func (s *Service) CreateSalary(ctx context.Context, in CreateSalaryInput) (*Salary, error) {
	record, err := s.buildSalary(in)
	if err != nil {
		return nil, err
	}

	var created *Salary
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		result, err := s.repo.Create(txCtx, record)
		if err != nil {
			return err
		}
		created = Normalize(result)
		return nil
	}); err != nil {
		return nil, err
	}

	s.logger.Debug("salary created", zap.Int64("salary_id", created.ID), zap.Int64("employee_id", created.EmployeeID))
	return created, nil
}

// GetSalary は給与レコードを取得します。
func (s *Service) GetSalary(ctx context.Context, in GetSalaryInput) (*Salary, error) {
	if in.ID <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var found *Salary
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		found = Normalize(result)
		return nil
	}); err != nil {
		return nil, err
	}
	return found, nil
}

// ListSalaries は給与レコードの一覧を取得します。
func (s *Service) ListSalaries(ctx context.Context, in ListSalariesInput) (*ListSalariesResult, error) {
	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}
	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}
	if in.EmployeeID != nil && *in.EmployeeID <= 0 {
		return nil, ErrInvalidEmployeeID
	}

	var (
		salaries  []*Salary
		nextToken string
	)
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, token, err := s.repo.List(txCtx, ListSalariesFilter{
			EmployeeID: in.EmployeeID,
			Search:     strings.TrimSpace(in.Search),
			Limit:      limit,
			Offset:     offset,
		})
		if err != nil {
			return err
		}
		for _, rec := range result {
			Normalize(rec)
		}
		salaries = result
		nextToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListSalariesResult{Salaries: salaries, NextPageToken: nextToken}, nil
}

// ListSalariesByEmployee は社員の給与履歴を発効日の降順で返します。
func (s *Service) ListSalariesByEmployee(ctx context.Context, employeeID int64) ([]*Salary, error) {
	if employeeID <= 0 {
		return nil, ErrInvalidEmployeeID
	}

	var history []*Salary
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.ListByEmployee(txCtx, employeeID)
		if err != nil {
			return err
		}
		history = result
		return nil
	}); err != nil {
		return nil, err
	}

	for _, rec := range history {
		Normalize(rec)
	}
	SortByEffectiveDateDesc(history)
	return history, nil
}

// GetCurrentSalaryForEmployee は発効日が最も新しい給与レコードを返します。
func (s *Service) GetCurrentSalaryForEmployee(ctx context.Context, employeeID int64) (*Salary, error) {
	history, err := s.ListSalariesByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	current := Current(history)
	if current == nil {
		return nil, ErrSalaryNotFound
	}
	return current, nil
}

// UpdateSalary は給与レコードを更新し、派生フィールドを再計算します。
func (s *Service) UpdateSalary(ctx context.Context, in UpdateSalaryInput) (*Salary, error) {
	if in.ID <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var updated *Salary
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		if in.BaseAmount != nil {
			existing.BaseAmount = *in.BaseAmount
		}
		if in.Bonus != nil {
			existing.Bonus = *in.Bonus
		}
		if err := ValidateAmounts(existing.BaseAmount, existing.Bonus); err != nil {
			return err
		}

		if in.PaymentFrequency != nil {
			if !IsValidFrequency(*in.PaymentFrequency) {
				return ErrInvalidPaymentFrequency
			}
			existing.PaymentFrequency = *in.PaymentFrequency
		}

		if in.EffectiveDate != nil {
			existing.EffectiveDate = normalizeDate(*in.EffectiveDate)
		}

		if in.AdjustmentType != nil {
			if !IsValidAdjustmentType(*in.AdjustmentType) {
				return ErrInvalidAdjustmentType
			}
			adj := *in.AdjustmentType
			existing.AdjustmentType = &adj
		}

		if in.Notes != nil {
			existing.Notes = normalizeNotes(in.Notes)
		}

		existing.UpdatedAt = s.clock.Now()
		Normalize(existing)

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}
		updated = Normalize(result)
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// AdjustSalary は現行レコードを PreviousSalaryID で参照する新しい給与レコードを追加します。
func (s *Service) AdjustSalary(ctx context.Context, in AdjustSalaryInput) (*Salary, error) {
	if in.EmployeeID <= 0 {
		return nil, ErrInvalidEmployeeID
	}
	if !IsValidAdjustmentType(in.AdjustmentType) {
		return nil, ErrInvalidAdjustmentType
	}

	var created *Salary
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		history, err := s.repo.ListByEmployee(txCtx, in.EmployeeID)
		if err != nil {
			return err
		}
		current := Current(history)
		if current == nil {
			return ErrSalaryNotFound
		}

		base := current.BaseAmount
		if in.BaseAmount != nil {
			base = *in.BaseAmount
		}
		bonus := current.Bonus
		if in.Bonus != nil {
			bonus = *in.Bonus
		}
		frequency := current.PaymentFrequency
		if in.PaymentFrequency != nil {
			frequency = *in.PaymentFrequency
		}
		previousID := current.ID
		adjustment := in.AdjustmentType

		record, err := s.buildSalary(CreateSalaryInput{
			EmployeeID:       in.EmployeeID,
			BaseAmount:       base,
			Bonus:            &bonus,
			PaymentFrequency: frequency,
			EffectiveDate:    in.EffectiveDate,
			PreviousSalaryID: &previousID,
			AdjustmentType:   &adjustment,
			Notes:            in.Notes,
		})
		if err != nil {
			return err
		}

		result, err := s.repo.Create(txCtx, record)
		if err != nil {
			return err
		}
		created = Normalize(result)
		return nil
	}); err != nil {
		return nil, err
	}

	s.logger.Info("salary adjusted",
		zap.Int64("employee_id", created.EmployeeID),
		zap.Int64("salary_id", created.ID),
		zap.String("adjustment_type", string(in.AdjustmentType)),
	)
	return created, nil
}

// DeleteSalary は給与レコードを削除します。
func (s *Service) DeleteSalary(ctx context.Context, in DeleteSalaryInput) error {
	if in.ID <= 0 {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}
	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, in.ID)
	})
}

// Current は発効日が最も新しいレコードを返します。同日の場合は ID が大きいものを優先します。
func Current(history []*Salary) *Salary {
	var latest *Salary
	for _, rec := range history {
		if rec == nil {
			continue
		}
		if latest == nil || isNewer(rec, latest) {
			latest = rec
		}
	}
	return latest
}

// SortByEffectiveDateDesc は発効日の降順に並べ替えます。
func SortByEffectiveDateDesc(history []*Salary) {
	sort.SliceStable(history, func(i, j int) bool {
		return isNewer(history[i], history[j])
	})
}

func isNewer(a, b *Salary) bool {
	if !a.EffectiveDate.Equal(b.EffectiveDate) {
		return a.EffectiveDate.After(b.EffectiveDate)
	}
	return a.ID > b.ID
}

func (s *Service) buildSalary(in CreateSalaryInput) (*Salary, error) {
	if in.EmployeeID <= 0 {
		return nil, ErrInvalidEmployeeID
	}

	bonus := 0.0
	if in.Bonus != nil {
		bonus = *in.Bonus
	}
	if err := ValidateAmounts(in.BaseAmount, bonus); err != nil {
		return nil, err
	}

	if !IsValidFrequency(in.PaymentFrequency) {
		return nil, ErrInvalidPaymentFrequency
	}

	var adjustment *AdjustmentType
	if in.AdjustmentType != nil {
		if !IsValidAdjustmentType(*in.AdjustmentType) {
			return nil, ErrInvalidAdjustmentType
		}
		adj := *in.AdjustmentType
		adjustment = &adj
	}

	now := s.clock.Now()
	effective := normalizeDate(now)
	if in.EffectiveDate != nil {
		effective = normalizeDate(*in.EffectiveDate)
	}

	var previous *int64
	if in.PreviousSalaryID != nil {
		if *in.PreviousSalaryID <= 0 {
			return nil, fmt.Errorf("previous salary id: %w", ErrInvalidID)
		}
		id := *in.PreviousSalaryID
		previous = &id
	}

	return Normalize(&Salary{
		EmployeeID:       in.EmployeeID,
		BaseAmount:       in.BaseAmount,
		Bonus:            bonus,
		PaymentFrequency: in.PaymentFrequency,
		EffectiveDate:    effective,
		PreviousSalaryID: previous,
		AdjustmentType:   adjustment,
		Notes:            normalizeNotes(in.Notes),
		CreatedAt:        now,
		UpdatedAt:        now,
	}), nil
}

func normalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
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

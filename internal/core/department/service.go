package department

import (
	"context"
	"errors"
	"fmt"
	"math"
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

// Service は部署に関するユースケースをまとめます。
type Service struct {
	repo     Repository
	managers ManagerDirectory
	clock    Clock
	tx       TransactionManager
}

// UseCase は部署ユースケースの公開インターフェースです。
type UseCase interface {
	CreateDepartment(ctx context.Context, in CreateDepartmentInput) (*Department, error)
	GetDepartment(ctx context.Context, in GetDepartmentInput) (*Department, error)
	ListDepartments(ctx context.Context, in ListDepartmentsInput) (*ListDepartmentsResult, error)
	ListDepartmentsWithManagers(ctx context.Context, in ListDepartmentsInput) ([]WithManager, string, error)
	UpdateDepartment(ctx context.Context, in UpdateDepartmentInput) (*Department, error)
	DeleteDepartment(ctx context.Context, in DeleteDepartmentInput) error
}

// NewService は Service を生成します。managers が nil の場合、責任者名は常に未設定扱いになります。
func NewService(repo Repository, managers ManagerDirectory, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, managers: managers, clock: clock, tx: tx}
}

// CreateDepartmentInput は部署作成時の入力です。
type CreateDepartmentInput struct {
	Name        string
	Location    string
	Budget      *float64
	ManagerID   *int64
	Description *string
}

// UpdateDepartmentInput は部署更新時の入力です。
type UpdateDepartmentInput struct {
	ID           int64
	Name         *string
	Location     *string
	Budget       *float64
	ManagerID    *int64
	ManagerIDSet bool
	Description  *string
}

// DeleteDepartmentInput は部署削除時の入力です。
type DeleteDepartmentInput struct {
	ID int64
}

// GetDepartmentInput は部署取得時の入力です。
type GetDepartmentInput struct {
	ID int64
}

// ListDepartmentsInput は一覧取得時の入力です。
type ListDepartmentsInput struct {
	PageSize  int
	PageToken string
}

// ListDepartmentsResult は一覧取得結果を表します。
type ListDepartmentsResult struct {
	Departments   []*Department
	NextPageToken string
}

// CreateDepartment は新しい部署を作成します。予算の既定値は 0、説明の既定値は空文字です。
func (s *Service) CreateDepartment(ctx context.Context, in CreateDepartmentInput) (*Department, error) {
	name, err := normalizeRequired(in.Name, ErrInvalidName)
	if err != nil {
		return nil, err
	}

	location, err := normalizeRequired(in.Location, ErrInvalidLocation)
	if err != nil {
		return nil, err
	}

	budget := 0.0
	if in.Budget != nil {
		budget = *in.Budget
	}
	if err := validateBudget(budget); err != nil {
		return nil, err
	}

	managerID, err := normalizeManagerID(in.ManagerID)
	if err != nil {
		return nil, err
	}

	description := ""
	if in.Description != nil {
		description = strings.TrimSpace(*in.Description)
	}

	var created *Department
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := s.ensureNameNotExists(txCtx, name, 0); err != nil {
			return err
		}

		now := s.clock.Now()
		result, err := s.repo.Create(txCtx, &Department{
			Name:        name,
			Location:    location,
			Budget:      budget,
			ManagerID:   managerID,
			Description: description,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
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

// UpdateDepartment は部署情報を更新します。
func (s *Service) UpdateDepartment(ctx context.Context, in UpdateDepartmentInput) (*Department, error) {
	if in.ID <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var updated *Department
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		if in.Name != nil {
			name, err := normalizeRequired(*in.Name, ErrInvalidName)
			if err != nil {
				return err
			}
			if name != existing.Name {
				if err := s.ensureNameNotExists(txCtx, name, existing.ID); err != nil {
					return err
				}
				existing.Name = name
			}
		}

		if in.Location != nil {
			location, err := normalizeRequired(*in.Location, ErrInvalidLocation)
			if err != nil {
				return err
			}
			existing.Location = location
		}

		if in.Budget != nil {
			if err := validateBudget(*in.Budget); err != nil {
				return err
			}
			existing.Budget = *in.Budget
		}

		if in.ManagerIDSet {
			managerID, err := normalizeManagerID(in.ManagerID)
			if err != nil {
				return err
			}
			existing.ManagerID = managerID
		}

		if in.Description != nil {
			existing.Description = strings.TrimSpace(*in.Description)
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

// DeleteDepartment は部署を削除します。
func (s *Service) DeleteDepartment(ctx context.Context, in DeleteDepartmentInput) error {
	if in.ID <= 0 {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}

	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, in.ID)
	})
}

// GetDepartment は部署を取得します。
func (s *Service) GetDepartment(ctx context.Context, in GetDepartmentInput) (*Department, error) {
	if in.ID <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var found *Department
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		found = result
		return nil
	}); err != nil {
		return nil, err
	}

	return found, nil
}

// ListDepartments は部署の一覧を取得します。
func (s *Service) ListDepartments(ctx context.Context, in ListDepartmentsInput) (*ListDepartmentsResult, error) {
	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}

	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	var (
		departments []*Department
		nextToken   string
	)

	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, token, err := s.repo.List(txCtx, ListDepartmentsFilter{Limit: limit, Offset: offset})
		if err != nil {
			return err
		}
		departments = result
		nextToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListDepartmentsResult{Departments: departments, NextPageToken: nextToken}, nil
}

// ListDepartmentsWithManagers は部署一覧に責任者名を付与して返します。
func (s *Service) ListDepartmentsWithManagers(ctx context.Context, in ListDepartmentsInput) ([]WithManager, string, error) {
	page, err := s.ListDepartments(ctx, in)
	if err != nil {
		return nil, "", err
	}

	ids := make([]int64, 0, len(page.Departments))
	for _, d := range page.Departments {
		if d.ManagerID != nil {
			ids = append(ids, *d.ManagerID)
		}
	}

	names := map[int64]string{}
	if s.managers != nil && len(ids) > 0 {
		names, err = s.managers.ManagerNames(ctx, ids)
		if err != nil {
			return nil, "", err
		}
	}

	out := make([]WithManager, 0, len(page.Departments))
	for _, d := range page.Departments {
		name := UnassignedManagerName
		if d.ManagerID != nil {
			if found, ok := names[*d.ManagerID]; ok {
				name = found
			}
		}
		out = append(out, WithManager{Department: d, ManagerName: name})
	}

	return out, page.NextPageToken, nil
}

func (s *Service) ensureNameNotExists(ctx context.Context, name string, selfID int64) error {
	found, err := s.repo.FindByName(ctx, name)
	if err != nil && !errors.Is(err, ErrDepartmentNotFound) {
		return err
	}
	if found != nil && found.ID != selfID {
		return ErrNameAlreadyExists
	}
	return nil
}

func normalizeRequired(raw string, invalid error) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", invalid
	}
	return trimmed, nil
}

func normalizeManagerID(id *int64) (*int64, error) {
	if id == nil {
		return nil, nil
	}
	if *id <= 0 {
		return nil, ErrInvalidManagerID
	}
	value := *id
	return &value, nil
}

func validateBudget(budget float64) error {
	if math.IsNaN(budget) || math.IsInf(budget, 0) || budget < 0 {
		return ErrInvalidBudget
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

package candidate

import (
	"context"
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
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

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

// Service は応募者に関するユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
}

// UseCase は応募者ユースケースの公開インターフェースです。
type UseCase interface {
	CreateCandidate(ctx context.Context, in CreateCandidateInput) (*Candidate, error)
	GetCandidate(ctx context.Context, in GetCandidateInput) (*Candidate, error)
	ListCandidates(ctx context.Context, in ListCandidatesInput) (*ListCandidatesResult, error)
	UpdateCandidate(ctx context.Context, in UpdateCandidateInput) (*Candidate, error)
	UpdateCandidateStatus(ctx context.Context, in UpdateCandidateStatusInput) (*Candidate, error)
	DeleteCandidate(ctx context.Context, in DeleteCandidateInput) error
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

// CreateCandidateInput は応募登録時の入力です。
type CreateCandidateInput struct {
	Name                string
	Email               string
	Phone               string
	AppliedPosition     string
	AppliedDepartmentID *int64
	Resume              *string
	Status              *Status
	ApplicationDate     *time.Time
}

// UpdateCandidateInput は応募者更新時の入力です。状態は UpdateCandidateStatus で変更します。
type UpdateCandidateInput struct {
	ID                     int64
	Name                   *string
	Email                  *string
	Phone                  *string
	AppliedPosition        *string
	AppliedDepartmentID    *int64
	AppliedDepartmentIDSet bool
	Resume                 *string
}

// UpdateCandidateStatusInput は選考状態変更時の入力です。
type UpdateCandidateStatusInput struct {
	ID     int64
	Status Status
}

// GetCandidateInput は応募者取得時の入力です。
type GetCandidateInput struct {
	ID int64
}

// DeleteCandidateInput は応募者削除時の入力です。
type DeleteCandidateInput struct {
	ID int64
}

// ListCandidatesInput は一覧取得時の入力です。
type ListCandidatesInput struct {
	DepartmentID *int64
	Status       *Status
	Search       string
	PageSize     int
	PageToken    string
}

// ListCandidatesResult は一覧取得結果を表します。
type ListCandidatesResult struct {
	Candidates    []*Candidate
	NextPageToken string
}

// CreateCandidate は応募者を登録します。状態の既定値は Applied、応募日の既定値は現在時刻です。
func (s *Service) CreateCandidate(ctx context.Context, in CreateCandidateInput) (*Candidate, error) {
	name, err := normalizeRequired(in.Name, ErrInvalidName)
	if err != nil {
		return nil, err
	}

	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}

	position, err := normalizeRequired(in.AppliedPosition, ErrInvalidPosition)
	if err != nil {
		return nil, err
	}

	departmentID, err := normalizeDepartmentID(in.AppliedDepartmentID)
	if err != nil {
		return nil, err
	}

	status := StatusApplied
	if in.Status != nil {
		if !IsValidStatus(*in.Status) {
			return nil, ErrInvalidStatus
		}
		status = *in.Status
	}

	now := s.clock.Now()
	applied := now
	if in.ApplicationDate != nil {
		applied = in.ApplicationDate.UTC()
	}

	return s.repo.Create(ctx, &Candidate{
		Name:                name,
		Email:               email,
		Phone:               strings.TrimSpace(in.Phone),
		AppliedPosition:     position,
		AppliedDepartmentID: departmentID,
		Resume:              normalizeOptional(in.Resume),
		Status:              status,
		ApplicationDate:     applied,
		CreatedAt:           now,
		UpdatedAt:           now,
	})
}

// GetCandidate は応募者を取得します。
func (s *Service) GetCandidate(ctx context.Context, in GetCandidateInput) (*Candidate, error) {
	if in.ID <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	return s.repo.FindByID(ctx, in.ID)
}

// ListCandidates は応募者の一覧を取得します。
func (s *Service) ListCandidates(ctx context.Context, in ListCandidatesInput) (*ListCandidatesResult, error) {
	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}

	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	departmentID, err := normalizeDepartmentID(in.DepartmentID)
	if err != nil {
		return nil, err
	}

	if in.Status != nil && !IsValidStatus(*in.Status) {
		return nil, ErrInvalidStatus
	}

	candidates, next, err := s.repo.List(ctx, ListCandidatesFilter{
		DepartmentID: departmentID,
		Status:       in.Status,
		Search:       strings.TrimSpace(in.Search),
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		return nil, err
	}

	return &ListCandidatesResult{Candidates: candidates, NextPageToken: next}, nil
}

// UpdateCandidate は応募者の基本情報を更新します。
func (s *Service) UpdateCandidate(ctx context.Context, in UpdateCandidateInput) (*Candidate, error) {
	if in.ID <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	existing, err := s.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name, err := normalizeRequired(*in.Name, ErrInvalidName)
		if err != nil {
			return nil, err
		}
		existing.Name = name
	}

	if in.Email != nil {
		email, err := normalizeEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		existing.Email = email
	}

	if in.Phone != nil {
		existing.Phone = strings.TrimSpace(*in.Phone)
	}

	if in.AppliedPosition != nil {
		position, err := normalizeRequired(*in.AppliedPosition, ErrInvalidPosition)
		if err != nil {
			return nil, err
		}
		existing.AppliedPosition = position
	}

	if in.AppliedDepartmentIDSet {
		departmentID, err := normalizeDepartmentID(in.AppliedDepartmentID)
		if err != nil {
			return nil, err
		}
		existing.AppliedDepartmentID = departmentID
	}

	if in.Resume != nil {
		existing.Resume = normalizeOptional(in.Resume)
	}

	existing.UpdatedAt = s.clock.Now()
	return s.repo.Update(ctx, existing)
}

// UpdateCandidateStatus は選考状態を変更します。Hired / Rejected からは遷移できません。
func (s *Service) UpdateCandidateStatus(ctx context.Context, in UpdateCandidateStatusInput) (*Candidate, error) {
	if in.ID <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	if !IsValidStatus(in.Status) {
		return nil, ErrInvalidStatus
	}

	var updated *Candidate
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByIDForUpdate(txCtx, in.ID)
		if err != nil {
			return err
		}

		if !CanTransition(existing.Status, in.Status) {
			return fmt.Errorf("%s -> %s: %w", existing.Status, in.Status, ErrInvalidTransition)
		}
		if existing.Status == in.Status {
			updated = existing
			return nil
		}

		updated, err = s.repo.UpdateStatus(txCtx, in.ID, in.Status)
		return err
	}); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteCandidate は応募者を削除します。
func (s *Service) DeleteCandidate(ctx context.Context, in DeleteCandidateInput) error {
	if in.ID <= 0 {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}
	return s.repo.Delete(ctx, in.ID)
}

func normalizeRequired(raw string, invalid error) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", invalid
	}
	return trimmed, nil
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

func normalizeDepartmentID(id *int64) (*int64, error) {
	if id == nil {
		return nil, nil
	}
	if *id <= 0 {
		return nil, ErrInvalidDepartmentID
	}
	value := *id
	return &value, nil
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

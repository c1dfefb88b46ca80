package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/candidate"
)

// CandidateRepository は Store 上の応募者リポジトリです。
type CandidateRepository struct {
	store *Store
}

// NewCandidateRepository は CandidateRepository を生成します。
func NewCandidateRepository(store *Store) *CandidateRepository {
	return &CandidateRepository{store: store}
}

func (r *CandidateRepository) Create(_ context.Context, c *candidate.Candidate) (*candidate.Candidate, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkCandidateDepartment(c); err != nil {
		return nil, err
	}

	s.lastCandidateID++
	stored := cloneCandidate(c)
	stored.ID = s.lastCandidateID
	s.candidates[stored.ID] = stored
	return cloneCandidate(stored), nil
}

func (r *CandidateRepository) Update(_ context.Context, c *candidate.Candidate) (*candidate.Candidate, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.candidates[c.ID]
	if !ok {
		return nil, candidate.ErrCandidateNotFound
	}
	if err := s.checkCandidateDepartment(c); err != nil {
		return nil, err
	}

	stored := cloneCandidate(c)
	stored.CreatedAt = existing.CreatedAt
	s.candidates[c.ID] = stored
	return cloneCandidate(stored), nil
}

func (r *CandidateRepository) UpdateStatus(_ context.Context, id int64, status candidate.Status) (*candidate.Candidate, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.candidates[id]
	if !ok {
		return nil, candidate.ErrCandidateNotFound
	}
	c.Status = status
	c.UpdatedAt = s.now()
	return cloneCandidate(c), nil
}

func (r *CandidateRepository) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.candidates[id]; !ok {
		return candidate.ErrCandidateNotFound
	}
	delete(s.candidates, id)
	return nil
}

func (r *CandidateRepository) FindByID(_ context.Context, id int64) (*candidate.Candidate, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.candidates[id]
	if !ok {
		return nil, candidate.ErrCandidateNotFound
	}
	return cloneCandidate(c), nil
}

// FindByIDForUpdate はインメモリストアにトランザクションがないため FindByID と同じです。
func (r *CandidateRepository) FindByIDForUpdate(ctx context.Context, id int64) (*candidate.Candidate, error) {
	return r.FindByID(ctx, id)
}

func (r *CandidateRepository) List(_ context.Context, filter candidate.ListCandidatesFilter) ([]*candidate.Candidate, string, error) {
	if filter.Limit <= 0 {
		return nil, "", candidate.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", candidate.ErrInvalidPageToken
	}

	term := strings.ToLower(strings.TrimSpace(filter.Search))

	s := r.store
	s.mu.RLock()
	var matched []*candidate.Candidate
	for _, c := range s.candidates {
		if filter.DepartmentID != nil && (c.AppliedDepartmentID == nil || *c.AppliedDepartmentID != *filter.DepartmentID) {
			continue
		}
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(c.Name+"\n"+c.AppliedPosition+"\n"+c.Email), term) {
			continue
		}
		matched = append(matched, cloneCandidate(c))
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].ApplicationDate.Equal(matched[j].ApplicationDate) {
			return matched[i].ApplicationDate.After(matched[j].ApplicationDate)
		}
		return matched[i].ID > matched[j].ID
	})
	items, next := paginate(matched, filter.Limit, filter.Offset)
	return items, next, nil
}

func (s *Store) checkCandidateDepartment(c *candidate.Candidate) error {
	if c.AppliedDepartmentID == nil {
		return nil
	}
	if _, ok := s.departments[*c.AppliedDepartmentID]; !ok {
		return candidate.ErrDepartmentNotFound
	}
	return nil
}

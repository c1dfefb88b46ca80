package memory

import (
	"context"
	"strings"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/salary"
)

// SalaryRepository は Store 上の給与リポジトリです。返却値には常に salary.Normalize が適用されます。
type SalaryRepository struct {
	store *Store
}

// NewSalaryRepository は SalaryRepository を生成します。
func NewSalaryRepository(store *Store) *SalaryRepository {
	return &SalaryRepository{store: store}
}

func (r *SalaryRepository) Create(_ context.Context, sal *salary.Salary) (*salary.Salary, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkSalaryRefs(sal); err != nil {
		return nil, err
	}

	s.lastSalaryID++
	stored := cloneSalary(sal)
	stored.ID = s.lastSalaryID
	s.salaries[stored.ID] = stored
	return cloneSalary(stored), nil
}

func (r *SalaryRepository) Update(_ context.Context, sal *salary.Salary) (*salary.Salary, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.salaries[sal.ID]
	if !ok {
		return nil, salary.ErrSalaryNotFound
	}
	if err := s.checkSalaryRefs(sal); err != nil {
		return nil, err
	}

	stored := cloneSalary(sal)
	stored.EmployeeID = existing.EmployeeID
	stored.CreatedAt = existing.CreatedAt
	s.salaries[sal.ID] = stored
	return cloneSalary(stored), nil
}

func (r *SalaryRepository) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.salaries[id]; !ok {
		return salary.ErrSalaryNotFound
	}
	delete(s.salaries, id)
	for _, other := range s.salaries {
		if other.PreviousSalaryID != nil && *other.PreviousSalaryID == id {
			other.PreviousSalaryID = nil
		}
	}
	return nil
}

func (r *SalaryRepository) FindByID(_ context.Context, id int64) (*salary.Salary, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	sal, ok := s.salaries[id]
	if !ok {
		return nil, salary.ErrSalaryNotFound
	}
	return cloneSalary(sal), nil
}

func (r *SalaryRepository) ListByEmployee(_ context.Context, employeeID int64) ([]*salary.Salary, error) {
	s := r.store
	s.mu.RLock()
	var history []*salary.Salary
	for _, sal := range s.salaries {
		if sal.EmployeeID == employeeID {
			history = append(history, cloneSalary(sal))
		}
	}
	s.mu.RUnlock()

	salary.SortByEffectiveDateDesc(history)
	return history, nil
}

func (r *SalaryRepository) List(_ context.Context, filter salary.ListSalariesFilter) ([]*salary.Salary, string, error) {
	if filter.Limit <= 0 {
		return nil, "", salary.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", salary.ErrInvalidPageToken
	}

	term := strings.ToLower(strings.TrimSpace(filter.Search))

	s := r.store
	s.mu.RLock()
	var matched []*salary.Salary
	for _, sal := range s.salaries {
		if filter.EmployeeID != nil && sal.EmployeeID != *filter.EmployeeID {
			continue
		}
		if term != "" && !salaryMatches(sal, term) {
			continue
		}
		matched = append(matched, cloneSalary(sal))
	}
	s.mu.RUnlock()

	salary.SortByEffectiveDateDesc(matched)
	items, next := paginate(matched, filter.Limit, filter.Offset)
	return items, next, nil
}

func salaryMatches(sal *salary.Salary, term string) bool {
	if strings.Contains(strings.ToLower(string(sal.PaymentFrequency)), term) {
		return true
	}
	if sal.AdjustmentType != nil && strings.Contains(strings.ToLower(string(*sal.AdjustmentType)), term) {
		return true
	}
	return sal.Notes != nil && strings.Contains(strings.ToLower(*sal.Notes), term)
}

func (s *Store) checkSalaryRefs(sal *salary.Salary) error {
	if _, ok := s.employees[sal.EmployeeID]; !ok {
		return salary.ErrEmployeeNotFound
	}
	if sal.PreviousSalaryID != nil {
		if _, ok := s.salaries[*sal.PreviousSalaryID]; !ok {
			return salary.ErrSalaryNotFound
		}
	}
	return nil
}

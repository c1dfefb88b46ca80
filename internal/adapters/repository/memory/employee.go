package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/employee"
)

// EmployeeRepository は Store 上の社員リポジトリです。
type EmployeeRepository struct {
	store *Store
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(store *Store) *EmployeeRepository {
	return &EmployeeRepository{store: store}
}

func (r *EmployeeRepository) Create(_ context.Context, e *employee.Employee) (*employee.Employee, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkEmployee(e); err != nil {
		return nil, err
	}

	s.lastEmployeeID++
	stored := cloneEmployee(e)
	stored.ID = s.lastEmployeeID
	s.employees[stored.ID] = stored
	return cloneEmployee(stored), nil
}

func (r *EmployeeRepository) Update(_ context.Context, e *employee.Employee) (*employee.Employee, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.employees[e.ID]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	if err := s.checkEmployee(e); err != nil {
		return nil, err
	}

	stored := cloneEmployee(e)
	stored.CreatedAt = existing.CreatedAt
	s.employees[e.ID] = stored
	return cloneEmployee(stored), nil
}

// Delete は社員と、その社員の給与レコードを削除します。責任者参照は解除されます。
func (r *EmployeeRepository) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(s.employees, id)

	for salaryID, sal := range s.salaries {
		if sal.EmployeeID == id {
			delete(s.salaries, salaryID)
		}
	}
	for _, d := range s.departments {
		if d.ManagerID != nil && *d.ManagerID == id {
			d.ManagerID = nil
		}
	}
	return nil
}

func (r *EmployeeRepository) FindByID(_ context.Context, id int64) (*employee.Employee, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.employees[id]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return cloneEmployee(e), nil
}

func (r *EmployeeRepository) FindByEmail(_ context.Context, email string) (*employee.Employee, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.employees {
		if strings.EqualFold(e.Email, email) {
			return cloneEmployee(e), nil
		}
	}
	return nil, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) List(_ context.Context, filter employee.ListEmployeesFilter) ([]*employee.Employee, string, error) {
	if filter.Limit <= 0 {
		return nil, "", employee.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", employee.ErrInvalidPageToken
	}

	term := strings.ToLower(strings.TrimSpace(filter.Search))

	s := r.store
	s.mu.RLock()
	var matched []*employee.Employee
	for _, e := range s.employees {
		if filter.DepartmentID != nil && e.DepartmentID != *filter.DepartmentID {
			continue
		}
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		if term != "" && !employeeMatches(e, term) {
			continue
		}
		matched = append(matched, cloneEmployee(e))
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	items, next := paginate(matched, filter.Limit, filter.Offset)
	return items, next, nil
}

func employeeMatches(e *employee.Employee, term string) bool {
	if strings.Contains(strings.ToLower(e.Name), term) || strings.Contains(strings.ToLower(e.Email), term) {
		return true
	}
	return e.Position != nil && strings.Contains(strings.ToLower(*e.Position), term)
}

func (s *Store) checkEmployee(e *employee.Employee) error {
	if _, ok := s.departments[e.DepartmentID]; !ok {
		return employee.ErrDepartmentNotFound
	}
	for _, other := range s.employees {
		if other.ID != e.ID && strings.EqualFold(other.Email, e.Email) {
			return employee.ErrEmailAlreadyExists
		}
	}
	return nil
}

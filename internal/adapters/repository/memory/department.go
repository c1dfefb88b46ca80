package memory

import (
	"context"
	"sort"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/department"
)

// DepartmentRepository は Store 上の部署リポジトリです。
type DepartmentRepository struct {
	store *Store
}

// NewDepartmentRepository は DepartmentRepository を生成します。
func NewDepartmentRepository(store *Store) *DepartmentRepository {
	return &DepartmentRepository{store: store}
}

func (r *DepartmentRepository) Create(_ context.Context, d *department.Department) (*department.Department, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.departmentNameTaken(d.Name, 0) {
		return nil, department.ErrNameAlreadyExists
	}
	if d.ManagerID != nil {
		if _, ok := s.employees[*d.ManagerID]; !ok {
			return nil, department.ErrInvalidManagerID
		}
	}

	s.lastDepartmentID++
	stored := cloneDepartment(d)
	stored.ID = s.lastDepartmentID
	s.departments[stored.ID] = stored
	return cloneDepartment(stored), nil
}

func (r *DepartmentRepository) Update(_ context.Context, d *department.Department) (*department.Department, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.departments[d.ID]
	if !ok {
		return nil, department.ErrDepartmentNotFound
	}
	if s.departmentNameTaken(d.Name, d.ID) {
		return nil, department.ErrNameAlreadyExists
	}
	if d.ManagerID != nil {
		if _, ok := s.employees[*d.ManagerID]; !ok {
			return nil, department.ErrInvalidManagerID
		}
	}

	stored := cloneDepartment(d)
	stored.CreatedAt = existing.CreatedAt
	s.departments[d.ID] = stored
	return cloneDepartment(stored), nil
}

// Delete は所属社員または応募者が残っている部署を削除しません。
func (r *DepartmentRepository) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.departments[id]; !ok {
		return department.ErrDepartmentNotFound
	}
	for _, e := range s.employees {
		if e.DepartmentID == id {
			return department.ErrDepartmentInUse
		}
	}
	for _, c := range s.candidates {
		if c.AppliedDepartmentID != nil && *c.AppliedDepartmentID == id {
			c.AppliedDepartmentID = nil
		}
	}
	delete(s.departments, id)
	return nil
}

func (r *DepartmentRepository) FindByID(_ context.Context, id int64) (*department.Department, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.departments[id]
	if !ok {
		return nil, department.ErrDepartmentNotFound
	}
	return cloneDepartment(d), nil
}

func (r *DepartmentRepository) FindByName(_ context.Context, name string) (*department.Department, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.departments {
		if d.Name == name {
			return cloneDepartment(d), nil
		}
	}
	return nil, department.ErrDepartmentNotFound
}

func (r *DepartmentRepository) List(_ context.Context, filter department.ListDepartmentsFilter) ([]*department.Department, string, error) {
	if filter.Limit <= 0 {
		return nil, "", department.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", department.ErrInvalidPageToken
	}

	s := r.store
	s.mu.RLock()
	all := make([]*department.Department, 0, len(s.departments))
	for _, d := range s.departments {
		all = append(all, cloneDepartment(d))
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	items, next := paginate(all, filter.Limit, filter.Offset)
	return items, next, nil
}

// ManagerNames は社員 ID から氏名を引きます。
func (r *DepartmentRepository) ManagerNames(_ context.Context, ids []int64) (map[int64]string, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make(map[int64]string, len(ids))
	for _, id := range ids {
		if e, ok := s.employees[id]; ok {
			names[id] = e.Name
		}
	}
	return names, nil
}

func (s *Store) departmentNameTaken(name string, selfID int64) bool {
	for _, d := range s.departments {
		if d.Name == name && d.ID != selfID {
			return true
		}
	}
	return false
}

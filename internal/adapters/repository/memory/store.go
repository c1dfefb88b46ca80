// Package memory はプロセス内メモリ上に HR データを保持するリポジトリ実装です。
// database.driver が memory の場合に利用され、起動時にサンプルデータを読み込めます。
package memory

import (
	"strconv"
	"sync"
	"time"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/candidate"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/department"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/employee"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/salary"
)

// Store は 4 種類のコレクションを単一のロックで保護します。
// 部署と社員の参照整合性をコレクション横断で検査するため、ロックは分割しません。
type Store struct {
	mu sync.RWMutex

	departments map[int64]*department.Department
	employees   map[int64]*employee.Employee
	candidates  map[int64]*candidate.Candidate
	salaries    map[int64]*salary.Salary

	lastDepartmentID int64
	lastEmployeeID   int64
	lastCandidateID  int64
	lastSalaryID     int64

	now func() time.Time
}

// NewStore は空の Store を生成します。
func NewStore() *Store {
	return &Store{
		departments: make(map[int64]*department.Department),
		employees:   make(map[int64]*employee.Employee),
		candidates:  make(map[int64]*candidate.Candidate),
		salaries:    make(map[int64]*salary.Salary),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func paginate[T any](items []T, limit, offset int) ([]T, string) {
	if offset >= len(items) {
		return []T{}, ""
	}
	end := offset + limit
	next := ""
	if end < len(items) {
		next = strconv.Itoa(end)
	} else {
		end = len(items)
	}
	return items[offset:end], next
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	s := *v
	return &s
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	i := *v
	return &i
}

func cloneTime(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	t := *v
	return &t
}

func cloneDepartment(d *department.Department) *department.Department {
	out := *d
	out.ManagerID = cloneInt64(d.ManagerID)
	return &out
}

func cloneEmployee(e *employee.Employee) *employee.Employee {
	out := *e
	out.PhoneNumber = cloneString(e.PhoneNumber)
	out.Address = cloneString(e.Address)
	out.DateOfBirth = cloneTime(e.DateOfBirth)
	out.Position = cloneString(e.Position)
	out.HireDate = cloneTime(e.HireDate)
	out.EmergencyContact = cloneString(e.EmergencyContact)
	out.EmergencyContactPhone = cloneString(e.EmergencyContactPhone)
	return &out
}

func cloneCandidate(c *candidate.Candidate) *candidate.Candidate {
	out := *c
	out.AppliedDepartmentID = cloneInt64(c.AppliedDepartmentID)
	out.Resume = cloneString(c.Resume)
	return &out
}

func cloneSalary(s *salary.Salary) *salary.Salary {
	out := *s
	out.PreviousSalaryID = cloneInt64(s.PreviousSalaryID)
	if s.AdjustmentType != nil {
		a := *s.AdjustmentType
		out.AdjustmentType = &a
	}
	out.Notes = cloneString(s.Notes)
	return salary.Normalize(&out)
}

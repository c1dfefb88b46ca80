package dashboard

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/candidate"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/department"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/employee"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/salary"
)

const (
	pageSize       = 200
	windowDays     = 30
	maxHighlighted = 5
)

// EmployeeLister は社員一覧の取得元です。
type EmployeeLister interface {
	List(ctx context.Context, filter employee.ListEmployeesFilter) ([]*employee.Employee, string, error)
}

// DepartmentLister は部署一覧の取得元です。
type DepartmentLister interface {
	List(ctx context.Context, filter department.ListDepartmentsFilter) ([]*department.Department, string, error)
}

// CandidateLister は応募者一覧の取得元です。
type CandidateLister interface {
	List(ctx context.Context, filter candidate.ListCandidatesFilter) ([]*candidate.Candidate, string, error)
}

// SalaryLister は給与一覧の取得元です。
type SalaryLister interface {
	List(ctx context.Context, filter salary.ListSalariesFilter) ([]*salary.Salary, string, error)
}

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// DepartmentStat は部署ごとの人数と予算です。
type DepartmentStat struct {
	DepartmentID int64
	Name         string
	Count        int
	Budget       float64
}

// Anniversary は入社記念日が近い社員です。
type Anniversary struct {
	Employee  *employee.Employee
	Date      time.Time
	DaysUntil int
}

// StatusCount は応募者の状態別件数です。
type StatusCount struct {
	Status candidate.Status
	Count  int
}

// Summary はダッシュボードの集計結果です。
type Summary struct {
	TotalEmployees        int
	TotalDepartments      int
	TotalCandidates       int
	ActiveCandidates      int
	TotalPayroll          float64
	AverageSalary         float64
	DepartmentStats       []DepartmentStat
	RecentHires           []*employee.Employee
	UpcomingAnniversaries []Anniversary
	CandidateStatus       []StatusCount
	GeneratedAt           time.Time
}

// Service はダッシュボード集計を提供します。
type Service struct {
	employees   EmployeeLister
	departments DepartmentLister
	candidates  CandidateLister
	salaries    SalaryLister
	clock       Clock
}

// UseCase はダッシュボードの公開インターフェースです。
type UseCase interface {
	Summary(ctx context.Context) (*Summary, error)
}

// NewService は Service を生成します。
func NewService(employees EmployeeLister, departments DepartmentLister, candidates CandidateLister, salaries SalaryLister, clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{
		employees:   employees,
		departments: departments,
		candidates:  candidates,
		salaries:    salaries,
		clock:       clock,
	}
}

// Summary は 4 種類の一覧を並行に読み込み、集計結果を返します。いずれかの読み込みに失敗した場合はエラーを返します。
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	var (
		employees   []*employee.Employee
		departments []*department.Department
		candidates  []*candidate.Candidate
		salaries    []*salary.Salary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		employees, err = collect(gctx, func(ctx context.Context, offset int) ([]*employee.Employee, string, error) {
			return s.employees.List(ctx, employee.ListEmployeesFilter{Limit: pageSize, Offset: offset})
		})
		return err
	})
	g.Go(func() (err error) {
		departments, err = collect(gctx, func(ctx context.Context, offset int) ([]*department.Department, string, error) {
			return s.departments.List(ctx, department.ListDepartmentsFilter{Limit: pageSize, Offset: offset})
		})
		return err
	})
	g.Go(func() (err error) {
		candidates, err = collect(gctx, func(ctx context.Context, offset int) ([]*candidate.Candidate, string, error) {
			return s.candidates.List(ctx, candidate.ListCandidatesFilter{Limit: pageSize, Offset: offset})
		})
		return err
	})
	g.Go(func() (err error) {
		salaries, err = collect(gctx, func(ctx context.Context, offset int) ([]*salary.Salary, string, error) {
			return s.salaries.List(ctx, salary.ListSalariesFilter{Limit: pageSize, Offset: offset})
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Compute(s.clock.Now(), employees, departments, candidates, salaries), nil
}

// Compute は読み込み済みの一覧から集計を行います。now の日付を基準日とします。
func Compute(now time.Time, employees []*employee.Employee, departments []*department.Department, candidates []*candidate.Candidate, salaries []*salary.Salary) *Summary {
	today := truncateDate(now)

	out := &Summary{
		TotalEmployees:   len(employees),
		TotalDepartments: len(departments),
		TotalCandidates:  len(candidates),
		GeneratedAt:      now,
	}

	for _, c := range candidates {
		if c.Status.IsActive() {
			out.ActiveCandidates++
		}
	}

	for _, sal := range salaries {
		out.TotalPayroll += sal.BaseAmount
	}
	if len(salaries) > 0 {
		out.AverageSalary = out.TotalPayroll / float64(len(salaries))
	}

	headCount := make(map[int64]int, len(departments))
	for _, e := range employees {
		headCount[e.DepartmentID]++
	}
	out.DepartmentStats = make([]DepartmentStat, 0, len(departments))
	for _, d := range departments {
		out.DepartmentStats = append(out.DepartmentStats, DepartmentStat{
			DepartmentID: d.ID,
			Name:         d.Name,
			Count:        headCount[d.ID],
			Budget:       d.Budget,
		})
	}

	out.RecentHires = recentHires(today, employees)
	out.UpcomingAnniversaries = upcomingAnniversaries(today, employees)
	out.CandidateStatus = statusBreakdown(candidates)

	return out
}

func recentHires(today time.Time, employees []*employee.Employee) []*employee.Employee {
	since := today.AddDate(0, 0, -windowDays)

	var hires []*employee.Employee
	for _, e := range employees {
		if e.HireDate != nil && truncateDate(*e.HireDate).After(since) {
			hires = append(hires, e)
		}
	}
	sort.SliceStable(hires, func(i, j int) bool {
		return hires[i].HireDate.After(*hires[j].HireDate)
	})
	if len(hires) > maxHighlighted {
		hires = hires[:maxHighlighted]
	}
	return hires
}

func upcomingAnniversaries(today time.Time, employees []*employee.Employee) []Anniversary {
	until := today.AddDate(0, 0, windowDays)

	var out []Anniversary
	for _, e := range employees {
		if e.HireDate == nil {
			continue
		}
		hired := e.HireDate.UTC()
		anniversary := time.Date(today.Year(), hired.Month(), hired.Day(), 0, 0, 0, 0, time.UTC)
		if anniversary.Before(today) || anniversary.After(until) {
			continue
		}
		out = append(out, Anniversary{
			Employee:  e,
			Date:      anniversary,
			DaysUntil: int(anniversary.Sub(today).Hours() / 24),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Employee.HireDate.Before(*out[j].Employee.HireDate)
	})
	if len(out) > maxHighlighted {
		out = out[:maxHighlighted]
	}
	return out
}

var statusOrder = []candidate.Status{
	candidate.StatusApplied,
	candidate.StatusInterviewed,
	candidate.StatusHired,
	candidate.StatusRejected,
}

// statusBreakdown は状態未設定を Applied として数えます。件数 0 の状態は含めません。
func statusBreakdown(candidates []*candidate.Candidate) []StatusCount {
	counts := make(map[candidate.Status]int)
	for _, c := range candidates {
		status := c.Status
		if status == "" {
			status = candidate.StatusApplied
		}
		counts[status]++
	}

	out := make([]StatusCount, 0, len(counts))
	for _, status := range statusOrder {
		if n, ok := counts[status]; ok {
			out = append(out, StatusCount{Status: status, Count: n})
			delete(counts, status)
		}
	}

	var rest []candidate.Status
	for status := range counts {
		rest = append(rest, status)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	for _, status := range rest {
		out = append(out, StatusCount{Status: status, Count: counts[status]})
	}
	return out
}

func collect[T any](ctx context.Context, fetch func(ctx context.Context, offset int) ([]T, string, error)) ([]T, error) {
	var all []T
	offset := 0
	for {
		page, next, err := fetch(ctx, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if next == "" || len(page) == 0 {
			return all, nil
		}
		offset += len(page)
	}
}

func truncateDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

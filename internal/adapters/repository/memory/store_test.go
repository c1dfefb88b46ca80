package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/adapters/repository/memory"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/candidate"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/department"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/employee"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/hiring"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/salary"
)

func seeded(t *testing.T) *memory.Store {
	t.Helper()
	store, err := memory.NewSeededStore()
	if err != nil {
		t.Fatalf("NewSeededStore returned error: %v", err)
	}
	return store
}

func TestNewSeededStore_LoadsFixtures(t *testing.T) {
	t.Parallel()

	store := seeded(t)
	ctx := context.Background()

	departments, _, err := memory.NewDepartmentRepository(store).List(ctx, department.ListDepartmentsFilter{Limit: 100})
	if err != nil {
		t.Fatalf("List departments returned error: %v", err)
	}
	if len(departments) != 8 {
		t.Fatalf("expected 8 departments, got %d", len(departments))
	}

	employees, _, err := memory.NewEmployeeRepository(store).List(ctx, employee.ListEmployeesFilter{Limit: 100})
	if err != nil {
		t.Fatalf("List employees returned error: %v", err)
	}
	if len(employees) != 22 {
		t.Fatalf("expected 22 employees, got %d", len(employees))
	}

	laura, err := memory.NewCandidateRepository(store).FindByID(ctx, 5)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if laura.Name != "Laura White" || laura.AppliedDepartmentID == nil || *laura.AppliedDepartmentID != 5 {
		t.Fatalf("unexpected candidate %+v", laura)
	}

	sal, err := memory.NewSalaryRepository(store).FindByID(ctx, 2)
	if err != nil {
		t.Fatalf("FindByID salary returned error: %v", err)
	}
	if sal.GrossAmount != 105000 || sal.NetAmount != 84000 {
		t.Fatalf("expected derived amounts on seeded salary, got %+v", sal)
	}
}

func TestHiringWorkflow_OverMemoryStore(t *testing.T) {
	t.Parallel()

	store := seeded(t)
	ctx := context.Background()
	employees := memory.NewEmployeeRepository(store)
	salaries := memory.NewSalaryRepository(store)
	candidates := memory.NewCandidateRepository(store)

	svc := hiring.NewService(employees, salaries, candidates, nil, nil, hiring.Policy{})

	result, err := svc.HireCandidateByID(ctx, 5, hiring.HireInput{
		Salary: hiring.SalarySeed{BaseAmount: 60000, PaymentFrequency: salary.FrequencyMonthly},
	})
	if err != nil {
		t.Fatalf("HireCandidateByID returned error: %v", err)
	}

	if result.Employee.ID != 23 {
		t.Fatalf("expected next employee id 23, got %d", result.Employee.ID)
	}
	if result.Employee.DepartmentID != 5 || *result.Employee.Position != "Sales Associate" {
		t.Fatalf("unexpected employee %+v", result.Employee)
	}

	history, err := salaries.ListByEmployee(ctx, result.Employee.ID)
	if err != nil {
		t.Fatalf("ListByEmployee returned error: %v", err)
	}
	if len(history) != 1 || history[0].NetAmount != 48000 {
		t.Fatalf("unexpected salary history %+v", history)
	}

	hired, err := candidates.FindByID(ctx, 5)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if hired.Status != candidate.StatusHired {
		t.Fatalf("expected candidate Hired, got %s", hired.Status)
	}

	if _, err := svc.HireCandidateByID(ctx, 5, hiring.HireInput{
		Salary: hiring.SalarySeed{BaseAmount: 60000, PaymentFrequency: salary.FrequencyMonthly},
	}); !errors.Is(err, employee.ErrEmailAlreadyExists) {
		t.Fatalf("expected second hire to fail on duplicate email, got %v", err)
	}
}

func TestDepartmentRepository_DeleteInUse(t *testing.T) {
	t.Parallel()

	store := seeded(t)
	repo := memory.NewDepartmentRepository(store)

	if err := repo.Delete(context.Background(), 1); !errors.Is(err, department.ErrDepartmentInUse) {
		t.Fatalf("expected ErrDepartmentInUse, got %v", err)
	}
	if err := repo.Delete(context.Background(), 8); err != nil {
		t.Fatalf("expected empty department to be deletable, got %v", err)
	}
}

func TestDepartmentService_ListWithManagers(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	repo := memory.NewDepartmentRepository(store)
	ctx := context.Background()

	if _, err := repo.Create(ctx, &department.Department{Name: "Finance", Location: "Floor 3"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	svc := department.NewService(repo, repo, nil, nil)

	rows, _, err := svc.ListDepartmentsWithManagers(ctx, department.ListDepartmentsInput{})
	if err != nil {
		t.Fatalf("ListDepartmentsWithManagers returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].ManagerName != department.UnassignedManagerName {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestSalaryService_CurrentFromSeed(t *testing.T) {
	t.Parallel()

	store := seeded(t)
	svc := salary.NewService(memory.NewSalaryRepository(store), nil, nil, nil)

	current, err := svc.GetCurrentSalaryForEmployee(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetCurrentSalaryForEmployee returned error: %v", err)
	}
	if current.ID != 5 || current.NetAmount != 70400 {
		t.Fatalf("unexpected current salary %+v", current)
	}
}

func TestEmployeeRepository_ConcurrentCreate(t *testing.T) {
	t.Parallel()

	store := seeded(t)
	repo := memory.NewEmployeeRepository(store)

	var wg sync.WaitGroup
	ids := make(chan int64, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			created, err := repo.Create(context.Background(), &employee.Employee{
				Name:         "Temp",
				Email:        "temp" + string(rune('a'+i)) + "@company.com",
				DepartmentID: 2,
				Status:       employee.StatusActive,
			})
			if err != nil {
				t.Errorf("Create returned error: %v", err)
				return
			}
			ids <- created.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != 20 {
		t.Fatalf("expected 20 unique ids, got %d", len(seen))
	}
}

func TestSalaryRepository_List_Search(t *testing.T) {
	t.Parallel()

	repo := memory.NewSalaryRepository(seeded(t))
	ctx := context.Background()

	found, _, err := repo.List(ctx, salary.ListSalariesFilter{Search: " BONUS ", Limit: 50})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(found) != 1 || found[0].ID != 5 {
		t.Fatalf("expected salary 5 by notes, got %+v", found)
	}

	employeeID := int64(3)
	found, _, err = repo.List(ctx, salary.ListSalariesFilter{EmployeeID: &employeeID, Search: "promo", Limit: 50})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(found) != 1 || found[0].ID != 3 {
		t.Fatalf("expected salary 3 by adjustment type, got %+v", found)
	}

	employeeID = 1
	found, _, err = repo.List(ctx, salary.ListSalariesFilter{EmployeeID: &employeeID, Search: "promo", Limit: 50})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("expected no match for employee 1, got %+v", found)
	}

	found, _, err = repo.List(ctx, salary.ListSalariesFilter{Search: "monthly", Limit: 100})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(found) == 0 {
		t.Fatalf("expected payment frequency matches")
	}
	for _, s := range found {
		if s.PaymentFrequency != salary.FrequencyMonthly {
			t.Fatalf("unexpected frequency %s", s.PaymentFrequency)
		}
	}
}

package employee

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakeEmployeeRepo struct {
	employees map[int64]*Employee
	sequence  int64
	order     []int64
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[int64]*Employee)}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e *Employee) (*Employee, error) {
	for _, existing := range r.employees {
		if existing.Email == e.Email {
			return nil, ErrEmailAlreadyExists
		}
	}

	clone := cloneEmployee(e)
	r.sequence++
	clone.ID = r.sequence
	r.employees[clone.ID] = clone
	r.order = append(r.order, clone.ID)
	return cloneEmployee(clone), nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e *Employee) (*Employee, error) {
	if _, ok := r.employees[e.ID]; !ok {
		return nil, ErrEmployeeNotFound
	}
	for _, existing := range r.employees {
		if existing.ID != e.ID && existing.Email == e.Email {
			return nil, ErrEmailAlreadyExists
		}
	}
	r.employees[e.ID] = cloneEmployee(e)
	return cloneEmployee(e), nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.employees[id]; !ok {
		return ErrEmployeeNotFound
	}
	delete(r.employees, id)
	for idx, existingID := range r.order {
		if existingID == id {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeEmployeeRepo) FindByID(_ context.Context, id int64) (*Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	return cloneEmployee(emp), nil
}

func (r *fakeEmployeeRepo) FindByEmail(_ context.Context, email string) (*Employee, error) {
	for _, emp := range r.employees {
		if emp.Email == email {
			return cloneEmployee(emp), nil
		}
	}
	return nil, ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(_ context.Context, filter ListEmployeesFilter) ([]*Employee, string, error) {
	var filtered []*Employee
	term := strings.ToLower(filter.Search)
	for _, id := range r.order {
		emp := r.employees[id]
		if filter.DepartmentID != nil && emp.DepartmentID != *filter.DepartmentID {
			continue
		}
		if filter.Status != nil && emp.Status != *filter.Status {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(emp.Name+" "+emp.Email), term) {
			continue
		}
		filtered = append(filtered, cloneEmployee(emp))
	}

	if filter.Offset > len(filtered) {
		return []*Employee{}, "", nil
	}

	end := filter.Offset + filter.Limit
	if end > len(filtered) {
		end = len(filtered)
	}

	page := filtered[filter.Offset:end]

	nextToken := ""
	if end < len(filtered) {
		nextToken = strconv.Itoa(end)
	}

	return page, nextToken, nil
}

func cloneEmployee(emp *Employee) *Employee {
	if emp == nil {
		return nil
	}
	copy := *emp
	copy.PhoneNumber = cloneString(emp.PhoneNumber)
	copy.Address = cloneString(emp.Address)
	copy.Position = cloneString(emp.Position)
	copy.EmergencyContact = cloneString(emp.EmergencyContact)
	copy.EmergencyContactPhone = cloneString(emp.EmergencyContactPhone)
	if emp.DateOfBirth != nil {
		dob := *emp.DateOfBirth
		copy.DateOfBirth = &dob
	}
	if emp.HireDate != nil {
		hired := *emp.HireDate
		copy.HireDate = &hired
	}
	return &copy
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func strPtr(s string) *string {
	return &s
}

func TestService_CreateEmployee_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := NewService(repo, &stubClock{now: now}, nil)

	hired := time.Date(2024, 12, 1, 13, 45, 0, 0, time.UTC)

	created, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		Name:         "  Emily Davis  ",
		Email:        "Emily@IT.com",
		DepartmentID: 2,
		Position:     strPtr(" Software Engineer "),
		PhoneNumber:  strPtr(""),
		HireDate:     &hired,
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	if created.Name != "Emily Davis" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.Email != "emily@it.com" {
		t.Fatalf("expected normalized email, got %s", created.Email)
	}
	if created.Position == nil || *created.Position != "Software Engineer" {
		t.Fatalf("expected trimmed position, got %+v", created.Position)
	}
	if created.PhoneNumber != nil {
		t.Fatalf("expected blank phone to be dropped, got %q", *created.PhoneNumber)
	}
	if created.Status != StatusActive {
		t.Fatalf("expected default status Active, got %s", created.Status)
	}
	if created.EmploymentType != EmploymentFullTime {
		t.Fatalf("expected default employment type Full-Time, got %s", created.EmploymentType)
	}
	if created.HireDate == nil || !created.HireDate.Equal(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected hire date: %+v", created.HireDate)
	}
	if !created.CreatedAt.Equal(now) || !created.UpdatedAt.Equal(now) {
		t.Fatalf("expected timestamps to use clock now")
	}
}

func TestService_CreateEmployee_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, &stubClock{now: time.Now().UTC()}, nil)

	if _, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		Name:         "John Doe",
		Email:        "john@hr.com",
		DepartmentID: 1,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		Name:         "Johnny Doe",
		Email:        "JOHN@hr.com",
		DepartmentID: 1,
	})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestService_CreateEmployee_Validation(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeEmployeeRepo(), nil, nil)
	badType := EmploymentType("Intern")
	badStatus := Status("Retired")
	dob := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	hired := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   CreateEmployeeInput
		want error
	}{
		{name: "blank name", in: CreateEmployeeInput{Email: "a@b.c", DepartmentID: 1}, want: ErrInvalidName},
		{name: "bad email", in: CreateEmployeeInput{Name: "A", Email: "invalid", DepartmentID: 1}, want: ErrInvalidEmail},
		{name: "missing department", in: CreateEmployeeInput{Name: "A", Email: "a@b.c"}, want: ErrInvalidDepartmentID},
		{name: "bad employment type", in: CreateEmployeeInput{Name: "A", Email: "a@b.c", DepartmentID: 1, EmploymentType: &badType}, want: ErrInvalidEmploymentType},
		{name: "bad status", in: CreateEmployeeInput{Name: "A", Email: "a@b.c", DepartmentID: 1, Status: &badStatus}, want: ErrInvalidStatus},
		{name: "born after hire", in: CreateEmployeeInput{Name: "A", Email: "a@b.c", DepartmentID: 1, DateOfBirth: &dob, HireDate: &hired}, want: ErrInvalidDateOfBirth},
	}

	for _, tc := range cases {
		if _, err := svc.CreateEmployee(context.Background(), tc.in); !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestService_UpdateEmployee_PartialFields(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, &stubClock{now: time.Now().UTC()}, nil)
	ctx := context.Background()

	hired := time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)
	created, err := svc.CreateEmployee(ctx, CreateEmployeeInput{Name: "John Doe", Email: "john@hr.com", DepartmentID: 1, HireDate: &hired})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dept := int64(3)
	onLeave := StatusOnLeave
	updated, err := svc.UpdateEmployee(ctx, UpdateEmployeeInput{
		ID:           created.ID,
		DepartmentID: &dept,
		Status:       &onLeave,
		Address:      strPtr("123 Main St"),
		HireDateSet:  true,
	})
	if err != nil {
		t.Fatalf("UpdateEmployee returned error: %v", err)
	}

	if updated.DepartmentID != 3 || updated.Status != StatusOnLeave {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.Address == nil || *updated.Address != "123 Main St" {
		t.Fatalf("expected address set, got %+v", updated.Address)
	}
	if updated.HireDate != nil {
		t.Fatalf("expected hire date cleared, got %v", updated.HireDate)
	}
	if updated.Name != "John Doe" {
		t.Fatalf("expected untouched name, got %s", updated.Name)
	}
}

func TestService_UpdateEmployee_EmailConflict(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeEmployeeRepo(), nil, nil)
	ctx := context.Background()

	first, _ := svc.CreateEmployee(ctx, CreateEmployeeInput{Name: "A", Email: "a@hr.com", DepartmentID: 1})
	if _, err := svc.CreateEmployee(ctx, CreateEmployeeInput{Name: "B", Email: "b@hr.com", DepartmentID: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	email := "b@hr.com"
	if _, err := svc.UpdateEmployee(ctx, UpdateEmployeeInput{ID: first.ID, Email: &email}); !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}

	same := "A@hr.com"
	if _, err := svc.UpdateEmployee(ctx, UpdateEmployeeInput{ID: first.ID, Email: &same}); err != nil {
		t.Fatalf("expected own email to be accepted, got %v", err)
	}
}

func TestService_TerminateAndReactivate(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeEmployeeRepo(), nil, nil)
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, CreateEmployeeInput{Name: "James Taylor", Email: "james@it.com", DepartmentID: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.ReactivateEmployee(ctx, GetEmployeeInput{ID: created.ID}); !errors.Is(err, ErrNotTerminated) {
		t.Fatalf("expected ErrNotTerminated, got %v", err)
	}

	terminated, err := svc.TerminateEmployee(ctx, GetEmployeeInput{ID: created.ID})
	if err != nil {
		t.Fatalf("TerminateEmployee returned error: %v", err)
	}
	if terminated.Status != StatusTerminated {
		t.Fatalf("expected Terminated, got %s", terminated.Status)
	}

	if _, err := svc.TerminateEmployee(ctx, GetEmployeeInput{ID: created.ID}); !errors.Is(err, ErrAlreadyTerminated) {
		t.Fatalf("expected ErrAlreadyTerminated, got %v", err)
	}

	reactivated, err := svc.ReactivateEmployee(ctx, GetEmployeeInput{ID: created.ID})
	if err != nil {
		t.Fatalf("ReactivateEmployee returned error: %v", err)
	}
	if reactivated.Status != StatusActive {
		t.Fatalf("expected Active, got %s", reactivated.Status)
	}
}

func TestService_ListEmployees_Pagination(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, &stubClock{now: time.Now().UTC()}, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateEmployee(ctx, CreateEmployeeInput{
			Name:         "Employee " + strconv.Itoa(i),
			Email:        "emp" + strconv.Itoa(i) + "@example.com",
			DepartmentID: 2,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	dept := int64(2)
	result, err := svc.ListEmployees(ctx, ListEmployeesInput{DepartmentID: &dept, PageSize: 2})
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if len(result.Employees) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(result.Employees))
	}
	if result.NextPageToken != "2" {
		t.Fatalf("expected next token '2', got %s", result.NextPageToken)
	}

	result, err = svc.ListEmployees(ctx, ListEmployeesInput{DepartmentID: &dept, PageToken: result.NextPageToken})
	if err != nil {
		t.Fatalf("ListEmployees second page error: %v", err)
	}
	if len(result.Employees) != 1 || result.NextPageToken != "" {
		t.Fatalf("unexpected second page: %d items, token %q", len(result.Employees), result.NextPageToken)
	}

	if _, err := svc.ListEmployees(ctx, ListEmployeesInput{PageToken: "-1"}); !errors.Is(err, ErrInvalidPageToken) {
		t.Fatalf("expected ErrInvalidPageToken, got %v", err)
	}
}

func TestService_GetEmployee_InvalidID(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeEmployeeRepo(), nil, nil)

	if _, err := svc.GetEmployee(context.Background(), GetEmployeeInput{}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := svc.GetEmployee(context.Background(), GetEmployeeInput{ID: 99}); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

package hiring

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/candidate"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/employee"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/salary"
)

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}

type fakeEmployeeStore struct {
	created []*employee.Employee
	err     error
	nextID  int64
	calls   int
}

func (f *fakeEmployeeStore) Create(_ context.Context, e *employee.Employee) (*employee.Employee, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	clone := *e
	clone.ID = f.nextID
	f.created = append(f.created, &clone)
	out := clone
	return &out, nil
}

type fakeSalaryStore struct {
	created []*salary.Salary
	err     error
	calls   int
}

func (f *fakeSalaryStore) Create(_ context.Context, s *salary.Salary) (*salary.Salary, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	clone := *s
	clone.ID = int64(len(f.created) + 100)
	f.created = append(f.created, &clone)
	out := clone
	return &out, nil
}

type fakeCandidateStore struct {
	candidates  map[int64]*candidate.Candidate
	updateErr   error
	updateCalls int
}

func newFakeCandidateStore(cs ...*candidate.Candidate) *fakeCandidateStore {
	store := &fakeCandidateStore{candidates: make(map[int64]*candidate.Candidate)}
	for _, c := range cs {
		clone := *c
		store.candidates[c.ID] = &clone
	}
	return store
}

func (f *fakeCandidateStore) FindByID(_ context.Context, id int64) (*candidate.Candidate, error) {
	c, ok := f.candidates[id]
	if !ok {
		return nil, candidate.ErrCandidateNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *fakeCandidateStore) UpdateStatus(_ context.Context, id int64, status candidate.Status) (*candidate.Candidate, error) {
	f.updateCalls++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	c, ok := f.candidates[id]
	if !ok {
		return nil, candidate.ErrCandidateNotFound
	}
	c.Status = status
	clone := *c
	return &clone, nil
}

func int64Ptr(v int64) *int64 {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func laura() *candidate.Candidate {
	return &candidate.Candidate{
		ID:                  5,
		Name:                "Laura White",
		Email:               "laura@test.com",
		Phone:               "555-0115",
		AppliedPosition:     "Sales Associate",
		AppliedDepartmentID: int64Ptr(5),
		Status:              candidate.StatusInterviewed,
	}
}

var fixedNow = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

type fixture struct {
	employees  *fakeEmployeeStore
	salaries   *fakeSalaryStore
	candidates *fakeCandidateStore
	svc        *Service
}

func newFixture(policy Policy, logger *zap.Logger) *fixture {
	f := &fixture{
		employees:  &fakeEmployeeStore{},
		salaries:   &fakeSalaryStore{},
		candidates: newFakeCandidateStore(laura()),
	}
	f.svc = NewService(f.employees, f.salaries, f.candidates, stubClock{now: fixedNow}, logger, policy)
	return f
}

func monthlySeed(base float64) SalarySeed {
	return SalarySeed{BaseAmount: base, Bonus: floatPtr(0), PaymentFrequency: salary.FrequencyMonthly}
}

func TestService_HireCandidate_Completed(t *testing.T) {
	t.Parallel()

	f := newFixture(Policy{}, nil)

	result, err := f.svc.HireCandidate(context.Background(), HireInput{
		Candidate: laura(),
		Salary:    monthlySeed(60000),
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, OutcomeCompleted, result.Outcome)
	assert.False(t, result.Partial())
	_, parseErr := uuid.Parse(result.WorkflowID)
	assert.NoError(t, parseErr)

	require.Len(t, f.employees.created, 1)
	emp := f.employees.created[0]
	assert.Equal(t, int64(5), emp.DepartmentID)
	require.NotNil(t, emp.Position)
	assert.Equal(t, "Sales Associate", *emp.Position)
	assert.Equal(t, employee.StatusActive, emp.Status)
	assert.Equal(t, employee.EmploymentFullTime, emp.EmploymentType)
	assert.Equal(t, "Laura White", emp.Name)
	assert.Equal(t, "laura@test.com", emp.Email)
	require.NotNil(t, emp.HireDate)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), *emp.HireDate)

	require.Len(t, f.salaries.created, 1)
	sal := f.salaries.created[0]
	assert.Equal(t, emp.ID, sal.EmployeeID)
	assert.InDelta(t, 60000, sal.GrossAmount, 1e-9)
	assert.InDelta(t, 12000, sal.TaxDeductions, 1e-9)
	assert.InDelta(t, 48000, sal.NetAmount, 1e-9)
	require.NotNil(t, sal.AdjustmentType)
	assert.Equal(t, salary.AdjustmentRaise, *sal.AdjustmentType)
	require.NotNil(t, sal.Notes)
	assert.Equal(t, "Hired from candidate 5", *sal.Notes)

	assert.Equal(t, candidate.StatusHired, f.candidates.candidates[5].Status)
	assert.Equal(t, candidate.StatusHired, result.Candidate.Status)
	assert.Equal(t, emp.ID, result.Employee.ID)
	assert.Equal(t, sal.ID, result.Salary.ID)
}

func TestService_HireCandidate_PositionOverrideAndNotes(t *testing.T) {
	t.Parallel()

	f := newFixture(Policy{}, nil)
	position := " Senior Sales Associate "
	notes := "signing bonus agreed"
	effective := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	result, err := f.svc.HireCandidate(context.Background(), HireInput{
		Candidate: laura(),
		Position:  &position,
		Salary: SalarySeed{
			BaseAmount:       95000,
			Bonus:            floatPtr(10000),
			PaymentFrequency: salary.FrequencyBiWeekly,
			EffectiveDate:    &effective,
			Notes:            &notes,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Senior Sales Associate", *result.Employee.Position)
	assert.InDelta(t, 84000, result.Salary.NetAmount, 1e-9)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), result.Salary.EffectiveDate)
	assert.Equal(t, "Hired from candidate 5. signing bonus agreed", *result.Salary.Notes)
}

func TestService_HireCandidate_DateOfBirthTruncated(t *testing.T) {
	t.Parallel()

	f := newFixture(Policy{}, nil)
	dob := time.Date(1990, 6, 15, 22, 45, 0, 0, time.UTC)

	_, err := f.svc.HireCandidate(context.Background(), HireInput{
		Candidate: laura(),
		Salary:    monthlySeed(60000),
		Personal:  PersonalDetails{DateOfBirth: &dob},
	})
	require.NoError(t, err)

	require.Len(t, f.employees.created, 1)
	require.NotNil(t, f.employees.created[0].DateOfBirth)
	assert.Equal(t, time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), *f.employees.created[0].DateOfBirth)
}

func TestService_HireCandidate_ValidationStopsBeforeStores(t *testing.T) {
	t.Parallel()

	noDepartment := laura()
	noDepartment.AppliedDepartmentID = nil

	noPosition := laura()
	noPosition.AppliedPosition = "  "

	bornAfterHire := fixedNow.AddDate(5, 0, 0)
	bornOnHireDay := time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   HireInput
		want error
	}{
		{name: "missing candidate", in: HireInput{Salary: monthlySeed(1)}, want: ErrMissingCandidate},
		{name: "missing department", in: HireInput{Candidate: noDepartment, Salary: monthlySeed(60000)}, want: ErrMissingDepartment},
		{name: "missing position", in: HireInput{Candidate: noPosition, Salary: monthlySeed(60000)}, want: ErrMissingPosition},
		{name: "negative base", in: HireInput{Candidate: laura(), Salary: monthlySeed(-1)}, want: salary.ErrInvalidBaseAmount},
		{name: "nan bonus", in: HireInput{Candidate: laura(), Salary: SalarySeed{BaseAmount: 1, Bonus: floatPtr(math.NaN()), PaymentFrequency: salary.FrequencyWeekly}}, want: salary.ErrInvalidBonus},
		{name: "bad frequency", in: HireInput{Candidate: laura(), Salary: SalarySeed{BaseAmount: 1, PaymentFrequency: "Daily"}}, want: salary.ErrInvalidPaymentFrequency},
		{name: "born after hire", in: HireInput{Candidate: laura(), Salary: monthlySeed(60000), Personal: PersonalDetails{DateOfBirth: &bornAfterHire}}, want: employee.ErrInvalidDateOfBirth},
		{name: "born on hire day", in: HireInput{Candidate: laura(), Salary: monthlySeed(60000), Personal: PersonalDetails{DateOfBirth: &bornOnHireDay}}, want: employee.ErrInvalidDateOfBirth},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(Policy{}, nil)
			result, err := f.svc.HireCandidate(context.Background(), tc.in)

			assert.Nil(t, result)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.ErrorIs(t, err, tc.want)

			assert.Zero(t, f.employees.calls)
			assert.Zero(t, f.salaries.calls)
			assert.Zero(t, f.candidates.updateCalls)
		})
	}
}

func TestService_HireCandidate_SalaryFailureIsPartial(t *testing.T) {
	t.Parallel()

	f := newFixture(Policy{}, nil)
	storeErr := errors.New("salary store unavailable")
	f.salaries.err = storeErr

	result, err := f.svc.HireCandidate(context.Background(), HireInput{Candidate: laura(), Salary: monthlySeed(60000)})

	var partial *PartialFailureError
	require.ErrorAs(t, err, &partial)
	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, StepCreateSalary, partial.Step)

	require.Len(t, f.employees.created, 1)
	assert.Equal(t, f.employees.created[0].ID, partial.EmployeeID)

	require.NotNil(t, result)
	assert.Equal(t, OutcomeSalaryMissing, result.Outcome)
	assert.True(t, result.Partial())
	assert.Nil(t, result.Salary)
	assert.Equal(t, partial.EmployeeID, result.Employee.ID)

	assert.Zero(t, f.candidates.updateCalls)
	assert.Equal(t, candidate.StatusInterviewed, f.candidates.candidates[5].Status)
}

func TestService_HireCandidate_StatusFailureStillSucceeds(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	f := newFixture(Policy{}, zap.New(core))
	f.candidates.updateErr = errors.New("candidate store timeout")

	result, err := f.svc.HireCandidate(context.Background(), HireInput{Candidate: laura(), Salary: monthlySeed(60000)})
	require.NoError(t, err)

	assert.Equal(t, OutcomeCandidateStatusPending, result.Outcome)
	assert.True(t, result.Partial())
	assert.ErrorIs(t, result.StatusErr, f.candidates.updateErr)
	assert.NotNil(t, result.Employee)
	assert.NotNil(t, result.Salary)
	assert.Equal(t, candidate.StatusInterviewed, result.Candidate.Status)

	entries := logs.FilterMessage("candidate status update failed after hire").All()
	require.Len(t, entries, 1)
	assert.Equal(t, result.WorkflowID, entries[0].ContextMap()["workflow_id"])
}

func TestService_HireCandidate_EmployeeFailure(t *testing.T) {
	t.Parallel()

	f := newFixture(Policy{}, nil)
	f.employees.err = employee.ErrEmailAlreadyExists

	result, err := f.svc.HireCandidate(context.Background(), HireInput{Candidate: laura(), Salary: monthlySeed(60000)})

	assert.Nil(t, result)
	var storeErr *StoreOperationError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, StepCreateEmployee, storeErr.Step)
	assert.ErrorIs(t, err, employee.ErrEmailAlreadyExists)
	assert.Zero(t, f.salaries.calls)
	assert.Zero(t, f.candidates.updateCalls)
}

func TestService_HireCandidate_AcceptsAnyStatusByDefault(t *testing.T) {
	t.Parallel()

	f := newFixture(Policy{}, nil)
	applied := laura()
	applied.Status = candidate.StatusApplied

	result, err := f.svc.HireCandidate(context.Background(), HireInput{Candidate: applied, Salary: monthlySeed(60000)})
	require.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, result.Outcome)
}

func TestService_HireCandidate_RequireInterviewedPolicy(t *testing.T) {
	t.Parallel()

	f := newFixture(Policy{RequireInterviewed: true}, nil)
	applied := laura()
	applied.Status = candidate.StatusApplied

	_, err := f.svc.HireCandidate(context.Background(), HireInput{Candidate: applied, Salary: monthlySeed(60000)})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.ErrorIs(t, err, ErrCandidateNotInterviewed)
	assert.Empty(t, f.employees.created)

	result, err := f.svc.HireCandidate(context.Background(), HireInput{Candidate: laura(), Salary: monthlySeed(60000)})
	require.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, result.Outcome)
}

func TestService_HireCandidateByID(t *testing.T) {
	t.Parallel()

	f := newFixture(Policy{}, nil)

	result, err := f.svc.HireCandidateByID(context.Background(), 5, HireInput{Salary: monthlySeed(60000)})
	require.NoError(t, err)
	assert.Equal(t, int64(5), result.Candidate.ID)
	assert.Equal(t, candidate.StatusHired, result.Candidate.Status)

	_, err = f.svc.HireCandidateByID(context.Background(), 99, HireInput{Salary: monthlySeed(60000)})
	var storeErr *StoreOperationError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, StepLoadCandidate, storeErr.Step)
	assert.ErrorIs(t, err, candidate.ErrCandidateNotFound)

	_, err = f.svc.HireCandidateByID(context.Background(), 0, HireInput{})
	assert.ErrorIs(t, err, ErrInvalidCandidateID)
}

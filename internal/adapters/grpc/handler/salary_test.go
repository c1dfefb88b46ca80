package handler

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/adapters/grpc/hrv1"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/salary"
)

type stubSalaryUseCase struct {
	createInput salary.CreateSalaryInput
	updateInput salary.UpdateSalaryInput
	adjustInput salary.AdjustSalaryInput
	employeeID  int64

	out     *salary.Salary
	history []*salary.Salary
	listOut *salary.ListSalariesResult
	err     error
}

func (s *stubSalaryUseCase) CreateSalary(ctx context.Context, in salary.CreateSalaryInput) (*salary.Salary, error) {
	s.createInput = in
	return s.out, s.err
}

func (s *stubSalaryUseCase) GetSalary(ctx context.Context, in salary.GetSalaryInput) (*salary.Salary, error) {
	return s.out, s.err
}

func (s *stubSalaryUseCase) ListSalaries(ctx context.Context, in salary.ListSalariesInput) (*salary.ListSalariesResult, error) {
	return s.listOut, s.err
}

func (s *stubSalaryUseCase) ListSalariesByEmployee(ctx context.Context, employeeID int64) ([]*salary.Salary, error) {
	s.employeeID = employeeID
	return s.history, s.err
}

func (s *stubSalaryUseCase) GetCurrentSalaryForEmployee(ctx context.Context, employeeID int64) (*salary.Salary, error) {
	s.employeeID = employeeID
	return s.out, s.err
}

func (s *stubSalaryUseCase) UpdateSalary(ctx context.Context, in salary.UpdateSalaryInput) (*salary.Salary, error) {
	s.updateInput = in
	return s.out, s.err
}

func (s *stubSalaryUseCase) AdjustSalary(ctx context.Context, in salary.AdjustSalaryInput) (*salary.Salary, error) {
	s.adjustInput = in
	return s.out, s.err
}

func (s *stubSalaryUseCase) DeleteSalary(ctx context.Context, in salary.DeleteSalaryInput) error {
	return s.err
}

func sampleSalary() *salary.Salary {
	adjustment := salary.AdjustmentRaise
	return salary.Normalize(&salary.Salary{
		ID:               1,
		EmployeeID:       1,
		BaseAmount:       85000,
		Bonus:            5000,
		PaymentFrequency: salary.FrequencyMonthly,
		EffectiveDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		AdjustmentType:   &adjustment,
	})
}

func TestSalaryGrpcHandler_CalculateSalary(t *testing.T) {
	t.Parallel()

	handler := NewSalaryGrpcHandler(&stubSalaryUseCase{})

	resp, err := handler.CalculateSalary(context.Background(), &hrv1.CalculateSalaryRequest{BaseAmount: 50000, Bonus: 10000})
	if err != nil {
		t.Fatalf("CalculateSalary returned error: %v", err)
	}

	if resp.GrossAmount != 60000 || resp.TaxDeductions != 12000 || resp.NetAmount != 48000 {
		t.Fatalf("unexpected amounts: %+v", resp)
	}
	if resp.TaxRate != 0.20 {
		t.Fatalf("expected tax rate 0.20, got %v", resp.TaxRate)
	}
}

func TestSalaryGrpcHandler_CalculateSalary_RejectsNegative(t *testing.T) {
	t.Parallel()

	handler := NewSalaryGrpcHandler(&stubSalaryUseCase{})

	for _, req := range []*hrv1.CalculateSalaryRequest{
		{BaseAmount: -1},
		{BaseAmount: 100, Bonus: -5},
	} {
		if _, err := handler.CalculateSalary(context.Background(), req); status.Code(err) != codes.InvalidArgument {
			t.Errorf("expected invalid argument for %+v, got %v", req, status.Code(err))
		}
	}
}

func TestSalaryGrpcHandler_CreateSalary(t *testing.T) {
	t.Parallel()

	stub := &stubSalaryUseCase{out: sampleSalary()}
	handler := NewSalaryGrpcHandler(stub)

	resp, err := handler.CreateSalary(context.Background(), &hrv1.CreateSalaryRequest{
		EmployeeID:       1,
		BaseAmount:       85000,
		Bonus:            floatPtr(5000),
		PaymentFrequency: "Monthly",
		EffectiveDate:    strPtr("2024-01-01"),
		AdjustmentType:   strPtr("raise"),
	})
	if err != nil {
		t.Fatalf("CreateSalary returned error: %v", err)
	}

	if stub.createInput.PaymentFrequency != salary.FrequencyMonthly {
		t.Fatalf("expected frequency converted, got %q", stub.createInput.PaymentFrequency)
	}
	if stub.createInput.AdjustmentType == nil || *stub.createInput.AdjustmentType != salary.AdjustmentRaise {
		t.Fatalf("expected adjustment type converted")
	}
	if resp.Salary.NetAmount != 72000 || resp.Salary.EffectiveDate != "2024-01-01" || resp.Salary.AdjustmentType != "raise" {
		t.Fatalf("unexpected salary: %+v", resp.Salary)
	}
}

func TestSalaryGrpcHandler_CreateSalary_InvalidDate(t *testing.T) {
	t.Parallel()

	handler := NewSalaryGrpcHandler(&stubSalaryUseCase{})

	_, err := handler.CreateSalary(context.Background(), &hrv1.CreateSalaryRequest{EmployeeID: 1, EffectiveDate: strPtr("01/01/2024")})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected invalid argument, got %v", status.Code(err))
	}
}

func TestSalaryGrpcHandler_AdjustSalary(t *testing.T) {
	t.Parallel()

	stub := &stubSalaryUseCase{out: sampleSalary()}
	handler := NewSalaryGrpcHandler(stub)

	if _, err := handler.AdjustSalary(context.Background(), &hrv1.AdjustSalaryRequest{
		EmployeeID:     1,
		BaseAmount:     floatPtr(90000),
		AdjustmentType: "promotion",
	}); err != nil {
		t.Fatalf("AdjustSalary returned error: %v", err)
	}

	if stub.adjustInput.AdjustmentType != salary.AdjustmentPromotion {
		t.Fatalf("expected promotion adjustment, got %q", stub.adjustInput.AdjustmentType)
	}
	if stub.adjustInput.PaymentFrequency != nil {
		t.Fatalf("expected frequency to be left unset")
	}
}

func TestSalaryGrpcHandler_GetCurrentSalary_NotFound(t *testing.T) {
	t.Parallel()

	stub := &stubSalaryUseCase{err: salary.ErrSalaryNotFound}
	handler := NewSalaryGrpcHandler(stub)

	_, err := handler.GetCurrentSalary(context.Background(), &hrv1.EmployeeIDRequest{EmployeeID: 12})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected not found, got %v", status.Code(err))
	}
	if stub.employeeID != 12 {
		t.Fatalf("expected employee id 12, got %d", stub.employeeID)
	}
}

func TestSalaryGrpcHandler_ListSalaryHistory(t *testing.T) {
	t.Parallel()

	stub := &stubSalaryUseCase{history: []*salary.Salary{sampleSalary()}}
	handler := NewSalaryGrpcHandler(stub)

	resp, err := handler.ListSalaryHistory(context.Background(), &hrv1.EmployeeIDRequest{EmployeeID: 1})
	if err != nil {
		t.Fatalf("ListSalaryHistory returned error: %v", err)
	}
	if len(resp.Salaries) != 1 || resp.Salaries[0].GrossAmount != 90000 {
		t.Fatalf("unexpected history: %+v", resp.Salaries)
	}
}

package handler

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/adapters/grpc/hrv1"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/candidate"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/dashboard"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/employee"
)

type stubDashboardUseCase struct {
	out *dashboard.Summary
	err error
}

func (s *stubDashboardUseCase) Summary(ctx context.Context) (*dashboard.Summary, error) {
	return s.out, s.err
}

func TestDashboardGrpcHandler_GetSummary(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	hired := &employee.Employee{ID: 22, Name: "New Hire", Status: employee.StatusActive}
	stub := &stubDashboardUseCase{out: &dashboard.Summary{
		TotalEmployees:   22,
		TotalDepartments: 8,
		TotalCandidates:  5,
		ActiveCandidates: 3,
		TotalPayroll:     600000,
		AverageSalary:    75000,
		DepartmentStats:  []dashboard.DepartmentStat{{DepartmentID: 1, Name: "Human Resources", Count: 3, Budget: 500000}},
		RecentHires:      []*employee.Employee{hired},
		UpcomingAnniversaries: []dashboard.Anniversary{
			{Employee: hired, Date: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), DaysUntil: 10},
		},
		CandidateStatus: []dashboard.StatusCount{{Status: candidate.StatusApplied, Count: 2}},
		GeneratedAt:     now,
	}}
	handler := NewDashboardGrpcHandler(stub)

	resp, err := handler.GetSummary(context.Background(), &hrv1.Empty{})
	if err != nil {
		t.Fatalf("GetSummary returned error: %v", err)
	}

	if resp.TotalEmployees != 22 || resp.ActiveCandidates != 3 || resp.AverageSalary != 75000 {
		t.Fatalf("unexpected totals: %+v", resp)
	}
	if len(resp.DepartmentStats) != 1 || resp.DepartmentStats[0].Count != 3 {
		t.Fatalf("unexpected department stats: %+v", resp.DepartmentStats)
	}
	if len(resp.UpcomingAnniversaries) != 1 || resp.UpcomingAnniversaries[0].Date != "2025-01-20" {
		t.Fatalf("unexpected anniversaries: %+v", resp.UpcomingAnniversaries)
	}
	if resp.CandidateStatus[0].Status != "Applied" {
		t.Fatalf("unexpected status breakdown: %+v", resp.CandidateStatus)
	}
	if !resp.GeneratedAt.Equal(now) {
		t.Fatalf("unexpected generated at: %v", resp.GeneratedAt)
	}
}

func TestDashboardGrpcHandler_GetSummary_Error(t *testing.T) {
	t.Parallel()

	handler := NewDashboardGrpcHandler(&stubDashboardUseCase{err: errors.New("boom")})

	if _, err := handler.GetSummary(context.Background(), &hrv1.Empty{}); status.Code(err) != codes.Internal {
		t.Fatalf("expected internal, got %v", status.Code(err))
	}
}

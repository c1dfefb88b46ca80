package handler

import (
	"context"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/adapters/grpc/hrv1"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/dashboard"
)

// DashboardGrpcHandler は DashboardService の gRPC 実装です。
type DashboardGrpcHandler struct {
	svc dashboard.UseCase
}

// NewDashboardGrpcHandler は DashboardGrpcHandler を生成します。
func NewDashboardGrpcHandler(svc dashboard.UseCase) *DashboardGrpcHandler {
	return &DashboardGrpcHandler{svc: svc}
}

var _ hrv1.DashboardServiceServer = (*DashboardGrpcHandler)(nil)

// GetSummary はダッシュボード集計を返します。
func (h *DashboardGrpcHandler) GetSummary(ctx context.Context, _ *hrv1.Empty) (*hrv1.DashboardSummary, error) {
	summary, err := h.svc.Summary(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	out := &hrv1.DashboardSummary{
		TotalEmployees:        summary.TotalEmployees,
		TotalDepartments:      summary.TotalDepartments,
		TotalCandidates:       summary.TotalCandidates,
		ActiveCandidates:      summary.ActiveCandidates,
		TotalPayroll:          summary.TotalPayroll,
		AverageSalary:         summary.AverageSalary,
		DepartmentStats:       make([]hrv1.DepartmentStat, 0, len(summary.DepartmentStats)),
		RecentHires:           make([]*hrv1.Employee, 0, len(summary.RecentHires)),
		UpcomingAnniversaries: make([]hrv1.Anniversary, 0, len(summary.UpcomingAnniversaries)),
		CandidateStatus:       make([]hrv1.StatusCount, 0, len(summary.CandidateStatus)),
		GeneratedAt:           summary.GeneratedAt,
	}

	for _, stat := range summary.DepartmentStats {
		out.DepartmentStats = append(out.DepartmentStats, hrv1.DepartmentStat{
			DepartmentID: stat.DepartmentID,
			Name:         stat.Name,
			Count:        stat.Count,
			Budget:       stat.Budget,
		})
	}

	for _, emp := range summary.RecentHires {
		out.RecentHires = append(out.RecentHires, toProtoEmployee(emp))
	}

	for _, a := range summary.UpcomingAnniversaries {
		out.UpcomingAnniversaries = append(out.UpcomingAnniversaries, toProtoAnniversary(a))
	}

	for _, sc := range summary.CandidateStatus {
		out.CandidateStatus = append(out.CandidateStatus, hrv1.StatusCount{Status: string(sc.Status), Count: sc.Count})
	}

	return out, nil
}

func toProtoAnniversary(a dashboard.Anniversary) hrv1.Anniversary {
	return hrv1.Anniversary{
		Employee:  toProtoEmployee(a.Employee),
		Date:      formatDate(&a.Date),
		DaysUntil: a.DaysUntil,
	}
}

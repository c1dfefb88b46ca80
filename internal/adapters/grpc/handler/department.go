package handler

import (
	"context"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/adapters/grpc/hrv1"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/department"
)

// DepartmentGrpcHandler は DepartmentService の gRPC 実装です。
type DepartmentGrpcHandler struct {
	svc department.UseCase
}

// NewDepartmentGrpcHandler は DepartmentGrpcHandler を生成します。
func NewDepartmentGrpcHandler(svc department.UseCase) *DepartmentGrpcHandler {
	return &DepartmentGrpcHandler{svc: svc}
}

var _ hrv1.DepartmentServiceServer = (*DepartmentGrpcHandler)(nil)

// CreateDepartment は部署を作成します。
func (h *DepartmentGrpcHandler) CreateDepartment(ctx context.Context, req *hrv1.CreateDepartmentRequest) (*hrv1.DepartmentResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	created, err := h.svc.CreateDepartment(ctx, department.CreateDepartmentInput{
		Name:        req.Name,
		Location:    req.Location,
		Budget:      req.Budget,
		ManagerID:   req.ManagerID,
		Description: req.Description,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &hrv1.DepartmentResponse{Department: toProtoDepartment(created, "")}, nil
}

// GetDepartment は部署を取得します。
func (h *DepartmentGrpcHandler) GetDepartment(ctx context.Context, req *hrv1.IDRequest) (*hrv1.DepartmentResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	found, err := h.svc.GetDepartment(ctx, department.GetDepartmentInput{ID: req.ID})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &hrv1.DepartmentResponse{Department: toProtoDepartment(found, "")}, nil
}

// ListDepartments は部署の一覧を取得します。
func (h *DepartmentGrpcHandler) ListDepartments(ctx context.Context, req *hrv1.ListDepartmentsRequest) (*hrv1.ListDepartmentsResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	in := department.ListDepartmentsInput{PageSize: int(req.PageSize), PageToken: req.PageToken}

	if req.WithManagers {
		rows, next, err := h.svc.ListDepartmentsWithManagers(ctx, in)
		if err != nil {
			return nil, toStatusError(err)
		}
		out := make([]*hrv1.Department, 0, len(rows))
		for _, row := range rows {
			out = append(out, toProtoDepartment(row.Department, row.ManagerName))
		}
		return &hrv1.ListDepartmentsResponse{Departments: out, NextPageToken: next}, nil
	}

	result, err := h.svc.ListDepartments(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	out := make([]*hrv1.Department, 0, len(result.Departments))
	for _, d := range result.Departments {
		out = append(out, toProtoDepartment(d, ""))
	}

	return &hrv1.ListDepartmentsResponse{Departments: out, NextPageToken: result.NextPageToken}, nil
}

// UpdateDepartment は部署情報を更新します。
func (h *DepartmentGrpcHandler) UpdateDepartment(ctx context.Context, req *hrv1.UpdateDepartmentRequest) (*hrv1.DepartmentResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	managerID := req.ManagerID
	if req.ClearManager {
		managerID = nil
	}

	updated, err := h.svc.UpdateDepartment(ctx, department.UpdateDepartmentInput{
		ID:           req.ID,
		Name:         req.Name,
		Location:     req.Location,
		Budget:       req.Budget,
		ManagerID:    managerID,
		ManagerIDSet: req.ManagerID != nil || req.ClearManager,
		Description:  req.Description,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &hrv1.DepartmentResponse{Department: toProtoDepartment(updated, "")}, nil
}

// DeleteDepartment は部署を削除します。
func (h *DepartmentGrpcHandler) DeleteDepartment(ctx context.Context, req *hrv1.IDRequest) (*hrv1.Empty, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	if err := h.svc.DeleteDepartment(ctx, department.DeleteDepartmentInput{ID: req.ID}); err != nil {
		return nil, toStatusError(err)
	}

	return &hrv1.Empty{}, nil
}

func toProtoDepartment(d *department.Department, managerName string) *hrv1.Department {
	if d == nil {
		return nil
	}

	return &hrv1.Department{
		ID:          d.ID,
		Name:        d.Name,
		Location:    d.Location,
		Budget:      d.Budget,
		ManagerID:   d.ManagerID,
		ManagerName: managerName,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

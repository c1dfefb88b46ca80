package handler

import (
	"context"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/adapters/grpc/hrv1"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/employee"
)

// EmployeeGrpcHandler は EmployeeService の gRPC 実装です。
type EmployeeGrpcHandler struct {
	svc employee.UseCase
}

// NewEmployeeGrpcHandler は EmployeeGrpcHandler を生成します。
func NewEmployeeGrpcHandler(svc employee.UseCase) *EmployeeGrpcHandler {
	return &EmployeeGrpcHandler{svc: svc}
}

var _ hrv1.EmployeeServiceServer = (*EmployeeGrpcHandler)(nil)

// CreateEmployee は社員を作成します。
func (h *EmployeeGrpcHandler) CreateEmployee(ctx context.Context, req *hrv1.CreateEmployeeRequest) (*hrv1.EmployeeResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	dateOfBirth, err := parseDateValue(req.DateOfBirth)
	if err != nil {
		return nil, invalidArgument("date_of_birth", err)
	}

	hireDate, err := parseDateValue(req.HireDate)
	if err != nil {
		return nil, invalidArgument("hire_date", err)
	}

	created, err := h.svc.CreateEmployee(ctx, employee.CreateEmployeeInput{
		Name:                  req.Name,
		Email:                 req.Email,
		DepartmentID:          req.DepartmentID,
		PhoneNumber:           req.PhoneNumber,
		Address:               req.Address,
		DateOfBirth:           dateOfBirth,
		Position:              req.Position,
		HireDate:              hireDate,
		EmergencyContact:      req.EmergencyContact,
		EmergencyContactPhone: req.EmergencyContactPhone,
		EmploymentType:        stringEnumOptional[employee.EmploymentType](req.EmploymentType),
		Status:                stringEnumOptional[employee.Status](req.Status),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &hrv1.EmployeeResponse{Employee: toProtoEmployee(created)}, nil
}

// UpdateEmployee は社員情報を更新します。
func (h *EmployeeGrpcHandler) UpdateEmployee(ctx context.Context, req *hrv1.UpdateEmployeeRequest) (*hrv1.EmployeeResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	dateOfBirth, dateOfBirthSet, err := parseDateUpdateValue(req.DateOfBirth)
	if err != nil {
		return nil, invalidArgument("date_of_birth", err)
	}

	hireDate, hireDateSet, err := parseDateUpdateValue(req.HireDate)
	if err != nil {
		return nil, invalidArgument("hire_date", err)
	}

	updated, err := h.svc.UpdateEmployee(ctx, employee.UpdateEmployeeInput{
		ID:                    req.ID,
		Name:                  req.Name,
		Email:                 req.Email,
		DepartmentID:          req.DepartmentID,
		PhoneNumber:           req.PhoneNumber,
		Address:               req.Address,
		DateOfBirth:           dateOfBirth,
		DateOfBirthSet:        dateOfBirthSet,
		Position:              req.Position,
		HireDate:              hireDate,
		HireDateSet:           hireDateSet,
		EmergencyContact:      req.EmergencyContact,
		EmergencyContactPhone: req.EmergencyContactPhone,
		EmploymentType:        stringEnumPtr[employee.EmploymentType](req.EmploymentType),
		Status:                stringEnumPtr[employee.Status](req.Status),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &hrv1.EmployeeResponse{Employee: toProtoEmployee(updated)}, nil
}

// TerminateEmployee は社員を退職状態にします。
func (h *EmployeeGrpcHandler) TerminateEmployee(ctx context.Context, req *hrv1.IDRequest) (*hrv1.EmployeeResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	updated, err := h.svc.TerminateEmployee(ctx, employee.GetEmployeeInput{ID: req.ID})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &hrv1.EmployeeResponse{Employee: toProtoEmployee(updated)}, nil
}

// ReactivateEmployee は退職済みの社員を在籍状態に戻します。
func (h *EmployeeGrpcHandler) ReactivateEmployee(ctx context.Context, req *hrv1.IDRequest) (*hrv1.EmployeeResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	updated, err := h.svc.ReactivateEmployee(ctx, employee.GetEmployeeInput{ID: req.ID})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &hrv1.EmployeeResponse{Employee: toProtoEmployee(updated)}, nil
}

// DeleteEmployee は社員を削除します。
func (h *EmployeeGrpcHandler) DeleteEmployee(ctx context.Context, req *hrv1.IDRequest) (*hrv1.Empty, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	if err := h.svc.DeleteEmployee(ctx, employee.DeleteEmployeeInput{ID: req.ID}); err != nil {
		return nil, toStatusError(err)
	}

	return &hrv1.Empty{}, nil
}

// GetEmployee は社員を取得します。
func (h *EmployeeGrpcHandler) GetEmployee(ctx context.Context, req *hrv1.IDRequest) (*hrv1.EmployeeResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	found, err := h.svc.GetEmployee(ctx, employee.GetEmployeeInput{ID: req.ID})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &hrv1.EmployeeResponse{Employee: toProtoEmployee(found)}, nil
}

// ListEmployees は社員の一覧を取得します。
func (h *EmployeeGrpcHandler) ListEmployees(ctx context.Context, req *hrv1.ListEmployeesRequest) (*hrv1.ListEmployeesResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	result, err := h.svc.ListEmployees(ctx, employee.ListEmployeesInput{
		DepartmentID: req.DepartmentID,
		Status:       stringEnumOptional[employee.Status](req.Status),
		Search:       req.Search,
		PageSize:     int(req.PageSize),
		PageToken:    req.PageToken,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	out := make([]*hrv1.Employee, 0, len(result.Employees))
	for _, emp := range result.Employees {
		out = append(out, toProtoEmployee(emp))
	}

	return &hrv1.ListEmployeesResponse{
		Employees:     out,
		NextPageToken: result.NextPageToken,
	}, nil
}

func toProtoEmployee(emp *employee.Employee) *hrv1.Employee {
	if emp == nil {
		return nil
	}

	return &hrv1.Employee{
		ID:                    emp.ID,
		Name:                  emp.Name,
		Email:                 emp.Email,
		DepartmentID:          emp.DepartmentID,
		PhoneNumber:           emp.PhoneNumber,
		Address:               emp.Address,
		DateOfBirth:           formatDate(emp.DateOfBirth),
		Position:              emp.Position,
		HireDate:              formatDate(emp.HireDate),
		EmergencyContact:      emp.EmergencyContact,
		EmergencyContactPhone: emp.EmergencyContactPhone,
		EmploymentType:        string(emp.EmploymentType),
		Status:                string(emp.Status),
		CreatedAt:             emp.CreatedAt,
		UpdatedAt:             emp.UpdatedAt,
	}
}

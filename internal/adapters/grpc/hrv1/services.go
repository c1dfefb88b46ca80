package hrv1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/adapters/grpc/codec"
)

// Package はサービス名の接頭辞です。
const Package = "hr.v1"

func fullMethod(service, method string) string {
	return "/" + Package + "." + service + "/" + method
}

// unaryHandler はサーバーインターフェースのメソッド式から grpc.MethodHandler を組み立てます。
func unaryHandler[S, Req, Resp any](service, method string, call func(S, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	name := fullMethod(service, method)
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(S), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: name}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(S), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, service, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
	if err := cc.Invoke(ctx, fullMethod(service, method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ---- DepartmentService ----

const departmentService = "DepartmentService"

// DepartmentServiceServer は hr.v1.DepartmentService のサーバー契約です。
type DepartmentServiceServer interface {
	CreateDepartment(context.Context, *CreateDepartmentRequest) (*DepartmentResponse, error)
	GetDepartment(context.Context, *IDRequest) (*DepartmentResponse, error)
	ListDepartments(context.Context, *ListDepartmentsRequest) (*ListDepartmentsResponse, error)
	UpdateDepartment(context.Context, *UpdateDepartmentRequest) (*DepartmentResponse, error)
	DeleteDepartment(context.Context, *IDRequest) (*Empty, error)
}

var DepartmentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: Package + "." + departmentService,
	HandlerType: (*DepartmentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateDepartment", Handler: unaryHandler(departmentService, "CreateDepartment", DepartmentServiceServer.CreateDepartment)},
		{MethodName: "GetDepartment", Handler: unaryHandler(departmentService, "GetDepartment", DepartmentServiceServer.GetDepartment)},
		{MethodName: "ListDepartments", Handler: unaryHandler(departmentService, "ListDepartments", DepartmentServiceServer.ListDepartments)},
		{MethodName: "UpdateDepartment", Handler: unaryHandler(departmentService, "UpdateDepartment", DepartmentServiceServer.UpdateDepartment)},
		{MethodName: "DeleteDepartment", Handler: unaryHandler(departmentService, "DeleteDepartment", DepartmentServiceServer.DeleteDepartment)},
	},
	Metadata: "hr/v1/department.proto",
}

func RegisterDepartmentServiceServer(s grpc.ServiceRegistrar, srv DepartmentServiceServer) {
	s.RegisterService(&DepartmentService_ServiceDesc, srv)
}

// DepartmentServiceClient は hr.v1.DepartmentService のクライアントです。
type DepartmentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDepartmentServiceClient(cc grpc.ClientConnInterface) *DepartmentServiceClient {
	return &DepartmentServiceClient{cc: cc}
}

func (c *DepartmentServiceClient) CreateDepartment(ctx context.Context, in *CreateDepartmentRequest, opts ...grpc.CallOption) (*DepartmentResponse, error) {
	return invoke[DepartmentResponse](ctx, c.cc, departmentService, "CreateDepartment", in, opts)
}

func (c *DepartmentServiceClient) GetDepartment(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*DepartmentResponse, error) {
	return invoke[DepartmentResponse](ctx, c.cc, departmentService, "GetDepartment", in, opts)
}

func (c *DepartmentServiceClient) ListDepartments(ctx context.Context, in *ListDepartmentsRequest, opts ...grpc.CallOption) (*ListDepartmentsResponse, error) {
	return invoke[ListDepartmentsResponse](ctx, c.cc, departmentService, "ListDepartments", in, opts)
}

func (c *DepartmentServiceClient) UpdateDepartment(ctx context.Context, in *UpdateDepartmentRequest, opts ...grpc.CallOption) (*DepartmentResponse, error) {
	return invoke[DepartmentResponse](ctx, c.cc, departmentService, "UpdateDepartment", in, opts)
}

func (c *DepartmentServiceClient) DeleteDepartment(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, departmentService, "DeleteDepartment", in, opts)
}

// ---- EmployeeService ----

const employeeService = "EmployeeService"

// EmployeeServiceServer は hr.v1.EmployeeService のサーバー契約です。
type EmployeeServiceServer interface {
	CreateEmployee(context.Context, *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetEmployee(context.Context, *IDRequest) (*EmployeeResponse, error)
	ListEmployees(context.Context, *ListEmployeesRequest) (*ListEmployeesResponse, error)
	UpdateEmployee(context.Context, *UpdateEmployeeRequest) (*EmployeeResponse, error)
	TerminateEmployee(context.Context, *IDRequest) (*EmployeeResponse, error)
	ReactivateEmployee(context.Context, *IDRequest) (*EmployeeResponse, error)
	DeleteEmployee(context.Context, *IDRequest) (*Empty, error)
}

var EmployeeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: Package + "." + employeeService,
	HandlerType: (*EmployeeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateEmployee", Handler: unaryHandler(employeeService, "CreateEmployee", EmployeeServiceServer.CreateEmployee)},
		{MethodName: "GetEmployee", Handler: unaryHandler(employeeService, "GetEmployee", EmployeeServiceServer.GetEmployee)},
		{MethodName: "ListEmployees", Handler: unaryHandler(employeeService, "ListEmployees", EmployeeServiceServer.ListEmployees)},
		{MethodName: "UpdateEmployee", Handler: unaryHandler(employeeService, "UpdateEmployee", EmployeeServiceServer.UpdateEmployee)},
		{MethodName: "TerminateEmployee", Handler: unaryHandler(employeeService, "TerminateEmployee", EmployeeServiceServer.TerminateEmployee)},
		{MethodName: "ReactivateEmployee", Handler: unaryHandler(employeeService, "ReactivateEmployee", EmployeeServiceServer.ReactivateEmployee)},
		{MethodName: "DeleteEmployee", Handler: unaryHandler(employeeService, "DeleteEmployee", EmployeeServiceServer.DeleteEmployee)},
	},
	Metadata: "hr/v1/employee.proto",
}

func RegisterEmployeeServiceServer(s grpc.ServiceRegistrar, srv EmployeeServiceServer) {
	s.RegisterService(&EmployeeService_ServiceDesc, srv)
}

// EmployeeServiceClient は hr.v1.EmployeeService のクライアントです。
type EmployeeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEmployeeServiceClient(cc grpc.ClientConnInterface) *EmployeeServiceClient {
	return &EmployeeServiceClient{cc: cc}
}

func (c *EmployeeServiceClient) CreateEmployee(ctx context.Context, in *CreateEmployeeRequest, opts ...grpc.CallOption) (*EmployeeResponse, error) {
	return invoke[EmployeeResponse](ctx, c.cc, employeeService, "CreateEmployee", in, opts)
}

func (c *EmployeeServiceClient) GetEmployee(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*EmployeeResponse, error) {
	return invoke[EmployeeResponse](ctx, c.cc, employeeService, "GetEmployee", in, opts)
}

func (c *EmployeeServiceClient) ListEmployees(ctx context.Context, in *ListEmployeesRequest, opts ...grpc.CallOption) (*ListEmployeesResponse, error) {
	return invoke[ListEmployeesResponse](ctx, c.cc, employeeService, "ListEmployees", in, opts)
}

func (c *EmployeeServiceClient) UpdateEmployee(ctx context.Context, in *UpdateEmployeeRequest, opts ...grpc.CallOption) (*EmployeeResponse, error) {
	return invoke[EmployeeResponse](ctx, c.cc, employeeService, "UpdateEmployee", in, opts)
}

func (c *EmployeeServiceClient) TerminateEmployee(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*EmployeeResponse, error) {
	return invoke[EmployeeResponse](ctx, c.cc, employeeService, "TerminateEmployee", in, opts)
}

func (c *EmployeeServiceClient) ReactivateEmployee(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*EmployeeResponse, error) {
	return invoke[EmployeeResponse](ctx, c.cc, employeeService, "ReactivateEmployee", in, opts)
}

func (c *EmployeeServiceClient) DeleteEmployee(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, employeeService, "DeleteEmployee", in, opts)
}

// ---- CandidateService ----

const candidateService = "CandidateService"

// CandidateServiceServer は hr.v1.CandidateService のサーバー契約です。
type CandidateServiceServer interface {
	CreateCandidate(context.Context, *CreateCandidateRequest) (*CandidateResponse, error)
	GetCandidate(context.Context, *IDRequest) (*CandidateResponse, error)
	ListCandidates(context.Context, *ListCandidatesRequest) (*ListCandidatesResponse, error)
	UpdateCandidate(context.Context, *UpdateCandidateRequest) (*CandidateResponse, error)
	UpdateCandidateStatus(context.Context, *UpdateCandidateStatusRequest) (*CandidateResponse, error)
	DeleteCandidate(context.Context, *IDRequest) (*Empty, error)
}

var CandidateService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: Package + "." + candidateService,
	HandlerType: (*CandidateServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateCandidate", Handler: unaryHandler(candidateService, "CreateCandidate", CandidateServiceServer.CreateCandidate)},
		{MethodName: "GetCandidate", Handler: unaryHandler(candidateService, "GetCandidate", CandidateServiceServer.GetCandidate)},
		{MethodName: "ListCandidates", Handler: unaryHandler(candidateService, "ListCandidates", CandidateServiceServer.ListCandidates)},
		{MethodName: "UpdateCandidate", Handler: unaryHandler(candidateService, "UpdateCandidate", CandidateServiceServer.UpdateCandidate)},
		{MethodName: "UpdateCandidateStatus", Handler: unaryHandler(candidateService, "UpdateCandidateStatus", CandidateServiceServer.UpdateCandidateStatus)},
		{MethodName: "DeleteCandidate", Handler: unaryHandler(candidateService, "DeleteCandidate", CandidateServiceServer.DeleteCandidate)},
	},
	Metadata: "hr/v1/candidate.proto",
}

func RegisterCandidateServiceServer(s grpc.ServiceRegistrar, srv CandidateServiceServer) {
	s.RegisterService(&CandidateService_ServiceDesc, srv)
}

// CandidateServiceClient は hr.v1.CandidateService のクライアントです。
type CandidateServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCandidateServiceClient(cc grpc.ClientConnInterface) *CandidateServiceClient {
	return &CandidateServiceClient{cc: cc}
}

func (c *CandidateServiceClient) CreateCandidate(ctx context.Context, in *CreateCandidateRequest, opts ...grpc.CallOption) (*CandidateResponse, error) {
	return invoke[CandidateResponse](ctx, c.cc, candidateService, "CreateCandidate", in, opts)
}

func (c *CandidateServiceClient) GetCandidate(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*CandidateResponse, error) {
	return invoke[CandidateResponse](ctx, c.cc, candidateService, "GetCandidate", in, opts)
}

func (c *CandidateServiceClient) ListCandidates(ctx context.Context, in *ListCandidatesRequest, opts ...grpc.CallOption) (*ListCandidatesResponse, error) {
	return invoke[ListCandidatesResponse](ctx, c.cc, candidateService, "ListCandidates", in, opts)
}

func (c *CandidateServiceClient) UpdateCandidate(ctx context.Context, in *UpdateCandidateRequest, opts ...grpc.CallOption) (*CandidateResponse, error) {
	return invoke[CandidateResponse](ctx, c.cc, candidateService, "UpdateCandidate", in, opts)
}

func (c *CandidateServiceClient) UpdateCandidateStatus(ctx context.Context, in *UpdateCandidateStatusRequest, opts ...grpc.CallOption) (*CandidateResponse, error) {
	return invoke[CandidateResponse](ctx, c.cc, candidateService, "UpdateCandidateStatus", in, opts)
}

func (c *CandidateServiceClient) DeleteCandidate(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, candidateService, "DeleteCandidate", in, opts)
}

// ---- SalaryService ----

const salaryService = "SalaryService"

// SalaryServiceServer は hr.v1.SalaryService のサーバー契約です。
type SalaryServiceServer interface {
	CalculateSalary(context.Context, *CalculateSalaryRequest) (*CalculateSalaryResponse, error)
	CreateSalary(context.Context, *CreateSalaryRequest) (*SalaryResponse, error)
	GetSalary(context.Context, *IDRequest) (*SalaryResponse, error)
	ListSalaries(context.Context, *ListSalariesRequest) (*ListSalariesResponse, error)
	ListSalaryHistory(context.Context, *EmployeeIDRequest) (*ListSalariesResponse, error)
	GetCurrentSalary(context.Context, *EmployeeIDRequest) (*SalaryResponse, error)
	UpdateSalary(context.Context, *UpdateSalaryRequest) (*SalaryResponse, error)
	AdjustSalary(context.Context, *AdjustSalaryRequest) (*SalaryResponse, error)
	DeleteSalary(context.Context, *IDRequest) (*Empty, error)
}

var SalaryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: Package + "." + salaryService,
	HandlerType: (*SalaryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CalculateSalary", Handler: unaryHandler(salaryService, "CalculateSalary", SalaryServiceServer.CalculateSalary)},
		{MethodName: "CreateSalary", Handler: unaryHandler(salaryService, "CreateSalary", SalaryServiceServer.CreateSalary)},
		{MethodName: "GetSalary", Handler: unaryHandler(salaryService, "GetSalary", SalaryServiceServer.GetSalary)},
		{MethodName: "ListSalaries", Handler: unaryHandler(salaryService, "ListSalaries", SalaryServiceServer.ListSalaries)},
		{MethodName: "ListSalaryHistory", Handler: unaryHandler(salaryService, "ListSalaryHistory", SalaryServiceServer.ListSalaryHistory)},
		{MethodName: "GetCurrentSalary", Handler: unaryHandler(salaryService, "GetCurrentSalary", SalaryServiceServer.GetCurrentSalary)},
		{MethodName: "UpdateSalary", Handler: unaryHandler(salaryService, "UpdateSalary", SalaryServiceServer.UpdateSalary)},
		{MethodName: "AdjustSalary", Handler: unaryHandler(salaryService, "AdjustSalary", SalaryServiceServer.AdjustSalary)},
		{MethodName: "DeleteSalary", Handler: unaryHandler(salaryService, "DeleteSalary", SalaryServiceServer.DeleteSalary)},
	},
	Metadata: "hr/v1/salary.proto",
}

func RegisterSalaryServiceServer(s grpc.ServiceRegistrar, srv SalaryServiceServer) {
	s.RegisterService(&SalaryService_ServiceDesc, srv)
}

// SalaryServiceClient は hr.v1.SalaryService のクライアントです。
type SalaryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSalaryServiceClient(cc grpc.ClientConnInterface) *SalaryServiceClient {
	return &SalaryServiceClient{cc: cc}
}

func (c *SalaryServiceClient) CalculateSalary(ctx context.Context, in *CalculateSalaryRequest, opts ...grpc.CallOption) (*CalculateSalaryResponse, error) {
	return invoke[CalculateSalaryResponse](ctx, c.cc, salaryService, "CalculateSalary", in, opts)
}

func (c *SalaryServiceClient) CreateSalary(ctx context.Context, in *CreateSalaryRequest, opts ...grpc.CallOption) (*SalaryResponse, error) {
	return invoke[SalaryResponse](ctx, c.cc, salaryService, "CreateSalary", in, opts)
}

func (c *SalaryServiceClient) GetSalary(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*SalaryResponse, error) {
	return invoke[SalaryResponse](ctx, c.cc, salaryService, "GetSalary", in, opts)
}

func (c *SalaryServiceClient) ListSalaries(ctx context.Context, in *ListSalariesRequest, opts ...grpc.CallOption) (*ListSalariesResponse, error) {
	return invoke[ListSalariesResponse](ctx, c.cc, salaryService, "ListSalaries", in, opts)
}

func (c *SalaryServiceClient) ListSalaryHistory(ctx context.Context, in *EmployeeIDRequest, opts ...grpc.CallOption) (*ListSalariesResponse, error) {
	return invoke[ListSalariesResponse](ctx, c.cc, salaryService, "ListSalaryHistory", in, opts)
}

func (c *SalaryServiceClient) GetCurrentSalary(ctx context.Context, in *EmployeeIDRequest, opts ...grpc.CallOption) (*SalaryResponse, error) {
	return invoke[SalaryResponse](ctx, c.cc, salaryService, "GetCurrentSalary", in, opts)
}

func (c *SalaryServiceClient) UpdateSalary(ctx context.Context, in *UpdateSalaryRequest, opts ...grpc.CallOption) (*SalaryResponse, error) {
	return invoke[SalaryResponse](ctx, c.cc, salaryService, "UpdateSalary", in, opts)
}

func (c *SalaryServiceClient) AdjustSalary(ctx context.Context, in *AdjustSalaryRequest, opts ...grpc.CallOption) (*SalaryResponse, error) {
	return invoke[SalaryResponse](ctx, c.cc, salaryService, "AdjustSalary", in, opts)
}

func (c *SalaryServiceClient) DeleteSalary(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, salaryService, "DeleteSalary", in, opts)
}

// ---- HiringService ----

const hiringService = "HiringService"

// HiringServiceServer は hr.v1.HiringService のサーバー契約です。
type HiringServiceServer interface {
	HireCandidate(context.Context, *HireCandidateRequest) (*HireCandidateResponse, error)
}

var HiringService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: Package + "." + hiringService,
	HandlerType: (*HiringServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "HireCandidate", Handler: unaryHandler(hiringService, "HireCandidate", HiringServiceServer.HireCandidate)},
	},
	Metadata: "hr/v1/hiring.proto",
}

func RegisterHiringServiceServer(s grpc.ServiceRegistrar, srv HiringServiceServer) {
	s.RegisterService(&HiringService_ServiceDesc, srv)
}

// HiringServiceClient は hr.v1.HiringService のクライアントです。
type HiringServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewHiringServiceClient(cc grpc.ClientConnInterface) *HiringServiceClient {
	return &HiringServiceClient{cc: cc}
}

func (c *HiringServiceClient) HireCandidate(ctx context.Context, in *HireCandidateRequest, opts ...grpc.CallOption) (*HireCandidateResponse, error) {
	return invoke[HireCandidateResponse](ctx, c.cc, hiringService, "HireCandidate", in, opts)
}

// ---- DashboardService ----

const dashboardService = "DashboardService"

// DashboardServiceServer は hr.v1.DashboardService のサーバー契約です。
type DashboardServiceServer interface {
	GetSummary(context.Context, *Empty) (*DashboardSummary, error)
}

var DashboardService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: Package + "." + dashboardService,
	HandlerType: (*DashboardServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetSummary", Handler: unaryHandler(dashboardService, "GetSummary", DashboardServiceServer.GetSummary)},
	},
	Metadata: "hr/v1/dashboard.proto",
}

func RegisterDashboardServiceServer(s grpc.ServiceRegistrar, srv DashboardServiceServer) {
	s.RegisterService(&DashboardService_ServiceDesc, srv)
}

// DashboardServiceClient は hr.v1.DashboardService のクライアントです。
type DashboardServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDashboardServiceClient(cc grpc.ClientConnInterface) *DashboardServiceClient {
	return &DashboardServiceClient{cc: cc}
}

func (c *DashboardServiceClient) GetSummary(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*DashboardSummary, error) {
	return invoke[DashboardSummary](ctx, c.cc, dashboardService, "GetSummary", in, opts)
}

package server_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/adapters/grpc/hrv1"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/adapters/repository/memory"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/platform/app"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/platform/config"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/platform/server"
)

func startServer(t *testing.T, logger *zap.Logger) *grpc.ClientConn {
	t.Helper()

	store, err := memory.NewSeededStore()
	require.NoError(t, err)

	services := app.NewServices(app.MemoryRepositories(store), config.HiringConfig{}, logger)
	srv := server.New("bufnet", services, logger)

	lis := bufconn.Listen(1 << 20)
	done := make(chan error, 1)
	go func() { done <- srv.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		srv.GracefulStop()
		require.NoError(t, <-done)
	})
	return conn
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestServer_CalculateSalary(t *testing.T) {
	t.Parallel()

	conn := startServer(t, zap.NewNop())
	client := hrv1.NewSalaryServiceClient(conn)

	resp, err := client.CalculateSalary(testContext(t), &hrv1.CalculateSalaryRequest{BaseAmount: 50000, Bonus: 10000})
	require.NoError(t, err)
	assert.InDelta(t, 60000, resp.GrossAmount, 1e-9)
	assert.InDelta(t, 12000, resp.TaxDeductions, 1e-9)
	assert.InDelta(t, 48000, resp.NetAmount, 1e-9)

	_, err = client.CalculateSalary(testContext(t), &hrv1.CalculateSalaryRequest{BaseAmount: -1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_HireCandidateRoundTrip(t *testing.T) {
	t.Parallel()

	conn := startServer(t, zap.NewNop())
	ctx := testContext(t)

	bonus := 5000.0
	resp, err := hrv1.NewHiringServiceClient(conn).HireCandidate(ctx, &hrv1.HireCandidateRequest{
		CandidateID:      5,
		BaseAmount:       70000,
		Bonus:            &bonus,
		PaymentFrequency: "Monthly",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Outcome)
	assert.NotEmpty(t, resp.WorkflowID)
	require.NotNil(t, resp.Employee)
	assert.Equal(t, int64(23), resp.Employee.ID)
	assert.Equal(t, "Laura White", resp.Employee.Name)
	require.NotNil(t, resp.Salary)
	assert.InDelta(t, 75000, resp.Salary.GrossAmount, 1e-9)
	require.NotNil(t, resp.Candidate)
	assert.Equal(t, "Hired", resp.Candidate.Status)

	current, err := hrv1.NewSalaryServiceClient(conn).GetCurrentSalary(ctx, &hrv1.EmployeeIDRequest{EmployeeID: 23})
	require.NoError(t, err)
	assert.Equal(t, resp.Salary.ID, current.Salary.ID)

	_, err = hrv1.NewHiringServiceClient(conn).HireCandidate(ctx, &hrv1.HireCandidateRequest{
		CandidateID:      999,
		BaseAmount:       1,
		PaymentFrequency: "Monthly",
	})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestServer_DashboardSummary(t *testing.T) {
	t.Parallel()

	conn := startServer(t, zap.NewNop())

	summary, err := hrv1.NewDashboardServiceClient(conn).GetSummary(testContext(t), &hrv1.Empty{})
	require.NoError(t, err)
	assert.Equal(t, 22, summary.TotalEmployees)
	assert.Equal(t, 8, summary.TotalDepartments)
	assert.Equal(t, 5, summary.TotalCandidates)
	assert.Len(t, summary.DepartmentStats, 8)
}

func TestServer_HealthServing(t *testing.T) {
	t.Parallel()

	conn := startServer(t, zap.NewNop())
	client := healthpb.NewHealthClient(conn)

	for _, name := range []string{"", "hr.v1.HiringService", "hr.v1.SalaryService"} {
		resp, err := client.Check(testContext(t), &healthpb.HealthCheckRequest{Service: name})
		require.NoError(t, err, name)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus(), name)
	}
}

func TestServer_RequestIDPropagation(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	conn := startServer(t, zap.New(core))

	ctx := metadata.AppendToOutgoingContext(testContext(t), server.RequestIDKey, "req-123")
	var header metadata.MD
	_, err := hrv1.NewDepartmentServiceClient(conn).GetDepartment(ctx, &hrv1.IDRequest{ID: 1}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, []string{"req-123"}, header.Get(server.RequestIDKey))

	var generated metadata.MD
	_, err = hrv1.NewDepartmentServiceClient(conn).GetDepartment(testContext(t), &hrv1.IDRequest{ID: 404}, grpc.Header(&generated))
	assert.Equal(t, codes.NotFound, status.Code(err))
	require.Len(t, generated.Get(server.RequestIDKey), 1)
	assert.NotEqual(t, "req-123", generated.Get(server.RequestIDKey)[0])

	entries := logs.FilterMessage("rpc finished").FilterField(zap.String("request_id", "req-123")).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/hr.v1.DepartmentService/GetDepartment", entries[0].ContextMap()["method"])
	assert.Equal(t, "OK", entries[0].ContextMap()["code"])
}

package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/adapters/grpc/handler"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/adapters/grpc/hrv1"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/candidate"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/dashboard"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/department"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/employee"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/hiring"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/salary"
)

// Services はサーバーが公開するユースケースの集合です。
type Services struct {
	Departments department.UseCase
	Employees   employee.UseCase
	Candidates  candidate.UseCase
	Salaries    salary.UseCase
	Hiring      hiring.UseCase
	Dashboard   dashboard.UseCase
}

// Server は gRPC サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr string
	grpcServer *grpc.Server
	health     *health.Server
	logger     *zap.Logger
}

// New は指定されたアドレスで待ち受ける gRPC サーバーを構築します。
// ロギングとパニック回復のインターセプタは opts より前に連結されます。
func New(listenAddr string, services Services, logger *zap.Logger, opts ...grpc.ServerOption) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	serverOpts := append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			RequestLoggingInterceptor(logger),
			RecoveryInterceptor(logger),
		),
	}, opts...)
	srv := grpc.NewServer(serverOpts...)

	hrv1.RegisterDepartmentServiceServer(srv, handler.NewDepartmentGrpcHandler(services.Departments))
	hrv1.RegisterEmployeeServiceServer(srv, handler.NewEmployeeGrpcHandler(services.Employees))
	hrv1.RegisterCandidateServiceServer(srv, handler.NewCandidateGrpcHandler(services.Candidates))
	hrv1.RegisterSalaryServiceServer(srv, handler.NewSalaryGrpcHandler(services.Salaries))
	hrv1.RegisterHiringServiceServer(srv, handler.NewHiringGrpcHandler(services.Hiring, logger))
	hrv1.RegisterDashboardServiceServer(srv, handler.NewDashboardGrpcHandler(services.Dashboard))

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	for name := range srv.GetServiceInfo() {
		healthSrv.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}

	return &Server{
		listenAddr: listenAddr,
		grpcServer: srv,
		health:     healthSrv,
		logger:     logger,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}

	go func() {
		<-ctx.Done()
		s.GracefulStop()
	}()

	s.logger.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
	return s.Serve(lis)
}

// Serve は与えられたリスナーで待ち受けます。停止による終了はエラーにしません。
func (s *Server) Serve(lis net.Listener) error {
	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}
	return nil
}

// GracefulStop はヘルスチェックを NOT_SERVING にしてからサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}

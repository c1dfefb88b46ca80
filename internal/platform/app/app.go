// Package app はリポジトリ実装とユースケースを組み立てます。
package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/adapters/repository/memory"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/adapters/repository/postgres"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/candidate"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/dashboard"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/department"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/employee"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/hiring"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/salary"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/platform/config"
	pgdb "github.com/ogurasousui/codex-hr-clean-arch/internal/platform/db/postgres"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/platform/server"
)

// Transactor はトランザクション境界を提供します。
type Transactor interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

// Repositories は永続化アダプタ一式です。Tx が nil の場合は各サービスがトランザクションなしで動作します。
type Repositories struct {
	Departments department.Repository
	Managers    department.ManagerDirectory
	Employees   employee.Repository
	Candidates  candidate.Repository
	Salaries    salary.Repository
	Tx          Transactor
}

// MemoryRepositories はインメモリストアを使うリポジトリ一式を返します。
func MemoryRepositories(store *memory.Store) Repositories {
	departments := memory.NewDepartmentRepository(store)
	return Repositories{
		Departments: departments,
		Managers:    departments,
		Employees:   memory.NewEmployeeRepository(store),
		Candidates:  memory.NewCandidateRepository(store),
		Salaries:    memory.NewSalaryRepository(store),
	}
}

// PostgresRepositories は pgx プールを使うリポジトリ一式を返します。
func PostgresRepositories(pool *pgxpool.Pool, logger *zap.Logger) Repositories {
	departments := postgres.NewDepartmentRepository(pool)
	return Repositories{
		Departments: departments,
		Managers:    departments,
		Employees:   postgres.NewEmployeeRepository(pool),
		Candidates:  postgres.NewCandidateRepository(pool),
		Salaries:    postgres.NewSalaryRepository(pool),
		Tx:          pgdb.NewTransactionManager(pool, logger),
	}
}

// NewServices はリポジトリからユースケースを組み立てます。
func NewServices(repos Repositories, policy config.HiringConfig, logger *zap.Logger) server.Services {
	if logger == nil {
		logger = zap.NewNop()
	}

	return server.Services{
		Departments: department.NewService(repos.Departments, repos.Managers, nil, repos.Tx),
		Employees:   employee.NewService(repos.Employees, nil, repos.Tx),
		Candidates:  candidate.NewService(repos.Candidates, nil, repos.Tx),
		Salaries:    salary.NewService(repos.Salaries, nil, repos.Tx, logger),
		Hiring: hiring.NewService(repos.Employees, repos.Salaries, repos.Candidates, nil, logger,
			hiring.Policy{RequireInterviewed: policy.RequireInterviewed}),
		Dashboard: dashboard.NewService(repos.Employees, repos.Departments, repos.Candidates, repos.Salaries, nil),
	}
}

// Build は設定のドライバに応じてユースケースを組み立てます。
// 返される cleanup は必ず呼び出してください。
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (server.Services, func(), error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Database.UsesMemory() {
		store, err := memory.NewSeededStore()
		if err != nil {
			return server.Services{}, nil, fmt.Errorf("seed memory store: %w", err)
		}
		logger.Info("using in-memory store")
		return NewServices(MemoryRepositories(store), cfg.Hiring, logger), func() {}, nil
	}

	pool, err := pgdb.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return server.Services{}, nil, fmt.Errorf("initialize database pool: %w", err)
	}
	return NewServices(PostgresRepositories(pool, logger), cfg.Hiring, logger), pool.Close, nil
}

package postgres

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/platform/config"
)

func TestBuildPoolConfig(t *testing.T) {
	t.Parallel()

	dbCfg := config.DatabaseConfig{
		Driver:          config.DriverPostgres,
		Host:            "localhost",
		Port:            15432,
		User:            "hr",
		Password:        "p@ss",
		Name:            "hr_records",
		SSLMode:         "disable",
		MaxOpenConns:    20,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 10 * time.Minute,
	}

	poolCfg, err := BuildPoolConfig(dbCfg, zap.NewNop())
	if err != nil {
		t.Fatalf("BuildPoolConfig returned error: %v", err)
	}

	if poolCfg.MaxConns != 20 {
		t.Errorf("expected MaxConns 20, got %d", poolCfg.MaxConns)
	}

	if poolCfg.MinConns != 5 {
		t.Errorf("expected MinConns 5, got %d", poolCfg.MinConns)
	}

	if poolCfg.MaxConnLifetime != 30*time.Minute {
		t.Errorf("unexpected MaxConnLifetime: %v", poolCfg.MaxConnLifetime)
	}

	if poolCfg.MaxConnIdleTime != 10*time.Minute {
		t.Errorf("unexpected MaxConnIdleTime: %v", poolCfg.MaxConnIdleTime)
	}

	if poolCfg.ConnConfig.Database != "hr_records" {
		t.Errorf("expected database hr_records, got %s", poolCfg.ConnConfig.Database)
	}

	if poolCfg.ConnConfig.Password != "p@ss" {
		t.Errorf("expected escaped password to round-trip, got %s", poolCfg.ConnConfig.Password)
	}

	if _, ok := poolCfg.ConnConfig.Tracer.(*QueryLogger); !ok {
		t.Errorf("expected query logger tracer, got %T", poolCfg.ConnConfig.Tracer)
	}
}

func TestBuildPoolConfig_MemoryDriver(t *testing.T) {
	t.Parallel()

	if _, err := BuildPoolConfig(config.DatabaseConfig{Driver: config.DriverMemory}, nil); err == nil {
		t.Fatal("expected error for memory driver")
	}
}

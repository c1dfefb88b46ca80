package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/platform/app"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/platform/config"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/platform/logging"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/platform/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("failed to load .env: %v", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	services, cleanup, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to wire services", zap.Error(err))
	}
	defer cleanup()

	grpcServer := server.New(cfg.Server.ListenAddr, services, logger)

	logger.Info("starting hr server",
		zap.String("config", cfgPath),
		zap.String("driver", cfg.Database.Driver),
		zap.Bool("require_interviewed", cfg.Hiring.RequireInterviewed),
	)

	if err := grpcServer.Run(ctx); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
	logger.Info("server stopped")
}

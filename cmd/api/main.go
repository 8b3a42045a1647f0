package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gicbank/internal/shared/config"
	"gicbank/internal/shared/logger"
	"gicbank/internal/shared/telemetry"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer zl.Sync()

	// Initialize telemetry (if enabled)
	var shutdownTelemetry func(context.Context) error
	if cfg.Telemetry.Enabled {
		shutdownTelemetry, err = telemetry.Init(context.Background(), telemetry.Config{
			ServiceName:  cfg.Telemetry.ServiceName,
			Environment:  cfg.Telemetry.Environment,
			OTLPEndpoint: cfg.Telemetry.OTLPEndpoint,
			MetricsPort:  cfg.Telemetry.MetricsPort,
		}, zl)
		if err != nil {
			return err
		}
	} else {
		zl.Info("telemetry is disabled")
	}

	deps := NewDependencies(zl)
	handler := SetupRoutes(deps, cfg, zl)

	srv := StartServer(handler, cfg.Server.Addr(), zl)

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	GracefulShutdown(srv, shutdownTelemetry, 30*time.Second, zl)
	zl.Info("server stopped", zap.String("addr", srv.Addr))
	return nil
}

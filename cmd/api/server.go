package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// StartServer creates the HTTP server and starts it in the background.
func StartServer(handler http.Handler, addr string, logger *zap.Logger) *http.Server {
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	return srv
}

// GracefulShutdown drains the server, then flushes telemetry.
func GracefulShutdown(srv *http.Server, shutdownTelemetry func(context.Context) error, timeout time.Duration, logger *zap.Logger) {
	logger.Info("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("error shutting down HTTP server", zap.Error(err))
	}

	if shutdownTelemetry != nil {
		if err := shutdownTelemetry(ctx); err != nil {
			logger.Error("error shutting down telemetry", zap.Error(err))
		}
	}
}

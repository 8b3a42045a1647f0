package main

import (
	"net/http"

	"go.uber.org/zap"

	httphandlers "gicbank/internal/interfaces/http"
	"gicbank/internal/shared/config"
	"gicbank/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with middleware.
func SetupRoutes(deps *Dependencies, cfg *config.Config, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", httphandlers.HandleHealth)

	mux.HandleFunc("/api/transactions", deps.TransactionHandler.HandleCreateTransaction)
	mux.HandleFunc("/api/interest-rules", deps.RuleHandler.HandleInterestRules)
	mux.HandleFunc("/api/accounts", deps.AccountHandler.HandleListAccounts)
	mux.HandleFunc("/api/accounts/{$}", deps.AccountHandler.HandleListAccounts)
	mux.HandleFunc("/api/accounts/{id}/balance", deps.AccountHandler.HandleBalance)
	mux.HandleFunc("/api/accounts/{id}/statements/{period}", deps.AccountHandler.HandleStatement)

	// Apply global middleware, outermost first at request time
	handler := middleware.Tracing(mux)
	handler = middleware.CORS(cfg.Server.AllowedHosts)(handler)
	handler = middleware.Telemetry(cfg.Telemetry.ServiceName)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)

	return handler
}

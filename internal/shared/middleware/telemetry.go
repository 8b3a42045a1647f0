package middleware

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defaultOperation = "gicbank-api"

// Telemetry wraps handlers with otelhttp instrumentation under operation.
// Health checks are not traced.
func Telemetry(operation string) func(http.Handler) http.Handler {
	if operation == "" {
		operation = defaultOperation
	}
	return otelhttp.NewMiddleware(operation,
		otelhttp.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/health"
		}),
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}

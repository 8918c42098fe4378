// Package middleware contains HTTP middleware shared by the API router.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/lumina-api/internal/api/shared"
	"github.com/phrazzld/lumina-api/internal/platform/logger"
)

// TraceHeader carries the request's trace ID back to the client.
const TraceHeader = "X-Trace-ID"

// TraceMiddleware adds a trace ID to the request context and response headers.
// It should be applied early in the middleware chain so that every later
// handler can correlate its logs and error responses.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)
		ctx = logger.WithLogger(ctx, logger.FromContextOrDefault(ctx, nil).With("trace_id", traceID))

		w.Header().Set(TraceHeader, traceID)

		slog.DebugContext(ctx, "request started",
			slog.String("trace_id", traceID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

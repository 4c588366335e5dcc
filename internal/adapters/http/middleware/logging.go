package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/logging"
)

// Logging returns middleware that puts a request-scoped logger carrying
// request_id and correlation_id into the context and logs the completion of
// every request. The completion line is logged at Error for 5xx, Warn for
// 4xx and Info otherwise, and names the matched route rather than the path.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx, child := logging.Enrich(r.Context(), logger,
				slog.String("request_id", RequestIDFromContext(r.Context())),
				slog.String("correlation_id", CorrelationIDFromContext(r.Context())),
			)

			child.DebugContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Any("headers", RedactHeaders(r.Header)),
			)

			rec := record(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(rec, r)

			child.Log(ctx, completionLevel(rec.status), "request completed",
				slog.String("method", r.Method),
				slog.String("route", routePattern(r)),
				slog.String("agent_id", strings.TrimSpace(r.Header.Get(headerAgentID))),
				slog.Int("status", rec.status),
				slog.Int64("bytes", rec.written),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// RedactHeaders renders headers as a sorted slog group value. Headers named
// in logging.SensitiveHeaders are replaced with "[REDACTED]" and multi-value
// headers are joined with a comma.
func RedactHeaders(headers http.Header) slog.Value {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		v := strings.Join(headers[k], ",")
		if logging.SensitiveHeaders[strings.ToLower(k)] {
			v = "[REDACTED]"
		}
		attrs = append(attrs, slog.String(k, v))
	}
	return slog.GroupValue(attrs...)
}

// loggerFor returns the request-scoped logger, or fallback outside Logging.
func loggerFor(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if l := logging.FromContext(ctx); l != slog.Default() {
		return l
	}
	return fallback
}

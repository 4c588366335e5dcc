// Package logging builds the service's slog loggers and carries them through
// context.Context.
//
//	logger := logging.New("info", "json", os.Stderr)
//
// Request middleware and the task executor put an enriched logger into the
// context; helpers deep in a call (ledger, saga compensation, outbound
// retries) pick it up with FromContext so their lines carry request_id,
// agent_id or task_id without extra parameters:
//
//	ctx, logger := logging.Enrich(ctx, base, slog.String("task_id", t.ID))
//
// Error lines name the operation and the entity ids and end with the full
// chain:
//
//	logger.ErrorContext(ctx, "failed to complete action",
//	    slog.String("operation", "ReservationService.Authorize"),
//	    slog.String("action_id", id),
//	    slog.Any("error", err),
//	)
//
// Customer data (email, account numbers) and credentials are masked by the
// handler itself, whatever the call site does.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New builds a logger writing to w. level is one of debug, info, warn or
// error in any case; anything else means info. format "text" selects the
// text handler and any other value JSON. Debug loggers also record the
// source location.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// Enrich adds attrs to the logger already carried by ctx, or to base when
// ctx carries none, and stores the result back in the returned context.
func Enrich(ctx context.Context, base *slog.Logger, attrs ...any) (context.Context, *slog.Logger) {
	logger, ok := ctx.Value(contextKey{}).(*slog.Logger)
	if !ok {
		logger = base
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(attrs...)
	return WithLogger(ctx, logger), logger
}

// Package ledger holds helpers shared by services that record their work in
// the action ledger.
package ledger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/logging"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// ErrorFrom converts err into the error record stored on a Failed action.
func ErrorFrom(err error) *action.Error {
	if err == nil {
		return nil
	}

	var ext *domain.ExternalError
	if errors.As(err, &ext) {
		name := ext.Name
		if name == "" {
			name = "ExternalError"
		}
		return &action.Error{Name: name, Code: ext.Code, Message: err.Error()}
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return &action.Error{Name: "ValidationError", Message: err.Error()}
	}

	switch {
	case errors.Is(err, domain.ErrLimitExceeded):
		return &action.Error{Name: "RateLimitExceeded", Message: err.Error()}
	case errors.Is(err, domain.ErrAlreadyInProgress):
		return &action.Error{Name: "AlreadyInProgress", Message: err.Error()}
	case errors.Is(err, context.DeadlineExceeded):
		return &action.Error{Name: "Timeout", Message: err.Error()}
	default:
		return &action.Error{Name: "Error", Message: err.Error()}
	}
}

// GiveUpQuietly marks the action Failed with cause. A ledger error is logged
// and dropped so that the caller keeps reporting cause.
func GiveUpQuietly(ctx context.Context, repo ports.ActionRepository, typeOf action.Type, id string, cause error) {
	ctx = context.WithoutCancel(ctx)
	if _, err := repo.GiveUp(ctx, typeOf, id, ErrorFrom(cause)); err != nil {
		logging.FromContext(ctx).ErrorContext(ctx, "failed to record action failure",
			slog.String("operation", "ledger.GiveUpQuietly"),
			slog.String("action_type", string(typeOf)),
			slog.String("action_id", id),
			slog.Any("cause", cause),
			slog.Any("error", err),
		)
	}
}

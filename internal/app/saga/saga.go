// Package saga runs compensating steps for multi-step operations that span
// independently owned services.
//
// Each forward step that succeeds registers how to undo itself. When a later
// step fails, the registered compensations run in reverse order:
//
//	comp := saga.New("ReservationService.Authorize", metrics)
//
//	if err := limiter.Lock(ctx, key, txID); err != nil {
//		return err
//	}
//	comp.Add("release rate limit slot", func(ctx context.Context) error {
//		return limiter.Release(ctx, key, txID)
//	})
//
//	if _, err := allocate(ctx); err != nil {
//		comp.Run(ctx)
//		return err
//	}
//
// Compensation failures are logged and counted, never returned: the caller
// always reports the error of the forward step that failed.
package saga

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/logging"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/telemetry"
)

// Outcome labels recorded for each compensation.
const (
	OutcomeSuccess = "success"
	OutcomeBenign  = "benign"
	OutcomeFailure = "failure"
)

// Step is one registered compensation.
type Step struct {
	Description string
	Compensate  func(ctx context.Context) error
}

// Compensator collects compensations for one operation. It is not safe for
// concurrent use; each operation owns its own Compensator.
type Compensator struct {
	operation string
	metrics   *telemetry.Metrics
	steps     []Step
}

// New creates an empty Compensator. metrics may be nil.
func New(operation string, metrics *telemetry.Metrics) *Compensator {
	return &Compensator{operation: operation, metrics: metrics}
}

// Add registers the compensation of a step that just succeeded.
func (c *Compensator) Add(description string, compensate func(ctx context.Context) error) {
	c.steps = append(c.steps, Step{Description: description, Compensate: compensate})
}

// Len returns the number of pending compensations.
func (c *Compensator) Len() int {
	return len(c.steps)
}

// Run executes every registered compensation in reverse order and returns
// the outcome of each, in execution order. A failing compensation does not
// stop the remaining ones. Compensations still run when ctx is canceled.
// The Compensator is empty after Run.
func (c *Compensator) Run(ctx context.Context) []string {
	ctx = context.WithoutCancel(ctx)
	logger := logging.FromContext(ctx)

	outcomes := make([]string, 0, len(c.steps))
	for i := len(c.steps) - 1; i >= 0; i-- {
		step := c.steps[i]

		logger.InfoContext(ctx, "compensating step",
			slog.String("operation", c.operation),
			slog.Int("step", i+1),
			slog.String("compensation", step.Description),
		)

		outcome := OutcomeSuccess
		if err := step.Compensate(ctx); err != nil {
			if domain.IsBenignExternal(err) {
				outcome = OutcomeBenign
				logger.InfoContext(ctx, "compensation target already released",
					slog.String("operation", c.operation),
					slog.String("compensation", step.Description),
					slog.Any("error", err),
				)
			} else {
				outcome = OutcomeFailure
				logger.ErrorContext(ctx, "compensation failed",
					slog.String("operation", c.operation),
					slog.Int("step", i+1),
					slog.String("compensation", step.Description),
					slog.Any("error", err),
				)
			}
		}

		c.metrics.RecordCompensation(ctx, step.Description, outcome)
		outcomes = append(outcomes, outcome)
	}

	c.steps = nil
	return outcomes
}

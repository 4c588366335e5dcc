package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/app/ledger"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/task"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/logging"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/telemetry"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// Executor runs claimed tasks through the registry and records each attempt.
type Executor struct {
	repo     ports.TaskRepository
	registry *Registry
	metrics  *telemetry.Metrics
	now      func() time.Time
	logger   *slog.Logger
}

// NewExecutor creates an Executor. metrics may be nil.
func NewExecutor(repo ports.TaskRepository, registry *Registry, metrics *telemetry.Metrics, now func() time.Time, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if now == nil {
		now = time.Now
	}
	return &Executor{
		repo:     repo,
		registry: registry,
		metrics:  metrics,
		now:      now,
		logger:   logger,
	}
}

// ExecuteByName claims one runnable task matching conds and executes it.
// It reports whether a task was claimed. Claim and execution errors are
// logged, not returned, so that one bad task never stops the poll loop.
func (e *Executor) ExecuteByName(ctx context.Context, conds task.ClaimConditions) bool {
	t, ok, err := e.repo.ExecuteOneByName(ctx, conds, e.now())
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to claim task",
			slog.String("operation", "Executor.ExecuteByName"),
			slog.String("task_name", string(conds.Name)),
			slog.Any("error", err),
		)
		return false
	}
	if !ok {
		return false
	}

	_ = e.Execute(ctx, t)
	return true
}

// Execute runs the handler of t and records the attempt. On success the
// task becomes Executed; on failure it stays Running until an operator
// retries or aborts it. The handler error is returned after recording.
func (e *Executor) Execute(ctx context.Context, t *task.Task) error {
	ctx, logger := logging.Enrich(ctx, e.logger,
		slog.String("task_id", t.ID),
		slog.String("task_name", string(t.Name)),
	)

	ctx, span := otel.GetTracerProvider().Tracer("tasks").Start(ctx, "task "+string(t.Name),
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("task.id", t.ID),
			attribute.String("task.name", string(t.Name)),
			attribute.Int("task.remaining_tries", t.RemainingNumberOfTries),
		),
	)
	defer span.End()

	executedAt := e.now()
	runErr := e.run(ctx, t)
	endDate := e.now()

	result := task.ExecutionResult{ExecutedAt: executedAt, EndDate: endDate}
	status := task.StatusExecuted
	outcome := "success"
	if runErr != nil {
		result.Error = executionError(runErr)
		status = task.StatusRunning
		outcome = "failure"

		span.RecordError(runErr)
		span.SetStatus(codes.Error, runErr.Error())
		logger.ErrorContext(ctx, "task attempt failed",
			slog.String("operation", "Executor.Execute"),
			slog.Int("remaining_tries", t.RemainingNumberOfTries),
			slog.Any("error", runErr),
		)
	} else {
		logger.InfoContext(ctx, "task executed", slog.Duration("elapsed", endDate.Sub(executedAt)))
	}
	e.metrics.RecordTask(ctx, string(t.Name), outcome, endDate.Sub(executedAt))

	if err := e.repo.PushExecutionResultByID(context.WithoutCancel(ctx), t.ID, status, result); err != nil {
		logger.ErrorContext(ctx, "failed to record task result",
			slog.String("operation", "Executor.Execute"),
			slog.String("status", string(status)),
			slog.Any("error", err),
		)
		return errors.Join(runErr, err)
	}
	return runErr
}

// panicError carries the stack of a recovered handler panic.
type panicError struct {
	value any
	stack string
}

func (p *panicError) Error() string {
	return fmt.Sprintf("task handler panicked: %v", p.value)
}

func (e *Executor) run(ctx context.Context, t *task.Task) (err error) {
	h, ok := e.registry.Handler(t.Name)
	if !ok {
		return fmt.Errorf("no handler registered for task %s", t.Name)
	}

	defer func() {
		if r := recover(); r != nil {
			err = &panicError{value: r, stack: string(debug.Stack())}
		}
	}()
	return h(ctx, t.Data)
}

// executionError records a failed attempt. A panic keeps the stack of the
// panicking goroutine; any other error gets the stack where the executor
// received it.
func executionError(err error) *task.ExecutionError {
	var p *panicError
	if errors.As(err, &p) {
		return &task.ExecutionError{Name: "Panic", Message: p.Error(), Stack: p.stack}
	}
	rec := ledger.ErrorFrom(err)
	return &task.ExecutionError{Name: rec.Name, Code: rec.Code, Message: rec.Message, Stack: string(debug.Stack())}
}

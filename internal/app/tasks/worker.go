package tasks

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/task"
)

// WorkerConfig tunes the poll loop.
type WorkerConfig struct {
	// Project restricts claims to one project; empty claims any.
	Project string
	// Names restricts the polled task names; empty polls every registered one.
	Names           []task.Name
	Concurrency     int
	PollInterval    time.Duration
	MaxPollInterval time.Duration
}

// Worker polls the queue for every configured task name. Each round claims
// at most one task per name with at most Concurrency handlers in flight.
// Idle rounds back off exponentially up to MaxPollInterval; a round that
// executes anything polls again immediately.
type Worker struct {
	executor *Executor
	cfg      WorkerConfig
	logger   *slog.Logger
}

// NewWorker creates a Worker, filling zero settings with defaults.
func NewWorker(executor *Executor, cfg WorkerConfig, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if len(cfg.Names) == 0 {
		cfg.Names = executor.registry.Names()
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	if cfg.MaxPollInterval < cfg.PollInterval {
		cfg.MaxPollInterval = cfg.PollInterval
	}
	return &Worker{executor: executor, cfg: cfg, logger: logger}
}

// Run polls until ctx is canceled. In-flight handlers finish before Run
// returns ctx.Err().
func (w *Worker) Run(ctx context.Context) error {
	w.logger.InfoContext(ctx, "task worker started",
		slog.String("project", w.cfg.Project),
		slog.Int("concurrency", w.cfg.Concurrency),
		slog.Any("names", w.cfg.Names),
	)

	backoff := w.cfg.PollInterval
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.InfoContext(ctx, "task worker stopped")
			return ctx.Err()
		case <-timer.C:
		}

		if w.Poll(ctx) > 0 {
			backoff = w.cfg.PollInterval
			timer.Reset(0)
			continue
		}

		timer.Reset(backoff)
		backoff = min(backoff*2, w.cfg.MaxPollInterval)
	}
}

// Poll runs one round and returns the number of tasks executed. A canceled
// ctx stops names that have not started yet; started handlers finish.
func (w *Worker) Poll(ctx context.Context) int {
	var executed atomic.Int32

	g := new(errgroup.Group)
	g.SetLimit(w.cfg.Concurrency)
	for _, name := range w.cfg.Names {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if w.executor.ExecuteByName(ctx, task.ClaimConditions{Project: w.cfg.Project, Name: name}) {
				executed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	return int(executed.Load())
}

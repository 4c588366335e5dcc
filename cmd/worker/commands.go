package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/app/tasks"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/container"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/task"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/config"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

const serviceName = "boxoffice-worker"

// rootOptions holds global flags for all commands.
type rootOptions struct {
	Profile   string
	ConfigDir string
}

// session holds the App booted by the root command for its subcommands.
type session struct {
	*container.App
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	rt := &session{}

	cmd := &cobra.Command{
		Use:           serviceName,
		Short:         "Runs and maintains the orchestrator's task queue",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			app, err := container.Boot(cmd.Context(), serviceName, opts.Profile, os.Stderr, config.WithConfigDir(opts.ConfigDir))
			rt.App = app
			return err
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return rt.Close()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Profile, "profile", os.Getenv("APP_PROFILE"), "config profile (local, dev, qa, prod)")
	cmd.PersistentFlags().StringVar(&opts.ConfigDir, "config-dir", "configs", "directory holding the config YAML files")

	cmd.AddCommand(newRunCommand(rt))
	cmd.AddCommand(newSweepCommand(rt, "retry", "Move stuck Running tasks with tries left back to Ready", retryStuck))
	cmd.AddCommand(newSweepCommand(rt, "abort", "Move stuck Running tasks without tries left to Aborted", abortStuck))

	return cmd
}

func newRunCommand(rt *session) *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Poll the queue and execute due tasks until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := do.Invoke[*tasks.Registry](rt.Injector)
			if err != nil {
				return fmt.Errorf("resolving task registry: %w", err)
			}
			if err := registry.Validate(); err != nil {
				return fmt.Errorf("validating task registry: %w", err)
			}
			executor, err := do.Invoke[*tasks.Executor](rt.Injector)
			if err != nil {
				return fmt.Errorf("resolving executor: %w", err)
			}

			wc := workerConfig(rt.Config.Worker)
			if concurrency > 0 {
				wc.Concurrency = concurrency
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			err = tasks.NewWorker(executor, wc, rt.Logger).Run(ctx)
			if errors.Is(err, context.Canceled) {
				rt.Logger.Info("shutdown complete")
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "override worker.concurrency")
	return cmd
}

// sweepFunc moves stuck tasks last tried before cutoff and reports how many moved.
type sweepFunc func(ctx context.Context, repo ports.TaskRepository, cutoff time.Time) (int64, error)

func retryStuck(ctx context.Context, repo ports.TaskRepository, cutoff time.Time) (int64, error) {
	return repo.RetryStuck(ctx, cutoff)
}

func abortStuck(ctx context.Context, repo ports.TaskRepository, cutoff time.Time) (int64, error) {
	return repo.AbortStuck(ctx, cutoff)
}

func newSweepCommand(rt *session, use, short string, sweep sweepFunc) *cobra.Command {
	var stuckAfter time.Duration

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stores, err := do.Invoke[*container.Stores](rt.Injector)
			if err != nil {
				return fmt.Errorf("resolving stores: %w", err)
			}

			after := rt.Config.Worker.StuckAfter
			if stuckAfter > 0 {
				after = stuckAfter
			}
			cutoff := time.Now().Add(-after)

			n, err := sweep(cmd.Context(), stores.Tasks, cutoff)
			if err != nil {
				return fmt.Errorf("%s stuck tasks: %w", use, err)
			}

			rt.Logger.Info("swept stuck tasks",
				slog.String("sweep", use),
				slog.Time("cutoff", cutoff),
				slog.Int64("moved", n),
			)
			cmd.Printf("%d\n", n)
			return nil
		},
	}

	cmd.Flags().DurationVar(&stuckAfter, "stuck-after", 0, "override worker.stuck_after")
	return cmd
}

func workerConfig(cfg config.WorkerConfig) tasks.WorkerConfig {
	names := make([]task.Name, 0, len(cfg.Names))
	for _, n := range cfg.Names {
		names = append(names, task.Name(n))
	}
	return tasks.WorkerConfig{
		Project:         cfg.Project,
		Names:           names,
		Concurrency:     cfg.Concurrency,
		PollInterval:    cfg.PollInterval,
		MaxPollInterval: cfg.MaxPollInterval,
	}
}

package container

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/config"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/logging"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/telemetry"
)

const telemetryFlushTimeout = 5 * time.Second

// App is the per-process state of a command: the loaded profile, its
// logger and the dependency graph.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Injector *do.RootScope

	otel *telemetry.Providers
}

// Boot loads profile, starts telemetry for service and registers the shared
// graph. Nothing is opened yet; stores connect on first resolution. Logs
// go to logOut.
func Boot(ctx context.Context, service, profile string, logOut io.Writer, opts ...config.Option) (*App, error) {
	if profile == "" {
		return nil, errors.New("a profile is required: set APP_PROFILE or --profile (local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	otel, err := telemetry.Setup(ctx, cfg.Telemetry, service)
	if err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, logOut)
	if service != "" {
		logger = logger.With(slog.String("service", service))
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	Register(injector)

	logger.InfoContext(ctx, "booted",
		slog.String("profile", profile),
		slog.String("store", cfg.Store.Driver),
		slog.String("exporter", cfg.Telemetry.Exporter),
	)
	return &App{Config: cfg, Logger: logger, Injector: injector, otel: otel}, nil
}

// Close releases the opened stores and flushes telemetry. It is safe on a
// nil App.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	errs := []error{Close(a.Injector)}

	ctx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
	defer cancel()
	if err := a.otel.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("flushing telemetry: %w", err))
	}
	return errors.Join(errs...)
}

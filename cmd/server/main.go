// Package main runs the orchestration API until SIGINT or SIGTERM, then
// drains in-flight requests. Queued tasks are run by cmd/worker.
package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/http"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/container"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/config"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/telemetry"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

const serviceName = "boxoffice-api"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := container.Boot(ctx, serviceName, os.Getenv("APP_PROFILE"), os.Stderr)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			app.Logger.Error("closing", slog.Any("error", closeErr))
		}
	}()

	provideHTTP(app.Injector)

	// Resolving the server wires the whole graph and opens the stores.
	server, err := do.Invoke[*adapthttp.Server](app.Injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("serving: %w", err)
	}

	app.Logger.Info("shutdown complete")
	return nil
}

// provideHTTP adds the router and the server to the shared graph.
func provideHTTP(i do.Injector) {
	do.Provide(i, func(i do.Injector) (nethttp.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		logger := do.MustInvoke[*slog.Logger](i)

		h := adapthttp.Handlers{
			Transactions: handlers.NewTransactionHandler(do.MustInvoke[ports.OrderService](i)),
			Authorizations: handlers.NewAuthorizationHandler(
				do.MustInvoke[ports.ReservationService](i),
				do.MustInvoke[ports.PointAwardService](i),
			),
			Actions: handlers.NewActionHandler(do.MustInvoke[ports.ActionQueryService](i)),
			Health:  handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i), container.Critical...),
		}

		return adapthttp.NewRouter(h,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(i, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(
			do.MustInvoke[*config.Config](i).Server,
			do.MustInvoke[nethttp.Handler](i),
			do.MustInvoke[*slog.Logger](i),
		), nil
	})
}

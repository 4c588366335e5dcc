// Package container wires the stores, remote clients and application
// services shared by the HTTP server and the task worker using samber/do.
package container

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/memory"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/postgres"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/redis"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/app"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/app/tasks"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/config"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/health"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/httpclient"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/telemetry"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

const openTimeout = 10 * time.Second

// Critical names the health checks whose failure makes the process unable
// to serve. Remote backends are not critical.
var Critical = []string{"postgres", "redis"}

// Stores bundles the repositories of the selected store driver.
type Stores struct {
	Transactions ports.TransactionRepository
	Actions      ports.ActionRepository
	Tasks        ports.TaskRepository
	checker      ports.HealthChecker
}

// Locks bundles the lock store and the rate limiter.
type Locks struct {
	Locks   ports.LockStore
	Limiter ports.RateLimiter
	checker ports.HealthChecker
}

// Clients bundles the ACL clients of every remote collaborator.
type Clients struct {
	Reservation *acl.ReservationClient
	Account     *acl.AccountClient
	BoxOffice   *acl.BoxOfficeClient
	Notify      *acl.NotifyClient
}

// closers collects the release functions of resources opened so far.
type closers struct {
	mu  sync.Mutex
	fns []func() error
}

func (c *closers) add(fn func() error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fns = append(c.fns, fn)
}

// Register provides everything the server and the worker share. cfg, logger
// and *telemetry.Metrics (possibly nil) must already be provided.
func Register(i do.Injector) {
	do.ProvideValue(i, &closers{})
	do.Provide(i, provideStores)
	do.Provide(i, provideLocks)
	do.Provide(i, provideClients)

	do.Provide(i, func(i do.Injector) (ports.ReservationService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		stores := do.MustInvoke[*Stores](i)
		locks := do.MustInvoke[*Locks](i)
		clients := do.MustInvoke[*Clients](i)
		return app.NewReservationService(app.ReservationDeps{
			Transactions: stores.Transactions,
			Actions:      stores.Actions,
			Limiter:      locks.Limiter,
			Reservations: clients.Reservation,
			BoxOffice:    clients.BoxOffice,
			RateLimit:    cfg.RateLimit,
			Metrics:      do.MustInvoke[*telemetry.Metrics](i),
		}, do.MustInvoke[*slog.Logger](i)), nil
	})

	do.Provide(i, func(i do.Injector) (ports.PointAwardService, error) {
		stores := do.MustInvoke[*Stores](i)
		return app.NewPointAwardService(app.PointAwardDeps{
			Transactions: stores.Transactions,
			Actions:      stores.Actions,
			Locks:        do.MustInvoke[*Locks](i).Locks,
			Accounts:     do.MustInvoke[*Clients](i).Account,
			Metrics:      do.MustInvoke[*telemetry.Metrics](i),
		}, do.MustInvoke[*slog.Logger](i)), nil
	})

	do.Provide(i, func(i do.Injector) (ports.OrderService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		stores := do.MustInvoke[*Stores](i)
		return app.NewOrderService(app.OrderDeps{
			Transactions: stores.Transactions,
			Actions:      stores.Actions,
			Tasks:        stores.Tasks,
			Order:        cfg.Order,
			Project:      cfg.Worker.Project,
		}, do.MustInvoke[*slog.Logger](i)), nil
	})

	do.Provide(i, func(i do.Injector) (ports.ActionQueryService, error) {
		stores := do.MustInvoke[*Stores](i)
		return app.NewActionQueryService(stores.Transactions, stores.Actions, do.MustInvoke[*slog.Logger](i)), nil
	})

	do.Provide(i, func(i do.Injector) (*tasks.Registry, error) {
		stores := do.MustInvoke[*Stores](i)
		clients := do.MustInvoke[*Clients](i)
		delivery := app.NewDelivery(app.DeliveryDeps{
			Actions:      stores.Actions,
			Reservations: clients.Reservation,
			BoxOffice:    clients.BoxOffice,
			Accounts:     clients.Account,
			Email:        clients.Notify,
			Webhook:      clients.Notify,
			Seats:        do.MustInvoke[ports.ReservationService](i),
			Points:       do.MustInvoke[ports.PointAwardService](i),
		}, do.MustInvoke[*slog.Logger](i))
		return tasks.NewRegistry(delivery.Handlers())
	})

	do.Provide(i, func(i do.Injector) (*tasks.Executor, error) {
		return tasks.NewExecutor(
			do.MustInvoke[*Stores](i).Tasks,
			do.MustInvoke[*tasks.Registry](i),
			do.MustInvoke[*telemetry.Metrics](i),
			time.Now,
			do.MustInvoke[*slog.Logger](i),
		), nil
	})

	do.Provide(i, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New(do.MustInvoke[*config.Config](i).Server.HealthTimeout)
		if c := do.MustInvoke[*Stores](i).checker; c != nil {
			registry.Register(c)
		}
		if c := do.MustInvoke[*Locks](i).checker; c != nil {
			registry.Register(c)
		}
		clients := do.MustInvoke[*Clients](i)
		registry.Register(clients.Reservation)
		registry.Register(clients.Account)
		registry.Register(clients.BoxOffice)
		registry.Register(clients.Notify)
		return registry, nil
	})
}

// Close releases the stores and the lock client opened so far, newest first.
// Bundles never resolved stay unopened.
func Close(i do.Injector) error {
	c, err := do.Invoke[*closers](i)
	if err != nil {
		return nil
	}

	c.mu.Lock()
	fns := slices.Clone(c.fns)
	c.fns = nil
	c.mu.Unlock()

	var errs []error
	for _, fn := range slices.Backward(fns) {
		errs = append(errs, fn())
	}
	return errors.Join(errs...)
}

func provideStores(i do.Injector) (*Stores, error) {
	cfg := do.MustInvoke[*config.Config](i)
	logger := do.MustInvoke[*slog.Logger](i)

	if cfg.Store.Driver != "postgres" {
		logger.Warn("using in-memory store; state is lost on restart")
		queue := memory.NewTaskRepository(time.Now)
		return &Stores{
			Transactions: memory.NewTransactionRepository(time.Now, queue),
			Actions:      memory.NewActionRepository(time.Now),
			Tasks:        queue,
		}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	defer cancel()

	store, err := postgres.Open(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	if cfg.Store.AutoMigrate {
		if err := store.Migrate(); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("migrating postgres: %w", err)
		}
		logger.Info("postgres schema up to date")
	}

	do.MustInvoke[*closers](i).add(store.Close)
	return &Stores{
		Transactions: postgres.NewTransactionRepository(store, time.Now),
		Actions:      postgres.NewActionRepository(store, time.Now),
		Tasks:        postgres.NewTaskRepository(store, time.Now),
		checker:      store,
	}, nil
}

func provideLocks(i do.Injector) (*Locks, error) {
	cfg := do.MustInvoke[*config.Config](i)
	logger := do.MustInvoke[*slog.Logger](i)

	if cfg.Redis.Addr == "" {
		logger.Warn("using in-memory locks; they are not shared between processes")
		return &Locks{
			Locks:   memory.NewLockStore(cfg.Locks.RegistrationTTL, time.Now),
			Limiter: memory.NewRateLimiter(cfg.RateLimit.Capacity, time.Now),
		}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	defer cancel()

	client, err := redis.Open(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}

	do.MustInvoke[*closers](i).add(client.Close)
	return &Locks{
		Locks:   redis.NewLockStore(client, cfg.Locks.RegistrationTTL),
		Limiter: redis.NewRateLimiter(client, cfg.RateLimit.Capacity),
		checker: redis.NewHealthChecker(client),
	}, nil
}

func provideClients(i do.Injector) (*Clients, error) {
	cfg := do.MustInvoke[*config.Config](i)
	logger := do.MustInvoke[*slog.Logger](i)
	metrics := do.MustInvoke[*telemetry.Metrics](i)

	newClient := func(c *config.ClientConfig, name string) *httpclient.Client {
		return httpclient.New(c, name, metrics, logger)
	}

	return &Clients{
		Reservation: acl.NewReservationClient(newClient(&cfg.Clients.Reservation, "reservation-api"), logger),
		Account:     acl.NewAccountClient(newClient(&cfg.Clients.Account, "account-api"), logger),
		BoxOffice:   acl.NewBoxOfficeClient(newClient(&cfg.Clients.BoxOffice, "boxoffice-api"), logger),
		Notify:      acl.NewNotifyClient(newClient(&cfg.Clients.Notify, "notify-api"), logger),
	}, nil
}

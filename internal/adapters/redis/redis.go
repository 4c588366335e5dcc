// Package redis implements the lock store and the rate limiter on Redis.
// Locks are single keys written with SET NX PX; rate-limit windows are sets of
// slot keys updated by Lua scripts so each call is one atomic step on the
// server.
package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/config"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthChecker = (*HealthChecker)(nil)

// Open creates a client for cfg and verifies the connection.
func Open(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// HealthChecker reports whether Redis answers PING.
type HealthChecker struct {
	client goredis.Cmdable
}

// NewHealthChecker creates a checker for client.
func NewHealthChecker(client goredis.Cmdable) *HealthChecker {
	return &HealthChecker{client: client}
}

// Name implements ports.HealthChecker.
func (h *HealthChecker) Name() string {
	return "redis"
}

// HealthCheck implements ports.HealthChecker.
func (h *HealthChecker) HealthCheck(ctx context.Context) error {
	return h.client.Ping(ctx).Err()
}

package config

import (
	"errors"
	"fmt"
	"slices"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	drivers    = []string{"memory", "postgres"}
	exporters  = []string{"stdout", "otlp"}
)

// problems collects every violated rule so one load reports all of them.
type problems []error

// require records the formatted message unless ok holds.
func (p *problems) require(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed []string) {
	p.require(slices.Contains(allowed, got), "%s must be one of %v, got %q", key, allowed, got)
}

// Validate checks every section and joins the violations.
func (c *Config) Validate() error {
	var p problems

	s := c.Server
	p.require(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.require(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.require(s.WriteTimeout > 0, "server.write_timeout must be positive")
	p.require(s.RequestTimeout > 0 && s.RequestTimeout < s.WriteTimeout,
		"server.request_timeout must be positive and below write_timeout (%s), got %s", s.WriteTimeout, s.RequestTimeout)
	p.require(s.ShutdownTimeout > 0, "server.shutdown_timeout must be positive")

	p.oneOf("log.level", c.Log.Level, logLevels)
	p.oneOf("log.format", c.Log.Format, logFormats)

	p.oneOf("store.driver", c.Store.Driver, drivers)
	if c.Store.Driver == "postgres" {
		p.require(c.Store.DSN != "", "store.dsn must not be empty when driver is postgres")
		p.require(c.Store.MaxOpenConns >= 1, "store.max_open_conns must be >= 1, got %d", c.Store.MaxOpenConns)
	}

	p.require(c.Locks.RegistrationTTL > 0, "locks.registration_ttl must be positive")

	p.require(c.RateLimit.Window > 0, "rate_limit.window must be positive")
	for category, capacity := range c.RateLimit.Categories {
		p.require(capacity >= 1, "rate_limit.categories.%s must be >= 1, got %d", category, capacity)
	}

	w := c.Worker
	p.require(w.Concurrency >= 1, "worker.concurrency must be >= 1, got %d", w.Concurrency)
	p.require(w.PollInterval > 0, "worker.poll_interval must be positive")
	p.require(w.MaxPollInterval >= w.PollInterval, "worker.max_poll_interval must not be less than worker.poll_interval")
	p.require(w.StuckAfter > 0, "worker.stuck_after must be positive")
	p.require(!slices.Contains(w.Names, ""), "worker.names must not contain empty names")

	for key, cl := range map[string]ClientConfig{
		"clients.reservation": c.Clients.Reservation,
		"clients.account":     c.Clients.Account,
		"clients.boxoffice":   c.Clients.BoxOffice,
		"clients.notify":      c.Clients.Notify,
	} {
		cl.check(&p, key)
	}

	if c.Telemetry.Enabled {
		p.oneOf("telemetry.exporter", c.Telemetry.Exporter, exporters)
		p.require(c.Telemetry.Exporter != "otlp" || c.Telemetry.Endpoint != "",
			"telemetry.endpoint must not be empty when exporter is otlp")
	}

	return errors.Join(p...)
}

func (cl ClientConfig) check(p *problems, key string) {
	p.require(cl.BaseURL != "", "%s.base_url must not be empty", key)
	p.require(cl.Timeout > 0, "%s.timeout must be positive", key)
	p.require(cl.Retry.MaxAttempts >= 1, "%s.retry.max_attempts must be >= 1, got %d", key, cl.Retry.MaxAttempts)
	p.require(cl.Retry.Multiplier > 0, "%s.retry.multiplier must be positive, got %g", key, cl.Retry.Multiplier)
	p.require(cl.CircuitBreaker.MaxFailures >= 1,
		"%s.circuit_breaker.max_failures must be >= 1, got %d", key, cl.CircuitBreaker.MaxFailures)
	p.require(cl.RateLimit.RequestsPerSecond >= 0, "%s.rate_limit.requests_per_second must not be negative", key)
}

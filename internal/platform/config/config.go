// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service and the task worker.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Store     StoreConfig     `koanf:"store"`
	Redis     RedisConfig     `koanf:"redis"`
	Locks     LocksConfig     `koanf:"locks"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Worker    WorkerConfig    `koanf:"worker"`
	Order     OrderConfig     `koanf:"order"`
	Clients   ClientsConfig   `koanf:"clients"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings. RequestTimeout bounds handler
// work and must leave room under WriteTimeout for the 504 response.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	HealthTimeout   time.Duration `koanf:"health_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StoreConfig selects the backend of the action ledger, task queue and
// transaction store. The memory driver keeps everything in process and is
// meant for the local profile and tests.
type StoreConfig struct {
	Driver          string        `koanf:"driver"`
	DSN             string        `koanf:"dsn"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
}

// RedisConfig holds the lock store connection. An empty Addr selects the
// in-memory lock store.
type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// LocksConfig holds the TTL of the registration lock. The TTL must exceed the
// longest legitimate registration.
type LocksConfig struct {
	RegistrationTTL time.Duration `koanf:"registration_ttl"`
}

// RateLimitConfig holds the windowed quotas for scarce ticket categories.
type RateLimitConfig struct {
	Window     time.Duration  `koanf:"window"`
	Categories map[string]int `koanf:"categories"`
}

// Capacity returns the quota of category, or 0 when it is not rate limited.
func (r RateLimitConfig) Capacity(category string) int {
	if category == "" {
		return 0
	}
	return r.Categories[category]
}

// WorkerConfig holds the task executor poll loop settings.
type WorkerConfig struct {
	Project         string        `koanf:"project"`
	Names           []string      `koanf:"names"`
	Concurrency     int           `koanf:"concurrency"`
	PollInterval    time.Duration `koanf:"poll_interval"`
	MaxPollInterval time.Duration `koanf:"max_poll_interval"`
	StuckAfter      time.Duration `koanf:"stuck_after"`
}

// OrderConfig holds settings applied when an order is confirmed.
type OrderConfig struct {
	WebhookURL    string `koanf:"webhook_url"`
	NumberOfTries int    `koanf:"number_of_tries"`
	EmailSubject  string `koanf:"email_subject"`
}

// ClientsConfig holds one outbound client per remote collaborator.
type ClientsConfig struct {
	Reservation ClientConfig `koanf:"reservation"`
	Account     ClientConfig `koanf:"account"`
	BoxOffice   ClientConfig `koanf:"boxoffice"`
	Notify      ClientConfig `koanf:"notify"`
}

// ClientConfig holds downstream HTTP client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      ClientRateConfig     `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// ClientRateConfig throttles outbound requests. Zero disables throttling.
type ClientRateConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultStoreMaxOpenConns = 10
	defaultStoreMaxIdleConns = 5

	defaultWorkerConcurrency = 4
	defaultOrderTries        = 10
)

var clientNames = []string{"reservation", "account", "boxoffice", "notify"}

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	d := map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"server.request_timeout":  "8s",
		"server.shutdown_timeout": "15s",
		"server.health_timeout":   "2s",

		"log.level":  "info",
		"log.format": "json",

		"store.driver":            "memory",
		"store.dsn":               "",
		"store.max_open_conns":    defaultStoreMaxOpenConns,
		"store.max_idle_conns":    defaultStoreMaxIdleConns,
		"store.conn_max_lifetime": "30m",
		"store.auto_migrate":      false,

		"redis.addr": "",
		"redis.db":   0,

		"locks.registration_ttl": "2h",

		"rate_limit.window": "1h",

		"worker.concurrency":       defaultWorkerConcurrency,
		"worker.poll_interval":     "500ms",
		"worker.max_poll_interval": "10s",
		"worker.stuck_after":       "15m",
		"worker.names":             []string{},

		"order.number_of_tries": defaultOrderTries,
		"order.email_subject":   "Your order",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "boxoffice-orchestrator",
	}

	for _, name := range clientNames {
		prefix := "clients." + name + "."
		d[prefix+"timeout"] = "30s"
		d[prefix+"retry.max_attempts"] = defaultRetryMaxAttempts
		d[prefix+"retry.initial_interval"] = "100ms"
		d[prefix+"retry.max_interval"] = "10s"
		d[prefix+"retry.multiplier"] = defaultRetryMultiplier
		d[prefix+"circuit_breaker.max_failures"] = defaultCircuitBreakerMaxFailures
		d[prefix+"circuit_breaker.timeout"] = "30s"
		d[prefix+"circuit_breaker.half_open_limit"] = defaultCircuitBreakerHalfOpen
		d[prefix+"rate_limit.requests_per_second"] = 0
		d[prefix+"rate_limit.burst_size"] = 1
	}

	return d
}

package ports

import "context"

// HealthChecker is a store or remote backend that readiness depends on.
// Name keys the component in the readiness body, so it must be stable.
type HealthChecker interface {
	Name() string
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs the registered checkers for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll maps each checker name to its outcome; nil is healthy.
	CheckAll(ctx context.Context) map[string]error
}

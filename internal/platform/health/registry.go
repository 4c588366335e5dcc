// Package health runs the readiness checks of the stores and the remote
// backends. Checks run concurrently and each is bounded by the registry's
// timeout, so one hung dependency cannot stall the probe.
package health

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry holds one checker per name.
type Registry struct {
	timeout time.Duration

	mu       sync.RWMutex
	checkers map[string]ports.HealthChecker
}

// New creates an empty registry. A timeout of zero leaves checks bounded
// only by the caller's context.
func New(timeout time.Duration) *Registry {
	return &Registry{timeout: timeout, checkers: make(map[string]ports.HealthChecker)}
}

// Register adds checker under its Name, replacing an earlier checker with
// the same name.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[name] = checker
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.checkers))
	for name := range r.checkers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// CheckAll runs every check and returns one entry per name; nil means
// healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make(map[string]ports.HealthChecker, len(r.checkers))
	for name, c := range r.checkers {
		checkers[name] = c
	}
	r.mu.RUnlock()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make(map[string]error, len(checkers))
	)
	for name, c := range checkers {
		wg.Go(func() {
			err := r.check(ctx, name, c)
			mu.Lock()
			results[name] = err
			mu.Unlock()
		})
	}
	wg.Wait()

	return results
}

// check runs c and gives up when ctx or the registry timeout ends first,
// even if c ignores its context.
func (r *Registry) check(ctx context.Context, name string, c ports.HealthChecker) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() { done <- c.HealthCheck(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%s: check abandoned: %w", name, context.Cause(ctx))
	}
}

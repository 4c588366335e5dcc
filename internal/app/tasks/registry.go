// Package tasks executes queued tasks: a registry maps every task name to its
// handler, the executor runs one claimed task and records the attempt, and
// the worker polls the queue with bounded concurrency.
package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/task"
)

// Handler executes the data of one task. A returned error fails the attempt.
type Handler func(ctx context.Context, data json.RawMessage) error

// Typed adapts a handler of a typed payload. Undecodable data fails the
// attempt with a validation error.
func Typed[D task.Data](fn func(context.Context, D) error) Handler {
	return func(ctx context.Context, raw json.RawMessage) error {
		data, err := task.DecodeData[D](raw)
		if err != nil {
			return err
		}
		return fn(ctx, data)
	}
}

// Registry maps task names to handlers.
type Registry struct {
	handlers map[task.Name]Handler
}

// NewRegistry copies handlers into a Registry. Names outside the closed task
// name set are rejected.
func NewRegistry(handlers map[task.Name]Handler) (*Registry, error) {
	r := &Registry{handlers: make(map[task.Name]Handler, len(handlers))}
	for name, h := range handlers {
		if !name.IsValid() {
			return nil, fmt.Errorf("registering handler: unknown task name %q", name)
		}
		if h == nil {
			return nil, fmt.Errorf("registering handler: nil handler for %s", name)
		}
		r.handlers[name] = h
	}
	return r, nil
}

// Validate returns an error naming every task without a handler. Run it at
// startup so that no queued task can reach an unhandled name.
func (r *Registry) Validate() error {
	var errs []error
	for _, name := range task.Names() {
		if _, ok := r.handlers[name]; !ok {
			errs = append(errs, fmt.Errorf("no handler registered for task %s", name))
		}
	}
	return errors.Join(errs...)
}

// Handler returns the handler of name.
func (r *Registry) Handler(name task.Name) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []task.Name {
	names := make([]task.Name, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

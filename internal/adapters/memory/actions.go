// Package memory provides in-process implementations of the store ports.
// Each store guards its map with a mutex so that every operation is one
// atomic step, matching the conditional-update semantics of the Postgres
// and Redis adapters. Used by the local profile and by service tests.
package memory

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// Compile-time interface check.
var _ ports.ActionRepository = (*ActionRepository)(nil)

// ActionRepository is an in-memory action ledger. Actions are kept in
// insertion order, which is the "store order" of unsorted searches.
type ActionRepository struct {
	mu      sync.Mutex
	now     func() time.Time
	actions []*action.Action
}

// NewActionRepository creates an empty ledger. A nil clock uses time.Now.
func NewActionRepository(now func() time.Time) *ActionRepository {
	if now == nil {
		now = time.Now
	}
	return &ActionRepository{now: now}
}

// Start persists a new Active action.
func (r *ActionRepository) Start(_ context.Context, attrs action.Attributes) (*action.Action, error) {
	if err := attrs.Validate(); err != nil {
		return nil, err
	}

	a := &action.Action{
		ID:        uuid.NewString(),
		TypeOf:    attrs.TypeOf,
		Status:    action.StatusActive,
		StartDate: r.now().UTC(),
		Agent:     attrs.Agent,
		Recipient: attrs.Recipient,
		Object:    slices.Clone(attrs.Object),
		Purpose:   clonePurpose(attrs.Purpose),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, a)

	return cloneAction(a), nil
}

// Complete moves an Active action to Completed.
func (r *ActionRepository) Complete(_ context.Context, typeOf action.Type, id string, result json.RawMessage) (*action.Action, error) {
	return r.transition(typeOf, id, []action.Status{action.StatusActive}, func(a *action.Action, end time.Time) {
		a.Status = action.StatusCompleted
		a.EndDate = &end
		a.Result = slices.Clone(result)
	})
}

// Cancel moves an Active or Completed action to Canceled.
func (r *ActionRepository) Cancel(_ context.Context, typeOf action.Type, id string) (*action.Action, error) {
	return r.transition(typeOf, id, []action.Status{action.StatusActive, action.StatusCompleted}, func(a *action.Action, end time.Time) {
		a.Status = action.StatusCanceled
		if a.EndDate == nil {
			a.EndDate = &end
		}
	})
}

// GiveUp moves an Active action to Failed.
func (r *ActionRepository) GiveUp(_ context.Context, typeOf action.Type, id string, actionErr *action.Error) (*action.Action, error) {
	return r.transition(typeOf, id, []action.Status{action.StatusActive}, func(a *action.Action, end time.Time) {
		a.Status = action.StatusFailed
		a.EndDate = &end
		if actionErr != nil {
			e := *actionErr
			a.Error = &e
		}
	})
}

// transition applies mutate to the action matching (typeOf, id) only when
// its status is one of from.
func (r *ActionRepository) transition(typeOf action.Type, id string, from []action.Status, mutate func(*action.Action, time.Time)) (*action.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.actions {
		if a.ID != id || a.TypeOf != typeOf || !slices.Contains(from, a.Status) {
			continue
		}
		mutate(a, r.now().UTC())
		return cloneAction(a), nil
	}

	return nil, fmt.Errorf("%s %s: %w", typeOf, id, domain.ErrNotFound)
}

// FindByID returns the action matching (typeOf, id) in any status.
func (r *ActionRepository) FindByID(_ context.Context, typeOf action.Type, id string) (*action.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.actions {
		if a.ID == id && a.TypeOf == typeOf {
			return cloneAction(a), nil
		}
	}
	return nil, fmt.Errorf("%s %s: %w", typeOf, id, domain.ErrNotFound)
}

// SearchByPurpose returns every action matching conds.
func (r *ActionRepository) SearchByPurpose(_ context.Context, conds action.PurposeConditions) ([]action.Action, error) {
	if err := conds.Validate(); err != nil {
		return nil, err
	}
	return r.search(conds.Matches, conds.Sort), nil
}

// SearchByOrderNumber returns actions about or performed for the order.
func (r *ActionRepository) SearchByOrderNumber(_ context.Context, orderNumber string, sort action.Sort) ([]action.Action, error) {
	if orderNumber == "" {
		return nil, domain.NewValidationError("orderNumber", domain.MsgRequired)
	}
	return r.search(func(a *action.Action) bool {
		return action.MatchesOrderNumber(a, orderNumber)
	}, sort), nil
}

func (r *ActionRepository) search(match func(*action.Action) bool, sort action.Sort) []action.Action {
	r.mu.Lock()
	out := make([]action.Action, 0)
	for _, a := range r.actions {
		if match(a) {
			out = append(out, *cloneAction(a))
		}
	}
	r.mu.Unlock()

	switch sort.StartDate {
	case action.SortAscending:
		slices.SortStableFunc(out, func(a, b action.Action) int { return a.StartDate.Compare(b.StartDate) })
	case action.SortDescending:
		slices.SortStableFunc(out, func(a, b action.Action) int { return cmp.Compare(b.StartDate.UnixNano(), a.StartDate.UnixNano()) })
	case action.SortNone:
	}
	return out
}

func cloneAction(a *action.Action) *action.Action {
	c := *a
	c.Object = slices.Clone(a.Object)
	c.Result = slices.Clone(a.Result)
	c.Purpose = clonePurpose(a.Purpose)
	if a.EndDate != nil {
		end := *a.EndDate
		c.EndDate = &end
	}
	if a.Error != nil {
		e := *a.Error
		c.Error = &e
	}
	if a.Recipient != nil {
		rcp := *a.Recipient
		c.Recipient = &rcp
	}
	return &c
}

func clonePurpose(p *action.Purpose) *action.Purpose {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

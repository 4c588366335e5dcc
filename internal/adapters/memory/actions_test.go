package memory

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
)

// fakeClock returns a clock that advances by one second on every read, so
// that records created in sequence have distinct start dates.
func fakeClock() func() time.Time {
	var mu sync.Mutex
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
}

func authorizeAttrs(txID string) action.Attributes {
	return action.Attributes{
		TypeOf: action.TypeAuthorize,
		Agent:  action.Participant{TypeOf: "Person", ID: "agent-1"},
		Object: json.RawMessage(`{"typeOf":"SeatReservation"}`),
		Purpose: &action.Purpose{
			TypeOf: "PlaceOrder",
			ID:     txID,
		},
	}
}

func TestActionRepository_StartAndFind(t *testing.T) {
	t.Parallel()
	repo := NewActionRepository(fakeClock())
	ctx := context.Background()

	started, err := repo.Start(ctx, authorizeAttrs("tx-1"))
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if started.ID == "" {
		t.Fatal("Start() ID is empty")
	}
	if started.Status != action.StatusActive {
		t.Errorf("Status = %q, want %q", started.Status, action.StatusActive)
	}
	if started.EndDate != nil {
		t.Errorf("EndDate = %v, want nil", started.EndDate)
	}

	found, err := repo.FindByID(ctx, action.TypeAuthorize, started.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.ID != started.ID || found.Status != action.StatusActive {
		t.Errorf("FindByID() = %+v, want id %s Active", found, started.ID)
	}
	if found.ObjectType() != action.ObjectSeatReservation {
		t.Errorf("ObjectType() = %q, want %q", found.ObjectType(), action.ObjectSeatReservation)
	}
}

func TestActionRepository_Start_Invalid(t *testing.T) {
	t.Parallel()
	repo := NewActionRepository(fakeClock())

	_, err := repo.Start(context.Background(), action.Attributes{TypeOf: action.TypeAuthorize})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Start() error = %v, want ErrValidation", err)
	}
}

func TestActionRepository_FindByID_WrongType(t *testing.T) {
	t.Parallel()
	repo := NewActionRepository(fakeClock())
	ctx := context.Background()

	a, err := repo.Start(ctx, authorizeAttrs("tx-1"))
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	_, err = repo.FindByID(ctx, action.TypeGive, a.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("FindByID() error = %v, want ErrNotFound", err)
	}
}

func TestActionRepository_CompleteIsTerminal(t *testing.T) {
	t.Parallel()
	repo := NewActionRepository(fakeClock())
	ctx := context.Background()

	a, err := repo.Start(ctx, authorizeAttrs("tx-1"))
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	completed, err := repo.Complete(ctx, action.TypeAuthorize, a.ID, json.RawMessage(`{"reservationNumber":"R1"}`))
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if completed.Status != action.StatusCompleted {
		t.Errorf("Status = %q, want %q", completed.Status, action.StatusCompleted)
	}
	if completed.EndDate == nil || completed.EndDate.Before(completed.StartDate) {
		t.Errorf("EndDate = %v, want >= StartDate %v", completed.EndDate, completed.StartDate)
	}

	if _, err := repo.Complete(ctx, action.TypeAuthorize, a.ID, nil); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second Complete() error = %v, want ErrNotFound", err)
	}
	if _, err := repo.GiveUp(ctx, action.TypeAuthorize, a.ID, &action.Error{Name: "Error"}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GiveUp() after Complete error = %v, want ErrNotFound", err)
	}

	found, err := repo.FindByID(ctx, action.TypeAuthorize, a.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.Status != action.StatusCompleted || string(found.Result) != `{"reservationNumber":"R1"}` {
		t.Errorf("stored action = %+v, want untouched Completed", found)
	}
}

func TestActionRepository_GiveUpTwice(t *testing.T) {
	t.Parallel()
	repo := NewActionRepository(fakeClock())
	ctx := context.Background()

	a, err := repo.Start(ctx, authorizeAttrs("tx-1"))
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	failed, err := repo.GiveUp(ctx, action.TypeAuthorize, a.ID, &action.Error{Name: "ExternalError", Message: "boom"})
	if err != nil {
		t.Fatalf("GiveUp() error = %v", err)
	}
	if failed.Status != action.StatusFailed || failed.Error == nil || failed.Error.Message != "boom" {
		t.Errorf("GiveUp() = %+v, want Failed with error", failed)
	}

	if _, err := repo.GiveUp(ctx, action.TypeAuthorize, a.ID, nil); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second GiveUp() error = %v, want ErrNotFound", err)
	}
	if _, err := repo.Cancel(ctx, action.TypeAuthorize, a.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Cancel() of Failed action error = %v, want ErrNotFound", err)
	}
}

func TestActionRepository_Cancel(t *testing.T) {
	t.Parallel()

	t.Run("cancels completed action and keeps its end date", func(t *testing.T) {
		t.Parallel()
		repo := NewActionRepository(fakeClock())
		ctx := context.Background()

		a, _ := repo.Start(ctx, authorizeAttrs("tx-1"))
		completed, err := repo.Complete(ctx, action.TypeAuthorize, a.ID, json.RawMessage(`{}`))
		if err != nil {
			t.Fatalf("Complete() error = %v", err)
		}

		canceled, err := repo.Cancel(ctx, action.TypeAuthorize, a.ID)
		if err != nil {
			t.Fatalf("Cancel() error = %v", err)
		}
		if canceled.Status != action.StatusCanceled {
			t.Errorf("Status = %q, want %q", canceled.Status, action.StatusCanceled)
		}
		if !canceled.EndDate.Equal(*completed.EndDate) {
			t.Errorf("EndDate = %v, want %v", canceled.EndDate, completed.EndDate)
		}
	})

	t.Run("cancels active action", func(t *testing.T) {
		t.Parallel()
		repo := NewActionRepository(fakeClock())
		ctx := context.Background()

		a, _ := repo.Start(ctx, authorizeAttrs("tx-1"))
		canceled, err := repo.Cancel(ctx, action.TypeAuthorize, a.ID)
		if err != nil {
			t.Fatalf("Cancel() error = %v", err)
		}
		if canceled.EndDate == nil {
			t.Error("EndDate = nil, want set")
		}
	})

	t.Run("second cancel is not found", func(t *testing.T) {
		t.Parallel()
		repo := NewActionRepository(fakeClock())
		ctx := context.Background()

		a, _ := repo.Start(ctx, authorizeAttrs("tx-1"))
		if _, err := repo.Cancel(ctx, action.TypeAuthorize, a.ID); err != nil {
			t.Fatalf("Cancel() error = %v", err)
		}
		if _, err := repo.Cancel(ctx, action.TypeAuthorize, a.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("second Cancel() error = %v, want ErrNotFound", err)
		}
	})
}

func TestActionRepository_ConcurrentComplete(t *testing.T) {
	t.Parallel()
	repo := NewActionRepository(fakeClock())
	ctx := context.Background()

	a, _ := repo.Start(ctx, authorizeAttrs("tx-1"))

	const callers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for range callers {
		wg.Go(func() {
			if _, err := repo.Complete(ctx, action.TypeAuthorize, a.ID, json.RawMessage(`{}`)); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		})
	}
	wg.Wait()

	if successes != 1 {
		t.Errorf("successful Complete() calls = %d, want 1", successes)
	}
}

func TestActionRepository_SearchByPurpose(t *testing.T) {
	t.Parallel()
	repo := NewActionRepository(fakeClock())
	ctx := context.Background()

	first, _ := repo.Start(ctx, authorizeAttrs("tx-1"))
	second, _ := repo.Start(ctx, authorizeAttrs("tx-1"))
	_, _ = repo.Start(ctx, authorizeAttrs("tx-2"))
	give := authorizeAttrs("tx-1")
	give.TypeOf = action.TypeGive
	_, _ = repo.Start(ctx, give)

	tests := []struct {
		name    string
		conds   action.PurposeConditions
		wantIDs []string
		wantLen int
	}{
		{
			name: "by type and purpose id in store order",
			conds: action.PurposeConditions{
				TypeOf:  action.TypeAuthorize,
				Purpose: action.PurposeFilter{TypeOf: "PlaceOrder", ID: "tx-1"},
			},
			wantIDs: []string{first.ID, second.ID},
		},
		{
			name: "descending start date",
			conds: action.PurposeConditions{
				TypeOf:  action.TypeAuthorize,
				Purpose: action.PurposeFilter{TypeOf: "PlaceOrder", ID: "tx-1"},
				Sort:    action.Sort{StartDate: action.SortDescending},
			},
			wantIDs: []string{second.ID, first.ID},
		},
		{
			name: "any type for purpose",
			conds: action.PurposeConditions{
				Purpose: action.PurposeFilter{TypeOf: "PlaceOrder", ID: "tx-1"},
			},
			wantLen: 3,
		},
		{
			name: "purpose type only",
			conds: action.PurposeConditions{
				TypeOf:  action.TypeAuthorize,
				Purpose: action.PurposeFilter{TypeOf: "PlaceOrder"},
			},
			wantLen: 3,
		},
		{
			name: "no match",
			conds: action.PurposeConditions{
				Purpose: action.PurposeFilter{TypeOf: "PlaceOrder", ID: "tx-9"},
			},
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := repo.SearchByPurpose(ctx, tt.conds)
			if err != nil {
				t.Fatalf("SearchByPurpose() error = %v", err)
			}
			if tt.wantIDs != nil {
				if len(got) != len(tt.wantIDs) {
					t.Fatalf("len = %d, want %d", len(got), len(tt.wantIDs))
				}
				for i, id := range tt.wantIDs {
					if got[i].ID != id {
						t.Errorf("got[%d].ID = %s, want %s", i, got[i].ID, id)
					}
				}
				return
			}
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestActionRepository_SearchByPurpose_RequiresPurposeType(t *testing.T) {
	t.Parallel()
	repo := NewActionRepository(fakeClock())

	_, err := repo.SearchByPurpose(context.Background(), action.PurposeConditions{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("SearchByPurpose() error = %v, want ErrValidation", err)
	}
}

func TestActionRepository_SearchByOrderNumber(t *testing.T) {
	t.Parallel()
	repo := NewActionRepository(fakeClock())
	ctx := context.Background()

	byObject := authorizeAttrs("tx-1")
	byObject.TypeOf = action.TypeSend
	byObject.Object = json.RawMessage(`{"typeOf":"EmailMessage","orderNumber":"ORD-1"}`)
	a1, _ := repo.Start(ctx, byObject)

	byPurpose := authorizeAttrs("tx-1")
	byPurpose.TypeOf = action.TypeConfirm
	byPurpose.Purpose.OrderNumber = "ORD-1"
	a2, _ := repo.Start(ctx, byPurpose)

	other := authorizeAttrs("tx-2")
	other.Purpose.OrderNumber = "ORD-2"
	_, _ = repo.Start(ctx, other)

	got, err := repo.SearchByOrderNumber(ctx, "ORD-1", action.Sort{StartDate: action.SortDescending})
	if err != nil {
		t.Fatalf("SearchByOrderNumber() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != a2.ID || got[1].ID != a1.ID {
		t.Errorf("order = [%s %s], want [%s %s]", got[0].ID, got[1].ID, a2.ID, a1.ID)
	}

	if _, err := repo.SearchByOrderNumber(ctx, "", action.Sort{}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("SearchByOrderNumber(\"\") error = %v, want ErrValidation", err)
	}
}

func TestActionRepository_ReturnsCopies(t *testing.T) {
	t.Parallel()
	repo := NewActionRepository(fakeClock())
	ctx := context.Background()

	a, _ := repo.Start(ctx, authorizeAttrs("tx-1"))
	a.Purpose.ID = "mutated"

	found, _ := repo.FindByID(ctx, action.TypeAuthorize, a.ID)
	if found.Purpose.ID != "tx-1" {
		t.Errorf("Purpose.ID = %q, want %q", found.Purpose.ID, "tx-1")
	}
}

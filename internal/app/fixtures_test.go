package app

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/memory"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/event"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/transaction"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

var rateLimit = config.RateLimitConfig{
	Window:     time.Hour,
	Categories: map[string]int{"wheelchair": 1},
}

func testEvent(allocator event.Allocator) *event.Event {
	return &event.Event{
		ID:        "ev-1",
		Name:      "Evening show",
		StartDate: time.Date(2025, 6, 10, 19, 0, 0, 0, time.UTC),
		Allocator: allocator,
		TicketTypes: []event.TicketType{
			{ID: "adult", Name: "Adult", Price: 3000},
			{ID: "wheelchair", Name: "Wheelchair space", Price: 1500, Category: "wheelchair"},
		},
	}
}

func testSeats() []event.Seat {
	return []event.Seat{
		{Section: "A", Number: "1", Available: true},
		{Section: "A", Number: "2", Available: true},
		{Section: "A", Number: "3", Available: false},
		{Section: "W", Number: "1", Available: true},
	}
}

// stores holds the in-memory repositories shared by a test.
type stores struct {
	transactions *memory.TransactionRepository
	actions      *memory.ActionRepository
	tasks        *memory.TaskRepository
	limiter      *memory.RateLimiter
	locks        *memory.LockStore
}

func newStores() *stores {
	queue := memory.NewTaskRepository(clock)
	return &stores{
		transactions: memory.NewTransactionRepository(clock, queue),
		actions:      memory.NewActionRepository(clock),
		tasks:        queue,
		limiter:      memory.NewRateLimiter(rateLimit.Capacity, clock),
		locks:        memory.NewLockStore(2*time.Hour, clock),
	}
}

func (s *stores) startTransaction(t *testing.T, agentID string) *transaction.Transaction {
	t.Helper()
	tx, err := s.transactions.Start(context.Background(), transaction.StartParams{
		Agent:   action.Participant{TypeOf: "Person", ID: agentID},
		Expires: now.Add(15 * time.Minute),
	})
	if err != nil {
		t.Fatalf("starting transaction: %v", err)
	}
	return tx
}

func (s *stores) action(t *testing.T, typeOf action.Type, id string) *action.Action {
	t.Helper()
	a, err := s.actions.FindByID(context.Background(), typeOf, id)
	if err != nil {
		t.Fatalf("FindByID(%s, %s) error = %v", typeOf, id, err)
	}
	return a
}

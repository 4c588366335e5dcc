package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/app/tasks"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/event"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/task"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/config"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
	"github.com/jsamuelsen11/boxoffice-orchestrator/mocks"
)

// TestPlaceOrder walks one order from start to delivered tickets and then
// returns it, with the real services, the in-memory stores and the worker.
func TestPlaceOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newStores()

	reservations := mocks.NewMockReservationClient(t)
	accounts := mocks.NewMockAccountClient(t)
	email := mocks.NewMockEmailSender(t)

	seats := NewReservationService(ReservationDeps{
		Transactions: st.transactions,
		Actions:      st.actions,
		Limiter:      st.limiter,
		Reservations: reservations,
		RateLimit:    rateLimit,
		Now:          clock,
	}, nil)
	points := NewPointAwardService(PointAwardDeps{
		Transactions: st.transactions,
		Actions:      st.actions,
		Locks:        st.locks,
		Accounts:     accounts,
		Now:          clock,
	}, nil)
	orders := newOrderService(st, config.OrderConfig{EmailSubject: "Your tickets"})
	queries := NewActionQueryService(st.transactions, st.actions, nil)

	delivery := NewDelivery(DeliveryDeps{
		Actions:      st.actions,
		Reservations: reservations,
		Accounts:     accounts,
		Email:        email,
		Seats:        seats,
		Points:       points,
		Now:          clock,
	}, nil)
	registry, err := tasks.NewRegistry(delivery.Handlers())
	if err != nil {
		t.Fatal(err)
	}
	worker := tasks.NewWorker(tasks.NewExecutor(st.tasks, registry, nil, clock, nil), tasks.WorkerConfig{Project: "boxoffice"}, nil)

	tx, err := orders.Start(ctx, ports.StartOrderParams{
		Agent:   action.Participant{TypeOf: "Person", ID: "agent-1"},
		Expires: now.Add(15 * time.Minute),
	})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	reservations.EXPECT().GetEvent(mock.Anything, "ev-1").Return(testEvent(event.AllocatorCatalog), nil)
	reservations.EXPECT().SearchSeats(mock.Anything, "ev-1").Return(testSeats(), nil)
	reservations.EXPECT().StartReservation(mock.Anything, tx.ID, mock.Anything).Return(response("R-1", 4500), nil)
	if _, err := seats.Authorize(ctx, ports.AuthorizeSeatReservationParams{
		AgentID:       "agent-1",
		TransactionID: tx.ID,
		EventID:       "ev-1",
		Seats: []action.SeatSelector{
			{TicketTypeID: "adult"},
			{TicketTypeID: "wheelchair", SeatSection: "W"},
		},
	}); err != nil {
		t.Fatalf("seats.Authorize() error = %v", err)
	}

	accounts.EXPECT().StartDeposit(mock.Anything, mock.Anything).Return(&ports.AccountTransaction{ID: "pt-1", TypeOf: "Deposit"}, nil)
	if _, err := points.Authorize(ctx, awardParams("agent-1", tx.ID)); err != nil {
		t.Fatalf("points.Authorize() error = %v", err)
	}

	confirmed, err := orders.Confirm(ctx, ports.ConfirmOrderParams{AgentID: "agent-1", TransactionID: tx.ID, Email: "fan@example.com"})
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if len(confirmed.Tasks) != 3 {
		t.Fatalf("queued %d tasks, want 3", len(confirmed.Tasks))
	}

	reservations.EXPECT().ConfirmReservation(mock.Anything, "R-1").Return(nil).Once()
	accounts.EXPECT().ConfirmTransaction(mock.Anything, "pt-1").Return(nil).Once()
	email.EXPECT().Send(mock.Anything, mock.Anything).Return("msg-1", nil).Once()

	if got := worker.Poll(ctx); got != 3 {
		t.Fatalf("Poll() = %d, want 3", got)
	}
	for _, queued := range confirmed.Tasks {
		got, _ := st.tasks.FindByID(ctx, queued.ID)
		if got.Status != task.StatusExecuted {
			t.Errorf("task %s status = %q, want Executed", got.Name, got.Status)
		}
	}

	history, err := queries.ListByOrderNumber(ctx, "agent-1", "BO-TEST-1")
	if err != nil {
		t.Fatalf("ListByOrderNumber() error = %v", err)
	}
	// Deliveries carry the order number; the two authorizations predate it.
	if len(history) != 3 {
		t.Errorf("order history = %d actions, want 3", len(history))
	}

	returned, err := orders.Return(ctx, "agent-1", tx.ID)
	if err != nil {
		t.Fatalf("Return() error = %v", err)
	}
	if len(returned) != 2 {
		t.Fatalf("Return() queued %d tasks, want 2", len(returned))
	}

	reservations.EXPECT().CancelReservation(mock.Anything, "R-1").Return(nil).Once()
	accounts.EXPECT().CancelTransaction(mock.Anything, "pt-1").Return(nil).Maybe()
	accounts.EXPECT().StartWithdraw(mock.Anything, mock.Anything).Return(&ports.AccountTransaction{ID: "pt-w", TypeOf: "Withdraw"}, nil).Once()
	accounts.EXPECT().ConfirmTransaction(mock.Anything, "pt-w").Return(nil).Once()

	if got := worker.Poll(ctx); got != 2 {
		t.Fatalf("Poll() after return = %d, want 2", got)
	}
	if holder, _ := st.limiter.GetHolder(ctx, wheelchairKey); holder != "" {
		t.Errorf("wheelchair slot holder = %q, want released after return", holder)
	}
}

package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/task"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/transaction"
)

// AuthorizeSeatReservationParams are the inputs of a seat authorization.
// Seats without a SeatNumber are picked from the available inventory.
type AuthorizeSeatReservationParams struct {
	AgentID       string
	TransactionID string
	EventID       string
	Seats         []action.SeatSelector
}

// CancelSeatReservationParams select which seat authorizations to reverse.
// An empty AgentID skips the ownership check (task handlers run as the
// system). An empty ActionID cancels every authorization of the transaction.
type CancelSeatReservationParams struct {
	AgentID       string
	TransactionID string
	ActionID      string
}

// ReservationService defines the seat-reservation saga.
// Implemented by the application layer; called by handlers and task handlers.
type ReservationService interface {
	// Authorize reserves seats for an InProgress transaction and returns the
	// Completed AuthorizeAction.
	// Returns domain.ErrNotFound if the transaction is not InProgress.
	// Returns domain.ErrForbidden if the caller does not own the transaction.
	// Returns domain.ErrValidation if the seats cannot be reserved.
	// Returns domain.ErrLimitExceeded if the category quota is used up.
	Authorize(ctx context.Context, params AuthorizeSeatReservationParams) (*action.Action, error)

	// Cancel reverses matching Completed authorizations. Finding none is not
	// an error.
	Cancel(ctx context.Context, params CancelSeatReservationParams) error
}

// AuthorizePointAwardParams are the inputs of a point-award authorization.
type AuthorizePointAwardParams struct {
	AgentID       string
	TransactionID string
	ProgramID     string
	AccountNumber string
	Amount        int64
	Description   string
}

// CancelPointAwardParams select which point authorizations to reverse.
type CancelPointAwardParams struct {
	AgentID       string
	TransactionID string
	ActionID      string
}

// PointAwardService defines the point-incentive authorization saga. One
// registration per agent and program may be in progress at a time.
type PointAwardService interface {
	// Authorize returns domain.ErrAlreadyInProgress if another transaction
	// of the same agent holds the registration for the program.
	Authorize(ctx context.Context, params AuthorizePointAwardParams) (*action.Action, error)

	// Cancel reverses matching Completed authorizations. Finding none is not
	// an error.
	Cancel(ctx context.Context, params CancelPointAwardParams) error
}

// StartOrderParams are the inputs of a new place-order transaction.
type StartOrderParams struct {
	Agent   action.Participant
	Expires time.Time
}

// ConfirmOrderParams are the inputs of an order confirmation.
type ConfirmOrderParams struct {
	AgentID       string
	TransactionID string
	Email         string
}

// ConfirmOrderResult is the confirmed transaction and the delivery tasks
// queued for it.
type ConfirmOrderResult struct {
	Transaction *transaction.Transaction
	Tasks       []task.Task
}

// OrderService defines the place-order transaction lifecycle.
type OrderService interface {
	Start(ctx context.Context, params StartOrderParams) (*transaction.Transaction, error)

	// Confirm requires at least one Completed seat authorization.
	// No task is queued when any earlier step fails.
	Confirm(ctx context.Context, params ConfirmOrderParams) (*ConfirmOrderResult, error)

	// Void cancels the transaction and reverses all of its authorizations.
	Void(ctx context.Context, agentID, transactionID string) error

	// Return queues the reversal of a confirmed order: its seat
	// reservations are canceled and awarded points are taken back.
	// Returns domain.ErrConflict unless the transaction is Confirmed.
	Return(ctx context.Context, agentID, transactionID string) ([]task.Task, error)
}

// ActionQueryService reads the ledger on behalf of an agent.
type ActionQueryService interface {
	// ListByTransaction returns domain.ErrForbidden if agentID does not own
	// the transaction.
	ListByTransaction(ctx context.Context, agentID, transactionID string) ([]action.Action, error)

	// ListByOrderNumber returns only the actions performed by agentID.
	ListByOrderNumber(ctx context.Context, agentID, orderNumber string) ([]action.Action, error)
}

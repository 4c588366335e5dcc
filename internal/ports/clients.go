package ports

import (
	"context"
	"encoding/json"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/event"
)

// ReservationClient is the port to the event/reservation backend.
// Implemented by the ACL adapter; remote failures surface as
// *domain.ExternalError.
type ReservationClient interface {
	// GetEvent returns domain.ErrNotFound if the event does not exist.
	GetEvent(ctx context.Context, eventID string) (*event.Event, error)

	// SearchSeats returns the availability of every seat of the event.
	SearchSeats(ctx context.Context, eventID string) ([]event.Seat, error)

	// StartReservation holds the requested seats for transactionID until
	// req.Expires.
	StartReservation(ctx context.Context, transactionID string, req action.SeatReservationRequest) (*action.SeatReservationResponse, error)

	// ConfirmReservation turns a held reservation into sold tickets.
	ConfirmReservation(ctx context.Context, reservationNumber string) error

	// CancelReservation releases a held reservation. An already released
	// reservation reports a benign ExternalError.
	CancelReservation(ctx context.Context, reservationNumber string) error
}

// BoxOfficeClient is the port to the legacy box office, which allocates seats
// for events it still owns through tentative reservations.
type BoxOfficeClient interface {
	CreateTentative(ctx context.Context, transactionID string, req action.SeatReservationRequest) (*action.SeatReservationResponse, error)
	ConfirmTentative(ctx context.Context, reservationNumber string) error
	DeleteTentative(ctx context.Context, reservationNumber string) error
}

// DepositRequest asks the account backend to credit points.
type DepositRequest struct {
	TransactionID string
	AccountNumber string
	Amount        int64
	Description   string
	AgentID       string
}

// WithdrawRequest asks the account backend to debit points.
type WithdrawRequest struct {
	TransactionID string
	AccountNumber string
	Amount        int64
	Description   string
	AgentID       string
}

// AccountTransaction is a pending transaction on the account backend.
type AccountTransaction struct {
	ID     string
	TypeOf string
}

// AccountClient is the port to the point-account backend. Deposits and
// withdrawals are two-phase: started, then confirmed or canceled.
type AccountClient interface {
	StartDeposit(ctx context.Context, req DepositRequest) (*AccountTransaction, error)
	StartWithdraw(ctx context.Context, req WithdrawRequest) (*AccountTransaction, error)
	ConfirmTransaction(ctx context.Context, id string) error

	// CancelTransaction reports a benign ExternalError when the transaction is
	// already canceled or unknown.
	CancelTransaction(ctx context.Context, id string) error
}

// EmailMessage is an outgoing email.
type EmailMessage struct {
	To      string
	Subject string
	Body    string
}

// EmailSender delivers email and returns the provider's message id.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) (string, error)
}

// WebhookSender posts a JSON payload and returns the response status.
type WebhookSender interface {
	Post(ctx context.Context, url string, payload json.RawMessage) (int, error)
}

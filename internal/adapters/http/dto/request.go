package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

const msgRequired = domain.MsgRequired

// StartTransactionRequest represents the JSON body for starting a place-order
// transaction. The agent is the caller named by X-Agent-ID.
type StartTransactionRequest struct {
	AgentName string `json:"agentName,omitempty"`
	Expires   string `json:"expires"`
}

// Validate checks that expires is an RFC 3339 timestamp.
// Returns a *domain.ValidationError if any checks fail.
func (r *StartTransactionRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Expires) == "" {
		fields["expires"] = msgRequired
	} else if _, err := time.Parse(time.RFC3339, r.Expires); err != nil {
		fields["expires"] = fmt.Sprintf("must be RFC 3339, got %q", r.Expires)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToParams maps the request to service parameters. Call Validate first.
func (r *StartTransactionRequest) ToParams(agentID string) ports.StartOrderParams {
	expires, _ := time.Parse(time.RFC3339, r.Expires)
	return ports.StartOrderParams{
		Agent:   action.Participant{TypeOf: "Person", ID: agentID, Name: r.AgentName},
		Expires: expires,
	}
}

// ConfirmTransactionRequest represents the JSON body for confirming a
// transaction.
type ConfirmTransactionRequest struct {
	Email string `json:"email"`
}

// Validate checks that the email address looks deliverable.
func (r *ConfirmTransactionRequest) Validate() error {
	if !strings.Contains(r.Email, "@") {
		return domain.NewValidationError("email", "must be an email address")
	}
	return nil
}

// SeatSelectorRequest names one seat to reserve. An empty seatNumber asks
// for any available seat of the ticket type.
type SeatSelectorRequest struct {
	TicketTypeID string `json:"ticketTypeId"`
	SeatSection  string `json:"seatSection,omitempty"`
	SeatNumber   string `json:"seatNumber,omitempty"`
}

// AuthorizeSeatReservationRequest represents the JSON body for reserving
// seats within a transaction.
type AuthorizeSeatReservationRequest struct {
	EventID string                `json:"eventId"`
	Seats   []SeatSelectorRequest `json:"seats"`
}

// Validate checks that an event and at least one ticket type are named.
func (r *AuthorizeSeatReservationRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.EventID) == "" {
		fields["eventId"] = msgRequired
	}
	if len(r.Seats) == 0 {
		fields["seats"] = "must not be empty"
	}
	for i, s := range r.Seats {
		if strings.TrimSpace(s.TicketTypeID) == "" {
			fields[fmt.Sprintf("seats[%d].ticketTypeId", i)] = msgRequired
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToParams maps the request to service parameters.
func (r *AuthorizeSeatReservationRequest) ToParams(agentID, transactionID string) ports.AuthorizeSeatReservationParams {
	seats := make([]action.SeatSelector, len(r.Seats))
	for i, s := range r.Seats {
		seats[i] = action.SeatSelector(s)
	}
	return ports.AuthorizeSeatReservationParams{
		AgentID:       agentID,
		TransactionID: transactionID,
		EventID:       r.EventID,
		Seats:         seats,
	}
}

// AuthorizePointAwardRequest represents the JSON body for authorizing a
// point award within a transaction.
type AuthorizePointAwardRequest struct {
	ProgramID     string `json:"programId"`
	AccountNumber string `json:"accountNumber"`
	Amount        int64  `json:"amount"`
	Description   string `json:"description,omitempty"`
}

// Validate checks the program, account and a positive amount.
func (r *AuthorizePointAwardRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.ProgramID) == "" {
		fields["programId"] = msgRequired
	}
	if strings.TrimSpace(r.AccountNumber) == "" {
		fields["accountNumber"] = msgRequired
	}
	if r.Amount <= 0 {
		fields["amount"] = fmt.Sprintf("must be positive, got %d", r.Amount)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToParams maps the request to service parameters.
func (r *AuthorizePointAwardRequest) ToParams(agentID, transactionID string) ports.AuthorizePointAwardParams {
	return ports.AuthorizePointAwardParams{
		AgentID:       agentID,
		TransactionID: transactionID,
		ProgramID:     r.ProgramID,
		AccountNumber: r.AccountNumber,
		Amount:        r.Amount,
		Description:   r.Description,
	}
}

// Package transaction defines the PlaceOrder transaction that authorize
// actions reference as their purpose.
package transaction

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
)

// TypePlaceOrder is the only transaction type handled here. It doubles as the
// purpose.typeOf of every action performed for the transaction.
const TypePlaceOrder = "PlaceOrder"

// Status is the lifecycle state of a Transaction.
type Status string

const (
	StatusInProgress Status = "InProgress"
	StatusConfirmed  Status = "Confirmed"
	StatusCanceled   Status = "Canceled"
	StatusExpired    Status = "Expired"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusInProgress, StatusConfirmed, StatusCanceled, StatusExpired:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Transaction is the record of one place-order attempt.
type Transaction struct {
	ID          string
	TypeOf      string
	Agent       action.Participant
	Status      Status
	StartDate   time.Time
	EndDate     *time.Time
	Expires     time.Time
	OrderNumber string
}

// StartParams are the inputs to start a transaction.
type StartParams struct {
	Agent   action.Participant
	Expires time.Time
}

// Validate checks the parameters against now.
func (p *StartParams) Validate(now time.Time) error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.Agent.ID) == "" {
		fields["agent.id"] = domain.MsgRequired
	}
	if !p.Expires.After(now) {
		fields["expires"] = "must be in the future"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// OwnedBy reports whether agentID started the transaction.
func (t *Transaction) OwnedBy(agentID string) bool {
	return t.Agent.ID == agentID
}

// IsExpired reports whether the transaction can no longer be worked on at now.
func (t *Transaction) IsExpired(now time.Time) bool {
	return !t.Expires.After(now)
}

// Purpose returns the purpose reference actions performed for t carry.
func (t *Transaction) Purpose() *action.Purpose {
	return &action.Purpose{TypeOf: t.TypeOf, ID: t.ID, OrderNumber: t.OrderNumber}
}

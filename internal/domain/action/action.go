// Package action defines the Action envelope recorded by the ledger for every
// unit of business work, together with its lifecycle states and the stable
// result schemas persisted for each action kind.
package action

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
)

// Participant references an agent or recipient. The ledger treats it as opaque.
type Participant struct {
	TypeOf string `json:"typeOf"`
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
}

// Purpose is the back-reference from an Action to the transaction or order it
// serves. OrderNumber is set once the transaction has produced an order.
type Purpose struct {
	TypeOf      string `json:"typeOf"`
	ID          string `json:"id,omitempty"`
	OrderNumber string `json:"orderNumber,omitempty"`
}

// Error is the failure recorded on a Failed action.
type Error struct {
	Name    string `json:"name"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// Action is one recorded unit of business work.
type Action struct {
	ID        string
	TypeOf    Type
	Status    Status
	StartDate time.Time
	EndDate   *time.Time
	Agent     Participant
	Recipient *Participant
	Object    json.RawMessage
	Result    json.RawMessage
	Error     *Error
	Purpose   *Purpose
}

// Attributes is the input to Start. Status and dates are assigned by the ledger.
type Attributes struct {
	TypeOf    Type
	Agent     Participant
	Recipient *Participant
	Object    json.RawMessage
	Purpose   *Purpose
}

// Validate checks the attributes before an action is started.
func (a *Attributes) Validate() error {
	fields := make(map[string]string)

	if !a.TypeOf.IsValid() {
		fields["typeOf"] = fmt.Sprintf("invalid: %q", a.TypeOf)
	}
	if strings.TrimSpace(a.Agent.ID) == "" {
		fields["agent.id"] = domain.MsgRequired
	}
	if a.Purpose != nil && strings.TrimSpace(a.Purpose.TypeOf) == "" {
		fields["purpose.typeOf"] = domain.MsgRequired
	}
	if len(a.Object) > 0 && !json.Valid(a.Object) {
		fields["object"] = "must be valid JSON"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// objectHeader is the subset of an object payload the ledger indexes on.
type objectHeader struct {
	TypeOf      ObjectType `json:"typeOf"`
	OrderNumber string     `json:"orderNumber"`
}

// ObjectType returns the object.typeOf discriminator, or "" when absent.
func (a *Action) ObjectType() ObjectType {
	return header(a.Object).TypeOf
}

// ObjectOrderNumber returns object.orderNumber, or "" when absent.
func ObjectOrderNumber(object json.RawMessage) string {
	return header(object).OrderNumber
}

func header(object json.RawMessage) objectHeader {
	var h objectHeader
	if len(object) == 0 {
		return h
	}
	_ = json.Unmarshal(object, &h)
	return h
}

// DecodeResult unmarshals the action's result into T. It fails when the
// action has not completed.
func DecodeResult[T any](a *Action) (T, error) {
	var out T
	if a.Status != StatusCompleted && a.Status != StatusCanceled {
		return out, fmt.Errorf("action %s has no result in status %s", a.ID, a.Status)
	}
	if len(a.Result) == 0 {
		return out, fmt.Errorf("action %s has an empty result", a.ID)
	}
	if err := json.Unmarshal(a.Result, &out); err != nil {
		return out, fmt.Errorf("decoding result of action %s: %w", a.ID, err)
	}
	return out, nil
}

package task

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
)

// DefaultNumberOfTries is used when Options leaves the count unset.
const DefaultNumberOfTries = 3

// Data is implemented by every typed task payload. The method ties each
// payload to exactly one handler name.
type Data interface {
	TaskName() Name
}

// ConfirmReservationData confirms a seat reservation after the order is placed.
type ConfirmReservationData struct {
	TransactionID     string `json:"transactionId"`
	OrderNumber       string `json:"orderNumber"`
	AgentID           string `json:"agentId"`
	AuthorizeActionID string `json:"authorizeActionId"`
	Allocator         string `json:"allocator"`
	ReservationNumber string `json:"reservationNumber"`
}

func (ConfirmReservationData) TaskName() Name { return NameConfirmReservation }

// CancelReservationData reverses one or all seat authorizations of a transaction.
type CancelReservationData struct {
	TransactionID     string `json:"transactionId"`
	AgentID           string `json:"agentId"`
	AuthorizeActionID string `json:"authorizeActionId,omitempty"`
}

func (CancelReservationData) TaskName() Name { return NameCancelReservation }

// GivePointAwardData settles an authorized point deposit.
type GivePointAwardData struct {
	TransactionID      string `json:"transactionId"`
	OrderNumber        string `json:"orderNumber"`
	AgentID            string `json:"agentId"`
	AuthorizeActionID  string `json:"authorizeActionId"`
	PointTransactionID string `json:"pointTransactionId"`
	AccountNumber      string `json:"accountNumber"`
	Amount             int64  `json:"amount"`
}

func (GivePointAwardData) TaskName() Name { return NameGivePointAward }

// ReturnPointAwardData takes back points given for an order.
type ReturnPointAwardData struct {
	TransactionID  string `json:"transactionId"`
	OrderNumber    string `json:"orderNumber"`
	AgentID        string `json:"agentId"`
	AccountNumber  string `json:"accountNumber"`
	Amount         int64  `json:"amount"`
	OriginalAction string `json:"originalAction"`
}

func (ReturnPointAwardData) TaskName() Name { return NameReturnPointAward }

// SendEmailMessageData sends the order confirmation email.
type SendEmailMessageData struct {
	TransactionID string `json:"transactionId"`
	OrderNumber   string `json:"orderNumber"`
	AgentID       string `json:"agentId"`
	To            string `json:"to"`
	Subject       string `json:"subject"`
	Body          string `json:"body"`
}

func (SendEmailMessageData) TaskName() Name { return NameSendEmailMessage }

// TriggerWebhookData posts an order notification to a subscriber URL.
type TriggerWebhookData struct {
	TransactionID string          `json:"transactionId"`
	OrderNumber   string          `json:"orderNumber"`
	AgentID       string          `json:"agentId"`
	URL           string          `json:"url"`
	Payload       json.RawMessage `json:"payload"`
}

func (TriggerWebhookData) TaskName() Name { return NameTriggerWebhook }

// VoidPlaceOrderData cancels every authorization of an abandoned transaction.
type VoidPlaceOrderData struct {
	TransactionID string `json:"transactionId"`
	AgentID       string `json:"agentId"`
}

func (VoidPlaceOrderData) TaskName() Name { return NameVoidPlaceOrder }

// Options tune the envelope built by New.
type Options struct {
	Project       string
	RunsAt        time.Time
	NumberOfTries int
}

// New builds Ready task attributes for data. A zero RunsAt means "now" and is
// resolved by the caller's clock.
func New(data Data, opts Options) (Attributes, error) {
	name := data.TaskName()
	if !name.IsValid() {
		return Attributes{}, domain.NewValidationError("name", fmt.Sprintf("unknown task name %q", name))
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return Attributes{}, fmt.Errorf("encoding %s data: %w", name, err)
	}

	tries := opts.NumberOfTries
	if tries <= 0 {
		tries = DefaultNumberOfTries
	}

	return Attributes{
		Name:                   name,
		Project:                opts.Project,
		Status:                 StatusReady,
		RunsAt:                 opts.RunsAt,
		RemainingNumberOfTries: tries,
		Data:                   raw,
	}, nil
}

// Validate checks attributes before they are saved.
func (a *Attributes) Validate() error {
	fields := make(map[string]string)

	if !a.Name.IsValid() {
		fields["name"] = fmt.Sprintf("unknown task name %q", a.Name)
	}
	if a.Status != StatusReady && a.Status != StatusRunning {
		fields["status"] = "must be Ready or Running"
	}
	if a.RemainingNumberOfTries < 0 {
		fields["remainingNumberOfTries"] = "must not be negative"
	}
	if len(a.Data) > 0 && !json.Valid(a.Data) {
		fields["data"] = "must be valid JSON"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// DecodeData unmarshals raw task data into D.
func DecodeData[D Data](raw json.RawMessage) (D, error) {
	var d D
	if err := json.Unmarshal(raw, &d); err != nil {
		return d, domain.NewValidationError("data", fmt.Sprintf("decoding %s: %v", d.TaskName(), err))
	}
	return d, nil
}

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/app/ledger"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/app/tasks"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/event"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/task"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/transaction"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// DeliveryDeps are the collaborators of the task handlers.
type DeliveryDeps struct {
	Actions      ports.ActionRepository
	Reservations ports.ReservationClient
	BoxOffice    ports.BoxOfficeClient
	Accounts     ports.AccountClient
	Email        ports.EmailSender
	Webhook      ports.WebhookSender
	Seats        ports.ReservationService
	Points       ports.PointAwardService
	Now          func() time.Time
}

// Delivery holds the handlers of every queued task. Each delivery records
// its own action with the order as purpose, so the ledger shows what was
// delivered for an order and what failed.
type Delivery struct {
	actions      ports.ActionRepository
	reservations ports.ReservationClient
	boxOffice    ports.BoxOfficeClient
	accounts     ports.AccountClient
	email        ports.EmailSender
	webhook      ports.WebhookSender
	seats        ports.ReservationService
	points       ports.PointAwardService
	now          func() time.Time
	logger       *slog.Logger
}

// NewDelivery creates the task handlers.
func NewDelivery(deps DeliveryDeps, logger *slog.Logger) *Delivery {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Delivery{
		actions:      deps.Actions,
		reservations: deps.Reservations,
		boxOffice:    deps.BoxOffice,
		accounts:     deps.Accounts,
		email:        deps.Email,
		webhook:      deps.Webhook,
		seats:        deps.Seats,
		points:       deps.Points,
		now:          deps.Now,
		logger:       logger,
	}
}

// Handlers returns one handler per task name, ready for tasks.NewRegistry.
func (d *Delivery) Handlers() map[task.Name]tasks.Handler {
	return map[task.Name]tasks.Handler{
		task.NameConfirmReservation: tasks.Typed(d.ConfirmReservation),
		task.NameCancelReservation:  tasks.Typed(d.CancelReservation),
		task.NameGivePointAward:     tasks.Typed(d.GivePointAward),
		task.NameReturnPointAward:   tasks.Typed(d.ReturnPointAward),
		task.NameSendEmailMessage:   tasks.Typed(d.SendEmailMessage),
		task.NameTriggerWebhook:     tasks.Typed(d.TriggerWebhook),
		task.NameVoidPlaceOrder:     tasks.Typed(d.VoidPlaceOrder),
	}
}

// deliveryObject is the object recorded by delivery actions.
type deliveryObject struct {
	TypeOf      action.ObjectType `json:"typeOf"`
	OrderNumber string            `json:"orderNumber"`
	Target      string            `json:"target,omitempty"`
}

type order struct {
	transactionID string
	orderNumber   string
	agentID       string
}

// perform records typeOf around deliver: Start, then Complete with the
// delivery result or GiveUp with its error.
func (d *Delivery) perform(ctx context.Context, typeOf action.Type, o order, object deliveryObject, deliver func(ctx context.Context) (action.DeliveryResult, error)) error {
	object.OrderNumber = o.orderNumber
	raw, err := action.Encode(object)
	if err != nil {
		return err
	}

	act, err := d.actions.Start(ctx, action.Attributes{
		TypeOf: typeOf,
		Agent:  action.Participant{TypeOf: "Agent", ID: o.agentID},
		Object: raw,
		Purpose: &action.Purpose{
			TypeOf:      transaction.TypePlaceOrder,
			ID:          o.transactionID,
			OrderNumber: o.orderNumber,
		},
	})
	if err != nil {
		return err
	}

	result, err := deliver(ctx)
	if err == nil {
		err = d.complete(ctx, typeOf, act.ID, result)
	}
	if err != nil {
		d.logger.ErrorContext(ctx, "delivery failed",
			slog.String("operation", "Delivery."+string(typeOf)),
			slog.String("transaction_id", o.transactionID),
			slog.String("order_number", o.orderNumber),
			slog.String("action_id", act.ID),
			slog.Any("error", err),
		)
		ledger.GiveUpQuietly(ctx, d.actions, typeOf, act.ID, err)
		return err
	}
	return nil
}

func (d *Delivery) complete(ctx context.Context, typeOf action.Type, id string, result action.DeliveryResult) error {
	result.Delivered = d.now().UTC()
	raw, err := action.Encode(result)
	if err != nil {
		return err
	}
	_, err = d.actions.Complete(ctx, typeOf, id, raw)
	return err
}

// ConfirmReservation turns the held seats of one authorization into sold
// tickets with the allocator that holds them.
func (d *Delivery) ConfirmReservation(ctx context.Context, data task.ConfirmReservationData) error {
	o := order{data.TransactionID, data.OrderNumber, data.AgentID}
	object := deliveryObject{TypeOf: action.ObjectSeatReservation, Target: data.ReservationNumber}

	return d.perform(ctx, action.TypeConfirm, o, object, func(ctx context.Context) (action.DeliveryResult, error) {
		var err error
		service := "reservation-api"
		if event.Allocator(data.Allocator) == event.AllocatorLegacy {
			service = "boxoffice-api"
			err = d.boxOffice.ConfirmTentative(ctx, data.ReservationNumber)
		} else {
			err = d.reservations.ConfirmReservation(ctx, data.ReservationNumber)
		}
		return action.DeliveryResult{Service: service, Reference: data.ReservationNumber}, err
	})
}

// GivePointAward settles the deposit started at authorization.
func (d *Delivery) GivePointAward(ctx context.Context, data task.GivePointAwardData) error {
	o := order{data.TransactionID, data.OrderNumber, data.AgentID}
	object := deliveryObject{TypeOf: action.ObjectPointAward, Target: data.AccountNumber}

	return d.perform(ctx, action.TypeGive, o, object, func(ctx context.Context) (action.DeliveryResult, error) {
		err := d.accounts.ConfirmTransaction(ctx, data.PointTransactionID)
		return action.DeliveryResult{Service: "account-api", Reference: data.PointTransactionID}, err
	})
}

// ReturnPointAward withdraws points given for an order.
func (d *Delivery) ReturnPointAward(ctx context.Context, data task.ReturnPointAwardData) error {
	o := order{data.TransactionID, data.OrderNumber, data.AgentID}
	object := deliveryObject{TypeOf: action.ObjectPointAward, Target: data.AccountNumber}

	return d.perform(ctx, action.TypeReturn, o, object, func(ctx context.Context) (action.DeliveryResult, error) {
		pending, err := d.accounts.StartWithdraw(ctx, ports.WithdrawRequest{
			TransactionID: data.TransactionID,
			AccountNumber: data.AccountNumber,
			Amount:        data.Amount,
			Description:   "return of order " + data.OrderNumber,
			AgentID:       data.AgentID,
		})
		if err != nil {
			return action.DeliveryResult{}, err
		}
		if err := d.accounts.ConfirmTransaction(ctx, pending.ID); err != nil {
			if cancelErr := d.accounts.CancelTransaction(context.WithoutCancel(ctx), pending.ID); cancelErr != nil && !domain.IsBenignExternal(cancelErr) {
				err = errors.Join(err, fmt.Errorf("canceling withdrawal %s: %w", pending.ID, cancelErr))
			}
			return action.DeliveryResult{}, err
		}
		return action.DeliveryResult{Service: "account-api", Reference: pending.ID}, nil
	})
}

// SendEmailMessage sends the order confirmation.
func (d *Delivery) SendEmailMessage(ctx context.Context, data task.SendEmailMessageData) error {
	o := order{data.TransactionID, data.OrderNumber, data.AgentID}
	object := deliveryObject{TypeOf: action.ObjectEmailMessage, Target: data.To}

	return d.perform(ctx, action.TypeSend, o, object, func(ctx context.Context) (action.DeliveryResult, error) {
		id, err := d.email.Send(ctx, ports.EmailMessage{To: data.To, Subject: data.Subject, Body: data.Body})
		return action.DeliveryResult{Service: "notify-api", Reference: id}, err
	})
}

// TriggerWebhook notifies a subscriber of the placed order.
func (d *Delivery) TriggerWebhook(ctx context.Context, data task.TriggerWebhookData) error {
	o := order{data.TransactionID, data.OrderNumber, data.AgentID}
	object := deliveryObject{TypeOf: action.ObjectWebhook, Target: data.URL}

	return d.perform(ctx, action.TypeInform, o, object, func(ctx context.Context) (action.DeliveryResult, error) {
		status, err := d.webhook.Post(ctx, data.URL, data.Payload)
		if err == nil && status >= http.StatusMultipleChoices {
			err = &domain.ExternalError{
				Service: "webhook",
				Name:    "WebhookRejected",
				Message: fmt.Sprintf("%s answered %d", data.URL, status),
				Status:  status,
			}
		}
		return action.DeliveryResult{Service: "webhook", Reference: data.URL, Status: status}, err
	})
}

// CancelReservation reverses seat authorizations on behalf of the system.
func (d *Delivery) CancelReservation(ctx context.Context, data task.CancelReservationData) error {
	return d.seats.Cancel(ctx, ports.CancelSeatReservationParams{
		TransactionID: data.TransactionID,
		ActionID:      data.AuthorizeActionID,
	})
}

// VoidPlaceOrder reverses every seat and point authorization of an
// abandoned transaction.
func (d *Delivery) VoidPlaceOrder(ctx context.Context, data task.VoidPlaceOrderData) error {
	seatErr := d.seats.Cancel(ctx, ports.CancelSeatReservationParams{TransactionID: data.TransactionID})
	pointErr := d.points.Cancel(ctx, ports.CancelPointAwardParams{TransactionID: data.TransactionID})
	return errors.Join(seatErr, pointErr)
}

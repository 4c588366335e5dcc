package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/task"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/transaction"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/config"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// Compile-time check that OrderService implements ports.OrderService.
var _ ports.OrderService = (*OrderService)(nil)

// OrderDeps are the collaborators of an OrderService.
type OrderDeps struct {
	Transactions ports.TransactionRepository
	Actions      ports.ActionRepository
	Tasks        ports.TaskRepository
	Order        config.OrderConfig
	// Project tags every queued task so that a worker can claim only its own.
	Project string
	Now     func() time.Time
	// OrderNumbers generates order numbers. Defaults to NewOrderNumber.
	OrderNumbers func(now time.Time) string
}

// OrderService drives the place-order transaction: start, confirm with
// deferred delivery tasks, or void.
type OrderService struct {
	transactions ports.TransactionRepository
	actions      ports.ActionRepository
	tasks        ports.TaskRepository
	order        config.OrderConfig
	project      string
	now          func() time.Time
	orderNumbers func(time.Time) string
	logger       *slog.Logger
}

// NewOrderService creates an OrderService.
func NewOrderService(deps OrderDeps, logger *slog.Logger) *OrderService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.OrderNumbers == nil {
		deps.OrderNumbers = NewOrderNumber
	}
	return &OrderService{
		transactions: deps.Transactions,
		actions:      deps.Actions,
		tasks:        deps.Tasks,
		order:        deps.Order,
		project:      deps.Project,
		now:          deps.Now,
		orderNumbers: deps.OrderNumbers,
		logger:       logger,
	}
}

// NewOrderNumber returns a number of the form BO-20250601-1A2B3C4D.
func NewOrderNumber(now time.Time) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "BO-" + now.UTC().Format("20060102") + "-" + strings.ToUpper(id[:8])
}

// Start opens a PlaceOrder transaction for the agent.
func (s *OrderService) Start(ctx context.Context, params ports.StartOrderParams) (*transaction.Transaction, error) {
	s.logger.InfoContext(ctx, "starting place order", slog.String("agent_id", params.Agent.ID))

	tx, err := s.transactions.Start(ctx, transaction.StartParams{Agent: params.Agent, Expires: params.Expires})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to start transaction",
			slog.String("operation", "OrderService.Start"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return tx, nil
}

// Confirm places the order. The transaction is confirmed together with its
// delivery tasks, so a failure leaves it InProgress with nothing queued and
// the call can be retried.
func (s *OrderService) Confirm(ctx context.Context, params ports.ConfirmOrderParams) (*ports.ConfirmOrderResult, error) {
	s.logger.InfoContext(ctx, "confirming place order", slog.String("transaction_id", params.TransactionID))

	tx, err := loadOwnedInProgress(ctx, s.transactions, params.AgentID, params.TransactionID, s.now())
	if err != nil {
		return nil, err
	}

	seats, err := completedAuthorizations(ctx, s.actions, tx.ID, "", action.ObjectSeatReservation)
	if err != nil {
		return nil, s.fail(ctx, "Confirm", tx.ID, "failed to search seat authorizations", err)
	}
	if len(seats) == 0 {
		return nil, domain.NewValidationError("seats", "no completed seat reservation")
	}
	points, err := completedAuthorizations(ctx, s.actions, tx.ID, "", action.ObjectPointAward)
	if err != nil {
		return nil, s.fail(ctx, "Confirm", tx.ID, "failed to search point authorizations", err)
	}

	orderNumber := s.orderNumbers(s.now())
	pending, err := s.deliveries(tx, orderNumber, params.Email, seats, points)
	if err != nil {
		return nil, s.fail(ctx, "Confirm", tx.ID, "failed to build delivery tasks", err)
	}

	confirmed, queued, err := s.transactions.Confirm(ctx, tx.ID, orderNumber, pending)
	if err != nil {
		return nil, s.fail(ctx, "Confirm", tx.ID, "failed to confirm transaction", err,
			slog.Int("tasks", len(pending)),
		)
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("transaction_id", tx.ID),
		slog.String("order_number", orderNumber),
		slog.Int("tasks", len(queued)),
	)
	return &ports.ConfirmOrderResult{Transaction: confirmed, Tasks: queued}, nil
}

func (s *OrderService) deliveries(tx *transaction.Transaction, orderNumber, email string, seats, points []action.Action) ([]task.Attributes, error) {
	var data []task.Data
	var reservationNumbers []string

	for i := range seats {
		result, err := action.DecodeResult[action.SeatReservationResult](&seats[i])
		if err != nil {
			return nil, err
		}
		reservationNumbers = append(reservationNumbers, result.ReservationNumber)
		data = append(data, task.ConfirmReservationData{
			TransactionID:     tx.ID,
			OrderNumber:       orderNumber,
			AgentID:           tx.Agent.ID,
			AuthorizeActionID: seats[i].ID,
			Allocator:         result.Allocator,
			ReservationNumber: result.ReservationNumber,
		})
	}

	for i := range points {
		result, err := action.DecodeResult[action.PointAwardResult](&points[i])
		if err != nil {
			return nil, err
		}
		data = append(data, task.GivePointAwardData{
			TransactionID:      tx.ID,
			OrderNumber:        orderNumber,
			AgentID:            tx.Agent.ID,
			AuthorizeActionID:  points[i].ID,
			PointTransactionID: result.TransactionID,
			AccountNumber:      result.AccountNumber,
			Amount:             result.Amount,
		})
	}

	if email != "" {
		data = append(data, task.SendEmailMessageData{
			TransactionID: tx.ID,
			OrderNumber:   orderNumber,
			AgentID:       tx.Agent.ID,
			To:            email,
			Subject:       s.order.EmailSubject,
			Body: fmt.Sprintf("Your order %s is confirmed.\nReservations: %s\n",
				orderNumber, strings.Join(reservationNumbers, ", ")),
		})
	}

	if s.order.WebhookURL != "" {
		payload, err := json.Marshal(map[string]any{
			"typeOf":        "OrderPlaced",
			"orderNumber":   orderNumber,
			"transactionId": tx.ID,
			"reservations":  reservationNumbers,
		})
		if err != nil {
			return nil, err
		}
		data = append(data, task.TriggerWebhookData{
			TransactionID: tx.ID,
			OrderNumber:   orderNumber,
			AgentID:       tx.Agent.ID,
			URL:           s.order.WebhookURL,
			Payload:       payload,
		})
	}

	attrs := make([]task.Attributes, 0, len(data))
	for _, d := range data {
		a, err := task.New(d, task.Options{
			Project:       s.project,
			RunsAt:        s.now(),
			NumberOfTries: s.order.NumberOfTries,
		})
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}
	return attrs, nil
}

// Void cancels the transaction and, in the same store write, queues the
// reversal of every authorization made for it.
func (s *OrderService) Void(ctx context.Context, agentID, transactionID string) error {
	s.logger.InfoContext(ctx, "voiding place order", slog.String("transaction_id", transactionID))

	tx, err := s.transactions.FindInProgressByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if !tx.OwnedBy(agentID) {
		return fmt.Errorf("transaction %s: %w", transactionID, domain.ErrForbidden)
	}

	attrs, err := task.New(task.VoidPlaceOrderData{TransactionID: tx.ID, AgentID: tx.Agent.ID}, task.Options{
		Project:       s.project,
		RunsAt:        s.now(),
		NumberOfTries: s.order.NumberOfTries,
	})
	if err != nil {
		return err
	}

	if _, _, err := s.transactions.Cancel(ctx, tx.ID, []task.Attributes{attrs}); err != nil {
		return s.fail(ctx, "Void", tx.ID, "failed to cancel transaction", err)
	}
	return nil
}

// Return queues one CancelReservation per seat authorization and one
// ReturnPointAward per point authorization of a confirmed order.
func (s *OrderService) Return(ctx context.Context, agentID, transactionID string) ([]task.Task, error) {
	s.logger.InfoContext(ctx, "returning order", slog.String("transaction_id", transactionID))

	tx, err := s.transactions.FindByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if !tx.OwnedBy(agentID) {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, domain.ErrForbidden)
	}
	if tx.Status != transaction.StatusConfirmed {
		return nil, fmt.Errorf("transaction %s is %s: %w", transactionID, tx.Status, domain.ErrConflict)
	}

	seats, err := completedAuthorizations(ctx, s.actions, tx.ID, "", action.ObjectSeatReservation)
	if err != nil {
		return nil, s.fail(ctx, "Return", tx.ID, "failed to search seat authorizations", err)
	}
	points, err := completedAuthorizations(ctx, s.actions, tx.ID, "", action.ObjectPointAward)
	if err != nil {
		return nil, s.fail(ctx, "Return", tx.ID, "failed to search point authorizations", err)
	}

	var data []task.Data
	for i := range seats {
		data = append(data, task.CancelReservationData{
			TransactionID:     tx.ID,
			AgentID:           tx.Agent.ID,
			AuthorizeActionID: seats[i].ID,
		})
	}
	for i := range points {
		result, err := action.DecodeResult[action.PointAwardResult](&points[i])
		if err != nil {
			return nil, err
		}
		data = append(data, task.ReturnPointAwardData{
			TransactionID:  tx.ID,
			OrderNumber:    tx.OrderNumber,
			AgentID:        tx.Agent.ID,
			AccountNumber:  result.AccountNumber,
			Amount:         result.Amount,
			OriginalAction: points[i].ID,
		})
	}

	queued := make([]task.Task, 0, len(data))
	for _, d := range data {
		attrs, err := task.New(d, task.Options{Project: s.project, RunsAt: s.now(), NumberOfTries: s.order.NumberOfTries})
		if err != nil {
			return nil, err
		}
		t, err := s.tasks.Save(ctx, attrs)
		if err != nil {
			return nil, s.fail(ctx, "Return", tx.ID, "failed to queue return task", err, slog.String("task_name", string(attrs.Name)))
		}
		queued = append(queued, *t)
	}
	return queued, nil
}

func (s *OrderService) fail(ctx context.Context, operation, transactionID, msg string, err error, attrs ...any) error {
	args := append([]any{
		slog.String("operation", "OrderService."+operation),
		slog.String("transaction_id", transactionID),
	}, attrs...)
	args = append(args, slog.Any("error", err))
	s.logger.ErrorContext(ctx, msg, args...)
	return err
}

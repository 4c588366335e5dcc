package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/transaction"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// Compile-time check that ActionQueryService implements ports.ActionQueryService.
var _ ports.ActionQueryService = (*ActionQueryService)(nil)

// ActionQueryService reads the ledger for the HTTP API.
type ActionQueryService struct {
	transactions ports.TransactionRepository
	actions      ports.ActionRepository
	logger       *slog.Logger
}

// NewActionQueryService creates an ActionQueryService.
func NewActionQueryService(transactions ports.TransactionRepository, actions ports.ActionRepository, logger *slog.Logger) *ActionQueryService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ActionQueryService{transactions: transactions, actions: actions, logger: logger}
}

// ListByTransaction returns every action performed for the transaction,
// oldest first.
func (s *ActionQueryService) ListByTransaction(ctx context.Context, agentID, transactionID string) ([]action.Action, error) {
	if err := checkOwner(ctx, s.transactions, agentID, transactionID); err != nil {
		return nil, err
	}

	found, err := s.actions.SearchByPurpose(ctx, action.PurposeConditions{
		Purpose: action.PurposeFilter{TypeOf: transaction.TypePlaceOrder, ID: transactionID},
		Sort:    action.Sort{StartDate: action.SortAscending},
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to search actions",
			slog.String("operation", "ActionQueryService.ListByTransaction"),
			slog.String("transaction_id", transactionID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return found, nil
}

// ListByOrderNumber returns the actions of agentID that refer to the order.
func (s *ActionQueryService) ListByOrderNumber(ctx context.Context, agentID, orderNumber string) ([]action.Action, error) {
	found, err := s.actions.SearchByOrderNumber(ctx, orderNumber, action.Sort{StartDate: action.SortAscending})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to search actions",
			slog.String("operation", "ActionQueryService.ListByOrderNumber"),
			slog.String("order_number", orderNumber),
			slog.Any("error", err),
		)
		return nil, err
	}

	out := found[:0]
	for _, a := range found {
		if a.Agent.ID == agentID {
			out = append(out, a)
		}
	}
	return out, nil
}

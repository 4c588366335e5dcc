package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/transaction"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// loadOwnedInProgress returns the transaction only if it is InProgress, not
// expired at now and started by agentID.
func loadOwnedInProgress(ctx context.Context, repo ports.TransactionRepository, agentID, id string, now time.Time) (*transaction.Transaction, error) {
	tx, err := repo.FindInProgressByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !tx.OwnedBy(agentID) {
		return nil, fmt.Errorf("transaction %s: %w", id, domain.ErrForbidden)
	}
	if tx.IsExpired(now) {
		return nil, fmt.Errorf("transaction %s expired: %w", id, domain.ErrNotFound)
	}
	return tx, nil
}

// checkOwner verifies that agentID started the transaction, in any status.
func checkOwner(ctx context.Context, repo ports.TransactionRepository, agentID, id string) error {
	tx, err := repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !tx.OwnedBy(agentID) {
		return fmt.Errorf("transaction %s: %w", id, domain.ErrForbidden)
	}
	return nil
}

// completedAuthorizations returns the Completed AuthorizeActions of the
// transaction whose object is of kind. A non-empty actionID narrows the
// result to that action.
func completedAuthorizations(ctx context.Context, repo ports.ActionRepository, transactionID, actionID string, kind action.ObjectType) ([]action.Action, error) {
	found, err := repo.SearchByPurpose(ctx, action.PurposeConditions{
		TypeOf:  action.TypeAuthorize,
		Purpose: action.PurposeFilter{TypeOf: transaction.TypePlaceOrder, ID: transactionID},
		Sort:    action.Sort{StartDate: action.SortAscending},
	})
	if err != nil {
		return nil, err
	}

	out := found[:0]
	for _, a := range found {
		if a.Status != action.StatusCompleted || a.ObjectType() != kind {
			continue
		}
		if actionID != "" && a.ID != actionID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// purposeID is the transaction id an action was performed for. Rate-limit
// and registration locks are held under it.
func purposeID(a *action.Action) string {
	if a.Purpose == nil {
		return ""
	}
	return a.Purpose.ID
}

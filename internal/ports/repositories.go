package ports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/task"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/transaction"
)

// ActionRepository is the action ledger. Every write is a single conditional
// update filtered by (typeOf, id) and the expected prior status, so illegal
// transitions fail at the store instead of overwriting history.
// Implemented by the postgres and memory adapters.
type ActionRepository interface {
	// Start persists a new Active action with StartDate set to now.
	// Returns domain.ErrValidation if the attributes are invalid.
	Start(ctx context.Context, attrs action.Attributes) (*action.Action, error)

	// Complete moves an Active action to Completed and records result.
	// Returns domain.ErrNotFound if no Active action matches (typeOf, id).
	Complete(ctx context.Context, typeOf action.Type, id string, result json.RawMessage) (*action.Action, error)

	// Cancel moves an Active or Completed action to Canceled.
	// Returns domain.ErrNotFound if no such action matches (typeOf, id).
	Cancel(ctx context.Context, typeOf action.Type, id string) (*action.Action, error)

	// GiveUp moves an Active action to Failed and records actionErr.
	// Returns domain.ErrNotFound if no Active action matches (typeOf, id).
	GiveUp(ctx context.Context, typeOf action.Type, id string, actionErr *action.Error) (*action.Action, error)

	// FindByID returns domain.ErrNotFound if the action does not exist.
	FindByID(ctx context.Context, typeOf action.Type, id string) (*action.Action, error)

	// SearchByPurpose returns every action whose purpose matches conds.
	SearchByPurpose(ctx context.Context, conds action.PurposeConditions) ([]action.Action, error)

	// SearchByOrderNumber returns actions whose object.orderNumber or
	// purpose.orderNumber equals orderNumber.
	SearchByOrderNumber(ctx context.Context, orderNumber string, sort action.Sort) ([]action.Action, error)
}

// TaskRepository is the durable task queue.
type TaskRepository interface {
	// Save persists a new task with an empty execution history.
	// A zero RunsAt is stored as now.
	Save(ctx context.Context, attrs task.Attributes) (*task.Task, error)

	// ExecuteOneByName atomically claims one Ready task matching conds whose
	// RunsAt is not after now, moves it to Running and decrements its
	// remaining tries. Returns ok=false with a nil error when nothing is
	// claimable. Concurrent callers never claim the same task.
	ExecuteOneByName(ctx context.Context, conds task.ClaimConditions, now time.Time) (t *task.Task, ok bool, err error)

	// PushExecutionResultByID appends result, increments NumberOfTried, sets
	// LastTriedAt and stores status.
	// Returns domain.ErrNotFound if the task does not exist.
	PushExecutionResultByID(ctx context.Context, id string, status task.Status, result task.ExecutionResult) error

	// FindByID returns domain.ErrNotFound if the task does not exist.
	FindByID(ctx context.Context, id string) (*task.Task, error)

	// RetryStuck moves Running tasks last tried before cutoff that still have
	// tries left back to Ready. Returns the number of tasks moved.
	RetryStuck(ctx context.Context, lastTriedBefore time.Time) (int64, error)

	// AbortStuck moves Running tasks last tried before cutoff with no tries
	// left to Aborted. Returns the number of tasks moved.
	AbortStuck(ctx context.Context, lastTriedBefore time.Time) (int64, error)
}

// TransactionRepository stores place-order transactions.
type TransactionRepository interface {
	// Start persists a new InProgress transaction.
	Start(ctx context.Context, params transaction.StartParams) (*transaction.Transaction, error)

	// FindByID returns domain.ErrNotFound if the transaction does not exist.
	FindByID(ctx context.Context, id string) (*transaction.Transaction, error)

	// FindInProgressByID returns domain.ErrNotFound unless the transaction
	// exists and is InProgress.
	FindInProgressByID(ctx context.Context, id string) (*transaction.Transaction, error)

	// Confirm moves an InProgress transaction to Confirmed with orderNumber
	// and queues follow. The status change and every task commit together
	// or not at all.
	// Returns domain.ErrNotFound if no InProgress transaction matches.
	Confirm(ctx context.Context, id, orderNumber string, follow []task.Attributes) (*transaction.Transaction, []task.Task, error)

	// Cancel moves an InProgress transaction to Canceled and queues follow,
	// with the same all-or-nothing guarantee as Confirm.
	// Returns domain.ErrNotFound if no InProgress transaction matches.
	Cancel(ctx context.Context, id string, follow []task.Attributes) (*transaction.Transaction, []task.Task, error)
}

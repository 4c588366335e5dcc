package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/task"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/transaction"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// Compile-time interface check.
var _ ports.TransactionRepository = (*TransactionRepository)(nil)

// TransactionRepository is an in-memory place-order transaction store.
// Follow-up tasks of Confirm and Cancel go to queue.
type TransactionRepository struct {
	mu           sync.Mutex
	now          func() time.Time
	queue        *TaskRepository
	transactions map[string]*transaction.Transaction
}

// NewTransactionRepository creates an empty store queueing into queue. A nil
// clock uses time.Now.
func NewTransactionRepository(now func() time.Time, queue *TaskRepository) *TransactionRepository {
	if now == nil {
		now = time.Now
	}
	return &TransactionRepository{
		now:          now,
		queue:        queue,
		transactions: make(map[string]*transaction.Transaction),
	}
}

// Start persists a new InProgress transaction.
func (r *TransactionRepository) Start(_ context.Context, params transaction.StartParams) (*transaction.Transaction, error) {
	now := r.now().UTC()
	if err := params.Validate(now); err != nil {
		return nil, err
	}

	tx := &transaction.Transaction{
		ID:        uuid.NewString(),
		TypeOf:    transaction.TypePlaceOrder,
		Agent:     params.Agent,
		Status:    transaction.StatusInProgress,
		StartDate: now,
		Expires:   params.Expires.UTC(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions[tx.ID] = tx

	c := *tx
	return &c, nil
}

// FindByID returns the transaction in any status.
func (r *TransactionRepository) FindByID(_ context.Context, id string) (*transaction.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, ok := r.transactions[id]
	if !ok {
		return nil, fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
	}
	c := *tx
	return &c, nil
}

// FindInProgressByID returns the transaction only while it is InProgress.
func (r *TransactionRepository) FindInProgressByID(_ context.Context, id string) (*transaction.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, ok := r.transactions[id]
	if !ok || tx.Status != transaction.StatusInProgress {
		return nil, fmt.Errorf("in-progress transaction %s: %w", id, domain.ErrNotFound)
	}
	c := *tx
	return &c, nil
}

// Confirm moves an InProgress transaction to Confirmed and queues follow.
func (r *TransactionRepository) Confirm(_ context.Context, id, orderNumber string, follow []task.Attributes) (*transaction.Transaction, []task.Task, error) {
	return r.end(id, follow, func(tx *transaction.Transaction) {
		tx.Status = transaction.StatusConfirmed
		tx.OrderNumber = orderNumber
	})
}

// Cancel moves an InProgress transaction to Canceled and queues follow.
func (r *TransactionRepository) Cancel(_ context.Context, id string, follow []task.Attributes) (*transaction.Transaction, []task.Task, error) {
	return r.end(id, follow, func(tx *transaction.Transaction) {
		tx.Status = transaction.StatusCanceled
	})
}

// end holds the store lock across the queue insert, so the transaction only
// changes once every follow-up task is stored.
func (r *TransactionRepository) end(id string, follow []task.Attributes, mutate func(*transaction.Transaction)) (*transaction.Transaction, []task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, ok := r.transactions[id]
	if !ok || tx.Status != transaction.StatusInProgress {
		return nil, nil, fmt.Errorf("in-progress transaction %s: %w", id, domain.ErrNotFound)
	}

	queued := []task.Task{}
	if len(follow) > 0 {
		if r.queue == nil {
			return nil, nil, fmt.Errorf("transaction %s: no task queue for %d follow-up tasks", id, len(follow))
		}
		var err error
		if queued, err = r.queue.saveAll(follow); err != nil {
			return nil, nil, err
		}
	}

	end := r.now().UTC()
	mutate(tx)
	tx.EndDate = &end

	c := *tx
	return &c, queued, nil
}

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/task"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/transaction"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// Compile-time interface check.
var _ ports.TransactionRepository = (*TransactionRepository)(nil)

const transactionColumns = `id, type_of, agent, status, start_date, end_date, expires, order_number`

// TransactionRepository is the PostgreSQL place-order transaction store.
type TransactionRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewTransactionRepository creates a store on the pool. A nil clock uses
// time.Now.
func NewTransactionRepository(s *Store, now func() time.Time) *TransactionRepository {
	return &TransactionRepository{db: s.db, now: nowFunc(now)}
}

// Start inserts a new InProgress transaction.
func (r *TransactionRepository) Start(ctx context.Context, params transaction.StartParams) (*transaction.Transaction, error) {
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

	agent, err := json.Marshal(tx.Agent)
	if err != nil {
		return nil, fmt.Errorf("encoding agent: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO transactions (id, type_of, agent, status, start_date, expires)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		tx.ID, tx.TypeOf, string(agent), tx.Status, tx.StartDate, tx.Expires,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting transaction: %w", err)
	}
	return tx, nil
}

// FindByID returns the transaction in any status.
func (r *TransactionRepository) FindByID(ctx context.Context, id string) (*transaction.Transaction, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
	return r.scanOne(row, "transaction "+id)
}

// FindInProgressByID returns the transaction only while it is InProgress.
func (r *TransactionRepository) FindInProgressByID(ctx context.Context, id string) (*transaction.Transaction, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1 AND status = $2`,
		id, transaction.StatusInProgress,
	)
	return r.scanOne(row, "in-progress transaction "+id)
}

// Confirm moves an InProgress transaction to Confirmed and queues follow in
// the same database transaction.
func (r *TransactionRepository) Confirm(ctx context.Context, id, orderNumber string, follow []task.Attributes) (*transaction.Transaction, []task.Task, error) {
	return r.end(ctx, id, follow, `
		UPDATE transactions SET status = $1, order_number = $2, end_date = $3
		WHERE id = $4 AND status = $5
		RETURNING `+transactionColumns,
		transaction.StatusConfirmed, orderNumber, r.now().UTC(), id, transaction.StatusInProgress,
	)
}

// Cancel moves an InProgress transaction to Canceled and queues follow in
// the same database transaction.
func (r *TransactionRepository) Cancel(ctx context.Context, id string, follow []task.Attributes) (*transaction.Transaction, []task.Task, error) {
	return r.end(ctx, id, follow, `
		UPDATE transactions SET status = $1, end_date = $2
		WHERE id = $3 AND status = $4
		RETURNING `+transactionColumns,
		transaction.StatusCanceled, r.now().UTC(), id, transaction.StatusInProgress,
	)
}

// end runs the status update and the task inserts in one database
// transaction. Any failure rolls back all of them.
func (r *TransactionRepository) end(ctx context.Context, id string, follow []task.Attributes, update string, args ...any) (_ *transaction.Transaction, _ []task.Task, err error) {
	dbtx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("beginning end of transaction %s: %w", id, err)
	}
	defer func() {
		if err != nil {
			_ = dbtx.Rollback()
		}
	}()

	tx, err := r.scanOne(dbtx.QueryRowContext(ctx, update, args...), "in-progress transaction "+id)
	if err != nil {
		return nil, nil, err
	}

	queued := make([]task.Task, 0, len(follow))
	for _, attrs := range follow {
		t, err := insertTask(ctx, dbtx, attrs, r.now())
		if err != nil {
			return nil, nil, err
		}
		queued = append(queued, *t)
	}

	if err := dbtx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("committing end of transaction %s: %w", id, err)
	}
	return tx, queued, nil
}

func (r *TransactionRepository) scanOne(row *sql.Row, what string) (*transaction.Transaction, error) {
	var (
		tx      transaction.Transaction
		agent   []byte
		endDate sql.NullTime
	)

	err := row.Scan(&tx.ID, &tx.TypeOf, &agent, &tx.Status, &tx.StartDate, &endDate, &tx.Expires, &tx.OrderNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", what, err)
	}

	if err := json.Unmarshal(agent, &tx.Agent); err != nil {
		return nil, fmt.Errorf("decoding agent of %s: %w", what, err)
	}
	tx.StartDate = tx.StartDate.UTC()
	tx.Expires = tx.Expires.UTC()
	tx.EndDate = timePtr(endDate)

	return &tx, nil
}

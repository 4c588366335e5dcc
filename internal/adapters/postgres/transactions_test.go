package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/task"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/transaction"
)

var transactionCols = []string{"id", "type_of", "agent", "status", "start_date", "end_date", "expires", "order_number"}

func TestTransactionRepository_Start(t *testing.T) {
	t.Parallel()
	store, mock := newMockStore(t)
	repo := NewTransactionRepository(store, clock)
	expires := fixedNow.Add(15 * time.Minute)

	mock.ExpectExec(`INSERT INTO transactions`).
		WithArgs(sqlmock.AnyArg(), "PlaceOrder", `{"typeOf":"Person","id":"agent-1"}`, "InProgress", fixedNow, expires).
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := repo.Start(context.Background(), transaction.StartParams{
		Agent:   action.Participant{TypeOf: "Person", ID: "agent-1"},
		Expires: expires,
	})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if tx.Status != transaction.StatusInProgress {
		t.Errorf("Status = %q, want %q", tx.Status, transaction.StatusInProgress)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestTransactionRepository_Start_ExpiredIsInvalid(t *testing.T) {
	t.Parallel()
	store, _ := newMockStore(t)
	repo := NewTransactionRepository(store, clock)

	_, err := repo.Start(context.Background(), transaction.StartParams{
		Agent:   action.Participant{ID: "agent-1"},
		Expires: fixedNow,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Start() error = %v, want ErrValidation", err)
	}
}

func confirmedRow() *sqlmock.Rows {
	return sqlmock.NewRows(transactionCols).AddRow(
		"tx-1", "PlaceOrder", []byte(`{"typeOf":"Person","id":"agent-1"}`), "Confirmed",
		fixedNow, fixedNow, fixedNow.Add(time.Hour), "ORD-1",
	)
}

func followUp(name task.Name) task.Attributes {
	return task.Attributes{
		Name:                   name,
		Project:                "boxoffice",
		Status:                 task.StatusReady,
		RemainingNumberOfTries: 3,
		Data:                   json.RawMessage(`{"transactionId":"tx-1"}`),
	}
}

func TestTransactionRepository_Confirm(t *testing.T) {
	t.Parallel()
	store, mock := newMockStore(t)
	repo := NewTransactionRepository(store, clock)

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE transactions SET status = \$1, order_number = \$2, end_date = \$3 WHERE id = \$4 AND status = \$5`).
		WithArgs("Confirmed", "ORD-1", fixedNow, "tx-1", "InProgress").
		WillReturnRows(confirmedRow())
	mock.ExpectExec(`INSERT INTO tasks`).
		WithArgs(sqlmock.AnyArg(), "ConfirmReservation", "boxoffice", "Ready", fixedNow, int64(3), `{"transactionId":"tx-1"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO tasks`).
		WithArgs(sqlmock.AnyArg(), "GivePointAward", "boxoffice", "Ready", fixedNow, int64(3), `{"transactionId":"tx-1"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, queued, err := repo.Confirm(context.Background(), "tx-1", "ORD-1", []task.Attributes{
		followUp(task.NameConfirmReservation),
		followUp(task.NameGivePointAward),
	})
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if tx.OrderNumber != "ORD-1" || !tx.OwnedBy("agent-1") {
		t.Errorf("Confirm() = %+v, want ORD-1 owned by agent-1", tx)
	}
	if tx.Purpose().OrderNumber != "ORD-1" {
		t.Errorf("Purpose().OrderNumber = %q, want ORD-1", tx.Purpose().OrderNumber)
	}
	if len(queued) != 2 || queued[0].Name != task.NameConfirmReservation || queued[1].Name != task.NameGivePointAward {
		t.Errorf("queued = %+v", queued)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestTransactionRepository_Confirm_TaskInsertFailureRollsBack(t *testing.T) {
	t.Parallel()
	store, mock := newMockStore(t)
	repo := NewTransactionRepository(store, clock)
	insertErr := errors.New("connection reset")

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE transactions SET status = \$1, order_number = \$2`).
		WillReturnRows(confirmedRow())
	mock.ExpectExec(`INSERT INTO tasks`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO tasks`).WillReturnError(insertErr)
	mock.ExpectRollback()

	_, queued, err := repo.Confirm(context.Background(), "tx-1", "ORD-1", []task.Attributes{
		followUp(task.NameConfirmReservation),
		followUp(task.NameGivePointAward),
	})
	if !errors.Is(err, insertErr) {
		t.Fatalf("Confirm() error = %v, want %v", err, insertErr)
	}
	if queued != nil {
		t.Errorf("queued = %+v, want none", queued)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestTransactionRepository_FindInProgressByID_NotFound(t *testing.T) {
	t.Parallel()
	store, mock := newMockStore(t)
	repo := NewTransactionRepository(store, clock)

	mock.ExpectQuery(`FROM transactions WHERE id = \$1 AND status = \$2`).
		WithArgs("tx-1", "InProgress").
		WillReturnRows(sqlmock.NewRows(transactionCols))

	_, err := repo.FindInProgressByID(context.Background(), "tx-1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("FindInProgressByID() error = %v, want ErrNotFound", err)
	}
}

func TestTransactionRepository_Cancel_NotInProgress(t *testing.T) {
	t.Parallel()
	store, mock := newMockStore(t)
	repo := NewTransactionRepository(store, clock)

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE transactions SET status = \$1, end_date = \$2`).
		WithArgs("Canceled", fixedNow, "tx-1", "InProgress").
		WillReturnRows(sqlmock.NewRows(transactionCols))
	mock.ExpectRollback()

	_, _, err := repo.Cancel(context.Background(), "tx-1", []task.Attributes{followUp(task.NameVoidPlaceOrder)})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Cancel() error = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	store := New(db)
	mock.ExpectPing()

	if store.Name() != "postgres" {
		t.Errorf("Name() = %q, want postgres", store.Name())
	}
	if err := store.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

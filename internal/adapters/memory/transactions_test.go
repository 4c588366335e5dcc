package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/action"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/task"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/transaction"
)

func startParams() transaction.StartParams {
	return transaction.StartParams{
		Agent:   action.Participant{TypeOf: "Person", ID: "agent-1"},
		Expires: baseTime.Add(15 * time.Minute),
	}
}

func newTransactions() *TransactionRepository {
	clock := func() time.Time { return baseTime }
	return NewTransactionRepository(clock, NewTaskRepository(clock))
}

func TestTransactionRepository_Start(t *testing.T) {
	t.Parallel()
	repo := newTransactions()

	tx, err := repo.Start(context.Background(), startParams())
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if tx.ID == "" || tx.TypeOf != transaction.TypePlaceOrder {
		t.Errorf("Start() = %+v", tx)
	}
	if tx.Status != transaction.StatusInProgress || !tx.StartDate.Equal(baseTime) || tx.EndDate != nil {
		t.Errorf("Status/StartDate/EndDate = %s/%v/%v", tx.Status, tx.StartDate, tx.EndDate)
	}
	if !tx.OwnedBy("agent-1") {
		t.Error("OwnedBy(agent-1) = false")
	}
}

func TestTransactionRepository_Start_Invalid(t *testing.T) {
	t.Parallel()
	repo := newTransactions()

	params := startParams()
	params.Expires = baseTime.Add(-time.Minute)

	if _, err := repo.Start(context.Background(), params); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Start() error = %v, want ErrValidation", err)
	}
}

func TestTransactionRepository_Transitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		end        func(*TransactionRepository, string) (*transaction.Transaction, []task.Task, error)
		wantStatus transaction.Status
		wantOrder  string
		wantTask   task.Name
	}{
		{
			name: "confirm",
			end: func(r *TransactionRepository, id string) (*transaction.Transaction, []task.Task, error) {
				return r.Confirm(context.Background(), id, "BO-1",
					[]task.Attributes{readyTask(task.NameConfirmReservation, baseTime)})
			},
			wantStatus: transaction.StatusConfirmed,
			wantOrder:  "BO-1",
			wantTask:   task.NameConfirmReservation,
		},
		{
			name: "cancel",
			end: func(r *TransactionRepository, id string) (*transaction.Transaction, []task.Task, error) {
				return r.Cancel(context.Background(), id,
					[]task.Attributes{readyTask(task.NameVoidPlaceOrder, baseTime)})
			},
			wantStatus: transaction.StatusCanceled,
			wantTask:   task.NameVoidPlaceOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			repo := newTransactions()
			tx, err := repo.Start(ctx, startParams())
			if err != nil {
				t.Fatal(err)
			}

			got, queued, err := tt.end(repo, tx.ID)
			if err != nil {
				t.Fatalf("end error = %v", err)
			}
			if got.Status != tt.wantStatus || got.OrderNumber != tt.wantOrder || got.EndDate == nil {
				t.Errorf("got %s/%q/%v", got.Status, got.OrderNumber, got.EndDate)
			}
			if len(queued) != 1 || queued[0].Name != tt.wantTask || queued[0].ID == "" {
				t.Fatalf("queued = %+v, want one %s task", queued, tt.wantTask)
			}
			if _, err := repo.queue.FindByID(ctx, queued[0].ID); err != nil {
				t.Errorf("queued task not stored: %v", err)
			}

			if _, err := repo.FindInProgressByID(ctx, tx.ID); !errors.Is(err, domain.ErrNotFound) {
				t.Errorf("FindInProgressByID() error = %v, want ErrNotFound", err)
			}
			if _, _, err := tt.end(repo, tx.ID); !errors.Is(err, domain.ErrNotFound) {
				t.Errorf("second end error = %v, want ErrNotFound", err)
			}
			if found, err := repo.FindByID(ctx, tx.ID); err != nil || found.Status != tt.wantStatus {
				t.Errorf("FindByID() = %v, %v", found, err)
			}
		})
	}
}

func TestTransactionRepository_Confirm_RejectedTaskChangesNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTransactions()
	tx, err := repo.Start(ctx, startParams())
	if err != nil {
		t.Fatal(err)
	}

	follow := []task.Attributes{
		readyTask(task.NameConfirmReservation, baseTime),
		readyTask("Unknown", baseTime),
	}
	if _, _, err := repo.Confirm(ctx, tx.ID, "BO-1", follow); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Confirm() error = %v, want ErrValidation", err)
	}

	if _, err := repo.FindInProgressByID(ctx, tx.ID); err != nil {
		t.Errorf("transaction left InProgress: FindInProgressByID() error = %v", err)
	}
	conds := task.ClaimConditions{Name: task.NameConfirmReservation}
	if _, ok, _ := repo.queue.ExecuteOneByName(ctx, conds, baseTime); ok {
		t.Error("a task was queued by a rejected confirmation")
	}

	if _, queued, err := repo.Confirm(ctx, tx.ID, "BO-1", follow[:1]); err != nil || len(queued) != 1 {
		t.Errorf("retried Confirm() = %d tasks, %v", len(queued), err)
	}
}

func TestTransactionRepository_FollowUpWithoutQueue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewTransactionRepository(nil, nil)
	tx, err := repo.Start(ctx, transaction.StartParams{
		Agent:   action.Participant{ID: "agent-1"},
		Expires: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := repo.Cancel(ctx, tx.ID, []task.Attributes{readyTask(task.NameVoidPlaceOrder, baseTime)}); err == nil {
		t.Fatal("Cancel() with follow-up tasks and no queue succeeded")
	}
	if _, _, err := repo.Cancel(ctx, tx.ID, nil); err != nil {
		t.Errorf("Cancel() without follow-up error = %v", err)
	}
}

func TestTransactionRepository_FindByID_Missing(t *testing.T) {
	t.Parallel()
	repo := NewTransactionRepository(nil, nil)

	if _, err := repo.FindByID(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("FindByID() error = %v, want ErrNotFound", err)
	}
}

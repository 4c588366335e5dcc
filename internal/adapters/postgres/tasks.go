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
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// Compile-time interface check.
var _ ports.TaskRepository = (*TaskRepository)(nil)

const taskColumns = `id, name, project, status, runs_at, remaining_number_of_tries,
	number_of_tried, last_tried_at, data, execution_results`

// TaskRepository is the PostgreSQL task queue.
type TaskRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewTaskRepository creates a queue on the store's pool. A nil clock uses
// time.Now.
func NewTaskRepository(s *Store, now func() time.Time) *TaskRepository {
	return &TaskRepository{db: s.db, now: nowFunc(now)}
}

// Save inserts a new task with an empty history.
func (r *TaskRepository) Save(ctx context.Context, attrs task.Attributes) (*task.Task, error) {
	return insertTask(ctx, r.db, attrs, r.now())
}

// execer is satisfied by both the pool and an open *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// insertTask writes one Ready task through db. A zero RunsAt becomes now.
func insertTask(ctx context.Context, db execer, attrs task.Attributes, now time.Time) (*task.Task, error) {
	if err := attrs.Validate(); err != nil {
		return nil, err
	}

	runsAt := attrs.RunsAt
	if runsAt.IsZero() {
		runsAt = now
	}

	t := &task.Task{
		ID:                     uuid.NewString(),
		Name:                   attrs.Name,
		Project:                attrs.Project,
		Status:                 attrs.Status,
		RunsAt:                 runsAt.UTC(),
		RemainingNumberOfTries: attrs.RemainingNumberOfTries,
		Data:                   attrs.Data,
		ExecutionResults:       []task.ExecutionResult{},
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO tasks (id, name, project, status, runs_at, remaining_number_of_tries, data)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.Name, t.Project, t.Status, t.RunsAt, t.RemainingNumberOfTries, jsonArg(t.Data),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting %s task: %w", t.Name, err)
	}
	return t, nil
}

// ExecuteOneByName claims the Ready task with the earliest RunsAt. The inner
// SELECT skips rows locked by concurrent claimers, so each task is handed to
// exactly one caller.
func (r *TaskRepository) ExecuteOneByName(ctx context.Context, conds task.ClaimConditions, now time.Time) (*task.Task, bool, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE tasks SET status = $1, remaining_number_of_tries = remaining_number_of_tries - 1
		WHERE id = (
			SELECT id FROM tasks
			WHERE status = $2 AND name = $3 AND runs_at <= $4 AND ($5 = '' OR project = $5)
			ORDER BY runs_at ASC
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING `+taskColumns,
		task.StatusRunning, task.StatusReady, conds.Name, now.UTC(), conds.Project,
	)

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("claiming %s task: %w", conds.Name, err)
	}
	return t, true, nil
}

// PushExecutionResultByID appends result to the task's history.
func (r *TaskRepository) PushExecutionResultByID(ctx context.Context, id string, status task.Status, result task.ExecutionResult) error {
	entry, err := json.Marshal([]task.ExecutionResult{result})
	if err != nil {
		return fmt.Errorf("encoding execution result: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks SET status = $1, number_of_tried = number_of_tried + 1, last_tried_at = $2,
			execution_results = execution_results || $3::jsonb
		WHERE id = $4`,
		status, result.ExecutedAt.UTC(), string(entry), id,
	)
	if err != nil {
		return fmt.Errorf("recording result of task %s: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("recording result of task %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// FindByID returns the task with id.
func (r *TaskRepository) FindByID(ctx context.Context, id string) (*task.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("finding task %s: %w", id, err)
	}
	return t, nil
}

// RetryStuck moves stuck Running tasks with tries left back to Ready.
func (r *TaskRepository) RetryStuck(ctx context.Context, lastTriedBefore time.Time) (int64, error) {
	return r.moveStuck(ctx, `
		UPDATE tasks SET status = $1
		WHERE status = $2 AND last_tried_at < $3 AND remaining_number_of_tries > 0`,
		task.StatusReady, lastTriedBefore,
	)
}

// AbortStuck moves stuck Running tasks without tries left to Aborted.
func (r *TaskRepository) AbortStuck(ctx context.Context, lastTriedBefore time.Time) (int64, error) {
	return r.moveStuck(ctx, `
		UPDATE tasks SET status = $1
		WHERE status = $2 AND last_tried_at < $3 AND remaining_number_of_tries <= 0`,
		task.StatusAborted, lastTriedBefore,
	)
}

func (r *TaskRepository) moveStuck(ctx context.Context, query string, to task.Status, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, to, task.StatusRunning, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("moving stuck tasks to %s: %w", to, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("moving stuck tasks to %s: %w", to, err)
	}
	return n, nil
}

func scanTask(row scanner) (*task.Task, error) {
	var (
		t           task.Task
		lastTriedAt sql.NullTime
		data        []byte
		results     []byte
	)

	err := row.Scan(&t.ID, &t.Name, &t.Project, &t.Status, &t.RunsAt, &t.RemainingNumberOfTries,
		&t.NumberOfTried, &lastTriedAt, &data, &results)
	if err != nil {
		return nil, err
	}

	t.RunsAt = t.RunsAt.UTC()
	t.LastTriedAt = timePtr(lastTriedAt)
	t.Data = rawOrNil(data)
	t.ExecutionResults = []task.ExecutionResult{}
	if len(results) > 0 {
		if err := json.Unmarshal(results, &t.ExecutionResults); err != nil {
			return nil, fmt.Errorf("decoding execution results of %s: %w", t.ID, err)
		}
	}

	return &t, nil
}

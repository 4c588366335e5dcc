package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain/task"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"
)

// Compile-time interface check.
var _ ports.TaskRepository = (*TaskRepository)(nil)

// TaskRepository is an in-memory task queue. Claims pick the claimable task
// with the earliest RunsAt.
type TaskRepository struct {
	mu    sync.Mutex
	now   func() time.Time
	tasks []*task.Task
}

// NewTaskRepository creates an empty queue. A nil clock uses time.Now.
func NewTaskRepository(now func() time.Time) *TaskRepository {
	if now == nil {
		now = time.Now
	}
	return &TaskRepository{now: now}
}

// Save persists a new task with an empty history.
func (r *TaskRepository) Save(_ context.Context, attrs task.Attributes) (*task.Task, error) {
	saved, err := r.saveAll([]task.Attributes{attrs})
	if err != nil {
		return nil, err
	}
	return &saved[0], nil
}

// saveAll validates every entry before storing any, so either all tasks are
// queued or none are.
func (r *TaskRepository) saveAll(all []task.Attributes) ([]task.Task, error) {
	for _, attrs := range all {
		if err := attrs.Validate(); err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	saved := make([]task.Task, 0, len(all))
	for _, attrs := range all {
		runsAt := attrs.RunsAt
		if runsAt.IsZero() {
			runsAt = r.now()
		}
		t := &task.Task{
			ID:                     uuid.NewString(),
			Name:                   attrs.Name,
			Project:                attrs.Project,
			Status:                 attrs.Status,
			RunsAt:                 runsAt.UTC(),
			RemainingNumberOfTries: attrs.RemainingNumberOfTries,
			Data:                   slices.Clone(attrs.Data),
			ExecutionResults:       []task.ExecutionResult{},
		}
		r.tasks = append(r.tasks, t)
		saved = append(saved, *cloneTask(t))
	}
	return saved, nil
}

// ExecuteOneByName claims one Ready task. The whole find-and-update runs
// under the lock, so two callers never claim the same task.
func (r *TaskRepository) ExecuteOneByName(_ context.Context, conds task.ClaimConditions, now time.Time) (*task.Task, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var next *task.Task
	for _, t := range r.tasks {
		if !conds.Claimable(t, now) {
			continue
		}
		if next == nil || t.RunsAt.Before(next.RunsAt) {
			next = t
		}
	}
	if next == nil {
		return nil, false, nil
	}

	next.Status = task.StatusRunning
	next.RemainingNumberOfTries--
	return cloneTask(next), true, nil
}

// PushExecutionResultByID appends one attempt to the task's history.
func (r *TaskRepository) PushExecutionResultByID(_ context.Context, id string, status task.Status, result task.ExecutionResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.find(id)
	if t == nil {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}

	executedAt := result.ExecutedAt
	t.ExecutionResults = append(t.ExecutionResults, result)
	t.NumberOfTried++
	t.LastTriedAt = &executedAt
	t.Status = status
	return nil
}

// FindByID returns the task with id.
func (r *TaskRepository) FindByID(_ context.Context, id string) (*task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.find(id)
	if t == nil {
		return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return cloneTask(t), nil
}

// RetryStuck moves stuck Running tasks with tries left back to Ready.
func (r *TaskRepository) RetryStuck(_ context.Context, lastTriedBefore time.Time) (int64, error) {
	return r.moveStuck(lastTriedBefore, task.StatusReady, func(t *task.Task) bool {
		return t.RemainingNumberOfTries > 0
	}), nil
}

// AbortStuck moves stuck Running tasks without tries left to Aborted.
func (r *TaskRepository) AbortStuck(_ context.Context, lastTriedBefore time.Time) (int64, error) {
	return r.moveStuck(lastTriedBefore, task.StatusAborted, func(t *task.Task) bool {
		return t.RemainingNumberOfTries <= 0
	}), nil
}

func (r *TaskRepository) moveStuck(cutoff time.Time, to task.Status, eligible func(*task.Task) bool) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, t := range r.tasks {
		if t.Status != task.StatusRunning || t.LastTriedAt == nil || !t.LastTriedAt.Before(cutoff) {
			continue
		}
		if !eligible(t) {
			continue
		}
		t.Status = to
		n++
	}
	return n
}

func (r *TaskRepository) find(id string) *task.Task {
	for _, t := range r.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func cloneTask(t *task.Task) *task.Task {
	c := *t
	c.Data = slices.Clone(t.Data)
	c.ExecutionResults = slices.Clone(t.ExecutionResults)
	if t.LastTriedAt != nil {
		last := *t.LastTriedAt
		c.LastTriedAt = &last
	}
	return &c
}

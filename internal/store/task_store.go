// Package store holds the authoritative in-memory task list for the running
// session. Every mutation is applied in memory first and then pushed to the
// storage backend; a backend failure marks the entry sync-failed and is
// surfaced to the caller, never retried. Subsequent List/GetByDate calls see
// a mutation synchronously.
package store

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "study-planner.com/study-planner/internal/errors"
	"study-planner.com/study-planner/pkg/constants"
	model "study-planner.com/study-planner/pkg/models"
)

// Persistence is the storage collaborator the store writes through to.
type Persistence interface {
	Insert(ctx context.Context, task model.Task) error
	Update(ctx context.Context, task model.Task) error
	Delete(ctx context.Context, id string) error
}

type TaskStore struct {
	mu    sync.Mutex
	tasks []model.Task
	repo  Persistence
}

func NewTaskStore(repo Persistence) *TaskStore {
	return &TaskStore{repo: repo}
}

// Hydrate seeds the in-memory list from a persisted snapshot, typically at
// process start. Hydrated entries are considered confirmed.
func (s *TaskStore) Hydrate(tasks []model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = make([]model.Task, len(tasks))
	copy(s.tasks, tasks)
	for i := range s.tasks {
		s.tasks[i].SyncState = constants.SyncConfirmed
	}
}

// List returns a snapshot copy. Order is insertion order and carries no
// meaning after edits; callers sort by date/time themselves.
func (s *TaskStore) List() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *TaskStore) Get(id string) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, apperrors.ErrTaskNotFound
	}
	return s.tasks[i], nil
}

// GetByDate filters on exact date-string equality.
func (s *TaskStore) GetByDate(date string) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []model.Task{}
	for _, t := range s.tasks {
		if t.Date == date {
			out = append(out, t)
		}
	}
	return out
}

// Create validates, assigns a fresh id, appends in memory and persists. On a
// backend failure the entry stays in memory marked sync-failed and the
// wrapped error is returned alongside the task for the caller to surface.
func (s *TaskStore) Create(ctx context.Context, input model.Task) (model.Task, error) {
	if err := validate(input); err != nil {
		return model.Task{}, err
	}

	input.ID = uuid.NewString()
	input.CreatedAt = time.Now().UTC()
	if input.Category == "" {
		input.Category = constants.CategoryOther
	}
	if input.Priority == "" {
		input.Priority = constants.PriorityMedium
	}
	if input.Subtasks == nil {
		input.Subtasks = []model.SubTask{}
	}
	input.SyncState = constants.SyncPending

	s.mu.Lock()
	s.tasks = append(s.tasks, input)
	s.mu.Unlock()

	return s.settle(ctx, input, "insert")
}

// Update merges the patch into the existing entry and persists the result.
func (s *TaskStore) Update(ctx context.Context, id string, p Patch) (model.Task, error) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return model.Task{}, apperrors.ErrTaskNotFound
	}

	t := s.tasks[i]
	applyPatch(&t, p)
	if err := validateFields(t); err != nil {
		s.mu.Unlock()
		return model.Task{}, err
	}
	t.SyncState = constants.SyncPending
	s.tasks[i] = t
	s.mu.Unlock()

	return s.settleUpdate(ctx, t)
}

// Reschedule moves a task to a new date and time window. Empty start/end
// clear the time fields (the all-day drop).
func (s *TaskStore) Reschedule(ctx context.Context, id, date, start, end string) (model.Task, error) {
	return s.Update(ctx, id, Patch{Date: &date, StartTime: &start, EndTime: &end})
}

// ToggleSubtask flips one subtask's completed flag, replacing the subtask
// list wholesale as Update requires. Siblings and the parent's completed
// flag are untouched; an unknown subtask id leaves the task unchanged.
func (s *TaskStore) ToggleSubtask(ctx context.Context, taskID, subtaskID string) (model.Task, error) {
	s.mu.Lock()
	i := s.indexOf(taskID)
	if i < 0 {
		s.mu.Unlock()
		return model.Task{}, apperrors.ErrTaskNotFound
	}

	task := s.tasks[i]
	subtasks := make([]model.SubTask, len(task.Subtasks))
	copy(subtasks, task.Subtasks)
	found := false
	for j := range subtasks {
		if subtasks[j].ID == subtaskID {
			subtasks[j].Completed = !subtasks[j].Completed
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return task, nil
	}
	return s.Update(ctx, taskID, Patch{Subtasks: &subtasks})
}

// Remove deletes the entry. An absent id is a silent no-op; a backend delete
// failure propagates after the in-memory removal.
func (s *TaskStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return nil
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.mu.Unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Backend("delete", err)
	}
	return nil
}

// ImportFromTemplate bulk-creates copies of the given tasks stamped with the
// owning system's identity, each with a fresh id. Best-effort: one item's
// failure is logged and the batch continues. Returns the created copies.
func (s *TaskStore) ImportFromTemplate(ctx context.Context, systemID, systemName string, tasks []model.Task) []model.Task {
	created := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		copyTask := t
		copyTask.ID = ""
		copyTask.SystemID = systemID
		copyTask.SystemName = systemName
		copyTask.Subtasks = append([]model.SubTask{}, t.Subtasks...)

		imported, err := s.Create(ctx, copyTask)
		if err != nil {
			log.Printf("template import: task %q skipped: %v", t.Title, err)
			continue
		}
		created = append(created, imported)
	}
	return created
}

// settle persists a freshly created entry and records the sync outcome on
// the in-memory copy.
func (s *TaskStore) settle(ctx context.Context, task model.Task, op string) (model.Task, error) {
	err := s.repo.Insert(ctx, task)
	return s.recordSync(task, err, op)
}

func (s *TaskStore) settleUpdate(ctx context.Context, task model.Task) (model.Task, error) {
	err := s.repo.Update(ctx, task)
	return s.recordSync(task, err, "update")
}

func (s *TaskStore) recordSync(task model.Task, err error, op string) (model.Task, error) {
	state := constants.SyncConfirmed
	if err != nil {
		state = constants.SyncFailed
	}

	s.mu.Lock()
	if i := s.indexOf(task.ID); i >= 0 {
		s.tasks[i].SyncState = state
	}
	s.mu.Unlock()

	task.SyncState = state
	if err != nil {
		return task, apperrors.Backend(op, err)
	}
	return task, nil
}

func (s *TaskStore) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// validateFields checks the invariants every stored task must hold,
// on create and after every patch merge.
func validateFields(t model.Task) error {
	if t.Title == "" {
		return apperrors.ErrTitleRequired
	}
	if t.Date == "" {
		return apperrors.ErrDateRequired
	}
	if t.Category != "" && !t.Category.IsValid() {
		return apperrors.ErrInvalidCategory
	}
	if t.Priority != "" && !t.Priority.IsValid() {
		return apperrors.ErrInvalidPriority
	}
	return nil
}

// validate adds the create-only start/end ordering check. Updates skip it:
// an hour-23 reschedule wraps the end time past midnight.
func validate(t model.Task) error {
	if err := validateFields(t); err != nil {
		return err
	}
	if t.StartTime != "" && t.EndTime != "" && t.EndTime <= t.StartTime {
		return apperrors.ErrInvalidTimeRange
	}
	return nil
}

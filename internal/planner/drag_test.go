package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "study-planner.com/study-planner/internal/errors"
	model "study-planner.com/study-planner/pkg/models"
)

type rescheduleCall struct {
	id, date, start, end string
}

type fakeRescheduler struct {
	calls []rescheduleCall
	err   error
}

func (f *fakeRescheduler) Reschedule(_ context.Context, id, date, start, end string) (model.Task, error) {
	f.calls = append(f.calls, rescheduleCall{id, date, start, end})
	if f.err != nil {
		return model.Task{}, f.err
	}
	return model.Task{ID: id, Date: date, StartTime: start, EndTime: end}, nil
}

func hourPtr(h int) *int { return &h }

func TestDrag_DropOnHourSlot(t *testing.T) {
	store := &fakeRescheduler{}
	c := NewDragController(store)

	require.NoError(t, c.Begin("task-1"))
	c.Enter(DropTarget{Date: "2024-03-20", Hour: hourPtr(9)})

	task, moved, err := c.Drop(context.Background())
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "2024-03-20", task.Date)
	assert.Equal(t, "09:00", task.StartTime)
	assert.Equal(t, "10:00", task.EndTime)
	assert.Equal(t, StateIdle, c.State())
}

func TestDrag_HourWrapsAtMidnight(t *testing.T) {
	store := &fakeRescheduler{}
	c := NewDragController(store)

	require.NoError(t, c.Begin("task-1"))
	c.Enter(DropTarget{Date: "2024-03-20", Hour: hourPtr(23)})

	task, moved, err := c.Drop(context.Background())
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "23:00", task.StartTime)
	assert.Equal(t, "00:00", task.EndTime)
}

func TestDrag_AllDayDropClearsTimes(t *testing.T) {
	store := &fakeRescheduler{}
	c := NewDragController(store)

	require.NoError(t, c.Begin("task-1"))
	c.Enter(DropTarget{Date: "2024-03-21"})

	task, moved, err := c.Drop(context.Background())
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "2024-03-21", task.Date)
	assert.Empty(t, task.StartTime)
	assert.Empty(t, task.EndTime)
}

func TestDrag_ReleaseOutsideTargetDoesNotMutate(t *testing.T) {
	store := &fakeRescheduler{}
	c := NewDragController(store)

	require.NoError(t, c.Begin("task-1"))

	_, moved, err := c.Drop(context.Background())
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Empty(t, store.calls)
	assert.Equal(t, StateIdle, c.State())
}

func TestDrag_LeaveClearsCandidate(t *testing.T) {
	c := NewDragController(&fakeRescheduler{})

	require.NoError(t, c.Begin("task-1"))
	c.Enter(DropTarget{Date: "2024-03-20", Hour: hourPtr(10)})
	_, ok := c.Candidate()
	assert.True(t, ok)

	c.Leave()
	assert.Equal(t, StateDragging, c.State())
	_, ok = c.Candidate()
	assert.False(t, ok)
}

func TestDrag_ReenterReplacesCandidate(t *testing.T) {
	store := &fakeRescheduler{}
	c := NewDragController(store)

	require.NoError(t, c.Begin("task-1"))
	c.Enter(DropTarget{Date: "2024-03-20", Hour: hourPtr(10)})
	c.Enter(DropTarget{Date: "2024-03-22", Hour: hourPtr(14)})

	task, moved, err := c.Drop(context.Background())
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "2024-03-22", task.Date)
	assert.Equal(t, "14:00", task.StartTime)
	require.Len(t, store.calls, 1)
}

func TestDrag_SingleGestureSlot(t *testing.T) {
	c := NewDragController(&fakeRescheduler{})

	require.NoError(t, c.Begin("task-1"))
	err := c.Begin("task-2")
	assert.ErrorIs(t, err, apperrors.ErrGestureActive)
}

func TestDrag_StoreErrorStillResets(t *testing.T) {
	store := &fakeRescheduler{err: apperrors.ErrTaskNotFound}
	c := NewDragController(store)

	require.NoError(t, c.Begin("missing"))
	c.Enter(DropTarget{Date: "2024-03-20"})

	_, moved, err := c.Drop(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
	assert.False(t, moved)
	assert.Equal(t, StateIdle, c.State())
}

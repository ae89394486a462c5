package planner

import (
	"context"
	"fmt"

	apperrors "study-planner.com/study-planner/internal/errors"
	model "study-planner.com/study-planner/pkg/models"
)

type GestureState int

const (
	StateIdle GestureState = iota
	StateDragging
	StateHovering
)

// DropTarget is a drop-eligible calendar cell or day-view slot. A nil Hour
// means the all-day region: dropping there sets the date and clears both
// time fields.
type DropTarget struct {
	Date string
	Hour *int
}

// Rescheduler is the slice of the task store the drag controller needs.
// Empty start/end strings clear the time fields.
type Rescheduler interface {
	Reschedule(ctx context.Context, id, date, start, end string) (model.Task, error)
}

// DragController interprets one drag gesture at a time: a gesture begins on
// a task card, hovers over candidate targets and either drops (issuing a
// single store update) or is released outside any target (no mutation).
// Gestures are single-slot; a second Begin while one is active is rejected.
type DragController struct {
	state  GestureState
	taskID string
	target DropTarget
	store  Rescheduler
}

func NewDragController(store Rescheduler) *DragController {
	return &DragController{store: store}
}

func (c *DragController) State() GestureState {
	return c.state
}

// Candidate returns the currently highlighted drop target, if any.
func (c *DragController) Candidate() (DropTarget, bool) {
	if c.state != StateHovering {
		return DropTarget{}, false
	}
	return c.target, true
}

func (c *DragController) Begin(taskID string) error {
	if c.state != StateIdle {
		return apperrors.ErrGestureActive
	}
	c.state = StateDragging
	c.taskID = taskID
	return nil
}

// Enter records the candidate target. Entering a different cell while
// already hovering just replaces the candidate.
func (c *DragController) Enter(target DropTarget) {
	if c.state == StateIdle {
		return
	}
	c.state = StateHovering
	c.target = target
}

// Leave clears the highlighted candidate without ending the gesture.
func (c *DragController) Leave() {
	if c.state != StateHovering {
		return
	}
	c.state = StateDragging
	c.target = DropTarget{}
}

// Drop ends the gesture. Over a target it computes the new schedule and
// issues the store update; released outside any target it is a no-op. Either
// way the controller returns to idle.
func (c *DragController) Drop(ctx context.Context) (model.Task, bool, error) {
	defer c.reset()

	if c.state != StateHovering {
		return model.Task{}, false, nil
	}

	start, end := DropTimes(c.target.Hour)
	task, err := c.store.Reschedule(ctx, c.taskID, c.target.Date, start, end)
	if err != nil {
		return model.Task{}, false, err
	}
	return task, true, nil
}

func (c *DragController) reset() {
	c.state = StateIdle
	c.taskID = ""
	c.target = DropTarget{}
}

// DropTimes translates a drop target's hour into the task's new time window:
// hour h becomes h:00 to (h+1) mod 24 : 00; the all-day region (nil hour)
// clears both fields.
func DropTimes(hour *int) (start, end string) {
	if hour == nil {
		return "", ""
	}
	h := *hour
	return fmt.Sprintf("%02d:00", h), fmt.Sprintf("%02d:00", (h+1)%24)
}

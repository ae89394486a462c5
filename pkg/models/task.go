package model

import (
	"time"

	"study-planner.com/study-planner/pkg/constants"
)

// SubTask is always embedded in its parent task's subtask list; it has no
// lifecycle of its own. Toggling a subtask never cascades to the parent's
// completed flag.
type SubTask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Task is a schedulable unit of work. Date is a "YYYY-MM-DD" string and all
// date comparisons are exact string equality. StartTime/EndTime are "HH:MM"
// clock times on the same day; when both are present the end must be after
// the start.
type Task struct {
	ID          string              `gorm:"primaryKey;size:36" json:"id"`
	Title       string              `gorm:"not null" json:"title"`
	Description string              `json:"description,omitempty"`
	Date        string              `gorm:"size:10;not null;index" json:"date"`
	StartTime   string              `gorm:"size:5" json:"start_time,omitempty"`
	EndTime     string              `gorm:"size:5" json:"end_time,omitempty"`
	Category    constants.Category  `gorm:"type:varchar(20);not null" json:"category"`
	Priority    constants.Priority  `gorm:"type:varchar(10);not null" json:"priority"`
	Completed   bool                `json:"completed"`
	SystemID    string              `gorm:"index" json:"system_id,omitempty"`
	SystemName  string              `json:"system_name,omitempty"`
	ModuleID    string              `gorm:"index" json:"module_id,omitempty"`
	Subtasks    []SubTask           `gorm:"serializer:json" json:"subtasks"`
	Technique   string              `json:"technique,omitempty"`
	SyncState   constants.SyncState `gorm:"-" json:"sync_state,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// HasTime reports whether the task carries a start time and therefore
// belongs in an hourly planner slot rather than the all-day slot.
func (t Task) HasTime() bool {
	return t.StartTime != ""
}

package model

import "time"

// LearningSystem is the top-level container for one course or goal. Progress
// is the externally stored value; the Summary fields are recomputed from the
// modules/tasks snapshot on every load and never persisted.
type LearningSystem struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description,omitempty"`
	Progress    int       `json:"progress"`
	Deadline    string    `gorm:"size:10" json:"deadline,omitempty"`
	Status      string    `gorm:"size:32" json:"status"`
	CreatedAt   time.Time `json:"created_at"`

	Summary *SystemSummary `gorm:"-" json:"summary,omitempty"`
}

// SystemSummary holds the derived per-system figures shown in progress
// displays. Times are whole hours.
type SystemSummary struct {
	TotalTasks       int `json:"total_tasks"`
	CompletedTasks   int `json:"completed_tasks"`
	CompletedModules int `json:"completed_modules"`
	TimeSpent        int `json:"time_spent"`
	EstimatedTime    int `json:"estimated_time"`
	TotalWeeks       int `json:"total_weeks"`
}

// SystemModule groups tasks within a system. IsCompleted is set manually and
// is not derived from the module's tasks.
type SystemModule struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	SystemID    string `gorm:"index;not null" json:"system_id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description,omitempty"`
	IsCompleted bool   `json:"is_completed"`
	Position    int    `json:"position"`

	Tasks []Task `gorm:"-" json:"tasks,omitempty"`
}

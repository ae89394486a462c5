package dto

import (
	"study-planner.com/study-planner/internal/planner"
	model "study-planner.com/study-planner/pkg/models"
)

// MonthCellResponse augments a month cell with the capped task list the
// month grid shows directly; tasks beyond the cap are an overflow count.
type MonthCellResponse struct {
	planner.Cell
	VisibleTasks []model.Task `json:"visible_tasks"`
	Overflow     int          `json:"overflow"`
}

type SystemDetailResponse struct {
	System  *model.LearningSystem `json:"system"`
	Modules []model.SystemModule  `json:"modules"`
}

// ModuleProgressResponse pairs a module with its derived completion
// percentage for progress displays.
type ModuleProgressResponse struct {
	Module   model.SystemModule `json:"module"`
	Progress float64            `json:"progress"`
}

type ImportResponse struct {
	System   *model.LearningSystem `json:"system"`
	Imported []model.Task          `json:"imported"`
}

type GenerateResponse struct {
	Modules []model.SystemModule `json:"modules"`
	Skipped bool                 `json:"skipped"`
}

type APIKeyResponse struct {
	APIKey string `json:"api_key"`
}

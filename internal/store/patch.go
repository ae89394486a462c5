package store

import (
	"study-planner.com/study-planner/pkg/constants"
	model "study-planner.com/study-planner/pkg/models"
)

// Patch is a partial task update. nil pointer => "no change"; an empty
// string on StartTime/EndTime clears the field. Subtasks are replaced
// wholesale, never patched element by element.
type Patch struct {
	Title       *string             `json:"title,omitempty"`
	Description *string             `json:"description,omitempty"`
	Date        *string             `json:"date,omitempty"`
	StartTime   *string             `json:"start_time,omitempty"`
	EndTime     *string             `json:"end_time,omitempty"`
	Category    *constants.Category `json:"category,omitempty"`
	Priority    *constants.Priority `json:"priority,omitempty"`
	Completed   *bool               `json:"completed,omitempty"`
	Subtasks    *[]model.SubTask    `json:"subtasks,omitempty"`
	Technique   *string             `json:"technique,omitempty"`
}

func applyPatch(t *model.Task, p Patch) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.StartTime != nil {
		t.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		t.EndTime = *p.EndTime
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Subtasks != nil {
		if *p.Subtasks == nil {
			t.Subtasks = []model.SubTask{}
		} else {
			t.Subtasks = *p.Subtasks
		}
	}
	if p.Technique != nil {
		t.Technique = *p.Technique
	}
}

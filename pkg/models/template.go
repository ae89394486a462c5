package model

import "study-planner.com/study-planner/pkg/constants"

// Template is a read-mostly catalog entry describing a reusable system
// skeleton. Catalog ids are stable synthetic strings ("206".."212" for the
// bundled NCERT catalog); importing a template instantiates independent
// copies with freshly generated ids.
type Template struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description,omitempty"`

	Modules []TemplateModule `gorm:"-" json:"modules,omitempty"`
}

type TemplateModule struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	TemplateID  string `gorm:"index;not null" json:"template_id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description,omitempty"`
	Position    int    `json:"position"`

	Tasks []TemplateTask `gorm:"-" json:"tasks,omitempty"`
}

type TemplateTask struct {
	ID               string             `gorm:"primaryKey;size:36" json:"id"`
	TemplateModuleID string             `gorm:"index;not null" json:"template_module_id"`
	Title            string             `gorm:"not null" json:"title"`
	Description      string             `json:"description,omitempty"`
	Date             string             `gorm:"size:10" json:"date,omitempty"`
	Category         constants.Category `gorm:"type:varchar(20)" json:"category"`
	Priority         constants.Priority `gorm:"type:varchar(10)" json:"priority"`
	Subtasks         []SubTask          `gorm:"serializer:json" json:"subtasks"`
	Position         int                `json:"position"`
}

// PlannerTask converts a catalog task into a planner task shape; the caller
// stamps system identity and the store assigns the fresh id.
func (t TemplateTask) PlannerTask() Task {
	return Task{
		Title:       t.Title,
		Description: t.Description,
		Date:        t.Date,
		Category:    t.Category,
		Priority:    t.Priority,
		Subtasks:    append([]SubTask{}, t.Subtasks...),
	}
}

package dto

import (
	"study-planner.com/study-planner/pkg/constants"
	model "study-planner.com/study-planner/pkg/models"
)

type CreateTaskRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Date        string             `json:"date"`
	StartTime   string             `json:"start_time"`
	EndTime     string             `json:"end_time"`
	Category    constants.Category `json:"category"`
	Priority    constants.Priority `json:"priority"`
	SystemID    string             `json:"system_id"`
	SystemName  string             `json:"system_name"`
	Subtasks    []model.SubTask    `json:"subtasks"`
	Technique   string             `json:"technique"`
}

type RescheduleRequest struct {
	Date string `json:"date"`
	Hour *int   `json:"hour"`
}

type CreateSystemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
}

type UpdateSystemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
	Deadline    string `json:"deadline"`
	Status      string `json:"status"`
}

type CreateModuleRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type SetModuleCompletedRequest struct {
	Completed bool `json:"completed"`
}

type GenerateRequest struct {
	Syllabus string `json:"syllabus"`
}

type SetAPIKeyRequest struct {
	APIKey string `json:"api_key"`
}

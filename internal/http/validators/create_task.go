package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "study-planner.com/study-planner/internal/data_models"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if r.Date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date is required")
	}
	if r.Category != "" && !r.Category.IsValid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown task category")
	}
	if r.Priority != "" && !r.Priority.IsValid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown task priority")
	}
	if r.StartTime != "" && r.EndTime != "" && r.EndTime <= r.StartTime {
		return echo.NewHTTPError(http.StatusBadRequest, "end time must be after start time")
	}
	return nil
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "study-planner.com/study-planner/internal/data_models"
	apperrors "study-planner.com/study-planner/internal/errors"
	"study-planner.com/study-planner/internal/http/validators"
	"study-planner.com/study-planner/internal/services"
	"study-planner.com/study-planner/internal/settings"
	"study-planner.com/study-planner/internal/store"
	model "study-planner.com/study-planner/pkg/models"
)

type Handler struct {
	store     *store.TaskStore
	systems   *services.SystemService
	templates *services.TemplateService
	settings  settings.Store
}

func NewHandler(
	taskStore *store.TaskStore,
	systems *services.SystemService,
	templates *services.TemplateService,
	settingsStore settings.Store,
) *Handler {
	return &Handler{
		store:     taskStore,
		systems:   systems,
		templates: templates,
		settings:  settingsStore,
	}
}

func httpError(err error) *echo.HTTPError {
	return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.store.Create(c.Request().Context(), model.Task{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Category:    req.Category,
		Priority:    req.Priority,
		SystemID:    req.SystemID,
		SystemName:  req.SystemName,
		Subtasks:    req.Subtasks,
		Technique:   req.Technique,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	task, err := h.store.Get(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, task)
}

// ListTasks returns the store snapshot, optionally filtered to one exact
// date via ?date=YYYY-MM-DD.
func (h *Handler) ListTasks(c echo.Context) error {
	var tasks []model.Task
	if date := c.QueryParam("date"); date != "" {
		tasks = h.store.GetByDate(date)
	} else {
		tasks = h.store.List()
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var patch store.Patch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	task, err := h.store.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	if err := h.store.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ToggleSubtask(c echo.Context) error {
	task, err := h.store.ToggleSubtask(c.Request().Context(), c.Param("id"), c.Param("subtaskId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, task)
}

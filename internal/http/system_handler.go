package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "study-planner.com/study-planner/internal/data_models"
	"study-planner.com/study-planner/internal/planner"
	model "study-planner.com/study-planner/pkg/models"
)

func (h *Handler) CreateSystem(c echo.Context) error {
	var req dto.CreateSystemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	system, err := h.systems.CreateSystem(c.Request().Context(), req.Title, req.Description, req.Deadline)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, system)
}

func (h *Handler) ListSystems(c echo.Context) error {
	systems, err := h.systems.ListSystems(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":   len(systems),
		"systems": systems,
	})
}

func (h *Handler) GetSystem(c echo.Context) error {
	system, modules, err := h.systems.GetSystem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.SystemDetailResponse{
		System:  system,
		Modules: modules,
	})
}

func (h *Handler) UpdateSystem(c echo.Context) error {
	var req dto.UpdateSystemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	system, err := h.systems.UpdateSystem(c.Request().Context(), model.LearningSystem{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Progress:    req.Progress,
		Deadline:    req.Deadline,
		Status:      req.Status,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, system)
}

func (h *Handler) DeleteSystem(c echo.Context) error {
	if err := h.systems.DeleteSystem(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CreateModule(c echo.Context) error {
	var req dto.CreateModuleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	module, err := h.systems.AddModule(c.Request().Context(), c.Param("id"), req.Title, req.Description)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, module)
}

// ListModules returns a system's modules with their derived completion
// percentages.
func (h *Handler) ListModules(c echo.Context) error {
	modules, err := h.systems.ListModules(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	out := make([]dto.ModuleProgressResponse, 0, len(modules))
	for _, m := range modules {
		out = append(out, dto.ModuleProgressResponse{
			Module:   m,
			Progress: planner.ModuleProgress(m),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":   len(out),
		"modules": out,
	})
}

func (h *Handler) SetModuleCompleted(c echo.Context) error {
	var req dto.SetModuleCompletedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	module, err := h.systems.SetModuleCompleted(c.Request().Context(), c.Param("moduleId"), req.Completed)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, module)
}

// Generate enriches a system from a syllabus via the content collaborator.
// A collaborator failure is not an HTTP failure: the system stays intact and
// the response flags that enrichment was skipped.
func (h *Handler) Generate(c echo.Context) error {
	var req dto.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	modules, skipped, err := h.systems.Generate(c.Request().Context(), c.Param("id"), req.Syllabus)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.GenerateResponse{
		Modules: modules,
		Skipped: skipped,
	})
}

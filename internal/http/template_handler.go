package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "study-planner.com/study-planner/internal/data_models"
	apperrors "study-planner.com/study-planner/internal/errors"
)

func (h *Handler) ListTemplates(c echo.Context) error {
	templates, err := h.templates.ListTemplates(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":     len(templates),
		"templates": templates,
	})
}

func (h *Handler) GetTemplate(c echo.Context) error {
	template, err := h.templates.GetTemplate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, template)
}

func (h *Handler) ImportTemplate(c echo.Context) error {
	system, imported, err := h.templates.Import(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ImportResponse{
		System:   system,
		Imported: imported,
	})
}

func (h *Handler) GetAPIKey(c echo.Context) error {
	key, err := h.settings.APIKey(c.Request().Context())
	if err != nil {
		return httpError(apperrors.Backend("read api key", err))
	}
	return c.JSON(http.StatusOK, dto.APIKeyResponse{APIKey: key})
}

func (h *Handler) SetAPIKey(c echo.Context) error {
	var req dto.SetAPIKeyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.settings.SetAPIKey(c.Request().Context(), req.APIKey); err != nil {
		return httpError(apperrors.Backend("save api key", err))
	}
	return c.NoContent(http.StatusNoContent)
}

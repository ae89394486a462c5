package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	dto "study-planner.com/study-planner/internal/data_models"
	"study-planner.com/study-planner/internal/planner"
)

func (h *Handler) MonthView(c echo.Context) error {
	ref, err := refDate(c)
	if err != nil {
		return err
	}

	cells := planner.MonthCells(ref, h.store.List())
	out := make([]dto.MonthCellResponse, 0, len(cells))
	for _, cell := range cells {
		visible, overflow := cell.Visible()
		out = append(out, dto.MonthCellResponse{
			Cell:         cell,
			VisibleTasks: visible,
			Overflow:     overflow,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"reference": ref.Format(planner.DateLayout),
		"cells":     out,
	})
}

func (h *Handler) WeekView(c echo.Context) error {
	ref, err := refDate(c)
	if err != nil {
		return err
	}

	cells := planner.WeekCells(ref, h.store.List())
	return c.JSON(http.StatusOK, echo.Map{
		"reference": ref.Format(planner.DateLayout),
		"cells":     cells,
	})
}

func (h *Handler) DayView(c echo.Context) error {
	ref, err := refDate(c)
	if err != nil {
		return err
	}

	date := ref.Format(planner.DateLayout)
	slots := planner.DaySlots(date, h.store.List())
	return c.JSON(http.StatusOK, echo.Map{
		"reference": date,
		"slots":     slots,
	})
}

// Reschedule applies the drop semantics of a drag gesture: the target date
// always, plus an hour-long time window when an hour slot is the target and
// cleared times when the all-day region is.
func (h *Handler) Reschedule(c echo.Context) error {
	var req dto.RescheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date is required")
	}
	if req.Hour != nil && (*req.Hour < 0 || *req.Hour > 23) {
		return echo.NewHTTPError(http.StatusBadRequest, "hour must be between 0 and 23")
	}

	drag := planner.NewDragController(h.store)
	if err := drag.Begin(c.Param("id")); err != nil {
		return httpError(err)
	}
	drag.Enter(planner.DropTarget{Date: req.Date, Hour: req.Hour})

	task, moved, err := drag.Drop(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	if !moved {
		return echo.NewHTTPError(http.StatusBadRequest, "no drop target")
	}
	return c.JSON(http.StatusOK, task)
}

func refDate(c echo.Context) (time.Time, error) {
	raw := c.QueryParam("date")
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	ref, err := time.Parse(planner.DateLayout, raw)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	return ref, nil
}

package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "study-planner.com/study-planner/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks", h.ListTasks)
	e.GET("/tasks/:id", h.GetTask)
	e.PATCH("/tasks/:id", h.UpdateTask)
	e.DELETE("/tasks/:id", h.DeleteTask)
	e.POST("/tasks/:id/reschedule", h.Reschedule)
	e.POST("/tasks/:id/subtasks/:subtaskId/toggle", h.ToggleSubtask)

	e.GET("/planner/month", h.MonthView)
	e.GET("/planner/week", h.WeekView)
	e.GET("/planner/day", h.DayView)

	e.POST("/systems", h.CreateSystem)
	e.GET("/systems", h.ListSystems)
	e.GET("/systems/:id", h.GetSystem)
	e.PUT("/systems/:id", h.UpdateSystem)
	e.DELETE("/systems/:id", h.DeleteSystem)
	e.POST("/systems/:id/modules", h.CreateModule)
	e.GET("/systems/:id/modules", h.ListModules)
	e.PATCH("/modules/:moduleId/completed", h.SetModuleCompleted)
	e.POST("/systems/:id/generate", h.Generate)

	e.GET("/templates", h.ListTemplates)
	e.GET("/templates/:id", h.GetTemplate)
	e.POST("/templates/:id/import", h.ImportTemplate)

	e.GET("/settings/ai-key", h.GetAPIKey)
	e.PUT("/settings/ai-key", h.SetAPIKey)
}

package planner

import (
	"math"

	model "study-planner.com/study-planner/pkg/models"
)

// Fixed per-task estimate used for time-spent and time-remaining displays.
const (
	HoursPerTask = 2
	HoursPerWeek = 40
)

// ModuleProgress is the completion percentage of a module's tasks. A module
// with no tasks is 0%, never NaN.
func ModuleProgress(m model.SystemModule) float64 {
	if len(m.Tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range m.Tasks {
		if t.Completed {
			done++
		}
	}
	return float64(done) / float64(len(m.Tasks)) * 100
}

// SystemSummary folds the flattened task list of all modules into the
// derived figures shown on system cards. Recomputed on every load; not
// persisted.
func SystemSummary(modules []model.SystemModule) model.SystemSummary {
	var s model.SystemSummary
	for _, m := range modules {
		if m.IsCompleted {
			s.CompletedModules++
		}
		for _, t := range m.Tasks {
			s.TotalTasks++
			if t.Completed {
				s.CompletedTasks++
			}
		}
	}
	s.TimeSpent = s.CompletedTasks * HoursPerTask
	s.EstimatedTime = s.TotalTasks * HoursPerTask
	s.TotalWeeks = int(math.Ceil(float64(s.EstimatedTime) / HoursPerWeek))
	return s
}

// Package planner holds the pure calendar engine: date-range projection,
// drag-reschedule gesture handling and progress aggregation. Nothing in this
// package touches storage; it maps task snapshots into view shapes.
package planner

import (
	"strconv"
	"strings"
	"time"

	model "study-planner.com/study-planner/pkg/models"
)

const DateLayout = "2006-01-02"

// MonthGridSize is the fixed 6-row x 7-column month grid.
const MonthGridSize = 42

// MaxVisibleTasks caps how many tasks a month cell surfaces directly; the
// rest are reported as an overflow count. Display policy only, the full set
// stays on the cell.
const MaxVisibleTasks = 3

var DayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Cell is one calendar cell: a date plus the tasks whose date field matches
// it exactly. DifferentMonth marks padding cells that belong to the previous
// or next month; it has no effect beyond styling.
type Cell struct {
	Date           string       `json:"date"`
	Day            int          `json:"day"`
	Weekday        string       `json:"weekday"`
	DifferentMonth bool         `json:"different_month"`
	Tasks          []model.Task `json:"tasks"`
}

// Visible returns at most MaxVisibleTasks tasks plus the overflow count.
func (c Cell) Visible() ([]model.Task, int) {
	if len(c.Tasks) <= MaxVisibleTasks {
		return c.Tasks, 0
	}
	return c.Tasks[:MaxVisibleTasks], len(c.Tasks) - MaxVisibleTasks
}

// MonthCells projects tasks onto the month grid containing ref. The grid is
// always exactly MonthGridSize cells: the front is padded with trailing days
// of the previous month (count = weekday of the 1st, Sunday = 0) and the
// back with leading days of the next month.
func MonthCells(ref time.Time, tasks []model.Task) []Cell {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	byDate := bucketByDate(tasks)

	cells := make([]Cell, 0, MonthGridSize)
	for i := 0; i < MonthGridSize; i++ {
		day := start.AddDate(0, 0, i)
		date := day.Format(DateLayout)
		cells = append(cells, Cell{
			Date:           date,
			Day:            day.Day(),
			Weekday:        DayNames[day.Weekday()],
			DifferentMonth: day.Month() != first.Month(),
			Tasks:          tasksOn(byDate, date),
		})
	}
	return cells
}

// WeekCells projects tasks onto the Sunday..Saturday week containing ref.
func WeekCells(ref time.Time, tasks []model.Task) []Cell {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	start := day.AddDate(0, 0, -int(day.Weekday()))

	byDate := bucketByDate(tasks)

	cells := make([]Cell, 0, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		date := d.Format(DateLayout)
		cells = append(cells, Cell{
			Date:    date,
			Day:     d.Day(),
			Weekday: DayNames[d.Weekday()],
			Tasks:   tasksOn(byDate, date),
		})
	}
	return cells
}

// NoTimeSlot is the sentinel hour for tasks without a start time.
const NoTimeSlot = -1

// Slot is one hourly bucket of the day view. Hour NoTimeSlot collects the
// tasks that carry no start time ("all day" tasks).
type Slot struct {
	Hour  int          `json:"hour"`
	Tasks []model.Task `json:"tasks"`
}

// DaySlots projects the tasks dated exactly date onto the sentinel slot plus
// 24 hourly slots. A task lands in the slot matching the integer hour of its
// start time; a missing or unparseable start time lands it in the sentinel.
func DaySlots(date string, tasks []model.Task) []Slot {
	slots := make([]Slot, 0, 25)
	slots = append(slots, Slot{Hour: NoTimeSlot, Tasks: []model.Task{}})
	for h := 0; h < 24; h++ {
		slots = append(slots, Slot{Hour: h, Tasks: []model.Task{}})
	}

	for _, t := range tasks {
		if t.Date != date {
			continue
		}
		h, ok := slotHour(t)
		if !ok {
			slots[0].Tasks = append(slots[0].Tasks, t)
			continue
		}
		slots[h+1].Tasks = append(slots[h+1].Tasks, t)
	}
	return slots
}

func slotHour(t model.Task) (int, bool) {
	if !t.HasTime() {
		return 0, false
	}
	hh, _, found := strings.Cut(t.StartTime, ":")
	if !found {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}

// tasksOn never returns nil so empty cells marshal as [].
func tasksOn(byDate map[string][]model.Task, date string) []model.Task {
	if ts := byDate[date]; ts != nil {
		return ts
	}
	return []model.Task{}
}

// bucketByDate groups tasks by exact date-string match. Tasks whose dates do
// not line up with any projected cell simply never appear; malformed dates
// are not validated here.
func bucketByDate(tasks []model.Task) map[string][]model.Task {
	byDate := make(map[string][]model.Task)
	for _, t := range tasks {
		byDate[t.Date] = append(byDate[t.Date], t)
	}
	return byDate
}

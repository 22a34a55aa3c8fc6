package report

import (
	"time"

	"github.com/DragosAvidal/ADworktracker/internal/model"
)

// RangeKind selects how a reference date maps to a reporting interval.
type RangeKind string

const (
	// RangeWeek is the calendar week containing the reference date,
	// Monday through Sunday.
	RangeWeek RangeKind = "week"
	// RangeMonth is the calendar month containing the reference date.
	RangeMonth RangeKind = "month"
)

// Resolve maps a range kind and reference date to the inclusive [start, end]
// interval containing it.
func Resolve(kind RangeKind, ref model.Date) (model.Date, model.Date) {
	switch kind {
	case RangeMonth:
		year, month, _ := ref.Time().Date()
		start := model.NewDate(year, month, 1)
		var end model.Date
		if month == time.December {
			end = model.NewDate(year+1, time.January, 1).AddDays(-1)
		} else {
			end = model.NewDate(year, month+1, 1).AddDays(-1)
		}
		return start, end
	default:
		// Monday is day zero of the week.
		offset := (int(ref.Time().Weekday()) + 6) % 7
		start := ref.AddDays(-offset)
		return start, start.AddDays(6)
	}
}

// WeeklyWindow returns the rolling seven-day interval beginning at start.
// Unlike Resolve with RangeWeek it is never snapped to calendar week
// boundaries; weekly reports use this window.
func WeeklyWindow(start model.Date) (model.Date, model.Date) {
	return start, start.AddDays(6)
}

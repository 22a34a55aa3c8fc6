package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/DragosAvidal/ADworktracker/internal/model"
)

func TestResolveWeekAnchorsToMonday(t *testing.T) {
	// 2024-01-10 is a Wednesday.
	start, end := Resolve(RangeWeek, model.NewDate(2024, time.January, 10))

	require.Equal(t, "2024-01-08", start.String())
	require.Equal(t, "2024-01-14", end.String())
}

func TestResolveWeekOnMonday(t *testing.T) {
	start, end := Resolve(RangeWeek, model.NewDate(2024, time.January, 8))

	require.Equal(t, "2024-01-08", start.String())
	require.Equal(t, "2024-01-14", end.String())
}

func TestResolveWeekOnSunday(t *testing.T) {
	start, end := Resolve(RangeWeek, model.NewDate(2024, time.January, 14))

	require.Equal(t, "2024-01-08", start.String())
	require.Equal(t, "2024-01-14", end.String())
}

func TestResolveMonth(t *testing.T) {
	start, end := Resolve(RangeMonth, model.NewDate(2024, time.March, 17))

	require.Equal(t, "2024-03-01", start.String())
	require.Equal(t, "2024-03-31", end.String())
}

func TestResolveMonthDecemberRollsIntoNextYear(t *testing.T) {
	start, end := Resolve(RangeMonth, model.NewDate(2024, time.December, 15))

	require.Equal(t, "2024-12-01", start.String())
	require.Equal(t, "2024-12-31", end.String())
}

func TestResolveMonthFebruaryLeapYear(t *testing.T) {
	start, end := Resolve(RangeMonth, model.NewDate(2024, time.February, 29))

	require.Equal(t, "2024-02-01", start.String())
	require.Equal(t, "2024-02-29", end.String())
}

func TestWeeklyWindowIsSevenDaysFromStart(t *testing.T) {
	start, end := WeeklyWindow(model.NewDate(2024, time.January, 10))

	require.Equal(t, "2024-01-10", start.String())
	require.Equal(t, "2024-01-16", end.String())
}

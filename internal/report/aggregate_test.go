package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/DragosAvidal/ADworktracker/internal/model"
)

func activity(day int, client, project string, hours float64) model.Activity {
	return model.Activity{
		Date:    model.NewDate(2024, time.January, day),
		Client:  client,
		Project: project,
		Hours:   hours,
	}
}

func TestAggregateTotals(t *testing.T) {
	p := Aggregate([]model.Activity{
		activity(8, "Acme", "Website", 4),
		activity(8, "Acme", "Maintenance", 2),
		activity(9, "Globex", "Website", 3.5),
	})

	require.Equal(t, 9.5, p.TotalHours)
	require.Equal(t, 2, p.WorkingDays)
	require.Equal(t, 2, p.UniqueProjects)
	require.Equal(t, map[string]float64{"Acme": 6, "Globex": 3.5}, p.Clients)
	require.Equal(t, map[string]float64{"Website": 7.5, "Maintenance": 2}, p.Projects)
	require.Len(t, p.Activities, 3)
}

func TestAggregateOrderIndependent(t *testing.T) {
	records := []model.Activity{
		activity(8, "Acme", "Website", 4),
		activity(9, "Globex", "Maintenance", 2),
		activity(10, "Acme", "Website", 1),
	}
	reversed := []model.Activity{records[2], records[1], records[0]}

	a := Aggregate(records)
	b := Aggregate(reversed)

	require.Equal(t, a.TotalHours, b.TotalHours)
	require.Equal(t, a.WorkingDays, b.WorkingDays)
	require.Equal(t, a.UniqueProjects, b.UniqueProjects)
	require.Equal(t, a.Clients, b.Clients)
	require.Equal(t, a.Projects, b.Projects)
}

func TestAggregateSkipsEmptyClientAndProject(t *testing.T) {
	p := Aggregate([]model.Activity{
		activity(8, "", "", 5),
		activity(9, "Acme", "Website", 2),
	})

	require.Equal(t, 7.0, p.TotalHours)
	require.Equal(t, map[string]float64{"Acme": 2}, p.Clients)
	require.Equal(t, map[string]float64{"Website": 2}, p.Projects)
	require.Equal(t, 1, p.UniqueProjects)
}

func TestAggregateEmptyInput(t *testing.T) {
	p := Aggregate(nil)

	require.Equal(t, 0.0, p.TotalHours)
	require.Equal(t, 0, p.WorkingDays)
	require.Equal(t, 0, p.UniqueProjects)
	require.NotNil(t, p.Activities)
	require.NotNil(t, p.Clients)
	require.NotNil(t, p.Projects)
}

func TestFilterRangeInclusiveBounds(t *testing.T) {
	records := []model.Activity{
		activity(7, "Acme", "Website", 1),
		activity(8, "Acme", "Website", 2),
		activity(14, "Acme", "Website", 3),
		activity(15, "Acme", "Website", 4),
	}

	matched := FilterRange(records,
		model.NewDate(2024, time.January, 8),
		model.NewDate(2024, time.January, 14))

	require.Len(t, matched, 2)
	require.Equal(t, 2.0, matched[0].Hours)
	require.Equal(t, 3.0, matched[1].Hours)
}

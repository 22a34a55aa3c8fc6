package report

import (
	"github.com/DragosAvidal/ADworktracker/internal/model"
)

// Payload is the result of a report computation. It is a pure function of the
// matched record set, recomputed on every request; identical inputs yield
// identical payloads.
type Payload struct {
	TotalHours     float64            `json:"total_hours"`
	WorkingDays    int                `json:"working_days"`
	UniqueProjects int                `json:"unique_projects"`
	Activities     []model.Activity   `json:"activities"`
	Clients        map[string]float64 `json:"clients"`
	Projects       map[string]float64 `json:"projects"`
}

// Aggregate reduces a record set to hour totals and group-by mappings.
// Records with an empty client are excluded from the clients mapping, records
// with an empty project from the projects mapping and the distinct-project
// count. The result does not depend on the iteration order of activities.
func Aggregate(activities []model.Activity) Payload {
	p := Payload{
		Activities: activities,
		Clients:    make(map[string]float64),
		Projects:   make(map[string]float64),
	}
	if p.Activities == nil {
		p.Activities = []model.Activity{}
	}

	days := make(map[string]struct{})
	for _, a := range activities {
		p.TotalHours += a.Hours
		days[a.Date.String()] = struct{}{}
		if a.Client != "" {
			p.Clients[a.Client] += a.Hours
		}
		if a.Project != "" {
			p.Projects[a.Project] += a.Hours
		}
	}

	p.WorkingDays = len(days)
	p.UniqueProjects = len(p.Projects)
	return p
}

// FilterRange returns the activities whose date falls inside the inclusive
// [start, end] interval, preserving input order.
func FilterRange(activities []model.Activity, start, end model.Date) []model.Activity {
	matched := []model.Activity{}
	for _, a := range activities {
		if a.Date.Before(start) || a.Date.After(end) {
			continue
		}
		matched = append(matched, a)
	}
	return matched
}

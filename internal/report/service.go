package report

import (
	"context"
	"errors"
	"time"

	"github.com/DragosAvidal/ADworktracker/internal/model"
)

var (
	// ErrMissingClient is returned when a client report has no client filter.
	ErrMissingClient = errors.New("client is required")
	// ErrMissingProject is returned when a project report has no project filter.
	ErrMissingProject = errors.New("project is required")
)

// Store is the persistence capability the report service consumes. All list
// methods are scoped to a single user and return matched records ordered by
// date descending.
type Store interface {
	ListByDateRange(ctx context.Context, userID int, start, end model.Date) ([]model.Activity, error)
	ListByClient(ctx context.Context, userID int, client string) ([]model.Activity, error)
	ListByProject(ctx context.Context, userID int, project string) ([]model.Activity, error)
}

// Service runs the four report pipelines: query, aggregate, shape payload.
// It never mutates the store.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Weekly reports on the rolling seven-day window beginning at startDate.
func (s *Service) Weekly(ctx context.Context, userID int, startDate string) (*Payload, error) {
	ref, err := model.ParseDate(startDate)
	if err != nil {
		return nil, err
	}

	start, end := WeeklyWindow(ref)
	activities, err := s.store.ListByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	p := Aggregate(activities)
	return &p, nil
}

// Monthly reports on the calendar month of the given reference, accepted as
// either "YYYY-MM" or a full "YYYY-MM-DD" date.
func (s *Service) Monthly(ctx context.Context, userID int, month string) (*Payload, error) {
	ref, err := parseMonth(month)
	if err != nil {
		return nil, err
	}

	start, end := Resolve(RangeMonth, ref)
	activities, err := s.store.ListByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	p := Aggregate(activities)
	return &p, nil
}

// Client reports on every record logged against the given client, with no
// date filtering.
func (s *Service) Client(ctx context.Context, userID int, client string) (*Payload, error) {
	if client == "" {
		return nil, ErrMissingClient
	}

	activities, err := s.store.ListByClient(ctx, userID, client)
	if err != nil {
		return nil, err
	}

	p := Aggregate(activities)
	echoClient(&p, client)
	return &p, nil
}

// Project is symmetric to Client, keyed on the project name.
func (s *Service) Project(ctx context.Context, userID int, project string) (*Payload, error) {
	if project == "" {
		return nil, ErrMissingProject
	}

	activities, err := s.store.ListByProject(ctx, userID, project)
	if err != nil {
		return nil, err
	}

	p := Aggregate(activities)
	echoProject(&p, project)
	return &p, nil
}

// echoClient pins the clients mapping to the requested client so the filter
// dimension is echoed back even when nothing matched.
func echoClient(p *Payload, client string) {
	p.Clients = map[string]float64{client: p.TotalHours}
}

// echoProject pins the projects mapping to the requested project. The caller
// fixed the project dimension, so the distinct-project count is always one.
func echoProject(p *Payload, project string) {
	p.Projects = map[string]float64{project: p.TotalHours}
	p.UniqueProjects = 1
}

func parseMonth(s string) (model.Date, error) {
	if t, err := time.Parse("2006-01", s); err == nil {
		return model.DateOf(t), nil
	}
	return model.ParseDate(s)
}

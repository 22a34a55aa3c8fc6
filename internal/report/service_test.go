package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DragosAvidal/ADworktracker/internal/model"
)

type stubStore struct {
	activities []model.Activity

	gotStart model.Date
	gotEnd   model.Date
	calls    int
}

func (s *stubStore) ListByDateRange(ctx context.Context, userID int, start, end model.Date) ([]model.Activity, error) {
	s.calls++
	s.gotStart, s.gotEnd = start, end
	return FilterRange(s.activities, start, end), nil
}

func (s *stubStore) ListByClient(ctx context.Context, userID int, client string) ([]model.Activity, error) {
	s.calls++
	matched := []model.Activity{}
	for _, a := range s.activities {
		if a.Client == client {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (s *stubStore) ListByProject(ctx context.Context, userID int, project string) ([]model.Activity, error) {
	s.calls++
	matched := []model.Activity{}
	for _, a := range s.activities {
		if a.Project == project {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func TestWeeklyUsesRollingWindow(t *testing.T) {
	store := &stubStore{activities: []model.Activity{
		activity(10, "Acme", "Website", 4),
		activity(16, "Acme", "Website", 2),
		activity(17, "Acme", "Website", 8),
	}}
	svc := NewService(store)

	p, err := svc.Weekly(context.Background(), 1, "2024-01-10")
	require.NoError(t, err)

	require.Equal(t, "2024-01-10", store.gotStart.String())
	require.Equal(t, "2024-01-16", store.gotEnd.String())
	require.Equal(t, 6.0, p.TotalHours)
}

func TestWeeklyInvalidDate(t *testing.T) {
	svc := NewService(&stubStore{})

	_, err := svc.Weekly(context.Background(), 1, "10/01/2024")
	require.ErrorIs(t, err, model.ErrInvalidDate)
}

func TestMonthlyAcceptsShortAndFullForms(t *testing.T) {
	store := &stubStore{activities: []model.Activity{
		activity(5, "Acme", "Website", 3),
		activity(31, "Acme", "Website", 2),
	}}
	svc := NewService(store)

	for _, month := range []string{"2024-01", "2024-01-15"} {
		p, err := svc.Monthly(context.Background(), 1, month)
		require.NoError(t, err)
		require.Equal(t, "2024-01-01", store.gotStart.String())
		require.Equal(t, "2024-01-31", store.gotEnd.String())
		require.Equal(t, 5.0, p.TotalHours)
	}
}

func TestClientEchoesFilterOnZeroMatches(t *testing.T) {
	svc := NewService(&stubStore{})

	p, err := svc.Client(context.Background(), 1, "Acme")
	require.NoError(t, err)

	require.Equal(t, 0.0, p.TotalHours)
	require.Equal(t, map[string]float64{"Acme": 0}, p.Clients)
	require.NotNil(t, p.Activities)
}

func TestClientEchoCarriesTotalHours(t *testing.T) {
	store := &stubStore{activities: []model.Activity{
		activity(8, "Acme", "Website", 4),
		activity(9, "Acme", "Maintenance", 2),
		activity(9, "Globex", "Website", 9),
	}}
	svc := NewService(store)

	p, err := svc.Client(context.Background(), 1, "Acme")
	require.NoError(t, err)

	require.Equal(t, 6.0, p.TotalHours)
	require.Equal(t, map[string]float64{"Acme": 6}, p.Clients)
	require.Equal(t, map[string]float64{"Website": 4, "Maintenance": 2}, p.Projects)
}

func TestClientRequiresFilter(t *testing.T) {
	svc := NewService(&stubStore{})

	_, err := svc.Client(context.Background(), 1, "")
	require.ErrorIs(t, err, ErrMissingClient)
}

func TestProjectEchoForcesSingleUniqueProject(t *testing.T) {
	svc := NewService(&stubStore{})

	p, err := svc.Project(context.Background(), 1, "Website")
	require.NoError(t, err)

	require.Equal(t, 1, p.UniqueProjects)
	require.Equal(t, map[string]float64{"Website": 0}, p.Projects)
}

func TestProjectRequiresFilter(t *testing.T) {
	svc := NewService(&stubStore{})

	_, err := svc.Project(context.Background(), 1, "")
	require.ErrorIs(t, err, ErrMissingProject)
}

func TestReportsAreIdempotent(t *testing.T) {
	store := &stubStore{activities: []model.Activity{
		activity(8, "Acme", "Website", 4),
		activity(12, "Globex", "Maintenance", 2),
	}}
	svc := NewService(store)

	first, err := svc.Weekly(context.Background(), 1, "2024-01-08")
	require.NoError(t, err)
	second, err := svc.Weekly(context.Background(), 1, "2024-01-08")
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 2, store.calls)
}

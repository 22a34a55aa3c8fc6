package service

import (
	"context"
	"math"
	"time"

	"github.com/DragosAvidal/ADworktracker/internal/model"
	"github.com/DragosAvidal/ADworktracker/internal/report"
	"github.com/DragosAvidal/ADworktracker/internal/repository"
)

const recentActivityLimit = 10

// DashboardSummary is the landing-page overview of the user's recent work.
type DashboardSummary struct {
	Username         string           `json:"username"`
	CurrentWeekHours float64          `json:"current_week_hours"`
	LastWeekHours    float64          `json:"last_week_hours"`
	PercentageChange float64          `json:"percentage_change"`
	TrendDirection   string           `json:"trend_direction"`
	WorkingDays      int              `json:"working_days"`
	ActiveProjects   int              `json:"active_projects"`
	ActiveClients    int              `json:"active_clients"`
	RecentActivities []model.Activity `json:"recent_activities"`
}

type DashboardService struct {
	userRepo     *repository.UserRepository
	activityRepo *repository.ActivityRepository
}

func NewDashboardService(userRepo *repository.UserRepository, activityRepo *repository.ActivityRepository) *DashboardService {
	return &DashboardService{
		userRepo:     userRepo,
		activityRepo: activityRepo,
	}
}

// Summary builds the dashboard for the given user as of now.
func (s *DashboardService) Summary(ctx context.Context, userID int, now time.Time) (*DashboardSummary, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := model.DateOf(now)
	startOfWeek, _ := report.Resolve(report.RangeWeek, today)
	startOfMonth, _ := report.Resolve(report.RangeMonth, today)

	currentWeek, err := s.activityRepo.ListByDateRange(ctx, userID, startOfWeek, today)
	if err != nil {
		return nil, err
	}
	lastWeek, err := s.activityRepo.ListByDateRange(ctx, userID, startOfWeek.AddDays(-7), startOfWeek.AddDays(-1))
	if err != nil {
		return nil, err
	}

	currentAgg := report.Aggregate(currentWeek)
	lastAgg := report.Aggregate(lastWeek)

	activeProjects, err := s.activityRepo.CountDistinctProjectsSince(ctx, userID, startOfMonth)
	if err != nil {
		return nil, err
	}
	activeClients, err := s.activityRepo.CountDistinctClientsSince(ctx, userID, startOfMonth)
	if err != nil {
		return nil, err
	}

	recent, err := s.activityRepo.ListRecent(ctx, userID, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	change, direction := WeekTrend(currentAgg.TotalHours, lastAgg.TotalHours)

	return &DashboardSummary{
		Username:         u.Username,
		CurrentWeekHours: currentAgg.TotalHours,
		LastWeekHours:    lastAgg.TotalHours,
		PercentageChange: change,
		TrendDirection:   direction,
		WorkingDays:      currentAgg.WorkingDays,
		ActiveProjects:   activeProjects,
		ActiveClients:    activeClients,
		RecentActivities: recent,
	}, nil
}

// WeekTrend compares this week's hours against last week's and returns the
// absolute percentage change rounded to one decimal, plus the direction
// ("up" or "down"). A zero previous week counts as a 100% rise when any
// hours were logged.
func WeekTrend(currentHours, lastHours float64) (float64, string) {
	var change float64
	switch {
	case lastHours > 0:
		change = (currentHours - lastHours) / lastHours * 100
	case currentHours > 0:
		change = 100
	}

	direction := "up"
	if change < 0 {
		direction = "down"
	}
	return math.Round(math.Abs(change)*10) / 10, direction
}

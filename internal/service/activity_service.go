package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/DragosAvidal/ADworktracker/internal/model"
	"github.com/DragosAvidal/ADworktracker/internal/mq"
	"github.com/DragosAvidal/ADworktracker/internal/repository"
)

type ActivityService struct {
	repo     *repository.ActivityRepository
	producer Publisher
	logger   *zap.Logger
}

func NewActivityService(repo *repository.ActivityRepository, producer Publisher, logger *zap.Logger) *ActivityService {
	return &ActivityService{
		repo:     repo,
		producer: producer,
		logger:   logger,
	}
}

// CreateActivityInput carries the payload from the API layer.
type CreateActivityInput struct {
	Date         model.Date
	Client       string
	Project      string
	ActivityType string
	Achievements string
	Challenges   string
	Hours        float64
}

// Create stores a new activity for the user and publishes an
// `activity.logged` event for the audit worker.
func (s *ActivityService) Create(ctx context.Context, userID int, input CreateActivityInput) (*model.Activity, error) {
	if input.Date.IsZero() {
		return nil, model.ErrInvalidDate
	}
	if input.Hours < 0 {
		return nil, ErrMissingField
	}

	a := &model.Activity{
		UserID:       userID,
		Date:         input.Date,
		Client:       input.Client,
		Project:      input.Project,
		ActivityType: input.ActivityType,
		Achievements: input.Achievements,
		Challenges:   input.Challenges,
		Hours:        input.Hours,
	}

	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, err
	}

	// audit trail is best effort; the record is already stored
	payload := mq.ActivityLoggedPayload{
		ActivityID: a.ID,
		UserID:     a.UserID,
		Date:       a.Date.String(),
		Client:     a.Client,
		Project:    a.Project,
		Hours:      a.Hours,
		LoggedAt:   time.Now(),
	}
	if err := s.producer.Publish(mq.RoutingKeyActivityLogged, payload); err != nil {
		s.logger.Warn("Failed to publish activity.logged",
			zap.Int("activity_id", a.ID),
			zap.Error(err),
		)
	}

	return a, nil
}

// Get returns one activity, only if the user owns it.
func (s *ActivityService) Get(ctx context.Context, userID, activityID int) (*model.Activity, error) {
	a, err := s.repo.FindByID(ctx, userID, activityID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// ListRecent returns the user's latest activities, newest first.
func (s *ActivityService) ListRecent(ctx context.Context, userID, limit int) ([]model.Activity, error) {
	return s.repo.ListRecent(ctx, userID, limit)
}

// Delete removes one activity, only if the user owns it.
func (s *ActivityService) Delete(ctx context.Context, userID, activityID int) error {
	err := s.repo.Delete(ctx, userID, activityID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/DragosAvidal/ADworktracker/internal/model"
	"github.com/DragosAvidal/ADworktracker/internal/mq"
	"github.com/DragosAvidal/ADworktracker/internal/repository"
)

type LeaveService struct {
	repo     *repository.LeaveRepository
	producer Publisher
	logger   *zap.Logger
}

func NewLeaveService(repo *repository.LeaveRepository, producer Publisher, logger *zap.Logger) *LeaveService {
	return &LeaveService{
		repo:     repo,
		producer: producer,
		logger:   logger,
	}
}

// CreateLeaveInput carries the payload from the API layer. Description is
// optional; everything else is required.
type CreateLeaveInput struct {
	StartDate   model.Date
	EndDate     model.Date
	LeaveType   string
	Description string
}

// Create stores a new pending leave request covering the inclusive
// [StartDate, EndDate] range.
func (s *LeaveService) Create(ctx context.Context, userID int, input CreateLeaveInput) (*model.Leave, error) {
	if input.StartDate.IsZero() || input.EndDate.IsZero() || input.LeaveType == "" {
		return nil, ErrMissingField
	}
	if input.StartDate.After(input.EndDate) {
		return nil, fmt.Errorf("%w: start date is after end date", model.ErrInvalidDate)
	}

	l := &model.Leave{
		UserID:      userID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		LeaveType:   input.LeaveType,
		Description: input.Description,
		Status:      model.StatusPending,
	}

	if err := s.repo.Insert(ctx, l); err != nil {
		return nil, err
	}

	payload := mq.LeaveRequestedPayload{
		LeaveID:     l.ID,
		UserID:      l.UserID,
		StartDate:   l.StartDate.String(),
		EndDate:     l.EndDate.String(),
		LeaveType:   l.LeaveType,
		RequestedAt: time.Now(),
	}
	if err := s.producer.Publish(mq.RoutingKeyLeaveRequested, payload); err != nil {
		s.logger.Warn("Failed to publish leave.requested",
			zap.Int("leave_id", l.ID),
			zap.Error(err),
		)
	}

	return l, nil
}

// List returns the user's leave requests, latest start date first.
func (s *LeaveService) List(ctx context.Context, userID int) ([]model.Leave, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Delete removes one leave request, only if the user owns it.
func (s *LeaveService) Delete(ctx context.Context, userID, leaveID int) error {
	err := s.repo.Delete(ctx, userID, leaveID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

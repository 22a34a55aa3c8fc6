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

type ExpenseService struct {
	repo     *repository.ExpenseRepository
	producer Publisher
	logger   *zap.Logger
}

func NewExpenseService(repo *repository.ExpenseRepository, producer Publisher, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{
		repo:     repo,
		producer: producer,
		logger:   logger,
	}
}

// CreateExpenseInput carries the payload from the API layer. Every field is
// required.
type CreateExpenseInput struct {
	Date        model.Date
	Project     string
	Amount      float64
	Description string
	Category    string
}

// Create stores a new pending expense.
func (s *ExpenseService) Create(ctx context.Context, userID int, input CreateExpenseInput) (*model.Expense, error) {
	if input.Date.IsZero() || input.Project == "" || input.Description == "" || input.Category == "" {
		return nil, ErrMissingField
	}

	e := &model.Expense{
		UserID:      userID,
		Date:        input.Date,
		Project:     input.Project,
		Amount:      input.Amount,
		Description: input.Description,
		Category:    input.Category,
		Status:      model.StatusPending,
	}

	if err := s.repo.Insert(ctx, e); err != nil {
		return nil, err
	}

	payload := mq.ExpenseLoggedPayload{
		ExpenseID: e.ID,
		UserID:    e.UserID,
		Date:      e.Date.String(),
		Project:   e.Project,
		Amount:    e.Amount,
		Category:  e.Category,
		LoggedAt:  time.Now(),
	}
	if err := s.producer.Publish(mq.RoutingKeyExpenseLogged, payload); err != nil {
		s.logger.Warn("Failed to publish expense.logged",
			zap.Int("expense_id", e.ID),
			zap.Error(err),
		)
	}

	return e, nil
}

// List returns the user's expenses, newest first.
func (s *ExpenseService) List(ctx context.Context, userID int) ([]model.Expense, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Delete removes one expense, only if the user owns it.
func (s *ExpenseService) Delete(ctx context.Context, userID, expenseID int) error {
	err := s.repo.Delete(ctx, userID, expenseID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

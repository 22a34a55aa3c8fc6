package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/DragosAvidal/ADworktracker/internal/model"
)

type ExpenseRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewExpenseRepository(db *pgxpool.Pool, logger *zap.Logger) *ExpenseRepository {
	return &ExpenseRepository{db: db, logger: logger}
}

// Insert stores a new expense and fills in its generated ID.
func (r *ExpenseRepository) Insert(ctx context.Context, e *model.Expense) error {
	query := `
        INSERT INTO expenses (user_id, date, project, amount, description, category, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		e.UserID,
		e.Date,
		e.Project,
		e.Amount,
		e.Description,
		e.Category,
		e.Status,
	).Scan(&e.ID)
	if err != nil {
		r.logger.Error("Failed to insert expense",
			zap.Error(err),
			zap.Int("user_id", e.UserID),
		)
		return err
	}
	r.logger.Info("Expense inserted",
		zap.Int("expense_id", e.ID),
		zap.Int("user_id", e.UserID),
	)
	return nil
}

// ListByUser returns the user's expenses, newest first.
func (r *ExpenseRepository) ListByUser(ctx context.Context, userID int) ([]model.Expense, error) {
	query := `
        SELECT id, user_id, date, project, amount, description, category, status
        FROM expenses
        WHERE user_id = $1
        ORDER BY date DESC, id DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to query expenses", zap.Error(err), zap.Int("user_id", userID))
		return nil, err
	}
	defer rows.Close()

	expenses := []model.Expense{}
	for rows.Next() {
		var e model.Expense
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Date, &e.Project,
			&e.Amount, &e.Description, &e.Category, &e.Status,
		); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// Delete removes one expense, only if it belongs to the given user.
// Returns pgx.ErrNoRows when nothing matched.
func (r *ExpenseRepository) Delete(ctx context.Context, userID, expenseID int) error {
	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, expenseID, userID)
	if err != nil {
		r.logger.Error("Failed to delete expense",
			zap.Error(err),
			zap.Int("expense_id", expenseID),
			zap.Int("user_id", userID),
		)
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

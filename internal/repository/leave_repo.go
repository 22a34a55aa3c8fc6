package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/DragosAvidal/ADworktracker/internal/model"
)

type LeaveRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewLeaveRepository(db *pgxpool.Pool, logger *zap.Logger) *LeaveRepository {
	return &LeaveRepository{db: db, logger: logger}
}

// Insert stores a new leave request and fills in its generated ID.
func (r *LeaveRepository) Insert(ctx context.Context, l *model.Leave) error {
	query := `
        INSERT INTO leaves (user_id, start_date, end_date, leave_type, description, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		l.UserID,
		l.StartDate,
		l.EndDate,
		l.LeaveType,
		l.Description,
		l.Status,
	).Scan(&l.ID)
	if err != nil {
		r.logger.Error("Failed to insert leave",
			zap.Error(err),
			zap.Int("user_id", l.UserID),
		)
		return err
	}
	r.logger.Info("Leave inserted",
		zap.Int("leave_id", l.ID),
		zap.Int("user_id", l.UserID),
	)
	return nil
}

// ListByUser returns the user's leave requests, latest start date first.
func (r *LeaveRepository) ListByUser(ctx context.Context, userID int) ([]model.Leave, error) {
	query := `
        SELECT id, user_id, start_date, end_date, leave_type, description, status
        FROM leaves
        WHERE user_id = $1
        ORDER BY start_date DESC, id DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to query leaves", zap.Error(err), zap.Int("user_id", userID))
		return nil, err
	}
	defer rows.Close()

	leaves := []model.Leave{}
	for rows.Next() {
		var l model.Leave
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.StartDate, &l.EndDate,
			&l.LeaveType, &l.Description, &l.Status,
		); err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

// Delete removes one leave request, only if it belongs to the given user.
// Returns pgx.ErrNoRows when nothing matched.
func (r *LeaveRepository) Delete(ctx context.Context, userID, leaveID int) error {
	query := `DELETE FROM leaves WHERE id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, leaveID, userID)
	if err != nil {
		r.logger.Error("Failed to delete leave",
			zap.Error(err),
			zap.Int("leave_id", leaveID),
			zap.Int("user_id", userID),
		)
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

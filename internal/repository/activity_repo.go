package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/DragosAvidal/ADworktracker/internal/model"
	"github.com/DragosAvidal/ADworktracker/pkg/metrics"
)

const activityColumns = `id, user_id, date, client, project, activity_type, achievements, challenges, hours`

type ActivityRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewActivityRepository(db *pgxpool.Pool, logger *zap.Logger) *ActivityRepository {
	return &ActivityRepository{db: db, logger: logger}
}

// Insert stores a new activity and fills in its generated ID.
func (r *ActivityRepository) Insert(ctx context.Context, a *model.Activity) error {
	query := `
        INSERT INTO activities (user_id, date, client, project, activity_type, achievements, challenges, hours)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		a.UserID,
		a.Date,
		a.Client,
		a.Project,
		a.ActivityType,
		a.Achievements,
		a.Challenges,
		a.Hours,
	).Scan(&a.ID)
	if err != nil {
		r.logger.Error("Failed to insert activity",
			zap.Error(err),
			zap.Int("user_id", a.UserID),
		)
		return err
	}
	r.logger.Info("Activity inserted",
		zap.Int("activity_id", a.ID),
		zap.Int("user_id", a.UserID),
		zap.String("date", a.Date.String()),
	)
	return nil
}

// FindByID returns one activity, only if it belongs to the given user.
func (r *ActivityRepository) FindByID(ctx context.Context, userID, activityID int) (*model.Activity, error) {
	query := `
        SELECT ` + activityColumns + `
        FROM activities
        WHERE id = $1 AND user_id = $2
    `
	var a model.Activity
	err := r.db.QueryRow(ctx, query, activityID, userID).Scan(
		&a.ID, &a.UserID, &a.Date, &a.Client, &a.Project,
		&a.ActivityType, &a.Achievements, &a.Challenges, &a.Hours,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Delete removes one activity, only if it belongs to the given user.
// Returns pgx.ErrNoRows when nothing matched.
func (r *ActivityRepository) Delete(ctx context.Context, userID, activityID int) error {
	query := `DELETE FROM activities WHERE id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, activityID, userID)
	if err != nil {
		r.logger.Error("Failed to delete activity",
			zap.Error(err),
			zap.Int("activity_id", activityID),
			zap.Int("user_id", userID),
		)
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	r.logger.Info("Activity deleted",
		zap.Int("activity_id", activityID),
		zap.Int("user_id", userID),
	)
	return nil
}

// ListRecent returns the user's most recent activities, newest first.
func (r *ActivityRepository) ListRecent(ctx context.Context, userID, limit int) ([]model.Activity, error) {
	query := `
        SELECT ` + activityColumns + `
        FROM activities
        WHERE user_id = $1
        ORDER BY date DESC, id DESC
        LIMIT $2
    `
	return r.list(ctx, "list_recent", query, userID, limit)
}

// ListAll returns every activity the user owns, newest first.
func (r *ActivityRepository) ListAll(ctx context.Context, userID int) ([]model.Activity, error) {
	query := `
        SELECT ` + activityColumns + `
        FROM activities
        WHERE user_id = $1
        ORDER BY date DESC, id DESC
    `
	return r.list(ctx, "list_all", query, userID)
}

// ListByDateRange returns the user's activities inside the inclusive
// [start, end] interval, ordered by date descending.
func (r *ActivityRepository) ListByDateRange(ctx context.Context, userID int, start, end model.Date) ([]model.Activity, error) {
	query := `
        SELECT ` + activityColumns + `
        FROM activities
        WHERE user_id = $1 AND date >= $2 AND date <= $3
        ORDER BY date DESC, id DESC
    `
	return r.list(ctx, "list_by_date_range", query, userID, start, end)
}

// ListByClient returns the user's activities for one client, newest first.
func (r *ActivityRepository) ListByClient(ctx context.Context, userID int, client string) ([]model.Activity, error) {
	query := `
        SELECT ` + activityColumns + `
        FROM activities
        WHERE user_id = $1 AND client = $2
        ORDER BY date DESC, id DESC
    `
	return r.list(ctx, "list_by_client", query, userID, client)
}

// ListByProject returns the user's activities for one project, newest first.
func (r *ActivityRepository) ListByProject(ctx context.Context, userID int, project string) ([]model.Activity, error) {
	query := `
        SELECT ` + activityColumns + `
        FROM activities
        WHERE user_id = $1 AND project = $2
        ORDER BY date DESC, id DESC
    `
	return r.list(ctx, "list_by_project", query, userID, project)
}

// DistinctClients returns the user's distinct non-empty client names.
func (r *ActivityRepository) DistinctClients(ctx context.Context, userID int) ([]string, error) {
	query := `
        SELECT DISTINCT client FROM activities
        WHERE user_id = $1 AND client <> ''
        ORDER BY client
    `
	return r.listStrings(ctx, query, userID)
}

// DistinctProjects returns the user's distinct non-empty project names.
func (r *ActivityRepository) DistinctProjects(ctx context.Context, userID int) ([]string, error) {
	query := `
        SELECT DISTINCT project FROM activities
        WHERE user_id = $1 AND project <> ''
        ORDER BY project
    `
	return r.listStrings(ctx, query, userID)
}

// CountDistinctProjectsSince counts distinct projects logged on or after the
// given date.
func (r *ActivityRepository) CountDistinctProjectsSince(ctx context.Context, userID int, since model.Date) (int, error) {
	query := `
        SELECT COUNT(DISTINCT project) FROM activities
        WHERE user_id = $1 AND date >= $2
    `
	var count int
	err := r.db.QueryRow(ctx, query, userID, since).Scan(&count)
	return count, err
}

// CountDistinctClientsSince counts distinct clients logged on or after the
// given date.
func (r *ActivityRepository) CountDistinctClientsSince(ctx context.Context, userID int, since model.Date) (int, error) {
	query := `
        SELECT COUNT(DISTINCT client) FROM activities
        WHERE user_id = $1 AND date >= $2
    `
	var count int
	err := r.db.QueryRow(ctx, query, userID, since).Scan(&count)
	return count, err
}

func (r *ActivityRepository) list(ctx context.Context, operation, query string, args ...any) ([]model.Activity, error) {
	started := time.Now()
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query activities",
			zap.Error(err),
			zap.String("operation", operation),
		)
		return nil, err
	}
	defer rows.Close()

	activities := []model.Activity{}
	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Date, &a.Client, &a.Project,
			&a.ActivityType, &a.Achievements, &a.Challenges, &a.Hours,
		); err != nil {
			r.logger.Error("Failed to scan activity row",
				zap.Error(err),
				zap.String("operation", operation),
			)
			return nil, err
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	metrics.RecordDBQueryDuration(operation, "activities", time.Since(started))
	return activities, nil
}

func (r *ActivityRepository) listStrings(ctx context.Context, query string, userID int) ([]string, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

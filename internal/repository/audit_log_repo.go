package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// AuditEntry is one row in the audit trail written by the worker.
type AuditEntry struct {
	EventType  string
	UserID     int
	RecordID   int
	Detail     string
	OccurredAt time.Time
}

type AuditLogRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewAuditLogRepository(db *pgxpool.Pool, logger *zap.Logger) *AuditLogRepository {
	return &AuditLogRepository{db: db, logger: logger}
}

// Insert appends an audit entry.
func (r *AuditLogRepository) Insert(ctx context.Context, entry AuditEntry) error {
	query := `
        INSERT INTO audit_log (event_type, user_id, record_id, detail, occurred_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query,
		entry.EventType,
		entry.UserID,
		entry.RecordID,
		entry.Detail,
		entry.OccurredAt,
	)
	if err != nil {
		r.logger.Error("Failed to insert audit entry",
			zap.Error(err),
			zap.String("event_type", entry.EventType),
			zap.Int("record_id", entry.RecordID),
		)
		return err
	}
	return nil
}

package mqhandler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/DragosAvidal/ADworktracker/internal/mq"
	"github.com/DragosAvidal/ADworktracker/internal/repository"
	"github.com/DragosAvidal/ADworktracker/internal/util"
)

// AuditHandler writes one audit trail row per record event. The deduper keeps
// redelivered messages from producing duplicate rows.
type AuditHandler struct {
	repo    *repository.AuditLogRepository
	logger  *zap.Logger
	deduper *util.Deduper
}

func NewAuditHandler(repo *repository.AuditLogRepository, logger *zap.Logger, deduper *util.Deduper) *AuditHandler {
	return &AuditHandler{
		repo:    repo,
		logger:  logger,
		deduper: deduper,
	}
}

func (h *AuditHandler) HandleActivityLogged(ctx context.Context, raw json.RawMessage) error {
	var p mq.ActivityLoggedPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		h.logger.Error("Failed to unmarshal activity.logged payload", zap.Error(err))
		return err
	}

	if !h.deduper.AcquireOnce(ctx, "audit.activity", p.ActivityID) {
		h.logger.Info("Skipping duplicate activity.logged event", zap.Int("activity_id", p.ActivityID))
		return nil
	}

	entry := repository.AuditEntry{
		EventType:  mq.RoutingKeyActivityLogged,
		UserID:     p.UserID,
		RecordID:   p.ActivityID,
		Detail:     fmt.Sprintf("%.2f hours on %s for %s", p.Hours, p.Date, p.Client),
		OccurredAt: p.LoggedAt,
	}
	return h.insert(ctx, entry)
}

func (h *AuditHandler) HandleLeaveRequested(ctx context.Context, raw json.RawMessage) error {
	var p mq.LeaveRequestedPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		h.logger.Error("Failed to unmarshal leave.requested payload", zap.Error(err))
		return err
	}

	if !h.deduper.AcquireOnce(ctx, "audit.leave", p.LeaveID) {
		h.logger.Info("Skipping duplicate leave.requested event", zap.Int("leave_id", p.LeaveID))
		return nil
	}

	entry := repository.AuditEntry{
		EventType:  mq.RoutingKeyLeaveRequested,
		UserID:     p.UserID,
		RecordID:   p.LeaveID,
		Detail:     fmt.Sprintf("%s leave %s to %s", p.LeaveType, p.StartDate, p.EndDate),
		OccurredAt: p.RequestedAt,
	}
	return h.insert(ctx, entry)
}

func (h *AuditHandler) HandleExpenseLogged(ctx context.Context, raw json.RawMessage) error {
	var p mq.ExpenseLoggedPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		h.logger.Error("Failed to unmarshal expense.logged payload", zap.Error(err))
		return err
	}

	if !h.deduper.AcquireOnce(ctx, "audit.expense", p.ExpenseID) {
		h.logger.Info("Skipping duplicate expense.logged event", zap.Int("expense_id", p.ExpenseID))
		return nil
	}

	entry := repository.AuditEntry{
		EventType:  mq.RoutingKeyExpenseLogged,
		UserID:     p.UserID,
		RecordID:   p.ExpenseID,
		Detail:     fmt.Sprintf("%.2f for %s (%s)", p.Amount, p.Project, p.Category),
		OccurredAt: p.LoggedAt,
	}
	return h.insert(ctx, entry)
}

func (h *AuditHandler) insert(ctx context.Context, entry repository.AuditEntry) error {
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now()
	}
	if err := h.repo.Insert(ctx, entry); err != nil {
		return err
	}
	h.logger.Info("Audit entry written",
		zap.String("event_type", entry.EventType),
		zap.Int("user_id", entry.UserID),
		zap.Int("record_id", entry.RecordID),
	)
	return nil
}

package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DragosAvidal/ADworktracker/internal/export"
	"github.com/DragosAvidal/ADworktracker/internal/repository"
	"github.com/DragosAvidal/ADworktracker/pkg/metrics"
)

type ExportHandler struct {
	userRepo     *repository.UserRepository
	activityRepo *repository.ActivityRepository
	expenseRepo  *repository.ExpenseRepository
}

func NewExportHandler(
	userRepo *repository.UserRepository,
	activityRepo *repository.ActivityRepository,
	expenseRepo *repository.ExpenseRepository,
) *ExportHandler {
	return &ExportHandler{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		expenseRepo:  expenseRepo,
	}
}

// Activities handles GET /api/export/activities/:format
func (h *ExportHandler) Activities(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	format := export.Format(c.Param("format"))

	u, err := h.userRepo.FindByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	activities, err := h.activityRepo.ListAll(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	data, err := export.Activities(u.Username, activities, format)
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.IncrementExport("activities", string(format))
	serveDownload(c, "activities", u.Username, format, data)
}

// Expenses handles GET /api/export/expenses/:format
func (h *ExportHandler) Expenses(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	format := export.Format(c.Param("format"))

	u, err := h.userRepo.FindByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	expenses, err := h.expenseRepo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	data, err := export.Expenses(u.Username, expenses, format)
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.IncrementExport("expenses", string(format))
	serveDownload(c, "expenses", u.Username, format, data)
}

func serveDownload(c *gin.Context, dataset, username string, format export.Format, data []byte) {
	filename := fmt.Sprintf("%s_%s_%s.%s", dataset, username, time.Now().Format("20060102"), format.Extension())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, format.ContentType(), data)
}

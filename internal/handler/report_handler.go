package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DragosAvidal/ADworktracker/internal/report"
	"github.com/DragosAvidal/ADworktracker/internal/repository"
	"github.com/DragosAvidal/ADworktracker/pkg/metrics"
)

type ReportHandler struct {
	reportService *report.Service
	activityRepo  *repository.ActivityRepository
}

func NewReportHandler(reportService *report.Service, activityRepo *repository.ActivityRepository) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		activityRepo:  activityRepo,
	}
}

// Weekly handles POST /api/reports/weekly
func (h *ReportHandler) Weekly(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		StartDate string `json:"start_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	payload, err := h.reportService.Weekly(c.Request.Context(), userID, req.StartDate)
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.IncrementReportGenerated("weekly")
	c.JSON(http.StatusOK, payload)
}

// Monthly handles POST /api/reports/monthly
func (h *ReportHandler) Monthly(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Month string `json:"month"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	payload, err := h.reportService.Monthly(c.Request.Context(), userID, req.Month)
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.IncrementReportGenerated("monthly")
	c.JSON(http.StatusOK, payload)
}

// Client handles POST /api/reports/client
func (h *ReportHandler) Client(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Client string `json:"client"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	payload, err := h.reportService.Client(c.Request.Context(), userID, req.Client)
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.IncrementReportGenerated("client")
	c.JSON(http.StatusOK, payload)
}

// Project handles POST /api/reports/project
func (h *ReportHandler) Project(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Project string `json:"project"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	payload, err := h.reportService.Project(c.Request.Context(), userID, req.Project)
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.IncrementReportGenerated("project")
	c.JSON(http.StatusOK, payload)
}

// Filters handles GET /api/reports/filters and returns the distinct client
// and project names available to the user for report dropdowns.
func (h *ReportHandler) Filters(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	clients, err := h.activityRepo.DistinctClients(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	projects, err := h.activityRepo.DistinctProjects(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clients":  clients,
		"projects": projects,
	})
}

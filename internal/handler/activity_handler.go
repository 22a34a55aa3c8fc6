package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DragosAvidal/ADworktracker/internal/model"
	"github.com/DragosAvidal/ADworktracker/internal/service"
)

const defaultRecentLimit = 10

type ActivityHandler struct {
	activityService *service.ActivityService
}

func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// Create handles POST /api/activities
func (h *ActivityHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Date         model.Date `json:"date"`
		Client       string     `json:"client"`
		Project      string     `json:"project"`
		ActivityType string     `json:"activity_type"`
		Achievements string     `json:"achievements"`
		Challenges   string     `json:"challenges"`
		Hours        float64    `json:"hours"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, model.ErrInvalidDate) {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	a, err := h.activityService.Create(c.Request.Context(), userID, service.CreateActivityInput{
		Date:         req.Date,
		Client:       req.Client,
		Project:      req.Project,
		ActivityType: req.ActivityType,
		Achievements: req.Achievements,
		Challenges:   req.Challenges,
		Hours:        req.Hours,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, a)
}

// List handles GET /api/activities
func (h *ActivityHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	activities, err := h.activityService.ListRecent(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// Get handles GET /api/activities/:id
func (h *ActivityHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	activityID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity id"})
		return
	}

	a, err := h.activityService.Get(c.Request.Context(), userID, activityID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, a)
}

// Delete handles DELETE /api/activities/:id
func (h *ActivityHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	activityID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity id"})
		return
	}

	if err := h.activityService.Delete(c.Request.Context(), userID, activityID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "activity deleted"})
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DragosAvidal/ADworktracker/internal/model"
	"github.com/DragosAvidal/ADworktracker/internal/service"
)

type LeaveHandler struct {
	leaveService *service.LeaveService
}

func NewLeaveHandler(leaveService *service.LeaveService) *LeaveHandler {
	return &LeaveHandler{
		leaveService: leaveService,
	}
}

// List handles GET /api/leaves
func (h *LeaveHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	leaves, err := h.leaveService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaves": leaves})
}

// Create handles POST /api/leaves
func (h *LeaveHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		StartDate   model.Date `json:"start_date"`
		EndDate     model.Date `json:"end_date"`
		LeaveType   string     `json:"leave_type"`
		Description string     `json:"description"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, model.ErrInvalidDate) {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	l, err := h.leaveService.Create(c.Request.Context(), userID, service.CreateLeaveInput{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		LeaveType:   req.LeaveType,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, l)
}

// Delete handles DELETE /api/leaves/:id
func (h *LeaveHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	leaveID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid leave id"})
		return
	}

	if err := h.leaveService.Delete(c.Request.Context(), userID, leaveID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "leave deleted"})
}

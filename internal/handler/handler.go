package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DragosAvidal/ADworktracker/internal/export"
	"github.com/DragosAvidal/ADworktracker/internal/model"
	"github.com/DragosAvidal/ADworktracker/internal/report"
	"github.com/DragosAvidal/ADworktracker/internal/service"
)

// currentUserID reads the authenticated user set by the auth middleware.
func currentUserID(c *gin.Context) (int, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return 0, false
	}
	return v.(int), true
}

// respondError maps domain errors onto HTTP statuses. Anything unrecognized
// is a 500 with a generic body.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidDate),
		errors.Is(err, service.ErrMissingField),
		errors.Is(err, report.ErrMissingClient),
		errors.Is(err, report.ErrMissingProject),
		errors.Is(err, export.ErrUnsupportedFormat),
		errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

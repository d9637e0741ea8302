package handler

import (
	"errors"
	"net/http"

	"hostelhelper/backend/internal/api/middleware"
	"hostelhelper/backend/internal/session"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the current session's identity.
func (h *Handler) GetProfile(c *gin.Context) {
	studentID := c.GetString(middleware.CtxStudentID)

	student, err := h.Sessions.Current(studentID)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired, please log in again"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, student)
}

// UpdateProfile merges non-empty fields into the current identity.
func (h *Handler) UpdateProfile(c *gin.Context) {
	studentID := c.GetString(middleware.CtxStudentID)

	var patch session.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile payload"})
		return
	}

	student, err := h.Sessions.UpdateProfile(studentID, patch)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired, please log in again"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, student)
}

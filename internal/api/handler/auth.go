package handler

import (
	"net/http"

	"hostelhelper/backend/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

// Login creates a fresh student identity and returns it with a token.
// Logging in twice with the same email yields two separate identities.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and name are required"})
		return
	}

	student, token, err := h.Sessions.Login(req.Email, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "student": student})
}

// Logout clears the session pointer. The student record and any
// complaints stay behind.
func (h *Handler) Logout(c *gin.Context) {
	studentID := c.GetString(middleware.CtxStudentID)
	if err := h.Sessions.Logout(studentID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end session"})
		return
	}
	h.Chat.ResetFlow(studentID)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

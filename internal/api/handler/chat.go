package handler

import (
	"net/http"
	"time"

	"hostelhelper/backend/internal/api/middleware"
	"hostelhelper/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// PostMessage runs one assistant turn over plain HTTP. The websocket
// endpoint is the primary transport; this exists for clients without one.
func (h *Handler) PostMessage(c *gin.Context) {
	studentID := c.GetString(middleware.CtxStudentID)

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply := h.Chat.HandleMessage(c.Request.Context(), studentID, req.Message)

	c.JSON(http.StatusOK, models.ChatMessage{
		ID:        uuid.New().String(),
		Type:      models.MessageTypeBot,
		Text:      reply.Text,
		Timestamp: time.Now(),
	})
}

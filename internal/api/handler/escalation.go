package handler

import (
	"net/http"

	"hostelhelper/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// ListEscalations returns every escalation for the admin panel.
func (h *Handler) ListEscalations(c *gin.Context) {
	escalations, err := h.Storage.ListEscalations()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list escalations"})
		return
	}
	c.JSON(http.StatusOK, escalations)
}

// GetEscalation looks an escalation up by id.
func (h *Handler) GetEscalation(c *gin.Context) {
	escalation, err := h.Storage.GetEscalationByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load escalation"})
		return
	}
	if escalation == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "escalation not found"})
		return
	}
	c.JSON(http.StatusOK, escalation)
}

type escalationUpdateRequest struct {
	Status        string `json:"status" binding:"required"`
	AdminResponse string `json:"adminResponse"`
}

// UpdateEscalationStatus advances an escalation and propagates the
// mapped status onto its complaint.
func (h *Handler) UpdateEscalationStatus(c *gin.Context) {
	var req escalationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	switch req.Status {
	case models.EscalationStatusPending, models.EscalationStatusAcknowledged,
		models.EscalationStatusInReview, models.EscalationStatusResolved:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	updated, err := h.Complaints.UpdateEscalationStatus(c.Param("id"), req.Status, req.AdminResponse)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update escalation"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "escalation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

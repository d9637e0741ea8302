package handler

import (
	"net/http"

	"hostelhelper/backend/internal/api/middleware"
	"hostelhelper/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// ListComplaints returns the caller's complaints. Admins see everything.
func (h *Handler) ListComplaints(c *gin.Context) {
	var (
		complaints []models.Complaint
		err        error
	)
	if c.GetBool(middleware.CtxIsAdmin) {
		complaints, err = h.Storage.ListComplaints()
	} else {
		complaints, err = h.Storage.GetStudentComplaints(c.GetString(middleware.CtxStudentID))
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list complaints"})
		return
	}
	c.JSON(http.StatusOK, complaints)
}

// GetComplaint looks a complaint up by ticket id.
func (h *Handler) GetComplaint(c *gin.Context) {
	complaint, err := h.Storage.GetComplaintByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load complaint"})
		return
	}
	if complaint == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	}
	if !c.GetBool(middleware.CtxIsAdmin) && complaint.StudentID != c.GetString(middleware.CtxStudentID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your complaint"})
		return
	}
	c.JSON(http.StatusOK, complaint)
}

type updateStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	Resolution string `json:"resolution"`
}

// UpdateComplaintStatus moves a complaint through its lifecycle. Students
// may update their own tickets (self-resolve), admins any. Unknown ids
// report not-found rather than erroring.
func (h *Handler) UpdateComplaintStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	switch req.Status {
	case models.ComplaintStatusNew, models.ComplaintStatusInProgress, models.ComplaintStatusResolved:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	if !c.GetBool(middleware.CtxIsAdmin) {
		complaint, err := h.Storage.GetComplaintByID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load complaint"})
			return
		}
		if complaint == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
			return
		}
		if complaint.StudentID != c.GetString(middleware.CtxStudentID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not your complaint"})
			return
		}
	}

	updated, err := h.Complaints.UpdateComplaintStatus(c.Param("id"), req.Status, req.Resolution)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update complaint"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

type updateFieldsRequest struct {
	Status     *string `json:"status"`
	Resolution *string `json:"resolution"`
	AdminNotes *string `json:"adminNotes"`
	Sentiment  *string `json:"sentiment"`
	Priority   *string `json:"priority"`
}

// UpdateComplaintFields applies a partial admin-side edit. Only the fields
// present in the payload change; a status change goes through the
// complaint service so live clients hear about it.
func (h *Handler) UpdateComplaintFields(c *gin.Context) {
	var req updateFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if req.Status != nil {
		switch *req.Status {
		case models.ComplaintStatusNew, models.ComplaintStatusInProgress, models.ComplaintStatusResolved:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return
		}
		resolution := ""
		if req.Resolution != nil {
			resolution = *req.Resolution
		}
		updated, err := h.Complaints.UpdateComplaintStatus(c.Param("id"), *req.Status, resolution)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update complaint"})
			return
		}
		if !updated {
			c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
			return
		}
	}

	changes := map[string]interface{}{}
	if req.Resolution != nil && req.Status == nil {
		changes["resolution"] = *req.Resolution
	}
	if req.AdminNotes != nil {
		changes["admin_notes"] = *req.AdminNotes
	}
	if req.Sentiment != nil {
		changes["sentiment"] = *req.Sentiment
	}
	if req.Priority != nil {
		changes["priority"] = *req.Priority
	}
	if len(changes) == 0 {
		if req.Status == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": true})
		return
	}

	updated, err := h.Storage.UpdateComplaintFields(c.Param("id"), changes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update complaint"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

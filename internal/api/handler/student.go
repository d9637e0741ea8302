package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListStudents returns every registered student. Admin only.
func (h *Handler) ListStudents(c *gin.Context) {
	students, err := h.Storage.ListStudents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list students"})
		return
	}
	c.JSON(http.StatusOK, students)
}

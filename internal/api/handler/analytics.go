package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Dashboard serves the cached analytics snapshot for the admin panel.
func (h *Handler) Dashboard(c *gin.Context) {
	snap, err := h.Analytics.Current()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

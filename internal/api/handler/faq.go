package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListFAQs returns the FAQ catalogue. Public, no session required.
func (h *Handler) ListFAQs(c *gin.Context) {
	faqs, err := h.Storage.ListFAQs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list FAQs"})
		return
	}
	c.JSON(http.StatusOK, faqs)
}

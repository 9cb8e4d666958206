package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDates handles the GET /dates request.
func (h *Handler) GetDates(c *gin.Context) {
	dates := h.inv.ListDates(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSeats handles the GET /seats/{date} request. An unknown date is not an
// error: it reports zero available seats.
func (h *Handler) GetSeats(c *gin.Context) {
	availability := h.inv.SeatAvailability(c.Request.Context(), c.Param("date"))
	c.JSON(http.StatusOK, availability)
}

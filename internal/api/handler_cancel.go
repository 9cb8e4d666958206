package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-booking-backend/internal/journal"
	"travel-booking-backend/internal/model"
	"travel-booking-backend/internal/parse"
)

type cancelRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
}

// Cancel handles the POST /cancel request.
func (h *Handler) Cancel(c *gin.Context) {
	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.inv.Cancel(c.Request.Context(), req.BookingID)
	if result.Success {
		h.mutated()
		if h.journal != nil && result.Details != nil {
			h.journal.Dispatch(journal.Entry{
				Action:    model.EventCancelled,
				BookingID: parse.BookingID(req.BookingID),
				Date:      result.Details.Date,
				Seat:      result.Details.Seat,
			})
		}
	}
	c.JSON(http.StatusOK, result)
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-booking-backend/internal/journal"
	"travel-booking-backend/internal/model"
	"travel-booking-backend/internal/parse"
)

type bookRequest struct {
	Date     string         `json:"date" binding:"required"`
	SeatID   string         `json:"seat_id" binding:"required"`
	Customer map[string]any `json:"customer"`
}

// Book handles the POST /book request. Expected failures (invalid
// reference, occupied seat) come back as 200 with success=false; only a
// malformed request body is a 400.
func (h *Handler) Book(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.inv.Book(c.Request.Context(), req.Date, req.SeatID, req.Customer)
	if result.Success {
		h.mutated()
		if h.journal != nil {
			h.journal.Dispatch(journal.Entry{
				Action:    model.EventBooked,
				BookingID: result.BookingID,
				Date:      req.Date,
				Seat:      parse.SeatLabel(req.SeatID),
			})
		}
	}
	c.JSON(http.StatusOK, result)
}

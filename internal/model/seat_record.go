package model

import "time"

// Seat occupancy states. A seat record is always in exactly one of them.
const (
	SeatAvailable = "available"
	SeatOccupied  = "occupied"
)

// SeatRecord represents the occupancy state of one (date, seat) cell.
// Customer holds the serialized customer object and BookingID the booking
// token; both are empty exactly when the seat is available. Ordinal is the
// seat's position in the configured layout, so availability listings keep
// the layout order even for labels that don't sort lexicographically.
type SeatRecord struct {
	Date      string `gorm:"primaryKey;size:10"`
	Seat      string `gorm:"primaryKey;size:8"`
	Ordinal   int    `gorm:"not null"`
	Status    string `gorm:"size:16;not null"`
	Customer  string `gorm:"not null"`
	BookingID string `gorm:"size:16;index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

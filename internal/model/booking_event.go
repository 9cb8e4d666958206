package model

import "time"

// Booking event actions.
const (
	EventBooked    = "booked"
	EventCancelled = "cancelled"
)

// BookingEvent is one entry in the append-only booking journal.
type BookingEvent struct {
	ID         int64     `gorm:"autoIncrement;primaryKey"`
	Action     string    `gorm:"size:16;not null"`
	BookingID  string    `gorm:"size:16;index;not null"`
	Date       string    `gorm:"size:10;not null"`
	Seat       string    `gorm:"size:8;not null"`
	RecordedAt time.Time `gorm:"not null"`
}

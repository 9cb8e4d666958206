// Package store persists the seat inventory grid. Sentinel errors defined
// here let the booking engine distinguish expected outcomes (unknown cell,
// occupied seat, unknown booking id) from real storage faults.
package store

import "errors"

// ErrNoSuchCell is returned when the requested (date, seat) pair does not
// exist in the grid.
var ErrNoSuchCell = errors.New("no such date/seat cell")

// ErrSeatOccupied is returned when a booking targets a seat that already
// carries a live booking.
var ErrSeatOccupied = errors.New("seat already occupied")

// ErrDuplicateBookingID is returned when a candidate booking id collides
// with an existing one. The caller is expected to generate a new id and
// retry.
var ErrDuplicateBookingID = errors.New("duplicate booking id")

// ErrBookingNotFound is returned by Cancel when no record carries the
// given booking id.
var ErrBookingNotFound = errors.New("booking id not found")

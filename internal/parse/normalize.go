package parse

import (
	"strings"
)

// SeatLabel normalizes a raw seat label for grid lookup: surrounding
// whitespace is dropped and the label is uppercased, so " a " matches
// seat "A".
func SeatLabel(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// BookingID normalizes a raw booking id the same way seat labels are
// normalized. Ids are generated uppercase, so lookups are effectively
// case-insensitive.
func BookingID(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Prefix extracts the service tag from a booking id, e.g. "BK" from
// "BK-ABC123". It returns "" when the id carries no tag separator.
func Prefix(bookingID string) string {
	id := BookingID(bookingID)
	i := strings.IndexByte(id, '-')
	if i <= 0 {
		return ""
	}
	return id[:i]
}

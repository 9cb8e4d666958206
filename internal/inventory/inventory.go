// Package inventory implements the seat-booking engine: a per-service
// inventory of (date, seat) cells with four operations — list dates, query
// availability, book, cancel. One Inventory is instantiated per travel
// mode (bus, flight); instances share nothing, not even a database.
package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"travel-booking-backend/internal/parse"
	"travel-booking-backend/internal/store"
)

// User-facing failure messages. These are part of the HTTP contract.
const (
	msgInvalidReference = "Invalid date or seat."
	msgSeatOccupied     = "Seat already occupied."
	msgBookingNotFound  = "Booking ID not found."
)

// maxIDAttempts bounds re-rolls when a generated booking id collides with
// an existing one.
const maxIDAttempts = 5

// Config parameterizes one inventory instance.
type Config struct {
	Name           string
	Prefix         string
	DigitsFirst    bool
	Seats          []string
	Days           int
	ExcludeWeekday time.Weekday
	Now            func() time.Time // defaults to time.Now
}

// Availability reports how many seats are free on a date and which ones.
type Availability struct {
	Count int      `json:"count"`
	IDs   []string `json:"ids"`
}

// BookingResult is the outcome of a booking attempt.
type BookingResult struct {
	Success   bool   `json:"success"`
	BookingID string `json:"booking_id,omitempty"`
	Message   string `json:"message,omitempty"`
}

// CancelDetails identifies the cell released by a cancellation.
type CancelDetails struct {
	Date string `json:"date"`
	Seat string `json:"seat"`
}

// CancelResult is the outcome of a cancellation attempt.
type CancelResult struct {
	Success bool           `json:"success"`
	Details *CancelDetails `json:"details,omitempty"`
	Message string         `json:"message,omitempty"`
}

// Inventory is the booking engine for one travel mode. Mutating operations
// (Book, Cancel) are serialized by a per-instance mutex so the
// check-then-act sequence is atomic with respect to other mutations;
// read operations rely on the store's transactional snapshots.
type Inventory struct {
	cfg   Config
	store store.Store

	mu sync.Mutex // guards Book/Cancel

	initOnce sync.Once
	initErr  error
}

// New creates an inventory backed by the given store. The seat grid itself
// is populated lazily on first use.
func New(cfg Config, s store.Store) *Inventory {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Inventory{cfg: cfg, store: s}
}

// Name returns the instance name (e.g. "bus").
func (inv *Inventory) Name() string { return inv.cfg.Name }

// Prefix returns the booking-id tag for this instance (e.g. "BK").
func (inv *Inventory) Prefix() string { return inv.cfg.Prefix }

// ensureReady populates the grid on first use. The calendar is generated
// once and never regenerated, so the date window is fixed for the lifetime
// of the store.
func (inv *Inventory) ensureReady(ctx context.Context) error {
	inv.initOnce.Do(func() {
		dates := TravelDates(inv.cfg.Now(), inv.cfg.Days, inv.cfg.ExcludeWeekday)
		if err := inv.store.Populate(ctx, dates, inv.cfg.Seats); err != nil {
			inv.initErr = err
			return
		}
		log.Printf("%s inventory ready: %d dates x %d seats", inv.cfg.Name, len(dates), len(inv.cfg.Seats))
	})
	return inv.initErr
}

// ListDates returns the bookable dates in calendar order. Storage faults
// degrade to an empty list rather than an error: availability reads are
// fail-open.
func (inv *Inventory) ListDates(ctx context.Context) []string {
	if err := inv.ensureReady(ctx); err != nil {
		log.Printf("%s inventory unavailable: %v", inv.cfg.Name, err)
		return []string{}
	}
	dates, err := inv.store.Dates(ctx)
	if err != nil {
		log.Printf("%s: listing dates failed: %v", inv.cfg.Name, err)
		return []string{}
	}
	if dates == nil {
		dates = []string{}
	}
	return dates
}

// SeatAvailability reports the free seats on a date. An unknown date and a
// storage fault both yield a zero result; only writes surface errors.
func (inv *Inventory) SeatAvailability(ctx context.Context, date string) Availability {
	empty := Availability{Count: 0, IDs: []string{}}
	if err := inv.ensureReady(ctx); err != nil {
		log.Printf("%s inventory unavailable: %v", inv.cfg.Name, err)
		return empty
	}
	seats, err := inv.store.AvailableSeats(ctx, date)
	if err != nil {
		log.Printf("%s: availability read for %s failed: %v", inv.cfg.Name, date, err)
		return empty
	}
	if seats == nil {
		seats = []string{}
	}
	return Availability{Count: len(seats), IDs: seats}
}

// Book allocates the given seat on the given date to the customer and
// returns a fresh booking id. The seat label is normalized before matching.
// The customer record is opaque and passed through unvalidated.
func (inv *Inventory) Book(ctx context.Context, date, seatLabel string, customer map[string]any) BookingResult {
	if err := inv.ensureReady(ctx); err != nil {
		return BookingResult{Success: false, Message: err.Error()}
	}

	seat := parse.SeatLabel(seatLabel)
	payload, err := json.Marshal(customer)
	if err != nil {
		return BookingResult{Success: false, Message: err.Error()}
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := newBookingID(inv.cfg.Prefix, inv.cfg.DigitsFirst)
		err := inv.store.Book(ctx, date, seat, string(payload), id)
		switch {
		case err == nil:
			return BookingResult{Success: true, BookingID: id}
		case errors.Is(err, store.ErrDuplicateBookingID):
			continue
		case errors.Is(err, store.ErrNoSuchCell):
			return BookingResult{Success: false, Message: msgInvalidReference}
		case errors.Is(err, store.ErrSeatOccupied):
			return BookingResult{Success: false, Message: msgSeatOccupied}
		default:
			return BookingResult{Success: false, Message: err.Error()}
		}
	}
	return BookingResult{Success: false, Message: "could not allocate a unique booking id"}
}

// Cancel releases the booking with the given id and reports which cell it
// held. The id is normalized before matching.
func (inv *Inventory) Cancel(ctx context.Context, bookingID string) CancelResult {
	if err := inv.ensureReady(ctx); err != nil {
		return CancelResult{Success: false, Message: err.Error()}
	}

	id := parse.BookingID(bookingID)

	inv.mu.Lock()
	defer inv.mu.Unlock()

	date, seat, err := inv.store.Cancel(ctx, id)
	if errors.Is(err, store.ErrBookingNotFound) {
		return CancelResult{Success: false, Message: msgBookingNotFound}
	}
	if err != nil {
		return CancelResult{Success: false, Message: err.Error()}
	}
	return CancelResult{Success: true, Details: &CancelDetails{Date: date, Seat: seat}}
}

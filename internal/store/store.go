package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"travel-booking-backend/internal/model"
)

// Store defines the interface for all inventory persistence operations.
// Book and Cancel run their read-check-write sequence inside a single
// database transaction so a partially applied mutation is never persisted.
type Store interface {
	Populate(ctx context.Context, dates, seats []string) error
	Dates(ctx context.Context) ([]string, error)
	AvailableSeats(ctx context.Context, date string) ([]string, error)
	Book(ctx context.Context, date, seat, customer, bookingID string) error
	Cancel(ctx context.Context, bookingID string) (date, seat string, err error)
	AppendEvent(ctx context.Context, ev *model.BookingEvent) error
	DB() *gorm.DB
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// DB exposes the underlying connection.
func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// Populate creates one available seat record per (date, seat) pair. It is a
// no-op when the grid already holds rows, so a restart never resets an
// inventory that has live bookings.
func (s *gormStore) Populate(ctx context.Context, dates, seats []string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.SeatRecord{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count seat records: %w", err)
		}
		if count > 0 {
			return nil
		}

		records := make([]model.SeatRecord, 0, len(dates)*len(seats))
		for _, date := range dates {
			for ordinal, seat := range seats {
				records = append(records, model.SeatRecord{
					Date:    date,
					Seat:    seat,
					Ordinal: ordinal,
					Status:  model.SeatAvailable,
				})
			}
		}
		if err := tx.Create(&records).Error; err != nil {
			return fmt.Errorf("failed to populate seat grid: %w", err)
		}
		return nil
	})
}

// Dates returns every date in the grid in ascending order.
func (s *gormStore) Dates(ctx context.Context) ([]string, error) {
	var dates []string
	err := s.db.WithContext(ctx).
		Model(&model.SeatRecord{}).
		Distinct("date").
		Order("date").
		Pluck("date", &dates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list dates: %w", err)
	}
	return dates, nil
}

// AvailableSeats returns the labels of all available seats on the given
// date in the configured layout order. An unknown date yields an empty
// slice.
func (s *gormStore) AvailableSeats(ctx context.Context, date string) ([]string, error) {
	var seats []string
	err := s.db.WithContext(ctx).
		Model(&model.SeatRecord{}).
		Where("date = ? AND status = ?", date, model.SeatAvailable).
		Order("ordinal").
		Pluck("seat", &seats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list available seats for %s: %w", date, err)
	}
	return seats, nil
}

// Book marks the (date, seat) cell occupied with the given customer payload
// and booking id.
func (s *gormStore) Book(ctx context.Context, date, seat, customer, bookingID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec model.SeatRecord
		err := tx.Where("date = ? AND seat = ?", date, seat).First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoSuchCell
		}
		if err != nil {
			return fmt.Errorf("failed to load seat record %s/%s: %w", date, seat, err)
		}
		if rec.Status != model.SeatAvailable {
			return ErrSeatOccupied
		}

		// Booking ids must be unique across the whole grid, not just per date.
		var clashes int64
		if err := tx.Model(&model.SeatRecord{}).
			Where("booking_id = ?", bookingID).
			Count(&clashes).Error; err != nil {
			return fmt.Errorf("failed to check booking id %s: %w", bookingID, err)
		}
		if clashes > 0 {
			return ErrDuplicateBookingID
		}

		updates := map[string]any{
			"status":     model.SeatOccupied,
			"customer":   customer,
			"booking_id": bookingID,
		}
		if err := tx.Model(&model.SeatRecord{}).
			Where("date = ? AND seat = ?", date, seat).
			Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to book seat %s/%s: %w", date, seat, err)
		}
		return nil
	})
}

// Cancel clears the record carrying the given booking id back to available
// and reports which cell it occupied. Booking ids are unique store-wide, so
// at most one record can match.
func (s *gormStore) Cancel(ctx context.Context, bookingID string) (string, string, error) {
	var date, seat string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Only occupied rows carry a booking; available rows persist an
		// empty booking id, which must never match a lookup.
		var rec model.SeatRecord
		err := tx.Where("booking_id = ? AND status = ?", bookingID, model.SeatOccupied).First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to look up booking %s: %w", bookingID, err)
		}

		updates := map[string]any{
			"status":     model.SeatAvailable,
			"customer":   "",
			"booking_id": "",
		}
		if err := tx.Model(&model.SeatRecord{}).
			Where("date = ? AND seat = ?", rec.Date, rec.Seat).
			Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to release seat %s/%s: %w", rec.Date, rec.Seat, err)
		}
		date, seat = rec.Date, rec.Seat
		return nil
	})
	return date, seat, err
}

// AppendEvent records one booking journal entry.
func (s *gormStore) AppendEvent(ctx context.Context, ev *model.BookingEvent) error {
	if err := s.db.WithContext(ctx).Create(ev).Error; err != nil {
		return fmt.Errorf("failed to append booking event: %w", err)
	}
	return nil
}

package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"travel-booking-backend/internal/model"
)

var (
	testDates = []string{"2025-01-06", "2025-01-07", "2025-01-08"}
	testSeats = []string{"A", "B", "C"}
)

var testDBSeq atomic.Int64

func newSQLiteStore(t *testing.T) Store {
	t.Helper()
	dsn := fmt.Sprintf("file:store_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.SeatRecord{}, &model.BookingEvent{}))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return NewGormStore(db)
}

func populated(t *testing.T) Store {
	t.Helper()
	s := newSQLiteStore(t)
	require.NoError(t, s.Populate(context.Background(), testDates, testSeats))
	return s
}

func TestPopulateIsIdempotent(t *testing.T) {
	s := populated(t)
	ctx := context.Background()

	// A booking must survive a second Populate (restart scenario).
	require.NoError(t, s.Book(ctx, "2025-01-06", "A", `{"name":"Ada"}`, "BK-AAA111"))
	require.NoError(t, s.Populate(ctx, testDates, testSeats))

	var count int64
	require.NoError(t, s.DB().Model(&model.SeatRecord{}).Count(&count).Error)
	assert.Equal(t, int64(len(testDates)*len(testSeats)), count)

	seats, err := s.AvailableSeats(ctx, "2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, seats)
}

func TestDatesOrdered(t *testing.T) {
	s := populated(t)

	dates, err := s.Dates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testDates, dates)
}

func TestBookAndCancel(t *testing.T) {
	s := populated(t)
	ctx := context.Background()

	require.NoError(t, s.Book(ctx, "2025-01-07", "B", `{"name":"Ada"}`, "BK-AAA111"))

	seats, err := s.AvailableSeats(ctx, "2025-01-07")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, seats)

	date, seat, err := s.Cancel(ctx, "BK-AAA111")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-07", date)
	assert.Equal(t, "B", seat)

	seats, err = s.AvailableSeats(ctx, "2025-01-07")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, seats)
}

func TestBookErrors(t *testing.T) {
	s := populated(t)
	ctx := context.Background()

	err := s.Book(ctx, "1999-12-31", "A", "{}", "BK-AAA111")
	assert.ErrorIs(t, err, ErrNoSuchCell)

	err = s.Book(ctx, "2025-01-06", "Z", "{}", "BK-AAA111")
	assert.ErrorIs(t, err, ErrNoSuchCell)

	require.NoError(t, s.Book(ctx, "2025-01-06", "A", "{}", "BK-AAA111"))

	err = s.Book(ctx, "2025-01-06", "A", "{}", "BK-BBB222")
	assert.ErrorIs(t, err, ErrSeatOccupied)

	// Ids are unique across the whole grid, not just per date.
	err = s.Book(ctx, "2025-01-08", "C", "{}", "BK-AAA111")
	assert.ErrorIs(t, err, ErrDuplicateBookingID)
}

func TestCancelUnknownBooking(t *testing.T) {
	s := populated(t)

	_, _, err := s.Cancel(context.Background(), "BK-ZZZ999")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

// Available rows persist an empty booking id; an empty lookup must not
// match one of them and release a free seat.
func TestCancelEmptyIDMatchesNothing(t *testing.T) {
	s := populated(t)
	ctx := context.Background()

	_, _, err := s.Cancel(ctx, "")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	seats, err := s.AvailableSeats(ctx, "2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, testSeats, seats)
}

// Availability follows the configured layout order, not lexicographic
// order of the labels.
func TestAvailableSeatsLayoutOrder(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	layout := []string{"B1", "A10", "A2"}
	require.NoError(t, s.Populate(ctx, []string{"2025-01-06"}, layout))

	seats, err := s.AvailableSeats(ctx, "2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, layout, seats)

	require.NoError(t, s.Book(ctx, "2025-01-06", "A10", "{}", "BK-AAA111"))

	seats, err = s.AvailableSeats(ctx, "2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, []string{"B1", "A2"}, seats)
}

func TestAppendEvent(t *testing.T) {
	s := populated(t)
	ctx := context.Background()

	ev := &model.BookingEvent{
		Action:     model.EventBooked,
		BookingID:  "BK-AAA111",
		Date:       "2025-01-06",
		Seat:       "A",
		RecordedAt: time.Now(),
	}
	require.NoError(t, s.AppendEvent(ctx, ev))
	assert.NotZero(t, ev.ID)
}

// A helper function to create a mock database connection.
func newMockDB(t *testing.T) (Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewGormStore(gormDB), mock
}

func TestDatesStorageFault(t *testing.T) {
	s, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT "date" FROM "seat_records"`)).
		WillReturnError(errors.New("disk I/O error"))

	_, err := s.Dates(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookStorageFaultRollsBack(t *testing.T) {
	s, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "seat_records"`)).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := s.Book(context.Background(), "2025-01-06", "A", "{}", "BK-AAA111")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSuchCell)
	assert.NotErrorIs(t, err, ErrSeatOccupied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

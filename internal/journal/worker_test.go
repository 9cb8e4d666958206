package journal

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"travel-booking-backend/internal/model"
)

// stubRecorder captures appended events for inspection.
type stubRecorder struct {
	mu     sync.Mutex
	events []model.BookingEvent
}

func (r *stubRecorder) AppendEvent(ctx context.Context, ev *model.BookingEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *ev)
	return nil
}

func (r *stubRecorder) snapshot() []model.BookingEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.BookingEvent(nil), r.events...)
}

func TestWorkerPoolRecordsEntries(t *testing.T) {
	rec := &stubRecorder{}
	wp := NewWorkerPool(2, 8, rec)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	wp.Dispatch(Entry{Action: model.EventBooked, BookingID: "BK-AAA111", Date: "2025-01-06", Seat: "A"})
	wp.Dispatch(Entry{Action: model.EventCancelled, BookingID: "BK-AAA111", Date: "2025-01-06", Seat: "A"})

	assert.Eventually(t, func() bool {
		return len(rec.snapshot()) == 2
	}, 2*time.Second, 10*time.Millisecond)

	actions := make(map[string]int)
	for _, ev := range rec.snapshot() {
		actions[ev.Action]++
		assert.Equal(t, "BK-AAA111", ev.BookingID)
		assert.False(t, ev.RecordedAt.IsZero())
	}
	assert.Equal(t, 1, actions[model.EventBooked])
	assert.Equal(t, 1, actions[model.EventCancelled])
}

// Dispatch must never block a request handler: a full queue drops the entry.
func TestDispatchDropsWhenQueueFull(t *testing.T) {
	rec := &stubRecorder{}
	wp := NewWorkerPool(1, 1, rec) // not started, so nothing drains the queue

	wp.Dispatch(Entry{Action: model.EventBooked, BookingID: "BK-AAA111"})

	done := make(chan struct{})
	go func() {
		wp.Dispatch(Entry{Action: model.EventBooked, BookingID: "BK-BBB222"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}
	assert.Len(t, wp.Jobs(), 1)
}

// Package journal records successful booking operations as an append-only
// event trail, off the request path. Entries are dispatched to a small
// worker pool; a journal fault never fails the booking itself.
package journal

import (
	"context"
	"log"
	"time"

	"travel-booking-backend/internal/model"
)

// Entry describes one completed booking operation.
type Entry struct {
	Action    string
	BookingID string
	Date      string
	Seat      string
}

// Recorder persists journal entries.
type Recorder interface {
	AppendEvent(ctx context.Context, ev *model.BookingEvent) error
}

// WorkerPool manages a pool of workers writing booking events.
type WorkerPool struct {
	size     int
	jobs     chan Entry
	recorder Recorder
	now      func() time.Time
}

// NewWorkerPool creates a worker pool with the given number of workers and
// queue capacity.
func NewWorkerPool(size, queueSize int, r Recorder) *WorkerPool {
	return &WorkerPool{
		size:     size,
		jobs:     make(chan Entry, queueSize),
		recorder: r,
		now:      time.Now,
	}
}

// Start launches the worker goroutines. They run until ctx is cancelled.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	for {
		select {
		case entry := <-wp.jobs:
			wp.record(ctx, entry)
		case <-ctx.Done():
			log.Printf("journal worker %d shutting down", id)
			return
		}
	}
}

// Dispatch queues an entry for recording. When the queue is full the entry
// is dropped with a log line instead of blocking the request handler.
func (wp *WorkerPool) Dispatch(entry Entry) {
	select {
	case wp.jobs <- entry:
	default:
		log.Printf("journal queue full, dropping %s event for %s", entry.Action, entry.BookingID)
	}
}

// Jobs returns the jobs channel for testing.
func (wp *WorkerPool) Jobs() chan Entry {
	return wp.jobs
}

func (wp *WorkerPool) record(ctx context.Context, entry Entry) {
	ev := &model.BookingEvent{
		Action:     entry.Action,
		BookingID:  entry.BookingID,
		Date:       entry.Date,
		Seat:       entry.Seat,
		RecordedAt: wp.now(),
	}
	if err := wp.recorder.AppendEvent(ctx, ev); err != nil {
		log.Printf("failed to record %s event for %s: %v", entry.Action, entry.BookingID, err)
	}
}

package feed

import (
	"sync"

	"github.com/ogulcanaydogan/smartstock/pkg/model"
)

// DefaultCapacity is the number of alerts kept for display.
const DefaultCapacity = 10

// Buffer keeps the most recent alerts, newest first, and counts every alert pushed.
type Buffer struct {
	mu       sync.RWMutex
	events   []model.AlertEvent
	capacity int
	count    int64
}

// New creates a buffer holding at most capacity events.
// A non-positive capacity uses DefaultCapacity.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		events:   make([]model.AlertEvent, 0, capacity),
		capacity: capacity,
	}
}

// Push prepends an event, drops anything past capacity, and bumps the counter.
func (b *Buffer) Push(event model.AlertEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(b.events)
	if n < b.capacity {
		b.events = append(b.events, model.AlertEvent{})
		n++
	}
	copy(b.events[1:n], b.events[:n-1])
	b.events[0] = event
	b.count++
}

// Reset empties the feed and zeroes the counter.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.events = b.events[:0]
	b.count = 0
}

// Snapshot returns a copy of the feed, newest first.
func (b *Buffer) Snapshot() []model.AlertEvent {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]model.AlertEvent, len(b.events))
	copy(out, b.events)
	return out
}

// Count returns how many events have been pushed since the last reset.
func (b *Buffer) Count() int64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}

// Len returns the number of events currently held.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.events)
}

// Capacity returns the maximum number of events held.
func (b *Buffer) Capacity() int { return b.capacity }

// View returns a copy of the feed together with the counter, read under one lock.
func (b *Buffer) View() ([]model.AlertEvent, int64) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]model.AlertEvent, len(b.events))
	copy(out, b.events)
	return out, b.count
}

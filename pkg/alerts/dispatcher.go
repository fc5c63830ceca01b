package alerts

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ogulcanaydogan/smartstock/pkg/model"
)

const defaultQueueSize = 64

// Dispatcher fans notifications out to notifiers from a single background goroutine.
// Notify never blocks: when the queue is full the notification is dropped and logged.
type Dispatcher struct {
	notifiers []Notifier
	timeout   time.Duration
	logger    *slog.Logger

	mu     sync.Mutex
	closed bool
	queue  chan model.Notification
	done   chan struct{}
}

// NewDispatcher starts a dispatcher. A non-positive timeout defaults to 10s.
func NewDispatcher(notifiers []Notifier, timeout time.Duration, logger *slog.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	d := &Dispatcher{
		notifiers: notifiers,
		timeout:   timeout,
		logger:    logger,
		queue:     make(chan model.Notification, defaultQueueSize),
		done:      make(chan struct{}),
	}
	go d.loop()
	return d
}

// Notify queues n for delivery.
func (d *Dispatcher) Notify(n model.Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed || len(d.notifiers) == 0 {
		return
	}

	select {
	case d.queue <- n:
	default:
		d.logger.Warn("notification queue full, dropping", "title", n.Title, "event_id", n.EventID)
	}
}

// Close stops accepting notifications and waits for queued ones to be sent.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		<-d.done
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}

func (d *Dispatcher) loop() {
	defer close(d.done)
	for n := range d.queue {
		d.send(n)
	}
}

func (d *Dispatcher) send(n model.Notification) {
	for _, notifier := range d.notifiers {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		if err := notifier.Send(ctx, n); err != nil {
			d.logger.Error("send notification failed",
				"notifier", notifier.Name(),
				"title", n.Title,
				"event_id", n.EventID,
				"error", err,
			)
		}
		cancel()
	}
}

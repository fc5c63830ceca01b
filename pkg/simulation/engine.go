package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ogulcanaydogan/smartstock/pkg/alerts"
	"github.com/ogulcanaydogan/smartstock/pkg/model"
)

// DefaultInterval is the time between generated alerts.
const DefaultInterval = 10 * time.Second

// TickerFunc starts a repeating ticker and returns its channel and a stop function.
type TickerFunc func(d time.Duration) (<-chan time.Time, func())

func newTimeTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithTicker replaces the wall-clock ticker.
func WithTicker(fn TickerFunc) EngineOption {
	return func(e *Engine) { e.newTicker = fn }
}

// WithStatusSink announces every start and stop on sink.
func WithStatusSink(sink alerts.Sink) EngineOption {
	return func(e *Engine) { e.statusSink = sink }
}

// Status is a point-in-time view of the engine.
type Status struct {
	Active       bool   `json:"active"`
	Interval     string `json:"interval"`
	Generated    int64  `json:"generated"`
	FeedCapacity int    `json:"feed_capacity"`
}

// Engine drives a Generator on a fixed interval while active.
// Each Start opens a new activation session with its own ticker; Stop cancels
// exactly that ticker, and ticks from a stale session are ignored.
type Engine struct {
	gen        *Generator
	interval   time.Duration
	newTicker  TickerFunc
	statusSink alerts.Sink
	logger     *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	active  bool
	closed  bool
	session uint64
	stop    func()
}

// NewEngine creates an inactive engine. A non-positive interval uses DefaultInterval.
func NewEngine(gen *Generator, interval time.Duration, logger *slog.Logger, opts ...EngineOption) *Engine {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	e := &Engine{
		gen:       gen,
		interval:  interval,
		newTicker: newTimeTicker,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start activates the engine. The first tick fires one full interval from now.
// Starting an active engine is a no-op.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active || e.closed {
		return
	}

	e.session++
	session := e.session
	ticks, stopTicker := e.newTicker(e.interval)
	done := make(chan struct{})

	e.active = true
	e.stop = func() {
		stopTicker()
		close(done)
	}

	e.wg.Add(1)
	go e.run(session, ticks, done)

	e.logger.Info("simulation started", "session", session, "interval", e.interval)
	e.announce(model.Notification{
		Title:    "🕹 Simulation Started",
		Message:  fmt.Sprintf("Alert simulation is now active - new alerts every %s", describeInterval(e.interval)),
		Severity: model.SeverityDefault,
	})
}

// Stop deactivates the engine. No tick runs after Stop returns; the feed is kept.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
}

func (e *Engine) stopLocked() {
	if !e.active {
		return
	}
	e.active = false
	e.stop()
	e.stop = nil
	e.logger.Info("simulation stopped", "session", e.session, "generated", e.gen.buffer.Count())
	e.announce(model.Notification{
		Title:    "⏸ Simulation Paused",
		Message:  "Alert simulation has been paused",
		Severity: model.SeverityDestructive,
	})
}

// describeInterval spells whole seconds out ("10 seconds") and falls back to
// the duration string otherwise.
func describeInterval(d time.Duration) string {
	if d%time.Second != 0 {
		return d.String()
	}
	switch n := int64(d / time.Second); n {
	case 1:
		return "1 second"
	default:
		return fmt.Sprintf("%d seconds", n)
	}
}

func (e *Engine) announce(n model.Notification) {
	if e.statusSink == nil {
		return
	}
	n.Timestamp = time.Now().UTC()
	e.statusSink.Notify(n)
}

// SetActive starts or stops the engine.
func (e *Engine) SetActive(active bool) {
	if active {
		e.Start()
		return
	}
	e.Stop()
}

// Active reports whether the engine is generating alerts.
func (e *Engine) Active() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// Interval returns the tick period.
func (e *Engine) Interval() time.Duration { return e.interval }

// Status returns the activation state and counter.
func (e *Engine) Status() Status {
	return Status{
		Active:       e.Active(),
		Interval:     e.interval.String(),
		Generated:    e.gen.buffer.Count(),
		FeedCapacity: e.gen.buffer.Capacity(),
	}
}

// Reset stops the engine, empties the feed, zeroes the counter and clears the
// journal when the recorder supports it.
func (e *Engine) Reset(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopLocked()
	e.gen.buffer.Reset()

	if c, ok := e.gen.recorder.(interface{ Clear(context.Context) error }); ok {
		if err := c.Clear(ctx); err != nil {
			return fmt.Errorf("clear journal: %w", err)
		}
	}

	e.logger.Info("simulation reset")
	return nil
}

// Close stops the engine and waits for its goroutine to exit.
func (e *Engine) Close() {
	e.mu.Lock()
	e.stopLocked()
	e.closed = true
	e.mu.Unlock()

	e.cancel()
	e.wg.Wait()
}

func (e *Engine) run(session uint64, ticks <-chan time.Time, done <-chan struct{}) {
	defer e.wg.Done()
	for {
		select {
		case <-done:
			return
		case <-ticks:
			e.tick(session)
		}
	}
}

// tick holds the engine lock so Stop cannot return while a tick is in flight.
func (e *Engine) tick(session uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.active || e.session != session {
		return
	}
	e.gen.Tick(e.ctx)
}

package simulation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ogulcanaydogan/smartstock/pkg/alerts"
	"github.com/ogulcanaydogan/smartstock/pkg/catalog"
	"github.com/ogulcanaydogan/smartstock/pkg/feed"
	"github.com/ogulcanaydogan/smartstock/pkg/model"
)

// ErrEmptyCatalog is a configuration error: there is nothing to sample.
var ErrEmptyCatalog = errors.New("catalog has no items")

// Rand is the random source used for sampling. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Recorder journals generated alerts.
type Recorder interface {
	RecordAlert(ctx context.Context, event *model.AlertEvent) error
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source.
func WithRand(r Rand) Option {
	return func(g *Generator) { g.rand = r }
}

// WithClock sets the time source for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithIDFunc sets the event ID source.
func WithIDFunc(newID func() string) Option {
	return func(g *Generator) { g.newID = newID }
}

// WithRecorder journals every event. Journal errors are logged, not returned.
func WithRecorder(r Recorder) Option {
	return func(g *Generator) { g.recorder = r }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// NewRand returns a PCG source. A zero seed picks one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generator synthesizes alert events by sampling a catalog.
type Generator struct {
	catalog  *catalog.Catalog
	buffer   *feed.Buffer
	sink     alerts.Sink
	recorder Recorder
	logger   *slog.Logger

	mu    sync.Mutex
	rand  Rand
	now   func() time.Time
	newID func() string
}

// NewGenerator creates a generator. It fails with ErrEmptyCatalog when there
// is nothing to sample.
func NewGenerator(c *catalog.Catalog, buffer *feed.Buffer, sink alerts.Sink, opts ...Option) (*Generator, error) {
	if c == nil || c.Len() == 0 {
		return nil, fmt.Errorf("new generator: %w", ErrEmptyCatalog)
	}
	if buffer == nil {
		return nil, fmt.Errorf("new generator: feed buffer is required")
	}
	if sink == nil {
		return nil, fmt.Errorf("new generator: notification sink is required")
	}

	g := &Generator{
		catalog: c,
		buffer:  buffer,
		sink:    sink,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     func() time.Time { return time.Now().UTC() },
		newID:   func() string { return uuid.Must(uuid.NewV7()).String() },
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rand == nil {
		g.rand = NewRand(0)
	}
	return g, nil
}

// Tick generates one alert, pushes it into the feed, journals it and hands a
// notification to the sink. Concurrent calls are serialized.
func (g *Generator) Tick(ctx context.Context) model.AlertEvent {
	g.mu.Lock()
	defer g.mu.Unlock()

	item := g.catalog.At(g.rand.IntN(g.catalog.Len()))
	kind := model.AlertKinds[g.rand.IntN(len(model.AlertKinds))]

	event := model.AlertEvent{
		ID:        g.newID(),
		Timestamp: g.now(),
		ItemName:  item.Name,
		Message:   kind.Message(item),
		Kind:      kind,
	}

	g.buffer.Push(event)

	if g.recorder != nil {
		record := event
		if err := g.recorder.RecordAlert(ctx, &record); err != nil {
			g.logger.Error("journal alert failed", "event_id", event.ID, "error", err)
		}
	}

	g.logger.Debug("alert generated",
		"event_id", event.ID,
		"kind", event.Kind,
		"item", event.ItemName,
	)

	g.sink.Notify(alerts.NotificationFor(event))
	return event
}

// Buffer returns the feed the generator writes to.
func (g *Generator) Buffer() *feed.Buffer { return g.buffer }

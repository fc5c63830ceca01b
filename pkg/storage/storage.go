package storage

import (
	"context"
	"errors"

	"github.com/ogulcanaydogan/smartstock/pkg/model"
)

// ErrNotFound is returned when a journaled alert does not exist.
var ErrNotFound = errors.New("not found")

// Journal defines the session-scoped record of generated alerts.
type Journal interface {
	// RecordAlert persists a single alert event.
	RecordAlert(ctx context.Context, event *model.AlertEvent) error

	// GetAlert retrieves an alert by ID.
	GetAlert(ctx context.Context, id string) (*model.AlertEvent, error)

	// QueryAlerts retrieves alerts matching the filter, newest first.
	QueryAlerts(ctx context.Context, filter model.AlertFilter) ([]model.AlertEvent, error)

	// AggregateAlerts returns alert counts grouped by kind and item.
	AggregateAlerts(ctx context.Context, filter model.AlertFilter) (*model.AlertSummary, error)

	// Clear removes every journaled alert.
	Clear(ctx context.Context) error

	// Close releases resources.
	Close() error
}

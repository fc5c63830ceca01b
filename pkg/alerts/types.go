package alerts

import (
	"context"

	"github.com/ogulcanaydogan/smartstock/pkg/model"
)

// Notifier sends notifications to external systems.
type Notifier interface {
	// Name returns the notifier identifier.
	Name() string

	// Send delivers a notification. Implementations must be safe for concurrent use.
	Send(ctx context.Context, n model.Notification) error
}

// Sink accepts notifications without blocking the caller and without reporting back.
type Sink interface {
	Notify(n model.Notification)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(n model.Notification)

func (f SinkFunc) Notify(n model.Notification) { f(n) }

// NotificationFor builds the notification shown for a generated alert.
func NotificationFor(event model.AlertEvent) model.Notification {
	return model.Notification{
		Title:     event.Kind.Icon() + " " + event.Kind.Label(),
		Message:   event.Message,
		Severity:  event.Kind.Severity(),
		Kind:      event.Kind,
		EventID:   event.ID,
		Timestamp: event.Timestamp,
	}
}

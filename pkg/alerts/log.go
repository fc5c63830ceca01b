package alerts

import (
	"context"
	"log/slog"

	"github.com/ogulcanaydogan/smartstock/pkg/model"
)

// LogNotifier writes notifications to a structured logger.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that logs every notification.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Name() string { return "log" }

func (l *LogNotifier) Send(ctx context.Context, n model.Notification) error {
	level := slog.LevelInfo
	if n.Severity == model.SeverityDestructive {
		level = slog.LevelWarn
	}
	l.logger.Log(ctx, level, n.Title,
		"message", n.Message,
		"severity", n.Severity,
		"kind", n.Kind,
		"event_id", n.EventID,
	)
	return nil
}

package tasks_test

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/ogulcanaydogan/smartstock/pkg/alerts"
	"github.com/ogulcanaydogan/smartstock/pkg/catalog"
	"github.com/ogulcanaydogan/smartstock/pkg/model"
	"github.com/ogulcanaydogan/smartstock/pkg/tasks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu  sync.Mutex
	got []model.Notification
}

func (s *recordingSink) Notify(n model.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, n)
}

func newTestBoard(sink alerts.Sink) *tasks.Board {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return tasks.NewBoard(catalog.SampleTasks(), sink, logger)
}

func ids(list []model.RestockTask) []string {
	out := make([]string, len(list))
	for i, t := range list {
		out[i] = t.ID
	}
	return out
}

func TestBoard_ListOrder(t *testing.T) {
	b := newTestBoard(nil)

	// pending urgent (3, 4), pending medium (5), in-progress (2), completed (1)
	assert.Equal(t, []string{"3", "4", "5", "2", "1"}, ids(b.List()))
}

func TestBoard_ListIsCopy(t *testing.T) {
	b := newTestBoard(nil)

	list := b.List()
	list[0].Status = model.TaskCompleted

	got, err := b.Get(list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskPending, got.Status)
}

func TestBoard_Update(t *testing.T) {
	tests := []struct {
		status  model.TaskStatus
		title   string
		message string
	}{
		{model.TaskInProgress, "📋 Task Updated", "Started restocking Rice 5kg"},
		{model.TaskCompleted, "🎉 Task Completed!", "✅ Completed restocking Rice 5kg!"},
		{model.TaskPending, "📋 Task Updated", "Reset Rice 5kg to pending"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			sink := &recordingSink{}
			b := newTestBoard(sink)

			task, err := b.Update(context.Background(), "4", tt.status)
			require.NoError(t, err)
			assert.Equal(t, tt.status, task.Status)

			require.Len(t, sink.got, 1)
			assert.Equal(t, tt.title, sink.got[0].Title)
			assert.Equal(t, tt.message, sink.got[0].Message)
			assert.Equal(t, model.SeverityDefault, sink.got[0].Severity)
		})
	}
}

func TestBoard_UpdateReorders(t *testing.T) {
	b := newTestBoard(nil)

	_, err := b.Update(context.Background(), "3", model.TaskCompleted)
	require.NoError(t, err)

	assert.Equal(t, []string{"4", "5", "2", "1", "3"}, ids(b.List()))
}

func TestBoard_UpdateErrors(t *testing.T) {
	sink := &recordingSink{}
	b := newTestBoard(sink)

	_, err := b.Update(context.Background(), "99", model.TaskCompleted)
	assert.ErrorIs(t, err, tasks.ErrTaskNotFound)

	_, err = b.Update(context.Background(), "1", "archived")
	assert.ErrorIs(t, err, tasks.ErrInvalidStatus)

	assert.Empty(t, sink.got)
}

func TestBoard_Summary(t *testing.T) {
	b := newTestBoard(nil)

	s := b.Summary()
	assert.Equal(t, tasks.Summary{Pending: 3, InProgress: 1, Completed: 1, Total: 5}, s)

	_, err := b.Update(context.Background(), "5", model.TaskInProgress)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Summary().InProgress)
}

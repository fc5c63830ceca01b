package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/ogulcanaydogan/smartstock/pkg/alerts"
	"github.com/ogulcanaydogan/smartstock/pkg/model"
)

var (
	// ErrTaskNotFound is returned for an unknown task ID.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidStatus is returned for a status outside pending, in-progress and completed.
	ErrInvalidStatus = errors.New("invalid task status")
)

// Summary counts tasks per status.
type Summary struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Total      int `json:"total"`
}

// Board holds the floor staff restock tasks.
type Board struct {
	mu     sync.RWMutex
	tasks  []model.RestockTask
	sink   alerts.Sink
	logger *slog.Logger
}

// NewBoard creates a board from tasks. The slice is copied. A nil sink disables notifications.
func NewBoard(tasks []model.RestockTask, sink alerts.Sink, logger *slog.Logger) *Board {
	b := &Board{
		tasks:  make([]model.RestockTask, len(tasks)),
		sink:   sink,
		logger: logger,
	}
	copy(b.tasks, tasks)
	return b
}

// List returns tasks ordered pending, in-progress, completed, then by urgency.
func (b *Board) List() []model.RestockTask {
	b.mu.RLock()
	out := make([]model.RestockTask, len(b.tasks))
	copy(out, b.tasks)
	b.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if ri, rj := out[i].Status.Rank(), out[j].Status.Rank(); ri != rj {
			return ri < rj
		}
		return out[i].UrgencyLevel.Rank() < out[j].UrgencyLevel.Rank()
	})
	return out
}

// Get returns a task by ID.
func (b *Board) Get(id string) (model.RestockTask, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, t := range b.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.RestockTask{}, fmt.Errorf("task %q: %w", id, ErrTaskNotFound)
}

// Update sets the status of a task and announces the change.
func (b *Board) Update(ctx context.Context, id string, status model.TaskStatus) (model.RestockTask, error) {
	if !status.Valid() {
		return model.RestockTask{}, fmt.Errorf("status %q: %w", status, ErrInvalidStatus)
	}

	b.mu.Lock()
	idx := -1
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		b.mu.Unlock()
		return model.RestockTask{}, fmt.Errorf("task %q: %w", id, ErrTaskNotFound)
	}
	previous := b.tasks[idx].Status
	b.tasks[idx].Status = status
	task := b.tasks[idx]
	b.mu.Unlock()

	b.logger.InfoContext(ctx, "task updated",
		"task", task.ID,
		"item", task.ItemName,
		"from", previous,
		"to", status,
	)

	if b.sink != nil {
		b.sink.Notify(notificationFor(task))
	}
	return task, nil
}

// Summary counts tasks by status.
func (b *Board) Summary() Summary {
	b.mu.RLock()
	defer b.mu.RUnlock()

	s := Summary{Total: len(b.tasks)}
	for _, t := range b.tasks {
		switch t.Status {
		case model.TaskPending:
			s.Pending++
		case model.TaskInProgress:
			s.InProgress++
		case model.TaskCompleted:
			s.Completed++
		}
	}
	return s
}

func notificationFor(task model.RestockTask) model.Notification {
	n := model.Notification{
		Title:     "📋 Task Updated",
		Severity:  model.SeverityDefault,
		Timestamp: time.Now().UTC(),
	}
	switch task.Status {
	case model.TaskInProgress:
		n.Message = fmt.Sprintf("Started restocking %s", task.ItemName)
	case model.TaskCompleted:
		n.Title = "🎉 Task Completed!"
		n.Message = fmt.Sprintf("✅ Completed restocking %s!", task.ItemName)
	case model.TaskPending:
		n.Message = fmt.Sprintf("Reset %s to pending", task.ItemName)
	}
	return n
}

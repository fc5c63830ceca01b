package catalog_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/ogulcanaydogan/smartstock/pkg/alerts"
	"github.com/ogulcanaydogan/smartstock/pkg/catalog"
	"github.com/ogulcanaydogan/smartstock/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRestocker(got *[]model.Notification) *catalog.Restocker {
	sink := alerts.SinkFunc(func(n model.Notification) {
		*got = append(*got, n)
	})
	return catalog.NewRestocker(catalog.Default(), sink, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRestockNotification(t *testing.T) {
	milk, _ := catalog.Default().Get("3")

	tests := []struct {
		name    string
		amount  int
		message string
	}{
		{"explicit amount", 40, "Restocking 40 Milk 1L units"},
		{"recommended", 0, "Restocking recommended amount of Milk 1L units"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := catalog.RestockNotification(milk, tt.amount)
			assert.Equal(t, "🎉 Restock Initiated", n.Title)
			assert.Equal(t, tt.message, n.Message)
			assert.Equal(t, model.SeverityDefault, n.Severity)
			assert.False(t, n.Timestamp.IsZero())
		})
	}
}

func TestRestocker_Restock(t *testing.T) {
	var got []model.Notification
	r := newTestRestocker(&got)

	order, err := r.Restock(context.Background(), "1", 50)
	require.NoError(t, err)
	assert.Equal(t, "1", order.ItemID)
	assert.Equal(t, "Rice 5kg", order.ItemName)
	assert.Equal(t, 50, order.Amount)
	assert.Equal(t, "Restocking 50 Rice 5kg units", order.Message)

	_, err = r.Restock(context.Background(), "4", 0)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Restocking 50 Rice 5kg units", got[0].Message)
	assert.Equal(t, "Restocking recommended amount of Bread units", got[1].Message)
}

func TestRestocker_Errors(t *testing.T) {
	var got []model.Notification
	r := newTestRestocker(&got)

	_, err := r.Restock(context.Background(), "missing", 10)
	assert.ErrorIs(t, err, catalog.ErrItemNotFound)

	_, err = r.Restock(context.Background(), "1", -5)
	assert.ErrorIs(t, err, catalog.ErrInvalidAmount)

	assert.Empty(t, got)
}

func TestRestocker_NilSink(t *testing.T) {
	r := catalog.NewRestocker(catalog.Default(), nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := r.Restock(context.Background(), "2", 0)
	assert.NoError(t, err)
}

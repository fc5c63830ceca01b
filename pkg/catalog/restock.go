package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/ogulcanaydogan/smartstock/pkg/alerts"
	"github.com/ogulcanaydogan/smartstock/pkg/model"
)

var (
	// ErrItemNotFound is returned for an unknown item ID.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidAmount is returned for a negative restock amount.
	ErrInvalidAmount = errors.New("invalid restock amount")
)

// RestockOrder is the acknowledgement of a manager restock request.
// Amount is zero when the recommended quantity was requested.
type RestockOrder struct {
	ItemID    string    `json:"item_id"`
	ItemName  string    `json:"item_name"`
	Amount    int       `json:"amount,omitempty"`
	Message   string    `json:"message"`
	Requested time.Time `json:"requested_at"`
}

// Restocker turns manager restock requests into notifications.
// Stock levels in the catalog are not changed.
type Restocker struct {
	catalog *Catalog
	sink    alerts.Sink
	logger  *slog.Logger
}

// NewRestocker creates a Restocker. A nil sink disables notifications.
func NewRestocker(c *Catalog, sink alerts.Sink, logger *slog.Logger) *Restocker {
	return &Restocker{catalog: c, sink: sink, logger: logger}
}

// Restock requests amount units of the item. Zero means the recommended amount.
func (r *Restocker) Restock(ctx context.Context, id string, amount int) (RestockOrder, error) {
	if amount < 0 {
		return RestockOrder{}, fmt.Errorf("amount %d: %w", amount, ErrInvalidAmount)
	}
	item, ok := r.catalog.Get(id)
	if !ok {
		return RestockOrder{}, fmt.Errorf("item %q: %w", id, ErrItemNotFound)
	}

	n := RestockNotification(item, amount)
	order := RestockOrder{
		ItemID:    item.ID,
		ItemName:  item.Name,
		Amount:    amount,
		Message:   n.Message,
		Requested: n.Timestamp,
	}

	r.logger.InfoContext(ctx, "restock requested", "item", item.ID, "name", item.Name, "amount", amount)

	if r.sink != nil {
		r.sink.Notify(n)
	}
	return order, nil
}

// RestockNotification builds the "Restock Initiated" notice for item.
func RestockNotification(item model.InventoryItem, amount int) model.Notification {
	qty := "recommended amount of"
	if amount > 0 {
		qty = strconv.Itoa(amount)
	}
	return model.Notification{
		Title:     "🎉 Restock Initiated",
		Message:   fmt.Sprintf("Restocking %s %s units", qty, item.Name),
		Severity:  model.SeverityDefault,
		Timestamp: time.Now().UTC(),
	}
}

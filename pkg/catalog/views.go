package catalog

import (
	"fmt"
	"sort"

	"github.com/ogulcanaydogan/smartstock/pkg/model"
	"github.com/shopspring/decimal"
)

// Stock status labels shown on item cards.
const (
	StatusCritical = "Critical"
	StatusLow      = "Low Stock"
	StatusInStock  = "In Stock"
)

var half = decimal.NewFromFloat(0.5)

// StockStatus classifies an item's stock against its reorder threshold.
func StockStatus(item model.InventoryItem) string {
	switch {
	case item.CurrentStock.LessThanOrEqual(item.ReorderThreshold.Mul(half)):
		return StatusCritical
	case item.CurrentStock.LessThanOrEqual(item.ReorderThreshold):
		return StatusLow
	default:
		return StatusInStock
	}
}

// BelowThreshold reports whether stock is at or under the reorder threshold.
func BelowThreshold(item model.InventoryItem) bool {
	return item.CurrentStock.LessThanOrEqual(item.ReorderThreshold)
}

// NeedsAttention returns urgent or under-threshold items in catalog order.
// A limit of zero or less returns all of them.
func (c *Catalog) NeedsAttention(limit int) []model.InventoryItem {
	out := c.filter(func(item model.InventoryItem) bool {
		return item.UrgencyLevel == model.UrgencyUrgent || BelowThreshold(item)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// RestockSuggestions returns items that carry a suggested restock quantity.
func (c *Catalog) RestockSuggestions() []model.InventoryItem {
	return c.filter(func(item model.InventoryItem) bool {
		return item.SuggestedRestock != nil && *item.SuggestedRestock > 0
	})
}

// Deliveries returns items with a tracked shipment: pending ones by ETA, arrived ones last.
func (c *Catalog) Deliveries() []model.InventoryItem {
	out := c.filter(func(item model.InventoryItem) bool {
		return item.ETA != nil && item.DeliveryStatus != ""
	})
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		aArrived := a.DeliveryStatus == model.DeliveryArrived
		bArrived := b.DeliveryStatus == model.DeliveryArrived
		if aArrived != bArrived {
			return bArrived
		}
		return *a.ETA < *b.ETA
	})
	return out
}

// ETADisplay formats the delivery column text for an item.
func ETADisplay(item model.InventoryItem) string {
	if item.DeliveryStatus == model.DeliveryArrived {
		return "Arrived"
	}
	if item.ETA == nil || *item.ETA == 0 {
		return "Due now"
	}
	return fmt.Sprintf("%d mins", *item.ETA)
}

// DemandForecast returns items with footfall and run-out predictions, soonest first.
func (c *Catalog) DemandForecast() []model.InventoryItem {
	out := c.filter(func(item model.InventoryItem) bool {
		return item.FootfallPerHour != nil && *item.FootfallPerHour > 0 &&
			item.PredictedOutIn != nil && *item.PredictedOutIn > 0
	})
	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].PredictedOutIn < *out[j].PredictedOutIn
	})
	return out
}

package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// UrgencyLevel ranks how soon an item needs attention.
type UrgencyLevel string

const (
	UrgencyUrgent UrgencyLevel = "urgent"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyLow    UrgencyLevel = "low"
)

// Rank orders urgency levels, most urgent first.
func (u UrgencyLevel) Rank() int {
	switch u {
	case UrgencyUrgent:
		return 0
	case UrgencyMedium:
		return 1
	case UrgencyLow:
		return 2
	default:
		return 3
	}
}

// SalesTrend describes the recent direction of sales for an item.
type SalesTrend string

const (
	TrendRising  SalesTrend = "rising"
	TrendFalling SalesTrend = "falling"
	TrendStable  SalesTrend = "stable"
)

// DeliveryStatus tracks an inbound shipment.
type DeliveryStatus string

const (
	DeliveryEnRoute DeliveryStatus = "en-route"
	DeliveryArrived DeliveryStatus = "arrived"
	DeliveryDelayed DeliveryStatus = "delayed"
)

// InventoryItem is a single catalog record.
type InventoryItem struct {
	ID               string          `json:"id" yaml:"id"`
	Name             string          `json:"name" yaml:"name"`
	Department       string          `json:"department" yaml:"department"`
	CurrentStock     decimal.Decimal `json:"current_stock" yaml:"current_stock"`
	ReorderThreshold decimal.Decimal `json:"reorder_threshold" yaml:"reorder_threshold"`
	UrgencyLevel     UrgencyLevel    `json:"urgency_level" yaml:"urgency_level"`
	FootfallPerHour  *int            `json:"footfall_per_hour,omitempty" yaml:"footfall_per_hour,omitempty"`
	SalesTrend       SalesTrend      `json:"sales_trend" yaml:"sales_trend"`
	PromoEvent       bool            `json:"promo_event" yaml:"promo_event"`
	PredictedOutIn   *int            `json:"predicted_out_in,omitempty" yaml:"predicted_out_in,omitempty"` // minutes
	SuggestedRestock *int            `json:"suggested_restock,omitempty" yaml:"suggested_restock,omitempty"`
	ETA              *int            `json:"eta,omitempty" yaml:"eta,omitempty"` // minutes
	WarehouseSource  string          `json:"warehouse_source,omitempty" yaml:"warehouse_source,omitempty"`
	DeliveryStatus   DeliveryStatus  `json:"delivery_status,omitempty" yaml:"delivery_status,omitempty"`
}

// AlertKind is the closed set of synthetic alert categories.
type AlertKind string

const (
	KindLowStock        AlertKind = "low-stock"
	KindRestockNeeded   AlertKind = "restock-needed"
	KindDeliveryArrived AlertKind = "delivery-arrived"
)

// AlertKinds lists every kind in a fixed order. Random sampling indexes into it.
var AlertKinds = [...]AlertKind{KindLowStock, KindRestockNeeded, KindDeliveryArrived}

// Valid reports whether k is one of the known kinds.
func (k AlertKind) Valid() bool {
	switch k {
	case KindLowStock, KindRestockNeeded, KindDeliveryArrived:
		return true
	}
	return false
}

// Message renders the alert text for the given item.
func (k AlertKind) Message(item InventoryItem) string {
	switch k {
	case KindLowStock:
		return fmt.Sprintf("%s went below threshold!", item.Name)
	case KindRestockNeeded:
		return fmt.Sprintf("Urgent restock needed for %s", item.Name)
	case KindDeliveryArrived:
		return fmt.Sprintf("Delivery arrived: %s from %s", item.Name, item.WarehouseSource)
	default:
		return item.Name
	}
}

// Label is the short human title of the kind.
func (k AlertKind) Label() string {
	switch k {
	case KindLowStock:
		return "Low Stock Alert"
	case KindRestockNeeded:
		return "Restock Needed"
	case KindDeliveryArrived:
		return "Delivery Arrived"
	default:
		return string(k)
	}
}

// Icon is the marker shown next to the label.
func (k AlertKind) Icon() string {
	switch k {
	case KindLowStock:
		return "📢"
	case KindRestockNeeded:
		return "⚠️"
	case KindDeliveryArrived:
		return "✅"
	default:
		return ""
	}
}

// Severity maps a kind to its notification emphasis.
func (k AlertKind) Severity() Severity {
	if k == KindDeliveryArrived {
		return SeverityDefault
	}
	return SeverityDestructive
}

// Severity is the emphasis a sink should give a notification.
type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

// AlertEvent is one generated alert. It is never mutated after creation.
type AlertEvent struct {
	ID        string    `json:"id" db:"id"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	ItemName  string    `json:"item_name" db:"item_name"`
	Message   string    `json:"message" db:"message"`
	Kind      AlertKind `json:"kind" db:"kind"`
}

// Notification is what a sink receives for each event.
type Notification struct {
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	Kind      AlertKind `json:"kind,omitempty"`
	EventID   string    `json:"event_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// AlertFilter controls which journaled alerts are returned.
type AlertFilter struct {
	Kind      AlertKind `json:"kind,omitempty"`
	ItemName  string    `json:"item_name,omitempty"`
	StartTime time.Time `json:"start_time,omitempty"`
	EndTime   time.Time `json:"end_time,omitempty"`
	Limit     int       `json:"limit,omitempty"`
}

// AlertSummary holds aggregated journal statistics.
type AlertSummary struct {
	Total  int64               `json:"total"`
	ByKind map[AlertKind]int64 `json:"by_kind,omitempty"`
	ByItem map[string]int64    `json:"by_item,omitempty"`
	First  *time.Time          `json:"first,omitempty"`
	Last   *time.Time          `json:"last,omitempty"`
}

// TaskStatus is the progress of a restock task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

// Valid reports whether s is a known status.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// Rank orders statuses for the floor staff list: pending first.
func (s TaskStatus) Rank() int {
	switch s {
	case TaskPending:
		return 0
	case TaskInProgress:
		return 1
	case TaskCompleted:
		return 2
	default:
		return 3
	}
}

// RestockTask is a shelf refill job for floor staff.
type RestockTask struct {
	ID           string       `json:"id" yaml:"id"`
	ItemName     string       `json:"item_name" yaml:"item_name"`
	Aisle        string       `json:"aisle" yaml:"aisle"`
	UnitsNeeded  int          `json:"units_needed" yaml:"units_needed"`
	Status       TaskStatus   `json:"status" yaml:"status"`
	UrgencyLevel UrgencyLevel `json:"urgency_level" yaml:"urgency_level"`
}

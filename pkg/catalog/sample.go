package catalog

import (
	"github.com/ogulcanaydogan/smartstock/pkg/model"
	"github.com/shopspring/decimal"
)

func intp(v int) *int { return &v }

func units(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// sampleItems is the built-in store dataset.
var sampleItems = []model.InventoryItem{
	{
		ID: "1", Name: "Rice 5kg", Department: "Groceries",
		CurrentStock: units(10), ReorderThreshold: units(15),
		UrgencyLevel: model.UrgencyUrgent, FootfallPerHour: intp(85),
		SalesTrend: model.TrendRising, PredictedOutIn: intp(35),
		SuggestedRestock: intp(50), ETA: intp(23),
		WarehouseSource: "Warehouse A", DeliveryStatus: model.DeliveryEnRoute,
	},
	{
		ID: "2", Name: "Action Doll", Department: "Toys",
		CurrentStock: units(25), ReorderThreshold: units(20),
		UrgencyLevel: model.UrgencyMedium, FootfallPerHour: intp(45),
		SalesTrend: model.TrendStable, PromoEvent: true, PredictedOutIn: intp(120),
		SuggestedRestock: intp(30), ETA: intp(55),
		WarehouseSource: "Warehouse C", DeliveryStatus: model.DeliveryArrived,
	},
	{
		ID: "3", Name: "Milk 1L", Department: "Dairy",
		CurrentStock: units(8), ReorderThreshold: units(12),
		UrgencyLevel: model.UrgencyUrgent, FootfallPerHour: intp(130),
		SalesTrend: model.TrendRising, PromoEvent: true, PredictedOutIn: intp(35),
		SuggestedRestock: intp(40), ETA: intp(15),
		WarehouseSource: "Warehouse B", DeliveryStatus: model.DeliveryEnRoute,
	},
	{
		ID: "4", Name: "Bread", Department: "Bakery",
		CurrentStock: units(18), ReorderThreshold: units(20),
		UrgencyLevel: model.UrgencyMedium, FootfallPerHour: intp(95),
		SalesTrend: model.TrendFalling, PredictedOutIn: intp(70),
		SuggestedRestock: intp(25), ETA: intp(40),
		WarehouseSource: "Warehouse A", DeliveryStatus: model.DeliveryEnRoute,
	},
	{
		ID: "5", Name: "Shampoo 200ml", Department: "Personal Care",
		CurrentStock: units(35), ReorderThreshold: units(25),
		UrgencyLevel: model.UrgencyLow, FootfallPerHour: intp(60),
		SalesTrend: model.TrendStable, PredictedOutIn: intp(180),
		SuggestedRestock: intp(20), ETA: intp(0),
		WarehouseSource: "Warehouse C", DeliveryStatus: model.DeliveryArrived,
	},
	{
		ID: "6", Name: "Sugar 1kg", Department: "Groceries",
		CurrentStock: units(5), ReorderThreshold: units(10),
		UrgencyLevel: model.UrgencyUrgent, FootfallPerHour: intp(70),
		SalesTrend: model.TrendRising, PredictedOutIn: intp(25),
		SuggestedRestock: intp(35), ETA: intp(23),
		WarehouseSource: "Warehouse A", DeliveryStatus: model.DeliveryEnRoute,
	},
	{
		ID: "7", Name: "Noodles Pack", Department: "Groceries",
		CurrentStock: units(12), ReorderThreshold: units(15),
		UrgencyLevel: model.UrgencyMedium, FootfallPerHour: intp(85),
		SalesTrend: model.TrendStable, PredictedOutIn: intp(90),
		SuggestedRestock: intp(25), ETA: intp(65),
		WarehouseSource: "Warehouse B", DeliveryStatus: model.DeliveryEnRoute,
	},
	{
		ID: "8", Name: "Cooking Oil 1L", Department: "Groceries",
		CurrentStock: units(3), ReorderThreshold: units(8),
		UrgencyLevel: model.UrgencyUrgent, FootfallPerHour: intp(40),
		SalesTrend: model.TrendRising, PromoEvent: true, PredictedOutIn: intp(20),
		SuggestedRestock: intp(30), ETA: intp(35),
		WarehouseSource: "Warehouse A", DeliveryStatus: model.DeliveryEnRoute,
	},
}

// Default returns the built-in sample catalog.
func Default() *Catalog {
	c, err := New(sampleItems)
	if err != nil {
		panic("catalog: invalid sample data: " + err.Error())
	}
	return c
}

// SampleTasks returns the built-in floor staff restock tasks.
func SampleTasks() []model.RestockTask {
	return []model.RestockTask{
		{ID: "1", ItemName: "Milk 1L", Aisle: "Aisle 2", UnitsNeeded: 25, Status: model.TaskCompleted, UrgencyLevel: model.UrgencyUrgent},
		{ID: "2", ItemName: "Noodles Pack", Aisle: "Aisle 5", UnitsNeeded: 10, Status: model.TaskInProgress, UrgencyLevel: model.UrgencyMedium},
		{ID: "3", ItemName: "Cooking Oil 1L", Aisle: "Aisle 7", UnitsNeeded: 30, Status: model.TaskPending, UrgencyLevel: model.UrgencyUrgent},
		{ID: "4", ItemName: "Rice 5kg", Aisle: "Aisle 3", UnitsNeeded: 20, Status: model.TaskPending, UrgencyLevel: model.UrgencyUrgent},
		{ID: "5", ItemName: "Bread", Aisle: "Aisle 1", UnitsNeeded: 15, Status: model.TaskPending, UrgencyLevel: model.UrgencyMedium},
	}
}

package model_test

import (
	"testing"

	"github.com/ogulcanaydogan/smartstock/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestAlertKind_Message(t *testing.T) {
	item := model.InventoryItem{Name: "Milk 1L", WarehouseSource: "Warehouse B"}

	tests := []struct {
		kind model.AlertKind
		want string
	}{
		{model.KindLowStock, "Milk 1L went below threshold!"},
		{model.KindRestockNeeded, "Urgent restock needed for Milk 1L"},
		{model.KindDeliveryArrived, "Delivery arrived: Milk 1L from Warehouse B"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Message(item))
		})
	}
}

func TestAlertKind_Severity(t *testing.T) {
	assert.Equal(t, model.SeverityDestructive, model.KindLowStock.Severity())
	assert.Equal(t, model.SeverityDestructive, model.KindRestockNeeded.Severity())
	assert.Equal(t, model.SeverityDefault, model.KindDeliveryArrived.Severity())
}

func TestAlertKind_Valid(t *testing.T) {
	for _, k := range model.AlertKinds {
		assert.True(t, k.Valid(), k)
		assert.NotEmpty(t, k.Label())
		assert.NotEmpty(t, k.Icon())
	}
	assert.False(t, model.AlertKind("fire").Valid())
	assert.Len(t, model.AlertKinds, 3)
}

func TestTaskStatus_Rank(t *testing.T) {
	assert.Less(t, model.TaskPending.Rank(), model.TaskInProgress.Rank())
	assert.Less(t, model.TaskInProgress.Rank(), model.TaskCompleted.Rank())
	assert.False(t, model.TaskStatus("done").Valid())
}

func TestUrgencyLevel_Rank(t *testing.T) {
	assert.Less(t, model.UrgencyUrgent.Rank(), model.UrgencyMedium.Rank())
	assert.Less(t, model.UrgencyMedium.Rank(), model.UrgencyLow.Rank())
}

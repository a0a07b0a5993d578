package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BLEINATS/estetica-auto-api/internal/models"
)

func TestServiceCost_AccumulatesLines(t *testing.T) {
	inventory := []models.InventoryItem{
		{ID: 1, Unit: "un", CostPrice: 2.5},
		{ID: 2, Unit: "un", CostPrice: 10},
	}
	recipe := []models.ServiceConsumption{
		{InventoryItemID: 1, Quantity: 4, UsageUnit: "un"},
		{InventoryItemID: 2, Quantity: 0.5, UsageUnit: "un"},
	}

	got := ServiceCost(recipe, inventory)

	assert.InDelta(t, 2.5*4+10*0.5, got.Total, 1e-9)
	assert.Empty(t, got.MissingItemIDs)
}

func TestServiceCost_SkipsMissingItems(t *testing.T) {
	inventory := []models.InventoryItem{
		{ID: 1, Unit: "un", CostPrice: 3},
	}
	recipe := []models.ServiceConsumption{
		{InventoryItemID: 1, Quantity: 2, UsageUnit: "un"},
		{InventoryItemID: 99, Quantity: 100, UsageUnit: "un"}, // removido do estoque
	}

	got := ServiceCost(recipe, inventory)

	assert.InDelta(t, 6.0, got.Total, 1e-9)
	require.Len(t, got.MissingItemIDs, 1)
	assert.Equal(t, uint(99), got.MissingItemIDs[0])
}

func TestServiceCost_EmptyRecipe(t *testing.T) {
	got := ServiceCost(nil, nil)

	assert.Zero(t, got.Total)
	assert.Empty(t, got.MissingItemIDs)
}

func TestServiceCost_LiterToMilliliter(t *testing.T) {
	// estoque em litros, receita consome 500 mL a R$10/L
	inventory := []models.InventoryItem{
		{ID: 1, Unit: "L", CostPrice: 10},
	}
	recipe := []models.ServiceConsumption{
		{InventoryItemID: 1, Quantity: 500, UsageUnit: "mL"},
	}

	got := ServiceCost(recipe, inventory)

	assert.InDelta(t, 5.0, got.Total, 1e-9)
}

func TestServiceCost_GramToKilogram(t *testing.T) {
	// estoque em gramas, receita consome 0.5 kg a R$0,02/g
	inventory := []models.InventoryItem{
		{ID: 1, Unit: "g", CostPrice: 0.02},
	}
	recipe := []models.ServiceConsumption{
		{InventoryItemID: 1, Quantity: 0.5, UsageUnit: "kg"},
	}

	got := ServiceCost(recipe, inventory)

	assert.InDelta(t, 10.0, got.Total, 1e-9)
}

func TestUnitFactor(t *testing.T) {
	cases := []struct {
		inventory string
		usage     string
		want      float64
	}{
		{"L", "mL", 0.001},
		{"kg", "g", 0.001},
		{"mL", "L", 1000},
		{"g", "kg", 1000},
		// comparação case-insensitive
		{"l", "ML", 0.001},
		{"KG", "G", 0.001},
		// par fora do registro = sem conversão
		{"un", "un", 1},
		{"L", "L", 1},
		{"un", "mL", 1},
		{"", "", 1},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, UnitFactor(tc.inventory, tc.usage),
			"inventory=%q usage=%q", tc.inventory, tc.usage)
	}
}

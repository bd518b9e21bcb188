package financial_service

import (
	"testing"
	"time"

	"resto-go-pos/model/pos_model"

	"github.com/stretchr/testify/assert"
)

func TestUnitIngredientCostSumsQuantities(t *testing.T) {
	item := pos_model.MenuItem{
		Ingredients: []pos_model.Ingredient{
			{Quantity: 2},
			{Quantity: 0.5},
			{Quantity: 1.25},
		},
	}
	assert.InDelta(t, 3.75, UnitIngredientCost(item), 1e-9)
	assert.Zero(t, UnitIngredientCost(pos_model.MenuItem{}))
}

func TestIngredientCostScalesByQuantitySold(t *testing.T) {
	pizza := pos_model.MenuItem{Ingredients: []pos_model.Ingredient{{Quantity: 2}}}
	salad := pos_model.MenuItem{Ingredients: []pos_model.Ingredient{{Quantity: 1}, {Quantity: 1}}}

	orders := []pos_model.Order{
		{Items: []pos_model.OrderItem{
			{MenuItem: pizza, Quantity: 3}, // 2 * 3 = 6
			{MenuItem: salad, Quantity: 1}, // 2 * 1 = 2
		}},
	}
	assert.InDelta(t, 8, IngredientCost(orders), 1e-9)
}

func TestIngredientCostUnresolvedMenuItemContributesZero(t *testing.T) {
	orders := []pos_model.Order{
		{Items: []pos_model.OrderItem{{Quantity: 5}}}, // zero-value MenuItem
	}
	assert.Zero(t, IngredientCost(orders))
}

func TestLaborCost(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	shifts := []pos_model.Shift{
		{
			Status:    pos_model.ShiftStatusCompleted,
			StartTime: start,
			EndTime:   start.Add(8 * time.Hour),
			Staff:     pos_model.Staff{HourlyRate: 20},
		},
		{
			// Still scheduled, never counted.
			Status:    pos_model.ShiftStatusScheduled,
			StartTime: start,
			EndTime:   start.Add(4 * time.Hour),
			Staff:     pos_model.Staff{HourlyRate: 100},
		},
		{
			// Completed but no end time recorded: excluded entirely.
			Status:    pos_model.ShiftStatusCompleted,
			StartTime: start,
			Staff:     pos_model.Staff{HourlyRate: 100},
		},
	}
	assert.InDelta(t, 160, LaborCost(shifts), 1e-9)
}

func TestLaborCostUsesAbsoluteDuration(t *testing.T) {
	start := time.Date(2025, 3, 1, 17, 0, 0, 0, time.UTC)
	shifts := []pos_model.Shift{
		{
			Status:    pos_model.ShiftStatusCompleted,
			StartTime: start,
			EndTime:   start.Add(-6 * time.Hour), // end recorded before start
			Staff:     pos_model.Staff{HourlyRate: 15},
		},
	}
	assert.InDelta(t, 90, LaborCost(shifts), 1e-9)
}

func TestTrend(t *testing.T) {
	assert.InDelta(t, 50, Trend(150, 100), 1e-9)
	assert.InDelta(t, -25, Trend(75, 100), 1e-9)

	// Zero previous never divides; it pins the trend to 0.
	assert.Zero(t, Trend(500, 0))
	assert.Zero(t, Trend(0, 0))
	assert.Zero(t, Trend(500, -10))
}

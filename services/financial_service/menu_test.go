package financial_service

import (
	"testing"

	"resto-go-pos/model/pos_model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuFixture() []pos_model.MenuItem {
	return []pos_model.MenuItem{
		{
			Id: 1, Name: "Margherita Pizza", Price: 12.50,
			Category:    pos_model.Category{Name: "Mains"},
			Ingredients: []pos_model.Ingredient{{Quantity: 2}, {Quantity: 1.2}},
		},
		{
			Id: 2, Name: "Caesar Salad", Price: 8.90,
			Category:    pos_model.Category{Name: "Starters"},
			Ingredients: []pos_model.Ingredient{{Quantity: 2.1}},
		},
		{
			Id: 3, Name: "Tiramisu", Price: 6.50,
			Category: pos_model.Category{Name: "Desserts"},
		},
	}
}

func TestAnalyzeMenuComputesMarginPerItem(t *testing.T) {
	sold := []pos_model.OrderItem{
		{MenuItemId: 1, Quantity: 10, Price: 12.50},
		{MenuItemId: 1, Quantity: 2, Price: 12.00}, // sold at an older price
		{MenuItemId: 2, Quantity: 5, Price: 8.90},
	}

	rows := AnalyzeMenu(menuFixture(), sold)
	require.Len(t, rows, 3)

	byId := map[int]int{}
	for i, row := range rows {
		byId[row.Id] = i
	}

	pizza := rows[byId[1]]
	assert.Equal(t, 12, pizza.Sales)
	assert.InDelta(t, 149, pizza.Revenue, 1e-9) // 10*12.50 + 2*12.00
	assert.InDelta(t, 3.2, pizza.Cost, 1e-9)
	// (149 - 3.2*12) / 149 * 100 = 74.23... -> 74
	assert.Equal(t, 74, pizza.ProfitMargin)

	salad := rows[byId[2]]
	assert.Equal(t, 5, salad.Sales)
	assert.InDelta(t, 44.5, salad.Revenue, 1e-9)
	// (44.5 - 2.1*5) / 44.5 * 100 = 76.40... -> 76
	assert.Equal(t, 76, salad.ProfitMargin)
}

func TestAnalyzeMenuZeroRevenueIsZeroMargin(t *testing.T) {
	rows := AnalyzeMenu(menuFixture(), nil)
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Zero(t, row.Sales)
		assert.Zero(t, row.Revenue)
		assert.Zero(t, row.ProfitMargin)
	}
}

func TestAnalyzeMenuSortedByMarginDescending(t *testing.T) {
	sold := []pos_model.OrderItem{
		{MenuItemId: 1, Quantity: 10, Price: 12.50},
		{MenuItemId: 2, Quantity: 5, Price: 8.90},
	}
	rows := AnalyzeMenu(menuFixture(), sold)
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].ProfitMargin, rows[i].ProfitMargin)
	}
}

func TestAnalyzeMenuDropsUnknownSoldRows(t *testing.T) {
	sold := []pos_model.OrderItem{
		{MenuItemId: 99, Quantity: 50, Price: 10},
	}
	rows := AnalyzeMenu(menuFixture(), sold)
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.NotEqual(t, 99, row.Id)
		assert.Zero(t, row.Sales)
	}
}

package financial_service

import (
	"testing"
	"time"

	"resto-go-pos/model/pos_model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverheadFor(t *testing.T) {
	assert.InDelta(t, 1250, OverheadFor(ReportWeekly), 1e-9)
	assert.InDelta(t, 5400, OverheadFor(ReportMonthly), 1e-9)
	assert.InDelta(t, 16200, OverheadFor(ReportQuarterly), 1e-9)
	assert.InDelta(t, 64800, OverheadFor(ReportYearly), 1e-9)

	// Unknown tokens inherit the weekly figure.
	assert.InDelta(t, 1250, OverheadFor("bogus"), 1e-9)
}

func TestTopSellersAggregatesAndRanks(t *testing.T) {
	menu := map[int]pos_model.MenuItem{
		1: {Id: 1, Name: "Margherita Pizza", Category: pos_model.Category{Name: "Mains"}},
		2: {Id: 2, Name: "Caesar Salad", Category: pos_model.Category{Name: "Starters"}},
	}
	orders := []pos_model.Order{
		{Items: []pos_model.OrderItem{
			{MenuItemId: 1, Quantity: 2, Price: 12.50},
			{MenuItemId: 2, Quantity: 1, Price: 8.90},
		}},
		{Items: []pos_model.OrderItem{
			{MenuItemId: 1, Quantity: 1, Price: 12.50},
			{MenuItemId: 99, Quantity: 4, Price: 30}, // no longer on the menu
		}},
	}

	top := TopSellers(orders, menu, 5)
	require.Len(t, top, 2)

	assert.Equal(t, 1, top[0].MenuItemId)
	assert.Equal(t, 3, top[0].Quantity)
	assert.InDelta(t, 37.5, top[0].Revenue, 1e-9)
	assert.Equal(t, "Mains", top[0].Category)

	assert.Equal(t, 2, top[1].MenuItemId)
	assert.InDelta(t, 8.9, top[1].Revenue, 1e-9)
}

func TestTopSellersTruncatesToN(t *testing.T) {
	menu := map[int]pos_model.MenuItem{}
	var items []pos_model.OrderItem
	for i := 1; i <= 8; i++ {
		menu[i] = pos_model.MenuItem{Id: i}
		items = append(items, pos_model.OrderItem{MenuItemId: i, Quantity: 1, Price: float64(i)})
	}
	top := TopSellers([]pos_model.Order{{Items: items}}, menu, 5)
	require.Len(t, top, 5)
	// Highest revenue first.
	assert.Equal(t, 8, top[0].MenuItemId)
	assert.Equal(t, 4, top[4].MenuItemId)
}

func TestBuildPeriodReportArithmetic(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)

	report := BuildPeriodReport(ReportWeekly, start, end, 10000, 3000, 2000, 42, nil)

	assert.Equal(t, ReportWeekly, report.ReportType)
	assert.InDelta(t, 1250, report.Overhead, 1e-9)
	assert.InDelta(t, 6250, report.TotalExpenses, 1e-9)
	assert.InDelta(t, 3750, report.NetProfit, 1e-9)
	assert.InDelta(t, 37.5, report.ProfitMargin, 1e-9)
	assert.Equal(t, 42, report.OrderCount)
	assert.Len(t, report.ReportId, 9)
	assert.NotEmpty(t, report.GeneratedAt)
}

func TestBuildPeriodReportZeroRevenueGuardsMargin(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	report := BuildPeriodReport(ReportMonthly, start, start.AddDate(0, 1, 0), 0, 0, 500, 0, nil)

	assert.Zero(t, report.ProfitMargin)
	assert.InDelta(t, -5900, report.NetProfit, 1e-9) // 0 - (0 + 500 + 5400)
}

func TestBuildPeriodReportNormalizesUnknownType(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	report := BuildPeriodReport("hourly", start, start, 100, 0, 0, 1, nil)
	assert.Equal(t, ReportWeekly, report.ReportType)
	assert.InDelta(t, 1250, report.Overhead, 1e-9)
}

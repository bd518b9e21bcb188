package financial_service

import (
	"sort"

	"resto-go-pos/inout"
	"resto-go-pos/model/pos_model"
	"resto-go-pos/utils"
)

// AnalyzeMenu computes profitability per menu item from the order items sold
// in the analysis window. Cost is the per-unit ingredient cost, computed once
// per item and independent of sales volume; total cost scales with units
// sold. Items with no revenue report a margin of exactly 0. Sold rows whose
// menu item no longer exists are dropped silently.
func AnalyzeMenu(items []pos_model.MenuItem, sold []pos_model.OrderItem) []inout.MenuAnalysisItem {
	type soldAgg struct {
		sales   int
		revenue float64
	}
	perItem := make(map[int]soldAgg, len(items))
	for _, oi := range sold {
		agg := perItem[oi.MenuItemId]
		agg.sales += oi.Quantity
		agg.revenue += oi.Price * float64(oi.Quantity)
		perItem[oi.MenuItemId] = agg
	}

	rows := make([]inout.MenuAnalysisItem, 0, len(items))
	for _, item := range items {
		agg := perItem[item.Id]
		cost := UnitIngredientCost(item)
		totalCost := cost * float64(agg.sales)

		margin := 0
		if agg.revenue > 0 {
			margin = utils.RoundPercent((agg.revenue - totalCost) / agg.revenue * 100)
		}

		rows = append(rows, inout.MenuAnalysisItem{
			Id:           item.Id,
			Name:         item.Name,
			Category:     item.Category.Name,
			Cost:         utils.Round2(cost),
			Price:        item.Price,
			Sales:        agg.sales,
			Revenue:      utils.Round2(agg.revenue),
			ProfitMargin: margin,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ProfitMargin > rows[j].ProfitMargin
	})
	return rows
}

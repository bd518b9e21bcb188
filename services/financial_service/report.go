package financial_service

import (
	"sort"
	"time"

	"resto-go-pos/inout"
	"resto-go-pos/model/pos_model"
	"resto-go-pos/utils"
)

// Overhead stands in for unmodeled fixed costs, scaled by report period.
var overheadByReportType = map[string]float64{
	ReportWeekly:    1250.00,
	ReportMonthly:   5400.00,
	ReportQuarterly: 16200.00,
	ReportYearly:    64800.00,
}

// OverheadFor returns the overhead constant for a report type.
func OverheadFor(reportType string) float64 {
	return overheadByReportType[NormalizeReportType(reportType)]
}

// TopSellers aggregates order items by menu item into quantity and revenue,
// joins the menu item and category names and returns the n highest-revenue
// entries. Items that no longer resolve to a menu item are skipped.
func TopSellers(orders []pos_model.Order, menu map[int]pos_model.MenuItem, n int) []inout.TopMenuItem {
	type agg struct {
		quantity int
		revenue  float64
	}
	perItem := make(map[int]agg)
	for _, order := range orders {
		for _, item := range order.Items {
			a := perItem[item.MenuItemId]
			a.quantity += item.Quantity
			a.revenue += item.Price * float64(item.Quantity)
			perItem[item.MenuItemId] = a
		}
	}

	top := make([]inout.TopMenuItem, 0, len(perItem))
	for id, a := range perItem {
		mi, ok := menu[id]
		if !ok {
			continue
		}
		top = append(top, inout.TopMenuItem{
			MenuItemId: id,
			Name:       mi.Name,
			Category:   mi.Category.Name,
			Quantity:   a.quantity,
			Revenue:    utils.Round2(a.revenue),
		})
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Revenue > top[j].Revenue
	})
	if len(top) > n {
		top = top[:n]
	}
	return top
}

// BuildPeriodReport assembles the full report for a resolved window. The
// profit margin is defined as 0 when revenue is 0. ReportId and GeneratedAt
// are presentation artifacts, not persisted identifiers.
func BuildPeriodReport(reportType string, start, end time.Time, revenue, foodCost, laborCost float64, orderCount int, topItems []inout.TopMenuItem) inout.PeriodReport {
	overhead := OverheadFor(reportType)
	totalExpenses := foodCost + laborCost + overhead
	netProfit := revenue - totalExpenses

	margin := 0.0
	if revenue > 0 {
		margin = netProfit / revenue * 100
	}

	return inout.PeriodReport{
		ReportId:      utils.RandomDigits(9),
		ReportType:    NormalizeReportType(reportType),
		GeneratedAt:   time.Now().Format(time.RFC3339),
		PeriodStart:   utils.FormatTime2(start),
		PeriodEnd:     utils.FormatTime2(end),
		TotalRevenue:  utils.Round2(revenue),
		FoodCost:      utils.Round2(foodCost),
		LaborCost:     utils.Round2(laborCost),
		Overhead:      overhead,
		TotalExpenses: utils.Round2(totalExpenses),
		NetProfit:     utils.Round2(netProfit),
		ProfitMargin:  utils.Round2(margin),
		OrderCount:    orderCount,
		TopItems:      topItems,
	}
}

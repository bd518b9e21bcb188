package financial_service

import (
	"sort"

	"resto-go-pos/inout"
	"resto-go-pos/utils"
)

// Fixed expense categories.
const (
	CategoryIngredients = "Ingredients"
	CategoryLabor       = "Staff Labor"
	CategoryUtilities   = "Utility Costs"
	CategoryWaste       = "Food Waste"
	CategoryOvertime    = "Staff Overtime"
	CategoryRent        = "Rent"
)

// Policy constants: the four non-computed categories carry fixed dollar
// figures or fixed rates, and fixed trend percentages.
const (
	utilityAmount = 5680.45
	utilityTrend  = 5.2
	wasteRate     = 0.12
	wasteTrend    = 3.8
	overtimeRate  = 0.15
	overtimeTrend = 2.1
	rentAmount    = 15000.00
	rentTrend     = 0.0
)

// BuildExpenseRows assembles the six expense categories from the computed
// ingredient and labor costs. Percentages are rounded independently and may
// not sum to 100. Rows come back sorted descending by amount.
func BuildExpenseRows(ingredientCost, laborCost, ingredientTrend, laborTrend float64) []inout.ExpenseCategory {
	rows := []inout.ExpenseCategory{
		{Category: CategoryIngredients, Amount: utils.Round2(ingredientCost), Trend: ingredientTrend},
		{Category: CategoryLabor, Amount: utils.Round2(laborCost), Trend: laborTrend},
		{Category: CategoryUtilities, Amount: utilityAmount, Trend: utilityTrend},
		{Category: CategoryWaste, Amount: utils.Round2(ingredientCost * wasteRate), Trend: wasteTrend},
		{Category: CategoryOvertime, Amount: utils.Round2(laborCost * overtimeRate), Trend: overtimeTrend},
		{Category: CategoryRent, Amount: rentAmount, Trend: rentTrend},
	}

	total := TotalExpenses(rows)
	for i := range rows {
		if total > 0 {
			rows[i].Percentage = utils.RoundPercent(rows[i].Amount / total * 100)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Amount > rows[j].Amount
	})
	return rows
}

// TotalExpenses is the definitional sum of the category amounts.
func TotalExpenses(rows []inout.ExpenseCategory) float64 {
	var total float64
	for _, row := range rows {
		total += row.Amount
	}
	return total
}

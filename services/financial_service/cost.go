package financial_service

import (
	"math"

	"resto-go-pos/model/pos_model"
)

// UnitIngredientCost is the cost proxy of one unit of a menu item: the plain
// sum of the linked ingredients' quantity fields. The quantity field doubles
// as stock-on-hand in the inventory module; the conflation is kept as-is
// because the stored data carries no separate unit cost.
func UnitIngredientCost(item pos_model.MenuItem) float64 {
	var cost float64
	for _, ing := range item.Ingredients {
		cost += ing.Quantity
	}
	return cost
}

// IngredientCost sums the per-unit ingredient cost of every order item,
// scaled by quantity sold. Order items whose menu item no longer resolves
// contribute zero.
func IngredientCost(orders []pos_model.Order) float64 {
	var total float64
	for _, order := range orders {
		for _, item := range order.Items {
			total += UnitIngredientCost(item.MenuItem) * float64(item.Quantity)
		}
	}
	return total
}

// LaborCost sums hours x hourly rate over completed shifts. Shifts without
// an end time are excluded entirely rather than counted as zero-duration.
func LaborCost(shifts []pos_model.Shift) float64 {
	var total float64
	for _, shift := range shifts {
		if shift.Status != pos_model.ShiftStatusCompleted {
			continue
		}
		if shift.EndTime.IsZero() {
			continue
		}
		hours := math.Abs(shift.EndTime.Sub(shift.StartTime).Hours())
		total += hours * shift.Staff.HourlyRate
	}
	return total
}

// Trend is the percentage change versus the previous period. A zero or
// negative previous value yields exactly 0, never an error.
func Trend(current, previous float64) float64 {
	if previous > 0 {
		return (current - previous) / previous * 100
	}
	return 0
}

package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 rounds a monetary amount to two decimal places.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// RoundPercent rounds a ratio expressed as a percentage to the nearest
// whole number.
func RoundPercent(v float64) int {
	return int(math.Round(v))
}

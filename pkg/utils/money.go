package utils

import "math"

// ToCents converts a decimal money amount to integer cents. Rounding happens
// here, once, at the API boundary; everything past it is integer arithmetic.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents converts integer cents back to a decimal amount for display.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

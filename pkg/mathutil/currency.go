// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/selimb/mortgage-calc/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// RoundTo rounds a value half away from zero to the given number of fractional
// digits.
func RoundTo(val float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(val*scale) / scale
}

// RoundWhole rounds a value to the nearest whole unit.
func RoundWhole(val float64) float64 {
	r := math.Round(val)
	if r == 0 {
		// Avoid printing -0 for tiny negative balances.
		return 0
	}
	return r
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsPositive checks if a value is positive (greater than tolerance)
func IsPositive(val float64) bool {
	return val > constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// PercentToFraction converts a percentage such as 5 into the fraction 0.05.
func PercentToFraction(percentage float64) float64 {
	return percentage / constants.PercentageMultiplier
}

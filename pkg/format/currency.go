// Package format renders amounts and rates for display.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	if amount < 0 && math.Abs(amount) >= 0.005 {
		return "-$" + NumericCurrency(-amount)
	}
	return "$" + NumericCurrency(math.Abs(amount))
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	return printer.Sprintf("%.2f", amount)
}

// Whole returns an amount rounded to whole units with separators (e.g., "299,492").
func Whole(amount float64) string {
	rounded := math.Round(amount)
	if rounded == 0 {
		// drop the sign of -0
		rounded = 0
	}
	return printer.Sprintf("%.0f", rounded)
}

// Percent returns a rate given as a percentage with three decimals (e.g., "4.125%").
func Percent(ratePercent float64) string {
	return printer.Sprintf("%.3f%%", ratePercent)
}

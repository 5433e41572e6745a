// Package money holds the currency formatting helpers shared by the read
// models and outbound documents. Amounts are plain float64 USD values; only
// presentation is localized (French digit conventions, "$US" marker), matching
// the formatting used in the quotation documents.
package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.French)

// FormatUSD renders an amount with French number formatting and the $US
// marker, always with two decimals. A non-finite amount renders as zero.
func FormatUSD(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return printer.Sprintf("%v $US",
		number.Decimal(amount, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Round2 rounds an amount to the nearest cent.
func Round2(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return math.Round(amount*100) / 100
}

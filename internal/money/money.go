// Package money formats currency amounts for display. Internal arithmetic
// stays on raw float64 values; formatting happens only at the presentation
// edge, so repeated parse/format cycles never drift the math.
package money

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Format renders an amount in the fixed en-US/USD locale, e.g. "$1,234.50".
func Format(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

// Quantity renders a quantity without trailing zeros.
func Quantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

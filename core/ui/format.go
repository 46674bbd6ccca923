package ui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Money renders a dollar amount with thousands separators, e.g. "$1,250,000.00"
func Money(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

// Count renders a whole number with thousands separators, e.g. "50,000"
func Count(v float64) string {
	return printer.Sprintf("%.0f", v)
}

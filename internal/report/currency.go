package report

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amounts are rupiah, displayed without fraction digits and with the
// Indonesian digit grouping ("Rp1.234.567").
var printer = message.NewPrinter(language.Indonesian)

// FormatCurrency renders an amount as a locale-formatted integer rupiah
// string.
func FormatCurrency(amount float64) string {
	return printer.Sprintf("Rp%d", int64(math.Round(amount)))
}

// CompactCurrency abbreviates an amount for chart labels: millions with
// one decimal ("2.5M"), thousands rounded to whole ("2K"), anything
// smaller as the plain number.
func CompactCurrency(amount float64) string {
	switch {
	case amount >= 1_000_000:
		return strconv.FormatFloat(math.Round(amount/100_000)/10, 'f', 1, 64) + "M"
	case amount >= 1_000:
		return strconv.FormatInt(int64(math.Round(amount/1_000)), 10) + "K"
	default:
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}
}

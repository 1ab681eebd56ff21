package analytics

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Atlas-Ticaret/atlas-backoffice/models"
)

var trPrinter = message.NewPrinter(language.Turkish)

// FormatLira renders an amount the way the dashboard cards show it:
// "₺1.234,56" with Turkish grouping and exactly two decimals.
func FormatLira(amount models.Cents) string {
	return trPrinter.Sprintf("₺%.2f", amount.Float64())
}

// FormatPercent renders a percentage with one decimal, e.g. "%33,3".
func FormatPercent(value float64) string {
	return trPrinter.Sprintf("%%%.1f", value)
}

// FormatCount renders an integer with Turkish grouping.
func FormatCount(n int) string {
	return trPrinter.Sprintf("%d", n)
}

package analytics

import (
	"math"

	"github.com/Atlas-Ticaret/atlas-backoffice/models"
)

// Summarize reduces a slice of orders (already filtered to the selected
// range) into the five KPI card values. Totals come straight from
// Order.Total, which is authoritative; line items are not re-summed here.
func Summarize(orders []models.Order) models.KPISummary {
	var summary models.KPISummary
	var returned int

	for _, order := range orders {
		summary.TotalSales += order.Total
		switch order.Status {
		case models.OrderCompleted:
			summary.NetSales += order.Total
		case models.OrderReturned:
			returned++
		case models.OrderPending:
			summary.PendingShipments++
		}
	}

	summary.OrderCount = len(orders)
	// Return rate over an empty set is 0, never NaN.
	if summary.OrderCount > 0 {
		rate := float64(returned) / float64(summary.OrderCount) * 100
		summary.ReturnRate = math.Round(rate*10) / 10
	}
	return summary
}

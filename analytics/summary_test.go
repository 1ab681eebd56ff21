package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Atlas-Ticaret/atlas-backoffice/models"
)

func TestSummarize_MixedStatuses(t *testing.T) {
	orders := []models.Order{
		{Total: 10000, Status: models.OrderCompleted},
		{Total: 5000, Status: models.OrderPending},
	}

	s := Summarize(orders)
	assert.Equal(t, models.Cents(15000), s.TotalSales)
	assert.Equal(t, models.Cents(10000), s.NetSales)
	assert.Equal(t, 2, s.OrderCount)
	assert.Equal(t, 0.0, s.ReturnRate)
	assert.Equal(t, 1, s.PendingShipments)
}

func TestSummarize_ReturnRateRounding(t *testing.T) {
	orders := []models.Order{
		{Total: 1000, Status: models.OrderCompleted},
		{Total: 1000, Status: models.OrderCompleted},
		{Total: 1000, Status: models.OrderReturned},
	}

	s := Summarize(orders)
	// 1 of 3 returned, rounded to one decimal
	assert.Equal(t, 33.3, s.ReturnRate)
	assert.Equal(t, models.Cents(3000), s.TotalSales)
	assert.Equal(t, models.Cents(2000), s.NetSales)
}

func TestSummarize_ReturnedCountsIntoTotal(t *testing.T) {
	orders := []models.Order{
		{Total: 2000, Status: models.OrderReturned},
	}

	s := Summarize(orders)
	assert.Equal(t, models.Cents(2000), s.TotalSales)
	assert.Equal(t, models.Cents(0), s.NetSales)
	assert.Equal(t, 100.0, s.ReturnRate)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, models.Cents(0), s.TotalSales)
	assert.Equal(t, models.Cents(0), s.NetSales)
	assert.Equal(t, 0, s.OrderCount)
	assert.Equal(t, 0.0, s.ReturnRate)
	assert.Equal(t, 0, s.PendingShipments)
}

func TestSummarize_OtherStatusesOnlyCount(t *testing.T) {
	orders := []models.Order{
		{Total: 1000, Status: models.OrderProcessing},
		{Total: 1000, Status: models.OrderShipped},
		{Total: 1000, Status: models.OrderCancelled},
	}

	s := Summarize(orders)
	assert.Equal(t, models.Cents(3000), s.TotalSales)
	assert.Equal(t, models.Cents(0), s.NetSales)
	assert.Equal(t, 3, s.OrderCount)
	assert.Equal(t, 0, s.PendingShipments)
}

package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Atlas-Ticaret/atlas-backoffice/models"
)

func TestWindow_Shape(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	cells := Window(now)

	require.Len(t, cells, WindowSize)
	assert.Equal(t, -WindowDaysBack, cells[0].Offset)
	assert.Equal(t, WindowDaysAhead, cells[len(cells)-1].Offset)
	assert.Equal(t, "2025-06-12", cells[0].Date.String())
	assert.Equal(t, "2025-07-16", cells[len(cells)-1].Date.String())

	for _, cell := range cells {
		assert.Equal(t, cell.Offset == 0, cell.IsToday)
		assert.Equal(t, cell.Offset < 0, cell.IsPast)
		assert.Equal(t, DayEmpty, cell.State)
		assert.NotNil(t, cell.Entries)
		assert.Equal(t, cell.Date.Day(), cell.DayNum)
	}
}

func TestWindow_MonthRollover(t *testing.T) {
	// Dec 30 -> window spans into next year
	cells := Window(time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-12-27", cells[0].Date.String())
	assert.Equal(t, "2026-01-30", cells[len(cells)-1].Date.String())
}

func TestWindow_LeapFebruary(t *testing.T) {
	cells := Window(time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC))
	var days []string
	for _, cell := range cells {
		days = append(days, cell.Date.String())
	}
	assert.Contains(t, days, "2024-02-29")
}

func TestWindowRange(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	r := WindowRange(now)
	assert.Equal(t, "2025-06-12", r.Start.String())
	assert.Equal(t, "2025-07-16", r.End.String())
	assert.NoError(t, r.Validate())
}

func TestClassify(t *testing.T) {
	income := models.CashFlowEntry{Kind: models.KindIncome, Amount: 100}
	expense := models.CashFlowEntry{Kind: models.KindExpense, Amount: 50}

	assert.Equal(t, DayEmpty, Classify(nil))
	assert.Equal(t, DayIncome, Classify([]models.CashFlowEntry{income}))
	assert.Equal(t, DayExpense, Classify([]models.CashFlowEntry{expense}))
	assert.Equal(t, DayBoth, Classify([]models.CashFlowEntry{income, expense}))
	assert.Equal(t, DayBoth, Classify([]models.CashFlowEntry{expense, income, expense}))
}

func TestPopulate(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	cells := Window(now)
	today := models.NewDay(now)

	entries := []models.CashFlowEntry{
		{Date: today, Kind: models.KindIncome, Amount: 1000},
		{Date: today, Kind: models.KindExpense, Amount: 500},
		{Date: today.AddDays(3), Kind: models.KindExpense, Amount: 200},
		// outside the window, must be dropped
		{Date: today.AddDays(-10), Kind: models.KindIncome, Amount: 999},
		{Date: today.AddDays(40), Kind: models.KindIncome, Amount: 999},
	}
	Populate(cells, entries)

	byOffset := make(map[int]DayCell)
	for _, cell := range cells {
		byOffset[cell.Offset] = cell
	}

	assert.Equal(t, DayBoth, byOffset[0].State)
	assert.Len(t, byOffset[0].Entries, 2)
	assert.Equal(t, DayExpense, byOffset[3].State)
	assert.Equal(t, DayEmpty, byOffset[1].State)

	var placed int
	for _, cell := range cells {
		placed += len(cell.Entries)
	}
	assert.Equal(t, 3, placed)
}

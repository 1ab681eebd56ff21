package analytics

import (
	"time"

	"github.com/Atlas-Ticaret/atlas-backoffice/models"
)

// The timeline always shows 3 days back through 31 days ahead of "today",
// recomputed from the clock on every request. Not configurable.
const (
	WindowDaysBack  = 3
	WindowDaysAhead = 31
	WindowSize      = WindowDaysBack + WindowDaysAhead + 1
)

// DayState classifies a timeline cell by the entries on its day. For display,
// "today" styling wins over Both, which wins over the single-kind states.
type DayState string

const (
	DayEmpty   DayState = "empty"
	DayIncome  DayState = "income"
	DayExpense DayState = "expense"
	DayBoth    DayState = "both"
)

// DayCell is one of the 35 timeline cells.
type DayCell struct {
	Date    models.Day             `json:"date"`
	DayNum  int                    `json:"day_num"`
	Offset  int                    `json:"offset"`
	IsToday bool                   `json:"is_today"`
	IsPast  bool                   `json:"is_past"`
	State   DayState               `json:"state"`
	Entries []models.CashFlowEntry `json:"entries"`
}

// Window builds the 35-cell timeline around now. Cells start Empty with no
// entries; Populate fills them from a fetched range.
func Window(now time.Time) []DayCell {
	today := models.NewDay(now)
	cells := make([]DayCell, 0, WindowSize)
	for offset := -WindowDaysBack; offset <= WindowDaysAhead; offset++ {
		date := today.AddDays(offset)
		cells = append(cells, DayCell{
			Date:    date,
			DayNum:  date.Day(),
			Offset:  offset,
			IsToday: offset == 0,
			IsPast:  offset < 0,
			State:   DayEmpty,
			Entries: []models.CashFlowEntry{},
		})
	}
	return cells
}

// WindowRange is the fetch range matching the window: [today-3, today+31].
func WindowRange(now time.Time) models.DateRange {
	today := models.NewDay(now)
	return models.DateRange{
		Start: today.AddDays(-WindowDaysBack),
		End:   today.AddDays(WindowDaysAhead),
	}
}

// Classify derives a day's state from its entries. A day with both kinds is
// Both regardless of order or counts; presence of entries is the only state
// there is.
func Classify(entries []models.CashFlowEntry) DayState {
	var hasIncome, hasExpense bool
	for _, e := range entries {
		switch e.Kind {
		case models.KindIncome:
			hasIncome = true
		case models.KindExpense:
			hasExpense = true
		}
	}
	switch {
	case hasIncome && hasExpense:
		return DayBoth
	case hasIncome:
		return DayIncome
	case hasExpense:
		return DayExpense
	default:
		return DayEmpty
	}
}

// Populate distributes fetched entries onto the window's cells and
// classifies each cell. Entries outside the window are dropped.
func Populate(cells []DayCell, entries []models.CashFlowEntry) {
	byDay := make(map[models.Day][]models.CashFlowEntry)
	for _, e := range entries {
		byDay[e.Date] = append(byDay[e.Date], e)
	}
	for i := range cells {
		if dayEntries, ok := byDay[cells[i].Date]; ok {
			cells[i].Entries = dayEntries
		}
		cells[i].State = Classify(cells[i].Entries)
	}
}

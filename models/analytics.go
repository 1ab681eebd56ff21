package models

import (
	"errors"
	"time"
)

// ErrInvalidRange is returned when a range's start falls after its end.
var ErrInvalidRange = errors.New("invalid date range: start after end")

// DateRange is the inclusive [Start, End] filter every aggregation takes.
type DateRange struct {
	Start Day `json:"start"`
	End   Day `json:"end"`
}

func (r DateRange) Validate() error {
	if r.Start.After(r.End.Time) {
		return ErrInvalidRange
	}
	return nil
}

// Contains reports whether t's calendar day falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	d := NewDay(t).Time
	return !d.Before(r.Start.Time) && !d.After(r.End.Time)
}

// ParseDateRange builds a validated range from two YYYY-MM-DD strings.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := ParseDay(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDay(end)
	if err != nil {
		return DateRange{}, err
	}
	r := DateRange{Start: s, End: e}
	return r, r.Validate()
}

// KPISummary holds the five dashboard card values for a date range.
type KPISummary struct {
	TotalSales       Cents   `json:"total_sales"`
	NetSales         Cents   `json:"net_sales"`
	OrderCount       int     `json:"order_count"`
	ReturnRate       float64 `json:"return_rate"`
	PendingShipments int     `json:"pending_shipments"`
}

// KPICardsResponse pairs the raw summary with display-ready strings.
type KPICardsResponse struct {
	Summary   KPISummary        `json:"summary"`
	Formatted map[string]string `json:"formatted"`
}

type DailySalesResponse struct {
	Series   any     `json:"series"`
	MaxValue float64 `json:"max_value"`
}

type TopProduct struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitsSold int    `json:"units_sold"`
}

// EconomicSnapshot is the best-effort market strip above the timeline. When a
// fetch fails the hardcoded fallback stays in place and Stale is set.
type EconomicSnapshot struct {
	UsdTry       string    `json:"usd_try"`
	GoldOz       string    `json:"gold_oz"`
	BtcUsd       string    `json:"btc_usd"`
	SilverOz     string    `json:"silver_oz"`
	InterestRate string    `json:"interest_rate"`
	Inflation    string    `json:"inflation"`
	Bist100      string    `json:"bist100"`
	Stale        bool      `json:"stale"`
	FetchedAt    time.Time `json:"fetched_at"`
}

type RangePreference struct {
	Start string `json:"start" binding:"required,datetime=2006-01-02"`
	End   string `json:"end" binding:"required,datetime=2006-01-02"`
}

// Package analytics holds the pure aggregation functions behind the
// dashboard: day bucketing, KPI summaries, the 35-day timeline window and the
// display formatters. Everything here is deterministic over its inputs; the
// controllers own the data fetching.
package analytics

import (
	"sort"
	"time"

	"github.com/Atlas-Ticaret/atlas-backoffice/models"
)

// Point is one dated monetary value fed into BucketByDay.
type Point struct {
	Date   time.Time
	Amount models.Cents
}

// DailyBucket is the summed total for a single calendar day.
type DailyBucket struct {
	Date  models.Day   `json:"date"`
	Total models.Cents `json:"amount"`
}

// BucketByDay groups points inside the inclusive range by calendar day and
// sums their amounts. Time of day is discarded. Output is ordered by day
// ascending and sparse: days with no points are omitted, so callers must
// handle gaps. An inverted range is rejected.
func BucketByDay(points []Point, r models.DateRange) ([]DailyBucket, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	totals := make(map[models.Day]models.Cents)
	for _, p := range points {
		if !r.Contains(p.Date) {
			continue
		}
		totals[models.NewDay(p.Date)] += p.Amount
	}

	buckets := make([]DailyBucket, 0, len(totals))
	for day, total := range totals {
		buckets = append(buckets, DailyBucket{Date: day, Total: total})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date.Before(buckets[j].Date.Time)
	})
	return buckets, nil
}

// MaxValue returns the largest value across all series, floored at 1. The
// floor is a contract: chart callers divide by this to scale bar heights, and
// an all-zero (or empty) series must not divide by zero.
func MaxValue(series ...[]float64) float64 {
	max := 1.0
	for _, s := range series {
		for _, v := range s {
			if v > max {
				max = v
			}
		}
	}
	return max
}

package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Atlas-Ticaret/atlas-backoffice/models"
)

func day(s string) models.Day {
	d, err := models.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBucketByDay_SumsAndOrders(t *testing.T) {
	r := models.DateRange{Start: day("2025-06-01"), End: day("2025-06-30")}
	points := []Point{
		{Date: time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC), Amount: 1000},
		{Date: time.Date(2025, 6, 10, 18, 30, 0, 0, time.UTC), Amount: 2500},
		{Date: time.Date(2025, 6, 5, 12, 0, 0, 0, time.UTC), Amount: 700},
	}

	buckets, err := BucketByDay(points, r)
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	assert.Equal(t, "2025-06-05", buckets[0].Date.String())
	assert.Equal(t, models.Cents(700), buckets[0].Total)
	assert.Equal(t, "2025-06-10", buckets[1].Date.String())
	assert.Equal(t, models.Cents(3500), buckets[1].Total)
}

func TestBucketByDay_ConservesTotal(t *testing.T) {
	r := models.DateRange{Start: day("2025-06-01"), End: day("2025-06-30")}
	points := []Point{
		{Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Amount: 100},
		{Date: time.Date(2025, 6, 1, 23, 59, 59, 0, time.UTC), Amount: 200},
		{Date: time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC), Amount: 300},
		{Date: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC), Amount: 400},
	}

	buckets, err := BucketByDay(points, r)
	require.NoError(t, err)

	var inTotal, outTotal models.Cents
	for _, p := range points {
		inTotal += p.Amount
	}
	for _, b := range buckets {
		outTotal += b.Total
	}
	assert.Equal(t, inTotal, outTotal)
}

func TestBucketByDay_DropsOutOfRange(t *testing.T) {
	r := models.DateRange{Start: day("2025-06-10"), End: day("2025-06-20")}
	points := []Point{
		{Date: time.Date(2025, 6, 9, 23, 59, 0, 0, time.UTC), Amount: 100},
		{Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), Amount: 200},
		{Date: time.Date(2025, 6, 20, 23, 0, 0, 0, time.UTC), Amount: 300},
		{Date: time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC), Amount: 400},
	}

	buckets, err := BucketByDay(points, r)
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, models.Cents(200), buckets[0].Total)
	assert.Equal(t, models.Cents(300), buckets[1].Total)
}

func TestBucketByDay_InvertedRange(t *testing.T) {
	r := models.DateRange{Start: day("2025-06-20"), End: day("2025-06-10")}
	_, err := BucketByDay(nil, r)
	assert.ErrorIs(t, err, models.ErrInvalidRange)
}

func TestBucketByDay_Empty(t *testing.T) {
	r := models.DateRange{Start: day("2025-06-01"), End: day("2025-06-30")}
	buckets, err := BucketByDay(nil, r)
	require.NoError(t, err)
	assert.Empty(t, buckets)
}

func TestMaxValue(t *testing.T) {
	assert.Equal(t, 1.0, MaxValue())
	assert.Equal(t, 1.0, MaxValue([]float64{}))
	assert.Equal(t, 1.0, MaxValue([]float64{0, 0.5, 0.2}))
	assert.Equal(t, 42.0, MaxValue([]float64{3, 42, 7}))
	assert.Equal(t, 99.0, MaxValue([]float64{3, 42}, []float64{99, 1}))
}

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDay_TruncatesTime(t *testing.T) {
	d := NewDay(time.Date(2025, 6, 15, 23, 59, 59, 123, time.UTC))
	assert.Equal(t, "2025-06-15", d.String())
	assert.Equal(t, 0, d.Hour())
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2025-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-28", d.String())

	for _, in := range []string{"", "2025-13-01", "15.06.2025", "2025-06-15T00:00:00Z", "not-a-date"} {
		_, err := ParseDay(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestDay_AddDays(t *testing.T) {
	d := NewDay(time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-01-02", d.AddDays(3).String())
	assert.Equal(t, "2025-12-27", d.AddDays(-3).String())
}

func TestDay_JSONRoundTrip(t *testing.T) {
	d := NewDay(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-15"`, string(out))

	var back Day
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, d, back)
}

func TestDay_Scan(t *testing.T) {
	var d Day

	require.NoError(t, d.Scan(time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2025-06-15", d.String())

	require.NoError(t, d.Scan("2025-06-16"))
	assert.Equal(t, "2025-06-16", d.String())

	require.NoError(t, d.Scan([]byte("2025-06-17")))
	assert.Equal(t, "2025-06-17", d.String())

	assert.Error(t, d.Scan(42))
}

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("2025-06-01", "2025-06-30")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", r.Start.String())
	assert.Equal(t, "2025-06-30", r.End.String())

	// same-day range is valid
	_, err = ParseDateRange("2025-06-01", "2025-06-01")
	assert.NoError(t, err)

	_, err = ParseDateRange("2025-06-30", "2025-06-01")
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = ParseDateRange("junk", "2025-06-01")
	assert.Error(t, err)
}

func TestDateRange_Contains(t *testing.T) {
	r, err := ParseDateRange("2025-06-10", "2025-06-20")
	require.NoError(t, err)

	assert.True(t, r.Contains(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2025, 6, 20, 23, 59, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, 6, 9, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC)))
}

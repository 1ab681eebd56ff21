package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Atlas-Ticaret/atlas-backoffice/cache"
)

func marketTestServers(t *testing.T, forexBody, cryptoBody string, forexStatus, cryptoStatus int) (forex, crypto *httptest.Server) {
	t.Helper()
	forex = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(forexStatus)
		_, _ = w.Write([]byte(forexBody))
	}))
	t.Cleanup(forex.Close)
	crypto = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(cryptoStatus)
		_, _ = w.Write([]byte(cryptoBody))
	}))
	t.Cleanup(crypto.Close)
	return forex, crypto
}

func TestSnapshot_LiveFetch(t *testing.T) {
	forex, crypto := marketTestServers(t,
		`{"rates": {"TRY": 35.4217, "EUR": 0.92}}`,
		`{"bitcoin": {"usd": 106420.7}}`,
		http.StatusOK, http.StatusOK)

	svc := NewMarketDataService(forex.URL, crypto.URL, cache.NewSnapshotCache())
	snap := svc.Snapshot(context.Background())

	assert.Equal(t, "35.42", snap.UsdTry)
	assert.Equal(t, "106,421", snap.BtcUsd)
	assert.False(t, snap.Stale)
	assert.False(t, snap.FetchedAt.IsZero())
	// untouched fallback fields stay in place
	assert.Equal(t, "2,648", snap.GoldOz)
	assert.Equal(t, "30.52", snap.SilverOz)
}

func TestSnapshot_FallbackOnFailure(t *testing.T) {
	forex, crypto := marketTestServers(t, `oops`, `oops`,
		http.StatusInternalServerError, http.StatusInternalServerError)

	svc := NewMarketDataService(forex.URL, crypto.URL, cache.NewSnapshotCache())
	snap := svc.Snapshot(context.Background())

	assert.True(t, snap.Stale)
	assert.Equal(t, "34.85", snap.UsdTry)
	assert.Equal(t, "106,420", snap.BtcUsd)
	assert.Equal(t, "%50", snap.InterestRate)
	assert.Equal(t, "%47.1", snap.Inflation)
	assert.Equal(t, "289", snap.Bist100)
}

func TestSnapshot_PartialFailure(t *testing.T) {
	forex, crypto := marketTestServers(t,
		`{"rates": {"TRY": 34.00}}`,
		`{"ethereum": {"usd": 4000}}`,
		http.StatusOK, http.StatusOK)

	svc := NewMarketDataService(forex.URL, crypto.URL, cache.NewSnapshotCache())
	snap := svc.Snapshot(context.Background())

	assert.Equal(t, "34.00", snap.UsdTry)
	assert.Equal(t, "106,420", snap.BtcUsd)
	assert.True(t, snap.Stale)
}

func TestSnapshot_UsesCache(t *testing.T) {
	var hits atomic.Int32
	forex := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"rates": {"TRY": 35.00}}`))
	}))
	t.Cleanup(forex.Close)
	crypto := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"bitcoin": {"usd": 100000}}`))
	}))
	t.Cleanup(crypto.Close)

	svc := NewMarketDataService(forex.URL, crypto.URL, cache.NewSnapshotCache())

	first := svc.Snapshot(context.Background())
	second := svc.Snapshot(context.Background())

	require.Equal(t, int32(2), hits.Load())
	assert.Equal(t, first, second)
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "0", groupThousands("0"))
	assert.Equal(t, "999", groupThousands("999"))
	assert.Equal(t, "1,000", groupThousands("1000"))
	assert.Equal(t, "106,420", groupThousands("106420"))
	assert.Equal(t, "1,234,567", groupThousands("1234567"))
}

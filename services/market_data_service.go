package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Atlas-Ticaret/atlas-backoffice/cache"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
)

// Hardcoded fallbacks shown whenever a market fetch fails. The strip is a
// display convenience, so failures never propagate past this service.
var fallbackSnapshot = models.EconomicSnapshot{
	UsdTry:       "34.85",
	GoldOz:       "2,648",
	BtcUsd:       "106,420",
	SilverOz:     "30.52",
	InterestRate: "%50",
	Inflation:    "%47.1",
	Bist100:      "289",
}

// MarketDataService fetches the USD/TRY rate and BTC price best-effort and
// caches the merged snapshot in process for five minutes.
type MarketDataService struct {
	forexURL   string
	cryptoURL  string
	httpClient *http.Client
	cache      *cache.SnapshotCache
}

func NewMarketDataService(forexURL, cryptoURL string, snapshotCache *cache.SnapshotCache) *MarketDataService {
	return &MarketDataService{
		forexURL:  forexURL,
		cryptoURL: cryptoURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		cache: snapshotCache,
	}
}

// Snapshot returns the current market strip. Every failure path falls back
// to the hardcoded defaults with Stale set; this method never errors.
func (m *MarketDataService) Snapshot(ctx context.Context) models.EconomicSnapshot {
	if cached, ok := m.cache.Get(); ok {
		return cached
	}

	snapshot := fallbackSnapshot
	snapshot.FetchedAt = time.Now()

	usdTry, forexErr := m.fetchUsdTry(ctx)
	if forexErr != nil {
		log.Printf("[market] forex fetch failed, using default: %v", forexErr)
		snapshot.Stale = true
	} else {
		snapshot.UsdTry = usdTry
	}

	btcUsd, cryptoErr := m.fetchBtcUsd(ctx)
	if cryptoErr != nil {
		log.Printf("[market] crypto fetch failed, using default: %v", cryptoErr)
		snapshot.Stale = true
	} else {
		snapshot.BtcUsd = btcUsd
	}

	m.cache.Set(snapshot)
	return snapshot
}

func (m *MarketDataService) fetchUsdTry(ctx context.Context) (string, error) {
	var parsed struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := m.getJSON(ctx, m.forexURL, &parsed); err != nil {
		return "", err
	}
	rate, ok := parsed.Rates["TRY"]
	if !ok || rate <= 0 {
		return "", fmt.Errorf("TRY rate missing in forex response")
	}
	return fmt.Sprintf("%.2f", rate), nil
}

func (m *MarketDataService) fetchBtcUsd(ctx context.Context) (string, error) {
	var parsed map[string]struct {
		USD float64 `json:"usd"`
	}
	if err := m.getJSON(ctx, m.cryptoURL, &parsed); err != nil {
		return "", err
	}
	btc, ok := parsed["bitcoin"]
	if !ok || btc.USD <= 0 {
		return "", fmt.Errorf("bitcoin price missing in crypto response")
	}
	printer := fmt.Sprintf("%.0f", btc.USD)
	return groupThousands(printer), nil
}

func (m *MarketDataService) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := m.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d from %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// groupThousands inserts commas into a plain integer string ("106420" ->
// "106,420"), matching the en-US formatting the dashboard strip uses.
func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	head := len(s) % 3
	if head == 0 {
		head = 3
	}
	out := s[:head]
	for i := head; i < len(s); i += 3 {
		out += "," + s[i:i+3]
	}
	return out
}

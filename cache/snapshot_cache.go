package cache

import (
	"sync"
	"time"

	"github.com/Atlas-Ticaret/atlas-backoffice/models"
)

const TTL = 5 * time.Minute

// SnapshotCache holds the last fetched market snapshot so the public rate
// endpoints are hit at most once per TTL.
type SnapshotCache struct {
	mu        sync.RWMutex
	snapshot  models.EconomicSnapshot
	fetchedAt time.Time
}

func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{}
}

func (c *SnapshotCache) Get() (models.EconomicSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.fetchedAt.IsZero() && time.Since(c.fetchedAt) < TTL {
		return c.snapshot, true
	}
	return models.EconomicSnapshot{}, false
}

func (c *SnapshotCache) Set(snapshot models.EconomicSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = snapshot
	c.fetchedAt = time.Now()
}

// Invalidate drops the cached snapshot (used by tests).
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchedAt = time.Time{}
}

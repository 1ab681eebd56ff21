package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Atlas-Ticaret/atlas-backoffice/models"
)

func TestSnapshotCache_EmptyMisses(t *testing.T) {
	c := NewSnapshotCache()
	_, ok := c.Get()
	assert.False(t, ok)
}

func TestSnapshotCache_SetGet(t *testing.T) {
	c := NewSnapshotCache()
	c.Set(models.EconomicSnapshot{UsdTry: "35.00"})

	got, ok := c.Get()
	require.True(t, ok)
	assert.Equal(t, "35.00", got.UsdTry)
}

func TestSnapshotCache_Invalidate(t *testing.T) {
	c := NewSnapshotCache()
	c.Set(models.EconomicSnapshot{UsdTry: "35.00"})
	c.Invalidate()

	_, ok := c.Get()
	assert.False(t, ok)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePage(t *testing.T) {
	info := ResolvePage("orders")
	assert.Equal(t, PageOrders, info.ID)
	assert.True(t, info.Implemented)

	info = ResolvePage("marketing-coupons")
	assert.Equal(t, PageCoupons, info.ID)
	assert.False(t, info.Implemented)
}

func TestResolvePage_UnknownFallsBackToDashboard(t *testing.T) {
	for _, id := range []string{"", "nope", "ORDERS", "dashboard/extra"} {
		info := ResolvePage(id)
		assert.Equal(t, PageDashboard, info.ID, "id %q", id)
	}
}

func TestMenu_CoversRegistry(t *testing.T) {
	seen := make(map[PageID]bool)
	for _, section := range Menu() {
		require.NotEmpty(t, section.Title)
		require.NotEmpty(t, section.Items)
		for _, item := range section.Items {
			assert.False(t, seen[item.ID], "page %s listed twice", item.ID)
			seen[item.ID] = true
			assert.NotEmpty(t, item.Title, "page %s has no title", item.ID)
		}
	}
	assert.Len(t, seen, len(AllPages()))
}

func TestAllPages(t *testing.T) {
	pages := AllPages()
	require.NotEmpty(t, pages)

	ids := make(map[PageID]bool)
	for _, p := range pages {
		ids[p.ID] = true
	}
	assert.True(t, ids[PageDashboard])
	assert.True(t, ids[PageCashFlow])
}

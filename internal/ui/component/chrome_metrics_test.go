package component

import (
	"testing"

	"github.com/stretchr/testify/assert"

	portmocks "github.com/bnema/floaty/internal/application/port/mocks"
	"github.com/bnema/floaty/internal/domain/entity"
)

type stubHost entity.HostID

func (h stubHost) HostID() entity.HostID { return entity.HostID(h) }

func TestChromeMetricsCache_ZeroBeforeRefresh(t *testing.T) {
	cache := NewChromeMetricsCache()

	assert.Equal(t, 0, cache.StatusBarHeight())
	assert.Equal(t, 0, cache.Snapshot().NavigationBarHeight)
}

func TestChromeMetricsCache_Refresh(t *testing.T) {
	provider := portmocks.NewMockChromeMetricsProvider(t)
	host := stubHost("main")
	provider.EXPECT().StatusBarHeight(host).Return(24).Once()
	provider.EXPECT().NavigationBarHeight(host).Return(48).Once()
	cache := NewChromeMetricsCache()

	got := cache.Refresh(provider, host)

	assert.Equal(t, entity.ChromeMetrics{StatusBarHeight: 24, NavigationBarHeight: 48}, got)
	assert.Equal(t, got, cache.Snapshot())
}

func TestChromeMetricsCache_RefreshWithoutProviderKeepsValues(t *testing.T) {
	cache := NewChromeMetricsCache()
	cache.ApplyInsets(entity.Insets{Top: 30})

	got := cache.Refresh(nil, stubHost("main"))

	assert.Equal(t, 30, got.StatusBarHeight)
}

func TestChromeMetricsCache_ApplyInsets(t *testing.T) {
	cache := NewChromeMetricsCache()

	prev, changed := cache.ApplyInsets(entity.Insets{Top: 24, Bottom: 48})
	assert.Equal(t, 0, prev)
	assert.True(t, changed)

	prev, changed = cache.ApplyInsets(entity.Insets{Top: 24})
	assert.Equal(t, 24, prev)
	assert.False(t, changed)

	assert.Equal(t, 0, cache.Snapshot().NavigationBarHeight)
}

package component

import (
	"sync"

	"github.com/bnema/floaty/internal/application/port"
	"github.com/bnema/floaty/internal/domain/entity"
)

// ChromeMetricsCache caches the host window chrome sizes used to clamp the
// floating view. Reading before the first refresh returns zeros.
type ChromeMetricsCache struct {
	mu      sync.RWMutex
	metrics entity.ChromeMetrics
}

// NewChromeMetricsCache creates an empty cache.
func NewChromeMetricsCache() *ChromeMetricsCache {
	return &ChromeMetricsCache{}
}

// Refresh reads both heights from provider for host and stores them.
// A nil provider or host leaves the cache untouched.
func (c *ChromeMetricsCache) Refresh(provider port.ChromeMetricsProvider, host port.Host) entity.ChromeMetrics {
	if provider == nil || host == nil {
		return c.Snapshot()
	}
	next := entity.ChromeMetrics{
		StatusBarHeight:     provider.StatusBarHeight(host),
		NavigationBarHeight: provider.NavigationBarHeight(host),
	}

	c.mu.Lock()
	c.metrics = next
	c.mu.Unlock()
	return next
}

// ApplyInsets updates the status bar height from a window inset change.
// Returns the previous height and whether it changed.
func (c *ChromeMetricsCache) ApplyInsets(insets entity.Insets) (previous int, changed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	previous = c.metrics.StatusBarHeight
	c.metrics.StatusBarHeight = insets.Top
	return previous, previous != insets.Top
}

// Snapshot returns the cached metrics.
func (c *ChromeMetricsCache) Snapshot() entity.ChromeMetrics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.metrics
}

// StatusBarHeight returns the cached status bar height.
func (c *ChromeMetricsCache) StatusBarHeight() int {
	return c.Snapshot().StatusBarHeight
}

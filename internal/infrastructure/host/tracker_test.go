package host_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/floaty/internal/application/port"
	"github.com/bnema/floaty/internal/domain/entity"
	"github.com/bnema/floaty/internal/infrastructure/host"
	"github.com/bnema/floaty/internal/ui/layout"
)

type recorded struct {
	host  entity.HostID
	event port.HostEvent
}

func TestTracker_ResumeSetsActiveHost(t *testing.T) {
	tracker := host.NewTracker(nil)
	tracker.Add(host.NewWindow("main", entity.ChromeMetrics{}))
	tracker.Add(host.NewWindow("settings", entity.ChromeMetrics{}))

	_, ok := tracker.ActiveHost()
	assert.False(t, ok)

	require.NoError(t, tracker.Resume("settings"))
	active, ok := tracker.ActiveHost()
	require.True(t, ok)
	assert.Equal(t, entity.HostID("settings"), active.HostID())

	assert.Error(t, tracker.Resume("missing"))
	assert.ElementsMatch(t, []entity.HostID{"main", "settings"}, tracker.Hosts())
}

func TestTracker_SubscribeAndUnsubscribe(t *testing.T) {
	tracker := host.NewTracker(nil)
	tracker.Add(host.NewWindow("main", entity.ChromeMetrics{}))
	var events []recorded

	unsubscribe := tracker.Subscribe(func(h port.Host, e port.HostEvent) {
		events = append(events, recorded{host: h.HostID(), event: e})
	})
	require.NoError(t, tracker.Resume("main"))
	require.NoError(t, tracker.Pause("main"))
	unsubscribe()
	require.NoError(t, tracker.Resume("main"))

	assert.Equal(t, []recorded{
		{host: "main", event: port.HostResumed},
		{host: "main", event: port.HostPaused},
	}, events)
}

func TestTracker_DestroyNotifiesBeforeRelease(t *testing.T) {
	registry := layout.NewContainerRegistry()
	tracker := host.NewTracker(registry)
	main := host.NewWindow("main", entity.ChromeMetrics{})
	tracker.Add(main)
	require.NoError(t, tracker.Resume("main"))

	resolvedDuringDestroy := false
	tracker.Subscribe(func(h port.Host, e port.HostEvent) {
		if e == port.HostDestroyed {
			_, resolvedDuringDestroy = tracker.ResolveContainer(h)
		}
	})

	require.NoError(t, tracker.Destroy("main"))

	assert.True(t, resolvedDuringDestroy)
	_, ok := tracker.ResolveContainer(main)
	assert.False(t, ok)
	_, ok = registry.Lookup(main.Container().ContainerID())
	assert.False(t, ok)
	_, ok = tracker.ActiveHost()
	assert.False(t, ok)
	assert.False(t, main.Container().IsAttachedToWindow())
	assert.Error(t, tracker.Destroy("main"))
}

func TestTracker_ChromeMetrics(t *testing.T) {
	tracker := host.NewTracker(nil)
	main := host.NewWindow("main", entity.ChromeMetrics{StatusBarHeight: 24, NavigationBarHeight: 48})
	tracker.Add(main)

	assert.Equal(t, 24, tracker.StatusBarHeight(main))
	assert.Equal(t, 48, tracker.NavigationBarHeight(main))

	main.SetMetrics(entity.ChromeMetrics{StatusBarHeight: 32})
	assert.Equal(t, 32, tracker.StatusBarHeight(main))
	assert.Equal(t, 0, tracker.NavigationBarHeight(nil))
}

func TestTracker_AddReplacesContainerHandle(t *testing.T) {
	tracker := host.NewTracker(nil)
	first := host.NewWindow("main", entity.ChromeMetrics{})
	second := host.NewWindow("main", entity.ChromeMetrics{})

	tracker.Add(first)
	tracker.Add(second)

	assert.Equal(t, 1, tracker.Registry().Len())
	container, ok := tracker.ResolveContainer(second)
	require.True(t, ok)
	assert.Equal(t, second.Container().ContainerID(), container.ContainerID())

	id, ok := tracker.HostForContainer(container.ContainerID())
	require.True(t, ok)
	assert.Equal(t, entity.HostID("main"), id)
	_, ok = tracker.HostForContainer(first.Container().ContainerID())
	assert.False(t, ok)
}

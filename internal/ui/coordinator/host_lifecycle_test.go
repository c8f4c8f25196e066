package coordinator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/floaty/internal/domain/entity"
	"github.com/bnema/floaty/internal/infrastructure/host"
	"github.com/bnema/floaty/internal/ui/component"
	"github.com/bnema/floaty/internal/ui/coordinator"
	"github.com/bnema/floaty/internal/ui/layout"
	"github.com/bnema/floaty/internal/ui/mainloop"
)

type lifecycleFixture struct {
	ctx     context.Context
	tracker *host.Tracker
	fc      *component.FloatingController
	coord   *coordinator.HostLifecycleCoordinator
}

func newLifecycleFixture(t *testing.T) *lifecycleFixture {
	t.Helper()
	ctx := context.Background()
	registry := layout.NewContainerRegistry()
	tracker := host.NewTracker(registry)
	for _, id := range []entity.HostID{"main", "settings", "debug.console"} {
		tracker.Add(host.NewWindow(id, entity.ChromeMetrics{}))
	}

	fc := component.NewFloatingController(component.FloatingOptions{
		LayoutID:  1,
		Factory:   layout.NewHeadlessFactory(nil),
		Scheduler: mainloop.NewManualScheduler(),
		Registry:  registry,
		Resolver:  tracker,
		Hosts:     tracker,
		Metrics:   tracker,
	})
	coord := coordinator.NewHostLifecycleCoordinator(ctx, fc, tracker, nil)
	coord.Start(ctx)
	t.Cleanup(coord.Stop)

	return &lifecycleFixture{ctx: ctx, tracker: tracker, fc: fc, coord: coord}
}

func (f *lifecycleFixture) window(t *testing.T, id entity.HostID) *host.Window {
	t.Helper()
	w, ok := f.tracker.Window(id)
	require.True(t, ok)
	return w
}

func TestHostLifecycle_FollowsResumedHostWhenEnabled(t *testing.T) {
	f := newLifecycleFixture(t)
	require.NoError(t, f.tracker.Resume("main"))
	require.NoError(t, f.fc.Show(f.ctx))

	require.NoError(t, f.tracker.Resume("settings"))

	assert.Equal(t, 0, f.window(t, "main").Container().ChildCount())
	assert.Equal(t, 1, f.window(t, "settings").Container().ChildCount())
	assert.True(t, f.fc.IsShowing())
}

func TestHostLifecycle_IgnoresResumeWhenDisabled(t *testing.T) {
	f := newLifecycleFixture(t)

	require.NoError(t, f.tracker.Resume("main"))

	_, ok := f.fc.View()
	assert.False(t, ok)
	assert.Equal(t, 0, f.window(t, "main").Container().ChildCount())
}

func TestHostLifecycle_DenyWinsOverAllow(t *testing.T) {
	f := newLifecycleFixture(t)
	f.coord.SetFilter([]string{"*"}, []string{"debug.*"})
	require.NoError(t, f.tracker.Resume("main"))
	require.NoError(t, f.fc.Show(f.ctx))

	require.NoError(t, f.tracker.Resume("debug.console"))

	assert.Equal(t, 1, f.window(t, "main").Container().ChildCount())
	assert.Equal(t, 0, f.window(t, "debug.console").Container().ChildCount())
	assert.False(t, f.coord.Allowed("debug.console"))
	assert.True(t, f.coord.Allowed("settings"))
}

func TestHostLifecycle_AllowListRestrictsHosts(t *testing.T) {
	f := newLifecycleFixture(t)
	f.coord.SetFilter([]string{"main"}, nil)

	assert.True(t, f.coord.Allowed("main"))
	assert.False(t, f.coord.Allowed("settings"))
}

func TestHostLifecycle_DestroyDetachesAndDropsHandle(t *testing.T) {
	f := newLifecycleFixture(t)
	require.NoError(t, f.tracker.Resume("main"))
	require.NoError(t, f.fc.Show(f.ctx))
	main := f.window(t, "main")

	require.NoError(t, f.tracker.Destroy("main"))

	assert.Equal(t, 0, main.Container().ChildCount())
	_, ok := f.fc.Container()
	assert.False(t, ok)
	assert.Equal(t, entity.OverlayDetached, f.fc.State())
	assert.True(t, f.fc.Enabled())
}

func TestHostLifecycle_StopUnsubscribes(t *testing.T) {
	f := newLifecycleFixture(t)
	require.NoError(t, f.tracker.Resume("main"))
	require.NoError(t, f.fc.Show(f.ctx))

	f.coord.Stop()
	require.NoError(t, f.tracker.Resume("settings"))

	assert.Equal(t, 1, f.window(t, "main").Container().ChildCount())
	assert.Equal(t, 0, f.window(t, "settings").Container().ChildCount())
}

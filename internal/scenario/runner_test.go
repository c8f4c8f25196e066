package scenario

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/floaty/internal/domain/entity"
	"github.com/bnema/floaty/internal/ui/mainloop"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func baseSettings() Settings {
	return Settings{
		LayoutID:         7,
		AnimationEnabled: true,
		AnimationKind:    "fade",
		Duration:         300 * time.Millisecond,
		ClickThreshold:   150 * time.Millisecond,
		Catalog:          map[entity.LayoutID][]string{7: {"icon"}},
	}
}

func newManualRunner(t *testing.T, sc *Scenario) (*Runner, *System) {
	t.Helper()
	runner, sys, err := NewManualRunner(context.Background(), baseSettings(), sc)
	require.NoError(t, err)
	t.Cleanup(sys.Close)
	return runner, sys
}

func TestRunner_DismissReshow(t *testing.T) {
	sc, err := LoadFile("testdata/dismiss_reshow.yaml")
	require.NoError(t, err)
	runner, sys := newManualRunner(t, sc)

	report, err := runner.RunAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, report.Failed())
	assert.Len(t, report.Results, len(sc.Steps))
	assert.Equal(t, 1, sys.Factory.Created())
	last := report.Results[len(report.Results)-1].Snapshot
	assert.Equal(t, 1100*time.Millisecond, last.Elapsed)
	assert.Equal(t, 1.0, last.Opacity)
}

func TestRunner_HostFollow(t *testing.T) {
	sc, err := LoadFile("testdata/host_follow.yaml")
	require.NoError(t, err)
	runner, _ := newManualRunner(t, sc)

	report, err := runner.RunAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, report.Failed())
}

func TestRunner_ReportsExpectationFailures(t *testing.T) {
	sc, err := Parse(strings.NewReader(`
hosts: [{id: main}]
steps:
  - do: resume
    host: main
  - do: expect
    expect: {state: attached-visible, children: {main: 1}}
  - do: show
`))
	require.NoError(t, err)
	runner, _ := newManualRunner(t, sc)

	report, err := runner.RunAll(context.Background())

	require.ErrorIs(t, err, ErrExpectationFailed)
	require.Len(t, report.Results, 3)
	failed := report.Results[1]
	assert.False(t, failed.OK())
	assert.Equal(t, []string{
		"state: want attached-visible, got uninitialized",
		"children[main]: want 1, got 0",
	}, failed.Failures)
	assert.True(t, report.Results[2].OK())
}

func TestRunner_ExpectedError(t *testing.T) {
	sc, err := Parse(strings.NewReader(`
settings: {layout_id: 0}
hosts: [{id: main}]
steps:
  - do: resume
    host: main
  - do: show
    expect_error: layout id cannot be 0
  - do: expect
    expect: {state: uninitialized, enabled: false}
`))
	require.NoError(t, err)
	runner, _ := newManualRunner(t, sc)

	_, err = runner.RunAll(context.Background())

	require.NoError(t, err)
}

func TestRunner_StopsOnStepError(t *testing.T) {
	sc, err := Parse(strings.NewReader(`
steps:
  - do: insets
    insets: {top: 10}
  - do: show
`))
	require.NoError(t, err)
	runner, _ := newManualRunner(t, sc)

	report, err := runner.RunAll(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no floating view")
	assert.Len(t, report.Results, 1)
	assert.False(t, runner.Done())
	assert.Equal(t, 1, runner.Position())
}

func TestRunner_LoopDriverRunsInRealTime(t *testing.T) {
	sc, err := Parse(strings.NewReader(`
settings: {duration: 20ms}
hosts: [{id: main}]
steps:
  - do: resume
    host: main
  - do: show
  - do: dismiss
  - do: advance
    duration: 80ms
  - do: expect
    expect: {state: uninitialized, enabled: false}
`))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	loop := mainloop.NewLoop()
	sys, err := NewSystem(ctx, sc.Settings.Apply(baseSettings()), mainloop.NewTimerScheduler(loop.Post), loop.Post)
	require.NoError(t, err)
	defer sys.Close()

	loopCtx, stopLoop := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(loopCtx)
	g.Go(func() error { return loop.Run(gctx) })

	runner := NewRunner(sys, sc, NewLoopDriver(loop))
	report, runErr := runner.RunAll(ctx)
	stopLoop()
	require.NoError(t, g.Wait())

	require.NoError(t, runErr)
	assert.Equal(t, 0, report.Failed())
}

func TestSystem_Reconfigure(t *testing.T) {
	sys, err := NewSystem(context.Background(), baseSettings(), mainloop.NewManualScheduler(), nil)
	require.NoError(t, err)
	defer sys.Close()
	require.True(t, sys.Coordinator.Allowed("main"))

	settings := baseSettings()
	settings.Deny = []string{"main"}
	settings.AnimationEnabled = false
	sys.Reconfigure(settings)

	assert.False(t, sys.Coordinator.Allowed("main"))
	assert.True(t, sys.Coordinator.Allowed("settings"))
	assert.False(t, sys.Controller.AnimationEnabled())
}

func TestRunner_ExampleScenarios(t *testing.T) {
	files, err := filepath.Glob("../../scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			sc, err := LoadFile(file)
			require.NoError(t, err)

			runner, sys, err := NewManualRunner(context.Background(), Settings{Catalog: DefaultCatalog()}, sc)
			require.NoError(t, err)
			defer sys.Close()

			report, err := runner.RunAll(context.Background())
			require.NoError(t, err)
			assert.Zero(t, report.Failed())
		})
	}
}

func TestSystem_HostDestroyDeliveredThroughLoop(t *testing.T) {
	ctx := context.Background()
	loop := mainloop.NewLoop()
	sys, err := NewSystem(ctx, baseSettings(), mainloop.NewManualScheduler(), loop.Post)
	require.NoError(t, err)
	defer sys.Close()

	w := sys.AddHost(HostSpec{ID: "a"})
	require.NoError(t, sys.Tracker.Resume("a"))
	loop.Drain()
	require.NoError(t, sys.Controller.Show(ctx))
	require.Equal(t, 1, w.Container().ChildCount())

	loop.Post(func() {
		assert.NoError(t, sys.Tracker.Destroy("a"))
	})
	loop.Drain()

	assert.Equal(t, 0, w.Container().ChildCount())
	view, ok := sys.Controller.View()
	require.True(t, ok)
	assert.Nil(t, view.GetParent())
	assert.Equal(t, entity.OverlayDetached, sys.Controller.State())
	assert.Zero(t, sys.Registry.Len())
}

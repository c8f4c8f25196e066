package coordinator_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/floaty/internal/application/port"
	"github.com/bnema/floaty/internal/domain/entity"
	"github.com/bnema/floaty/internal/infrastructure/host"
	"github.com/bnema/floaty/internal/logging"
	"github.com/bnema/floaty/internal/ui/coordinator"
	mock_coordinator "github.com/bnema/floaty/internal/ui/coordinator/mocks"
)

func newMockedCoordinator(t *testing.T, post func(func())) (*host.Tracker, *mock_coordinator.MockFloatingTarget, *coordinator.HostLifecycleCoordinator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	target := mock_coordinator.NewMockFloatingTarget(ctrl)

	tracker := host.NewTracker(nil)
	for _, id := range []entity.HostID{"main", "debug.console"} {
		tracker.Add(host.NewWindow(id, entity.ChromeMetrics{}))
	}

	ctx := context.Background()
	coord := coordinator.NewHostLifecycleCoordinator(ctx, target, tracker, post)
	coord.SetFilter(nil, []string{"debug.*"})
	coord.Start(ctx)
	t.Cleanup(coord.Stop)
	return tracker, target, coord
}

func TestHostLifecycle_ResumeAttachesWhenEnabled(t *testing.T) {
	tracker, target, _ := newMockedCoordinator(t, nil)
	main, _ := tracker.Window("main")

	target.EXPECT().Enabled().Return(true)
	target.EXPECT().AttachHost(gomock.Any(), main).Return(nil)

	require.NoError(t, tracker.Resume("main"))
}

func TestHostLifecycle_ResumeIgnoredWhenDisabled(t *testing.T) {
	tracker, target, _ := newMockedCoordinator(t, nil)

	target.EXPECT().Enabled().Return(false)
	target.EXPECT().AttachHost(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, tracker.Resume("main"))
}

func TestHostLifecycle_DeniedHostNotFollowed(t *testing.T) {
	tracker, target, _ := newMockedCoordinator(t, nil)

	target.EXPECT().Enabled().Return(true)
	target.EXPECT().AttachHost(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, tracker.Resume("debug.console"))
}

func TestHostLifecycle_AttachErrorIsSwallowed(t *testing.T) {
	tracker, target, _ := newMockedCoordinator(t, nil)

	target.EXPECT().Enabled().Return(true)
	target.EXPECT().AttachHost(gomock.Any(), gomock.Any()).Return(errors.New("no container"))

	require.NoError(t, tracker.Resume("main"))
}

func TestHostLifecycle_DestroyDetaches(t *testing.T) {
	tracker, target, _ := newMockedCoordinator(t, nil)
	main, _ := tracker.Window("main")

	target.EXPECT().DetachHost(gomock.Any(), main)

	require.NoError(t, tracker.Destroy("main"))
}

func TestHostLifecycle_PauseIgnored(t *testing.T) {
	tracker, target, _ := newMockedCoordinator(t, nil)

	target.EXPECT().Enabled().Times(0)
	target.EXPECT().DetachHost(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, tracker.Pause("main"))
}

func TestHostLifecycle_EventsRunThroughPost(t *testing.T) {
	var queued []func()
	tracker, target, _ := newMockedCoordinator(t, func(fn func()) { queued = append(queued, fn) })

	require.NoError(t, tracker.Resume("main"))
	require.Len(t, queued, 1)

	target.EXPECT().Enabled().Return(true)
	target.EXPECT().AttachHost(gomock.Any(), gomock.Any()).Return(nil)
	for _, fn := range queued {
		fn()
	}
}

func TestHostLifecycle_StopUnsubscribesMocked(t *testing.T) {
	tracker, target, coord := newMockedCoordinator(t, nil)
	coord.Stop()

	target.EXPECT().Enabled().Times(0)

	require.NoError(t, tracker.Resume("main"))
}

func TestHostLifecycle_TargetLogsCarryHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_coordinator.NewMockFloatingTarget(ctrl)
	tracker := host.NewTracker(nil)
	tracker.Add(host.NewWindow("main", entity.ChromeMetrics{}))

	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf).Level(zerolog.DebugLevel))
	coord := coordinator.NewHostLifecycleCoordinator(ctx, target, tracker, nil)
	coord.Start(ctx)
	t.Cleanup(coord.Stop)

	target.EXPECT().Enabled().Return(true)
	target.EXPECT().AttachHost(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ port.Host) error {
		logging.FromContext(ctx).Info().Msg("attaching")
		return nil
	})

	require.NoError(t, tracker.Resume("main"))

	assert.Contains(t, buf.String(), `"host_id":"main"`)
	assert.Contains(t, buf.String(), `"component":"host-lifecycle"`)
}

package animation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/floaty/internal/ui/animation"
	"github.com/bnema/floaty/internal/ui/layout"
	"github.com/bnema/floaty/internal/ui/mainloop"
)

func TestFade_StartFadesIn(t *testing.T) {
	sched := mainloop.NewManualScheduler()
	fade := animation.NewFade(sched, 100*time.Millisecond).WithFrame(25 * time.Millisecond)
	view := layout.NewHeadlessWidget("view")

	fade.Start(view)
	assert.Equal(t, 0.0, view.GetOpacity())
	assert.True(t, fade.Running())

	sched.Advance(50 * time.Millisecond)
	assert.InDelta(t, 0.5, view.GetOpacity(), 0.001)

	sched.Advance(50 * time.Millisecond)
	assert.Equal(t, 1.0, view.GetOpacity())
	assert.False(t, fade.Running())
}

func TestFade_EndFadesOutWithinDuration(t *testing.T) {
	sched := mainloop.NewManualScheduler()
	fade := animation.NewFade(sched, 300*time.Millisecond)
	view := layout.NewHeadlessWidget("view")

	fade.End(view)
	sched.Advance(fade.Duration())

	assert.Equal(t, 0.0, view.GetOpacity())
	assert.False(t, fade.Running())
	assert.Equal(t, 0, sched.Pending())
	assert.True(t, view.IsVisible())
}

func TestFade_CancelFreezesOpacity(t *testing.T) {
	sched := mainloop.NewManualScheduler()
	fade := animation.NewFade(sched, 100*time.Millisecond).WithFrame(25 * time.Millisecond)
	view := layout.NewHeadlessWidget("view")

	fade.End(view)
	sched.Advance(50 * time.Millisecond)
	fade.Cancel()
	sched.Advance(time.Second)

	assert.InDelta(t, 0.5, view.GetOpacity(), 0.001)
}

func TestFade_StartResumesFromPartialOpacity(t *testing.T) {
	sched := mainloop.NewManualScheduler()
	fade := animation.NewFade(sched, 100*time.Millisecond).WithFrame(25 * time.Millisecond)
	view := layout.NewHeadlessWidget("view")

	fade.End(view)
	sched.Advance(50 * time.Millisecond)
	fade.Start(view)

	assert.InDelta(t, 0.5, view.GetOpacity(), 0.001)
	sched.Advance(100 * time.Millisecond)
	assert.Equal(t, 1.0, view.GetOpacity())
}

func TestFade_ZeroDurationIsImmediate(t *testing.T) {
	sched := mainloop.NewManualScheduler()
	fade := animation.NewFade(sched, 0)
	view := layout.NewHeadlessWidget("view")

	fade.End(view)

	assert.Equal(t, 0.0, view.GetOpacity())
	assert.Equal(t, 0, sched.Pending())
}

func TestNone_StartRestoresOpacity(t *testing.T) {
	view := layout.NewHeadlessWidget("view")
	view.SetOpacity(0.2)

	var none animation.None
	none.End(view)
	assert.Equal(t, 0.2, view.GetOpacity())
	none.Start(view)

	assert.Equal(t, 1.0, view.GetOpacity())
	assert.Equal(t, time.Duration(0), none.Duration())
}

func TestNew(t *testing.T) {
	sched := mainloop.NewManualScheduler()

	anim, err := animation.New("Fade", sched, 200*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 200*time.Millisecond, anim.Duration())

	anim, err = animation.New(animation.KindNone, sched, 200*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, animation.None{}, anim)

	_, err = animation.New("slide", sched, 0)
	assert.Error(t, err)
}

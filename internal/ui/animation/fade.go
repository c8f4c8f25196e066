// Package animation provides the enter/exit animators used by the floating
// controller.
package animation

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/floaty/internal/application/port"
	"github.com/bnema/floaty/internal/ui/layout"
)

const (
	KindFade = "fade"
	KindNone = "none"

	// DefaultFrame is the opacity step interval (roughly 60 fps).
	DefaultFrame = 16 * time.Millisecond
)

// Fade animates widget opacity in fixed frames driven by a port.Scheduler.
type Fade struct {
	scheduler port.Scheduler
	duration  time.Duration
	frame     time.Duration

	timer port.Timer
	// gen invalidates frames scheduled by a cancelled run.
	gen uint64
}

var _ port.Animator = (*Fade)(nil)

// NewFade creates a fade of the given total duration.
func NewFade(scheduler port.Scheduler, duration time.Duration) *Fade {
	if scheduler == nil {
		panic("animation.NewFade: scheduler cannot be nil")
	}
	if duration < 0 {
		duration = 0
	}
	return &Fade{scheduler: scheduler, duration: duration, frame: DefaultFrame}
}

// WithFrame overrides the frame interval.
func (f *Fade) WithFrame(frame time.Duration) *Fade {
	if frame > 0 {
		f.frame = frame
	}
	return f
}

func (f *Fade) Duration() time.Duration { return f.duration }

// Cancel stops the running fade, leaving opacity where it is.
func (f *Fade) Cancel() {
	f.gen++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

// Start fades view in. A partially faded view continues from its current
// opacity; a fully opaque one restarts from transparent.
func (f *Fade) Start(view layout.Widget) {
	if view == nil {
		return
	}
	f.Cancel()
	from := view.GetOpacity()
	if from >= 1 {
		from = 0
	}
	f.run(view, from, 1)
}

// End fades view out. The widget stays parented; removing it is up to the caller.
func (f *Fade) End(view layout.Widget) {
	if view == nil {
		return
	}
	f.Cancel()
	f.run(view, view.GetOpacity(), 0)
}

// Running reports whether a fade has frames left.
func (f *Fade) Running() bool {
	return f.timer != nil
}

func (f *Fade) run(view layout.Widget, from, to float64) {
	if f.duration <= 0 {
		view.SetOpacity(to)
		return
	}
	steps := int((f.duration + f.frame - 1) / f.frame)
	// Spread the steps so the last frame lands within the duration.
	interval := f.duration / time.Duration(steps)
	gen := f.gen
	view.SetOpacity(from)

	var step func(i int)
	step = func(i int) {
		f.timer = f.scheduler.AfterFunc(interval, func() {
			if gen != f.gen {
				return
			}
			progress := float64(i) / float64(steps)
			view.SetOpacity(from + (to-from)*progress)
			if i == steps {
				f.timer = nil
				return
			}
			step(i + 1)
		})
	}
	step(1)
}

// None applies its end state immediately.
type None struct{}

var _ port.Animator = None{}

func (None) Cancel()                  {}
func (None) Start(view layout.Widget) { setOpacity(view, 1) }
func (None) End(view layout.Widget)   {}
func (None) Duration() time.Duration  { return 0 }

func setOpacity(view layout.Widget, v float64) {
	if view != nil {
		view.SetOpacity(v)
	}
}

// New builds the animator named by kind.
func New(kind string, scheduler port.Scheduler, duration time.Duration) (port.Animator, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindFade, "":
		return NewFade(scheduler, duration), nil
	case KindNone:
		return None{}, nil
	default:
		return nil, fmt.Errorf("unknown animation kind %q (want %s or %s)", kind, KindFade, KindNone)
	}
}

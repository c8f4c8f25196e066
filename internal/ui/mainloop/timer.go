package mainloop

import (
	"sync/atomic"
	"time"

	"github.com/bnema/floaty/internal/application/port"
)

// TimerScheduler fires wall-clock timers and delivers the callbacks through
// post, normally Loop.Post.
type TimerScheduler struct {
	post func(func())
}

var _ port.Scheduler = (*TimerScheduler)(nil)

// NewTimerScheduler creates a scheduler that runs callbacks via post.
func NewTimerScheduler(post func(func())) *TimerScheduler {
	if post == nil {
		panic("mainloop.NewTimerScheduler: post function cannot be nil")
	}
	return &TimerScheduler{post: post}
}

// AfterFunc schedules fn to run on the loop after d.
func (s *TimerScheduler) AfterFunc(d time.Duration, fn func()) port.Timer {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		s.post(func() {
			// The flag is checked on the loop side: Stop may have run after the
			// wall-clock timer fired but before this task was dequeued.
			if t.done.CompareAndSwap(false, true) {
				fn()
			}
		})
	})
	return t
}

type loopTimer struct {
	timer *time.Timer
	done  atomic.Bool
}

func (t *loopTimer) Stop() bool {
	if !t.done.CompareAndSwap(false, true) {
		return false
	}
	t.timer.Stop()
	return true
}

package mainloop

import (
	"sort"
	"sync"
	"time"

	"github.com/bnema/floaty/internal/application/port"
)

// ManualScheduler is a virtual-time Scheduler. Nothing runs until Advance is
// called, which makes deferred work deterministic in tests and simulations.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   uint64
	tasks []*manualTask
}

var _ port.Scheduler = (*ManualScheduler)(nil)

// NewManualScheduler creates a scheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

type manualTask struct {
	owner *ManualScheduler
	at    time.Duration
	seq   uint64
	fn    func()
	done  bool
}

func (t *manualTask) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}

// AfterFunc schedules fn at now+d.
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) port.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	task := &manualTask{owner: s, at: s.now + d, seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, task)
	return task
}

// Advance moves virtual time forward by d and runs every task that becomes
// due, in due-time then scheduling order. Tasks scheduled by callbacks run
// too if they fall inside the window. Returns how many tasks ran.
func (s *ManualScheduler) Advance(d time.Duration) int {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	ran := 0
	for {
		s.mu.Lock()
		next := s.nextDueLocked(target)
		if next == nil {
			s.now = target
			s.compactLocked()
			s.mu.Unlock()
			return ran
		}
		next.done = true
		s.now = next.at
		fn := next.fn
		s.mu.Unlock()

		if fn != nil {
			fn()
		}
		ran++
	}
}

// Now returns the elapsed virtual time.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of scheduled tasks that have neither run nor
// been stopped.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.done {
			n++
		}
	}
	return n
}

func (s *ManualScheduler) nextDueLocked(target time.Duration) *manualTask {
	var due []*manualTask
	for _, t := range s.tasks {
		if !t.done && t.at <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	return due[0]
}

func (s *ManualScheduler) compactLocked() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.done {
			live = append(live, t)
		}
	}
	s.tasks = live
}

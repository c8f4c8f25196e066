package mainloop

import (
	"context"
	"sync"
)

// Loop is a single-goroutine task queue standing in for the toolkit's UI
// thread. Post is safe from any goroutine; tasks run in post order on the
// goroutine calling Run or Drain.
type Loop struct {
	mu    sync.Mutex
	queue []func()
	wake  chan struct{}
}

// NewLoop creates an idle loop.
func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post enqueues fn. Nil callbacks are ignored.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Drain runs queued tasks until the queue is empty, including tasks posted
// by the tasks themselves. Returns how many tasks ran.
func (l *Loop) Drain() int {
	ran := 0
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return ran
		}
		batch := l.queue
		l.queue = nil
		l.mu.Unlock()

		for _, fn := range batch {
			fn()
			ran++
		}
	}
}

// Run processes tasks until ctx is done. Pending tasks are drained before
// returning.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			l.Drain()
			return nil
		case <-l.wake:
			l.Drain()
		}
	}
}

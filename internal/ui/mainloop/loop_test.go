package mainloop

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoopDrainRunsNestedPosts(t *testing.T) {
	l := NewLoop()
	var order []int

	l.Post(func() {
		order = append(order, 1)
		l.Post(func() { order = append(order, 3) })
	})
	l.Post(func() { order = append(order, 2) })
	l.Post(nil)

	if ran := l.Drain(); ran != 3 {
		t.Fatalf("expected 3 tasks, got %d", ran)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("unexpected order %v", order)
	}
}

func TestLoopRunStopsOnCancel(t *testing.T) {
	l := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	var ran atomic.Bool
	executed := make(chan struct{})
	l.Post(func() {
		ran.Store(true)
		close(executed)
	})

	select {
	case <-executed:
	case <-time.After(time.Second):
		t.Fatalf("posted task did not run")
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("Run did not return after cancel")
	}
	if !ran.Load() {
		t.Fatalf("expected task to have run")
	}
}

func TestTimerSchedulerDeliversThroughPost(t *testing.T) {
	l := NewLoop()
	s := NewTimerScheduler(l.Post)
	fired := make(chan struct{})

	s.AfterFunc(5*time.Millisecond, func() { close(fired) })

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		l.Drain()
		select {
		case <-fired:
			return
		default:
			time.Sleep(time.Millisecond)
		}
	}
	t.Fatalf("timer callback never ran on the loop")
}

func TestTimerSchedulerStopAfterFireBeforeDrain(t *testing.T) {
	l := NewLoop()
	s := NewTimerScheduler(l.Post)
	ran := false

	timer := s.AfterFunc(time.Millisecond, func() { ran = true })
	time.Sleep(20 * time.Millisecond)

	if !timer.Stop() {
		t.Fatalf("expected Stop to win before the loop ran the task")
	}
	l.Drain()

	if ran {
		t.Fatalf("expected stopped timer not to run")
	}
	if timer.Stop() {
		t.Fatalf("expected second Stop to return false")
	}
}

package scenario

import (
	"context"
	"time"

	"github.com/bnema/floaty/internal/ui/mainloop"
)

// Driver runs work on the UI loop and moves time forward.
type Driver interface {
	// Do runs fn on the UI loop and waits for it.
	Do(ctx context.Context, fn func()) error
	// Advance lets d of time pass, running whatever falls due.
	Advance(ctx context.Context, d time.Duration) error
	Elapsed() time.Duration
}

// ManualDriver runs everything on the calling goroutine against virtual time.
type ManualDriver struct {
	sched *mainloop.ManualScheduler
}

// NewManualDriver creates a driver over sched.
func NewManualDriver(sched *mainloop.ManualScheduler) *ManualDriver {
	return &ManualDriver{sched: sched}
}

func (d *ManualDriver) Do(ctx context.Context, fn func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fn()
	return nil
}

func (d *ManualDriver) Advance(ctx context.Context, dur time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.sched.Advance(dur)
	return nil
}

func (d *ManualDriver) Elapsed() time.Duration { return d.sched.Now() }

// LoopDriver posts work to a running Loop and lets wall-clock time pass.
type LoopDriver struct {
	loop  *mainloop.Loop
	start time.Time
}

// NewLoopDriver creates a driver for loop. The loop must be running.
func NewLoopDriver(loop *mainloop.Loop) *LoopDriver {
	return &LoopDriver{loop: loop, start: time.Now()}
}

func (d *LoopDriver) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	d.loop.Post(func() {
		defer close(done)
		fn()
	})
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *LoopDriver) Advance(ctx context.Context, dur time.Duration) error {
	timer := time.NewTimer(dur)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return ctx.Err()
	}
	// Let callbacks that fired during the wait finish before returning.
	return d.Do(ctx, func() {})
}

func (d *LoopDriver) Elapsed() time.Duration { return time.Since(d.start) }

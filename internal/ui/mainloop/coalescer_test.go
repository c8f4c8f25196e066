package mainloop

import "testing"

func TestCoalescerMergesBurstIntoSingleRun(t *testing.T) {
	queue := make([]func(), 0, 8)
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	top := 0
	for i := 1; i <= 5; i++ {
		v := i * 8
		c.Post("insets", func() { top = v })
	}

	if len(queue) != 1 {
		t.Fatalf("expected 1 scheduled callback, got %d", len(queue))
	}
	if !c.Pending("insets") {
		t.Fatalf("expected insets work to be pending")
	}
	queue[0]()

	if top != 40 {
		t.Fatalf("expected latest callback to run, got %d", top)
	}
	if c.Pending("insets") {
		t.Fatalf("expected no pending work after run")
	}
}

func TestCoalescerRunsInlineWithSynchronousPost(t *testing.T) {
	c := NewCoalescer(func(fn func()) { fn() })

	runs := 0
	c.Post("insets", func() { runs++ })
	c.Post("insets", func() { runs++ })

	if runs != 2 {
		t.Fatalf("expected each post to run inline, got %d runs", runs)
	}
}

func TestCoalescerDropsWorkAfterDestroy(t *testing.T) {
	queue := make([]func(), 0, 4)
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	ran := false
	c.Post("metrics", func() { ran = true })
	c.Destroy()

	if len(queue) != 1 {
		t.Fatalf("expected one queued callback before destroy, got %d", len(queue))
	}
	queue[0]()

	if ran {
		t.Fatalf("expected queued work to be dropped after destroy")
	}

	c.Post("metrics", func() { ran = true })
	if len(queue) != 1 {
		t.Fatalf("expected no new callback after destroy, got %d", len(queue))
	}
}

func TestNewCoalescerPanicsOnNilPost(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected NewCoalescer to panic when post is nil")
		}
	}()

	_ = NewCoalescer(nil)
}

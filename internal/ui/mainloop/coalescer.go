// Package mainloop provides UI-thread scheduling primitives: a single-goroutine
// task loop, a coalescer for bursty events and timer schedulers that deliver
// callbacks back onto the loop.
package mainloop

import "sync"

// Coalescer merges bursts of same-key main-loop tasks so only the latest
// callback for a key runs once per post.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]bool
	callbacks map[string]func()
	post      func(func())
	destroyed bool
}

// NewCoalescer creates a coalescer that schedules through post.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}

	return &Coalescer{
		pending:   make(map[string]bool),
		callbacks: make(map[string]func()),
		post:      post,
	}
}

// Post records fn as the latest work for key and schedules a run if none is
// pending. Empty keys and nil callbacks are ignored.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.callbacks[key] = fn
	if c.pending[key] {
		c.mu.Unlock()
		return
	}
	c.pending[key] = true
	post := c.post
	c.mu.Unlock()

	post(func() { c.run(key) })
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	if c.destroyed {
		delete(c.pending, key)
		delete(c.callbacks, key)
		c.mu.Unlock()
		return
	}
	fn := c.callbacks[key]
	delete(c.pending, key)
	delete(c.callbacks, key)
	c.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Pending reports whether work for key is scheduled but has not run yet.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending[key]
}

// Destroy drops all pending work; later posts are ignored.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[string]bool{}
	c.callbacks = map[string]func(){}
	c.mu.Unlock()
}

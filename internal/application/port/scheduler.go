package port

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. It is idempotent and safe to call after the
	// callback already ran. Returns true if this call prevented the callback.
	Stop() bool
}

// Scheduler runs callbacks on the UI thread after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

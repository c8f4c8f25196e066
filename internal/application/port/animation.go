package port

import (
	"time"

	"github.com/bnema/floaty/internal/ui/layout"
)

// Animator is the enter/exit animation strategy. The controller treats it as
// a black box: every call is fire-and-forget.
type Animator interface {
	// Cancel stops any in-flight animation.
	Cancel()
	// Start plays the enter animation on view.
	Start(view layout.Widget)
	// End plays the exit animation on view.
	End(view layout.Widget)
	// Duration is how long the exit animation takes; teardown is deferred by it.
	Duration() time.Duration
}

// ViewLifecycle receives notifications around overlay (re)parenting.
type ViewLifecycle interface {
	// PostAttach is called right before the view is added to a container.
	PostAttach()
	// PostDetached is called right before the view is removed from a container.
	PostDetached()
}

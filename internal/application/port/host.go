// Package port defines the boundaries the overlay core consumes.
// Implementations live in infrastructure and ui packages; tests use the
// generated mocks under port/mocks.
package port

import (
	"github.com/bnema/floaty/internal/domain/entity"
	"github.com/bnema/floaty/internal/ui/layout"
)

// Host is an application screen that can provide a container for the overlay.
type Host interface {
	HostID() entity.HostID
}

// ContainerResolver resolves a host to the container the overlay is parented into.
type ContainerResolver interface {
	// ResolveContainer returns ok=false when the host has no usable container.
	ResolveContainer(host Host) (layout.ContainerWidget, bool)
}

// ChromeMetricsProvider reads the host window chrome sizes.
type ChromeMetricsProvider interface {
	StatusBarHeight(host Host) int
	NavigationBarHeight(host Host) int
}

// HostEvent is a host lifecycle transition.
type HostEvent int

const (
	HostResumed   HostEvent = iota // Host became the active screen
	HostPaused                     // Host lost focus but still exists
	HostDestroyed                  // Host and its container are gone
)

func (e HostEvent) String() string {
	switch e {
	case HostResumed:
		return "resumed"
	case HostPaused:
		return "paused"
	case HostDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// HostHandler is called on host lifecycle transitions.
type HostHandler func(host Host, event HostEvent)

// ActiveHostProvider exposes the host currently in the foreground.
type ActiveHostProvider interface {
	// ActiveHost returns the currently active host, if any.
	ActiveHost() (Host, bool)
}

// HostNotifier tracks the active host and delivers host change events.
type HostNotifier interface {
	ActiveHostProvider
	// Subscribe registers handler and returns an unsubscribe function.
	Subscribe(handler HostHandler) func()
}

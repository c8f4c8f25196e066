// Package entity contains domain entities representing core overlay concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"errors"
	"time"
)

// LayoutID identifies the layout the floating view is built from.
// Zero means "unset" and can never be rendered.
type LayoutID int

// IsSet reports whether the id refers to a real layout.
func (id LayoutID) IsSet() bool {
	return id != 0
}

// ContainerID is a non-owning handle to a host container.
// Handles are looked up in a registry on every use; a miss means the
// container is gone.
type ContainerID string

// HostID identifies an application screen that can provide a container.
type HostID string

// OverlayState is the lifecycle state of the floating view, derived from
// whether the view exists, whether it has a live container and whether it
// is visible.
//
//	Uninitialized ──show/attach──► AttachedVisible ◄──show/hide──► AttachedHidden
//	      ▲                               │
//	      └──────────── dismiss ──────────┘
type OverlayState int

const (
	OverlayUninitialized   OverlayState = iota // No view exists
	OverlayDetached                            // View exists, no live container
	OverlayAttachedHidden                      // Parented but not visible
	OverlayAttachedVisible                     // Parented and visible
)

func (s OverlayState) String() string {
	switch s {
	case OverlayUninitialized:
		return "uninitialized"
	case OverlayDetached:
		return "detached"
	case OverlayAttachedHidden:
		return "attached-hidden"
	case OverlayAttachedVisible:
		return "attached-visible"
	default:
		return "unknown"
	}
}

// IsAttached reports whether the state is one of the attached states.
func (s OverlayState) IsAttached() bool {
	return s == OverlayAttachedHidden || s == OverlayAttachedVisible
}

// ChromeMetrics holds the host window chrome sizes the floating view uses
// to clamp its position.
type ChromeMetrics struct {
	StatusBarHeight     int
	NavigationBarHeight int
}

// Insets are the system window insets delivered by the view system.
type Insets struct {
	Top, Bottom, Left, Right int
}

// LayoutParams describes how the floating view is laid out inside its container.
type LayoutParams struct {
	Width   int
	Height  int
	Gravity Gravity
	OffsetX int
	OffsetY int
}

// Gravity anchors the floating view to a container edge or corner.
type Gravity string

const (
	GravityTopStart    Gravity = "top-start"
	GravityTopEnd      Gravity = "top-end"
	GravityBottomStart Gravity = "bottom-start"
	GravityBottomEnd   Gravity = "bottom-end"
	GravityCenter      Gravity = "center"
)

// ClickConfig stores the tap callback and the minimum press interval the
// gesture layer uses to tell a tap from a drag.
type ClickConfig struct {
	Threshold time.Duration
	OnClick   func()
}

var (
	// ErrLayoutUnset is returned when the floating view must be built but
	// no layout id was ever configured.
	ErrLayoutUnset = errors.New("layout id cannot be 0")
	// ErrNoActiveHost is logged when an operation needs the active host and
	// none is known.
	ErrNoActiveHost = errors.New("no active host")
)

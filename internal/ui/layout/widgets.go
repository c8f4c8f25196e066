// Package layout provides view-system abstractions for the floating overlay.
// It defines interfaces that wrap the host toolkit, enabling unit testing
// without a live UI runtime, plus a headless in-memory implementation.
package layout

import "github.com/bnema/floaty/internal/domain/entity"

// Widget is the base interface that all view-system widgets implement.
type Widget interface {
	// ID is a stable identity used for logging and lookups.
	ID() string

	// Visibility
	Show()
	Hide()
	SetVisible(visible bool)
	IsVisible() bool

	// Opacity is driven by animation strategies (0.0 transparent, 1.0 opaque).
	SetOpacity(opacity float64)
	GetOpacity() float64

	// IsAttachedToWindow reports whether the widget is part of a realized
	// window hierarchy, i.e. it has a parent that is itself on screen.
	IsAttachedToWindow() bool

	// GetParent returns the container currently holding the widget, or nil.
	GetParent() ContainerWidget
}

// ContainerWidget is a host-provided view able to parent the floating view.
type ContainerWidget interface {
	ContainerID() entity.ContainerID

	// AddChild parents child into this container. A child already parented
	// elsewhere is moved.
	AddChild(child Widget)
	// RemoveChild unparents child. No-op if child is not a direct child.
	RemoveChild(child Widget)
	HasChild(child Widget) bool

	IsAttachedToWindow() bool
}

// FloatingWidget is the rendered overlay view.
type FloatingWidget interface {
	Widget

	LayoutID() entity.LayoutID

	SetLayoutParams(params entity.LayoutParams)
	GetLayoutParams() entity.LayoutParams

	// ConnectInsetsChanged registers a callback for window inset changes and
	// returns a handler ID for disconnection.
	ConnectInsetsChanged(callback func(insets entity.Insets)) uint32
	DisconnectInsetsChanged(handlerID uint32)
	// RequestApplyInsets asks the view system to redeliver current insets.
	RequestApplyInsets()

	// FindChild returns a named sub-widget of the inflated layout.
	FindChild(name string) (Widget, bool)
}

// ViewHolder exposes named sub-elements of one floating view instance.
// It is bound 1:1 to the view it was created for.
type ViewHolder interface {
	View() FloatingWidget
	Find(name string) (Widget, bool)
}

// WidgetFactory creates floating views and their holders.
// This abstraction allows tests to inject mock factories.
type WidgetFactory interface {
	NewFloating(layoutID entity.LayoutID) FloatingWidget
	NewViewHolder(view FloatingWidget) ViewHolder
}

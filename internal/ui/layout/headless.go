package layout

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/bnema/floaty/internal/domain/entity"
)

// parentSetter is implemented by headless widgets so headless containers can
// maintain the parent link the real toolkit would maintain.
type parentSetter interface {
	setParent(parent ContainerWidget)
}

// HeadlessWidget is an in-memory Widget used by the simulator and tests.
type HeadlessWidget struct {
	id      string
	visible bool
	opacity float64
	parent  ContainerWidget
}

// NewHeadlessWidget creates a visible, opaque, unparented widget.
func NewHeadlessWidget(name string) *HeadlessWidget {
	if name == "" {
		name = uuid.NewString()
	}
	return &HeadlessWidget{id: name, visible: true, opacity: 1}
}

func (w *HeadlessWidget) ID() string                 { return w.id }
func (w *HeadlessWidget) Show()                      { w.visible = true }
func (w *HeadlessWidget) Hide()                      { w.visible = false }
func (w *HeadlessWidget) SetVisible(visible bool)    { w.visible = visible }
func (w *HeadlessWidget) IsVisible() bool            { return w.visible }
func (w *HeadlessWidget) SetOpacity(opacity float64) { w.opacity = clamp01(opacity) }
func (w *HeadlessWidget) GetOpacity() float64        { return w.opacity }
func (w *HeadlessWidget) GetParent() ContainerWidget { return w.parent }

func (w *HeadlessWidget) IsAttachedToWindow() bool {
	return w.parent != nil && w.parent.IsAttachedToWindow()
}

func (w *HeadlessWidget) setParent(parent ContainerWidget) { w.parent = parent }

// HeadlessContainer is an in-memory ContainerWidget.
type HeadlessContainer struct {
	id       entity.ContainerID
	children []Widget
	realized bool
}

// NewHeadlessContainer creates a container that is attached to a window.
func NewHeadlessContainer() *HeadlessContainer {
	return &HeadlessContainer{
		id:       entity.ContainerID(uuid.NewString()),
		realized: true,
	}
}

func (c *HeadlessContainer) ContainerID() entity.ContainerID { return c.id }
func (c *HeadlessContainer) IsAttachedToWindow() bool        { return c.realized }

// SetAttachedToWindow simulates the host window being realized or torn down.
func (c *HeadlessContainer) SetAttachedToWindow(attached bool) { c.realized = attached }

func (c *HeadlessContainer) AddChild(child Widget) {
	if child == nil || c.HasChild(child) {
		return
	}
	if prev := child.GetParent(); prev != nil {
		prev.RemoveChild(child)
	}
	c.children = append(c.children, child)
	if ps, ok := child.(parentSetter); ok {
		ps.setParent(c)
	}
}

func (c *HeadlessContainer) RemoveChild(child Widget) {
	idx := slices.Index(c.children, child)
	if idx < 0 {
		return
	}
	c.children = slices.Delete(c.children, idx, idx+1)
	if ps, ok := child.(parentSetter); ok {
		ps.setParent(nil)
	}
}

func (c *HeadlessContainer) HasChild(child Widget) bool {
	return slices.Contains(c.children, child)
}

// ChildCount returns the number of direct children.
func (c *HeadlessContainer) ChildCount() int {
	return len(c.children)
}

// HeadlessFloating is an in-memory FloatingWidget built from a layout catalog.
type HeadlessFloating struct {
	HeadlessWidget

	layoutID entity.LayoutID
	params   entity.LayoutParams
	children map[string]Widget
	insets   entity.Insets
	inset    bool

	mu            sync.Mutex
	insetHandlers map[uint32]func(entity.Insets)
	nextHandlerID uint32
}

// NewHeadlessFloating creates a floating widget with the given named children.
func NewHeadlessFloating(layoutID entity.LayoutID, childNames ...string) *HeadlessFloating {
	f := &HeadlessFloating{
		HeadlessWidget: *NewHeadlessWidget(""),
		layoutID:       layoutID,
		children:       make(map[string]Widget, len(childNames)),
		insetHandlers:  make(map[uint32]func(entity.Insets)),
	}
	for _, name := range childNames {
		f.children[name] = NewHeadlessWidget(name)
	}
	return f
}

func (f *HeadlessFloating) LayoutID() entity.LayoutID                  { return f.layoutID }
func (f *HeadlessFloating) SetLayoutParams(params entity.LayoutParams) { f.params = params }
func (f *HeadlessFloating) GetLayoutParams() entity.LayoutParams       { return f.params }

func (f *HeadlessFloating) FindChild(name string) (Widget, bool) {
	w, ok := f.children[name]
	return w, ok
}

func (f *HeadlessFloating) ConnectInsetsChanged(callback func(entity.Insets)) uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextHandlerID++
	f.insetHandlers[f.nextHandlerID] = callback
	return f.nextHandlerID
}

func (f *HeadlessFloating) DisconnectInsetsChanged(handlerID uint32) {
	f.mu.Lock()
	delete(f.insetHandlers, handlerID)
	f.mu.Unlock()
}

// RequestApplyInsets redelivers the last known insets. Nothing is delivered
// before the first EmitInsets.
func (f *HeadlessFloating) RequestApplyInsets() {
	f.mu.Lock()
	insets, ok := f.insets, f.inset
	f.mu.Unlock()
	if ok {
		f.EmitInsets(insets)
	}
}

// EmitInsets simulates the view system dispatching new window insets.
func (f *HeadlessFloating) EmitInsets(insets entity.Insets) {
	f.mu.Lock()
	f.insets = insets
	f.inset = true
	handlers := make([]func(entity.Insets), 0, len(f.insetHandlers))
	for _, h := range f.insetHandlers {
		handlers = append(handlers, h)
	}
	f.mu.Unlock()

	for _, h := range handlers {
		h(insets)
	}
}

// InsetHandlerCount returns the number of connected inset callbacks.
func (f *HeadlessFloating) InsetHandlerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.insetHandlers)
}

type headlessViewHolder struct {
	view FloatingWidget
}

func (h headlessViewHolder) View() FloatingWidget { return h.view }

func (h headlessViewHolder) Find(name string) (Widget, bool) {
	return h.view.FindChild(name)
}

// HeadlessFactory builds headless floating views from a layout catalog that
// maps layout ids to their named sub-widgets.
type HeadlessFactory struct {
	Catalog map[entity.LayoutID][]string

	mu      sync.Mutex
	created int
}

// NewHeadlessFactory creates a factory for the given catalog.
func NewHeadlessFactory(catalog map[entity.LayoutID][]string) *HeadlessFactory {
	if catalog == nil {
		catalog = map[entity.LayoutID][]string{}
	}
	return &HeadlessFactory{Catalog: catalog}
}

func (f *HeadlessFactory) NewFloating(layoutID entity.LayoutID) FloatingWidget {
	f.mu.Lock()
	f.created++
	names := f.Catalog[layoutID]
	f.mu.Unlock()
	return NewHeadlessFloating(layoutID, names...)
}

func (f *HeadlessFactory) NewViewHolder(view FloatingWidget) ViewHolder {
	return headlessViewHolder{view: view}
}

// Created returns how many floating views the factory has built.
func (f *HeadlessFactory) Created() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.created
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

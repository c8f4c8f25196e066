// Package host provides an in-memory host tracker: it knows which host
// screens exist, which one is active, resolves hosts to their containers and
// reports their chrome metrics.
package host

import (
	"fmt"
	"sync"

	"github.com/bnema/floaty/internal/application/port"
	"github.com/bnema/floaty/internal/domain/entity"
	"github.com/bnema/floaty/internal/ui/layout"
)

// Window is a headless host screen with a single root container.
type Window struct {
	id        entity.HostID
	container *layout.HeadlessContainer

	mu      sync.RWMutex
	metrics entity.ChromeMetrics
}

// NewWindow creates a host with a realized root container.
func NewWindow(id entity.HostID, metrics entity.ChromeMetrics) *Window {
	return &Window{
		id:        id,
		container: layout.NewHeadlessContainer(),
		metrics:   metrics,
	}
}

func (w *Window) HostID() entity.HostID { return w.id }

// Container returns the root container of the window.
func (w *Window) Container() *layout.HeadlessContainer { return w.container }

// SetMetrics updates the chrome metrics reported for this window.
func (w *Window) SetMetrics(m entity.ChromeMetrics) {
	w.mu.Lock()
	w.metrics = m
	w.mu.Unlock()
}

// Metrics returns the window chrome metrics.
func (w *Window) Metrics() entity.ChromeMetrics {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.metrics
}

type subscription struct {
	id      int
	handler port.HostHandler
}

// Tracker tracks host windows and the active one.
type Tracker struct {
	registry *layout.ContainerRegistry

	mu      sync.RWMutex
	windows map[entity.HostID]*Window
	active  entity.HostID
	subs    []subscription
	nextSub int
}

var (
	_ port.HostNotifier          = (*Tracker)(nil)
	_ port.ContainerResolver     = (*Tracker)(nil)
	_ port.ChromeMetricsProvider = (*Tracker)(nil)
)

// NewTracker creates a tracker that registers host containers in registry.
func NewTracker(registry *layout.ContainerRegistry) *Tracker {
	if registry == nil {
		registry = layout.NewContainerRegistry()
	}
	return &Tracker{
		registry: registry,
		windows:  make(map[entity.HostID]*Window),
	}
}

// Registry returns the container registry the tracker maintains.
func (t *Tracker) Registry() *layout.ContainerRegistry {
	return t.registry
}

// Add registers a window. Adding an existing id replaces it.
func (t *Tracker) Add(w *Window) {
	t.mu.Lock()
	if prev, ok := t.windows[w.id]; ok {
		t.registry.Release(prev.container.ContainerID())
	}
	t.windows[w.id] = w
	t.mu.Unlock()
	t.registry.Track(w.container)
}

// Window returns a registered window.
func (t *Tracker) Window(id entity.HostID) (*Window, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	w, ok := t.windows[id]
	return w, ok
}

// Hosts returns the ids of all registered windows.
func (t *Tracker) Hosts() []entity.HostID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]entity.HostID, 0, len(t.windows))
	for id := range t.windows {
		ids = append(ids, id)
	}
	return ids
}

// HostForContainer returns the host owning the container handle.
func (t *Tracker) HostForContainer(id entity.ContainerID) (entity.HostID, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for hostID, w := range t.windows {
		if w.container.ContainerID() == id {
			return hostID, true
		}
	}
	return "", false
}

// Resume makes id the active host and notifies subscribers.
func (t *Tracker) Resume(id entity.HostID) error {
	t.mu.Lock()
	w, ok := t.windows[id]
	if !ok {
		t.mu.Unlock()
		return fmt.Errorf("resume host %q: unknown host", id)
	}
	t.active = id
	t.mu.Unlock()

	t.notify(w, port.HostResumed)
	return nil
}

// Pause notifies subscribers that id lost the foreground. The active host is
// kept so a later show still has a target.
func (t *Tracker) Pause(id entity.HostID) error {
	w, ok := t.Window(id)
	if !ok {
		return fmt.Errorf("pause host %q: unknown host", id)
	}
	t.notify(w, port.HostPaused)
	return nil
}

// Destroy notifies subscribers, then forgets the host and releases its
// container handle so stale references miss.
func (t *Tracker) Destroy(id entity.HostID) error {
	w, ok := t.Window(id)
	if !ok {
		return fmt.Errorf("destroy host %q: unknown host", id)
	}
	t.notify(w, port.HostDestroyed)

	t.mu.Lock()
	delete(t.windows, id)
	if t.active == id {
		t.active = ""
	}
	t.mu.Unlock()

	w.container.SetAttachedToWindow(false)
	t.registry.Release(w.container.ContainerID())
	return nil
}

// ActiveHost implements port.ActiveHostProvider.
func (t *Tracker) ActiveHost() (port.Host, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	w, ok := t.windows[t.active]
	if !ok {
		return nil, false
	}
	return w, true
}

// Subscribe implements port.HostNotifier.
func (t *Tracker) Subscribe(handler port.HostHandler) func() {
	t.mu.Lock()
	t.nextSub++
	id := t.nextSub
	t.subs = append(t.subs, subscription{id: id, handler: handler})
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		for i, s := range t.subs {
			if s.id == id {
				t.subs = append(t.subs[:i], t.subs[i+1:]...)
				return
			}
		}
	}
}

// ResolveContainer implements port.ContainerResolver.
func (t *Tracker) ResolveContainer(host port.Host) (layout.ContainerWidget, bool) {
	if host == nil {
		return nil, false
	}
	w, ok := t.Window(host.HostID())
	if !ok {
		return nil, false
	}
	return t.registry.Lookup(w.container.ContainerID())
}

// StatusBarHeight implements port.ChromeMetricsProvider.
func (t *Tracker) StatusBarHeight(host port.Host) int {
	if w, ok := t.windowFor(host); ok {
		return w.Metrics().StatusBarHeight
	}
	return 0
}

// NavigationBarHeight implements port.ChromeMetricsProvider.
func (t *Tracker) NavigationBarHeight(host port.Host) int {
	if w, ok := t.windowFor(host); ok {
		return w.Metrics().NavigationBarHeight
	}
	return 0
}

func (t *Tracker) windowFor(host port.Host) (*Window, bool) {
	if host == nil {
		return nil, false
	}
	return t.Window(host.HostID())
}

func (t *Tracker) notify(w *Window, event port.HostEvent) {
	t.mu.RLock()
	subs := make([]subscription, len(t.subs))
	copy(subs, t.subs)
	t.mu.RUnlock()

	for _, s := range subs {
		s.handler(w, event)
	}
}

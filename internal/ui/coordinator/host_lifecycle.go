package coordinator

import (
	"context"
	"path"
	"sync"

	"github.com/bnema/floaty/internal/application/port"
	"github.com/bnema/floaty/internal/logging"
)

//go:generate mockgen -source=host_lifecycle.go -destination=mocks/mock_target.go -package=mock_coordinator

// FloatingTarget is the part of the floating controller driven by host
// lifecycle events.
type FloatingTarget interface {
	Enabled() bool
	AttachHost(ctx context.Context, host port.Host) error
	DetachHost(ctx context.Context, host port.Host)
}

// HostLifecycleCoordinator follows the overlay across hosts: it attaches the
// enabled overlay to every resumed host the filter admits and detaches it
// from destroyed hosts.
type HostLifecycleCoordinator struct {
	target   FloatingTarget
	notifier port.HostNotifier
	post     func(func())

	mu          sync.RWMutex
	allow       []string
	deny        []string
	unsubscribe func()
}

// NewHostLifecycleCoordinator creates a coordinator. post delivers events onto
// the UI loop; nil runs them inline.
func NewHostLifecycleCoordinator(
	ctx context.Context,
	target FloatingTarget,
	notifier port.HostNotifier,
	post func(func()),
) *HostLifecycleCoordinator {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating host lifecycle coordinator")

	if post == nil {
		post = func(fn func()) { fn() }
	}
	return &HostLifecycleCoordinator{
		target:   target,
		notifier: notifier,
		post:     post,
	}
}

// SetFilter replaces the host filters. Patterns use path.Match syntax; an
// empty allow list admits every host and deny always wins.
func (c *HostLifecycleCoordinator) SetFilter(allow, deny []string) {
	c.mu.Lock()
	c.allow = append([]string(nil), allow...)
	c.deny = append([]string(nil), deny...)
	c.mu.Unlock()
}

// Allowed reports whether the overlay may follow onto hostID.
func (c *HostLifecycleCoordinator) Allowed(hostID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if matchAny(c.deny, hostID) {
		return false
	}
	return len(c.allow) == 0 || matchAny(c.allow, hostID)
}

// Start subscribes to host events. Calling Start twice is a no-op.
func (c *HostLifecycleCoordinator) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unsubscribe != nil || c.notifier == nil {
		return
	}
	c.unsubscribe = c.notifier.Subscribe(func(host port.Host, event port.HostEvent) {
		c.post(func() { c.handle(ctx, host, event) })
	})
}

// Stop unsubscribes from host events.
func (c *HostLifecycleCoordinator) Stop() {
	c.mu.Lock()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}

func (c *HostLifecycleCoordinator) handle(ctx context.Context, host port.Host, event port.HostEvent) {
	if host == nil {
		return
	}
	id := string(host.HostID())
	ctx = logging.WithHost(logging.WithComponent(ctx, "host-lifecycle"), id)
	log := logging.FromContext(ctx).With().Str("event", event.String()).Logger()

	switch event {
	case port.HostResumed:
		if !c.target.Enabled() {
			log.Trace().Msg("overlay disabled, not following host")
			return
		}
		if !c.Allowed(id) {
			log.Debug().Msg("host filtered out")
			return
		}
		if err := c.target.AttachHost(ctx, host); err != nil {
			log.Error().Err(err).Msg("failed to attach overlay to resumed host")
		}
	case port.HostDestroyed:
		c.target.DetachHost(ctx, host)
	default:
		log.Trace().Msg("host event ignored")
	}
}

func matchAny(patterns []string, id string) bool {
	for _, p := range patterns {
		if ok, err := path.Match(p, id); err == nil && ok {
			return true
		}
	}
	return false
}

package component

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/floaty/internal/application/port"
	"github.com/bnema/floaty/internal/domain/entity"
	"github.com/bnema/floaty/internal/logging"
	"github.com/bnema/floaty/internal/ui/layout"
	"github.com/bnema/floaty/internal/ui/mainloop"
)

const insetsCoalesceKey = "floating-insets"

// FloatingOptions configures a FloatingController.
type FloatingOptions struct {
	// LayoutID is the layout the floating view is built from. It may be left
	// unset and provided later through UpdateLayout.
	LayoutID entity.LayoutID

	Factory   layout.WidgetFactory
	Scheduler port.Scheduler

	// Registry resolves the non-owning container handle. Containers the
	// windowing side has not registered are tracked by the controller and
	// released as soon as the view leaves them. Defaults to a private registry.
	Registry *layout.ContainerRegistry
	Resolver port.ContainerResolver
	Hosts    port.ActiveHostProvider
	Metrics  port.ChromeMetricsProvider

	// Animator is optional; without it every transition is immediate.
	Animator         port.Animator
	AnimationEnabled bool

	Lifecycle port.ViewLifecycle

	// MetricsCache defaults to a fresh cache.
	MetricsCache *ChromeMetricsCache
	// Post schedules inset updates onto the UI loop. Defaults to running inline.
	Post func(func())
}

// FloatingController owns the floating overlay view and drives its
// lifecycle: creation, parenting into host containers, show/hide and
// animated teardown.
//
// All methods must be called from the UI loop goroutine. The only deferred
// work is the finalize step scheduled by Dismiss, which the Scheduler
// delivers back onto the loop.
type FloatingController struct {
	factory   layout.WidgetFactory
	scheduler port.Scheduler
	registry  *layout.ContainerRegistry
	resolver  port.ContainerResolver
	hosts     port.ActiveHostProvider
	provider  port.ChromeMetricsProvider
	animator  port.Animator
	lifecycle port.ViewLifecycle
	metrics   *ChromeMetricsCache
	insets    *mainloop.Coalescer

	layoutID         entity.LayoutID
	params           entity.LayoutParams
	hasParams        bool
	enabled          bool
	animationEnabled bool
	click            entity.ClickConfig

	view          layout.FloatingWidget
	holder        layout.ViewHolder
	insetsHandler uint32
	// fresh is true from creation until the view is first parented; only a
	// fresh view plays the enter animation.
	fresh     bool
	container entity.ContainerID
	// ownsHandle is true when the controller registered container itself.
	ownsHandle bool
	teardown   port.Timer
}

// NewFloatingController creates a controller. It panics if Factory or
// Scheduler is nil.
func NewFloatingController(opts FloatingOptions) *FloatingController {
	if opts.Factory == nil {
		panic("component.NewFloatingController: factory cannot be nil")
	}
	if opts.Scheduler == nil {
		panic("component.NewFloatingController: scheduler cannot be nil")
	}
	if opts.Registry == nil {
		opts.Registry = layout.NewContainerRegistry()
	}
	if opts.MetricsCache == nil {
		opts.MetricsCache = NewChromeMetricsCache()
	}
	if opts.Post == nil {
		opts.Post = func(fn func()) { fn() }
	}

	return &FloatingController{
		factory:          opts.Factory,
		scheduler:        opts.Scheduler,
		registry:         opts.Registry,
		resolver:         opts.Resolver,
		hosts:            opts.Hosts,
		provider:         opts.Metrics,
		animator:         opts.Animator,
		lifecycle:        opts.Lifecycle,
		metrics:          opts.MetricsCache,
		insets:           mainloop.NewCoalescer(opts.Post),
		layoutID:         opts.LayoutID,
		animationEnabled: opts.AnimationEnabled,
	}
}

// Show enables the overlay, attaches it to the active host when it is not
// already showing and makes it visible.
func (fc *FloatingController) Show(ctx context.Context) error {
	log := fc.logger(ctx)
	wasEnabled := fc.enabled
	fc.enabled = true
	fc.rescueTeardown(ctx)

	if !fc.IsShowing() {
		host, ok := fc.activeHost()
		if !ok {
			log.Warn().Err(entity.ErrNoActiveHost).Msg("show: nothing to attach to")
		} else if err := fc.AttachHost(ctx, host); err != nil {
			fc.enabled = wasEnabled
			return err
		}
	}
	if fc.view != nil {
		fc.view.Show()
	}
	return nil
}

// ShowOn enables the overlay and attaches it to host instead of the active one.
func (fc *FloatingController) ShowOn(ctx context.Context, host port.Host) error {
	wasEnabled := fc.enabled
	fc.enabled = true
	fc.rescueTeardown(ctx)

	if err := fc.AttachHost(ctx, host); err != nil {
		fc.enabled = wasEnabled
		return err
	}
	if fc.view != nil {
		fc.view.Show()
	}
	return nil
}

// Hide makes the view invisible without detaching or destroying it.
func (fc *FloatingController) Hide(_ context.Context) {
	if fc.view == nil {
		return
	}
	fc.view.Hide()
}

// IsShowing reports whether the view exists, is attached to a window and is visible.
func (fc *FloatingController) IsShowing() bool {
	return fc.view != nil && fc.view.IsAttachedToWindow() && fc.view.IsVisible()
}

// AttachHost resolves host to its container and attaches to it. A host
// without a container is logged and ignored.
func (fc *FloatingController) AttachHost(ctx context.Context, host port.Host) error {
	container, ok := fc.resolve(host)
	if !ok {
		fc.logger(ctx).Warn().Str("host_id", hostID(host)).Msg("attach: host has no container")
		return nil
	}
	return fc.Attach(ctx, container)
}

// Attach parents the view into container, creating the view on first use.
// Attaching to the current parent is a no-op.
func (fc *FloatingController) Attach(ctx context.Context, container layout.ContainerWidget) error {
	log := fc.logger(ctx)
	if container == nil {
		log.Warn().Msg("attach: nil container")
		return nil
	}
	fc.rescueTeardown(ctx)
	if fc.view != nil && fc.view.GetParent() == container {
		return nil
	}

	fc.refreshMetrics(ctx)

	if fc.view == nil {
		if err := fc.createView(ctx); err != nil {
			return err
		}
	} else if prev, ok := fc.currentContainer(); ok {
		fc.removeFrom(ctx, prev)
	} else if parent := fc.view.GetParent(); parent != nil {
		// The handle went stale but the toolkit still parents the view.
		fc.removeFrom(ctx, parent)
	}
	first := fc.fresh
	fc.fresh = false

	fc.remember(container)
	fc.addTo(ctx, container)
	fc.enabled = true

	if first && fc.animationEnabled && fc.animator != nil {
		fc.animator.Cancel()
		fc.animator.Start(fc.view)
		log.Debug().Msg("enter animation started")
	}
	return nil
}

// DetachHost resolves host to its container and detaches from it. When the
// host no longer resolves, a view still parented to a container that lost its
// window is pulled out of it.
func (fc *FloatingController) DetachHost(ctx context.Context, host port.Host) {
	if fc.view == nil && fc.container == "" {
		return
	}
	if container, ok := fc.resolve(host); ok {
		fc.Detach(ctx, container)
		return
	}
	fc.detachDeadParent(ctx)
}

// Detach removes the view from container and forgets container if it is the
// current one. Detaching from any other container leaves the current handle
// untouched.
func (fc *FloatingController) Detach(ctx context.Context, container layout.ContainerWidget) {
	if container == nil {
		return
	}
	if fc.view != nil && fc.view.IsAttachedToWindow() && container.HasChild(fc.view) {
		fc.removeFrom(ctx, container)
	}
	if container.ContainerID() == fc.container {
		fc.forget()
	}
}

// SetClickListener stores the tap callback and the press threshold used by
// the gesture layer.
func (fc *FloatingController) SetClickListener(threshold time.Duration, onClick func()) {
	fc.click = entity.ClickConfig{Threshold: threshold, OnClick: onClick}
}

// ClickConfig returns the configured tap callback and threshold.
func (fc *FloatingController) ClickConfig() entity.ClickConfig {
	return fc.click
}

// Dismiss disables the overlay and tears the view down, after the exit
// animation when one is configured. Calling Dismiss again while teardown is
// pending reschedules it.
func (fc *FloatingController) Dismiss(ctx context.Context) {
	log := fc.logger(ctx)
	fc.enabled = false
	if fc.view == nil {
		return
	}

	if fc.animationEnabled && fc.animator != nil {
		fc.cancelTeardown()
		fc.teardown = fc.scheduler.AfterFunc(fc.animator.Duration(), func() {
			fc.teardown = nil
			fc.finalize(ctx)
		})
		fc.animator.End(fc.view)
		log.Debug().Dur("duration", fc.animator.Duration()).Msg("exit animation started, teardown scheduled")
		return
	}
	fc.finalize(ctx)
}

// UpdateView runs mutate against the current view holder, if any.
func (fc *FloatingController) UpdateView(mutate func(holder layout.ViewHolder)) {
	if fc.holder == nil || mutate == nil {
		return
	}
	mutate(fc.holder)
}

// UpdateLayout switches the layout. An existing view is rebuilt in place and
// re-parented into the same container without replaying the enter animation;
// otherwise a detached view is built for the next attach.
func (fc *FloatingController) UpdateLayout(ctx context.Context, id entity.LayoutID) error {
	if id.IsSet() {
		fc.layoutID = id
	}
	if !fc.layoutID.IsSet() {
		return fmt.Errorf("update layout: %w", entity.ErrLayoutUnset)
	}
	if fc.view == nil {
		return fc.createView(ctx)
	}

	visible := fc.view.IsVisible()
	container, attached := fc.currentContainer()
	if attached {
		fc.removeFrom(ctx, container)
	}
	fc.release()
	if err := fc.createView(ctx); err != nil {
		return err
	}
	if attached {
		fc.fresh = false
		fc.remember(container)
		fc.addTo(ctx, container)
		fc.view.SetVisible(visible)
	}
	fc.logger(ctx).Debug().Int("layout_id", int(fc.layoutID)).Msg("floating view rebuilt")
	return nil
}

// UpdateParams applies layout params to the view; they are also kept for
// views created later.
func (fc *FloatingController) UpdateParams(params entity.LayoutParams) {
	fc.params = params
	fc.hasParams = true
	if fc.view != nil {
		fc.view.SetLayoutParams(params)
	}
}

// SetAnimationEnabled toggles enter/exit animations.
func (fc *FloatingController) SetAnimationEnabled(enabled bool) {
	fc.animationEnabled = enabled
}

// AnimationEnabled reports whether animations are enabled.
func (fc *FloatingController) AnimationEnabled() bool {
	return fc.animationEnabled
}

// Enabled reports the feature flag. It turns false as soon as Dismiss is
// called, while the view may still be visible during its exit animation.
func (fc *FloatingController) Enabled() bool {
	return fc.enabled
}

// TeardownPending reports whether a deferred finalize is scheduled.
func (fc *FloatingController) TeardownPending() bool {
	return fc.teardown != nil
}

// View returns the floating view while it exists.
func (fc *FloatingController) View() (layout.FloatingWidget, bool) {
	return fc.view, fc.view != nil
}

// Holder returns the view holder bound to the current view.
func (fc *FloatingController) Holder() (layout.ViewHolder, bool) {
	return fc.holder, fc.holder != nil
}

// Container returns the current container if its handle is still live.
func (fc *FloatingController) Container() (layout.ContainerWidget, bool) {
	return fc.currentContainer()
}

// Metrics returns the cached chrome metrics.
func (fc *FloatingController) Metrics() entity.ChromeMetrics {
	return fc.metrics.Snapshot()
}

// State derives the lifecycle state.
func (fc *FloatingController) State() entity.OverlayState {
	if fc.view == nil {
		return entity.OverlayUninitialized
	}
	container, ok := fc.currentContainer()
	if !ok || !container.HasChild(fc.view) {
		return entity.OverlayDetached
	}
	if fc.view.IsVisible() {
		return entity.OverlayAttachedVisible
	}
	return entity.OverlayAttachedHidden
}

func (fc *FloatingController) createView(ctx context.Context) error {
	if !fc.layoutID.IsSet() {
		return fmt.Errorf("create floating view: %w", entity.ErrLayoutUnset)
	}

	view := fc.factory.NewFloating(fc.layoutID)
	fc.view = view
	fc.holder = fc.factory.NewViewHolder(view)
	fc.fresh = true
	if fc.hasParams {
		view.SetLayoutParams(fc.params)
	}
	fc.insetsHandler = view.ConnectInsetsChanged(func(insets entity.Insets) {
		fc.insets.Post(insetsCoalesceKey, func() {
			fc.onInsets(ctx, view, insets)
		})
	})
	view.RequestApplyInsets()

	fc.logger(ctx).Debug().
		Str("view_id", view.ID()).
		Int("layout_id", int(fc.layoutID)).
		Msg("floating view created")
	return nil
}

func (fc *FloatingController) onInsets(ctx context.Context, view layout.FloatingWidget, insets entity.Insets) {
	if fc.view != view {
		return
	}
	prev, changed := fc.metrics.ApplyInsets(insets)
	if changed {
		fc.logger(ctx).Trace().
			Int("old", prev).
			Int("new", fc.metrics.StatusBarHeight()).
			Msg("status bar height updated from insets")
	}
}

// finalize detaches the view and releases it together with its holder.
func (fc *FloatingController) finalize(ctx context.Context) {
	fc.cancelTeardown()
	if container, ok := fc.currentContainer(); ok {
		fc.Detach(ctx, container)
	} else {
		fc.detachDeadParent(ctx)
	}
	fc.release()
	fc.forget()
	fc.logger(ctx).Debug().Msg("floating view finalized")
}

func (fc *FloatingController) release() {
	if fc.view != nil {
		fc.view.DisconnectInsetsChanged(fc.insetsHandler)
	}
	fc.view = nil
	fc.holder = nil
	fc.insetsHandler = 0
	fc.fresh = false
}

// rescueTeardown cancels a pending finalize and restores the view that was
// playing its exit animation.
func (fc *FloatingController) rescueTeardown(ctx context.Context) {
	if fc.teardown == nil {
		return
	}
	fc.cancelTeardown()
	fc.enabled = true
	if fc.view != nil && fc.animator != nil {
		fc.animator.Cancel()
		fc.animator.Start(fc.view)
	}
	fc.logger(ctx).Debug().Msg("pending teardown cancelled")
}

func (fc *FloatingController) cancelTeardown() {
	if fc.teardown == nil {
		return
	}
	fc.teardown.Stop()
	fc.teardown = nil
}

func (fc *FloatingController) addTo(ctx context.Context, container layout.ContainerWidget) {
	if fc.lifecycle != nil {
		fc.lifecycle.PostAttach()
	}
	container.AddChild(fc.view)
	fc.view.Show()
	fc.logger(ctx).Debug().Str("container_id", string(container.ContainerID())).Msg("floating view attached")
}

func (fc *FloatingController) removeFrom(ctx context.Context, container layout.ContainerWidget) {
	if container == nil {
		return
	}
	if fc.lifecycle != nil {
		fc.lifecycle.PostDetached()
	}
	container.RemoveChild(fc.view)
	fc.logger(ctx).Debug().Str("container_id", string(container.ContainerID())).Msg("floating view detached")
}

// detachDeadParent removes the view from a parent whose window is gone.
func (fc *FloatingController) detachDeadParent(ctx context.Context) {
	if fc.view == nil {
		return
	}
	parent := fc.view.GetParent()
	if parent == nil || parent.IsAttachedToWindow() {
		return
	}
	fc.removeFrom(ctx, parent)
	if parent.ContainerID() == fc.container {
		fc.forget()
	}
}

// remember stores the handle of container, registering it when the
// windowing side has not.
func (fc *FloatingController) remember(container layout.ContainerWidget) {
	fc.forget()
	id := container.ContainerID()
	if _, ok := fc.registry.Lookup(id); ok {
		fc.container = id
		return
	}
	fc.container = fc.registry.Track(container)
	fc.ownsHandle = true
}

// forget drops the stored handle and releases it if the controller
// registered it.
func (fc *FloatingController) forget() {
	if fc.ownsHandle && fc.container != "" {
		fc.registry.Release(fc.container)
	}
	fc.container = ""
	fc.ownsHandle = false
}

// currentContainer resolves the stored handle. A released handle is cleared
// and reported as no container.
func (fc *FloatingController) currentContainer() (layout.ContainerWidget, bool) {
	if fc.container == "" {
		return nil, false
	}
	container, ok := fc.registry.Lookup(fc.container)
	if !ok {
		fc.container = ""
		fc.ownsHandle = false
		return nil, false
	}
	return container, true
}

func (fc *FloatingController) refreshMetrics(ctx context.Context) {
	host, ok := fc.activeHost()
	if !ok {
		return
	}
	m := fc.metrics.Refresh(fc.provider, host)
	fc.logger(ctx).Trace().
		Int("status_bar", m.StatusBarHeight).
		Int("navigation_bar", m.NavigationBarHeight).
		Msg("chrome metrics refreshed")
}

func (fc *FloatingController) resolve(host port.Host) (layout.ContainerWidget, bool) {
	if host == nil || fc.resolver == nil {
		return nil, false
	}
	container, ok := fc.resolver.ResolveContainer(host)
	if !ok || container == nil {
		return nil, false
	}
	return container, true
}

func (fc *FloatingController) activeHost() (port.Host, bool) {
	if fc.hosts == nil {
		return nil, false
	}
	host, ok := fc.hosts.ActiveHost()
	if !ok || host == nil {
		return nil, false
	}
	return host, true
}

func (fc *FloatingController) logger(ctx context.Context) *zerolog.Logger {
	l := logging.FromContext(ctx).With().Str("component", "floating-controller").Logger()
	return &l
}

func hostID(host port.Host) string {
	if host == nil {
		return ""
	}
	return string(host.HostID())
}

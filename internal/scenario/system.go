package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/floaty/internal/application/port"
	"github.com/bnema/floaty/internal/domain/entity"
	"github.com/bnema/floaty/internal/infrastructure/host"
	"github.com/bnema/floaty/internal/logging"
	"github.com/bnema/floaty/internal/ui/animation"
	"github.com/bnema/floaty/internal/ui/component"
	"github.com/bnema/floaty/internal/ui/coordinator"
	"github.com/bnema/floaty/internal/ui/layout"
)

// Settings are the controller settings a system is built with.
type Settings struct {
	LayoutID         entity.LayoutID
	Params           entity.LayoutParams
	AnimationEnabled bool
	AnimationKind    string
	Duration         time.Duration
	ClickThreshold   time.Duration
	Allow            []string
	Deny             []string
	// Catalog maps layout ids to named sub-widgets.
	Catalog map[entity.LayoutID][]string
}

// DefaultCatalog returns the demo widget catalog used by the CLI: layout 1
// is a chat head, layout 2 a mini player.
func DefaultCatalog() map[entity.LayoutID][]string {
	return map[entity.LayoutID][]string{
		1: {"avatar", "badge"},
		2: {"artwork", "title", "play_pause"},
	}
}

// Apply returns s with the scenario overrides applied.
func (o Overrides) Apply(s Settings) Settings {
	if o.LayoutID != nil {
		s.LayoutID = entity.LayoutID(*o.LayoutID)
	}
	if o.AnimationEnabled != nil {
		s.AnimationEnabled = *o.AnimationEnabled
	}
	if o.AnimationKind != nil {
		s.AnimationKind = *o.AnimationKind
	}
	if o.Duration != nil {
		s.Duration = o.Duration.Std()
	}
	if o.Allow != nil {
		s.Allow = o.Allow
	}
	if o.Deny != nil {
		s.Deny = o.Deny
	}
	return s
}

// System is a headless host environment wired to a floating controller.
type System struct {
	Registry    *layout.ContainerRegistry
	Tracker     *host.Tracker
	Factory     *layout.HeadlessFactory
	Controller  *component.FloatingController
	Coordinator *coordinator.HostLifecycleCoordinator
	Animator    port.Animator
	Scheduler   port.Scheduler

	clicks int
}

// NewSystem builds a system. post delivers inset and host events onto the UI
// loop; nil runs them inline.
func NewSystem(ctx context.Context, settings Settings, scheduler port.Scheduler, post func(func())) (*System, error) {
	log := logging.FromContext(ctx)

	animator, err := animation.New(settings.AnimationKind, scheduler, settings.Duration)
	if err != nil {
		return nil, fmt.Errorf("build animator: %w", err)
	}

	registry := layout.NewContainerRegistry()
	tracker := host.NewTracker(registry)
	factory := layout.NewHeadlessFactory(settings.Catalog)

	sys := &System{
		Registry:  registry,
		Tracker:   tracker,
		Factory:   factory,
		Animator:  animator,
		Scheduler: scheduler,
	}
	sys.Controller = component.NewFloatingController(component.FloatingOptions{
		LayoutID:         settings.LayoutID,
		Factory:          factory,
		Scheduler:        scheduler,
		Registry:         registry,
		Resolver:         tracker,
		Hosts:            tracker,
		Metrics:          tracker,
		Animator:         animator,
		AnimationEnabled: settings.AnimationEnabled,
		Post:             post,
	})
	if settings.Params != (entity.LayoutParams{}) {
		sys.Controller.UpdateParams(settings.Params)
	}
	sys.Controller.SetClickListener(settings.ClickThreshold, func() { sys.clicks++ })

	sys.Coordinator = coordinator.NewHostLifecycleCoordinator(ctx, sys.Controller, tracker, post)
	sys.Coordinator.SetFilter(settings.Allow, settings.Deny)
	sys.Coordinator.Start(ctx)

	log.Debug().
		Int("layout_id", int(settings.LayoutID)).
		Bool("animation", settings.AnimationEnabled).
		Dur("duration", settings.Duration).
		Msg("scenario system ready")
	return sys, nil
}

// AddHost registers a host window.
func (s *System) AddHost(spec HostSpec) *host.Window {
	w := host.NewWindow(entity.HostID(spec.ID), entity.ChromeMetrics{
		StatusBarHeight:     spec.StatusBar,
		NavigationBarHeight: spec.NavigationBar,
	})
	s.Tracker.Add(w)
	return w
}

// Reconfigure applies the settings that may change while running: the host
// filter and whether animations play. Must run on the UI loop.
func (s *System) Reconfigure(settings Settings) {
	s.Coordinator.SetFilter(settings.Allow, settings.Deny)
	s.Controller.SetAnimationEnabled(settings.AnimationEnabled)
}

// Clicks returns how many taps the click listener received.
func (s *System) Clicks() int { return s.clicks }

// Close stops following host events.
func (s *System) Close() {
	s.Coordinator.Stop()
}

// Snapshot is the observable system state after a step.
type Snapshot struct {
	Elapsed         time.Duration
	State           entity.OverlayState
	Enabled         bool
	Showing         bool
	TeardownPending bool
	Host            entity.HostID
	LayoutID        entity.LayoutID
	Opacity         float64
	Metrics         entity.ChromeMetrics
	Children        map[entity.HostID]int
	Clicks          int
}

// Snapshot captures the current state. Must run on the UI loop.
func (s *System) Snapshot(elapsed time.Duration) Snapshot {
	fc := s.Controller
	snap := Snapshot{
		Elapsed:         elapsed,
		State:           fc.State(),
		Enabled:         fc.Enabled(),
		Showing:         fc.IsShowing(),
		TeardownPending: fc.TeardownPending(),
		Metrics:         fc.Metrics(),
		Children:        make(map[entity.HostID]int),
		Clicks:          s.clicks,
	}
	if view, ok := fc.View(); ok {
		snap.LayoutID = view.LayoutID()
		snap.Opacity = view.GetOpacity()
	}
	if container, ok := fc.Container(); ok {
		snap.Host, _ = s.Tracker.HostForContainer(container.ContainerID())
	}
	for _, id := range s.Tracker.Hosts() {
		if w, ok := s.Tracker.Window(id); ok {
			snap.Children[id] = w.Container().ChildCount()
		}
	}
	return snap
}

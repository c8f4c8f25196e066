package scenario

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/bnema/floaty/internal/domain/entity"
	"github.com/bnema/floaty/internal/infrastructure/host"
	"github.com/bnema/floaty/internal/logging"
	"github.com/bnema/floaty/internal/ui/layout"
	"github.com/bnema/floaty/internal/ui/mainloop"
)

// ErrExpectationFailed is returned when an expect step does not match.
var ErrExpectationFailed = errors.New("expectation failed")

// StepResult is the outcome of one step.
type StepResult struct {
	Index    int
	Step     Step
	Snapshot Snapshot
	// Failures lists mismatched expectations.
	Failures []string
	Err      error
}

// OK reports whether the step ran as scripted.
func (r StepResult) OK() bool {
	return r.Err == nil && len(r.Failures) == 0
}

// Report collects the results of a run.
type Report struct {
	Scenario string
	Results  []StepResult
}

// Failed returns the number of steps that did not run as scripted.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.OK() {
			n++
		}
	}
	return n
}

// Runner replays a scenario step by step.
type Runner struct {
	sys    *System
	sc     *Scenario
	driver Driver
	next   int
}

// NewRunner registers the scenario hosts on sys and prepares a run.
func NewRunner(sys *System, sc *Scenario, driver Driver) *Runner {
	for _, h := range sc.Hosts {
		sys.AddHost(h)
	}
	return &Runner{sys: sys, sc: sc, driver: driver}
}

// NewManualRunner builds a system on a virtual clock, with the scenario
// overrides applied to settings, and a runner for sc. Callers Close the
// returned system when done.
func NewManualRunner(ctx context.Context, settings Settings, sc *Scenario) (*Runner, *System, error) {
	sched := mainloop.NewManualScheduler()
	sys, err := NewSystem(ctx, sc.Settings.Apply(settings), sched, nil)
	if err != nil {
		return nil, nil, err
	}
	return NewRunner(sys, sc, NewManualDriver(sched)), sys, nil
}

// Done reports whether every step has run.
func (r *Runner) Done() bool {
	return r.next >= len(r.sc.Steps)
}

// Position returns the index of the next step.
func (r *Runner) Position() int { return r.next }

// Scenario returns the scenario being replayed.
func (r *Runner) Scenario() *Scenario { return r.sc }

// Snapshot captures the current state on the UI loop.
func (r *Runner) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	err := r.driver.Do(ctx, func() { snap = r.sys.Snapshot(r.driver.Elapsed()) })
	return snap, err
}

// Step runs the next step. It must not be called once Done is true.
func (r *Runner) Step(ctx context.Context) StepResult {
	st := r.sc.Steps[r.next]
	res := StepResult{Index: r.next, Step: st}
	r.next++

	log := logging.FromContext(ctx).With().
		Str("component", "scenario").
		Int("step", res.Index).
		Str("action", st.String()).
		Logger()

	var applyErr error
	if st.Do == ActionAdvance {
		applyErr = r.driver.Advance(ctx, st.Duration.Std())
	} else if err := r.driver.Do(ctx, func() { applyErr = r.apply(ctx, st) }); err != nil {
		applyErr = err
	}
	res.Err = matchExpectedError(st, applyErr)

	snap, err := r.Snapshot(ctx)
	if err != nil && res.Err == nil {
		res.Err = err
	}
	res.Snapshot = snap
	if st.Expect != nil {
		res.Failures = check(*st.Expect, snap)
	}

	if res.OK() {
		log.Debug().Str("state", snap.State.String()).Msg("step ok")
	} else {
		log.Warn().Err(res.Err).Strs("failures", res.Failures).Msg("step failed")
	}
	return res
}

// RunAll runs the remaining steps. It stops at the first step error and
// returns ErrExpectationFailed if any expectation did not match.
func (r *Runner) RunAll(ctx context.Context) (Report, error) {
	report := Report{Scenario: r.sc.Name}
	for !r.Done() {
		res := r.Step(ctx)
		report.Results = append(report.Results, res)
		if res.Err != nil {
			return report, fmt.Errorf("step %d (%s): %w", res.Index, res.Step, res.Err)
		}
	}
	if failed := report.Failed(); failed > 0 {
		return report, fmt.Errorf("%w: %d step(s)", ErrExpectationFailed, failed)
	}
	return report, nil
}

func (r *Runner) apply(ctx context.Context, st Step) error {
	fc := r.sys.Controller
	tracker := r.sys.Tracker

	switch st.Do {
	case ActionAddHost:
		r.sys.AddHost(HostSpec{ID: st.Host, StatusBar: st.StatusBar, NavigationBar: st.NavigationBar})
	case ActionResume:
		return tracker.Resume(entity.HostID(st.Host))
	case ActionPause:
		return tracker.Pause(entity.HostID(st.Host))
	case ActionDestroy:
		return tracker.Destroy(entity.HostID(st.Host))
	case ActionShow:
		return fc.Show(ctx)
	case ActionShowOn:
		w, err := r.window(st.Host)
		if err != nil {
			return err
		}
		return fc.ShowOn(ctx, w)
	case ActionHide:
		fc.Hide(ctx)
	case ActionDismiss:
		fc.Dismiss(ctx)
	case ActionAttach:
		w, err := r.window(st.Host)
		if err != nil {
			return err
		}
		return fc.AttachHost(ctx, w)
	case ActionDetach:
		w, err := r.window(st.Host)
		if err != nil {
			return err
		}
		fc.DetachHost(ctx, w)
	case ActionUpdateLayout:
		return fc.UpdateLayout(ctx, entity.LayoutID(st.LayoutID))
	case ActionInsets:
		view, ok := fc.View()
		if !ok {
			return fmt.Errorf("insets: no floating view")
		}
		headless, ok := view.(*layout.HeadlessFloating)
		if !ok {
			return fmt.Errorf("insets: view %T cannot dispatch insets", view)
		}
		headless.EmitInsets(entity.Insets{
			Top: st.Insets.Top, Bottom: st.Insets.Bottom, Left: st.Insets.Left, Right: st.Insets.Right,
		})
	case ActionClick:
		cfg := fc.ClickConfig()
		if cfg.OnClick != nil && fc.IsShowing() {
			cfg.OnClick()
		}
	case ActionExpect:
	default:
		return fmt.Errorf("unknown action %q", st.Do)
	}
	return nil
}

func (r *Runner) window(id string) (*host.Window, error) {
	w, ok := r.sys.Tracker.Window(entity.HostID(id))
	if !ok {
		return nil, fmt.Errorf("unknown host %q", id)
	}
	return w, nil
}

func matchExpectedError(st Step, err error) error {
	if st.ExpectError == "" {
		return err
	}
	if err == nil {
		return fmt.Errorf("expected error containing %q, got none", st.ExpectError)
	}
	if !strings.Contains(err.Error(), st.ExpectError) {
		return fmt.Errorf("expected error containing %q: %w", st.ExpectError, err)
	}
	return nil
}

func check(exp Expectation, snap Snapshot) []string {
	var failures []string
	mismatch := func(field string, want, got any) {
		failures = append(failures, fmt.Sprintf("%s: want %v, got %v", field, want, got))
	}

	if exp.State != "" && exp.State != snap.State.String() {
		mismatch("state", exp.State, snap.State)
	}
	if exp.Enabled != nil && *exp.Enabled != snap.Enabled {
		mismatch("enabled", *exp.Enabled, snap.Enabled)
	}
	if exp.Showing != nil && *exp.Showing != snap.Showing {
		mismatch("showing", *exp.Showing, snap.Showing)
	}
	if exp.TeardownPending != nil && *exp.TeardownPending != snap.TeardownPending {
		mismatch("teardown_pending", *exp.TeardownPending, snap.TeardownPending)
	}
	if exp.Host != nil && *exp.Host != string(snap.Host) {
		mismatch("host", *exp.Host, snap.Host)
	}
	if exp.StatusBar != nil && *exp.StatusBar != snap.Metrics.StatusBarHeight {
		mismatch("status_bar", *exp.StatusBar, snap.Metrics.StatusBarHeight)
	}
	if exp.LayoutID != nil && *exp.LayoutID != int(snap.LayoutID) {
		mismatch("layout_id", *exp.LayoutID, snap.LayoutID)
	}
	if exp.Clicks != nil && *exp.Clicks != snap.Clicks {
		mismatch("clicks", *exp.Clicks, snap.Clicks)
	}
	for _, id := range slices.Sorted(maps.Keys(exp.Children)) {
		want := exp.Children[id]
		if got := snap.Children[entity.HostID(id)]; got != want {
			mismatch("children["+id+"]", want, got)
		}
	}
	return failures
}

// Package scenario describes scripted overlay sessions in YAML and replays
// them against a headless host system.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Actions understood by the runner.
const (
	ActionAddHost      = "add-host"
	ActionResume       = "resume"
	ActionPause        = "pause"
	ActionDestroy      = "destroy"
	ActionShow         = "show"
	ActionShowOn       = "show-on"
	ActionHide         = "hide"
	ActionDismiss      = "dismiss"
	ActionAttach       = "attach"
	ActionDetach       = "detach"
	ActionAdvance      = "advance"
	ActionUpdateLayout = "update-layout"
	ActionInsets       = "insets"
	ActionClick        = "click"
	ActionExpect       = "expect"
)

var knownActions = map[string]bool{
	ActionAddHost: true, ActionResume: true, ActionPause: true, ActionDestroy: true,
	ActionShow: true, ActionShowOn: true, ActionHide: true, ActionDismiss: true,
	ActionAttach: true, ActionDetach: true, ActionAdvance: true, ActionUpdateLayout: true,
	ActionInsets: true, ActionClick: true, ActionExpect: true,
}

// ErrInvalidScenario is returned for scenarios that fail validation.
var ErrInvalidScenario = errors.New("invalid scenario")

// Duration is a time.Duration that reads "300ms"-style YAML scalars.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

// Scenario is a scripted session.
type Scenario struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Settings    Overrides  `yaml:"settings,omitempty"`
	Hosts       []HostSpec `yaml:"hosts"`
	Steps       []Step     `yaml:"steps"`
}

// Overrides replace configured settings for one scenario.
type Overrides struct {
	LayoutID         *int      `yaml:"layout_id,omitempty"`
	AnimationEnabled *bool     `yaml:"animation_enabled,omitempty"`
	AnimationKind    *string   `yaml:"animation_kind,omitempty"`
	Duration         *Duration `yaml:"duration,omitempty"`
	Allow            []string  `yaml:"allow,omitempty"`
	Deny             []string  `yaml:"deny,omitempty"`
}

// HostSpec declares a host window.
type HostSpec struct {
	ID            string `yaml:"id"`
	StatusBar     int    `yaml:"status_bar,omitempty"`
	NavigationBar int    `yaml:"navigation_bar,omitempty"`
}

// Step is one scripted action.
type Step struct {
	Do       string       `yaml:"do"`
	Host     string       `yaml:"host,omitempty"`
	Duration Duration     `yaml:"duration,omitempty"`
	LayoutID int          `yaml:"layout_id,omitempty"`
	Insets   *InsetsSpec  `yaml:"insets,omitempty"`
	Expect   *Expectation `yaml:"expect,omitempty"`
	// ExpectError marks the step as expected to fail with an error whose
	// message contains this text.
	ExpectError string `yaml:"expect_error,omitempty"`
	// StatusBar and NavigationBar are used by add-host.
	StatusBar     int `yaml:"status_bar,omitempty"`
	NavigationBar int `yaml:"navigation_bar,omitempty"`
}

// InsetsSpec is a window insets dispatch.
type InsetsSpec struct {
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom,omitempty"`
	Left   int `yaml:"left,omitempty"`
	Right  int `yaml:"right,omitempty"`
}

// Expectation asserts controller state. Unset fields are not checked.
type Expectation struct {
	State           string         `yaml:"state,omitempty"`
	Enabled         *bool          `yaml:"enabled,omitempty"`
	Showing         *bool          `yaml:"showing,omitempty"`
	TeardownPending *bool          `yaml:"teardown_pending,omitempty"`
	Host            *string        `yaml:"host,omitempty"`
	StatusBar       *int           `yaml:"status_bar,omitempty"`
	LayoutID        *int           `yaml:"layout_id,omitempty"`
	Children        map[string]int `yaml:"children,omitempty"`
	Clicks          *int           `yaml:"clicks,omitempty"`
}

// String renders the step for logs and the TUI.
func (s Step) String() string {
	switch s.Do {
	case ActionAdvance:
		return fmt.Sprintf("advance %s", s.Duration.Std())
	case ActionUpdateLayout:
		return fmt.Sprintf("update-layout %d", s.LayoutID)
	case ActionInsets:
		if s.Insets != nil {
			return fmt.Sprintf("insets top=%d", s.Insets.Top)
		}
	}
	if s.Host != "" {
		return s.Do + " " + s.Host
	}
	return s.Do
}

// Parse decodes and validates a scenario.
func Parse(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// LoadFile reads a scenario from disk.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()

	sc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// Validate checks host ids and step arguments.
func (sc *Scenario) Validate() error {
	var problems []string
	hosts := make(map[string]bool, len(sc.Hosts))
	for i, h := range sc.Hosts {
		if h.ID == "" {
			problems = append(problems, fmt.Sprintf("hosts[%d]: id is required", i))
			continue
		}
		if hosts[h.ID] {
			problems = append(problems, fmt.Sprintf("hosts[%d]: duplicate id %q", i, h.ID))
		}
		hosts[h.ID] = true
	}

	for i, st := range sc.Steps {
		where := fmt.Sprintf("steps[%d] (%s)", i, st.Do)
		if !knownActions[st.Do] {
			problems = append(problems, fmt.Sprintf("%s: unknown action", where))
			continue
		}
		switch st.Do {
		case ActionAddHost:
			if st.Host == "" {
				problems = append(problems, where+": host is required")
			}
			hosts[st.Host] = true
		case ActionResume, ActionPause, ActionDestroy, ActionShowOn, ActionAttach, ActionDetach:
			if !hosts[st.Host] {
				problems = append(problems, fmt.Sprintf("%s: unknown host %q", where, st.Host))
			}
		case ActionAdvance:
			if st.Duration < 0 {
				problems = append(problems, where+": duration must be non-negative")
			}
		case ActionInsets:
			if st.Insets == nil {
				problems = append(problems, where+": insets are required")
			}
		case ActionExpect:
			if st.Expect == nil {
				problems = append(problems, where+": expect block is required")
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidScenario, strings.Join(problems, "\n  - "))
	}
	return nil
}

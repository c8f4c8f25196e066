// Package model holds Bubble Tea models for interactive CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/floaty/internal/cli/styles"
	"github.com/bnema/floaty/internal/logging"
	"github.com/bnema/floaty/internal/scenario"
)

// DefaultAutoInterval is the delay between steps while auto-playing.
const DefaultAutoInterval = 400 * time.Millisecond

// historySize bounds how many step results are listed.
const historySize = 12

// RunnerFactory builds a fresh runner. The returned func releases it.
type RunnerFactory func(ctx context.Context) (*scenario.Runner, func(), error)

// PlayModel steps through a scenario interactively.
type PlayModel struct {
	factory RunnerFactory
	runner  *scenario.Runner
	release func()

	results  []scenario.StepResult
	snapshot scenario.Snapshot

	auto     bool
	interval time.Duration
	// gen invalidates ticks scheduled before a pause or restart.
	gen int

	keys     styles.PlayKeyMap
	help     help.Model
	theme    *styles.Theme
	renderer *styles.ReportRenderer

	err      error
	quitting bool
	ctx      context.Context
}

type autoTickMsg struct{ gen int }

// NewPlayModel builds the first runner and captures its initial snapshot.
func NewPlayModel(ctx context.Context, theme *styles.Theme, factory RunnerFactory, interval time.Duration) (PlayModel, error) {
	if interval <= 0 {
		interval = DefaultAutoInterval
	}
	m := PlayModel{
		factory:  factory,
		interval: interval,
		keys:     styles.DefaultPlayKeyMap(),
		help:     styles.NewStyledHelp(theme),
		theme:    theme,
		renderer: styles.NewReportRenderer(theme),
		ctx:      logging.WithComponent(ctx, "play"),
	}
	if err := m.reset(); err != nil {
		return PlayModel{}, err
	}
	return m, nil
}

// Init implements tea.Model.
func (PlayModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case autoTickMsg:
		if !m.auto || msg.gen != m.gen {
			return m, nil
		}
		m = m.step()
		if m.runner.Done() {
			m.auto = false
			return m, nil
		}
		return m, m.tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Step):
		m.auto = false
		m.gen++
		m = m.step()
	case key.Matches(msg, m.keys.RunAll):
		m.auto = false
		m.gen++
		for !m.runner.Done() {
			m = m.step()
		}
	case key.Matches(msg, m.keys.Auto):
		if m.runner.Done() {
			return m, nil
		}
		m.auto = !m.auto
		m.gen++
		if m.auto {
			return m, m.tick()
		}
	case key.Matches(msg, m.keys.Restart):
		m.auto = false
		m.gen++
		m.close()
		if err := m.reset(); err != nil {
			m.err = err
		}
	}
	return m, nil
}

func (m PlayModel) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return autoTickMsg{gen: gen} })
}

func (m PlayModel) step() PlayModel {
	if m.runner == nil || m.runner.Done() {
		return m
	}
	res := m.runner.Step(m.ctx)
	m.results = append(m.results, res)
	m.snapshot = res.Snapshot
	return m
}

func (m *PlayModel) reset() error {
	runner, release, err := m.factory(m.ctx)
	if err != nil {
		return fmt.Errorf("start scenario: %w", err)
	}
	snap, err := runner.Snapshot(m.ctx)
	if err != nil {
		release()
		return fmt.Errorf("snapshot: %w", err)
	}
	m.runner = runner
	m.release = release
	m.results = nil
	m.snapshot = snap
	m.err = nil
	return nil
}

func (m *PlayModel) close() {
	if m.release != nil {
		m.release()
		m.release = nil
	}
}

// Results returns the step results collected so far.
func (m PlayModel) Results() []scenario.StepResult {
	return m.results
}

// Failed returns how many collected steps did not run as scripted.
func (m PlayModel) Failed() int {
	return scenario.Report{Results: m.results}.Failed()
}

// View implements tea.Model.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}
	if m.runner == nil {
		return m.theme.ErrorStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n"
	}

	sc := m.runner.Scenario()
	var b strings.Builder
	b.WriteString(m.renderer.RenderHeader(sc))
	b.WriteString("\n\n")

	left := m.renderSteps(sc)
	right := m.renderer.RenderSnapshot(m.snapshot)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
	b.WriteString("\n\n")

	b.WriteString(m.renderStatus(sc))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.theme.ErrorStyle.Render(m.err.Error()) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m PlayModel) renderSteps(sc *scenario.Scenario) string {
	start := max(0, len(m.results)-historySize)
	lines := make([]string, 0, historySize+1)
	for _, res := range m.results[start:] {
		lines = append(lines, m.renderer.RenderStep(res))
	}
	if next := m.runner.Position(); next < len(sc.Steps) {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			m.theme.Highlight.Render(styles.IconArrow),
			m.theme.Subtle.Render(fmt.Sprintf("%3d", next)),
			m.theme.Normal.Render(sc.Steps[next].String()),
		))
	}
	if len(lines) == 0 {
		lines = append(lines, m.theme.Subtle.Render("no steps"))
	}
	return strings.Join(lines, "\n")
}

func (m PlayModel) renderStatus(sc *scenario.Scenario) string {
	icon := styles.IconPause
	if m.auto {
		icon = styles.IconPlay
	}
	status := fmt.Sprintf("%s step %d/%d", icon, m.runner.Position(), len(sc.Steps))
	if m.runner.Done() {
		status += "  " + m.renderer.RenderSummary(scenario.Report{Results: m.results}, len(sc.Steps))
	}
	return m.theme.Subtitle.Render(status)
}

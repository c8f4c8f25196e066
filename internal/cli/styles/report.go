package styles

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/floaty/internal/domain/entity"
	"github.com/bnema/floaty/internal/scenario"
)

const opacityBarWidth = 10

// ReportRenderer renders scenario runs and overlay snapshots.
type ReportRenderer struct {
	theme *Theme
}

// NewReportRenderer creates a new report renderer with the given theme.
func NewReportRenderer(theme *Theme) *ReportRenderer {
	return &ReportRenderer{theme: theme}
}

// RenderHeader renders the scenario title line.
func (r *ReportRenderer) RenderHeader(sc *scenario.Scenario) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	header := fmt.Sprintf("%s %s", iconStyle.Render(IconLayers), r.theme.Title.Render(sc.Name))
	if sc.Description != "" {
		header += "\n  " + r.theme.Subtle.Render(sc.Description)
	}
	return header
}

// RenderStep renders one step outcome on a single line, followed by any
// failures.
func (r *ReportRenderer) RenderStep(res scenario.StepResult) string {
	icon := r.theme.SuccessStyle.Render(IconCheck)
	if !res.OK() {
		icon = r.theme.ErrorStyle.Render(IconX)
	}

	line := fmt.Sprintf("%s %s %-22s %s %s",
		icon,
		r.theme.Subtle.Render(fmt.Sprintf("%3d", res.Index)),
		res.Step.String(),
		r.theme.Subtle.Render(IconArrow),
		r.stateBadge(res.Snapshot.State),
	)
	if res.Snapshot.Host != "" {
		line += " " + r.theme.Subtle.Render("on "+string(res.Snapshot.Host))
	}

	var b strings.Builder
	b.WriteString(line)
	if res.Err != nil {
		b.WriteString("\n      " + r.theme.ErrorStyle.Render(res.Err.Error()))
	}
	for _, f := range res.Failures {
		b.WriteString("\n      " + r.theme.WarningStyle.Render(f))
	}
	return b.String()
}

// RenderReport renders every step of a run and a summary line.
func (r *ReportRenderer) RenderReport(sc *scenario.Scenario, rep scenario.Report) string {
	lines := []string{r.RenderHeader(sc), ""}
	for _, res := range rep.Results {
		lines = append(lines, "  "+r.RenderStep(res))
	}
	lines = append(lines, "", "  "+r.RenderSummary(rep, len(sc.Steps)))
	return strings.Join(lines, "\n")
}

// RenderSummary renders pass and fail counts. total is the scenario length,
// which exceeds the result count when a run stops early.
func (r *ReportRenderer) RenderSummary(rep scenario.Report, total int) string {
	failed := rep.Failed()
	ran := len(rep.Results)
	switch {
	case failed > 0:
		return r.theme.ErrorStyle.Render(fmt.Sprintf("%d of %d steps failed", failed, ran))
	case ran < total:
		return r.theme.WarningStyle.Render(fmt.Sprintf("stopped after %d of %d steps", ran, total))
	default:
		return r.theme.SuccessStyle.Render(fmt.Sprintf("%d steps passed", ran))
	}
}

// RenderSnapshot renders the overlay and host state as a boxed panel.
func (r *ReportRenderer) RenderSnapshot(snap scenario.Snapshot) string {
	key := r.theme.Subtle
	val := r.theme.Normal

	host := "none"
	if snap.Host != "" {
		host = string(snap.Host)
	}

	lines := []string{
		fmt.Sprintf("%s %s", key.Render("state   "), r.stateBadge(snap.State)),
		fmt.Sprintf("%s %s", key.Render("host    "), val.Render(host)),
		fmt.Sprintf("%s %s", key.Render("enabled "), val.Render(fmt.Sprintf("%t", snap.Enabled))),
		fmt.Sprintf("%s %s", key.Render("opacity "), r.opacityBar(snap.Opacity)),
		fmt.Sprintf("%s %s", key.Render("chrome  "),
			val.Render(fmt.Sprintf("status %d / nav %d", snap.Metrics.StatusBarHeight, snap.Metrics.NavigationBarHeight))),
		fmt.Sprintf("%s %s", key.Render("clicks  "), val.Render(fmt.Sprintf("%d", snap.Clicks))),
		fmt.Sprintf("%s %s %s", key.Render("elapsed "), r.theme.Subtle.Render(IconClock), val.Render(snap.Elapsed.String())),
	}
	if snap.TeardownPending {
		lines = append(lines, r.theme.WarningStyle.Render("teardown pending"))
	}

	if len(snap.Children) > 0 {
		lines = append(lines, "", r.theme.Subtitle.Render("hosts"))
		for _, id := range slices.Sorted(maps.Keys(snap.Children)) {
			marker := " "
			if id == snap.Host {
				marker = r.theme.Highlight.Render(IconArrow)
			}
			lines = append(lines, fmt.Sprintf("%s %s %s %s",
				marker,
				r.theme.Subtle.Render(IconDesktop),
				val.Render(string(id)),
				key.Render(fmt.Sprintf("%d child(ren)", snap.Children[id])),
			))
		}
	}

	return r.theme.Box.Render(strings.Join(lines, "\n"))
}

func (r *ReportRenderer) stateBadge(state entity.OverlayState) string {
	return r.theme.StateBadge(state.String(), state != entity.OverlayUninitialized)
}

func (r *ReportRenderer) opacityBar(opacity float64) string {
	opacity = min(max(opacity, 0), 1)
	filled := int(opacity*opacityBarWidth + 0.5)
	bar := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(strings.Repeat("█", filled)) +
		r.theme.Subtle.Render(strings.Repeat("░", opacityBarWidth-filled))
	return fmt.Sprintf("%s %3.0f%%", bar, opacity*100)
}

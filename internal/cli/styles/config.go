package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/floaty/internal/domain/entity"
)

// ConfigRenderer renders config status and schema reference output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path and whether it exists.
func (r *ConfigRenderer) RenderConfigInfo(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	status := r.theme.SuccessStyle.Render("found")
	if !exists {
		status = r.theme.WarningStyle.Render("missing, using defaults")
	}

	return fmt.Sprintf(
		"\n  %s Config %s %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		status,
	)
}

// RenderInitResult renders the outcome of writing a default config file.
func (r *ConfigRenderer) RenderInitResult(path string, written bool) string {
	if !written {
		return fmt.Sprintf("\n  %s %s %s\n",
			r.theme.WarningStyle.Render(IconWarning),
			r.theme.Subtle.Render("Config already exists at"),
			r.theme.Highlight.Render(path),
		)
	}
	return fmt.Sprintf("\n  %s %s %s\n",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Normal.Render("Wrote default config to"),
		r.theme.Highlight.Render(path),
	)
}

// RenderSchemaWritten renders the path the JSON schema was written to.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	return fmt.Sprintf("\n  %s %s %s\n",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Normal.Render("Wrote schema to"),
		r.theme.Highlight.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	return fmt.Sprintf("\n  %s %s\n",
		r.theme.ErrorStyle.Render(IconX),
		r.theme.ErrorStyle.Render(err.Error()),
	)
}

// RenderSchema renders keys grouped by section, in the given section order.
func (r *ConfigRenderer) RenderSchema(order []string, keys []entity.ConfigKeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	sections := groupBySection(keys)

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	parts := []string{
		fmt.Sprintf("%s %s", iconStyle.Render(IconConfig), r.theme.Title.Render("Config Schema Reference")),
		"",
	}
	for _, section := range order {
		if sectionKeys, ok := sections[section]; ok {
			parts = append(parts, r.renderSection(section, sectionKeys), "")
		}
	}

	return strings.Join(parts, "\n")
}

// RenderSchemaJSON renders the key reference as JSON.
func (*ConfigRenderer) RenderSchemaJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

func groupBySection(keys []entity.ConfigKeyInfo) map[string][]entity.ConfigKeyInfo {
	sections := make(map[string][]entity.ConfigKeyInfo)
	for _, key := range keys {
		sections[key.Section] = append(sections[key.Section], key)
	}
	return sections
}

func (r *ConfigRenderer) renderSection(name string, keys []entity.ConfigKeyInfo) string {
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, r.renderKey(key))
	}

	content := r.theme.Highlight.Render(name) + "\n" + strings.Join(lines, "\n")
	return r.theme.Box.PaddingTop(0).Render(content)
}

func (r *ConfigRenderer) renderKey(key entity.ConfigKeyInfo) string {
	keyStyle := r.theme.Normal.Bold(true)
	defaultStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	result := fmt.Sprintf(
		"%s  %s  %s\n  %s",
		keyStyle.Render(key.Key),
		r.theme.Subtle.Render(key.Type),
		defaultStyle.Render(key.Default),
		r.theme.Subtle.Render(key.Description),
	)

	if len(key.Values) > 0 {
		result += "\n  " + r.theme.Normal.Render("Values: "+strings.Join(key.Values, ", "))
	} else if key.Range != "" {
		result += "\n  " + r.theme.Normal.Render("Range: "+key.Range)
	}

	return result
}

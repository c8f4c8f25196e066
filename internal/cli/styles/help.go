package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// PlayKeyMap defines keybindings for the interactive scenario player.
type PlayKeyMap struct {
	Step    key.Binding
	RunAll  key.Binding
	Auto    key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Auto, k.RunAll, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Step, k.RunAll},
		{k.Auto, k.Restart},
		{k.Help, k.Quit},
	}
}

// DefaultPlayKeyMap returns the default player keybindings.
func DefaultPlayKeyMap() PlayKeyMap {
	return PlayKeyMap{
		Step: key.NewBinding(
			key.WithKeys("n", "right", "l", "enter"),
			key.WithHelp("n/→", "step"),
		),
		RunAll: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "run to end"),
		),
		Auto: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "play/pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a help model with theme colors.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = theme.HelpDesc
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}

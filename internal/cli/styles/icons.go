// Package styles provides reusable lipgloss-based TUI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher
	IconArrow     = "\uf061" // arrow right

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config
	IconFile    = "\uf15b" // file

	// Overlay lifecycle
	IconLayers  = "\uf5fd" // layers
	IconDesktop = "\uf108" // host window
	IconClock   = "\uf017" // clock
	IconPlay    = "\uf04b" // play
	IconPause   = "\uf04c" // pause
)

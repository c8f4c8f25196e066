package config

// Default configuration constants
const (
	// Overlay defaults
	defaultLayoutID = 0
	defaultGravity  = "bottom-end"
	defaultWidth    = 96  // px
	defaultHeight   = 96  // px
	defaultOffsetX  = 16  // px
	defaultOffsetY  = 120 // px

	// Animation defaults
	defaultAnimationEnabled  = true
	defaultAnimationDuration = 300 // ms
	maxAnimationDuration     = 5000

	// Click defaults
	defaultClickThreshold = 150 // ms
	maxClickThreshold     = 2000

	// Logging defaults
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Overlay: OverlayConfig{
			LayoutID: defaultLayoutID,
			Gravity:  defaultGravity,
			Width:    defaultWidth,
			Height:   defaultHeight,
			OffsetX:  defaultOffsetX,
			OffsetY:  defaultOffsetY,
		},
		Animation: AnimationConfig{
			Enabled:    defaultAnimationEnabled,
			Kind:       AnimationFade,
			DurationMs: defaultAnimationDuration,
		},
		Click: ClickConfig{
			ThresholdMs: defaultClickThreshold,
		},
		Hosts: HostsConfig{
			Allow: []string{},
			Deny:  []string{},
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setOverlayDefaults(defaults)
	m.setAnimationDefaults(defaults)
	m.viper.SetDefault("click.threshold_ms", defaults.Click.ThresholdMs)
	m.viper.SetDefault("hosts.allow", defaults.Hosts.Allow)
	m.viper.SetDefault("hosts.deny", defaults.Hosts.Deny)
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

func (m *Manager) setOverlayDefaults(defaults *Config) {
	m.viper.SetDefault("overlay.layout_id", defaults.Overlay.LayoutID)
	m.viper.SetDefault("overlay.gravity", defaults.Overlay.Gravity)
	m.viper.SetDefault("overlay.width", defaults.Overlay.Width)
	m.viper.SetDefault("overlay.height", defaults.Overlay.Height)
	m.viper.SetDefault("overlay.offset_x", defaults.Overlay.OffsetX)
	m.viper.SetDefault("overlay.offset_y", defaults.Overlay.OffsetY)
}

func (m *Manager) setAnimationDefaults(defaults *Config) {
	m.viper.SetDefault("animation.enabled", defaults.Animation.Enabled)
	m.viper.SetDefault("animation.kind", string(defaults.Animation.Kind))
	m.viper.SetDefault("animation.duration_ms", defaults.Animation.DurationMs)
}

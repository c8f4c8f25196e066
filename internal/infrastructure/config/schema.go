package config

import (
	"time"

	"github.com/bnema/floaty/internal/domain/entity"
)

// Config represents the complete configuration for floaty.
type Config struct {
	// Overlay describes the floating view itself.
	Overlay OverlayConfig `mapstructure:"overlay" yaml:"overlay" toml:"overlay" json:"overlay"`
	// Animation controls the enter/exit animation.
	Animation AnimationConfig `mapstructure:"animation" yaml:"animation" toml:"animation" json:"animation"`
	Click     ClickConfig     `mapstructure:"click" yaml:"click" toml:"click" json:"click"`
	// Hosts filters which hosts the overlay follows.
	Hosts   HostsConfig   `mapstructure:"hosts" yaml:"hosts" toml:"hosts" json:"hosts"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
}

// OverlayConfig holds the floating view layout.
type OverlayConfig struct {
	// LayoutID selects the view layout. 0 means unset.
	LayoutID int `mapstructure:"layout_id" yaml:"layout_id" toml:"layout_id" json:"layout_id" jsonschema:"minimum=0" jsonschema_description:"Layout the floating view is built from (0 leaves it unset)"`
	// Gravity anchors the view inside its container.
	Gravity string `mapstructure:"gravity" yaml:"gravity" toml:"gravity" json:"gravity" jsonschema:"enum=top-start,enum=top-end,enum=bottom-start,enum=bottom-end,enum=center"`
	Width   int    `mapstructure:"width" yaml:"width" toml:"width" json:"width" jsonschema:"minimum=0"`
	Height  int    `mapstructure:"height" yaml:"height" toml:"height" json:"height" jsonschema:"minimum=0"`
	OffsetX int    `mapstructure:"offset_x" yaml:"offset_x" toml:"offset_x" json:"offset_x"`
	OffsetY int    `mapstructure:"offset_y" yaml:"offset_y" toml:"offset_y" json:"offset_y"`
}

// AnimationKind selects the animator implementation.
type AnimationKind string

const (
	AnimationFade AnimationKind = "fade"
	AnimationNone AnimationKind = "none"
)

// AnimationConfig controls enter/exit animations.
type AnimationConfig struct {
	Enabled bool          `mapstructure:"enabled" yaml:"enabled" toml:"enabled" json:"enabled"`
	Kind    AnimationKind `mapstructure:"kind" yaml:"kind" toml:"kind" json:"kind" jsonschema:"enum=fade,enum=none"`
	// DurationMs is the exit animation length; teardown is deferred by it.
	DurationMs int `mapstructure:"duration_ms" yaml:"duration_ms" toml:"duration_ms" json:"duration_ms" jsonschema:"minimum=0,maximum=5000"`
}

// Duration returns DurationMs as a time.Duration.
func (a AnimationConfig) Duration() time.Duration {
	return time.Duration(a.DurationMs) * time.Millisecond
}

// ClickConfig holds the tap gesture settings.
type ClickConfig struct {
	// ThresholdMs is the longest press still treated as a tap.
	ThresholdMs int `mapstructure:"threshold_ms" yaml:"threshold_ms" toml:"threshold_ms" json:"threshold_ms" jsonschema:"minimum=0,maximum=2000"`
}

// Threshold returns ThresholdMs as a time.Duration.
func (c ClickConfig) Threshold() time.Duration {
	return time.Duration(c.ThresholdMs) * time.Millisecond
}

// HostsConfig holds host id patterns (path.Match syntax).
type HostsConfig struct {
	Allow []string `mapstructure:"allow" yaml:"allow" toml:"allow" json:"allow"`
	Deny  []string `mapstructure:"deny" yaml:"deny" toml:"deny" json:"deny"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// Layout returns the configured layout as a domain id.
func (o OverlayConfig) Layout() entity.LayoutID {
	return entity.LayoutID(o.LayoutID)
}

// LayoutParams converts the overlay geometry to domain layout params.
func (o OverlayConfig) LayoutParams() entity.LayoutParams {
	return entity.LayoutParams{
		Width:   o.Width,
		Height:  o.Height,
		Gravity: entity.Gravity(o.Gravity),
		OffsetX: o.OffsetX,
		OffsetY: o.OffsetY,
	}
}

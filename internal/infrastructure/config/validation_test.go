package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_DefaultsAreValid(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{name: "negative layout", mutate: func(c *Config) { c.Overlay.LayoutID = -1 }, wantKey: "overlay.layout_id"},
		{name: "bad gravity", mutate: func(c *Config) { c.Overlay.Gravity = "middle" }, wantKey: "overlay.gravity"},
		{name: "negative width", mutate: func(c *Config) { c.Overlay.Width = -4 }, wantKey: "overlay.width"},
		{name: "bad animation kind", mutate: func(c *Config) { c.Animation.Kind = "slide" }, wantKey: "animation.kind"},
		{name: "duration too long", mutate: func(c *Config) { c.Animation.DurationMs = 5001 }, wantKey: "animation.duration_ms"},
		{name: "threshold too long", mutate: func(c *Config) { c.Click.ThresholdMs = 2001 }, wantKey: "click.threshold_ms"},
		{name: "bad allow pattern", mutate: func(c *Config) { c.Hosts.Allow = []string{"[main"} }, wantKey: "hosts.allow"},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantKey: "logging.level"},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantKey: "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

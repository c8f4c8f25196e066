package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigPath = "/etc/floaty/config.toml"

func newTestManager(t *testing.T, content string) (*Manager, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	if content != "" {
		require.NoError(t, afero.WriteFile(fs, testConfigPath, []byte(content), filePerm))
	}
	mgr, err := NewManager(WithFs(fs), WithConfigFile(testConfigPath))
	require.NoError(t, err)
	return mgr, fs
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "bottom-end", mgr.viper.GetString("overlay.gravity"))
	assert.True(t, mgr.viper.GetBool("animation.enabled"))
	assert.Equal(t, 300, mgr.viper.GetInt("animation.duration_ms"))
	assert.Equal(t, 150, mgr.viper.GetInt("click.threshold_ms"))
}

func TestManager_LoadWithoutFileUsesDefaults(t *testing.T) {
	mgr, _ := newTestManager(t, "")

	require.NoError(t, mgr.Load())

	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestManager_LoadReadsFile(t *testing.T) {
	mgr, _ := newTestManager(t, `
[overlay]
layout_id = 7
gravity = "TOP-START"

[animation]
kind = "none"
duration_ms = 120

[hosts]
deny = ["debug.*", "  "]
`)

	require.NoError(t, mgr.Load())
	cfg := mgr.Get()

	assert.Equal(t, 7, cfg.Overlay.LayoutID)
	assert.Equal(t, "top-start", cfg.Overlay.Gravity)
	assert.Equal(t, AnimationNone, cfg.Animation.Kind)
	assert.Equal(t, 120, cfg.Animation.DurationMs)
	assert.True(t, cfg.Animation.Enabled)
	assert.Equal(t, []string{"debug.*"}, cfg.Hosts.Deny)
	assert.Equal(t, testConfigPath, mgr.GetConfigFile())
}

func TestManager_EnvOverridesFile(t *testing.T) {
	t.Setenv("FLOATY_ANIMATION_DURATION_MS", "80")
	t.Setenv("FLOATY_LOG_LEVEL", "debug")
	mgr, _ := newTestManager(t, "[animation]\nduration_ms = 120\n")

	require.NoError(t, mgr.Load())
	cfg := mgr.Get()

	assert.Equal(t, 80, cfg.Animation.DurationMs)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	mgr, _ := newTestManager(t, "[animation]\nduration_ms = 9000\n[click]\nthreshold_ms = -1\n")

	err := mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "animation.duration_ms")
	assert.Contains(t, err.Error(), "click.threshold_ms")
}

func TestManager_LoadRejectsMalformedToml(t *testing.T) {
	mgr, _ := newTestManager(t, "[overlay\nlayout_id = ")

	err := mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be valid TOML")
}

func TestManager_SaveWritesAndReloads(t *testing.T) {
	mgr, fs := newTestManager(t, "")
	require.NoError(t, mgr.Load())
	var notified *Config
	mgr.OnConfigChange(func(c *Config) { notified = c })

	cfg := mgr.Get()
	cfg.Overlay.LayoutID = 3
	cfg.Hosts.Allow = []string{"main"}
	require.NoError(t, mgr.Save(cfg))

	exists, err := afero.Exists(fs, testConfigPath)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, 3, mgr.Get().Overlay.LayoutID)
	assert.Equal(t, []string{"main"}, mgr.Get().Hosts.Allow)

	require.NoError(t, mgr.Reload())
	require.NotNil(t, notified)
	assert.Equal(t, 3, notified.Overlay.LayoutID)
}

func TestManager_GetReturnsCopy(t *testing.T) {
	mgr, _ := newTestManager(t, "[hosts]\nallow = [\"main\"]\n")
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Hosts.Allow[0] = "changed"
	cfg.Overlay.LayoutID = 99

	assert.Equal(t, []string{"main"}, mgr.Get().Hosts.Allow)
	assert.Equal(t, 0, mgr.Get().Overlay.LayoutID)
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Animation.Kind = "FADE"
	cfg.Logging.Level = "Warning"
	cfg.Logging.Format = ""
	cfg.Overlay.Gravity = ""

	normalizeConfig(cfg)

	assert.Equal(t, AnimationFade, cfg.Animation.Kind)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "bottom-end", cfg.Overlay.Gravity)
}

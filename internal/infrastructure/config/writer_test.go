package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefaultConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/home/user/.config/floaty/config.toml"

	written, err := WriteDefaultConfig(fs, path)
	require.NoError(t, err)
	assert.True(t, written)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "#:schema ./config.schema.json")
	assert.Contains(t, content, "[animation]")
	assert.Contains(t, content, "duration_ms = 300")
	assert.Contains(t, content, "bottom-end")

	written, err = WriteDefaultConfig(fs, path)
	require.NoError(t, err)
	assert.False(t, written)
}

func TestWriteConfig_RoundTripsThroughManager(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := DefaultConfig()
	cfg.Overlay.LayoutID = 12
	cfg.Hosts.Deny = []string{"debug.*"}
	require.NoError(t, WriteConfig(fs, cfg, testConfigPath))

	mgr, err := NewManager(WithFs(fs), WithConfigFile(testConfigPath))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, cfg, mgr.Get())
}

func TestWriteConfig_NilConfig(t *testing.T) {
	assert.Error(t, WriteConfig(afero.NewMemMapFs(), nil, testConfigPath))
}

func TestManager_InitWritesOnce(t *testing.T) {
	fs := afero.NewMemMapFs()
	mgr, err := NewManager(WithFs(fs), WithConfigFile(testConfigPath))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	path, written, err := mgr.Init()
	require.NoError(t, err)
	assert.Equal(t, testConfigPath, path)
	assert.True(t, written)

	_, written, err = mgr.Init()
	require.NoError(t, err)
	assert.False(t, written)
}

func TestManager_WriteSchemaNextToConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	mgr, err := NewManager(WithFs(fs), WithConfigFile(testConfigPath))
	require.NoError(t, err)

	path, err := mgr.WriteSchema()
	require.NoError(t, err)
	assert.Equal(t, "/etc/floaty/config.schema.json", path)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Floaty Configuration")
}

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/floaty/internal/scenario"
)

func runRoot(t *testing.T, args ...string) error {
	t.Helper()
	t.Cleanup(func() {
		simulateRealtime = false
		simulateWatch = false
		configFile = ""
	})
	cfg := filepath.Join(t.TempDir(), "config.toml")
	rootCmd.SetArgs(append([]string{"--config", cfg}, args...))
	return rootCmd.Execute()
}

func TestSimulate_ManualRunPasses(t *testing.T) {
	require.NoError(t, runRoot(t, "simulate", "../../../scenarios/chat-head.yaml"))
	require.NotNil(t, GetApp())
	assert.Equal(t, "bottom-end", GetApp().Config.Overlay.Gravity)
}

func TestSimulate_RealtimeRunPasses(t *testing.T) {
	require.NoError(t, runRoot(t, "simulate", "--realtime", "../../../scenarios/host-follow.yaml"))
}

func TestSimulate_WatchRequiresRealtime(t *testing.T) {
	err := runRoot(t, "simulate", "--watch", "../../../scenarios/chat-head.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch requires --realtime")
}

func TestSimulate_MissingScenario(t *testing.T) {
	err := runRoot(t, "simulate", "does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open scenario")
}

func TestSimulate_ReportsFailedExpectations(t *testing.T) {
	file := filepath.Join(t.TempDir(), "fail.yaml")
	require.NoError(t, writeScenario(file, `
settings: {layout_id: 1}
hosts: [{id: main}]
steps:
  - do: expect
    expect: {state: attached-visible}
`))

	err := runRoot(t, "simulate", file)
	require.ErrorIs(t, err, scenario.ErrExpectationFailed)
}

func writeScenario(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

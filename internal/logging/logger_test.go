package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_JSONWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf
	cfg.Level = zerolog.DebugLevel

	logger := New(cfg)
	ctx := WithComponent(WithContext(context.Background(), logger), "floating-controller")
	FromContext(ctx).Debug().Msg("attached")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "floating-controller", entry["component"])
	assert.Equal(t, "attached", entry["message"])
	assert.Equal(t, "debug", entry["level"])
}

func TestFromContext_WithoutLoggerIsDisabled(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestWithHost_AddsField(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf

	ctx := WithHost(WithContext(context.Background(), New(cfg)), "settings")
	FromContext(ctx).Info().Msg("resumed")

	assert.Contains(t, buf.String(), `"host_id":"settings"`)
}

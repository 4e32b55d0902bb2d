package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/keepmind9/framebot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearTwitchEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TWITCH_TOKEN", "TWITCH_NAME", "TWITCH_CHANNEL", "TWITCH_IRC_ADDRESS",
		"FRAMEBOT_RECONNECT_DELAY", "FRAMEBOT_FRAME_DATA", "FRAMEBOT_METRICS_ADDRESS", "FRAMEBOT_LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestRunValidate_Valid(t *testing.T) {
	clearTwitchEnv(t)
	dir := t.TempDir()
	data := writeFrameData(t)
	config := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(config, []byte(`
twitch:
  token: "oauth:abcdef"
  name: "framebot"
  channels: ["foo"]
  reconnect_delay: 1s
frame_data:
  file: "`+data+`"
metrics:
  address: ":2112"
`), 0644))

	result := runValidate(config, filepath.Join(dir, "none.env"))

	assert.True(t, result.Valid)
	assert.Equal(t, []string{"#foo"}, result.Channels)
	assert.Equal(t, 1, result.Characters)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestRunValidate_MissingSettings(t *testing.T) {
	clearTwitchEnv(t)

	result := runValidate("", filepath.Join(t.TempDir(), "none.env"))

	assert.False(t, result.Valid)
	assert.Equal(t, "(environment only)", result.Config)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "missing required settings")
}

func TestRunValidate_BadFrameData(t *testing.T) {
	clearTwitchEnv(t)
	t.Setenv("TWITCH_TOKEN", "oauth:abc")
	t.Setenv("TWITCH_NAME", "framebot")
	t.Setenv("TWITCH_CHANNEL", "foo")
	t.Setenv("FRAMEBOT_FRAME_DATA", filepath.Join(t.TempDir(), "missing.yaml"))

	result := runValidate("", filepath.Join(t.TempDir(), "none.env"))

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "failed to read frame data file")
}

func TestValidateConfigDetails(t *testing.T) {
	cfg := &core.Config{}
	cfg.Twitch.Token = "abc"

	warnings := validateConfigDetails(cfg)
	assert.Len(t, warnings, 3)

	cfg.Twitch.Token = "oauth:abc"
	cfg.Twitch.ReconnectDelay = time.Second
	cfg.Metrics.Address = ":2112"
	assert.Empty(t, validateConfigDetails(cfg))
}

func TestOutputValidationResult(t *testing.T) {
	result := ValidationResult{
		Valid:    false,
		Config:   "config.yaml",
		Errors:   []string{"missing required settings: twitch.token (TWITCH_TOKEN)"},
		Warnings: []string{"metrics.address is empty - prometheus metrics are not exposed"},
	}

	var text bytes.Buffer
	outputValidationResult(&text, result, false)
	assert.Contains(t, text.String(), "Configuration validation failed")
	assert.Contains(t, text.String(), "twitch.token")
	assert.Contains(t, text.String(), "metrics.address")

	var js bytes.Buffer
	outputValidationResult(&js, result, true)
	var decoded ValidationResult
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Equal(t, result, decoded)
}

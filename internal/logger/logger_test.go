package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogger(t *testing.T, level logrus.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(level)
	l.SetFormatter(&logrus.JSONFormatter{})

	prev := GetLogger()
	SetLogger(l)
	t.Cleanup(func() { SetLogger(prev) })
	return &buf
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{
			name: "file only",
			config: Config{
				Level:      "info",
				File:       filepath.Join(t.TempDir(), "framebot.log"),
				MaxSize:    1,
				MaxBackups: 1,
				MaxAge:     1,
			},
		},
		{
			name:   "stdout only",
			config: Config{Level: "debug", EnableStdout: true},
		},
		{
			name: "file and stdout",
			config: Config{
				Level:        "warn",
				File:         filepath.Join(t.TempDir(), "framebot.log"),
				EnableStdout: true,
				Compress:     true,
			},
		},
		{
			name:   "no output",
			config: Config{Level: "info"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.config)
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestNew_CreatesLogDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	_, err := New(Config{Level: "info", File: filepath.Join(dir, "framebot.log")})
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNew_LevelParsing(t *testing.T) {
	tests := []struct {
		level    string
		expected logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"invalid", logrus.InfoLevel},
		{"", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l, err := New(Config{Level: tt.level})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, l.GetLevel())
		})
	}
}

func TestNew_Formatter(t *testing.T) {
	debug, err := New(Config{Level: "debug"})
	require.NoError(t, err)
	assert.IsType(t, &logrus.TextFormatter{}, debug.Formatter)

	info, err := New(Config{Level: "info"})
	require.NoError(t, err)
	assert.IsType(t, &logrus.JSONFormatter{}, info.Formatter)

	forced, err := New(Config{Level: "info", Format: "text"})
	require.NoError(t, err)
	assert.IsType(t, &logrus.TextFormatter{}, forced.Formatter)
}

func TestInitLogger_InstallsGlobal(t *testing.T) {
	prev := GetLogger()
	t.Cleanup(func() { SetLogger(prev) })

	require.NoError(t, InitLogger(Config{Level: "warn"}))
	assert.Equal(t, logrus.WarnLevel, GetLogger().GetLevel())
	assert.Same(t, GetLogger(), GetLogger())
}

func TestLogFunctions(t *testing.T) {
	buf := captureLogger(t, logrus.InfoLevel)

	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")
	Infof("info %s", "formatted")
	Errorf("error %d", 42)

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
	assert.Contains(t, output, "info formatted")
	assert.Contains(t, output, "error 42")
}

func TestWithFields(t *testing.T) {
	buf := captureLogger(t, logrus.InfoLevel)

	WithFields(logrus.Fields{"channel": "bar", "command": "fd"}).Info("command-received")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "command-received", entry["msg"])
	assert.Equal(t, "bar", entry["channel"])
	assert.Equal(t, "fd", entry["command"])

	buf.Reset()
	WithField("state", "listening").Info("state-changed")
	assert.Contains(t, buf.String(), "listening")
}

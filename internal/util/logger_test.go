package util

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level string, format LogFormat) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger, _ := NewLogger(level, "", false)
	logger.AddOutput(NewConsoleOutput(&buf, format))
	return logger, &buf
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warn":    LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"fatal":   LevelFatal,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for input, want := range tests {
		assert.Equal(t, want, ParseLogLevel(input), input)
	}
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestLoggerLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger("warn", FormatText)

	logger.Info("hidden")
	logger.Debugf("hidden %d", 1)
	logger.Warn("shown", F("emotion", "Sad"))
	logger.Errorf("failed %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] shown emotion=Sad")
	assert.Contains(t, out, "[ERROR] failed 2")

	logger.SetLevel(LevelDebug)
	logger.Debug("now visible")
	assert.Contains(t, buf.String(), "[DEBUG] now visible")
}

func TestLoggerTextFieldsSorted(t *testing.T) {
	logger, buf := newBufferLogger("info", FormatText)
	logger.Info("entry", F("z", 1), F("a", "x"))
	assert.Contains(t, buf.String(), "entry a=x z=1")
}

func TestLoggerJSON(t *testing.T) {
	logger, buf := newBufferLogger("info", FormatJSON)
	logger.With(F("component", "store")).Info("added", F("count", 3))

	var record Record
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record))
	assert.Equal(t, "INFO", record.Level)
	assert.Equal(t, "added", record.Message)
	assert.Equal(t, "store", record.Fields["component"])
	assert.EqualValues(t, 3, record.Fields["count"])
}

func TestLoggerWithDoesNotLeakFields(t *testing.T) {
	logger, buf := newBufferLogger("info", FormatText)
	child := logger.With(F("screen", "logs"))

	child.Info("child")
	logger.Info("parent")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "screen=logs")
	assert.NotContains(t, lines[1], "screen=logs")
}

func TestNewLoggerWithoutOutputs(t *testing.T) {
	logger, err := NewLogger("debug", "", false)
	require.NoError(t, err)
	logger.Info("discarded")
	assert.NoError(t, logger.Close())
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger, err := NewLogger("info", path, false)
	require.NoError(t, err)

	logger.Info("written to file", F("emotion", "Happy"))
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] written to file emotion=Happy")
}

func TestNewLoggerBadFile(t *testing.T) {
	_, err := NewLogger("info", filepath.Join(t.TempDir(), "missing", "app.log"), false)
	assert.Error(t, err)
}

func TestGlobalLogger(t *testing.T) {
	SetLogger(nil)
	assert.Nil(t, Logging())
	// No logger configured: calls are no-ops.
	LogInfo("nothing")
	LogErrorf("nothing %d", 1)

	logger, buf := newBufferLogger("debug", FormatText)
	SetLogger(logger)
	defer SetLogger(nil)

	LogDebugf("debug %s", "line")
	LogWarn("warn line", F("k", "v"))
	out := buf.String()
	assert.Contains(t, out, "[DEBUG] debug line")
	assert.Contains(t, out, "[WARN] warn line k=v")
}

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestJSONLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithSink("warn", "json", zapcore.AddSync(&buf))
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", zap.String("key", "persist:root"))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "persist:root", entry["key"])
}

func TestConsoleIsDefault(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithSink("", "", zapcore.AddSync(&buf))
	require.NoError(t, err)

	log.Info("hello")
	assert.Contains(t, buf.String(), "info")
	assert.Contains(t, buf.String(), "hello")
}

func TestInvalidSettings(t *testing.T) {
	_, err := New("loud", "json")
	assert.Error(t, err)

	_, err = New("info", "xml")
	assert.Error(t, err)
}

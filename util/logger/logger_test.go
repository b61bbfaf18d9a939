package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, "info", "json")

	l.Debug("hidden")
	l.Info("shown", "room_id", 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.EqualValues(t, 2, entry["room_id"])
}

func TestNewTextSetsDefault(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, "debug", "text")

	assert.Same(t, l.Handler(), slog.Default().Handler())
	slog.Debug("through default")
	assert.Contains(t, buf.String(), "through default")
}

package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"WARNING", LevelWarn},
		{" error ", LevelError},
		{"unknown", LevelInfo},
		{"", LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.input), "input %q", tt.input)
	}
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "UNKNOWN", Level(99).String())
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, LevelWarn)

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown", "plugin", "forms")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "plugin=forms")
	assert.True(t, log.Enabled(LevelError))
	assert.False(t, log.Enabled(LevelInfo))
}

func TestLogger_ErrorKeyNormalized(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, LevelDebug).WithComponent("app")

	log.Error("failed", "error", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "err=boom")
	assert.Contains(t, out, "component=app")
	assert.NotContains(t, out, "error=")
}

func TestLogger_NilSafe(t *testing.T) {
	var log *Logger
	assert.NotPanics(t, func() {
		log.Info("ignored")
		log.With("k", "v").Warn("ignored")
	})
	assert.NotPanics(t, func() { NewNop().Error("ignored") })
}

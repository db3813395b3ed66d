package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		want  slog.Level
		valid bool
	}{
		{"trace", LevelTrace, true},
		{"debug", slog.LevelDebug, true},
		{"info", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"loud", 0, false},
		{"", 0, false},
		{"TRACE", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLevel(tt.name)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	prev := Level()
	t.Cleanup(func() { level.Set(prev) })

	SetLevel("error")
	assert.Equal(t, slog.LevelError, Level())

	SetLevel("bogus")
	assert.Equal(t, slog.LevelError, Level(), "unknown names leave the level untouched")

	SetLevel("trace")
	assert.Equal(t, LevelTrace, Level())
}

func TestTraceIsHighestVerbosity(t *testing.T) {
	assert.Less(t, LevelTrace, slog.LevelDebug)
}

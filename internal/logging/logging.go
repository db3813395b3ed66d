// Package logging configures the process-wide logger for workbench.
//
// The level is held in a single slog.LevelVar so that the defaults
// resolver can adjust verbosity after argument parsing without
// rebuilding the handler. Trace sits below slog's debug level to match
// the tool's five-level scale (trace, debug, info, warn, error).
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelTrace extends slog's built-in levels downward; it is the
// highest verbosity the tool supports.
const LevelTrace = slog.Level(-8)

var level slog.LevelVar

// Options controls Init.
type Options struct {
	// File, when non-empty, adds a rotated log file sink alongside
	// stderr. The directory is created if needed.
	File string
}

// Init installs the default slog logger. Safe to call once per
// invocation; before Init, slog's own default applies.
func Init(o Options) {
	writers := []io.Writer{os.Stderr}

	if o.File != "" {
		_ = os.MkdirAll(filepath.Dir(o.File), 0755)
		writers = append(writers, &lumberjack.Logger{
			Filename:   o.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
		})
	}

	handler := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{
		Level: &level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Render the custom trace level by name instead of DEBUG-4.
			if a.Key == slog.LevelKey {
				if lv, ok := a.Value.Any().(slog.Level); ok && lv == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	})
	slog.SetDefault(slog.New(handler))
}

// ParseLevel maps a level name to its slog value. The second return is
// false for names outside the five-level scale.
func ParseLevel(name string) (slog.Level, bool) {
	switch name {
	case "trace":
		return LevelTrace, true
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}

// IsValid reports whether name is a member of the level scale.
func IsValid(name string) bool {
	_, ok := ParseLevel(name)
	return ok
}

// SetLevel adjusts the active level of the global logger. Unknown
// names are ignored so that callers can pass through unvalidated
// environment values.
func SetLevel(name string) {
	if lv, ok := ParseLevel(name); ok {
		level.Set(lv)
	}
}

// Level returns the currently active level.
func Level() slog.Level {
	return level.Level()
}

// Trace logs at trace level through the default logger.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

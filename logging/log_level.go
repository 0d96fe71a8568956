package logging

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// ParseLogLevel parses debug, info, warn (or warning) and error,
// case-insensitively. ok is false for empty or unknown input.
func ParseLogLevel(levelStr string) (level zapcore.Level, ok bool) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return zapcore.DebugLevel, true
	case "info":
		return zapcore.InfoLevel, true
	case "warn", "warning":
		return zapcore.WarnLevel, true
	case "error":
		return zapcore.ErrorLevel, true
	default:
		return zapcore.InfoLevel, false
	}
}

// Levels returns the file and console levels for a run.
//
// Development runs log everything from debug up on both outputs. Otherwise
// the file gets info and above while the console only shows warnings, so a
// clean run prints nothing but the completion message. A recognised
// override sets both outputs; an unrecognised one is ignored.
func Levels(isDevelopment bool, override string) (file, console zapcore.Level) {
	if level, ok := ParseLogLevel(override); ok {
		return level, level
	}
	if isDevelopment {
		return zapcore.DebugLevel, zapcore.DebugLevel
	}
	return zapcore.InfoLevel, zapcore.WarnLevel
}

package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger with the console/file tee used by the generator.
//
// Example:
//
//	logger, err := NewLogger(false, "icongen.log", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer logger.Sync()
//
//	logger.Info("icon written", zap.String("path", path))
type Logger struct {
	zap           *zap.Logger
	isDevelopment bool
	logFilePath   string
}

// NewLogger creates a Logger writing JSON to logFilePath (rotated by
// lumberjack) and to stderr. levelOverride is parsed with ParseLogLevel;
// see Levels for how it applies.
//
// Returns an error if the log file cannot be created or opened.
func NewLogger(isDevelopment bool, logFilePath string, levelOverride string) (*Logger, error) {
	fileLevel, consoleLevel := Levels(isDevelopment, levelOverride)

	core, err := NewMultiCore(fileLevel, consoleLevel, logFilePath, isDevelopment)
	if err != nil {
		return nil, fmt.Errorf("failed to create log core: %w", err)
	}

	return newLogger(core, isDevelopment, logFilePath), nil
}

// NewConsoleLogger creates a Logger that writes to stderr only, at the
// console level Levels picks. main uses it when the log file cannot be opened.
func NewConsoleLogger(isDevelopment bool, levelOverride string) *Logger {
	_, consoleLevel := Levels(isDevelopment, levelOverride)
	return newLogger(NewConsoleCore(consoleLevel, zapcore.Lock(os.Stderr), isDevelopment), isDevelopment, "")
}

// NewLoggerFromCore wraps an existing core, mainly for tests that observe
// entries with zaptest/observer.
func NewLoggerFromCore(core zapcore.Core) *Logger {
	return newLogger(core, false, "")
}

func newLogger(core zapcore.Core, isDevelopment bool, logFilePath string) *Logger {
	return &Logger{
		zap:           zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)),
		isDevelopment: isDevelopment,
		logFilePath:   logFilePath,
	}
}

// Sync flushes buffered entries. Call it before exiting.
func (l *Logger) Sync() error {
	if l == nil || l.zap == nil {
		return nil
	}
	return l.zap.Sync()
}

// Debug logs at DebugLevel.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.zap.Debug(msg, fields...)
}

// Info logs at InfoLevel.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.zap.Info(msg, fields...)
}

// Warn logs at WarnLevel.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.zap.Warn(msg, fields...)
}

// Error logs at ErrorLevel.
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.zap.Error(msg, fields...)
}

// With returns a child logger that adds fields to every entry.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{
		zap:           l.zap.With(fields...),
		isDevelopment: l.isDevelopment,
		logFilePath:   l.logFilePath,
	}
}

// Named returns a child logger with name appended to the logger name.
//
// Example:
//
//	fontLogger := logger.Named("icon")
func (l *Logger) Named(name string) *Logger {
	return &Logger{
		zap:           l.zap.Named(name),
		isDevelopment: l.isDevelopment,
		logFilePath:   l.logFilePath,
	}
}

// Zap returns a *zap.Logger for packages that take one directly. The
// wrapper's caller skip is removed so callers are reported correctly.
func (l *Logger) Zap() *zap.Logger {
	return l.zap.WithOptions(zap.AddCallerSkip(-1))
}

// IsDevelopment reports whether the logger was built for development mode.
func (l *Logger) IsDevelopment() bool {
	return l.isDevelopment
}

// LogFilePath returns the path of the log file.
func (l *Logger) LogFilePath() string {
	return l.logFilePath
}

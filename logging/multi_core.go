package logging

import (
	"os"

	"go.uber.org/zap/zapcore"
)

// NewMultiCore tees a console core on stderr with a rotating JSON file core
// at filePath. Each output has its own minimum level.
func NewMultiCore(fileLevel, consoleLevel zapcore.Level, filePath string, isDev bool) (zapcore.Core, error) {
	if err := probeLogFile(filePath); err != nil {
		return nil, err
	}

	fileWriter := NewFileWriter(filePath, DefaultFileWriterConfig())
	return NewMultiCoreWithWriters(fileLevel, consoleLevel, zapcore.Lock(os.Stderr), fileWriter, isDev), nil
}

// NewMultiCoreWithWriters is NewMultiCore with caller-supplied writers.
// The file side is always JSON; the console side is human readable in
// development and JSON otherwise.
func NewMultiCoreWithWriters(fileLevel, consoleLevel zapcore.Level, consoleWriter, fileWriter zapcore.WriteSyncer, isDev bool) zapcore.Core {
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(NewEncoderConfig()),
		fileWriter,
		fileLevel,
	)

	return zapcore.NewTee(NewConsoleCore(consoleLevel, consoleWriter, isDev), fileCore)
}

// NewConsoleCore returns the console side of the tee on its own:
// human readable in development, JSON otherwise.
func NewConsoleCore(level zapcore.Level, w zapcore.WriteSyncer, isDev bool) zapcore.Core {
	var encoder zapcore.Encoder
	if isDev {
		encoder = zapcore.NewConsoleEncoder(NewConsoleEncoderConfig())
	} else {
		encoder = zapcore.NewJSONEncoder(NewEncoderConfig())
	}
	return zapcore.NewCore(encoder, w, level)
}

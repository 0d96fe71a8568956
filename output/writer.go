// Package output serializes the generated icon to PNG files.
package output

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"go.uber.org/zap"

	"go_icongen/core"
)

// FileMode is the permission used for written PNG files.
const FileMode = 0644

// ErrNoPaths is returned when WriteAll is called without destinations.
var ErrNoPaths = errors.New("output: no output paths")

// Result describes one written file.
type Result struct {
	Path     string
	Bytes    int
	Checksum string // hex SHA-256 of the written bytes
}

// Writer writes one image to several PNG files.
type Writer struct {
	logger *zap.Logger
}

// NewWriter creates a Writer. A nil logger discards output.
func NewWriter(logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{logger: logger}
}

// EncodePNG encodes img with the default PNG settings.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteAll encodes img once and writes the bytes to every path in order,
// replacing existing files. It stops at the first failed write and returns
// the results written so far along with a *core.OutputError. Files written
// before the failure are left in place.
func (w *Writer) WriteAll(img image.Image, paths []string) ([]Result, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}

	data, err := EncodePNG(img)
	if err != nil {
		return nil, err
	}
	checksum := core.ComputeSHA256FromBytes(data)

	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		if err := os.WriteFile(path, data, FileMode); err != nil {
			w.logger.Error("failed to write icon",
				zap.String("path", path),
				zap.Int("written", len(results)),
				zap.Error(err),
			)
			return results, &core.OutputError{Path: path, Err: err}
		}

		w.logger.Debug("icon written",
			zap.String("path", path),
			zap.Int("bytes", len(data)),
			zap.String("sha256", checksum),
		)
		results = append(results, Result{Path: path, Bytes: len(data), Checksum: checksum})
	}

	return results, nil
}

// VerifyIdentical re-reads every written file and checks that all of them
// hold the same bytes as the first one.
func VerifyIdentical(results []Result) error {
	if len(results) == 0 {
		return ErrNoPaths
	}

	var want string
	for i, r := range results {
		got, err := core.ComputeSHA256(r.Path)
		if err != nil {
			return err
		}
		if i == 0 {
			want = got
			continue
		}
		if got != want {
			return fmt.Errorf("output: %s differs from %s (sha256 %s != %s)", r.Path, results[0].Path, got, want)
		}
	}
	return nil
}

package icon

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// Font loading errors. ResolveFont logs them and moves on to the next
// candidate; they are never returned to callers of Generate.
var (
	ErrEmptyFontPath   = errors.New("icon: empty font path")
	ErrEmptyFontFile   = errors.New("icon: empty font file")
	ErrUnsupportedFont = errors.New("icon: unsupported font format")
)

// BuiltinFontName identifies the embedded fallback face in logs and FontHandle.Source.
const BuiltinFontName = "builtin:gobold"

// BitmapFontName identifies the last-resort fixed bitmap face.
const BitmapFontName = "builtin:basicfont-7x13"

// OpenFunc opens a candidate font file for reading.
type OpenFunc func(path string) (io.ReadCloser, error)

func openFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// FontHandle is a resolved, rasterizable face at a fixed size.
type FontHandle struct {
	Face    font.Face
	Source  string // file path, or one of the builtin names
	Builtin bool
}

// Close releases the face.
func (h FontHandle) Close() error {
	if h.Face == nil {
		return nil
	}
	return h.Face.Close()
}

// DefaultFontCandidates returns the ordered system font paths tried before
// falling back to the builtin face. The macOS Arial and Helvetica come
// first; the rest are common bold sans faces on Linux and Windows.
func DefaultFontCandidates() []string {
	return []string{
		"/System/Library/Fonts/Arial.ttf",
		"/System/Library/Fonts/Helvetica.ttc",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
		"C:\\Windows\\Fonts\\arialbd.ttf",
	}
}

// ResolveFont walks candidates in order and returns the first one that can
// be opened, parsed and turned into a face at size. Failures are logged at
// debug level and skipped. If every candidate fails the embedded Go Bold
// face is used, and if even that cannot be built, basicfont.Face7x13.
func ResolveFont(candidates []string, size float64, open OpenFunc, logger *zap.Logger) FontHandle {
	if open == nil {
		open = openFile
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, path := range candidates {
		face, err := loadFace(path, size, open)
		if err != nil {
			logger.Debug("font candidate rejected",
				zap.String("path", path),
				zap.Error(err),
			)
			continue
		}
		return FontHandle{Face: face, Source: path}
	}

	face, err := builtinFace(size)
	if err != nil {
		logger.Warn("builtin font unavailable, using bitmap face", zap.Error(err))
		return FontHandle{Face: basicfont.Face7x13, Source: BitmapFontName, Builtin: true}
	}
	return FontHandle{Face: face, Source: BuiltinFontName, Builtin: true}
}

// loadFace reads one font file and builds a face from it. The file is
// closed before parsing starts, whatever the outcome of the read.
func loadFace(path string, size float64, open OpenFunc) (font.Face, error) {
	if path == "" {
		return nil, ErrEmptyFontPath
	}

	data, err := readAll(path, open)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFontFile, path)
	}

	f, err := parseFont(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedFont, path, err)
	}

	return newFace(f, size)
}

func readAll(path string, open OpenFunc) ([]byte, error) {
	rc, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("open font %q: %w", path, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read font %q: %w", path, err)
	}
	return data, nil
}

// parseFont accepts a single TrueType/OpenType font or a collection (.ttc),
// in which case the first face of the collection is used.
func parseFont(data []byte) (*opentype.Font, error) {
	coll, err := opentype.ParseCollection(data)
	if err == nil && coll.NumFonts() > 0 {
		return coll.Font(0)
	}
	return opentype.Parse(data)
}

// newFace builds a face at 72 DPI so that size is in pixels.
func newFace(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face at %.1fpt: %w", size, err)
	}
	return face, nil
}

func builtinFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse builtin font: %w", err)
	}
	return newFace(f, size)
}

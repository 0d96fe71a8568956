// Package icon renders the MPDF application icon: a solid square with the
// word "MPDF" centered on it in white.
package icon

import (
	"image"
	"image/color"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

// Fixed icon parameters.
const (
	CanvasSize = 1024
	Text       = "MPDF"
	FontSize   = 200
)

var (
	// Background is #1976d2.
	Background = color.RGBA{R: 0x19, G: 0x76, B: 0xd2, A: 0xff}
	// Foreground is opaque white.
	Foreground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Generator renders the icon. The zero value is not usable; use NewGenerator.
type Generator struct {
	candidates []string
	open       OpenFunc
	logger     *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithFontCandidates replaces the ordered list of font paths.
// An empty list goes straight to the builtin face.
func WithFontCandidates(paths []string) Option {
	return func(g *Generator) {
		g.candidates = append([]string(nil), paths...)
	}
}

// WithOpenFunc replaces how candidate font files are opened.
func WithOpenFunc(open OpenFunc) Option {
	return func(g *Generator) {
		if open != nil {
			g.open = open
		}
	}
}

// WithLogger sets the logger used for font resolution diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a Generator that tries DefaultFontCandidates.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		candidates: DefaultFontCandidates(),
		open:       openFile,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders the icon with the default font candidates.
func Generate() *image.RGBA {
	return NewGenerator().Generate()
}

// Generate renders a CanvasSize x CanvasSize bitmap filled with Background
// and draws Text centered in Foreground. It never fails: font problems
// degrade to the builtin face.
func (g *Generator) Generate() *image.RGBA {
	img := NewCanvas(CanvasSize, Background)

	handle := ResolveFont(g.candidates, FontSize, g.open, g.logger)
	defer handle.Close()

	box := MeasureText(handle.Face, Text)
	origin := CenterOrigin(CanvasSize, box)

	g.logger.Info("rendering icon text",
		zap.String("font", handle.Source),
		zap.Bool("builtin_font", handle.Builtin),
		zap.Int("text_width", box.Width()),
		zap.Int("text_height", box.Height()),
		zap.Int("origin_x", origin.X),
		zap.Int("origin_y", origin.Y),
	)

	DrawText(img, handle.Face, Text, box, origin, Foreground)
	return img
}

// NewCanvas allocates a size x size bitmap filled with bg.
func NewCanvas(size int, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return img
}

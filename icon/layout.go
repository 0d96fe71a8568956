package icon

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// TextBox is the pixel extent of a rendered string relative to a dot
// (baseline origin) at (0, 0). Top is usually negative.
type TextBox struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Width returns Right - Left.
func (b TextBox) Width() int {
	return b.Right - b.Left
}

// Height returns Bottom - Top.
func (b TextBox) Height() int {
	return b.Bottom - b.Top
}

// MeasureText returns the ink bounding box of text drawn with face at its
// natural layout. Fractional bounds are widened to whole pixels.
func MeasureText(face font.Face, text string) TextBox {
	bounds, _ := font.BoundString(face, text)
	return TextBox{
		Left:   bounds.Min.X.Floor(),
		Top:    bounds.Min.Y.Floor(),
		Right:  bounds.Max.X.Ceil(),
		Bottom: bounds.Max.Y.Ceil(),
	}
}

// CenterOrigin returns the top-left point at which a box of the given
// extent is centered on a square canvas, floored to whole pixels.
func CenterOrigin(canvas int, box TextBox) image.Point {
	return image.Point{
		X: floorDiv(canvas-box.Width(), 2),
		Y: floorDiv(canvas-box.Height(), 2),
	}
}

// DrawText draws text onto dst so that the top-left corner of its bounding
// box lands on origin. Anchoring on the ink box rather than the ascender
// line centers the glyphs exactly, slightly higher than an ascender anchor would.
func DrawText(dst *image.RGBA, face font.Face, text string, box TextBox, origin image.Point, fg color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(origin.X-box.Left, origin.Y-box.Top),
	}
	d.DrawString(text)
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

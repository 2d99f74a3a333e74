package background

import (
	"encoding/json"
	"fmt"
)

// Color is an sRGB color with a straight (non-premultiplied) alpha in [0, 1]
type Color struct {
	R, G, B uint8
	A       float64
}

// Hex builds an opaque color from 0xRRGGBB
func Hex(rgb uint32) Color {
	return Color{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 1}
}

// Fade returns the color with its alpha scaled by f and clamped to [0, 1]
func (c Color) Fade(f float64) Color {
	c.A = clamp01(c.A * f)
	return c
}

// String renders the color as a CSS rgba() value
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.3g)", c.R, c.G, c.B, c.A)
}

// MarshalJSON encodes the color as its CSS string so a canvas can use it as-is
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// ColorStop is a gradient stop at an offset in [0, 1]
type ColorStop struct {
	Offset float64 `json:"offset"`
	Color  Color   `json:"color"`
}

// Rect is an axis-aligned rectangle
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Surface is the drawing target of the animation. Alpha arguments act like a
// canvas global alpha and multiply the colors' own alpha.
type Surface interface {
	// Resize sets the pixel dimensions of the surface
	Resize(width, height int)
	// Size returns the pixel dimensions of the surface
	Size() (width, height int)
	// FillRadial paints rect with a radial gradient from (cx, cy) out to radius r
	FillRadial(rect Rect, cx, cy, r float64, stops []ColorStop, alpha float64)
	// FillCircle paints a disc with an optional glow of the given blur radius
	FillCircle(x, y, r float64, c Color, alpha, glow float64)
	// StrokeGradient draws a round-capped line colored by a linear gradient
	// running from (x0, y0) to (x1, y1)
	StrokeGradient(x0, y0, x1, y1, width float64, stops []ColorStop, alpha float64)
	// Present finishes the current frame
	Present() error
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

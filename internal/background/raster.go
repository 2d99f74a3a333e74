package background

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
)

// RasterSurface draws into an in-memory RGBA image
type RasterSurface struct {
	dc *gg.Context
}

// NewRasterSurface creates a width x height raster
func NewRasterSurface(width, height int) *RasterSurface {
	r := &RasterSurface{}
	r.Resize(width, height)
	return r
}

func (r *RasterSurface) Resize(width, height int) {
	r.dc = gg.NewContext(max(width, 1), max(height, 1))
}

func (r *RasterSurface) Size() (int, int) {
	return r.dc.Width(), r.dc.Height()
}

func (r *RasterSurface) FillRadial(rect Rect, cx, cy, radius float64, stops []ColorStop, alpha float64) {
	grad := gg.NewRadialGradient(cx, cy, 0, cx, cy, radius)
	for _, s := range stops {
		grad.AddColorStop(s.Offset, nrgba(s.Color.Fade(alpha)))
	}
	r.dc.SetFillStyle(grad)
	r.dc.DrawRectangle(rect.X, rect.Y, rect.W, rect.H)
	r.dc.Fill()
}

// FillCircle approximates the canvas shadow blur with one faint halo
func (r *RasterSurface) FillCircle(x, y, radius float64, c Color, alpha, glow float64) {
	if glow > 0 {
		r.dc.SetColor(nrgba(c.Fade(alpha * 0.25)))
		r.dc.DrawCircle(x, y, radius+glow/4)
		r.dc.Fill()
	}
	r.dc.SetColor(nrgba(c.Fade(alpha)))
	r.dc.DrawCircle(x, y, radius)
	r.dc.Fill()
}

func (r *RasterSurface) StrokeGradient(x0, y0, x1, y1, width float64, stops []ColorStop, alpha float64) {
	grad := gg.NewLinearGradient(x0, y0, x1, y1)
	for _, s := range stops {
		grad.AddColorStop(s.Offset, nrgba(s.Color.Fade(alpha)))
	}
	r.dc.SetStrokeStyle(grad)
	r.dc.SetLineWidth(width)
	r.dc.SetLineCapRound()
	r.dc.DrawLine(x0, y0, x1, y1)
	r.dc.Stroke()
}

// Present is a no-op; the image is always current
func (r *RasterSurface) Present() error {
	return nil
}

// Image returns the rendered frame
func (r *RasterSurface) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the rendered frame as a PNG
func (r *RasterSurface) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

func nrgba(c Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(clamp01(c.A)*255 + 0.5)}
}

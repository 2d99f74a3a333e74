package background

import "context"

// discard is a Surface that draws nothing. Particle state does not depend
// on the surface, so warm-up ticks can run against it.
type discard struct {
	width, height int
}

func (d *discard) Resize(width, height int) { d.width, d.height = width, height }

func (d *discard) Size() (int, int) { return d.width, d.height }

func (d *discard) FillRadial(Rect, float64, float64, float64, []ColorStop, float64) {}

func (d *discard) FillCircle(float64, float64, float64, Color, float64, float64) {}

func (d *discard) StrokeGradient(float64, float64, float64, float64, float64, []ColorStop, float64) {}

func (d *discard) Present() error { return nil }

// Render advances a freshly seeded session by frames ticks and rasterizes
// only the last one. It returns ctx.Err() if ctx is cancelled first.
func Render(ctx context.Context, cfg Config, seed uint64, width, height, frames int) (*RasterSurface, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	surface := NewRasterSurface(width, height)
	w, h := surface.Size()
	engine := NewEngine(cfg, NewRNG(seed), w, h)
	if frames < 1 {
		frames = 1
	}

	warmup := &discard{width: w, height: h}
	for i := 0; i < frames-1; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		engine.Tick(warmup)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	engine.Tick(surface)
	return surface, nil
}

package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"portfolio.dev/internal/background"
	"portfolio.dev/internal/config"
)

// SnapshotRequest asks for a still of the background after some frames.
// Zero fields fall back to the configured values.
type SnapshotRequest struct {
	Width  int
	Height int
	Frames int
	Seed   uint64
}

// BackgroundService hands out animators and renders PNG snapshots
type BackgroundService struct {
	cfg config.BackgroundConfig
	log *zap.Logger
}

// NewBackgroundService creates a new BackgroundService
func NewBackgroundService(cfg config.BackgroundConfig, log *zap.Logger) *BackgroundService {
	if log == nil {
		log = zap.NewNop()
	}
	return &BackgroundService{cfg: cfg, log: log}
}

// Population returns the particle counts used for every session
func (s *BackgroundService) Population() background.Config {
	pop := background.DefaultConfig()
	pop.Stars = s.cfg.Stars
	pop.Nebulae = s.cfg.Nebulae
	return pop
}

// ClampSize bounds a requested viewport to the configured maximum, using
// the default size for non-positive values
func (s *BackgroundService) ClampSize(width, height int) (int, int) {
	if width <= 0 {
		width = s.cfg.Width
	}
	if height <= 0 {
		height = s.cfg.Height
	}
	return clamp(width, 1, s.cfg.MaxWidth), clamp(height, 1, s.cfg.MaxHeight)
}

// Seed returns the seed for a new session: the requested one, the
// configured one, or a fresh one from the clock
func (s *BackgroundService) Seed(requested uint64) uint64 {
	if requested != 0 {
		return requested
	}
	if s.cfg.Seed != 0 {
		return s.cfg.Seed
	}
	return uint64(time.Now().UnixNano())
}

// NewAnimator creates an animator for one streaming client
func (s *BackgroundService) NewAnimator(seed uint64) *background.Animator {
	seed = s.Seed(seed)
	return background.NewAnimator(s.Population(), s.cfg.FPS, func() background.Source {
		return background.NewRNG(seed)
	}, s.log)
}

// Snapshot renders req and writes it to w as PNG. Cancelling ctx abandons
// the render.
func (s *BackgroundService) Snapshot(ctx context.Context, w io.Writer, req SnapshotRequest) error {
	width, height := s.ClampSize(req.Width, req.Height)
	frames := clamp(req.Frames, 1, s.cfg.MaxFrames)
	seed := s.Seed(req.Seed)

	start := time.Now()
	surface, err := background.Render(ctx, s.Population(), seed, width, height, frames)
	if err != nil {
		return fmt.Errorf("background render abandoned: %w", err)
	}
	s.log.Debug("background snapshot rendered",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("frames", frames),
		zap.Uint64("seed", seed),
		zap.Duration("took", time.Since(start)))

	return surface.EncodePNG(w)
}

// clamp bounds a value between min and max
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

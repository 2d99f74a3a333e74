package background

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Host is whatever owns the drawing surface and the viewport
type Host interface {
	// Surface returns the drawing target, or nil when none is available
	Surface() Surface
	// Viewport returns the current viewport size in pixels
	Viewport() (width, height int)
	// OnResize registers fn to be called with new viewport sizes and returns
	// a function that removes the registration
	OnResize(fn func(width, height int)) (remove func())
}

type size struct {
	width, height int
}

// Animator runs the frame loop of one mounted animation session at a time.
// Mount acquires the resize listener and the frame schedule; both are
// released when the session ends, however it ends.
type Animator struct {
	cfg    Config
	fps    int
	source func() Source
	log    *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewAnimator creates an animator drawing fps frames per second. source is
// called once per session for the session's randomness.
func NewAnimator(cfg Config, fps int, source func() Source, log *zap.Logger) *Animator {
	if fps <= 0 {
		fps = 60
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Animator{cfg: cfg, fps: fps, source: source, log: log}
}

// Mount starts a new session on host, tearing down any previous one first.
// A host without a surface leaves the animator inert: nothing is scheduled
// and no listener is registered.
func (a *Animator) Mount(ctx context.Context, host Host) {
	a.Unmount()

	surface := host.Surface()
	if surface == nil {
		a.log.Debug("background: no drawing surface, animation disabled")
		return
	}

	width, height := host.Viewport()
	surface.Resize(width, height)
	engine := NewEngine(a.cfg, a.source(), width, height)

	resized := make(chan size, 1)
	remove := host.OnResize(func(w, h int) {
		// keep only the latest size
		select {
		case <-resized:
		default:
		}
		select {
		case resized <- size{w, h}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	a.mu.Lock()
	a.cancel = cancel
	a.done = done
	a.mu.Unlock()

	go a.run(ctx, engine, surface, resized, remove, done)
}

func (a *Animator) run(ctx context.Context, engine *Engine, surface Surface, resized <-chan size, remove func(), done chan struct{}) {
	ticker := time.NewTicker(time.Second / time.Duration(a.fps))
	defer close(done)
	defer remove()
	defer ticker.Stop()

	a.log.Debug("background: session started",
		zap.Int("stars", len(engine.Population().Stars)),
		zap.Int("nebulae", len(engine.Population().Nebulae)),
		zap.Int("fps", a.fps))

	for {
		select {
		case <-ctx.Done():
			a.log.Debug("background: session stopped", zap.Uint64("frames", engine.Frames()))
			return

		case sz := <-resized:
			surface.Resize(sz.width, sz.height)
			engine.Resize(sz.width, sz.height)

		case <-ticker.C:
			engine.Tick(surface)
			if err := surface.Present(); err != nil {
				a.log.Debug("background: surface gone, stopping session",
					zap.Error(err),
					zap.Uint64("frames", engine.Frames()))
				return
			}
		}
	}
}

// Unmount stops the running session, if any, and waits until its frame
// schedule and resize listener have been released
func (a *Animator) Unmount() {
	a.mu.Lock()
	cancel, done := a.cancel, a.done
	a.cancel, a.done = nil, nil
	a.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Done returns a channel closed when the current session ends. Without a
// session the channel is already closed.
func (a *Animator) Done() <-chan struct{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return a.done
}

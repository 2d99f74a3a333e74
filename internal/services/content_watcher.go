package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Debounce bounds for NewContentWatcher
const (
	DefaultDebounce = 250 * time.Millisecond
	MinDebounce     = 10 * time.Millisecond
)

// Reloader is anything that can re-read its content
type Reloader interface {
	Reload(ctx context.Context) error
}

// ContentWatcher reloads content when section files in the data directory
// change. Bursts of events are collapsed into one reload once the directory
// has been quiet for the debounce period.
type ContentWatcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	target   Reloader
	dir      string
	debounce time.Duration
	log      *zap.Logger
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool

	// last unreloaded event, zero when nothing is pending
	pending time.Time
	reloads int
}

// NewContentWatcher creates a watcher for dir. Start must be called to begin
// watching.
func NewContentWatcher(dir string, target Reloader, debounce time.Duration, log *zap.Logger) (*ContentWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	debounce = max(debounce, MinDebounce)

	return &ContentWatcher{
		watcher:  watcher,
		target:   target,
		dir:      dir,
		debounce: debounce,
		log:      log,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. It does not block.
func (cw *ContentWatcher) Start(ctx context.Context) error {
	cw.mu.Lock()
	if cw.running {
		cw.mu.Unlock()
		return nil
	}
	if err := cw.watcher.Add(cw.dir); err != nil {
		cw.mu.Unlock()
		return fmt.Errorf("failed to watch %s: %w", cw.dir, err)
	}
	cw.running = true
	cw.mu.Unlock()

	cw.log.Info("watching content", zap.String("dir", cw.dir))
	go cw.run(ctx)
	return nil
}

// Stop ends the event loop and releases the underlying watcher
func (cw *ContentWatcher) Stop() {
	cw.mu.Lock()
	if !cw.running {
		cw.mu.Unlock()
		_ = cw.watcher.Close()
		return
	}
	cw.running = false
	cw.mu.Unlock()

	close(cw.stopCh)
	<-cw.doneCh

	if err := cw.watcher.Close(); err != nil {
		cw.log.Warn("error closing content watcher", zap.Error(err))
	}
}

// Done is closed when the event loop has exited
func (cw *ContentWatcher) Done() <-chan struct{} {
	return cw.doneCh
}

// Reloads returns how many reloads have succeeded
func (cw *ContentWatcher) Reloads() int {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	return cw.reloads
}

func (cw *ContentWatcher) run(ctx context.Context) {
	defer close(cw.doneCh)

	tick := time.NewTicker(cw.debounce / 2)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-cw.stopCh:
			return

		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			cw.handleEvent(event)

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.log.Warn("content watcher error", zap.Error(err))

		case <-tick.C:
			cw.flush(ctx)
		}
	}
}

func (cw *ContentWatcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	if !IsContentFile(event.Name) {
		return
	}

	cw.log.Debug("content changed", zap.String("file", event.Name), zap.String("op", event.Op.String()))
	cw.mu.Lock()
	cw.pending = time.Now()
	cw.mu.Unlock()
}

func (cw *ContentWatcher) flush(ctx context.Context) {
	cw.mu.Lock()
	if cw.pending.IsZero() || time.Since(cw.pending) < cw.debounce {
		cw.mu.Unlock()
		return
	}
	cw.pending = time.Time{}
	cw.mu.Unlock()

	// a failed reload leaves the last good content in place
	if err := cw.target.Reload(ctx); err != nil {
		cw.log.Error("content reload failed", zap.Error(err))
		return
	}

	cw.mu.Lock()
	cw.reloads++
	cw.mu.Unlock()
}

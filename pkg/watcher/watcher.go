package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher calls a function whenever a single file is written, created,
// renamed or removed. Events are coalesced through a Debouncer.
//
// The parent directory is watched rather than the file itself, so atomic
// save-by-rename keeps working.
type Watcher struct {
	path      string
	window    time.Duration
	debouncer *Debouncer
	logger    *zap.Logger

	fsw  *fsnotify.Watcher
	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithReloadWindow overrides DefaultReloadWindow.
func WithReloadWindow(d time.Duration) Option {
	return func(w *Watcher) { w.window = d }
}

// WithLogger sets the logger for watch errors.
func WithLogger(l *zap.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a watcher for path. Call Start to begin delivering events.
func New(path string, onChange func(), opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}
	w := &Watcher{
		path:   filepath.Clean(abs),
		logger: zap.NewNop(),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.debouncer = NewDebouncer(w.window, onChange)
	return w, nil
}

// Path returns the watched file.
func (w *Watcher) Path() string { return w.path }

// Start begins watching. The event loop runs until ctx is done or Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fs watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	w.fsw = fsw

	w.wg.Add(1)
	go w.loop(ctx)
	return nil
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			w.logger.Debug("catalog changed", zap.String("path", w.path), zap.Stringer("op", ev.Op))
			w.debouncer.Trigger()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("catalog watch error", zap.Error(err))
		}
	}
}

// Close stops the event loop and cancels any pending callback.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		if w.fsw != nil {
			err = w.fsw.Close()
		}
		w.wg.Wait()
		w.debouncer.Stop()
	})
	return err
}

// Package watcher reloads the product catalog when its file changes on disk.
package watcher

import (
	"sync"
	"time"
)

// DefaultReloadWindow is how long the catalog must stay quiet before a reload.
// Editors often save in several writes.
const DefaultReloadWindow = 250 * time.Millisecond

// Debouncer runs one reload function after a burst of change notifications
// has gone quiet for the window. Each Trigger restarts the window.
type Debouncer struct {
	window time.Duration
	reload func()

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
	busy  sync.WaitGroup
}

// NewDebouncer returns a debouncer that calls reload. A zero window uses
// DefaultReloadWindow.
func NewDebouncer(window time.Duration, reload func()) *Debouncer {
	if window <= 0 {
		window = DefaultReloadWindow
	}
	return &Debouncer{window: window, reload: reload}
}

// Trigger notes a change and (re)starts the quiet window.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() { d.fire(gen) })
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	// A timer that fired just as it was replaced or stopped must not run.
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.busy.Add(1)
	d.mu.Unlock()

	defer d.busy.Done()
	d.reload()
}

// Pending reports whether a reload is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop drops any scheduled reload and waits for a running one to return.
// It must not be called from inside the reload function.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
	d.busy.Wait()
}

// Window returns the quiet window.
func (d *Debouncer) Window() time.Duration {
	return d.window
}

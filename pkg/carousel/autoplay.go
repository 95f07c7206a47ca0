package carousel

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// AutoplayState is the scheduler's lifecycle state.
type AutoplayState int

const (
	AutoplayIdle AutoplayState = iota
	AutoplayRunning
	AutoplaySuspended
)

func (s AutoplayState) String() string {
	switch s {
	case AutoplayIdle:
		return "idle"
	case AutoplayRunning:
		return "running"
	case AutoplaySuspended:
		return "suspended"
	default:
		return "unknown"
	}
}

// TickMsg is delivered when an autoplay interval elapses.
type TickMsg struct {
	ID   int
	Time time.Time
	tag  uint64
}

// TickFunc schedules fn after d. tea.Tick is the production implementation.
type TickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Autoplay owns the recurring advance timer. Each arm carries a tag; disarming
// bumps the tag so any tick already in flight is ignored when it lands.
type Autoplay struct {
	id       int
	interval time.Duration
	enabled  bool
	state    AutoplayState
	paused   bool
	tag      uint64
	closed   bool
	tick     TickFunc
}

// NewAutoplay returns an idle scheduler. It does nothing until Start.
func NewAutoplay(enabled bool, interval time.Duration, tick TickFunc) *Autoplay {
	if tick == nil {
		tick = tea.Tick
	}
	return &Autoplay{
		id:       nextID(),
		interval: interval,
		enabled:  enabled,
		tick:     tick,
	}
}

// ID identifies ticks belonging to this scheduler.
func (a *Autoplay) ID() int { return a.id }

// State returns the current lifecycle state.
func (a *Autoplay) State() AutoplayState { return a.state }

// Interval returns the configured period.
func (a *Autoplay) Interval() time.Duration { return a.interval }

// Paused reports whether an explicit pause is holding the scheduler.
func (a *Autoplay) Paused() bool { return a.paused }

// Start moves Idle to Running when autoplay is enabled.
func (a *Autoplay) Start() tea.Cmd {
	if a.closed || !a.enabled || a.state != AutoplayIdle {
		return nil
	}
	if a.paused {
		a.state = AutoplaySuspended
		return nil
	}
	return a.arm()
}

// Suspend stops ticking until Resume.
func (a *Autoplay) Suspend() {
	if a.state != AutoplayRunning {
		return
	}
	a.disarm()
	a.state = AutoplaySuspended
}

// Resume re-arms a suspended scheduler with a full interval. An explicit
// pause keeps it suspended.
func (a *Autoplay) Resume() tea.Cmd {
	if a.closed || a.state != AutoplaySuspended || a.paused {
		return nil
	}
	return a.arm()
}

// Restart re-arms a running scheduler so the next advance is a full interval
// away.
func (a *Autoplay) Restart() tea.Cmd {
	if a.closed || a.state != AutoplayRunning {
		return nil
	}
	return a.arm()
}

// Pause is an explicit user hold; it survives gesture ends until Unpause.
func (a *Autoplay) Pause() {
	a.paused = true
	a.Suspend()
}

// Unpause releases an explicit hold.
func (a *Autoplay) Unpause() tea.Cmd {
	if !a.paused {
		return nil
	}
	a.paused = false
	return a.Resume()
}

// ClearPause drops an explicit hold without re-arming. The scheduler stays
// suspended until the next Resume.
func (a *Autoplay) ClearPause() {
	a.paused = false
}

// Stop returns to Idle and releases the pending tick.
func (a *Autoplay) Stop() {
	a.disarm()
	a.state = AutoplayIdle
}

// Reset applies a new configuration: the scheduler drops to Idle and, if
// still enabled, starts again with a fresh interval.
func (a *Autoplay) Reset(enabled bool, interval time.Duration) tea.Cmd {
	a.Stop()
	a.enabled = enabled
	a.interval = interval
	return a.Start()
}

// Close stops the scheduler for good. Ticks that land afterwards are no-ops.
func (a *Autoplay) Close() {
	a.Stop()
	a.closed = true
}

// Closed reports whether Close has been called.
func (a *Autoplay) Closed() bool { return a.closed }

// Accept reports whether msg is the live tick for this scheduler. A live tick
// re-arms the timer; stale, foreign and post-Close ticks are dropped.
func (a *Autoplay) Accept(msg TickMsg) (bool, tea.Cmd) {
	if msg.ID != a.id || msg.tag != a.tag || a.closed || a.state != AutoplayRunning {
		return false, nil
	}
	return true, a.arm()
}

func (a *Autoplay) arm() tea.Cmd {
	a.tag++
	a.state = AutoplayRunning
	id, tag := a.id, a.tag
	return a.tick(a.interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t, tag: tag}
	})
}

func (a *Autoplay) disarm() {
	a.tag++
}

// Package carousel implements a slide viewport for Bubble Tea programs.
//
// A Model shows a window of slides sized by a responsive SlidesPerView
// policy. The leading index is changed by autoplay ticks, mouse swipes,
// keyboard bindings and clicks on the arrow and dot controls; all of them go
// through Viewport.GoTo so the index always stays inside [0, MaxIndex].
package carousel

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// arrowGutter is the width reserved on each side of the track for an arrow.
const arrowGutter = 2

type zone int

const (
	zoneNone zone = iota
	zoneTrack
	zonePrev
	zoneNext
	zoneDot
)

// Model is a Bubble Tea component wrapping a Viewport with autoplay, gesture
// and keyboard handling.
type Model struct {
	cfg    Config
	slides []Slide

	vp       Viewport
	autoplay *Autoplay
	gesture  Gesture

	width, height    int
	originX, originY int
	focused          bool

	pressZone zone
	pressDot  int

	keys   KeyMap
	styles Styles
	tick   TickFunc
	logger *zap.Logger
}

// Option customises a Model.
type Option func(*Model)

// WithLogger sets the logger used for navigation and autoplay events.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithKeyMap replaces the default bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// WithStyles replaces the default styles.
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

// WithTickFunc replaces tea.Tick as the autoplay timer source.
func WithTickFunc(f TickFunc) Option {
	return func(m *Model) { m.tick = f }
}

// New validates cfg and slides and builds an unmounted Model. Nothing is
// scheduled until Init.
func New(cfg Config, slides []Slide, opts ...Option) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateSlides(slides); err != nil {
		return nil, err
	}

	m := &Model{
		cfg:     cfg,
		slides:  append([]Slide(nil), slides...),
		vp:      NewViewport(cfg, len(slides)),
		focused: true,
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.autoplay = NewAutoplay(cfg.Autoplay, cfg.Interval, m.tick)
	return m, nil
}

// Init starts autoplay when enabled.
func (m *Model) Init() tea.Cmd {
	cmd := m.autoplay.Start()
	if cmd != nil {
		m.logger.Debug("autoplay started",
			zap.Int("carousel", m.autoplay.ID()),
			zap.Duration("interval", m.autoplay.Interval()))
	}
	return cmd
}

// Update handles ticks, mouse, keyboard and terminal focus messages.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m, m.handleTick(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.BlurMsg:
		return m, m.CancelGesture()
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleTick(msg TickMsg) tea.Cmd {
	if m.gesture.Active() {
		return nil
	}
	ok, cmd := m.autoplay.Accept(msg)
	if !ok {
		return nil
	}
	idx := m.vp.Next()
	m.logger.Debug("autoplay advance", zap.Int("carousel", m.autoplay.ID()), zap.Int("index", idx))
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Previous):
		return m.navigate("key", m.vp.Previous)
	case key.Matches(msg, m.keys.Next):
		return m.navigate("key", m.vp.Next)
	case key.Matches(msg, m.keys.First):
		return m.GoTo(0)
	case key.Matches(msg, m.keys.Last):
		return m.GoTo(m.vp.MaxIndex())
	case key.Matches(msg, m.keys.Pause):
		return m.TogglePause()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	x, y := msg.X-m.originX, msg.Y-m.originY

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			if m.gesture.Active() {
				return m.finishGesture(m.gesture.Cancel(m.vp.Width()))
			}
			return nil
		}
		m.pressZone, m.pressDot = m.zoneAt(x, y)
		if m.pressZone == zoneTrack {
			m.gesture.Down(x)
			m.autoplay.Suspend()
		}
		return nil

	case tea.MouseActionMotion:
		if !m.gesture.Active() {
			return nil
		}
		if z, _ := m.zoneAt(x, y); z != zoneTrack {
			return m.finishGesture(m.gesture.Cancel(m.vp.Width()))
		}
		m.gesture.Move(x)
		return nil

	case tea.MouseActionRelease:
		if m.gesture.Active() {
			m.pressZone = zoneNone
			return m.finishGesture(m.gesture.Up(x, m.vp.Width()))
		}
		pressed, dot := m.pressZone, m.pressDot
		m.pressZone = zoneNone
		z, i := m.zoneAt(x, y)
		if z != pressed || (z == zoneDot && i != dot) {
			return nil
		}
		switch z {
		case zonePrev:
			return m.navigate("arrow", m.vp.Previous)
		case zoneNext:
			return m.navigate("arrow", m.vp.Next)
		case zoneDot:
			return m.GoTo(i)
		}
	}
	return nil
}

func (m *Model) finishGesture(dir Direction) tea.Cmd {
	switch dir {
	case DirectionPrevious:
		m.vp.Previous()
	case DirectionNext:
		m.vp.Next()
	}
	m.logger.Debug("gesture finished",
		zap.Int("carousel", m.autoplay.ID()),
		zap.Stringer("direction", dir),
		zap.Int("index", m.vp.Index()))
	return m.autoplay.Resume()
}

// navigate applies a manual move. A move that changes the index also restarts
// a running autoplay so the next advance is a full interval away.
func (m *Model) navigate(source string, move func() int) tea.Cmd {
	before := m.vp.Index()
	after := move()
	if after == before {
		return nil
	}
	m.logger.Debug("navigate",
		zap.Int("carousel", m.autoplay.ID()),
		zap.String("source", source),
		zap.Int("from", before),
		zap.Int("to", after))
	return m.autoplay.Restart()
}

// GoTo moves to index i under the loop/clamp policy.
func (m *Model) GoTo(i int) tea.Cmd {
	return m.navigate("goto", func() int { return m.vp.GoTo(i) })
}

// Next advances one slide.
func (m *Model) Next() tea.Cmd { return m.navigate("next", m.vp.Next) }

// Previous goes back one slide.
func (m *Model) Previous() tea.Cmd { return m.navigate("previous", m.vp.Previous) }

// Reveal makes slide i visible, leading when possible.
func (m *Model) Reveal(i int) tea.Cmd {
	return m.navigate("reveal", func() int { return m.vp.Reveal(i) })
}

// CancelGesture ends an in-flight drag as if the pointer had been lost. A
// swipe past the threshold still navigates; autoplay resumes either way.
func (m *Model) CancelGesture() tea.Cmd {
	if !m.gesture.Active() {
		return nil
	}
	m.pressZone = zoneNone
	return m.finishGesture(m.gesture.Cancel(m.vp.Width()))
}

// TogglePause holds or releases autoplay.
func (m *Model) TogglePause() tea.Cmd {
	if m.autoplay.Paused() {
		m.logger.Debug("autoplay unpaused", zap.Int("carousel", m.autoplay.ID()))
		if m.gesture.Active() {
			m.autoplay.ClearPause()
			return nil
		}
		return m.autoplay.Unpause()
	}
	m.logger.Debug("autoplay paused", zap.Int("carousel", m.autoplay.ID()))
	m.autoplay.Pause()
	return nil
}

// SetSize records the widget's outer size and re-derives the bounds from the
// resulting track width.
func (m *Model) SetSize(width, height int) {
	m.width = max(0, width)
	m.height = max(0, height)
	m.vp.RecomputeBounds(len(m.slides), m.trackWidth())
}

// SetOrigin records the widget's top-left screen cell for mouse hit-testing.
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// SetSlides replaces the slide sequence and re-derives the bounds.
func (m *Model) SetSlides(slides []Slide) error {
	if err := validateSlides(slides); err != nil {
		return err
	}
	m.slides = append([]Slide(nil), slides...)
	m.vp.RecomputeBounds(len(m.slides), m.trackWidth())
	return nil
}

// Reconfigure swaps the configuration. Derived state is rebuilt from scratch
// and autoplay is reset; an in-flight gesture is dropped without navigating.
func (m *Model) Reconfigure(cfg Config) (tea.Cmd, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m.gesture = Gesture{}
	m.pressZone = zoneNone
	m.cfg = cfg
	m.vp = NewViewport(cfg, len(m.slides))
	m.vp.RecomputeBounds(len(m.slides), m.trackWidth())
	return m.autoplay.Reset(cfg.Autoplay, cfg.Interval), nil
}

// Close tears the widget down. Pending autoplay ticks become no-ops.
func (m *Model) Close() {
	m.gesture = Gesture{}
	m.autoplay.Close()
}

// Focus enables keyboard handling.
func (m *Model) Focus() { m.focused = true }

// Blur disables keyboard handling.
func (m *Model) Blur() { m.focused = false }

func (m *Model) Focused() bool                { return m.focused }
func (m *Model) Index() int                   { return m.vp.Index() }
func (m *Model) MaxIndex() int                { return m.vp.MaxIndex() }
func (m *Model) PerView() int                 { return m.vp.PerView() }
func (m *Model) Offset() float64              { return m.vp.Offset() }
func (m *Model) Viewport() Viewport           { return m.vp }
func (m *Model) Dragging() bool               { return m.gesture.Active() }
func (m *Model) AutoplayState() AutoplayState { return m.autoplay.State() }
func (m *Model) Config() Config               { return m.cfg }
func (m *Model) KeyMap() KeyMap               { return m.keys }
func (m *Model) Len() int                     { return len(m.slides) }

// Current returns the leading slide.
func (m *Model) Current() (Slide, bool) {
	i := m.vp.Index()
	if i < 0 || i >= len(m.slides) {
		return Slide{}, false
	}
	return m.slides[i], true
}

// VisibleSlides returns the slides currently in the window.
func (m *Model) VisibleSlides() []Slide {
	start, end := m.vp.Visible()
	if start >= len(m.slides) {
		return nil
	}
	return m.slides[start:end]
}

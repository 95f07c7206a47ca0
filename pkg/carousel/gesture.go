package carousel

// Direction is the navigation decision produced by a gesture.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionPrevious
	DirectionNext
)

func (d Direction) String() string {
	switch d {
	case DirectionPrevious:
		return "previous"
	case DirectionNext:
		return "next"
	default:
		return "none"
	}
}

// Swipe threshold tuning: the larger of a fixed floor and a fraction of the
// container width.
const (
	SwipeThresholdMin   = 20
	SwipeThresholdRatio = 0.06
)

// SwipeThreshold is the displacement a gesture must exceed to navigate.
func SwipeThreshold(width int) float64 {
	return max(SwipeThresholdMin, float64(width)*SwipeThresholdRatio)
}

// Gesture tracks one pointer interaction from down to up or cancel.
type Gesture struct {
	active bool
	startX int
	lastX  int
}

// Down starts a gesture at x.
func (g *Gesture) Down(x int) {
	g.active = true
	g.startX = x
	g.lastX = x
}

// Move records the pointer position. It never navigates.
func (g *Gesture) Move(x int) {
	if !g.active {
		return
	}
	g.lastX = x
}

// Up ends the gesture at x and classifies it against width.
func (g *Gesture) Up(x, width int) Direction {
	if !g.active {
		return DirectionNone
	}
	g.lastX = x
	return g.finish(width)
}

// Cancel ends the gesture at the last known position.
func (g *Gesture) Cancel(width int) Direction {
	if !g.active {
		return DirectionNone
	}
	return g.finish(width)
}

func (g *Gesture) finish(width int) Direction {
	g.active = false
	d := float64(g.lastX - g.startX)
	threshold := SwipeThreshold(width)
	switch {
	case d > threshold:
		return DirectionPrevious
	case d < -threshold:
		return DirectionNext
	default:
		return DirectionNone
	}
}

// Active reports whether a gesture is in progress.
func (g Gesture) Active() bool { return g.active }

// Displacement is the live horizontal travel, for drag feedback.
func (g Gesture) Displacement() int {
	if !g.active {
		return 0
	}
	return g.lastX - g.startX
}

package ui

// Layout breakpoints for responsive design.
const (
	// BreakpointNarrow is the width below which the detail pane stacks under
	// the carousel instead of sitting beside it.
	BreakpointNarrow = 80

	// BreakpointWide is the width at which the detail pane moves beside the carousel.
	BreakpointWide = 140
)

// Box and panel dimension constraints.
const (
	// MinBoxWidth is the minimum width for bordered content boxes.
	MinBoxWidth = 20

	// MinContentHeight is the minimum height for scrollable content areas.
	MinContentHeight = 5

	// HeaderHeight and StatusHeight are the fixed rows above and below the body.
	HeaderHeight = 2
	StatusHeight = 1

	// DetailWidth is the side pane width on wide terminals.
	DetailWidth = 48
)

// bodyLayout is how the screen below the header is split.
type bodyLayout struct {
	carouselX, carouselY          int
	carouselWidth, carouselHeight int
	detailWidth, detailHeight     int
	sideBySide                    bool
}

// computeLayout splits a width×height terminal between the carousel and the
// detail pane.
func computeLayout(width, height int) bodyLayout {
	body := height - HeaderHeight - StatusHeight
	if body < 0 {
		body = 0
	}
	l := bodyLayout{carouselY: HeaderHeight}

	if width >= BreakpointWide {
		l.sideBySide = true
		l.detailWidth = DetailWidth
		l.carouselWidth = width - DetailWidth
		l.carouselHeight = body
		l.detailHeight = body
		return l
	}

	l.carouselWidth = width
	l.detailWidth = width
	l.carouselHeight = body * 3 / 5
	if l.carouselHeight < MinContentHeight && body >= MinContentHeight {
		l.carouselHeight = MinContentHeight
	}
	l.detailHeight = body - l.carouselHeight
	return l
}

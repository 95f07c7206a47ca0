package carousel

// Viewport is the index state of a carousel. Navigation goes through GoTo;
// RecomputeBounds only settles the index, or clamps the initial index once
// the first width is known.
type Viewport struct {
	spv  SlidesPerView
	gap  int
	loop bool

	slideCount int
	width      int
	perView    int
	maxIndex   int
	index      int

	// initial is the configured start index, held until the first non-zero
	// width is known; -1 once applied or overridden by navigation.
	initial int
}

// NewViewport builds a viewport for slideCount slides. The width starts at
// zero until the first RecomputeBounds. The initial index is clamped now and
// clamped again against the bounds of the first measured width.
func NewViewport(cfg Config, slideCount int) Viewport {
	v := Viewport{
		spv:     cfg.SlidesPerView,
		gap:     cfg.Gap,
		loop:    cfg.Loop,
		initial: max(cfg.InitialIndex, 0),
	}
	v.derive(slideCount, 0)
	v.index = clamp(v.initial, 0, v.maxIndex)
	return v
}

// RecomputeBounds records a new container width and slide count, re-derives
// the visible count and maxIndex, then settles the index with the GoTo policy.
// The first non-zero width clamps the initial index instead of wrapping it.
func (v *Viewport) RecomputeBounds(slideCount, width int) {
	v.derive(slideCount, width)
	if v.initial >= 0 && v.width > 0 {
		v.index = clamp(v.initial, 0, v.maxIndex)
		v.initial = -1
		return
	}
	v.settle()
}

func (v *Viewport) derive(slideCount, width int) {
	if slideCount < 0 {
		slideCount = 0
	}
	if width < 0 {
		width = 0
	}
	v.slideCount = slideCount
	v.width = width
	v.perView = v.spv.Resolve(width)
	v.maxIndex = max(0, slideCount-v.perView)
}

func (v *Viewport) settle() {
	if v.index < 0 || v.index > v.maxIndex {
		v.move(v.index)
	}
}

// GoTo moves to target. With looping, targets below zero land on maxIndex and
// targets past maxIndex land on zero; without looping they are clamped.
func (v *Viewport) GoTo(target int) int {
	v.initial = -1
	return v.move(target)
}

func (v *Viewport) move(target int) int {
	switch {
	case target < 0 && v.loop:
		v.index = v.maxIndex
	case target > v.maxIndex && v.loop:
		v.index = 0
	default:
		v.index = clamp(target, 0, v.maxIndex)
	}
	return v.index
}

// Next advances by one slide.
func (v *Viewport) Next() int {
	return v.GoTo(v.index + 1)
}

// Previous moves back by one slide.
func (v *Viewport) Previous() int {
	return v.GoTo(v.index - 1)
}

// Reveal brings slide i into view, making it the leading slide when possible.
func (v *Viewport) Reveal(i int) int {
	if i < 0 {
		i = 0
	}
	return v.GoTo(min(i, v.maxIndex))
}

// CanNavigate is false when every slide already fits in the viewport.
func (v Viewport) CanNavigate() bool { return v.maxIndex > 0 }

// CanPrevious reports whether Previous would change the index.
func (v Viewport) CanPrevious() bool {
	return v.CanNavigate() && (v.loop || v.index > 0)
}

// CanNext reports whether Next would change the index.
func (v Viewport) CanNext() bool {
	return v.CanNavigate() && (v.loop || v.index < v.maxIndex)
}

func (v Viewport) Index() int      { return v.index }
func (v Viewport) MaxIndex() int   { return v.maxIndex }
func (v Viewport) PerView() int    { return v.perView }
func (v Viewport) Width() int      { return v.width }
func (v Viewport) SlideCount() int { return v.slideCount }
func (v Viewport) Gap() int        { return v.gap }
func (v Viewport) Loop() bool      { return v.loop }

// Offset is the horizontal translation of the slide track:
// -(index * (width/perView + gap)).
func (v Viewport) Offset() float64 {
	if v.perView == 0 {
		return 0
	}
	step := float64(v.width)/float64(v.perView) + float64(v.gap)
	return -(float64(v.index) * step)
}

// SlideWidth is the width of one slide once gaps are subtracted.
func (v Viewport) SlideWidth() int {
	if v.perView <= 0 {
		return 0
	}
	w := (v.width - v.gap*(v.perView-1)) / v.perView
	return max(0, w)
}

// Visible returns the half-open range of slide positions currently shown.
func (v Viewport) Visible() (start, end int) {
	start = v.index
	end = min(v.index+v.perView, v.slideCount)
	if end < start {
		end = start
	}
	return start, end
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

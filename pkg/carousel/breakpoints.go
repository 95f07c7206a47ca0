package carousel

import (
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// SlidesPerView describes how many slides are visible at once. It is either a
// fixed count or a set of minimum-width breakpoints, in cells.
//
// When Breakpoints is non-nil it wins and Fixed is ignored.
type SlidesPerView struct {
	Fixed       int
	Breakpoints map[int]int
}

// Fixed returns a SlidesPerView that always shows n slides.
func Fixed(n int) SlidesPerView {
	return SlidesPerView{Fixed: n}
}

// Responsive returns a SlidesPerView keyed by minimum container width.
func Responsive(breakpoints map[int]int) SlidesPerView {
	bp := make(map[int]int, len(breakpoints))
	for k, v := range breakpoints {
		bp[k] = v
	}
	return SlidesPerView{Breakpoints: bp}
}

// IsResponsive reports whether the value depends on the container width.
func (s SlidesPerView) IsResponsive() bool {
	return s.Breakpoints != nil
}

// Resolve returns the number of visible slides for the given width.
//
// A fixed value is returned unchanged. Breakpoints are scanned in ascending
// order and the last one whose key is <= width wins; if none matches the
// result is 1.
func (s SlidesPerView) Resolve(width int) int {
	if !s.IsResponsive() {
		if s.Fixed < 1 {
			return 1
		}
		return s.Fixed
	}

	best := 1
	for _, bp := range s.sortedKeys() {
		if bp <= width {
			best = s.Breakpoints[bp]
		}
	}
	return best
}

func (s SlidesPerView) sortedKeys() []int {
	keys := make([]int, 0, len(s.Breakpoints))
	for k := range s.Breakpoints {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Validate checks the value for construction-time errors.
func (s SlidesPerView) Validate() error {
	if !s.IsResponsive() {
		if s.Fixed < 0 {
			return fmt.Errorf("%w: slides per view must not be negative, got %d", ErrInvalidConfig, s.Fixed)
		}
		return nil
	}
	if len(s.Breakpoints) == 0 {
		return fmt.Errorf("%w: slides per view breakpoints are empty", ErrInvalidConfig)
	}
	for _, bp := range s.sortedKeys() {
		if bp < 0 {
			return fmt.Errorf("%w: breakpoint %d is negative", ErrInvalidConfig, bp)
		}
		if v := s.Breakpoints[bp]; v < 1 {
			return fmt.Errorf("%w: breakpoint %d shows %d slides", ErrInvalidConfig, bp, v)
		}
	}
	return nil
}

// String renders the value the way it is written in config files.
func (s SlidesPerView) String() string {
	if !s.IsResponsive() {
		return strconv.Itoa(s.Fixed)
	}
	out := "{"
	for i, bp := range s.sortedKeys() {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%d: %d", bp, s.Breakpoints[bp])
	}
	return out + "}"
}

// UnmarshalYAML accepts either a scalar count or a mapping of
// breakpoint -> count. Non-numeric breakpoint keys are rejected.
func (s *SlidesPerView) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var n int
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("%w: slides per view %q is not an integer", ErrInvalidConfig, node.Value)
		}
		*s = Fixed(n)
		return nil
	case yaml.MappingNode:
		bp := make(map[int]int, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			key, err := strconv.Atoi(keyNode.Value)
			if err != nil {
				return fmt.Errorf("%w: breakpoint %q is not numeric", ErrInvalidConfig, keyNode.Value)
			}
			var n int
			if err := valNode.Decode(&n); err != nil {
				return fmt.Errorf("%w: breakpoint %d value %q is not an integer", ErrInvalidConfig, key, valNode.Value)
			}
			bp[key] = n
		}
		*s = SlidesPerView{Breakpoints: bp}
		return nil
	default:
		return fmt.Errorf("%w: slides per view must be a number or a mapping", ErrInvalidConfig)
	}
}

// MarshalYAML writes the value back in the same shape it is read.
func (s SlidesPerView) MarshalYAML() (interface{}, error) {
	if !s.IsResponsive() {
		return s.Fixed, nil
	}
	return s.Breakpoints, nil
}

package carousel

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every construction-time validation error.
var ErrInvalidConfig = errors.New("carousel: invalid config")

// Default breakpoints, in terminal cells.
const (
	BreakpointTwoUp   = 80
	BreakpointThreeUp = 140
)

// DefaultInterval is the autoplay period used when none is configured.
const DefaultInterval = 4 * time.Second

// Config holds the options recognised by the carousel. It is treated as
// immutable once a Model is built; use Model.Reconfigure to swap it.
type Config struct {
	SlidesPerView SlidesPerView `yaml:"slides_per_view"`
	Gap           int           `yaml:"gap"`
	Autoplay      bool          `yaml:"autoplay"`
	Interval      time.Duration `yaml:"interval"`
	Loop          bool          `yaml:"loop"`
	ShowArrows    bool          `yaml:"show_arrows"`
	ShowDots      bool          `yaml:"show_dots"`
	InitialIndex  int           `yaml:"initial_index"`
	Label         string        `yaml:"label"`
}

// DefaultConfig returns the stock configuration: responsive 1/2/3-up, looping,
// arrows and dots visible, autoplay off.
func DefaultConfig() Config {
	return Config{
		SlidesPerView: Responsive(map[int]int{0: 1, BreakpointTwoUp: 2, BreakpointThreeUp: 3}),
		Gap:           2,
		Interval:      DefaultInterval,
		Loop:          true,
		ShowArrows:    true,
		ShowDots:      true,
		Label:         "Carousel",
	}
}

// Validate reports malformed options. Out-of-range InitialIndex is not an
// error; it is clamped once the slide count is known.
func (c Config) Validate() error {
	if err := c.SlidesPerView.Validate(); err != nil {
		return err
	}
	if c.Gap < 0 {
		return fmt.Errorf("%w: gap must not be negative, got %d", ErrInvalidConfig, c.Gap)
	}
	if c.Autoplay && c.Interval <= 0 {
		return fmt.Errorf("%w: autoplay interval must be positive, got %s", ErrInvalidConfig, c.Interval)
	}
	return nil
}

// Slide is one unit of displayable content. Key identifies the slide and must
// be unique within a sequence; it is never used for ordering.
type Slide struct {
	Key     string
	Content Renderer
}

// Renderer draws slide content into a box of the given size.
type Renderer interface {
	Render(width, height int) string
}

func validateSlides(slides []Slide) error {
	seen := make(map[string]struct{}, len(slides))
	for i, s := range slides {
		if _, dup := seen[s.Key]; dup {
			return fmt.Errorf("%w: duplicate slide key %q at position %d", ErrInvalidConfig, s.Key, i)
		}
		seen[s.Key] = struct{}{}
	}
	return nil
}

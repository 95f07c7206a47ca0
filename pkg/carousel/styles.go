package carousel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// Styles controls how the carousel chrome is drawn.
type Styles struct {
	Title         lipgloss.Style
	Arrow         lipgloss.Style
	ArrowDisabled lipgloss.Style
	Dot           lipgloss.Style
	ActiveDot     lipgloss.Style
	Slide         lipgloss.Style
	Paused        lipgloss.Style
}

// Glyphs used by the chrome.
const (
	ArrowLeft  = "‹"
	ArrowRight = "›"
	DotIdle    = "○"
	DotActive  = "●"
)

// DefaultStyles returns a neutral style set.
func DefaultStyles() Styles {
	return Styles{
		Title:         lipgloss.NewStyle().Bold(true),
		Arrow:         lipgloss.NewStyle().Bold(true),
		ArrowDisabled: lipgloss.NewStyle().Faint(true),
		Dot:           lipgloss.NewStyle().Faint(true),
		ActiveDot:     lipgloss.NewStyle().Bold(true),
		Slide:         lipgloss.NewStyle(),
		Paused:        lipgloss.NewStyle().Italic(true).Faint(true),
	}
}

// Text is a plain-text slide body. It is word-wrapped to the slide width and
// cut to the slide height.
type Text string

// Render implements Renderer.
func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	wrapped := wordwrap.String(string(t), width)
	lines := strings.Split(wrapped, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = truncate.String(line, uint(width))
	}
	return strings.Join(lines, "\n")
}

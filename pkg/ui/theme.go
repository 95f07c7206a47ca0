package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme carries the adaptive palette and the renderer every view draws with.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor

	Available   lipgloss.AdaptiveColor
	Maintenance lipgloss.AdaptiveColor
	ComingSoon  lipgloss.AdaptiveColor
	Danger      lipgloss.AdaptiveColor

	Base lipgloss.Style
}

// DefaultTheme builds the storefront theme for r. A nil renderer uses the
// default lipgloss renderer.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	t := Theme{
		Renderer:    r,
		Primary:     lipgloss.AdaptiveColor{Light: "#5A3FC0", Dark: "#BD93F9"},
		Secondary:   lipgloss.AdaptiveColor{Light: "#44548A", Dark: "#6272A4"},
		Subtext:     lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BFBFBF"},
		Border:      lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#44475A"},
		Highlight:   lipgloss.AdaptiveColor{Light: "#E6E0FA", Dark: "#363949"},
		Available:   lipgloss.AdaptiveColor{Light: "#1E8C3A", Dark: "#50FA7B"},
		Maintenance: lipgloss.AdaptiveColor{Light: "#B36200", Dark: "#FFB86C"},
		ComingSoon:  lipgloss.AdaptiveColor{Light: "#0B7A8C", Dark: "#8BE9FD"},
		Danger:      lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FF5555"},
	}
	t.Base = r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1E1F29", Dark: "#F8F8F2"})
	return t
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kraitsura/storefront/pkg/carousel"
	"github.com/kraitsura/storefront/pkg/model"
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Dracula-inspired, one accent per product category
// ══════════════════════════════════════════════════════════════════════════════

var (
	ColorBgSubtle    = lipgloss.Color("#363949")
	ColorBgHighlight = lipgloss.Color("#44475A")
	ColorMuted       = lipgloss.Color("#6272A4")

	// Category colors
	ColorCategoryEDR     = lipgloss.Color("#BD93F9")
	ColorCategoryXDR     = lipgloss.Color("#FF79C6")
	ColorCategorySOC     = lipgloss.Color("#8BE9FD")
	ColorCategoryCloud   = lipgloss.Color("#F1FA8C")
	ColorCategoryNetwork = lipgloss.Color("#FFB86C")

	// Status colors and their badge backgrounds
	ColorStatusAvailable     = lipgloss.Color("#50FA7B")
	ColorStatusMaintenance   = lipgloss.Color("#FFB86C")
	ColorStatusComingSoon    = lipgloss.Color("#8BE9FD")
	ColorStatusAvailableBg   = lipgloss.Color("#1A3D2A")
	ColorStatusMaintenanceBg = lipgloss.Color("#3D2A1A")
	ColorStatusComingSoonBg  = lipgloss.Color("#1A3344")
)

// ══════════════════════════════════════════════════════════════════════════════
// PANEL STYLES
// ══════════════════════════════════════════════════════════════════════════════

// PanelStyle frames overlays drawn over the storefront
var PanelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBgHighlight)

// ══════════════════════════════════════════════════════════════════════════════
// BADGE RENDERING
// ══════════════════════════════════════════════════════════════════════════════

// CategoryColor returns the accent color for a product category
func CategoryColor(c model.Category) lipgloss.Color {
	switch c {
	case model.CategoryEDR:
		return ColorCategoryEDR
	case model.CategoryXDR:
		return ColorCategoryXDR
	case model.CategorySOC:
		return ColorCategorySOC
	case model.CategoryCloud:
		return ColorCategoryCloud
	case model.CategoryNetwork:
		return ColorCategoryNetwork
	default:
		return ColorMuted
	}
}

// RenderCategoryBadge returns a styled category badge
func RenderCategoryBadge(c model.Category) string {
	label := strings.ToUpper(string(c))
	if label == "" {
		label = "?"
	}
	return lipgloss.NewStyle().
		Foreground(CategoryColor(c)).
		Bold(true).
		Render(label)
}

// RenderStatusBadge returns a styled availability badge
func RenderStatusBadge(s model.Status) string {
	var fg, bg lipgloss.Color
	var label string

	switch s {
	case model.StatusAvailable:
		fg, bg, label = ColorStatusAvailable, ColorStatusAvailableBg, "AVAILABLE"
	case model.StatusMaintenance:
		fg, bg, label = ColorStatusMaintenance, ColorStatusMaintenanceBg, "MAINTENANCE"
	case model.StatusComingSoon:
		fg, bg, label = ColorStatusComingSoon, ColorStatusComingSoonBg, "SOON"
	default:
		fg, bg, label = ColorMuted, ColorBgSubtle, "????"
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Render(label)
}

// CarouselStyles maps the theme onto the carousel chrome
func CarouselStyles(t Theme) carousel.Styles {
	r := t.Renderer
	return carousel.Styles{
		Title:         r.NewStyle().Bold(true).Foreground(t.Primary),
		Arrow:         r.NewStyle().Bold(true).Foreground(t.Primary),
		ArrowDisabled: r.NewStyle().Foreground(t.Border),
		Dot:           r.NewStyle().Foreground(t.Secondary),
		ActiveDot:     r.NewStyle().Foreground(t.Primary),
		Slide:         r.NewStyle(),
		Paused:        r.NewStyle().Italic(true).Foreground(t.Subtext),
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// DIVIDERS AND SEPARATORS
// ══════════════════════════════════════════════════════════════════════════════

// RenderDivider renders a horizontal divider line
func RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(ColorBgHighlight).
		Render(strings.Repeat("─", width))
}

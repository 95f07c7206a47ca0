package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/kraitsura/storefront/pkg/carousel"
	"github.com/kraitsura/storefront/pkg/model"
)

// ProductCard draws one product as a carousel slide.
type ProductCard struct {
	Product model.Product
	Theme   Theme
}

// Render implements carousel.Renderer. The card always fits within
// width×height cells.
func (c ProductCard) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	t := c.Theme
	p := c.Product

	// Border takes one cell on each side.
	border := width >= 6 && height >= 3
	inner, rows := width, height
	if border {
		inner, rows = width-2, height-2
	}

	nameStyle := t.Renderer.NewStyle().Bold(true).Foreground(CategoryColor(p.Category))
	priceStyle := t.Renderer.NewStyle().Foreground(t.Primary)
	descStyle := t.Renderer.NewStyle().Foreground(t.Subtext)

	var lines []string
	lines = append(lines, nameStyle.Render(fit(p.Name, inner)))
	lines = append(lines, badgeLine(p, inner))
	lines = append(lines, priceStyle.Render(fit(p.FormatPrice(), inner)))
	if p.ShortDescription != "" {
		lines = append(lines, "")
		for _, l := range strings.Split(wordwrap.String(p.ShortDescription, inner), "\n") {
			lines = append(lines, descStyle.Render(fit(l, inner)))
		}
	}
	if len(p.Features) > 0 {
		lines = append(lines, "")
		for _, f := range p.Features {
			lines = append(lines, fit("• "+f, inner))
		}
	}
	if len(lines) > rows {
		lines = lines[:rows]
	}
	body := strings.Join(lines, "\n")

	style := t.Renderer.NewStyle().Width(inner).Height(rows).MaxWidth(width).MaxHeight(height)
	if border {
		style = style.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border)
		if !p.Status.IsPurchasable() {
			style = style.BorderForeground(t.Secondary).Faint(true)
		}
	}
	return style.Render(body)
}

func badgeLine(p model.Product, width int) string {
	cat := strings.ToUpper(string(p.Category))
	status := statusLabel(p.Status)
	if runewidth.StringWidth(cat)+1+runewidth.StringWidth(status) > width {
		return RenderCategoryBadge(model.Category(fit(cat, width)))
	}
	return RenderCategoryBadge(p.Category) + " " + RenderStatusBadge(p.Status)
}

func statusLabel(s model.Status) string {
	switch s {
	case model.StatusAvailable:
		return "AVAILABLE"
	case model.StatusMaintenance:
		return "MAINTENANCE"
	case model.StatusComingSoon:
		return "SOON"
	}
	return "????"
}

// fit truncates s to w display cells with a trailing ellipsis.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= w {
		return s
	}
	return runewidth.Truncate(s, w, "…")
}

// ProductSlides turns a catalog into carousel slides keyed by product id.
func ProductSlides(products []model.Product, t Theme) []carousel.Slide {
	slides := make([]carousel.Slide, len(products))
	for i, p := range products {
		slides[i] = carousel.Slide{Key: p.ID, Content: ProductCard{Product: p, Theme: t}}
	}
	return slides
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"

	"github.com/kraitsura/storefront/pkg/model"
)

// detailPane shows the full description of the leading product.
type detailPane struct {
	vp        viewport.Model
	renderer  *glamour.TermRenderer
	wrapWidth int
	productID string
	theme     Theme
}

func newDetailPane(theme Theme, keys KeyMap) detailPane {
	vp := viewport.New(40, 10)
	vp.KeyMap = viewport.KeyMap{Up: keys.ScrollUp, Down: keys.ScrollDown}
	return detailPane{vp: vp, theme: theme}
}

func (d *detailPane) SetSize(width, height int) {
	width, height = max(0, width), max(0, height)
	d.vp.Width = width
	d.vp.Height = height
	wrap := width - 2
	if wrap != d.wrapWidth {
		d.wrapWidth = wrap
		d.renderer = nil
		// Force a re-render at the new wrap width.
		d.productID = ""
	}
}

// Show renders p unless it is already on screen.
func (d *detailPane) Show(p model.Product) {
	if p.ID == d.productID {
		return
	}
	d.productID = p.ID
	d.vp.SetContent(d.render(productMarkdown(p)))
	d.vp.GotoTop()
}

// Clear empties the pane.
func (d *detailPane) Clear() {
	d.productID = ""
	d.vp.SetContent("")
}

func (d *detailPane) render(md string) string {
	if d.wrapWidth <= 0 {
		return ""
	}
	if d.renderer == nil {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(d.wrapWidth),
		)
		if err == nil {
			d.renderer = r
		}
	}
	if d.renderer != nil {
		if out, err := d.renderer.Render(md); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}
	return wordwrap.String(md, d.wrapWidth)
}

func (d *detailPane) View() string {
	return d.vp.View()
}

func productMarkdown(p model.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	fmt.Fprintf(&b, "**%s** · %s · %s\n\n", p.Category, statusText(p.Status), p.FormatPrice())
	desc := p.FullDescription
	if desc == "" {
		desc = p.ShortDescription
	}
	if desc != "" {
		b.WriteString(desc + "\n\n")
	}
	if len(p.Features) > 0 {
		b.WriteString("## Features\n\n")
		for _, f := range p.Features {
			b.WriteString("- " + f + "\n")
		}
	}
	return b.String()
}

func statusText(s model.Status) string {
	switch s {
	case model.StatusAvailable:
		return "available"
	case model.StatusMaintenance:
		return "under maintenance"
	case model.StatusComingSoon:
		return "coming soon"
	}
	return string(s)
}

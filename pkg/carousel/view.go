package carousel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

func (m *Model) gutter() int {
	if m.cfg.ShowArrows {
		return arrowGutter
	}
	return 0
}

func (m *Model) trackWidth() int {
	return max(0, m.width-2*m.gutter())
}

func (m *Model) titleRows() int {
	if m.cfg.Label == "" {
		return 0
	}
	return 1
}

func (m *Model) dotRows() int {
	if m.cfg.ShowDots {
		return 1
	}
	return 0
}

func (m *Model) trackHeight() int {
	return max(1, m.height-m.titleRows()-m.dotRows())
}

func (m *Model) dotsStart() int {
	n := m.vp.MaxIndex() + 1
	return max(0, (m.width-(2*n-1))/2)
}

// zoneAt maps a widget-relative cell to the control under it.
func (m *Model) zoneAt(x, y int) (zone, int) {
	if x < 0 || x >= m.width || y < 0 {
		return zoneNone, 0
	}
	top := m.titleRows()
	h := m.trackHeight()

	if y >= top && y < top+h {
		g := m.gutter()
		switch {
		case x < g:
			return zonePrev, 0
		case x >= m.width-g:
			return zoneNext, 0
		default:
			return zoneTrack, 0
		}
	}

	if m.cfg.ShowDots && y == top+h {
		rel := x - m.dotsStart()
		if rel >= 0 && rel%2 == 0 && rel/2 <= m.vp.MaxIndex() {
			return zoneDot, rel / 2
		}
	}
	return zoneNone, 0
}

// View renders the title, the visible slides between the arrows, and the dots.
func (m *Model) View() string {
	if m.width <= 0 {
		return ""
	}

	var rows []string
	if m.titleRows() > 0 {
		rows = append(rows, m.renderTitle())
	}

	track := m.renderTrack()
	if m.cfg.ShowArrows {
		track = lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderArrow(ArrowLeft+" ", m.vp.CanPrevious()),
			track,
			m.renderArrow(" "+ArrowRight, m.vp.CanNext()),
		)
	}
	rows = append(rows, track)

	if m.cfg.ShowDots {
		rows = append(rows, m.renderDots())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderTitle() string {
	status := fmt.Sprintf("%d/%d", m.vp.Index()+1, m.vp.MaxIndex()+1)
	title := m.styles.Title.Render(m.cfg.Label) + "  " + status
	switch m.autoplay.State() {
	case AutoplaySuspended:
		title += "  " + m.styles.Paused.Render("paused")
	}
	return truncate.String(title, uint(m.width))
}

func (m *Model) renderTrack() string {
	w, h := m.trackWidth(), m.trackHeight()
	blank := lipgloss.NewStyle().Width(w).Height(h)
	if w == 0 {
		return blank.Render("")
	}

	sw := m.vp.SlideWidth()
	var cells []string
	for i, s := range m.VisibleSlides() {
		if i > 0 && m.vp.Gap() > 0 {
			cells = append(cells, strings.Repeat(" ", m.vp.Gap()))
		}
		body := ""
		if s.Content != nil && sw > 0 {
			body = s.Content.Render(sw, h)
		}
		cells = append(cells, m.styles.Slide.
			Width(sw).Height(h).
			MaxWidth(sw).MaxHeight(h).
			Render(body))
	}
	if len(cells) == 0 {
		return blank.Render("")
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return blank.MaxWidth(w).Render(row)
}

func (m *Model) renderArrow(glyph string, enabled bool) string {
	h := m.trackHeight()
	style := m.styles.ArrowDisabled
	if enabled {
		style = m.styles.Arrow
	}
	lines := make([]string, h)
	for i := range lines {
		lines[i] = strings.Repeat(" ", arrowGutter)
	}
	lines[h/2] = style.Render(glyph)
	return strings.Join(lines, "\n")
}

func (m *Model) renderDots() string {
	n := m.vp.MaxIndex() + 1
	parts := make([]string, n)
	for i := range parts {
		if i == m.vp.Index() {
			parts[i] = m.styles.ActiveDot.Render(DotActive)
		} else {
			parts[i] = m.styles.Dot.Render(DotIdle)
		}
	}
	line := strings.Repeat(" ", m.dotsStart()) + strings.Join(parts, " ")
	return truncate.String(line, uint(m.width))
}

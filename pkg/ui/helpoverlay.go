package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const mouseHelp = "drag the track to swipe\nclick ‹ › or a dot to jump"

// HelpOverlay lists every key binding group side by side, or stacked when
// the terminal is too narrow. The next key press dismisses it.
type HelpOverlay struct {
	open     bool
	width    int
	height   int
	theme    Theme
	renderer help.Model
	groups   []helpGroup
}

type helpGroup struct {
	title string
	keys  help.KeyMap
}

func NewHelpOverlay(theme Theme) HelpOverlay {
	r := help.New()
	r.ShowAll = true
	r.FullSeparator = "  "
	r.Styles.FullKey = theme.Renderer.NewStyle().Bold(true).Foreground(theme.Primary)
	r.Styles.FullDesc = theme.Renderer.NewStyle().Foreground(theme.Subtext)
	return HelpOverlay{theme: theme, renderer: r}
}

// AddSection registers a titled binding group.
func (h *HelpOverlay) AddSection(title string, keys help.KeyMap) {
	h.groups = append(h.groups, helpGroup{title: title, keys: keys})
}

func (h *HelpOverlay) Show()           { h.open = true }
func (h HelpOverlay) IsVisible() bool { return h.open }

func (h *HelpOverlay) SetSize(width, height int) {
	h.width = width
	h.height = height
}

func (h HelpOverlay) Update(msg tea.Msg) (HelpOverlay, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok && h.open {
		h.open = false
	}
	return h, nil
}

func (h HelpOverlay) View() string {
	if !h.open {
		return ""
	}
	t := h.theme
	heading := t.Renderer.NewStyle().Bold(true).Foreground(t.Secondary)

	columns := make([]string, 0, len(h.groups)+1)
	for _, g := range h.groups {
		var bindings []string
		for _, col := range g.keys.FullHelp() {
			if len(col) > 0 {
				bindings = append(bindings, h.renderer.FullHelpView([][]key.Binding{col}))
			}
		}
		columns = append(columns, heading.Render(strings.ToUpper(g.title))+"\n"+strings.Join(bindings, "\n"))
	}
	columns = append(columns, heading.Render("MOUSE")+"\n"+
		t.Renderer.NewStyle().Foreground(t.Subtext).Render(mouseHelp))

	var body string
	if h.width >= BreakpointNarrow {
		spaced := make([]string, len(columns))
		for i, c := range columns {
			spaced[i] = t.Renderer.NewStyle().PaddingRight(4).Render(c)
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
	} else {
		body = strings.Join(columns, "\n\n")
	}

	title := t.Renderer.NewStyle().Bold(true).Foreground(t.Primary).Render("Storefront Help")
	hint := t.Renderer.NewStyle().Faint(true).Render("press any key to close")

	return PanelStyle.
		BorderForeground(t.Border).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", hint))
}

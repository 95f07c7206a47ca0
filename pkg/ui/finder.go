package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/kraitsura/storefront/pkg/model"
)

// FinderResult is the outcome of a key delivered to the Finder.
type FinderResult int

const (
	FinderSearching FinderResult = iota
	FinderChosen
	FinderCancelled
)

var finderKeys = struct {
	Up, Down, Choose, Cancel key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up", "ctrl+k", "ctrl+p")),
	Down:   key.NewBinding(key.WithKeys("down", "ctrl+j", "ctrl+n")),
	Choose: key.NewBinding(key.WithKeys("enter")),
	Cancel: key.NewBinding(key.WithKeys("esc")),
}

// catalogSource matches against "name id category". The name comes first so
// match offsets below len(name) can be highlighted in place.
type catalogSource []model.Product

func (s catalogSource) String(i int) string {
	p := s[i]
	return p.Name + " " + p.ID + " " + string(p.Category)
}

func (s catalogSource) Len() int { return len(s) }

type finderHit struct {
	index   int
	offsets map[int]bool
}

// Finder is a fuzzy search over the catalog. Choosing a hit yields the
// product's catalog index, which is also its carousel slide index.
type Finder struct {
	input    textinput.Model
	products catalogSource
	hits     []finderHit
	cursor   int

	width  int
	height int
	theme  Theme
}

// NewFinder returns a finder over products.
func NewFinder(products []model.Product, theme Theme) Finder {
	in := textinput.New()
	in.Placeholder = "name, id or category"
	in.Prompt = "/ "
	in.CharLimit = 64

	f := Finder{input: in, theme: theme, width: 60, height: 20}
	f.SetProducts(products)
	return f
}

// SetProducts swaps the searched catalog and reapplies the current query.
func (f *Finder) SetProducts(products []model.Product) {
	f.products = catalogSource(products)
	f.refilter()
}

// Open clears the query and focuses the input.
func (f *Finder) Open() tea.Cmd {
	f.input.SetValue("")
	f.refilter()
	return f.input.Focus()
}

func (f *Finder) SetSize(width, height int) {
	f.width = width
	f.height = height
	f.input.Width = clamp(width-24, 16, 48)
}

// Update handles one key. On FinderChosen the returned index is the chosen
// product's position in the catalog.
func (f *Finder) Update(msg tea.KeyMsg) (FinderResult, int, tea.Cmd) {
	switch {
	case key.Matches(msg, finderKeys.Cancel):
		f.input.Blur()
		return FinderCancelled, -1, nil
	case key.Matches(msg, finderKeys.Choose):
		if len(f.hits) == 0 {
			return FinderSearching, -1, nil
		}
		f.input.Blur()
		return FinderChosen, f.hits[f.cursor].index, nil
	case key.Matches(msg, finderKeys.Up):
		if f.cursor > 0 {
			f.cursor--
		}
		return FinderSearching, -1, nil
	case key.Matches(msg, finderKeys.Down):
		if f.cursor < len(f.hits)-1 {
			f.cursor++
		}
		return FinderSearching, -1, nil
	}

	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.input.Value() != before {
		f.refilter()
	}
	return FinderSearching, -1, cmd
}

// Query returns the text typed so far.
func (f *Finder) Query() string { return f.input.Value() }

// Len returns the number of products matching the query.
func (f *Finder) Len() int { return len(f.hits) }

func (f *Finder) refilter() {
	f.cursor = 0
	q := strings.TrimSpace(f.input.Value())
	if q == "" {
		f.hits = make([]finderHit, len(f.products))
		for i := range f.products {
			f.hits[i] = finderHit{index: i}
		}
		return
	}
	matches := fuzzy.FindFrom(q, f.products)
	f.hits = make([]finderHit, len(matches))
	for i, m := range matches {
		offsets := make(map[int]bool, len(m.MatchedIndexes))
		for _, o := range m.MatchedIndexes {
			offsets[o] = true
		}
		f.hits[i] = finderHit{index: m.Index, offsets: offsets}
	}
}

func (f *Finder) View() string {
	t := f.theme
	box := clamp(f.width-10, 36, 60)
	inner := box - 4
	rows := clamp(f.height-12, 4, 12)

	title := t.Renderer.NewStyle().Bold(true).Foreground(t.Primary).Render("Find product")
	count := t.Renderer.NewStyle().Foreground(t.Subtext).
		Render(fmt.Sprintf("%d/%d", len(f.hits), len(f.products)))
	gap := inner - lipgloss.Width(title) - lipgloss.Width(count)
	header := title + strings.Repeat(" ", max(gap, 1)) + count

	body := []string{header, "", f.input.View(), RenderDivider(inner)}
	if len(f.hits) == 0 {
		body = append(body, t.Renderer.NewStyle().Foreground(t.Subtext).Italic(true).Render("nothing matches"))
	}
	first := max(f.cursor-rows+1, 0)
	last := min(first+rows, len(f.hits))
	for i := first; i < last; i++ {
		body = append(body, f.renderHit(f.hits[i], i == f.cursor, inner))
	}
	if hidden := len(f.hits) - last; hidden > 0 {
		body = append(body, t.Renderer.NewStyle().Foreground(t.Subtext).Render(fmt.Sprintf("+%d more", hidden)))
	}
	body = append(body, "", t.Renderer.NewStyle().Faint(true).Render("enter show · esc close"))

	panel := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		Width(box).
		Render(strings.Join(body, "\n"))
	return lipgloss.Place(f.width, f.height, lipgloss.Center, lipgloss.Center, panel)
}

func (f *Finder) renderHit(h finderHit, selected bool, width int) string {
	t := f.theme
	p := f.products[h.index]

	plain := t.Renderer.NewStyle().Foreground(t.Base.GetForeground())
	marked := t.Renderer.NewStyle().Foreground(t.Highlight).Underline(true)
	marker := "  "
	if selected {
		plain = plain.Foreground(t.Primary).Bold(true)
		marked = marked.Bold(true)
		marker = "› "
	}

	price := t.Renderer.NewStyle().Foreground(t.Subtext).Render(p.FormatPrice())
	badge := RenderCategoryBadge(p.Category)
	room := width - lipgloss.Width(marker) - lipgloss.Width(price) - lipgloss.Width(badge) - 2
	name := fit(p.Name, room)

	var b strings.Builder
	b.WriteString(marker)
	for off, r := range name {
		if h.offsets[off] {
			b.WriteString(marked.Render(string(r)))
		} else {
			b.WriteString(plain.Render(string(r)))
		}
	}
	line := b.String() + " " + badge
	pad := width - lipgloss.Width(line) - lipgloss.Width(price)
	return line + strings.Repeat(" ", max(pad, 1)) + price
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

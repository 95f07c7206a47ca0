package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kraitsura/storefront/pkg/carousel"
	"github.com/kraitsura/storefront/pkg/model"
	"github.com/kraitsura/storefront/pkg/session"
)

// keyMsg creates a tea.KeyMsg for testing
func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

type fakeCart struct {
	items []model.CartItem
	err   error
}

func (c *fakeCart) Add(item model.CartItem) error {
	if c.err != nil {
		return c.err
	}
	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			c.items[i].Quantity += item.Quantity
			return nil
		}
	}
	c.items = append(c.items, item)
	return nil
}

func (c *fakeCart) Items() ([]model.CartItem, error) {
	return append([]model.CartItem(nil), c.items...), nil
}

func testProducts() []model.Product {
	return []model.Product{
		{ID: "edr", Name: "Endpoint Guard", Price: 49, Period: model.PeriodMonthly, Category: model.CategoryEDR, Status: model.StatusAvailable,
			ShortDescription: "Protects laptops and servers.", FullDescription: "Behavioural detection on every endpoint.",
			Features: []string{"Ransomware rollback", "Device isolation"}},
		{ID: "xdr", Name: "XDR Fusion", Price: 89, Period: model.PeriodMonthly, Category: model.CategoryXDR, Status: model.StatusComingSoon},
		{ID: "soc", Name: "SOC 24/7", Price: 990, Period: model.PeriodYearly, Category: model.CategorySOC, Status: model.StatusAvailable},
	}
}

func testCarouselConfig() carousel.Config {
	cfg := carousel.DefaultConfig()
	cfg.SlidesPerView = carousel.Fixed(1)
	cfg.Loop = false
	cfg.Autoplay = false
	return cfg
}

func newTestStorefront(t *testing.T, opts ...StorefrontOption) *StorefrontModel {
	t.Helper()
	m, err := NewStorefrontModel(testProducts(), testCarouselConfig(), opts...)
	if err != nil {
		t.Fatalf("NewStorefrontModel: %v", err)
	}
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

// run executes cmd and feeds its message back, as the runtime would.
func run(m *StorefrontModel, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if msg := cmd(); msg != nil {
		m.Update(msg)
	}
}

func TestStorefrontResizeDerivesCarouselBounds(t *testing.T) {
	m := newTestStorefront(t)
	c := m.Carousel()
	if c.PerView() != 1 {
		t.Errorf("PerView = %d, want 1", c.PerView())
	}
	if c.MaxIndex() != 2 {
		t.Errorf("MaxIndex = %d, want 2", c.MaxIndex())
	}

	view := m.View()
	if !strings.Contains(view, "Storefront") {
		t.Error("header missing from view")
	}
	if h := lipgloss.Height(view); h != 30 {
		t.Errorf("view height = %d, want 30", h)
	}
}

func TestStorefrontArrowKeysMoveCarousel(t *testing.T) {
	m := newTestStorefront(t)
	m.Update(keyMsg("right"))
	if got := m.Carousel().Index(); got != 1 {
		t.Fatalf("index after right = %d, want 1", got)
	}
	p, _ := m.CurrentProduct()
	if p.ID != "xdr" {
		t.Errorf("current product = %s, want xdr", p.ID)
	}
	m.Update(keyMsg("left"))
	if got := m.Carousel().Index(); got != 0 {
		t.Errorf("index after left = %d, want 0", got)
	}
}

func TestStorefrontAddToCart(t *testing.T) {
	cart := &fakeCart{}
	m := newTestStorefront(t, WithCart(cart))

	_, cmd := m.Update(keyMsg("a"))
	run(m, cmd)
	_, cmd = m.Update(keyMsg("a"))
	run(m, cmd)

	if len(cart.items) != 1 || cart.items[0].Quantity != 2 {
		t.Fatalf("cart = %+v, want one line with quantity 2", cart.items)
	}
	if m.cartCount != 2 {
		t.Errorf("cartCount = %d, want 2", m.cartCount)
	}
	if !strings.Contains(m.Status(), "Endpoint Guard") {
		t.Errorf("status = %q", m.Status())
	}
	if !strings.Contains(m.renderHeader(), "cart 2") {
		t.Errorf("header does not show the cart count: %q", m.renderHeader())
	}
}

func TestStorefrontAddToCartRejectsUnavailable(t *testing.T) {
	cart := &fakeCart{}
	m := newTestStorefront(t, WithCart(cart))
	m.Update(keyMsg("right"))

	_, cmd := m.Update(keyMsg("a"))
	if cmd != nil {
		t.Fatal("expected no cart command for a coming-soon product")
	}
	if !strings.Contains(m.Status(), "not available") {
		t.Errorf("status = %q", m.Status())
	}
}

func TestStorefrontAddToCartError(t *testing.T) {
	m := newTestStorefront(t, WithCart(&fakeCart{err: errors.New("disk full")}))
	_, cmd := m.Update(keyMsg("a"))
	run(m, cmd)
	if !strings.Contains(m.Status(), "disk full") {
		t.Errorf("status = %q", m.Status())
	}
}

func TestStorefrontCopyID(t *testing.T) {
	var copied string
	m := newTestStorefront(t, WithClipboard(func(s string) error {
		copied = s
		return nil
	}))
	m.Update(keyMsg("y"))
	if copied != "edr" {
		t.Errorf("copied %q, want edr", copied)
	}
}

func TestStorefrontFinderRevealsProduct(t *testing.T) {
	m := newTestStorefront(t)
	m.Update(keyMsg("/"))
	if !m.showFinder {
		t.Fatal("finder did not open")
	}
	for _, r := range "soc" {
		m.Update(keyMsg(string(r)))
	}
	if m.finder.Len() != 1 {
		t.Fatalf("finder matches = %d, want 1", m.finder.Len())
	}
	m.Update(keyMsg("enter"))

	if m.showFinder {
		t.Error("finder still open after selection")
	}
	if got := m.Carousel().Index(); got != 2 {
		t.Errorf("index = %d, want 2", got)
	}
}

func TestStorefrontFinderSwallowsShortcuts(t *testing.T) {
	m := newTestStorefront(t)
	m.Update(keyMsg("/"))
	_, cmd := m.Update(keyMsg("q"))
	if cmd != nil {
		t.Error("q inside the finder must not quit")
	}
	if m.finder.Query() != "q" {
		t.Errorf("search = %q, want q", m.finder.Query())
	}
	m.Update(keyMsg("esc"))
	if m.showFinder {
		t.Error("esc did not close the finder")
	}
}

func TestStorefrontMouseIgnoredUnderOverlay(t *testing.T) {
	m := newTestStorefront(t)
	m.Update(keyMsg("?"))
	m.Update(tea.MouseMsg{X: 50, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Carousel().Dragging() {
		t.Error("press under the help overlay started a drag")
	}
}

func TestStorefrontOverlayEndsDrag(t *testing.T) {
	for _, open := range []string{"/", "?"} {
		t.Run(open, func(t *testing.T) {
			m := newTestStorefront(t)
			m.Update(tea.MouseMsg{X: 50, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
			if !m.Carousel().Dragging() {
				t.Fatal("press on the track did not start a drag")
			}

			m.Update(keyMsg(open))
			if m.Carousel().Dragging() {
				t.Error("drag still active after the overlay opened")
			}

			m.Update(tea.MouseMsg{X: 50, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
			m.Update(keyMsg("esc"))
			if m.Carousel().Dragging() {
				t.Error("drag active after the overlay closed")
			}
			if got := m.Carousel().Index(); got != 0 {
				t.Errorf("index = %d, want 0 for a drag that never moved", got)
			}
		})
	}
}

func TestStorefrontOverlayCompletesSwipe(t *testing.T) {
	m := newTestStorefront(t)
	m.Update(tea.MouseMsg{X: 50, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 20, Y: 10, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m.Update(keyMsg("/"))

	if m.Carousel().Dragging() {
		t.Error("drag still active after the finder opened")
	}
	if got := m.Carousel().Index(); got != 1 {
		t.Errorf("index = %d, want 1 after a left swipe past the threshold", got)
	}
}

func TestStorefrontHelpOverlay(t *testing.T) {
	m := newTestStorefront(t)
	m.Update(keyMsg("?"))
	if !strings.Contains(m.View(), "Storefront Help") {
		t.Fatal("help overlay not rendered")
	}
	m.Update(keyMsg("x"))
	if m.help.IsVisible() {
		t.Error("any key should close help")
	}
}

func TestStorefrontCatalogReload(t *testing.T) {
	m := newTestStorefront(t)
	m.Update(keyMsg("right"))
	m.Update(keyMsg("right"))

	m.Update(CatalogReloadedMsg{Products: testProducts()[:1]})
	c := m.Carousel()
	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
	if c.Index() != 0 || c.MaxIndex() != 0 {
		t.Errorf("index/max = %d/%d, want 0/0", c.Index(), c.MaxIndex())
	}

	m.Update(CatalogReloadedMsg{Err: errors.New("bad file")})
	if !strings.Contains(m.Status(), "bad file") {
		t.Errorf("status = %q", m.Status())
	}
	if c.Len() != 1 {
		t.Error("failed reload must keep the previous catalog")
	}
}

func TestStorefrontSessionLabel(t *testing.T) {
	m := newTestStorefront(t, WithSession(session.Static(true)))
	run(m, m.checkSession())
	if !strings.Contains(m.renderHeader(), "signed in") {
		t.Errorf("header = %q", m.renderHeader())
	}
}

func TestStorefrontQuitClosesCarousel(t *testing.T) {
	cfg := testCarouselConfig()
	cfg.Autoplay = true
	m, err := NewStorefrontModel(testProducts(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	m.Init()
	if m.Carousel().AutoplayState() != carousel.AutoplayRunning {
		t.Fatalf("autoplay = %v, want running", m.Carousel().AutoplayState())
	}

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if m.Carousel().AutoplayState() != carousel.AutoplayIdle {
		t.Errorf("autoplay = %v after quit, want idle", m.Carousel().AutoplayState())
	}
}

func TestStorefrontDetailFollowsLeadingProduct(t *testing.T) {
	m := newTestStorefront(t)
	if !strings.Contains(m.detail.View(), "Endpoint") {
		t.Error("detail pane does not show the first product")
	}
	m.Update(keyMsg("right"))
	if !strings.Contains(m.detail.View(), "Fusion") {
		t.Error("detail pane did not follow navigation")
	}
}

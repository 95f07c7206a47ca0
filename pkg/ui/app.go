// Package ui implements the storefront terminal interface.
package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"go.uber.org/zap"

	"github.com/kraitsura/storefront/pkg/carousel"
	"github.com/kraitsura/storefront/pkg/model"
	"github.com/kraitsura/storefront/pkg/session"
)

// CartStore is the part of the cart the UI needs.
type CartStore interface {
	Add(item model.CartItem) error
	Items() ([]model.CartItem, error)
}

// CatalogReloadedMsg carries a fresh catalog after the file changed on disk.
type CatalogReloadedMsg struct {
	Products []model.Product
	Err      error
}

type cartUpdatedMsg struct {
	items []model.CartItem
	added string
	err   error
}

type sessionMsg struct {
	authenticated bool
}

// StorefrontOption configures a StorefrontModel.
type StorefrontOption func(*StorefrontModel)

// WithLogger sets the logger shared with the carousel.
func WithLogger(l *zap.Logger) StorefrontOption {
	return func(m *StorefrontModel) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithCart sets the persistent cart.
func WithCart(c CartStore) StorefrontOption {
	return func(m *StorefrontModel) { m.cart = c }
}

// WithSession sets the session checker consulted on mount.
func WithSession(s session.Checker) StorefrontOption {
	return func(m *StorefrontModel) { m.session = s }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(f func(string) error) StorefrontOption {
	return func(m *StorefrontModel) { m.copy = f }
}

// WithTheme overrides the default theme.
func WithTheme(t Theme) StorefrontOption {
	return func(m *StorefrontModel) { m.theme = t }
}

// WithCarouselOptions passes extra options to the product carousel.
func WithCarouselOptions(opts ...carousel.Option) StorefrontOption {
	return func(m *StorefrontModel) { m.carouselOpts = append(m.carouselOpts, opts...) }
}

// StorefrontModel is the root model: header, product carousel, detail pane,
// finder and help overlays.
type StorefrontModel struct {
	theme        Theme
	keys         KeyMap
	logger       *zap.Logger
	carouselOpts []carousel.Option

	carousel *carousel.Model
	products []model.Product
	detail   detailPane
	finder   Finder
	help     HelpOverlay

	showFinder bool

	cart    CartStore
	session session.Checker
	copy    func(string) error

	signedIn  bool
	cartCount int
	cartTotal float64
	status    string

	width, height int
	layout        bodyLayout
}

// NewStorefrontModel builds the storefront over products using cfg for the
// carousel.
func NewStorefrontModel(products []model.Product, cfg carousel.Config, opts ...StorefrontOption) (*StorefrontModel, error) {
	m := &StorefrontModel{
		theme:   DefaultTheme(nil),
		keys:    DefaultKeyMap(),
		logger:  zap.NewNop(),
		session: session.Static(false),
		copy:    clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(m)
	}

	copts := append([]carousel.Option{
		carousel.WithLogger(m.logger),
		carousel.WithStyles(CarouselStyles(m.theme)),
	}, m.carouselOpts...)
	c, err := carousel.New(cfg, ProductSlides(products, m.theme), copts...)
	if err != nil {
		return nil, err
	}
	c.Focus()

	m.carousel = c
	m.products = cloneProducts(products)
	m.detail = newDetailPane(m.theme, m.keys)
	m.finder = NewFinder(products, m.theme)
	m.help = NewHelpOverlay(m.theme)
	m.help.AddSection("Carousel", c.KeyMap())
	m.help.AddSection("Storefront", m.keys)
	return m, nil
}

// Init starts autoplay and loads the session and cart state.
func (m *StorefrontModel) Init() tea.Cmd {
	return tea.Batch(m.carousel.Init(), m.checkSession(), m.loadCart())
}

// Update implements tea.Model.
func (m *StorefrontModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case CatalogReloadedMsg:
		m.reload(msg)

	case cartUpdatedMsg:
		if msg.err != nil {
			m.status = "cart: " + msg.err.Error()
			m.logger.Warn("cart update failed", zap.Error(msg.err))
			break
		}
		m.cartCount = model.CartCount(msg.items)
		m.cartTotal = model.CartTotal(msg.items)
		if msg.added != "" {
			m.status = "added " + msg.added + " to cart"
		}

	case sessionMsg:
		m.signedIn = msg.authenticated

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		if m.overlayOpen() {
			return m, nil
		}
		_, cmd = m.carousel.Update(msg)

	default:
		// Autoplay ticks and terminal focus changes.
		_, cmd = m.carousel.Update(msg)
	}
	m.syncDetail()
	return m, cmd
}

func (m *StorefrontModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.help.IsVisible() {
		m.help, _ = m.help.Update(msg)
		return nil
	}
	if m.showFinder {
		return m.handleFinderKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.carousel.Close()
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		cmd := m.carousel.CancelGesture()
		m.help.Show()
		m.syncDetail()
		return cmd
	case key.Matches(msg, m.keys.Find):
		cmd := m.carousel.CancelGesture()
		m.showFinder = true
		m.syncDetail()
		return tea.Batch(cmd, m.finder.Open())
	case key.Matches(msg, m.keys.AddToCart):
		return m.addCurrentToCart()
	case key.Matches(msg, m.keys.CopyID):
		m.copyCurrentID()
		return nil
	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.detail.vp, cmd = m.detail.vp.Update(msg)
		return cmd
	}

	_, cmd := m.carousel.Update(msg)
	m.syncDetail()
	return cmd
}

func (m *StorefrontModel) handleFinderKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		m.carousel.Close()
		return tea.Quit
	}
	result, index, cmd := m.finder.Update(msg)
	switch result {
	case FinderChosen:
		m.showFinder = false
		cmd = m.carousel.Reveal(index)
		m.syncDetail()
	case FinderCancelled:
		m.showFinder = false
	}
	return cmd
}

// CurrentProduct returns the product in the leading slot.
func (m *StorefrontModel) CurrentProduct() (model.Product, bool) {
	i := m.carousel.Index()
	if i < 0 || i >= len(m.products) {
		return model.Product{}, false
	}
	return m.products[i], true
}

func (m *StorefrontModel) addCurrentToCart() tea.Cmd {
	p, ok := m.CurrentProduct()
	if !ok {
		return nil
	}
	if !p.Status.IsPurchasable() {
		m.status = p.Name + " is not available for purchase"
		return nil
	}
	if m.cart == nil {
		m.status = "cart unavailable"
		return nil
	}
	cart := m.cart
	item := model.NewCartItem(p, 1)
	return func() tea.Msg {
		if err := cart.Add(item); err != nil {
			return cartUpdatedMsg{err: err}
		}
		items, err := cart.Items()
		return cartUpdatedMsg{items: items, added: item.Name, err: err}
	}
}

func (m *StorefrontModel) copyCurrentID() {
	p, ok := m.CurrentProduct()
	if !ok {
		return
	}
	if err := m.copy(p.ID); err != nil {
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = "copied " + p.ID
}

func (m *StorefrontModel) checkSession() tea.Cmd {
	s := m.session
	return func() tea.Msg {
		return sessionMsg{authenticated: s.Authenticated()}
	}
}

func (m *StorefrontModel) loadCart() tea.Cmd {
	if m.cart == nil {
		return nil
	}
	cart := m.cart
	return func() tea.Msg {
		items, err := cart.Items()
		return cartUpdatedMsg{items: items, err: err}
	}
}

func (m *StorefrontModel) reload(msg CatalogReloadedMsg) {
	if msg.Err != nil {
		m.status = "catalog reload failed: " + msg.Err.Error()
		m.logger.Warn("catalog reload failed", zap.Error(msg.Err))
		return
	}
	if err := m.carousel.SetSlides(ProductSlides(msg.Products, m.theme)); err != nil {
		m.status = "catalog rejected: " + err.Error()
		m.logger.Warn("catalog rejected", zap.Error(err))
		return
	}
	m.products = cloneProducts(msg.Products)
	m.finder.SetProducts(m.products)
	m.status = fmt.Sprintf("catalog reloaded (%d products)", len(m.products))
	m.logger.Info("catalog reloaded", zap.Int("products", len(m.products)))
}

func (m *StorefrontModel) resize(width, height int) {
	m.width, m.height = width, height
	m.layout = computeLayout(width, height)
	m.carousel.SetSize(m.layout.carouselWidth, m.layout.carouselHeight)
	m.carousel.SetOrigin(m.layout.carouselX, m.layout.carouselY)
	m.detail.SetSize(m.layout.detailWidth, m.layout.detailHeight)
	m.finder.SetSize(width, height)
	m.help.SetSize(width, height)
}

func (m *StorefrontModel) syncDetail() {
	if p, ok := m.CurrentProduct(); ok {
		m.detail.Show(p)
		return
	}
	m.detail.Clear()
}

func (m *StorefrontModel) overlayOpen() bool {
	return m.showFinder || m.help.IsVisible()
}

// Carousel exposes the product carousel.
func (m *StorefrontModel) Carousel() *carousel.Model { return m.carousel }

// Status returns the current status line text.
func (m *StorefrontModel) Status() string { return m.status }

// View implements tea.Model.
func (m *StorefrontModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.help.IsVisible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.help.View())
	}
	if m.showFinder {
		return m.finder.View()
	}

	var body string
	if m.layout.sideBySide {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.carousel.View(), m.detail.View())
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, m.carousel.View(), m.detail.View())
	}
	body = m.theme.Renderer.NewStyle().
		Width(m.width).Height(max(0, m.height-HeaderHeight-StatusHeight)).
		MaxWidth(m.width).MaxHeight(max(0, m.height-HeaderHeight-StatusHeight)).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderStatus())
}

func (m *StorefrontModel) renderHeader() string {
	t := m.theme
	title := t.Renderer.NewStyle().Bold(true).Foreground(t.Primary).Render("Storefront")

	who := "guest"
	if m.signedIn {
		who = "signed in"
	}
	right := fmt.Sprintf("%s · cart %d · %.2f €", who, m.cartCount, m.cartTotal)
	right = t.Renderer.NewStyle().Foreground(t.Subtext).Render(right)

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := truncate.String(title+spaces(gap)+right, uint(m.width))
	return line + "\n" + RenderDivider(m.width)
}

func (m *StorefrontModel) renderStatus() string {
	t := m.theme
	text := m.status
	if text == "" {
		text = "←/→ browse • a add to cart • / find • ? help • q quit"
	}
	return t.Renderer.NewStyle().Foreground(t.Subtext).Render(fit(text, m.width))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%*s", n, "")
}

func cloneProducts(products []model.Product) []model.Product {
	out := make([]model.Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}

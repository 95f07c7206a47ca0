package model

// CartItem is a product line in the shopping cart
type CartItem struct {
	ProductID string   `json:"id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Quantity  int      `json:"quantity"`
	Category  Category `json:"category"`
	Period    Period   `json:"period"`
	Image     string   `json:"image,omitempty"`
}

// NewCartItem builds a cart line for a product
func NewCartItem(p Product, quantity int) CartItem {
	return CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  quantity,
		Category:  p.Category,
		Period:    p.Period,
		Image:     p.Image,
	}
}

// Subtotal returns price times quantity
func (c CartItem) Subtotal() float64 {
	return c.Price * float64(c.Quantity)
}

// CartTotal sums the subtotals of all items
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}

// CartCount sums the quantities of all items
func CartCount(items []CartItem) int {
	n := 0
	for _, item := range items {
		n += item.Quantity
	}
	return n
}

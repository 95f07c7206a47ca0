package server

import (
	"sync"

	"github.com/kraitsura/storefront/pkg/model"
)

// Catalog is the product list served over HTTP. It is swapped wholesale when
// the catalog file changes on disk.
type Catalog struct {
	mu       sync.RWMutex
	products []model.Product
	byID     map[string]int
}

// NewCatalog returns a catalog holding products.
func NewCatalog(products []model.Product) *Catalog {
	c := &Catalog{}
	c.Set(products)
	return c
}

// Set replaces the catalog contents.
func (c *Catalog) Set(products []model.Product) {
	byID := make(map[string]int, len(products))
	cp := make([]model.Product, len(products))
	for i, p := range products {
		cp[i] = p.Clone()
		byID[p.ID] = i
	}
	c.mu.Lock()
	c.products = cp
	c.byID = byID
	c.mu.Unlock()
}

// List returns a copy of every product in catalog order.
func (c *Catalog) List() []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Product, len(c.products))
	for i, p := range c.products {
		out[i] = p.Clone()
	}
	return out
}

// Get looks up a product by id.
func (c *Catalog) Get(id string) (model.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byID[id]
	if !ok {
		return model.Product{}, false
	}
	return c.products[i].Clone(), true
}

// Len reports the number of products.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

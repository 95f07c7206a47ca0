package model

import "testing"

func validProduct() Product {
	return Product{
		ID:       "edr-pro",
		Name:     "EDR Pro",
		Price:    49,
		Period:   PeriodMonthly,
		Category: CategoryEDR,
		Status:   StatusAvailable,
		Features: []string{"isolation", "forensics"},
	}
}

func TestProductValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Product)
		wantErr bool
	}{
		{"valid", func(p *Product) {}, false},
		{"empty id", func(p *Product) { p.ID = " " }, true},
		{"empty name", func(p *Product) { p.Name = "" }, true},
		{"negative price", func(p *Product) { p.Price = -1 }, true},
		{"bad period", func(p *Product) { p.Period = "weekly" }, true},
		{"bad category", func(p *Product) { p.Category = "AV" }, true},
		{"bad status", func(p *Product) { p.Status = "sold_out" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestProductClone(t *testing.T) {
	p := validProduct()
	c := p.Clone()
	c.Features[0] = "changed"
	if p.Features[0] != "isolation" {
		t.Errorf("Clone shares the features slice")
	}
}

func TestFormatPrice(t *testing.T) {
	p := validProduct()
	if got := p.FormatPrice(); got != "49.00 €/mo" {
		t.Errorf("FormatPrice() = %q", got)
	}
	p.Period = PeriodYearly
	if got := p.FormatPrice(); got != "49.00 €/yr" {
		t.Errorf("FormatPrice() = %q", got)
	}
}

func TestCartTotals(t *testing.T) {
	p := validProduct()
	items := []CartItem{NewCartItem(p, 2), {ProductID: "soc", Price: 10.5, Quantity: 1}}
	if got := CartTotal(items); got != 108.5 {
		t.Errorf("CartTotal() = %v, want 108.5", got)
	}
	if got := CartCount(items); got != 3 {
		t.Errorf("CartCount() = %v, want 3", got)
	}
}

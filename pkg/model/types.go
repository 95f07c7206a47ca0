package model

import (
	"fmt"
	"strings"
)

// Product represents a subscription offering in the catalog
type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	ShortDescription string   `json:"shortDescription"`
	FullDescription  string   `json:"fullDescription"`
	Price            float64  `json:"price"`
	Period           Period   `json:"period"`
	Category         Category `json:"category"`
	Features         []string `json:"features,omitempty"`
	Status           Status   `json:"status"`
	Image            string   `json:"image,omitempty"`
}

// Clone creates a deep copy of the product
func (p Product) Clone() Product {
	clone := p
	if p.Features != nil {
		clone.Features = make([]string, len(p.Features))
		copy(clone.Features, p.Features)
	}
	return clone
}

// Validate checks if the product has valid field values
func (p *Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("product id cannot be empty")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product name cannot be empty")
	}
	if p.Price < 0 {
		return fmt.Errorf("product %s has negative price %.2f", p.ID, p.Price)
	}
	if !p.Period.IsValid() {
		return fmt.Errorf("invalid period: %s", p.Period)
	}
	if !p.Category.IsValid() {
		return fmt.Errorf("invalid category: %s", p.Category)
	}
	if !p.Status.IsValid() {
		return fmt.Errorf("invalid status: %s", p.Status)
	}
	return nil
}

// FormatPrice renders the price with its billing period, e.g. "49.00 €/mo"
func (p Product) FormatPrice() string {
	return fmt.Sprintf("%.2f €%s", p.Price, p.Period.Suffix())
}

// Period is the billing cycle of a product
type Period string

const (
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// IsValid returns true if the period is a recognized value
func (p Period) IsValid() bool {
	switch p {
	case PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// Suffix returns the short price suffix for the period
func (p Period) Suffix() string {
	if p == PeriodYearly {
		return "/yr"
	}
	return "/mo"
}

// Category groups products by security domain
type Category string

const (
	CategoryEDR     Category = "EDR"
	CategoryXDR     Category = "XDR"
	CategorySOC     Category = "SOC"
	CategoryCloud   Category = "Cloud"
	CategoryNetwork Category = "Network"
)

// IsValid returns true if the category is a recognized value
func (c Category) IsValid() bool {
	switch c {
	case CategoryEDR, CategoryXDR, CategorySOC, CategoryCloud, CategoryNetwork:
		return true
	}
	return false
}

// Status represents the availability of a product
type Status string

const (
	StatusAvailable   Status = "available"
	StatusMaintenance Status = "maintenance"
	StatusComingSoon  Status = "coming_soon"
)

// IsValid returns true if the status is a recognized value
func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance, StatusComingSoon:
		return true
	}
	return false
}

// IsPurchasable returns true if the product can be added to a cart
func (s Status) IsPurchasable() bool {
	return s == StatusAvailable
}

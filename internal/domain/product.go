package domain

import "github.com/shopspring/decimal"

// Product is the catalog snapshot served by the backend. The cart never
// stores a copy of it; prices are re-resolved by ID at computation time.
type Product struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	OfferPrice  decimal.Decimal `json:"offerPrice"`
	Sizes       []string        `json:"sizes"`
	Image       []string        `json:"image"`
	InStock     bool            `json:"inStock"`
	Popular     bool            `json:"popular"`
}

// HasSize reports whether the product is offered in the given size label.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

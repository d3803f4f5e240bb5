package domain

import "github.com/shopspring/decimal"

// Product is the catalog record handed to the ledger by callers. The ledger
// never mutates it; cart lines carry their own copy.
type Product struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Author   string          `json:"author,omitempty"`
	Price    decimal.Decimal `json:"price"`
	WeightKg float64         `json:"weight_kg,omitempty"`
	Category string          `json:"category,omitempty"`
}

// Valid reports whether the product carries the minimum the ledger needs:
// an identifier and a positive unit price.
func (p Product) Valid() bool {
	return p.ID != "" && p.Price.IsPositive()
}

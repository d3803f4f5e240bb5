package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line of the cart: a product snapshot plus quantity.
// At most one line exists per product id; a zero quantity is never stored,
// the line is removed instead.
type CartItem struct {
	Product  Product   `json:"product"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"added_at"`
}

func (i CartItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the mutable pre-purchase selection for one client.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Subtotal is the sum of unit price times quantity over all lines.
func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Count is the sum of quantities over all lines.
func (c Cart) Count() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// Weight is the total shipping weight in kg. Products with no recorded
// weight count as DefaultItemWeight per unit.
func (c Cart) Weight() float64 {
	w := 0.0
	for _, item := range c.Items {
		unit := item.Product.WeightKg
		if unit <= 0 {
			unit = DefaultItemWeight
		}
		w += unit * float64(item.Quantity)
	}
	return w
}

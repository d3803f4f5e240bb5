package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Address is one entry of the client's address book.
type Address struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Line1      string    `json:"line1"`
	Line2      string    `json:"line2,omitempty"`
	City       string    `json:"city"`
	State      string    `json:"state,omitempty"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// PaymentMethod is a saved card. CardNumber is always the masked form;
// the full number is never persisted anywhere.
type PaymentMethod struct {
	ID         string    `json:"id"`
	CardNumber string    `json:"card_number"`
	NameOnCard string    `json:"name_on_card,omitempty"`
	Expiry     string    `json:"expiry,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Order is the immutable record of one completed checkout. The monetary
// fields are captured at creation time and never recomputed; only Status
// and UpdatedAt change afterwards.
type Order struct {
	ID                string          `json:"id"`
	Items             []CartItem      `json:"items"`
	Address           Address         `json:"address"`
	PaymentCard       string          `json:"payment_card"`
	Method            ShippingMethod  `json:"shipping_method"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	Shipping          decimal.Decimal `json:"shipping"`
	Tax               decimal.Decimal `json:"tax"`
	Total             decimal.Decimal `json:"total"`
	TransactionID     string          `json:"transaction_id"`
	Status            OrderStatus     `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	TrackingID        string          `json:"tracking_id"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
}

// MaskCard reduces a payment descriptor to its last four characters,
// prefixed with masking groups. Inputs of four characters or fewer are
// returned unchanged since there is nothing left to hide.
func MaskCard(number string) string {
	digits := strings.ReplaceAll(number, " ", "")
	if len(digits) <= 4 {
		return digits
	}
	return "**** **** **** " + digits[len(digits)-4:]
}

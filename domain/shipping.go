package domain

import "github.com/shopspring/decimal"

type ShippingMethod string

const (
	ShippingStandard  ShippingMethod = "standard"
	ShippingExpress   ShippingMethod = "express"
	ShippingOvernight ShippingMethod = "overnight"
)

// ShippingRate is the fee schedule for one method: a flat base fee, a fee
// per kg of cart weight, and the promised delivery window in days.
type ShippingRate struct {
	Base  decimal.Decimal
	PerKg decimal.Decimal
	Days  int
}

// DefaultItemWeight substitutes for products with no recorded weight.
const DefaultItemWeight = 0.5

// FreeShippingThreshold waives the shipping fee entirely for subtotals at
// or above it, regardless of method or weight.
var FreeShippingThreshold = decimal.NewFromInt(1500)

// TaxRate is applied to the cart subtotal at checkout.
var TaxRate = decimal.NewFromFloat(0.08)

var shippingRates = map[ShippingMethod]ShippingRate{
	ShippingStandard:  {Base: decimal.NewFromInt(99), PerKg: decimal.NewFromInt(40), Days: 7},
	ShippingExpress:   {Base: decimal.NewFromInt(199), PerKg: decimal.NewFromInt(60), Days: 3},
	ShippingOvernight: {Base: decimal.NewFromInt(399), PerKg: decimal.NewFromInt(120), Days: 1},
}

// RateFor returns the fee schedule for a method. Unknown methods fall back
// to the standard rate.
func RateFor(m ShippingMethod) ShippingRate {
	if rate, ok := shippingRates[m]; ok {
		return rate
	}
	return shippingRates[ShippingStandard]
}

// ShippingCost computes the fee for shipping the given lines. The free
// shipping check runs before the weighted formula: once the subtotal meets
// the threshold the cost is zero, not a discount on the computed fee.
func ShippingCost(cart Cart, method ShippingMethod) decimal.Decimal {
	if cart.Subtotal().GreaterThanOrEqual(FreeShippingThreshold) {
		return decimal.Zero
	}
	rate := RateFor(method)
	return rate.Base.Add(rate.PerKg.Mul(decimal.NewFromFloat(cart.Weight())))
}

package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// Request carries the amount to charge and an opaque payment descriptor.
// The descriptor is never logged or stored by this package.
type Request struct {
	Amount     decimal.Decimal
	Descriptor string
}

// Result reports the outcome of a charge. A declined card is a Result with
// Success false, not an error; errors are reserved for the gateway itself
// failing.
type Result struct {
	Success       bool
	TransactionID string
	Message       string
}

// Gateway is the external payment collaborator. Latency is nonzero, so
// calls must respect ctx.
type Gateway interface {
	Charge(ctx context.Context, req Request) (*Result, error)
}

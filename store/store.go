package store

import (
	"context"
	"errors"
)

// Store is the persistence contract the ledger writes through: a flat
// key-value store of serialized text, scoped to one client. Round-trip
// fidelity is the only hard requirement.
// Consumers define this interface, not the backends.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

var ErrNotFound = errors.New("key not found")

// Key layout used by the ledger.
const (
	KeyCart           = "cart"
	KeyOrders         = "orders"
	KeyAddresses      = "addresses"
	KeyPaymentMethods = "paymentMethods"
)

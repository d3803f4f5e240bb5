package ledger

import "errors"

var (
	ErrEmptyCart         = errors.New("cart is empty, nothing to checkout")
	ErrIllegalTransition = errors.New("illegal transition of order status")
	ErrOrderNotFound     = errors.New("order not found")
	ErrTrackingNotFound  = errors.New("tracking id not found")
)

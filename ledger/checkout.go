package ledger

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gauravmishra2744/DHARMAVERSE/domain"
	"github.com/gauravmishra2744/DHARMAVERSE/store"
)

// CheckoutData is everything CreateOrder captures into the order record.
// The monetary fields arrive already computed so the price shown to the
// client is exactly the price recorded, and the payment must have been
// authorized by the caller beforehand; the ledger only records the
// transaction id it is told.
type CheckoutData struct {
	Address       domain.Address
	CardNumber    string
	Method        domain.ShippingMethod
	Subtotal      decimal.Decimal
	Shipping      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	TransactionID string
}

// CreateOrder snapshots the cart into a new confirmed order, persists it,
// and clears the cart as one atomic step: if either write fails, neither
// effect lands. An empty cart is a precondition violation, not an empty
// order.
func (s *Service) CreateOrder(ctx context.Context, data CheckoutData) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return nil, ErrEmptyCart
	}

	now := s.now()
	order := domain.Order{
		ID:                "DV" + strconv.FormatInt(now.UnixNano(), 10),
		Items:             copyItems(s.cart),
		Address:           data.Address,
		PaymentCard:       domain.MaskCard(data.CardNumber),
		Method:            data.Method,
		Subtotal:          data.Subtotal,
		Shipping:          data.Shipping,
		Tax:               data.Tax,
		Total:             data.Total,
		TransactionID:     data.TransactionID,
		Status:            domain.StatusConfirmed,
		CreatedAt:         now,
		UpdatedAt:         now,
		TrackingID:        newTrackingID(),
		EstimatedDelivery: now.Add(time.Duration(domain.RateFor(data.Method).Days) * 24 * time.Hour),
	}

	orders := make([]domain.Order, len(s.orders), len(s.orders)+1)
	copy(orders, s.orders)
	orders = append(orders, order)

	if err := s.persist(ctx, store.KeyOrders, orders); err != nil {
		return nil, err
	}
	if err := s.persist(ctx, store.KeyCart, []domain.CartItem{}); err != nil {
		// Roll the order list back so a half-committed checkout cannot
		// leave both a recorded order and a full cart.
		if rbErr := s.persist(ctx, store.KeyOrders, s.orders); rbErr != nil {
			s.log.Error().Err(rbErr).Str("order_id", order.ID).Msg("order rollback failed")
		}
		return nil, err
	}

	s.orders = orders
	s.cart = nil

	s.log.Info().
		Str("order_id", order.ID).
		Str("tracking_id", order.TrackingID).
		Str("total", order.Total.String()).
		Msg("order created")

	return &order, nil
}

const trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newTrackingID produces an opaque carrier-looking id. It has no external
// meaning; it only keys the simulated tracking view.
func newTrackingID() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = trackingAlphabet[rand.Intn(len(trackingAlphabet))]
	}
	return "DV" + string(b)
}

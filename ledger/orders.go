package ledger

import (
	"context"
	"fmt"
	"sort"

	"github.com/gauravmishra2744/DHARMAVERSE/domain"
	"github.com/gauravmishra2744/DHARMAVERSE/store"
)

// Orders returns all orders, most recent first.
func (s *Service) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Order returns the order with the given id, or ErrOrderNotFound.
func (s *Service) Order(id string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			order := s.orders[i]
			return &order, nil
		}
	}
	return nil, ErrOrderNotFound
}

// UpdateOrderStatus moves an order along the status table. Transitions not
// in the table are rejected with ErrIllegalTransition, including anything
// out of delivered or cancelled. The change is persisted before it is
// visible.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrOrderNotFound
	}

	from := s.orders[idx].Status
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrIllegalTransition, status)
	}
	if !domain.CanTransition(from, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, status)
	}

	orders := make([]domain.Order, len(s.orders))
	copy(orders, s.orders)
	orders[idx].Status = status
	orders[idx].UpdatedAt = s.now()

	if err := s.persist(ctx, store.KeyOrders, orders); err != nil {
		return nil, err
	}
	s.orders = orders

	order := orders[idx]
	s.log.Info().
		Str("order_id", orderID).
		Str("from", from.String()).
		Str("to", status.String()).
		Msg("order status updated")
	return &order, nil
}

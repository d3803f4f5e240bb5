package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gauravmishra2744/DHARMAVERSE/domain"
	"github.com/gauravmishra2744/DHARMAVERSE/store"
)

// Cart returns a copy of the current cart.
func (s *Service) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Cart{Items: copyItems(s.cart)}
}

// CartTotal is the subtotal over current lines, recomputed on every call.
func (s *Service) CartTotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Cart{Items: s.cart}.Subtotal()
}

// CartCount is the sum of quantities over current lines.
func (s *Service) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Cart{Items: s.cart}.Count()
}

// AddToCart merges quantity into an existing line for the same product, or
// appends a new line. Invalid input (bad product, non-positive quantity)
// is a silent no-op returning the unchanged cart; duplicate adds fold into
// one line rather than raising an error. The cart is persisted before the
// in-memory state is updated.
func (s *Service) AddToCart(ctx context.Context, product domain.Product, quantity int) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 || !product.Valid() {
		return domain.Cart{Items: copyItems(s.cart)}, nil
	}

	items := copyItems(s.cart)
	merged := false
	for i := range items {
		if items[i].Product.ID == product.ID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, domain.CartItem{
			Product:  product,
			Quantity: quantity,
			AddedAt:  s.now(),
		})
	}

	return s.commitCart(ctx, items)
}

// UpdateQuantity sets (not increments) the quantity of an existing line.
// A quantity of zero or less removes the line; an absent line is a no-op.
func (s *Service) UpdateQuantity(ctx context.Context, productID string, quantity int) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Cart{Items: copyItems(s.cart)}, nil
	}

	items := copyItems(s.cart)
	if quantity <= 0 {
		items = append(items[:idx], items[idx+1:]...)
	} else {
		items[idx].Quantity = quantity
	}

	return s.commitCart(ctx, items)
}

// RemoveFromCart deletes the line matching productID. Removing an absent
// line is a no-op, so the operation is idempotent.
func (s *Service) RemoveFromCart(ctx context.Context, productID string) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.CartItem, 0, len(s.cart))
	for _, item := range s.cart {
		if item.Product.ID != productID {
			items = append(items, item)
		}
	}
	if len(items) == len(s.cart) {
		return domain.Cart{Items: copyItems(s.cart)}, nil
	}

	return s.commitCart(ctx, items)
}

// CalculateShipping quotes the fee for shipping the given lines. The
// address is accepted for future use but does not affect the fee.
func (s *Service) CalculateShipping(items []domain.CartItem, method domain.ShippingMethod, _ domain.Address) decimal.Decimal {
	return domain.ShippingCost(domain.Cart{Items: items}, method)
}

// commitCart persists items and swaps them in. Callers hold s.mu.
func (s *Service) commitCart(ctx context.Context, items []domain.CartItem) (domain.Cart, error) {
	if err := s.persist(ctx, store.KeyCart, items); err != nil {
		return domain.Cart{}, err
	}
	s.cart = items
	return domain.Cart{Items: copyItems(items)}, nil
}

func copyItems(items []domain.CartItem) []domain.CartItem {
	out := make([]domain.CartItem, len(items))
	copy(out, items)
	return out
}

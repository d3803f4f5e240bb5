package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/gauravmishra2744/DHARMAVERSE/domain"
	"github.com/gauravmishra2744/DHARMAVERSE/store"
)

// AddAddress saves a new address book entry and returns it with its
// generated id.
func (s *Service) AddAddress(ctx context.Context, addr domain.Address) (*domain.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	addr.ID = uuid.NewString()
	addr.CreatedAt = s.now()

	addresses := make([]domain.Address, len(s.addresses), len(s.addresses)+1)
	copy(addresses, s.addresses)
	addresses = append(addresses, addr)

	if err := s.persist(ctx, store.KeyAddresses, addresses); err != nil {
		return nil, err
	}
	s.addresses = addresses
	return &addr, nil
}

func (s *Service) Addresses() []domain.Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Address, len(s.addresses))
	copy(out, s.addresses)
	return out
}

// AddPaymentMethod saves a card for reuse. The number is masked before it
// is stored; the full descriptor never reaches the store.
func (s *Service) AddPaymentMethod(ctx context.Context, method domain.PaymentMethod) (*domain.PaymentMethod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	method.ID = uuid.NewString()
	method.CardNumber = domain.MaskCard(method.CardNumber)
	method.CreatedAt = s.now()

	payments := make([]domain.PaymentMethod, len(s.payments), len(s.payments)+1)
	copy(payments, s.payments)
	payments = append(payments, method)

	if err := s.persist(ctx, store.KeyPaymentMethods, payments); err != nil {
		return nil, err
	}
	s.payments = payments
	return &method, nil
}

func (s *Service) PaymentMethods() []domain.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.PaymentMethod, len(s.payments))
	copy(out, s.payments)
	return out
}

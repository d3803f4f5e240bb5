// Package ledger implements the commerce ledger: the component owning one
// client's cart and order state and all derived commerce values. State is
// written through to a store.Store after every mutation; derived values
// are recomputed from in-memory state on every call.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/gauravmishra2744/DHARMAVERSE/domain"
	"github.com/gauravmishra2744/DHARMAVERSE/store"
)

// Service is the commerce ledger for a single client. Operations are safe
// for concurrent use from that client's presentation layer, but separate
// clients must each own their own Service and store keyspace.
type Service struct {
	mu    sync.Mutex
	store store.Store
	log   zerolog.Logger
	now   func() time.Time

	cart      []domain.CartItem
	orders    []domain.Order
	addresses []domain.Address
	payments  []domain.PaymentMethod
}

type Option func(*Service)

func WithLogger(log zerolog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithClock overrides the time source, so tests can pin timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New loads any previously persisted state from st and returns a ready
// ledger. Missing keys mean a fresh client and are not an error.
func New(ctx context.Context, st store.Store, opts ...Option) (*Service, error) {
	s := &Service{
		store: st,
		log:   zerolog.Nop(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) load(ctx context.Context) error {
	if err := loadKey(ctx, s.store, store.KeyCart, &s.cart); err != nil {
		return err
	}
	if err := loadKey(ctx, s.store, store.KeyOrders, &s.orders); err != nil {
		return err
	}
	if err := loadKey(ctx, s.store, store.KeyAddresses, &s.addresses); err != nil {
		return err
	}
	return loadKey(ctx, s.store, store.KeyPaymentMethods, &s.payments)
}

func loadKey[T any](ctx context.Context, st store.Store, key string, out *[]T) error {
	raw, err := st.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// persist serializes v under key. Callers commit in-memory state only
// after persist succeeds, so a failed write leaves the ledger untouched.
func (s *Service) persist(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.store.Set(ctx, key, string(b)); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("store write failed")
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

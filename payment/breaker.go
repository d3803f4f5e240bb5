package payment

import (
	"context"
	"time"

	"github.com/sony/gobreaker/v2"
)

// Breaker wraps a Gateway in a circuit breaker so a flapping payment
// backend fails fast instead of holding up every checkout.
type Breaker struct {
	gateway Gateway
	cb      *gobreaker.CircuitBreaker[*Result]
}

func NewBreaker(gateway Gateway) *Breaker {
	settings := gobreaker.Settings{
		Name:        "payment-gateway",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}
	return &Breaker{
		gateway: gateway,
		cb:      gobreaker.NewCircuitBreaker[*Result](settings),
	}
}

func (b *Breaker) Charge(ctx context.Context, req Request) (*Result, error) {
	return b.cb.Execute(func() (*Result, error) {
		return b.gateway.Charge(ctx, req)
	})
}

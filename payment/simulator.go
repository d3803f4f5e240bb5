package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Simulator is a stand-in Gateway. It waits out a configurable latency,
// then approves the charge with a generated transaction id. A Decline hook
// lets callers force failures.
type Simulator struct {
	Latency time.Duration
	Decline func(Request) bool
}

func NewSimulator(latency time.Duration) *Simulator {
	return &Simulator{Latency: latency}
}

func (s *Simulator) Charge(ctx context.Context, req Request) (*Result, error) {
	if req.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("invalid charge amount %s", req.Amount)
	}

	if s.Latency > 0 {
		timer := time.NewTimer(s.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if s.Decline != nil && s.Decline(req) {
		return &Result{Success: false, Message: "card declined"}, nil
	}

	return &Result{
		Success:       true,
		TransactionID: "txn_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:9],
		Message:       "payment processed successfully",
	}, nil
}

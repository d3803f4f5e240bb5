package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/gauravmishra2744/DHARMAVERSE/store"
)

// flakyStore wraps a real memory store and fails writes on demand, per key
// or across the board.
type flakyStore struct {
	mu       sync.Mutex
	inner    *store.Memory
	setErr   error
	failKeys map[string]bool
	setCalls []string
}

func newFlakyStore() *flakyStore {
	return &flakyStore{inner: store.NewMemory(), failKeys: map[string]bool{}}
}

func (f *flakyStore) Get(ctx context.Context, key string) (string, error) {
	return f.inner.Get(ctx, key)
}

func (f *flakyStore) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setCalls = append(f.setCalls, key)
	if f.setErr != nil && (len(f.failKeys) == 0 || f.failKeys[key]) {
		return f.setErr
	}
	return f.inner.Set(ctx, key, value)
}

func (f *flakyStore) Delete(ctx context.Context, key string) error {
	return f.inner.Delete(ctx, key)
}

func (f *flakyStore) sets() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.setCalls))
	copy(out, f.setCalls)
	return out
}

// fixedClock hands out a controllable time source.
type fixedClock struct {
	mu  sync.Mutex
	cur time.Time
}

func newFixedClock(t time.Time) *fixedClock {
	return &fixedClock{cur: t}
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cur
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = c.cur.Add(d)
}

package ledger

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gauravmishra2744/DHARMAVERSE/domain"
	"github.com/gauravmishra2744/DHARMAVERSE/store"
)

var testT0 = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func product(id string, price float64) domain.Product {
	return domain.Product{ID: id, Title: "Bhagavad Gita (" + id + ")", Price: decimal.NewFromFloat(price), WeightKg: 0.4}
}

func newTestService(t *testing.T) (*Service, *store.Memory) {
	t.Helper()
	st := store.NewMemory()
	svc, err := New(context.Background(), st, WithClock(newFixedClock(testT0).Now))
	require.NoError(t, err)
	return svc, st
}

func TestAddToCart_MergesDuplicateAdds(t *testing.T) {
	sut, _ := newTestService(t)
	ctx := context.Background()

	_, err := sut.AddToCart(ctx, product("gita", 299), 2)
	require.NoError(t, err)
	cart, err := sut.AddToCart(ctx, product("gita", 299), 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 5, sut.CartCount())
}

func TestAddToCart_InvalidInputIsNoOp(t *testing.T) {
	sut, _ := newTestService(t)
	ctx := context.Background()

	cart, err := sut.AddToCart(ctx, product("gita", 299), 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	cart, err = sut.AddToCart(ctx, domain.Product{ID: "", Price: decimal.NewFromInt(10)}, 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	cart, err = sut.AddToCart(ctx, domain.Product{ID: "free", Price: decimal.Zero}, 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestUpdateQuantity_SetsNotIncrements(t *testing.T) {
	sut, _ := newTestService(t)
	ctx := context.Background()

	_, err := sut.AddToCart(ctx, product("gita", 299), 2)
	require.NoError(t, err)

	cart, err := sut.UpdateQuantity(ctx, "gita", 7)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 7, cart.Items[0].Quantity)
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	sut, _ := newTestService(t)
	ctx := context.Background()

	_, err := sut.AddToCart(ctx, product("gita", 299), 2)
	require.NoError(t, err)

	cart, err := sut.UpdateQuantity(ctx, "gita", 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestUpdateQuantity_MissingLineIsNoOp(t *testing.T) {
	sut, _ := newTestService(t)

	cart, err := sut.UpdateQuantity(context.Background(), "ghost", 3)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestRemoveFromCart_Idempotent(t *testing.T) {
	sut, _ := newTestService(t)
	ctx := context.Background()

	_, err := sut.AddToCart(ctx, product("gita", 299), 1)
	require.NoError(t, err)
	_, err = sut.AddToCart(ctx, product("mala", 149), 1)
	require.NoError(t, err)

	first, err := sut.RemoveFromCart(ctx, "gita")
	require.NoError(t, err)
	second, err := sut.RemoveFromCart(ctx, "gita")
	require.NoError(t, err)

	assert.Equal(t, first.Items, second.Items)
	require.Len(t, second.Items, 1)
	assert.Equal(t, "mala", second.Items[0].Product.ID)
}

func TestCartMutations_WriteThrough(t *testing.T) {
	fs := newFlakyStore()
	sut, err := New(context.Background(), fs, WithClock(newFixedClock(testT0).Now))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = sut.AddToCart(ctx, product("gita", 299), 1)
	require.NoError(t, err)
	_, err = sut.UpdateQuantity(ctx, "gita", 4)
	require.NoError(t, err)
	_, err = sut.RemoveFromCart(ctx, "gita")
	require.NoError(t, err)

	// Every mutation is durable before the call returns.
	assert.Equal(t, []string{store.KeyCart, store.KeyCart, store.KeyCart}, fs.sets())
}

func TestCartMutation_StoreFailureLeavesStateUntouched(t *testing.T) {
	fs := newFlakyStore()
	sut, err := New(context.Background(), fs, WithClock(newFixedClock(testT0).Now))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = sut.AddToCart(ctx, product("gita", 299), 2)
	require.NoError(t, err)

	fs.setErr = fmt.Errorf("quota exceeded")
	_, err = sut.AddToCart(ctx, product("mala", 149), 1)
	require.ErrorContains(t, err, "quota exceeded")

	cart := sut.Cart()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "gita", cart.Items[0].Product.ID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartState_SurvivesRestart(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	first, err := New(ctx, st)
	require.NoError(t, err)
	_, err = first.AddToCart(ctx, product("gita", 299), 3)
	require.NoError(t, err)

	second, err := New(ctx, st)
	require.NoError(t, err)
	cart := second.Cart()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "gita", cart.Items[0].Product.ID)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.True(t, second.CartTotal().Equal(decimal.NewFromInt(897)), "got %s", second.CartTotal())
}

// Total consistency: for any sequence of add/update/remove operations the
// reported total always equals the sum over current lines.
func TestCartTotal_RandomOperationSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pool := []domain.Product{
		product("p1", 49.99),
		product("p2", 120),
		product("p3", 7.25),
		product("p4", 999),
		product("p5", 0.99),
	}

	sut, _ := newTestService(t)
	ctx := context.Background()
	model := map[string]int{}
	prices := map[string]decimal.Decimal{}
	for _, p := range pool {
		prices[p.ID] = p.Price
	}

	for i := 0; i < 500; i++ {
		p := pool[rng.Intn(len(pool))]
		switch rng.Intn(3) {
		case 0:
			qty := rng.Intn(4) + 1
			_, err := sut.AddToCart(ctx, p, qty)
			require.NoError(t, err)
			model[p.ID] += qty
		case 1:
			qty := rng.Intn(6) // zero removes
			_, err := sut.UpdateQuantity(ctx, p.ID, qty)
			require.NoError(t, err)
			if _, ok := model[p.ID]; ok {
				if qty == 0 {
					delete(model, p.ID)
				} else {
					model[p.ID] = qty
				}
			}
		case 2:
			_, err := sut.RemoveFromCart(ctx, p.ID)
			require.NoError(t, err)
			delete(model, p.ID)
		}

		want := decimal.Zero
		count := 0
		for id, qty := range model {
			want = want.Add(prices[id].Mul(decimal.NewFromInt(int64(qty))))
			count += qty
		}
		require.True(t, sut.CartTotal().Equal(want),
			"op %d: total %s, want %s", i, sut.CartTotal(), want)
		require.Equal(t, count, sut.CartCount(), "op %d", i)
	}
}

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_RoundTrip(t *testing.T) {
	sut := NewMemory()
	ctx := context.Background()

	require.NoError(t, sut.Set(ctx, KeyCart, `[{"quantity":2}]`))

	got, err := sut.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, `[{"quantity":2}]`, got)
}

func TestMemory_GetMissingKey(t *testing.T) {
	sut := NewMemory()

	_, err := sut.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_DeleteIsIdempotent(t *testing.T) {
	sut := NewMemory()
	ctx := context.Background()

	require.NoError(t, sut.Set(ctx, KeyOrders, "[]"))
	require.NoError(t, sut.Delete(ctx, KeyOrders))
	require.NoError(t, sut.Delete(ctx, KeyOrders))

	_, err := sut.Get(ctx, KeyOrders)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_Overwrite(t *testing.T) {
	sut := NewMemory()
	ctx := context.Background()

	require.NoError(t, sut.Set(ctx, KeyCart, "[]"))
	require.NoError(t, sut.Set(ctx, KeyCart, `[{"quantity":1}]`))

	got, err := sut.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, `[{"quantity":1}]`, got)
}

package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis spins up a miniredis server backing a Redis store.
func setupTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedis(client, "testclient"), mr
}

func TestRedis_RoundTrip(t *testing.T) {
	sut, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, sut.Set(ctx, KeyCart, `[{"quantity":3}]`))

	got, err := sut.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, `[{"quantity":3}]`, got)
}

func TestRedis_NamespacesKeys(t *testing.T) {
	sut, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, sut.Set(ctx, KeyCart, "[]"))

	got, err := mr.Get("testclient:cart")
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
}

func TestRedis_GetMissingKey(t *testing.T) {
	sut, _ := setupTestRedis(t)

	_, err := sut.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedis_Delete(t *testing.T) {
	sut, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, sut.Set(ctx, KeyOrders, "[]"))
	require.NoError(t, sut.Delete(ctx, KeyOrders))

	_, err := sut.Get(ctx, KeyOrders)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is not an error.
	require.NoError(t, sut.Delete(ctx, KeyOrders))
}

func TestRedis_ServerDown(t *testing.T) {
	sut, mr := setupTestRedis(t)
	mr.Close()

	err := sut.Set(context.Background(), KeyCart, "[]")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

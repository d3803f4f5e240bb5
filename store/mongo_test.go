package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

func setupTestMongo(t *testing.T) *Mongo {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping MongoDB container test in short mode")
	}

	ctx := context.Background()
	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	uri, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err)

	db, err := ConnectMongo(ctx, uri, "testdb")
	require.NoError(t, err)

	return NewMongo(db)
}

func TestMongo_RoundTrip(t *testing.T) {
	sut := setupTestMongo(t)
	ctx := context.Background()

	require.NoError(t, sut.Set(ctx, KeyCart, `[{"quantity":2}]`))

	got, err := sut.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, `[{"quantity":2}]`, got)
}

func TestMongo_GetMissingKey(t *testing.T) {
	sut := setupTestMongo(t)

	_, err := sut.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMongo_SetUpserts(t *testing.T) {
	sut := setupTestMongo(t)
	ctx := context.Background()

	require.NoError(t, sut.Set(ctx, KeyOrders, "[]"))
	require.NoError(t, sut.Set(ctx, KeyOrders, `[{"id":"DV1"}]`))

	got, err := sut.Get(ctx, KeyOrders)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"DV1"}]`, got)
}

func TestMongo_Delete(t *testing.T) {
	sut := setupTestMongo(t)
	ctx := context.Background()

	require.NoError(t, sut.Set(ctx, KeyCart, "[]"))
	require.NoError(t, sut.Delete(ctx, KeyCart))

	_, err := sut.Get(ctx, KeyCart)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, sut.Delete(ctx, KeyCart))
}

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupStore_CheckAndSet_NewDelivery(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewDedupStore(client)
	ctx := context.Background()

	ok, err := store.CheckAndSet(ctx, "delivery-abc", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok, "new delivery id should return true")
}

func TestDedupStore_CheckAndSet_Redelivery(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewDedupStore(client)
	ctx := context.Background()

	ok, err := store.CheckAndSet(ctx, "delivery-xyz", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	// Same id arrives again
	ok, err = store.CheckAndSet(ctx, "delivery-xyz", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok, "redelivered id should return false")
}

func TestDedupStore_CheckAndSet_DistinctDeliveries(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewDedupStore(client)
	ctx := context.Background()

	ok1, err := store.CheckAndSet(ctx, "delivery-1", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok1)

	ok2, err := store.CheckAndSet(ctx, "delivery-2", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok2)
}

func TestDedupStore_CheckAndSet_ExpiredWindow(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewDedupStore(client)
	ctx := context.Background()

	ok, err := store.CheckAndSet(ctx, "delivery-old", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	s.FastForward(2 * time.Minute)

	ok, err = store.CheckAndSet(ctx, "delivery-old", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "id past its retention window is treated as new")
}

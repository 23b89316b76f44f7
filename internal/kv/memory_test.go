package kv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryStore_ZeroTTLExpiresImmediately(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 0))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, store.Set(ctx, "b", []byte("2"), time.Minute))
	require.NoError(t, store.Delete(ctx, "a", "b"))

	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrMiss)
	_, err = store.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryStore_Sets(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SAdd(ctx, "s", "one", time.Minute))
	require.NoError(t, store.SAdd(ctx, "s", "two", time.Minute))
	require.NoError(t, store.SAdd(ctx, "s", "two", time.Minute))

	members, err := store.SMembers(ctx, "s")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"one", "two"}, members)

	require.NoError(t, store.Delete(ctx, "s"))
	members, err = store.SMembers(ctx, "s")
	require.NoError(t, err)
	assert.Empty(t, members)
}

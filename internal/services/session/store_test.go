package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evn/budget_backendl/internal/kv"
	"github.com/evn/budget_backendl/internal/models"
	"github.com/evn/budget_backendl/internal/pkg/apperrors"
)

func newRedisBackedStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStore(kv.NewRedisStore(client)), mr
}

func TestStore_PutGet(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisBackedStore(t)

	user := models.SessionUser{Username: "alice", IsAdmin: true, UserID: 7}
	require.NoError(t, store.Put(ctx, "tok-1", user, time.Minute))

	got, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, user, *got)
}

func TestStore_GetUnknownToken(t *testing.T) {
	store, _ := newRedisBackedStore(t)

	_, err := store.Get(context.Background(), "never-issued")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestStore_ZeroTTL(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisBackedStore(t)

	user := models.SessionUser{Username: "alice", UserID: 1}
	require.NoError(t, store.Put(ctx, "tok", user, 0))

	_, err := store.Get(ctx, "tok")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestStore_ExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisBackedStore(t)

	user := models.SessionUser{Username: "alice", UserID: 1}
	require.NoError(t, store.Put(ctx, "tok", user, 30*time.Second))

	mr.FastForward(31 * time.Second)

	_, err := store.Get(ctx, "tok")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestStore_InvalidateAll(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisBackedStore(t)

	alice := models.SessionUser{Username: "alice", UserID: 1}
	bob := models.SessionUser{Username: "bob", UserID: 2}
	require.NoError(t, store.Put(ctx, "a-1", alice, time.Minute))
	require.NoError(t, store.Put(ctx, "a-2", alice, time.Minute))
	require.NoError(t, store.Put(ctx, "b-1", bob, time.Minute))

	require.NoError(t, store.InvalidateAll(ctx, "alice"))

	_, err := store.Get(ctx, "a-1")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	_, err = store.Get(ctx, "a-2")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	// чужие сессии не затронуты
	got, err := store.Get(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, bob, *got)
}

func TestStore_InvalidateAllUnknownUser(t *testing.T) {
	store, _ := newRedisBackedStore(t)
	assert.NoError(t, store.InvalidateAll(context.Background(), "ghost"))
}

func TestStore_MemoryBackend(t *testing.T) {
	ctx := context.Background()
	store := NewStore(kv.NewMemoryStore())

	user := models.SessionUser{Username: "alice", IsAdmin: false, UserID: 3}
	require.NoError(t, store.Put(ctx, "tok", user, time.Minute))

	got, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, user, *got)

	require.NoError(t, store.InvalidateAll(ctx, "alice"))
	_, err = store.Get(ctx, "tok")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

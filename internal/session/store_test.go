package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/archimart/quote-api/internal/quote"
	"github.com/archimart/quote-api/internal/session"
)

func sampleSession(expiresAt time.Time) session.Session {
	return session.Session{
		ID:          "4f9d9a58-0f5e-4ab9-b8b5-2a4a2f8f6f01",
		QuoteNumber: "ACHM-Q-20260830-456",
		CreatedAt:   time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
		ExpiresAt:   expiresAt,
		Snapshot:    quote.NewSnapshot(),
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()
	sess := sampleSession(time.Now().Add(time.Hour))

	require.NoError(t, store.Save(ctx, sess))
	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	require.Equal(t, sess, got)

	require.NoError(t, store.Delete(ctx, sess.ID))
	_, err = store.Get(ctx, sess.ID)
	require.ErrorIs(t, err, session.ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()
	sess := sampleSession(time.Now().Add(-time.Minute))

	require.NoError(t, store.Save(ctx, sess))
	_, err := store.Get(ctx, sess.ID)
	require.ErrorIs(t, err, session.ErrNotFound)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := &session.RedisStore{Client: client}
	ctx := context.Background()

	sess := sampleSession(time.Now().Add(time.Hour))
	sess.Snapshot.ProductID = "ALU_PC"
	sess.Snapshot.AddonQuantities["post_concrete"] = "2"

	require.NoError(t, store.Save(ctx, sess))
	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	require.Equal(t, sess.QuoteNumber, got.QuoteNumber)
	require.Equal(t, sess.Snapshot, got.Snapshot)

	require.NoError(t, store.Delete(ctx, sess.ID))
	_, err = store.Get(ctx, sess.ID)
	require.ErrorIs(t, err, session.ErrNotFound)
}

func TestRedisStoreExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := &session.RedisStore{Client: client}
	ctx := context.Background()

	sess := sampleSession(time.Now().Add(time.Minute))
	require.NoError(t, store.Save(ctx, sess))

	mr.FastForward(2 * time.Minute)
	_, err := store.Get(ctx, sess.ID)
	require.ErrorIs(t, err, session.ErrNotFound)
}

func TestRedisStoreSaveAlreadyExpired(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := &session.RedisStore{Client: client}
	ctx := context.Background()

	sess := sampleSession(time.Now().Add(-time.Minute))
	require.NoError(t, store.Save(ctx, sess))
	_, err := store.Get(ctx, sess.ID)
	require.ErrorIs(t, err, session.ErrNotFound)
}

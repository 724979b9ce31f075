package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
)

var now = time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestChallengeStore_PerEmail(t *testing.T) {
	mr, rdb := newRedis(t)
	store := NewChallengeStore(rdb)
	store.Now = func() time.Time { return now }
	ctx := context.Background()

	alice := domain.Challenge{Email: "alice@x.io", Code: "aaaaaaaaaaaa", ExpiresAt: now.Add(5 * time.Minute)}
	bob := domain.Challenge{Email: "bob@x.io", Code: "bbbbbbbbbbbb", ExpiresAt: now.Add(5 * time.Minute)}
	require.NoError(t, store.Put(ctx, alice))
	require.NoError(t, store.Put(ctx, bob))

	got, err := store.Get(ctx, "alice@x.io")
	require.NoError(t, err)
	require.Equal(t, alice.Code, got.Code)
	require.True(t, alice.ExpiresAt.Equal(got.ExpiresAt))
	require.Equal(t, 6*time.Minute, mr.TTL("otp:alice@x.io"))

	require.NoError(t, store.Delete(ctx, "alice@x.io"))
	_, err = store.Get(ctx, "alice@x.io")
	require.ErrorIs(t, err, domain.ErrChallengeNotFound)

	got, err = store.Get(ctx, "bob@x.io")
	require.NoError(t, err)
	require.Equal(t, bob.Code, got.Code)

	mr.FastForward(7 * time.Minute)
	_, err = store.Get(ctx, "bob@x.io")
	require.ErrorIs(t, err, domain.ErrChallengeNotFound)
}

func TestChallengeStore_ConsumeOnlyOnMatch(t *testing.T) {
	mr, rdb := newRedis(t)
	store := NewChallengeStore(rdb)
	store.Now = func() time.Time { return now }
	ctx := context.Background()

	_, err := store.Consume(ctx, "alice@x.io", "aaaaaaaaaaaa")
	require.ErrorIs(t, err, domain.ErrChallengeNotFound)

	alice := domain.Challenge{Email: "alice@x.io", Code: "aaaaaaaaaaaa", ExpiresAt: now.Add(5 * time.Minute)}
	require.NoError(t, store.Put(ctx, alice))

	_, err = store.Consume(ctx, "alice@x.io", "zzzzzzzzzzzz")
	require.ErrorIs(t, err, domain.ErrInvalidCode)
	require.True(t, mr.Exists("otp:alice@x.io"))

	got, err := store.Consume(ctx, "alice@x.io", alice.Code)
	require.NoError(t, err)
	require.Equal(t, "alice@x.io", got.Email)
	require.True(t, alice.ExpiresAt.Equal(got.ExpiresAt))
	require.False(t, mr.Exists("otp:alice@x.io"))

	_, err = store.Consume(ctx, "alice@x.io", alice.Code)
	require.ErrorIs(t, err, domain.ErrChallengeNotFound)
}

func TestSessionStore(t *testing.T) {
	mr, rdb := newRedis(t)
	store := NewSessionStore(rdb)
	store.Now = func() time.Time { return now }
	ctx := context.Background()

	session := domain.Session{
		ID:          "sid-1",
		Email:       "alice@x.io",
		DisplayName: "Alice",
		IssuedAt:    now,
		ExpiresAt:   now.Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, session))
	require.Equal(t, time.Hour, mr.TTL("session:sid-1"))

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.Equal(t, session.Email, got.Email)
	require.Equal(t, session.DisplayName, got.DisplayName)
	require.True(t, session.ExpiresAt.Equal(got.ExpiresAt))

	require.NoError(t, store.Delete(ctx, "sid-1"))
	_, err = store.Get(ctx, "sid-1")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)

	require.NoError(t, store.Save(ctx, session))
	mr.FastForward(time.Hour + time.Second)
	_, err = store.Get(ctx, "sid-1")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRateLimiter(t *testing.T) {
	mr, rdb := newRedis(t)
	limiter := NewRateLimiter(rdb, 2, time.Hour)
	ctx := context.Background()

	for i, want := range []bool{true, true, false} {
		allowed, err := limiter.Allow(ctx, "otp:alice@x.io")
		require.NoError(t, err)
		require.Equal(t, want, allowed, "hit %d", i+1)
	}

	allowed, err := limiter.Allow(ctx, "otp:bob@x.io")
	require.NoError(t, err)
	require.True(t, allowed)

	mr.FastForward(time.Hour)
	allowed, err = limiter.Allow(ctx, "otp:alice@x.io")
	require.NoError(t, err)
	require.True(t, allowed)

	unlimited := NewRateLimiter(rdb, 0, time.Hour)
	for i := 0; i < 10; i++ {
		allowed, err := unlimited.Allow(ctx, "any")
		require.NoError(t, err)
		require.True(t, allowed)
	}
}

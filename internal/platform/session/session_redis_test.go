package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frs_backend/internal/feature/users/domain/entity"
	"frs_backend/internal/feature/users/usecase"
)

func setupSessionRedis(t *testing.T) (*SessionRedis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSessionRedis(client, "session"), mr
}

func newTestSession(id string, userID uint, ttl time.Duration) *entity.Session {
	now := time.Now()
	return &entity.Session{
		ID:        id,
		UserID:    userID,
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestSessionRedisCreateAndFind(t *testing.T) {
	store, _ := setupSessionRedis(t)
	ctx := context.Background()

	sess := newTestSession("abc123", 1, time.Hour)
	require.NoError(t, store.Create(ctx, sess))

	got, err := store.FindByID(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, uint(1), got.UserID)
	assert.Equal(t, "test-agent", got.UserAgent)
	assert.True(t, got.IsValid())
}

func TestSessionRedisCreateExpired(t *testing.T) {
	store, _ := setupSessionRedis(t)

	sess := newTestSession("stale", 1, -time.Minute)
	assert.Error(t, store.Create(context.Background(), sess), "a session past its expiry must not be stored")
}

func TestSessionRedisFindUnknown(t *testing.T) {
	store, _ := setupSessionRedis(t)

	_, err := store.FindByID(context.Background(), "nope")
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
}

func TestSessionRedisRevoke(t *testing.T) {
	store, mr := setupSessionRedis(t)
	ctx := context.Background()

	sess := newTestSession("abc123", 1, time.Hour)
	require.NoError(t, store.Create(ctx, sess))

	require.NoError(t, store.Revoke(ctx, "abc123"))

	got, err := store.FindByID(ctx, "abc123")
	require.NoError(t, err, "revoked sessions are retained for a while")
	assert.True(t, got.IsRevoked())
	assert.False(t, got.IsValid())

	// The set is dropped once its last session is revoked
	assert.False(t, mr.Exists("session:user:1"), "revoked sessions leave the user's set")
}

func TestSessionRedisUserSetHasTTL(t *testing.T) {
	store, mr := setupSessionRedis(t)

	require.NoError(t, store.Create(context.Background(), newTestSession("abc123", 1, time.Hour)))

	assert.Greater(t, mr.TTL("session:user:1"), time.Duration(0), "the user's set must not live forever")
}

func TestSessionRedisRevokeAllByUserID(t *testing.T) {
	store, mr := setupSessionRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newTestSession("s1", 1, time.Hour)))
	require.NoError(t, store.Create(ctx, newTestSession("s2", 1, time.Hour)))
	require.NoError(t, store.Create(ctx, newTestSession("other", 2, time.Hour)))

	require.NoError(t, store.RevokeAllByUserID(ctx, 1))

	for _, id := range []string{"s1", "s2"} {
		got, err := store.FindByID(ctx, id)
		require.NoError(t, err)
		assert.True(t, got.IsRevoked(), "session %s should be revoked", id)
	}

	got, err := store.FindByID(ctx, "other")
	require.NoError(t, err)
	assert.False(t, got.IsRevoked(), "another user's session must be untouched")

	assert.False(t, mr.Exists("session:user:1"), "the revoked user's set is dropped")
	assert.True(t, mr.Exists("session:user:2"))
}

func TestSessionRedisExpiryViaTTL(t *testing.T) {
	store, mr := setupSessionRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newTestSession("short", 1, time.Minute)))

	mr.FastForward(2 * time.Minute)

	_, err := store.FindByID(ctx, "short")
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound, "expired sessions disappear with their key")
}

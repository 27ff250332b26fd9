package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wahalabot/pkg/roast"
)

func TestSession_Ready(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.Ready())

	assert.False(t, (&Session{}).Ready())
	assert.False(t, (&Session{Gender: roast.GenderMale}).Ready())
	assert.False(t, (&Session{Level: roast.LevelMild}).Ready())
	assert.True(t, (&Session{Gender: roast.GenderFemale, Level: roast.LevelSavage}).Ready())
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	sess, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, sess)

	require.NoError(t, store.Put(ctx, "u1", &Session{Gender: roast.GenderMale}))

	sess, err = store.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, roast.GenderMale, sess.Gender)
	assert.False(t, sess.Ready())

	sess.Level = roast.LevelMedium
	require.NoError(t, store.Put(ctx, "u1", sess))

	sess, err = store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, sess.Ready())

	// Other identities stay independent.
	other, err := store.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Nil(t, other)

	require.NoError(t, store.Delete(ctx, "u1"))
	sess, err = store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStoreWithClient(client, ttl), mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t, 0)

	sess, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, sess)

	require.NoError(t, store.Put(ctx, "u1", &Session{Gender: roast.GenderFemale, Level: roast.LevelMild}))

	sess, err = store.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, roast.GenderFemale, sess.Gender)
	assert.Equal(t, roast.LevelMild, sess.Level)

	require.NoError(t, store.Delete(ctx, "u1"))
	sess, err = store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestRedisStore_TTLEviction(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, time.Hour)

	require.NoError(t, store.Put(ctx, "u1", &Session{Gender: roast.GenderMale, Level: roast.LevelSavage}))

	mr.FastForward(2 * time.Hour)

	sess, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, sess)
}

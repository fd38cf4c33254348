package redisstate

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CommunityOracle/internal/domain/schema"
)

func newTestCache(t *testing.T) (*SubredditCacheRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSubredditCacheRepo(client, time.Hour), mr
}

func TestSubredditCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	info := schema.SubredditInfo{
		ID:          "t5_abc",
		Name:        "golang",
		Subscribers: 250_000,
		Rules:       []schema.SubredditRule{{ShortName: "Be kind", Description: "Be nice."}},
	}
	require.NoError(t, cache.Set(ctx, info))

	got, ok, err := cache.Get(ctx, "t5_abc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, info, got)
}

func TestSubredditCacheMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	_, ok, err := cache.Get(context.Background(), "t5_missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSubredditCacheTTL(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, schema.SubredditInfo{ID: "t5_abc", Name: "golang"}))
	assert.Equal(t, time.Hour, mr.TTL(subredditKey("t5_abc")))

	mr.FastForward(2 * time.Hour)
	_, ok, err := cache.Get(ctx, "t5_abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSubredditCacheMalformedEntry(t *testing.T) {
	cache, mr := newTestCache(t)

	require.NoError(t, mr.Set(subredditKey("t5_abc"), "{not json"))

	_, ok, err := cache.Get(context.Background(), "t5_abc")
	assert.Error(t, err)
	assert.False(t, ok)
}

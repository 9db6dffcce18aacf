package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRedis connects to REDIS_TEST_URL, skipping when it is unset.
func newTestRedis(t *testing.T) *Redis {
	t.Helper()
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}

	client, err := ConnectRedis(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	r := NewRedis(client, time.Minute)
	require.NoError(t, r.Clear(context.Background()))
	return r
}

func TestConnectRedis_BadURL(t *testing.T) {
	_, err := ConnectRedis(context.Background(), "not a url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse redis url")
}

func TestRedis_PutGetClear(t *testing.T) {
	r := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, "search|alien", []byte("payload")))
	got, ok := r.Get(ctx, "search|alien")
	assert.True(t, ok)
	assert.Equal(t, []byte("payload"), got)

	ttl, err := r.client.TTL(ctx, redisKeyPrefix+"search|alien").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, r.Clear(ctx))
	_, ok = r.Get(ctx, "search|alien")
	assert.False(t, ok)
}

func TestRedis_ClearLeavesForeignKeys(t *testing.T) {
	r := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, r.client.Set(ctx, "other:key", "x", time.Minute).Err())
	t.Cleanup(func() { r.client.Del(ctx, "other:key") })

	require.NoError(t, r.Put(ctx, "k", []byte("v")))
	require.NoError(t, r.Clear(ctx))

	n, err := r.client.Exists(ctx, "other:key").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestMemory(ttl time.Duration) (*Memory, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := NewMemory(ttl)
	m.now = clock.Now
	return m, clock
}

func TestMemory_PutGet(t *testing.T) {
	m, _ := newTestMemory(time.Hour)
	ctx := context.Background()

	require.NoError(t, m.Put(ctx, "k", []byte("v")))
	got, ok := m.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	_, ok = m.Get(ctx, "missing")
	assert.False(t, ok)
}

func TestMemory_DefaultTTL(t *testing.T) {
	m := NewMemory(0)
	assert.Equal(t, DefaultTTL, m.ttl)
}

func TestMemory_ExpiresAfterTTL(t *testing.T) {
	m, clock := newTestMemory(time.Hour)
	ctx := context.Background()

	require.NoError(t, m.Put(ctx, "k", []byte("v")))

	clock.Advance(59 * time.Minute)
	_, ok := m.Get(ctx, "k")
	assert.True(t, ok, "entry within TTL should be served")

	clock.Advance(2 * time.Minute)
	_, ok = m.Get(ctx, "k")
	assert.False(t, ok, "entry older than TTL must not be served")
	assert.Equal(t, 0, m.Len(), "expired entry is dropped on lookup")
}

func TestMemory_OverwriteRefreshesTimestamp(t *testing.T) {
	m, clock := newTestMemory(time.Hour)
	ctx := context.Background()

	require.NoError(t, m.Put(ctx, "k", []byte("old")))
	clock.Advance(50 * time.Minute)
	require.NoError(t, m.Put(ctx, "k", []byte("new")))
	clock.Advance(50 * time.Minute)

	got, ok := m.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, []byte("new"), got)
}

func TestMemory_PutCopiesInput(t *testing.T) {
	m, _ := newTestMemory(time.Hour)
	ctx := context.Background()

	data := []byte("abc")
	require.NoError(t, m.Put(ctx, "k", data))
	data[0] = 'z'

	got, _ := m.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), got)
}

func TestMemory_Clear(t *testing.T) {
	m, _ := newTestMemory(time.Hour)
	ctx := context.Background()

	require.NoError(t, m.Put(ctx, "a", []byte("1")))
	require.NoError(t, m.Put(ctx, "b", []byte("2")))
	require.NoError(t, m.Clear(ctx))

	assert.Equal(t, 0, m.Len())
	_, ok := m.Get(ctx, "a")
	assert.False(t, ok)
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	m, _ := newTestMemory(time.Hour)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%5)
			_ = m.Put(ctx, key, []byte(key))
			got, ok := m.Get(ctx, key)
			if assert.True(t, ok) {
				assert.Equal(t, []byte(key), got)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 5, m.Len())
}

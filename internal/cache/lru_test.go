package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLRU(size int, ttl time.Duration) (*LRU[string, int], *time.Time) {
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewLRU[string, int](size, ttl)
	c.now = func() time.Time { return clock }
	return c, &clock
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c, _ := newTestLRU(2, time.Minute)

	c.Add("a", 1)
	c.Add("b", 2)
	_, _ = c.Get("a")
	c.Add("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestLRU_Expiry(t *testing.T) {
	c, clock := newTestLRU(4, time.Minute)

	c.Add("a", 1)
	c.Add("b", 2)
	*clock = clock.Add(30 * time.Second)
	c.Add("b", 20)
	*clock = clock.Add(45 * time.Second)

	_, ok := c.Get("a")
	assert.False(t, ok)
	v, ok := c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 20, v)
	assert.Len(t, c.index, 1, "expired entry dropped on read")
}

func TestLRU_Disabled(t *testing.T) {
	c, _ := newTestLRU(0, time.Minute)
	c.Add("a", 1)

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Empty(t, c.index)
}

func TestLRU_Purge(t *testing.T) {
	c, _ := newTestLRU(3, time.Minute)
	c.Add("a", 1)
	c.Add("b", 2)

	c.Purge()

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Empty(t, c.index)
	assert.Zero(t, c.recent.Len())

	c.Add("c", 3)
	v, ok := c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

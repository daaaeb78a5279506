// Package cache memoizes computed reports in memory.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// LRU holds at most size values, each for at most ttl. A non-positive size
// disables it.
type LRU[K comparable, V any] struct {
	mu     sync.Mutex
	size   int
	ttl    time.Duration
	now    func() time.Time
	index  map[K]*list.Element
	recent *list.List
}

type slot[K comparable, V any] struct {
	key     K
	value   V
	expires time.Time
}

func NewLRU[K comparable, V any](size int, ttl time.Duration) *LRU[K, V] {
	return &LRU[K, V]{
		size:   size,
		ttl:    ttl,
		now:    time.Now,
		index:  map[K]*list.Element{},
		recent: list.New(),
	}
}

// Get returns the live value for key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		s := elem.Value.(*slot[K, V])
		if !c.now().After(s.expires) {
			c.recent.MoveToFront(elem)
			return s.value, true
		}
		c.drop(elem)
	}
	var zero V
	return zero, false
}

// Add stores value under key, evicting the least recently used entries
// beyond size.
func (c *LRU[K, V]) Add(key K, value V) {
	if c.size <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		c.drop(elem)
	}
	c.index[key] = c.recent.PushFront(&slot[K, V]{key: key, value: value, expires: c.now().Add(c.ttl)})
	for c.recent.Len() > c.size {
		c.drop(c.recent.Back())
	}
}

// Purge empties the cache.
func (c *LRU[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.index)
	c.recent.Init()
}

func (c *LRU[K, V]) drop(elem *list.Element) {
	delete(c.index, elem.Value.(*slot[K, V]).key)
	c.recent.Remove(elem)
}

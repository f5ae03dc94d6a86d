package filter

import (
	"container/list"
	"sync"
)

// lruCache is a size-bounded, thread-safe LRU map
type lruCache[K comparable, V any] struct {
	size    int
	order   *list.List
	entries map[K]*list.Element
	mu      sync.Mutex
}

type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

func newLRUCache[K comparable, V any](size int) *lruCache[K, V] {
	return &lruCache[K, V]{
		size:    size,
		order:   list.New(),
		entries: make(map[K]*list.Element),
	}
}

// Get returns the value for key and marks it most recently used
func (c *lruCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(node)
	return node.Value.(*lruEntry[K, V]).value, true
}

// Put adds or replaces a value, evicting the least recently used entry when full
func (c *lruCache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, ok := c.entries[key]; ok {
		c.order.MoveToFront(node)
		node.Value.(*lruEntry[K, V]).value = value
		return
	}

	c.entries[key] = c.order.PushFront(&lruEntry[K, V]{key: key, value: value})

	if c.order.Len() > c.size {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*lruEntry[K, V]).key)
	}
}

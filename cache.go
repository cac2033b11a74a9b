package textpulse

import (
	"strconv"
	"sync"
)

// cacheKeyPrefix is how much of the input text participates in a cache key.
const cacheKeyPrefix = 100

// cacheKey derives a cache key from a text's leading bytes plus its full
// length. The length guards against distinct texts sharing a long common
// prefix.
func cacheKey(text string) string {
	n := len(text)
	if n > cacheKeyPrefix {
		text = text[:cacheKeyPrefix]
	}
	return text + "\x00" + strconv.Itoa(n)
}

// fifoCache is a bounded insertion-ordered cache. Eviction is strict
// FIFO-on-overflow: the oldest inserted key is removed first, regardless of
// access recency. Safe for concurrent use.
type fifoCache[V any] struct {
	mu      sync.Mutex
	cap     int
	order   []string
	entries map[string]V
}

func newFIFOCache[V any](capacity int) *fifoCache[V] {
	if capacity <= 0 {
		capacity = 1
	}
	return &fifoCache[V]{
		cap:     capacity,
		entries: make(map[string]V, capacity),
	}
}

func (c *fifoCache[V]) get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *fifoCache[V]) put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; exists {
		c.entries[key] = value
		return
	}
	if len(c.order) >= c.cap {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.order = append(c.order, key)
	c.entries[key] = value
}

func (c *fifoCache[V]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

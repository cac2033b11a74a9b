package textpulse

import (
	"strings"
	"sync"
	"testing"
)

func TestFIFOCacheEviction(t *testing.T) {
	c := newFIFOCache[int](2)
	c.put("a", 1)
	c.put("b", 2)
	c.put("c", 3)

	if _, ok := c.get("a"); ok {
		t.Error("oldest entry should have been evicted")
	}
	if v, ok := c.get("b"); !ok || v != 2 {
		t.Errorf("expected b=2, got %d (ok=%v)", v, ok)
	}
	if v, ok := c.get("c"); !ok || v != 3 {
		t.Errorf("expected c=3, got %d (ok=%v)", v, ok)
	}
	if c.len() != 2 {
		t.Errorf("expected len 2, got %d", c.len())
	}
}

func TestFIFOCacheIgnoresRecency(t *testing.T) {
	c := newFIFOCache[int](2)
	c.put("a", 1)
	c.put("b", 2)
	c.get("a") // a read must not protect the oldest entry
	c.put("c", 3)

	if _, ok := c.get("a"); ok {
		t.Error("eviction must follow insertion order, not access order")
	}
}

func TestFIFOCacheUpdate(t *testing.T) {
	c := newFIFOCache[int](2)
	c.put("a", 1)
	c.put("b", 2)
	c.put("a", 10) // update, not insertion

	if c.len() != 2 {
		t.Errorf("update should not grow the cache: len %d", c.len())
	}
	if v, _ := c.get("a"); v != 10 {
		t.Errorf("expected updated value 10, got %d", v)
	}

	c.put("c", 3)
	if _, ok := c.get("a"); ok {
		t.Error("a kept its original queue position and should be evicted first")
	}
}

func TestCacheKeyDistinguishesLengths(t *testing.T) {
	prefix := strings.Repeat("x", 150)
	a := cacheKey(prefix + "tail-one")
	b := cacheKey(prefix + "a-much-longer-tail-entirely")

	if a == b {
		t.Error("texts sharing a long prefix but differing in length must not collide")
	}
	if cacheKey("short") != cacheKey("short") {
		t.Error("identical texts must produce identical keys")
	}
}

func TestFIFOCacheConcurrent(t *testing.T) {
	c := newFIFOCache[int](8)
	var wg sync.WaitGroup
	keys := []string{"a", "b", "c", "d", "e", "f"}

	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := keys[(g+i)%len(keys)]
				c.put(k, i)
				c.get(k)
			}
		}(g)
	}
	wg.Wait()

	if c.len() > 8 {
		t.Errorf("cache exceeded capacity: %d", c.len())
	}
}

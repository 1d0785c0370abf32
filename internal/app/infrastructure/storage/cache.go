package storage

import (
	"github.com/maypok86/otter/v2"
	"sync/atomic"
	"time"
)

// Cache is a bounded in-memory cache keyed by string. Changing the
// capacity or TTL replaces the underlying cache and drops its entries.
type Cache[T any] struct {
	outer atomic.Pointer[otter.Cache[string, T]]

	ttl atomic.Int64
	cap atomic.Int64
}

func NewCache[T any](capacity int, ttl time.Duration) *Cache[T] {
	c := &Cache[T]{}
	c.ttl.Store(ttl.Nanoseconds())
	c.cap.Store(int64(capacity))
	c.rebuild()

	return c
}

func (c *Cache[T]) rebuild() {
	opts := &otter.Options[string, T]{}
	if capacity := c.cap.Load(); capacity > 0 {
		opts.MaximumSize = int(capacity)
	}
	if ttl := time.Duration(c.ttl.Load()); ttl > 0 {
		opts.ExpiryCalculator = otter.ExpiryWriting[string, T](ttl)
	}

	c.outer.Store(otter.Must(opts))
}

func (c *Cache[T]) Set(key string, val T) {
	c.outer.Load().Set(key, val)
}

func (c *Cache[T]) Get(key string) (T, bool) {
	return c.outer.Load().GetIfPresent(key)
}

func (c *Cache[T]) ClearKey(key string) {
	c.outer.Load().Invalidate(key)
}

func (c *Cache[T]) ClearAll() {
	c.outer.Load().InvalidateAll()
}

func (c *Cache[T]) Len() int {
	n := 0
	for range c.outer.Load().All() {
		n++
	}
	return n
}

func (c *Cache[T]) SetCapacity(capacity int) {
	c.cap.Store(int64(capacity))
	c.rebuild()
}

func (c *Cache[T]) GetCapacity() int {
	return int(c.cap.Load())
}

func (c *Cache[T]) SetTTL(newTTL time.Duration) {
	c.ttl.Store(newTTL.Nanoseconds())
	c.rebuild()
}

func (c *Cache[T]) GetTTL() time.Duration {
	return time.Duration(c.ttl.Load())
}

package storage

import (
	"github.com/stretchr/testify/assert"
	"ircwire/internal/app/ports"
	"testing"
	"time"
)

var _ ports.CachePort[int] = (*Cache[int])(nil)

func TestCache_SetGet(t *testing.T) {
	c := NewCache[string](16, time.Minute)

	c.Set("a", "1")
	c.Set("b", "2")

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	assert.Equal(t, 2, c.Len())

	c.ClearKey("a")
	_, ok = c.Get("a")
	assert.False(t, ok)

	c.ClearAll()
	_, ok = c.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCache_Settings(t *testing.T) {
	c := NewCache[int](8, 0)
	c.Set("a", 1)

	assert.Equal(t, 8, c.GetCapacity())
	assert.Equal(t, time.Duration(0), c.GetTTL())

	c.SetCapacity(32)
	c.SetTTL(time.Hour)
	assert.Equal(t, 32, c.GetCapacity())
	assert.Equal(t, time.Hour, c.GetTTL())

	_, ok := c.Get("a")
	assert.False(t, ok, "entries are dropped on rebuild")

	c.Set("b", 2)
	v, ok := c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestCache_Unbounded(t *testing.T) {
	c := NewCache[int](0, 0)
	for i := range 100 {
		c.Set(string(rune('a'+i%26))+string(rune('0'+i/26)), i)
	}
	assert.Equal(t, 100, c.Len())
}

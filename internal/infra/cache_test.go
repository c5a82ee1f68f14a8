package infra

import (
	"fmt"
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCache(10)
	defer c.Close()

	c.Set("key", "value", time.Minute)

	got, ok := c.Get("key")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.(string) != "value" {
		t.Errorf("Get() = %v, want %q", got, "value")
	}
}

func TestCacheMiss(t *testing.T) {
	c := NewCache(10)
	defer c.Close()

	if _, ok := c.Get("missing"); ok {
		t.Error("expected cache miss for unknown key")
	}
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(10)
	defer c.Close()

	c.Set("short", "value", -time.Second) // already expired

	if _, ok := c.Get("short"); ok {
		t.Error("expected expired entry to miss")
	}
	if c.Size() != 0 {
		t.Errorf("Size() = %d after expired Get, want 0", c.Size())
	}
}

func TestCacheDelete(t *testing.T) {
	c := NewCache(10)
	defer c.Close()

	c.Set("key", 1, time.Minute)
	c.Delete("key")

	if _, ok := c.Get("key"); ok {
		t.Error("expected miss after Delete")
	}
}

func TestCacheDeletePrefix(t *testing.T) {
	c := NewCache(10)
	defer c.Close()

	c.Set("requests:abc:1", 1, time.Minute)
	c.Set("requests:abc:2", 2, time.Minute)
	c.Set("token:abc", 3, time.Minute)

	c.DeletePrefix("requests:abc:")

	if _, ok := c.Get("requests:abc:1"); ok {
		t.Error("prefixed entry 1 should be gone")
	}
	if _, ok := c.Get("requests:abc:2"); ok {
		t.Error("prefixed entry 2 should be gone")
	}
	if _, ok := c.Get("token:abc"); !ok {
		t.Error("unrelated entry should survive")
	}
}

func TestCacheEviction(t *testing.T) {
	c := NewCache(3)
	defer c.Close()

	for i := 0; i < 3; i++ {
		c.Set(fmt.Sprintf("key%d", i), i, time.Minute)
		time.Sleep(time.Millisecond) // distinct access times
	}

	// Touch key0 so key1 becomes the oldest.
	if _, ok := c.Get("key0"); !ok {
		t.Fatal("key0 should be present")
	}

	c.Set("key3", 3, time.Minute)

	if c.Size() != 3 {
		t.Errorf("Size() = %d, want 3", c.Size())
	}
	if _, ok := c.Get("key1"); ok {
		t.Error("key1 was least recently used, should be evicted")
	}
	if _, ok := c.Get("key0"); !ok {
		t.Error("recently accessed key0 should survive eviction")
	}
	if _, ok := c.Get("key3"); !ok {
		t.Error("newly inserted key3 should be present")
	}
}

func TestCacheSweep(t *testing.T) {
	c := NewCache(10)
	defer c.Close()

	c.Set("expired", 1, -time.Second)
	c.Set("fresh", 2, time.Hour)
	c.sweep()

	if c.Size() != 1 {
		t.Errorf("Size() after sweep = %d, want 1", c.Size())
	}
	if _, ok := c.Get("fresh"); !ok {
		t.Error("fresh entry should survive sweep")
	}
}

func TestCacheDefaultLimit(t *testing.T) {
	c := NewCache(0)
	defer c.Close()

	if c.maxEntries != DefaultMaxCacheEntries {
		t.Errorf("maxEntries = %d, want %d", c.maxEntries, DefaultMaxCacheEntries)
	}
}

func TestCacheCloseIdempotent(t *testing.T) {
	c := NewCache(10)
	c.Close()
	c.Close() // must not panic
}

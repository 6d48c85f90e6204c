package cache

import (
	"context"
	"testing"
	"time"

	"github.com/upi-kavach/kavach/internal/domain"
)

func TestLRUCacheGetSet(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(10)

	if err := c.Set(ctx, "k1", []byte("v1"), time.Minute); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	val, err := c.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if string(val) != "v1" {
		t.Errorf("Get() = %q, want v1", val)
	}

	t.Run("miss returns nil nil", func(t *testing.T) {
		val, err := c.Get(ctx, "missing")
		if err != nil || val != nil {
			t.Errorf("Get(missing) = %v, %v, want nil, nil", val, err)
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		if err := c.Set(ctx, "k1", []byte("v2"), time.Minute); err != nil {
			t.Fatalf("Set() error: %v", err)
		}
		val, _ := c.Get(ctx, "k1")
		if string(val) != "v2" {
			t.Errorf("Get() = %q, want v2", val)
		}
	})
}

func TestLRUCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(10)

	if err := c.Set(ctx, "short", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	val, err := c.Get(ctx, "short")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if val != nil {
		t.Errorf("Get() after expiry = %q, want nil", val)
	}
}

func TestLRUCacheEviction(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(2)

	c.Set(ctx, "a", []byte("1"), time.Minute)
	c.Set(ctx, "b", []byte("2"), time.Minute)
	c.Get(ctx, "a") // a becomes most recently used
	c.Set(ctx, "c", []byte("3"), time.Minute)

	if val, _ := c.Get(ctx, "b"); val != nil {
		t.Error("least recently used entry survived eviction")
	}
	if val, _ := c.Get(ctx, "a"); val == nil {
		t.Error("recently used entry was evicted")
	}

	size, capacity := c.Stats()
	if size != 2 || capacity != 2 {
		t.Errorf("Stats() = %d, %d, want 2, 2", size, capacity)
	}
}

func TestLRUCacheDelete(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(10)

	c.Set(ctx, "k", []byte("v"), time.Minute)
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if val, _ := c.Get(ctx, "k"); val != nil {
		t.Error("deleted entry still present")
	}
}

func TestLRUCacheCounters(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(10)

	for want := int64(1); want <= 3; want++ {
		got, err := c.IncrementCounter(ctx, "sessions", time.Minute)
		if err != nil {
			t.Fatalf("IncrementCounter() error: %v", err)
		}
		if got != want {
			t.Errorf("IncrementCounter() = %d, want %d", got, want)
		}
	}

	t.Run("window reset", func(t *testing.T) {
		if _, err := c.IncrementCounter(ctx, "burst", 10*time.Millisecond); err != nil {
			t.Fatal(err)
		}
		time.Sleep(20 * time.Millisecond)
		got, err := c.IncrementCounter(ctx, "burst", time.Minute)
		if err != nil {
			t.Fatal(err)
		}
		if got != 1 {
			t.Errorf("counter after window lapse = %d, want 1", got)
		}
	})
}

func TestNewFactory(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		c, err := New(domain.CacheConfig{Type: "memory", LocalMaxSize: 100})
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		defer c.Close()
		if _, ok := c.(*LRUCache); !ok {
			t.Errorf("New(memory) = %T, want *LRUCache", c)
		}
	})

	t.Run("unsupported type", func(t *testing.T) {
		if _, err := New(domain.CacheConfig{Type: "memcached"}); err == nil {
			t.Fatal("expected error for unsupported cache type")
		}
	})
}

package cache

import (
	"context"
	"errors"
	"testing"
)

func TestNewDisabledReturnsNilCache(t *testing.T) {
	c, err := New(Config{Enabled: false})
	if err != nil {
		t.Fatalf("New disabled: %v", err)
	}
	if c != nil {
		t.Fatal("expected nil cache when disabled")
	}
}

func TestNewEnabledRequiresAddress(t *testing.T) {
	_, err := New(Config{Enabled: true, Address: ""})
	if !errors.Is(err, ErrEmptyAddress) {
		t.Fatalf("err = %v, want ErrEmptyAddress", err)
	}
}

func TestNilCacheIsSafe(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	var out map[string]int
	if err := c.Get(ctx, "k", &out); !errors.Is(err, ErrMiss) {
		t.Errorf("Get on nil cache = %v, want ErrMiss", err)
	}
	if err := c.Set(ctx, "k", map[string]int{"a": 1}); err != nil {
		t.Errorf("Set on nil cache = %v, want nil", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close on nil cache = %v, want nil", err)
	}
}

package cache

import (
	"strconv"
	"testing"
)

func TestCache_GetSet(t *testing.T) {
	c := New[string, int](10)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get() on an empty cache reported a hit")
	}

	c.Set("a", 1)
	got, ok := c.Get("a")
	if !ok || got != 1 {
		t.Errorf("Get(a) = (%d, %v), want (1, true)", got, ok)
	}

	c.Set("a", 2)
	if got, _ := c.Get("a"); got != 2 {
		t.Errorf("Get(a) = %d after overwrite, want 2", got)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCache_GetOrCreate(t *testing.T) {
	c := New[string, int](10)

	calls := 0
	build := func() int {
		calls++
		return 42
	}

	if got := c.GetOrCreate("k", build); got != 42 {
		t.Errorf("GetOrCreate() = %d, want 42", got)
	}
	if got := c.GetOrCreate("k", build); got != 42 {
		t.Errorf("second GetOrCreate() = %d, want 42", got)
	}
	if calls != 1 {
		t.Errorf("create ran %d times, want 1", calls)
	}
}

func TestCache_Eviction(t *testing.T) {
	c := New[int, int](8)

	for i := 0; i < 8; i++ {
		c.Set(i, i)
	}
	// Touch the early entries so the later ones age out.
	for i := 0; i < 4; i++ {
		c.Get(i)
	}

	c.Set(100, 100)
	if got := c.Len(); got > 8 {
		t.Fatalf("Len() = %d after overflow, want at most the limit", got)
	}

	for i := 0; i < 4; i++ {
		if _, ok := c.Get(i); !ok {
			t.Errorf("recently used key %d was evicted", i)
		}
	}
	if _, ok := c.Get(100); !ok {
		t.Error("the just-inserted key was evicted")
	}
}

func TestCache_Unlimited(t *testing.T) {
	c := New[int, int](0)

	for i := 0; i < 1000; i++ {
		c.Set(i, i)
	}
	if c.Len() != 1000 {
		t.Errorf("Len() = %d with no limit, want 1000", c.Len())
	}
}

func TestCache_Clear(t *testing.T) {
	c := New[string, int](10)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("Get() hit after Clear")
	}
}

func BenchmarkCache_GetOrCreate(b *testing.B) {
	c := New[string, int](1000)
	for i := 0; i < 100; i++ {
		c.Set(strconv.Itoa(i), i)
	}

	for i := 0; i < b.N; i++ {
		c.GetOrCreate("50", func() int { return 50 })
	}
}

package cache

import (
	"strconv"
	"testing"
)

func TestLRU_SetGet(t *testing.T) {
	c := NewLRU[string, int](4)

	if _, ok := c.Get("a"); ok {
		t.Fatal("Get on empty cache should miss")
	}

	c.Set("a", 1)
	v, ok := c.Get("a")
	if !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v, want 1, true", v, ok)
	}

	c.Set("a", 2)
	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("Get(a) after overwrite = %d, want 2", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[int, int](2)
	c.Set(1, 1)
	c.Set(2, 2)
	c.Get(1) // 2 is now the oldest
	c.Set(3, 3)

	if c.Contains(2) {
		t.Error("entry 2 should have been evicted")
	}
	if !c.Contains(1) || !c.Contains(3) {
		t.Error("entries 1 and 3 should remain")
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestLRU_UnboundedNeverEvicts(t *testing.T) {
	c := NewLRU[int, int](0)
	for i := 0; i < 10000; i++ {
		c.Set(i, i)
	}
	if c.Len() != 10000 {
		t.Errorf("Len = %d, want 10000", c.Len())
	}
	if c.Stats().Evictions != 0 {
		t.Errorf("Evictions = %d, want 0", c.Stats().Evictions)
	}
}

func TestLRU_GetOrCreate(t *testing.T) {
	c := NewLRU[string, int](0)
	calls := 0
	create := func() int {
		calls++
		return 42
	}

	v, created := c.GetOrCreate("k", create)
	if v != 42 || !created {
		t.Errorf("first GetOrCreate = %d, %v, want 42, true", v, created)
	}
	v, created = c.GetOrCreate("k", create)
	if v != 42 || created {
		t.Errorf("second GetOrCreate = %d, %v, want 42, false", v, created)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	st := c.Stats()
	if st.Hits != 1 || st.Misses != 1 {
		t.Errorf("Stats = %+v, want 1 hit and 1 miss", st)
	}
}

func TestLRU_DeleteAndClear(t *testing.T) {
	c := NewLRU[int, string](8)
	c.Set(1, "one")
	c.Set(2, "two")

	if !c.Delete(1) {
		t.Error("Delete(1) should report true")
	}
	if c.Delete(1) {
		t.Error("second Delete(1) should report false")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", c.Len())
	}
	// The list must be usable after Clear.
	c.Set(3, "three")
	if v, ok := c.Get(3); !ok || v != "three" {
		t.Errorf("Get(3) = %q, %v", v, ok)
	}
}

func TestLRU_NegativeCapacity(t *testing.T) {
	c := NewLRU[int, int](-5)
	if c.Capacity() != 0 {
		t.Errorf("Capacity = %d, want 0", c.Capacity())
	}
}

func BenchmarkLRUGet(b *testing.B) {
	c := NewLRU[string, int](1000)
	for i := 0; i < 100; i++ {
		c.Set(strconv.Itoa(i), i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("50")
	}
}

func BenchmarkLRUSetEvicting(b *testing.B) {
	c := NewLRU[int, int](64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set(i, i)
	}
}

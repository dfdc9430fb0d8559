package lru

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidCapacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
	}{
		{name: "zero", capacity: 0},
		{name: "negative", capacity: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New[string, int](tt.capacity)
			assert.ErrorIs(t, err, ErrInvalidCapacity)
		})
	}
}

func TestPutGet_RoundTrip(t *testing.T) {
	c, err := New[string, int](4)
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCapacityInvariant(t *testing.T) {
	c, err := New[int, int](10)
	require.NoError(t, err)

	for i := range 100 {
		c.Put(i, i*i)
		assert.LessOrEqual(t, c.Len(), 10)
	}
	assert.Equal(t, 10, c.Len())

	// The survivors are the 10 most recent keys.
	for i := 90; i < 100; i++ {
		v, ok := c.Get(i)
		require.True(t, ok, "key %d should be resident", i)
		assert.Equal(t, i*i, v)
	}
}

func TestLRUOrdering(t *testing.T) {
	c, err := New[string, int](3)
	require.NoError(t, err)

	c.Put("k1", 1)
	c.Put("k2", 2)
	c.Put("k3", 3)

	// Touch k2 so k1 becomes the eviction candidate.
	_, ok := c.Get("k2")
	require.True(t, ok)

	c.Put("k4", 4)

	_, ok = c.Get("k1")
	assert.False(t, ok, "k1 was least recently touched and must be evicted")
	for _, k := range []string{"k2", "k3", "k4"} {
		_, ok := c.Peek(k)
		assert.True(t, ok, "%s should survive", k)
	}
}

func TestPromotionOnRead(t *testing.T) {
	c, err := New[int, string](2)
	require.NoError(t, err)

	c.Put(1, "one")
	c.Put(2, "two")

	// Reading 1 makes 2 the tail.
	c.Get(1)
	c.Put(3, "three")

	_, ok := c.Peek(2)
	assert.False(t, ok)
	_, ok = c.Peek(1)
	assert.True(t, ok)
}

func TestUpdateSemantics(t *testing.T) {
	c, err := New[int, string](2)
	require.NoError(t, err)

	c.Put(1, "one")
	c.Put(2, "two")

	// Overwrite replaces the value, promotes the entry, and leaves the
	// lookup counters alone.
	c.Put(1, "uno")

	s := c.Stats()
	assert.Zero(t, s.Hits)
	assert.Zero(t, s.Misses)

	v, ok := c.Peek(1)
	require.True(t, ok)
	assert.Equal(t, "uno", v)

	// The overwrite promoted key 1, so key 2 evicts next.
	c.Put(3, "three")
	_, ok = c.Peek(2)
	assert.False(t, ok)
}

func TestScenario(t *testing.T) {
	c, err := New[int, string](3)
	require.NoError(t, err)

	c.Put(1, "Alice")
	c.Put(2, "Bob")
	c.Put(3, "Charlie")

	v, ok := c.Get(2)
	require.True(t, ok)
	assert.Equal(t, "Bob", v)

	c.Put(4, "Diana")

	_, ok = c.Get(1)
	assert.False(t, ok, "key 1 was least recently used")

	v, ok = c.Get(4)
	require.True(t, ok)
	assert.Equal(t, "Diana", v)

	assert.Equal(t, uint64(1), c.Stats().Evictions)
}

func TestClear(t *testing.T) {
	c, err := New[string, int](3)
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")
	c.Get("nope")

	c.Clear()

	assert.Equal(t, 0, c.Len())
	_, ok := c.Peek("a")
	assert.False(t, ok)

	// Clear keeps the counters.
	s := c.Stats()
	assert.Equal(t, uint64(1), s.Hits)
	assert.Equal(t, uint64(1), s.Misses)

	// The cache stays fully usable.
	for i := range 6 {
		c.Put(fmt.Sprintf("k%d", i), i)
	}
	assert.Equal(t, 3, c.Len())
}

func TestHitRate(t *testing.T) {
	c, err := New[string, int](4)
	require.NoError(t, err)

	// No lookups yet: defined as 0, not NaN.
	assert.Zero(t, c.HitRate())

	c.Put("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("a")
	c.Get("b") // miss

	assert.InDelta(t, 75.0, c.HitRate(), 0.001)
}

func TestResetStats(t *testing.T) {
	c, err := New[string, int](2)
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3) // evicts "a"
	c.Get("b")
	c.Get("a") // miss

	c.ResetStats()

	s := c.Stats()
	assert.Zero(t, s.Hits)
	assert.Zero(t, s.Misses)
	assert.Zero(t, s.Evictions)

	// Contents are untouched.
	assert.Equal(t, 2, c.Len())
	_, ok := c.Peek("b")
	assert.True(t, ok)
}

func TestKeys(t *testing.T) {
	c, err := New[int, string](4)
	require.NoError(t, err)

	c.Put(1, "a")
	c.Put(2, "b")
	c.Put(3, "c")
	c.Get(1)

	assert.Equal(t, []int{1, 3, 2}, c.Keys())
}

func TestPeek_NoPromotionNoStats(t *testing.T) {
	c, err := New[int, string](2)
	require.NoError(t, err)

	c.Put(1, "one")
	c.Put(2, "two")

	v, ok := c.Peek(1)
	require.True(t, ok)
	assert.Equal(t, "one", v)

	_, ok = c.Peek(9)
	assert.False(t, ok)

	s := c.Stats()
	assert.Zero(t, s.Hits)
	assert.Zero(t, s.Misses)

	// Peek did not promote: key 1 is still the tail.
	c.Put(3, "three")
	_, ok = c.Peek(1)
	assert.False(t, ok)
}

func TestRemove(t *testing.T) {
	c, err := New[string, int](3)
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)

	assert.True(t, c.Remove("a"))
	assert.False(t, c.Remove("a"))
	assert.Equal(t, 1, c.Len())

	// Removal is not an eviction.
	assert.Zero(t, c.Stats().Evictions)

	// The freed slot is reusable.
	c.Put("c", 3)
	c.Put("d", 4)
	assert.Equal(t, 3, c.Len())
}

func TestDump(t *testing.T) {
	c, err := New[int, string](3)
	require.NoError(t, err)

	c.Put(1, "Alice")
	c.Put(2, "Bob")
	c.Get(1)

	dump := c.Dump()
	assert.Contains(t, dump, "=== Cache Stats ===")
	assert.Contains(t, dump, "Size:      2 of 3")
	assert.Contains(t, dump, "  1: Alice\n  2: Bob\n")
}

// TestChurn drives sustained eviction pressure through a small cache and
// checks that the slab recycling keeps the resident set exact.
func TestChurn(t *testing.T) {
	const capacity = 8

	c, err := New[int, int](capacity)
	require.NoError(t, err)

	for i := range 1000 {
		c.Put(i, i)
		require.LessOrEqual(t, c.Len(), capacity)

		if i >= capacity {
			// Exactly the last `capacity` keys are resident.
			_, ok := c.Peek(i - capacity)
			require.False(t, ok, "key %d should have been evicted", i-capacity)
		}
		_, ok := c.Peek(i)
		require.True(t, ok)
	}

	want := make([]int, 0, capacity)
	for i := 999; i >= 1000-capacity; i-- {
		want = append(want, i)
	}
	assert.Equal(t, want, c.Keys())
	assert.Equal(t, uint64(1000-capacity), c.Stats().Evictions)
}

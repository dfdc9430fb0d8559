package lru

import (
	"fmt"
	"strings"
)

// stats holds the cumulative cache counters.
type stats struct {
	hits      uint64
	misses    uint64
	evictions uint64
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns the percentage of lookups answered from the cache,
// 0 when nothing has been looked up yet.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// String implements fmt.Stringer.
func (s Stats) String() string {
	return fmt.Sprintf("Cache{hits: %d, misses: %d, evictions: %d, hit rate: %.1f%%}",
		s.Hits, s.Misses, s.Evictions, s.HitRate())
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Hits:      c.stats.hits,
		Misses:    c.stats.misses,
		Evictions: c.stats.evictions,
	}
}

// HitRate returns the percentage of lookups answered from the cache.
func (c *Cache[K, V]) HitRate() float64 {
	return c.Stats().HitRate()
}

// ResetStats zeroes the counters. Resident entries are not affected.
func (c *Cache[K, V]) ResetStats() {
	c.stats = stats{}
}

func (c *Cache[K, V]) String() string {
	return c.Stats().String()
}

// Dump returns a multi-line rendering of the counters and the resident
// entries from most to least recently used.
func (c *Cache[K, V]) Dump() string {
	s := c.Stats()

	var b strings.Builder
	b.WriteString("=== Cache Stats ===\n")
	fmt.Fprintf(&b, "Size:      %d of %d\n", c.Len(), c.Cap())
	fmt.Fprintf(&b, "Hits:      %d\n", s.Hits)
	fmt.Fprintf(&b, "Misses:    %d\n", s.Misses)
	fmt.Fprintf(&b, "Evictions: %d\n", s.Evictions)
	fmt.Fprintf(&b, "Hit rate:  %.1f%%\n", s.HitRate())
	b.WriteString("Contents (MRU to LRU):\n")
	for i := c.head; i != none; i = c.entries[i].next {
		fmt.Fprintf(&b, "  %v: %v\n", c.entries[i].key, c.entries[i].value)
	}

	return b.String()
}

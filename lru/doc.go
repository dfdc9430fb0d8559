// Package lru implements a fixed-capacity cache with least-recently-used
// eviction.
//
// All entries live in one slab allocated at construction. The recency
// order is a doubly linked list threaded through slab indexes, and a map
// gives O(1) key lookup, so Get and Put never allocate per operation once
// the cache is warm.
//
// # Usage
//
//	c, err := lru.New[int, string](3)
//	if err != nil {
//	    // invalid capacity
//	}
//
//	c.Put(1, "Alice")
//	v, ok := c.Get(1) // "Alice", true
//
// # Recency and Counters
//
// Get and Put both count as use: reading an entry or overwriting its
// value promotes it to most recently used. The hit/miss counters track
// lookups only; Put on an existing key changes no counters. HitRate
// reports hits as a percentage of lookups, 0 before the first lookup.
//
// # Owned Values
//
// OwnedCache runs a release callback exactly once for every value that
// leaves the cache (overwrite, eviction, removal, Close). Use it when
// cached values hold resources such as pool blocks or file handles.
//
// # Thread Safety
//
// Cache and OwnedCache are not safe for concurrent use. Wrap a Cache in a
// SafeCache when goroutines share it.
package lru

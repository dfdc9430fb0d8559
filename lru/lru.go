package lru

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCapacity is returned when the capacity is not positive.
var ErrInvalidCapacity = errors.New("lru: capacity must be positive")

// none marks the end of a chain in the entry slab.
const none = int32(-1)

// entry is a slot in the cache slab. Resident entries sit on the recency
// list through prev/next; vacant entries chain through next only.
type entry[K comparable, V any] struct {
	key   K
	value V
	prev  int32
	next  int32
}

// Cache is a fixed-capacity cache with least-recently-used eviction.
//
// Entries are stored in a slab of exactly capacity slots; the recency
// order is a doubly linked list of slab indexes from most recently used
// (head) to least recently used (tail). Get and Put run in O(1).
//
// Cache is NOT safe for concurrent use; see SafeCache.
type Cache[K comparable, V any] struct {
	capacity int
	entries  []entry[K, V]
	index    map[K]int32
	head     int32 // most recently used
	tail     int32 // least recently used, next eviction candidate
	free     int32 // vacant slot chain

	stats stats
}

// New creates a Cache holding at most capacity entries.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	if capacity > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrInvalidCapacity, capacity, math.MaxInt32)
	}

	c := &Cache[K, V]{
		capacity: capacity,
		entries:  make([]entry[K, V], capacity),
		index:    make(map[K]int32, capacity),
	}
	c.reset()

	return c, nil
}

// reset empties the recency list and chains every slot into the free list.
func (c *Cache[K, V]) reset() {
	for i := range c.entries {
		c.entries[i] = entry[K, V]{prev: none, next: int32(i + 1)}
	}
	c.entries[c.capacity-1].next = none
	c.free = 0
	c.head = none
	c.tail = none
	clear(c.index)
}

// Get returns the value stored under key and promotes the entry to most
// recently used. The second result reports whether the key was resident.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if i, ok := c.index[key]; ok {
		c.stats.hits++
		c.moveToFront(i)
		return c.entries[i].value, true
	}

	c.stats.misses++
	var zero V
	return zero, false
}

// Peek returns the value stored under key without promoting the entry and
// without touching the counters.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	if i, ok := c.index[key]; ok {
		return c.entries[i].value, true
	}
	var zero V
	return zero, false
}

// Put stores value under key and makes the entry most recently used.
//
// Overwriting an existing key replaces the value in place and promotes
// the entry; the hit/miss counters track lookups only and stay unchanged.
// A new key entering a full cache evicts the least recently used entry
// first.
func (c *Cache[K, V]) Put(key K, value V) {
	if i, ok := c.index[key]; ok {
		c.entries[i].value = value
		c.moveToFront(i)
		return
	}

	if len(c.index) == c.capacity {
		c.evict()
	}

	i := c.free
	c.free = c.entries[i].next

	e := &c.entries[i]
	e.key = key
	e.value = value
	c.pushFront(i)
	c.index[key] = i
}

// Remove drops key from the cache, reporting whether it was resident.
// Removal is not an eviction: the eviction counter stays unchanged.
func (c *Cache[K, V]) Remove(key K) bool {
	i, ok := c.index[key]
	if !ok {
		return false
	}

	delete(c.index, key)
	c.unlink(i)
	c.vacate(i)

	return true
}

// Clear empties the cache. The counters keep their values; use ResetStats
// to zero them.
func (c *Cache[K, V]) Clear() {
	c.reset()
}

// Len returns the number of resident entries.
func (c *Cache[K, V]) Len() int {
	return len(c.index)
}

// Cap returns the maximum number of entries.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Keys returns the resident keys from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.index))
	for i := c.head; i != none; i = c.entries[i].next {
		keys = append(keys, c.entries[i].key)
	}
	return keys
}

// evict removes the least recently used entry.
func (c *Cache[K, V]) evict() {
	i := c.tail
	delete(c.index, c.entries[i].key)
	c.unlink(i)
	c.vacate(i)
	c.stats.evictions++
}

// vacate clears a slot and returns it to the free chain.
func (c *Cache[K, V]) vacate(i int32) {
	c.entries[i] = entry[K, V]{prev: none, next: c.free}
	c.free = i
}

func (c *Cache[K, V]) pushFront(i int32) {
	e := &c.entries[i]
	e.prev = none
	e.next = c.head

	if c.head != none {
		c.entries[c.head].prev = i
	}
	c.head = i
	if c.tail == none {
		c.tail = i
	}
}

func (c *Cache[K, V]) unlink(i int32) {
	e := &c.entries[i]

	if e.prev != none {
		c.entries[e.prev].next = e.next
	} else {
		c.head = e.next
	}
	if e.next != none {
		c.entries[e.next].prev = e.prev
	} else {
		c.tail = e.prev
	}

	e.prev = none
	e.next = none
}

func (c *Cache[K, V]) moveToFront(i int32) {
	if c.head == i {
		return
	}
	c.unlink(i)
	c.pushFront(i)
}

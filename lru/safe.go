package lru

import "sync"

// SafeCache is a mutex-protected wrapper around Cache for concurrent
// access. All operations are thread-safe but come with the overhead of
// mutex locking; single-owner caches should use Cache directly.
type SafeCache[K comparable, V any] struct {
	mu    sync.Mutex
	cache *Cache[K, V]
}

// NewSafe creates a thread-safe cache with the same parameters as New.
func NewSafe[K comparable, V any](capacity int) (*SafeCache[K, V], error) {
	c, err := New[K, V](capacity)
	if err != nil {
		return nil, err
	}
	return &SafeCache[K, V]{cache: c}, nil
}

// Get thread-safely looks up key and promotes the entry. See Cache.Get.
func (s *SafeCache[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Get(key)
}

// Peek thread-safely looks up key without promotion. See Cache.Peek.
func (s *SafeCache[K, V]) Peek(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Peek(key)
}

// Put thread-safely stores value under key. See Cache.Put.
func (s *SafeCache[K, V]) Put(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Put(key, value)
}

// Remove thread-safely drops key from the cache. See Cache.Remove.
func (s *SafeCache[K, V]) Remove(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Remove(key)
}

// Clear empties the cache, keeping the counters.
func (s *SafeCache[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Clear()
}

// Len returns the number of resident entries.
func (s *SafeCache[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}

// Cap returns the maximum number of entries.
func (s *SafeCache[K, V]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Cap()
}

// Keys returns the resident keys from most to least recently used.
func (s *SafeCache[K, V]) Keys() []K {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Keys()
}

// Stats returns a snapshot of the cache counters.
func (s *SafeCache[K, V]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Stats()
}

// HitRate returns the percentage of lookups answered from the cache.
func (s *SafeCache[K, V]) HitRate() float64 {
	return s.Stats().HitRate()
}

// ResetStats zeroes the counters.
func (s *SafeCache[K, V]) ResetStats() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.ResetStats()
}

func (s *SafeCache[K, V]) String() string {
	return s.Stats().String()
}

// Dump returns a multi-line rendering of counters and contents.
func (s *SafeCache[K, V]) Dump() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Dump()
}

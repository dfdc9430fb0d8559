package lru

// OwnedCache is a Cache variant that owns its values: a release function
// supplied at construction runs exactly once for every value that leaves
// the cache, whether by overwrite, eviction, removal, or Close.
//
// OwnedCache keeps no hit/miss counters; its contract is deterministic
// single-invocation cleanup. The release function runs after the cache
// has forgotten the value and must not call back into the cache.
//
// OwnedCache is NOT safe for concurrent use.
type OwnedCache[K comparable, V any] struct {
	inner   *Cache[K, V]
	release func(V)
}

// NewOwned creates an OwnedCache holding at most capacity entries.
// release may be nil, in which case departing values are simply dropped.
func NewOwned[K comparable, V any](capacity int, release func(V)) (*OwnedCache[K, V], error) {
	inner, err := New[K, V](capacity)
	if err != nil {
		return nil, err
	}
	return &OwnedCache[K, V]{inner: inner, release: release}, nil
}

// Get returns the value stored under key and promotes the entry. The
// cache keeps ownership: callers must not retain the value past the
// entry's lifetime.
func (c *OwnedCache[K, V]) Get(key K) (V, bool) {
	in := c.inner
	if i, ok := in.index[key]; ok {
		in.moveToFront(i)
		return in.entries[i].value, true
	}

	var zero V
	return zero, false
}

// Put stores value under key and makes the entry most recently used. An
// overwritten value is released; a new key entering a full cache evicts
// and releases the least recently used value first.
func (c *OwnedCache[K, V]) Put(key K, value V) {
	in := c.inner

	if i, ok := in.index[key]; ok {
		old := in.entries[i].value
		in.entries[i].value = value
		in.moveToFront(i)
		c.dispose(old)
		return
	}

	if len(in.index) == in.capacity {
		evicted := in.entries[in.tail].value
		in.evict()
		c.dispose(evicted)
	}

	in.Put(key, value)
}

// Remove drops key from the cache and releases its value, reporting
// whether the key was resident.
func (c *OwnedCache[K, V]) Remove(key K) bool {
	in := c.inner

	i, ok := in.index[key]
	if !ok {
		return false
	}

	v := in.entries[i].value
	delete(in.index, key)
	in.unlink(i)
	in.vacate(i)
	c.dispose(v)

	return true
}

// Len returns the number of resident entries.
func (c *OwnedCache[K, V]) Len() int {
	return c.inner.Len()
}

// Cap returns the maximum number of entries.
func (c *OwnedCache[K, V]) Cap() int {
	return c.inner.Cap()
}

// Keys returns the resident keys from most to least recently used.
func (c *OwnedCache[K, V]) Keys() []K {
	return c.inner.Keys()
}

// Close releases every resident value and empties the cache. It is
// idempotent.
func (c *OwnedCache[K, V]) Close() error {
	in := c.inner
	for i := in.head; i != none; i = in.entries[i].next {
		c.dispose(in.entries[i].value)
	}
	in.reset()
	return nil
}

func (c *OwnedCache[K, V]) dispose(v V) {
	if c.release != nil {
		c.release(v)
	}
}

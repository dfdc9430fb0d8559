package blockpool

import "sync"

// SafePool is a mutex-protected wrapper around Pool for concurrent access.
// All operations are thread-safe but come with the overhead of mutex
// locking; single-owner pools should use Pool directly.
type SafePool struct {
	mu   sync.Mutex
	pool *Pool
}

// NewSafe creates a thread-safe pool with the same parameters as New.
func NewSafe(blockSize, blockCount int, opts ...Option) (*SafePool, error) {
	p, err := New(blockSize, blockCount, opts...)
	if err != nil {
		return nil, err
	}
	return &SafePool{pool: p}, nil
}

// Allocate thread-safely pops a free block. See Pool.Allocate.
func (s *SafePool) Allocate() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool.Allocate()
}

// Deallocate thread-safely returns a block to the pool. See Pool.Deallocate.
func (s *SafePool) Deallocate(b []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pool.Deallocate(b)
}

// BlockSize returns the size of each block in bytes.
func (s *SafePool) BlockSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool.BlockSize()
}

// Capacity returns the total number of blocks.
func (s *SafePool) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool.Capacity()
}

// InUse returns the number of outstanding blocks.
func (s *SafePool) InUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool.InUse()
}

// Free returns the number of blocks available for allocation.
func (s *SafePool) Free() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool.Free()
}

// Stats returns a snapshot of the pool counters.
func (s *SafePool) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool.Stats()
}

// ResetStats zeroes the cumulative counters.
func (s *SafePool) ResetStats() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pool.ResetStats()
}

func (s *SafePool) String() string {
	return s.Stats().String()
}

// Dump returns a multi-line rendering of the pool counters.
func (s *SafePool) Dump() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool.Dump()
}

// Close releases the arena. It is idempotent.
func (s *SafePool) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool.Close()
}

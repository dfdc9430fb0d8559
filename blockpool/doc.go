// Package blockpool implements a fixed-capacity block allocator.
//
// A Pool reserves one contiguous arena up front, carves it into equally
// sized blocks, and serves Allocate/Deallocate in O(1) through an
// index-based free list. Nothing grows after construction: when every
// block is out, Allocate fails fast with ErrPoolExhausted until a block
// comes back.
//
// # Usage
//
//	pool, err := blockpool.New(64, 1024) // 1024 blocks of 64 bytes
//	if err != nil {
//	    // configuration or reservation failure
//	}
//	defer pool.Close()
//
//	block, err := pool.Allocate()
//	if errors.Is(err, blockpool.ErrPoolExhausted) {
//	    // back off, free something, or fail the request
//	}
//	defer pool.Deallocate(block)
//
// # Ownership
//
// The pool does not track which blocks are outstanding. Deallocating a
// block twice corrupts the free list exactly like any manual allocator;
// the pool detects only blocks that never came from its arena (those are
// counted, optionally logged, and ignored). Callers own the discipline.
//
// # Off-Heap Arenas
//
// WithOffHeap() backs the arena with an anonymous memory mapping outside
// the Go heap. Large pools stop contributing to GC scan time, and Close
// returns the memory to the OS in one munmap. Off-heap blocks must not
// store Go pointers.
//
// # Thread Safety
//
// Pool is not safe for concurrent use. Wrap it in a SafePool when
// goroutines share it; single-owner pools skip the lock entirely.
package blockpool

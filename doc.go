// Package memgo provides fixed-capacity building blocks for memory-bound
// Go programs: a fixed-block pool allocator, a bounded LRU cache, a shared
// byte budget, and a small worker queue.
//
// Capacity is decided once, at construction. Nothing in this module grows,
// rehashes, or reallocates behind the caller's back: a pool owns exactly
// one arena, a cache holds at most its configured entry count, and both
// run every operation in constant time.
//
// # Quick Start
//
// Pool:
//
//	pool, _ := blockpool.New(64, 1024)
//	defer pool.Close()
//
//	block, err := pool.Allocate()
//	if err != nil {
//		// pool exhausted: recycle or shed load
//	}
//	pool.Deallocate(block)
//
// Cache:
//
//	cache, _ := lru.New[uint64, string](4096)
//	cache.Put(1, "Alice")
//	name, ok := cache.Get(1)
//
// # Concurrency Model
//
// Core types are unsynchronized. For shared use, wrap them once:
//
//	pool, _ := blockpool.NewSafe(64, 1024)
//	cache, _ := lru.NewSafe[uint64, string](4096)
//
// Each method of a Safe wrapper is a single critical section; the cores
// stay lock-free for single-goroutine callers.
//
// # Memory Budget
//
// Pools can share one byte budget, refusing construction when it would
// overshoot:
//
//	budget := resource.NewBudget(64 << 20)
//	framePool, err := blockpool.New(4096, 8192, blockpool.WithMemoryAcquirer(budget))
//
// # Logging
//
// Packages are silent unless given a logger. Misuse diagnostics, such as
// freeing a foreign block, then surface as rate-limited warnings:
//
//	log := memgo.NewTextLogger(slog.LevelWarn)
//	pool, _ := blockpool.New(64, 1024, blockpool.WithLogger(log.Logger))
//
// # Key Features
//
//   - O(1) allocate/free backed by one contiguous arena
//   - Off-heap arenas via anonymous mappings (blockpool.WithOffHeap)
//   - Generic LRU with exact hit/miss/eviction accounting
//   - Ownership-aware cache variant with exactly-once release callbacks
//   - Shared memory budgets across pools
//   - Typed arena views without copies (blockpool.View)
package memgo

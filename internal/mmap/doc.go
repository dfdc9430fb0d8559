// Package mmap provides anonymous memory mappings for off-heap allocation.
//
// # Overview
//
// MapAnon() creates read-write anonymous mappings outside the Go garbage
// collector's control. The block pool uses these to back its arena: a pool
// holding hundreds of megabytes of blocks adds nothing to GC scan work, and
// Close() returns the whole region to the OS in one operation.
//
// # Usage
//
//	m, err := mmap.MapAnon(1 << 20)
//	if err != nil { ... }
//	defer m.Close()
//
//	// Zero-filled, writable memory
//	data := m.Bytes()
//
// # Platform Support
//
// The package provides a unified API across platforms:
//
//   - Unix (Linux, macOS, BSD): Uses mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: Uses VirtualAlloc with MEM_RESERVE|MEM_COMMIT
//
// # Thread Safety
//
// Mapping is safe for concurrent read access. The Close() method is
// idempotent and protected by atomic operations. However, callers must
// ensure no goroutines access Bytes() after Close() returns.
package mmap

// Package resource implements a shared memory budget for pools and caches.
//
// A Budget places one hard limit over any number of fixed-capacity
// structures: each block pool reserves its whole arena at construction and
// releases it on Close, so the sum of all arenas never exceeds the limit.
//
// # Memory Management
//
// Reservation uses a weighted semaphore for the hard limit and an atomic
// counter for usage tracking. AcquireMemory is non-blocking and returns
// immediately with ErrBudgetExceeded if the limit would be exceeded:
//
//	budget := resource.NewBudget(1 << 30) // 1GB limit
//
//	if err := budget.AcquireMemory(1024 * 1024); err != nil {
//	    // ErrBudgetExceeded - caller decides retry/backoff
//	}
//	defer budget.ReleaseMemory(1024 * 1024)
//
// # Thread Safety
//
// All Budget methods are safe for concurrent use.
//
// # Nil Safety
//
// All methods handle a nil Budget gracefully - they become no-ops. This
// allows optional budgeting without nil checks everywhere.
package resource

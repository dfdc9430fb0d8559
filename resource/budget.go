package resource

import (
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ErrBudgetExceeded is returned when a reservation would exceed the budget.
var ErrBudgetExceeded = errors.New("resource: budget exceeded")

// Budget tracks and limits memory reserved by pools and caches.
//
// A single Budget can be shared by several pools so that their combined
// arenas never exceed one global limit. Reservation is fail-fast: callers
// decide whether to retry, shrink, or give up.
type Budget struct {
	limit int64
	sem   *semaphore.Weighted // nil if unlimited
	used  atomic.Int64
}

// NewBudget creates a Budget with the given limit in bytes.
// If limitBytes <= 0, no hard limit is enforced (only tracking).
func NewBudget(limitBytes int64) *Budget {
	b := &Budget{limit: limitBytes}
	if limitBytes > 0 {
		b.sem = semaphore.NewWeighted(limitBytes)
	}
	return b
}

// AcquireMemory attempts to reserve bytes against the budget.
// Returns ErrBudgetExceeded if the reservation would exceed the limit.
// Non-blocking - callers control retry/backoff policy.
func (b *Budget) AcquireMemory(bytes int64) error {
	if b == nil {
		return nil
	}
	if bytes <= 0 {
		return nil
	}

	if b.sem != nil {
		if !b.sem.TryAcquire(bytes) {
			return ErrBudgetExceeded
		}
	}

	b.used.Add(bytes)
	return nil
}

// ReleaseMemory returns a reservation to the budget.
func (b *Budget) ReleaseMemory(bytes int64) {
	if b == nil {
		return
	}
	if bytes <= 0 {
		return
	}

	if b.sem != nil {
		b.sem.Release(bytes)
	}
	b.used.Add(-bytes)
}

// InUse returns the bytes currently reserved.
func (b *Budget) InUse() int64 {
	if b == nil {
		return 0
	}
	return b.used.Load()
}

// Limit returns the configured limit in bytes (0 if unlimited).
func (b *Budget) Limit() int64 {
	if b == nil {
		return 0
	}
	return b.limit
}

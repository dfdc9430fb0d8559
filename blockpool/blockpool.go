package blockpool

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"
	"unsafe"

	"golang.org/x/time/rate"

	"github.com/hupe1980/memgo/internal/mmap"
)

// MinBlockSize is the smallest block size the pool hands out, one machine
// word. Requests below it are raised silently rather than rejected.
const MinBlockSize = int(unsafe.Sizeof(uintptr(0)))

var (
	// ErrInvalidBlockCount is returned when the block count is not positive.
	ErrInvalidBlockCount = errors.New("blockpool: block count must be positive")
	// ErrPoolExhausted is returned by Allocate when no free blocks remain.
	ErrPoolExhausted = errors.New("blockpool: pool exhausted")
	// ErrOutOfMemory is returned when the arena reservation cannot be satisfied.
	ErrOutOfMemory = errors.New("blockpool: out of memory")
	// ErrClosed is returned when allocating from a closed pool.
	ErrClosed = errors.New("blockpool: pool is closed")
)

// MemoryAcquirer reserves memory on behalf of a pool.
// A *resource.Budget satisfies this interface.
type MemoryAcquirer interface {
	AcquireMemory(bytes int64) error
	ReleaseMemory(bytes int64)
}

// discard swallows diagnostics when no logger is configured.
var discard = slog.New(slog.DiscardHandler)

// Pool is a fixed-capacity block allocator. It owns one contiguous arena
// carved into blockCount blocks of blockSize bytes each.
//
// Pool is NOT safe for concurrent use; see SafePool.
type Pool struct {
	blockSize  int
	blockCount int

	arena   []byte
	mapping *mmap.Mapping // non-nil when the arena is off-heap

	// Free blocks form a singly linked chain through next; freeHead is the
	// index handed out by the next Allocate, -1 when the pool is exhausted.
	next     []int32
	freeHead int32
	inUse    int

	stats    stats
	acquirer MemoryAcquirer
	logger   *slog.Logger
	warnRate *rate.Limiter
	offHeap  bool
	closed   bool
}

// New creates a Pool of blockCount blocks of blockSize bytes each.
//
// A blockSize below MinBlockSize is raised to MinBlockSize; blockCount
// must be positive. The whole arena is reserved before New returns, so a
// pool that constructs successfully never fails an Allocate for lack of
// backing memory.
func New(blockSize, blockCount int, opts ...Option) (*Pool, error) {
	if blockCount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBlockCount, blockCount)
	}
	if blockCount > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrInvalidBlockCount, blockCount, math.MaxInt32)
	}
	if blockSize < MinBlockSize {
		blockSize = MinBlockSize
	}
	if blockSize > math.MaxInt/blockCount {
		return nil, fmt.Errorf("%w: %d blocks of %d bytes overflow the address space",
			ErrOutOfMemory, blockCount, blockSize)
	}

	p := &Pool{
		blockSize:  blockSize,
		blockCount: blockCount,
		logger:     discard,
		warnRate:   rate.NewLimiter(rate.Every(time.Second), 5),
	}

	for _, opt := range opts {
		opt(p)
	}

	total := blockSize * blockCount

	if p.acquirer != nil {
		if err := p.acquirer.AcquireMemory(int64(total)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOutOfMemory, err)
		}
	}

	if p.offHeap {
		mapping, err := mmap.MapAnon(total)
		if err != nil {
			if p.acquirer != nil {
				p.acquirer.ReleaseMemory(int64(total))
			}
			return nil, fmt.Errorf("%w: %w", ErrOutOfMemory, err)
		}
		p.mapping = mapping
		p.arena = mapping.Bytes()
	} else {
		p.arena = make([]byte, total)
	}

	p.next = make([]int32, blockCount)
	p.initFreeList()

	return p, nil
}

// initFreeList chains all blocks in arena order, so a fresh pool hands out
// the block at the start of the arena first.
func (p *Pool) initFreeList() {
	for i := range p.next {
		p.next[i] = int32(i + 1)
	}
	p.next[p.blockCount-1] = -1
	p.freeHead = 0
	p.inUse = 0
}

// Allocate pops a free block in O(1) and returns it as a slice of exactly
// BlockSize bytes aliasing the arena. Contents are not zeroed; a reused
// block carries whatever its previous owner left behind.
//
// When no free blocks remain, Allocate returns ErrPoolExhausted and the
// pool is unchanged; the call becomes viable again after any Deallocate.
func (p *Pool) Allocate() ([]byte, error) {
	if p.closed {
		return nil, ErrClosed
	}
	if p.freeHead < 0 {
		return nil, ErrPoolExhausted
	}

	idx := p.freeHead
	p.freeHead = p.next[idx]
	p.inUse++
	p.stats.allocations++

	off := int(idx) * p.blockSize
	return p.arena[off : off+p.blockSize : off+p.blockSize], nil
}

// Deallocate returns a block to the pool in O(1). The block containing the
// slice's first byte is pushed onto the free list, so subslices of an
// allocated block resolve to the right block.
//
// A nil or empty slice is ignored. A slice whose memory does not belong to
// the arena is counted as a misuse, reported through the configured
// logger, and otherwise ignored. Deallocating the same block twice is NOT
// detected and corrupts the free list; that discipline stays with the
// caller.
func (p *Pool) Deallocate(b []byte) {
	if len(b) == 0 {
		return
	}
	if p.closed {
		p.misuse("deallocate on closed pool ignored", len(b))
		return
	}

	start := uintptr(unsafe.Pointer(unsafe.SliceData(p.arena))) //nolint:gosec // address range check
	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))         //nolint:gosec // address range check

	if ptr < start || ptr >= start+uintptr(len(p.arena)) {
		p.misuse("deallocate of foreign block ignored", len(b))
		return
	}

	idx := int32((ptr - start) / uintptr(p.blockSize))
	p.next[idx] = p.freeHead
	p.freeHead = idx
	p.inUse--
	p.stats.deallocations++
}

func (p *Pool) misuse(msg string, size int) {
	p.stats.misuses++
	if p.warnRate.Allow() {
		p.logger.Warn(msg, "size", size, "in_use", p.inUse)
	}
}

// BlockSize returns the size of each block in bytes, after any raise to
// MinBlockSize.
func (p *Pool) BlockSize() int {
	return p.blockSize
}

// Capacity returns the total number of blocks.
func (p *Pool) Capacity() int {
	return p.blockCount
}

// InUse returns the number of outstanding blocks.
func (p *Pool) InUse() int {
	return p.inUse
}

// Free returns the number of blocks available for allocation.
func (p *Pool) Free() int {
	if p.closed {
		return 0
	}
	return p.blockCount - p.inUse
}

// Close releases the arena in a single operation and is idempotent.
// Outstanding blocks become invalid; it is the caller's responsibility
// that none are still in use. After Close, Allocate returns ErrClosed and
// Deallocate is a counted no-op.
func (p *Pool) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	var err error
	if p.mapping != nil {
		err = p.mapping.Close()
		p.mapping = nil
	}
	p.arena = nil
	p.next = nil
	p.freeHead = -1
	p.inUse = 0

	if p.acquirer != nil {
		p.acquirer.ReleaseMemory(int64(p.blockSize) * int64(p.blockCount))
	}

	return err
}

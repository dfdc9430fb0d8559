package blockpool

import (
	"fmt"
	"unsafe"
)

// View reinterprets the front of an allocated block as a *T. The pointer
// is valid until the block is deallocated or the pool is closed.
//
// View panics when the block cannot hold a T. Alignment follows the block
// offset inside the arena: choose a blockSize that is a multiple of T's
// alignment. Blocks from an off-heap pool must not store Go pointers.
func View[T any](b []byte) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(b) < size {
		panic(fmt.Sprintf("blockpool: block of %d bytes cannot hold value of %d bytes", len(b), size))
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(b))) //nolint:gosec // typed view into an allocated block
}

// ViewSlice reinterprets an allocated block as a []T of length n.
//
// It panics when the block cannot hold n elements. The same alignment and
// pointer caveats as View apply.
func ViewSlice[T any](b []byte, n int) []T {
	if n <= 0 {
		return nil
	}

	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize > 0 && n > len(b)/elemSize {
		panic(fmt.Sprintf("blockpool: block of %d bytes cannot hold %d values of %d bytes", len(b), n, elemSize))
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n) //nolint:gosec // typed view into an allocated block
}

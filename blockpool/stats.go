package blockpool

import (
	"fmt"
	"strings"
)

// stats holds the cumulative pool counters.
type stats struct {
	allocations   uint64
	deallocations uint64
	misuses       uint64
}

// Stats is a point-in-time snapshot of pool counters.
type Stats struct {
	BlockSize     int
	Capacity      int
	InUse         int
	Allocations   uint64
	Deallocations uint64
	Misuses       uint64
}

// Usage returns the fraction of blocks in use as a percentage.
func (s Stats) Usage() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.InUse) / float64(s.Capacity) * 100
}

// String implements fmt.Stringer.
func (s Stats) String() string {
	return fmt.Sprintf("Pool{block: %d B, capacity: %d, in use: %d, usage: %.1f%%, allocs: %d, frees: %d, misuses: %d}",
		s.BlockSize, s.Capacity, s.InUse, s.Usage(), s.Allocations, s.Deallocations, s.Misuses)
}

// Stats returns a snapshot of the pool counters.
func (p *Pool) Stats() Stats {
	return Stats{
		BlockSize:     p.blockSize,
		Capacity:      p.blockCount,
		InUse:         p.inUse,
		Allocations:   p.stats.allocations,
		Deallocations: p.stats.deallocations,
		Misuses:       p.stats.misuses,
	}
}

// ResetStats zeroes the cumulative counters. Blocks in use are not
// affected.
func (p *Pool) ResetStats() {
	p.stats = stats{}
}

func (p *Pool) String() string {
	return p.Stats().String()
}

// Dump returns a multi-line rendering of the pool counters.
func (p *Pool) Dump() string {
	s := p.Stats()

	var b strings.Builder
	b.WriteString("=== Pool Stats ===\n")
	fmt.Fprintf(&b, "Block size:    %d bytes\n", s.BlockSize)
	fmt.Fprintf(&b, "Capacity:      %d blocks\n", s.Capacity)
	fmt.Fprintf(&b, "In use:        %d blocks (%.1f%%)\n", s.InUse, s.Usage())
	fmt.Fprintf(&b, "Allocations:   %d\n", s.Allocations)
	fmt.Fprintf(&b, "Deallocations: %d\n", s.Deallocations)
	fmt.Fprintf(&b, "Misuses:       %d\n", s.Misuses)

	return b.String()
}

package blockpool

import "log/slog"

// Option is a configuration option for Pool.
type Option func(*Pool)

// WithLogger sets the logger used for misuse diagnostics. By default
// diagnostics are discarded; the misuse counter is maintained either way.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pool) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMemoryAcquirer sets the memory acquirer for the pool. The whole
// arena is acquired during New and released on Close.
func WithMemoryAcquirer(acquirer MemoryAcquirer) Option {
	return func(p *Pool) {
		p.acquirer = acquirer
	}
}

// WithOffHeap backs the arena with an anonymous memory mapping instead of
// the Go heap. Blocks from an off-heap arena must not store Go pointers:
// the garbage collector does not scan the mapping.
func WithOffHeap() Option {
	return func(p *Pool) {
		p.offHeap = true
	}
}

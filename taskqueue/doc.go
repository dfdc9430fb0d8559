// Package taskqueue runs submitted functions on a fixed set of worker
// goroutines.
//
// A Queue accepts work through Submit and hands it to the next idle
// worker. Close stops intake, lets the workers drain the backlog, and
// waits for them to exit. Tasks receive no synchronization from the
// queue: work that shares state must bring its own locking, for example
// by operating on a blockpool.SafePool or lru.SafeCache.
//
// # Usage
//
//	q := taskqueue.New(4)
//	defer q.Close()
//
//	for i := range 100 {
//		if err := q.Submit(func() { process(i) }); err != nil {
//			break
//		}
//	}
package taskqueue

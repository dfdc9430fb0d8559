package taskqueue

import (
	"errors"
	"runtime"
	"sync"
)

// ErrClosed is returned by Submit after Close has been called.
var ErrClosed = errors.New("taskqueue: queue is closed")

// Queue is a fixed-size worker pool. Workers start at construction and
// live until Close; there is no dynamic scaling.
type Queue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	backlog []func()
	closed  bool
	workers int
	wg      sync.WaitGroup
}

// New starts a queue with the given number of workers. A non-positive
// count defaults to runtime.NumCPU().
func New(workers int) *Queue {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	q := &Queue{workers: workers}
	q.cond = sync.NewCond(&q.mu)

	q.wg.Add(workers)
	for range workers {
		go q.run()
	}

	return q
}

func (q *Queue) run() {
	defer q.wg.Done()

	q.mu.Lock()
	defer q.mu.Unlock()

	for {
		// Wait until there is work or we are shutting down.
		for len(q.backlog) == 0 && !q.closed {
			q.cond.Wait()
		}

		// Exit only once the backlog is drained.
		if q.closed && len(q.backlog) == 0 {
			return
		}

		task := q.backlog[0]
		q.backlog[0] = nil
		q.backlog = q.backlog[1:]
		if len(q.backlog) == 0 {
			q.backlog = nil
		}

		q.mu.Unlock()
		task()
		q.mu.Lock()
	}
}

// Submit enqueues a task for execution by the next idle worker. A nil
// task is ignored. Submit returns ErrClosed after Close.
func (q *Queue) Submit(task func()) error {
	if task == nil {
		return nil
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}

	q.backlog = append(q.backlog, task)
	q.cond.Signal()

	return nil
}

// Len returns the number of tasks waiting for a worker. Tasks already
// running are not counted.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.backlog)
}

// Workers returns the number of worker goroutines.
func (q *Queue) Workers() int {
	return q.workers
}

// Close stops intake and waits for the workers to drain the backlog and
// exit. It is idempotent and safe to call concurrently with Submit.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.wg.Wait()
		return
	}
	q.closed = true
	q.cond.Broadcast()
	q.mu.Unlock()

	q.wg.Wait()
}

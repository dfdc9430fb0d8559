package taskqueue_test

import (
	"fmt"
	"sync/atomic"

	"github.com/hupe1980/memgo/taskqueue"
)

func Example() {
	q := taskqueue.New(2)

	var done atomic.Int64
	for range 10 {
		if err := q.Submit(func() { done.Add(1) }); err != nil {
			panic(err)
		}
	}

	q.Close() // drains the backlog before returning
	fmt.Println(done.Load())
	// Output: 10
}

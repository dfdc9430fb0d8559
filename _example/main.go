package main

import (
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/hupe1980/memgo"
	"github.com/hupe1980/memgo/blockpool"
	"github.com/hupe1980/memgo/lru"
	"github.com/hupe1980/memgo/resource"
	"github.com/hupe1980/memgo/taskqueue"
)

func main() {
	logger := memgo.NewTextLogger(slog.LevelWarn)

	fmt.Println("--- Block Pool ---")

	pool, err := blockpool.New(64, 100, blockpool.WithLogger(logger.WithPool("demo").Logger))
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	blocks := make([][]byte, 0, 10)
	for i := range 10 {
		b, err := pool.Allocate()
		if err != nil {
			log.Fatal(err)
		}
		b[0] = byte(i)
		blocks = append(blocks, b)
	}

	fmt.Printf("Allocated %d blocks of %d bytes\n", pool.InUse(), pool.BlockSize())

	for _, b := range blocks[:5] {
		pool.Deallocate(b)
	}

	fmt.Print(pool.Dump())
	fmt.Println()

	fmt.Println("--- LRU Cache ---")

	cache, err := lru.New[int, string](3)
	if err != nil {
		log.Fatal(err)
	}

	cache.Put(1, "Alice")
	cache.Put(2, "Bob")
	cache.Put(3, "Charlie")

	if v, ok := cache.Get(2); ok {
		fmt.Println("Get(2):", v)
	}

	cache.Put(4, "Diana") // evicts key 1, the least recently used

	if _, ok := cache.Get(1); !ok {
		fmt.Println("Get(1): evicted")
	}
	if v, ok := cache.Get(4); ok {
		fmt.Println("Get(4):", v)
	}

	fmt.Print(cache.Dump())
	fmt.Println()

	fmt.Println("--- Owned Cache over Pool ---")

	framePool, err := blockpool.New(4096, 32, blockpool.WithMemoryAcquirer(resource.NewBudget(1<<20)))
	if err != nil {
		log.Fatal(err)
	}
	defer framePool.Close()

	frames, err := lru.NewOwned[uint64, []byte](8, framePool.Deallocate)
	if err != nil {
		log.Fatal(err)
	}

	for id := range uint64(20) {
		frame, err := framePool.Allocate()
		if err != nil {
			log.Fatal(err)
		}
		frames.Put(id, frame) // evicted frames return to the pool
	}

	fmt.Printf("Cached frames: %d, pool in use: %d\n", frames.Len(), framePool.InUse())
	frames.Close()
	fmt.Printf("After close, pool in use: %d\n\n", framePool.InUse())

	fmt.Println("--- Worker Queue Stress ---")

	shared, err := blockpool.NewSafe(256, 512)
	if err != nil {
		log.Fatal(err)
	}
	defer shared.Close()

	queue := taskqueue.New(4)

	start := time.Now()

	for range 10000 {
		if err := queue.Submit(func() {
			b, err := shared.Allocate()
			if err != nil {
				return // exhausted: shed this task's work
			}
			b[0] = 1
			shared.Deallocate(b)
		}); err != nil {
			log.Fatal(err)
		}
	}

	queue.Close()

	fmt.Printf("Seconds: %.4f\n", time.Since(start).Seconds())
	fmt.Print(shared.Dump())
}

package parallel

import (
	"runtime"
	"sync"
)

type (
	WorkerFunc func(func())
	// WaitFunc blocks until every task handed to the pool has finished. When
	// done is true the workers are stopped as well and the pool must not be
	// used again.
	WaitFunc   func(done bool)
	CancelFunc func()
)

type Pool struct {
	workers sync.WaitGroup
	tasks   sync.WaitGroup
	Do      WorkerFunc
	Wait    WaitFunc
	Cancel  CancelFunc
}

// Start returns a pool running numWorkers goroutines. A pool of one worker
// runs every task inline on the caller's goroutine. Zero or less means one
// worker per usable CPU.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		Do: func(f func()) {
			f()
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}

	if numWorkers > 1 {
		workChan := make(chan func(), numWorkers)

		for range numWorkers {
			pool.workers.Go(func() {
				for f := range workChan {
					f()
					pool.tasks.Done()
				}
			})
		}

		pool.Do = func(f func()) {
			pool.tasks.Add(1)
			workChan <- f
		}

		pool.Cancel = sync.OnceFunc(func() { close(workChan) })
		pool.Wait = func(done bool) {
			pool.tasks.Wait()
			if done {
				pool.Cancel()
				pool.workers.Wait()
			}
		}
	}

	return pool
}

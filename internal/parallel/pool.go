// Package parallel provides the worker pool used to evaluate many codes
// at once against a shared cost table. Tasks are bounded by the pool size
// and submission blocks when every worker is busy.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// WorkerPool manages a fixed set of goroutines that run submitted tasks.
// It provides controlled concurrency with backpressure: Submit blocks
// while the task queue is full.
type WorkerPool struct {
	maxWorkers   int
	taskChan     chan func()
	workerWg     sync.WaitGroup
	shutdownChan chan struct{}
	once         sync.Once
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If maxWorkers is 0 or negative, it defaults to the number of CPU cores.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	pool := &WorkerPool{
		maxWorkers:   maxWorkers,
		taskChan:     make(chan func(), maxWorkers*2), // Buffered channel for backpressure
		shutdownChan: make(chan struct{}),
	}

	for i := 0; i < maxWorkers; i++ {
		pool.workerWg.Add(1)
		go pool.worker()
	}

	return pool
}

// Size returns the number of workers.
func (wp *WorkerPool) Size() int {
	return wp.maxWorkers
}

// worker is the main worker loop that processes tasks from the channel.
func (wp *WorkerPool) worker() {
	defer wp.workerWg.Done()

	for {
		select {
		case task := <-wp.taskChan:
			if task != nil {
				task()
			}
		case <-wp.shutdownChan:
			return
		}
	}
}

// Submit submits a task to the worker pool for execution.
// If the pool is full, this call will block until a worker becomes available.
func (wp *WorkerPool) Submit(ctx context.Context, task func()) error {
	select {
	case <-wp.shutdownChan:
		return ErrPoolShutdown
	default:
	}

	select {
	case wp.taskChan <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.shutdownChan:
		return ErrPoolShutdown
	}
}

// Shutdown stops the workers and waits for tasks already running to
// finish. Queued tasks that no worker has picked up are dropped.
func (wp *WorkerPool) Shutdown() {
	wp.once.Do(func() {
		close(wp.shutdownChan)
		wp.workerWg.Wait()
	})
}

// ErrPoolShutdown is returned when trying to submit tasks to a shutdown pool.
var ErrPoolShutdown = errors.New("worker pool has been shutdown")

// Map runs fn over every item on the pool and returns the results in input
// order. The first error cancels the context passed to the remaining calls
// and is returned once the in-flight calls have finished.
func Map[T, R any](ctx context.Context, pool *WorkerPool, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	results := make([]R, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(pool.Size() * 2)

	for i, item := range items {
		g.Go(func() error {
			errc := make(chan error, 1)
			err := pool.Submit(gctx, func() {
				r, err := fn(gctx, item)
				if err == nil {
					results[i] = r
				}
				errc <- err
			})
			if err != nil {
				return err
			}
			select {
			case err := <-errc:
				return err
			case <-pool.shutdownChan:
				return ErrPoolShutdown
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

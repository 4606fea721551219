// Package workerpool provides a bounded goroutine pool with backpressure.
//
// A Pool caps the number of concurrently running goroutines, preventing
// unbounded goroutine creation under bursty load. When all workers are busy
// and the queue is full, Submit returns ErrPoolFull immediately so the
// caller can decide to retry, drop, or fall back to synchronous execution.
package workerpool

import (
	"errors"
	"sync"
)

// ErrPoolFull is returned by Submit when all workers are busy and the task
// queue is at capacity.
var ErrPoolFull = errors.New("workerpool: pool is full")

// ErrPoolClosed is returned by Submit after Shutdown has been called.
var ErrPoolClosed = errors.New("workerpool: pool is closed")

// Pool is a bounded goroutine pool.
type Pool struct {
	tasks chan func()
	wg    sync.WaitGroup
	once  sync.Once
	quit  chan struct{}
}

// New creates a Pool with the given number of workers. size must be > 0.
func New(size int) *Pool {
	if size <= 0 {
		size = 1
	}

	p := &Pool{
		// Queue buffer is twice the worker count so short bursts are absorbed.
		tasks: make(chan func(), size*2),
		quit:  make(chan struct{}),
	}

	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	return p
}

// Submit enqueues task for execution without blocking.
// Returns ErrPoolFull if the queue is at capacity, ErrPoolClosed after
// Shutdown.
func (p *Pool) Submit(task func()) error {
	select {
	case <-p.quit:
		return ErrPoolClosed
	default:
	}

	select {
	case p.tasks <- task:
		return nil
	default:
		return ErrPoolFull
	}
}

// SubmitWait is like Submit but blocks until a queue slot is available or
// the pool is closed.
func (p *Pool) SubmitWait(task func()) error {
	select {
	case <-p.quit:
		return ErrPoolClosed
	case p.tasks <- task:
		return nil
	}
}

// Shutdown stops accepting new tasks, waits for in-flight tasks to finish,
// and releases the worker goroutines. Safe to call multiple times.
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		close(p.quit)
		close(p.tasks)
		p.wg.Wait()
	})
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		runTask(task)
	}
}

// runTask executes task, recovering from panics so a bad task does not kill
// the worker goroutine.
func runTask(task func()) {
	defer func() { _ = recover() }()
	task()
}

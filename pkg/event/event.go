// Package event provides a simple in-process event dispatcher.
//
// Fire runs listeners synchronously; FireAsync hands them to a shared
// bounded worker pool so event fan-out never spawns unbounded goroutines.
// Listeners that cannot be scheduled (pool full) fall back to inline
// execution rather than being dropped.
package event

import (
	"sync"

	"github.com/trixtech/trixtech/pkg/workerpool"
)

// Handler is a function that receives an event payload.
type Handler func(payload interface{})

var (
	mu       sync.RWMutex
	handlers = map[string][]Handler{}

	poolOnce sync.Once
	pool     *workerpool.Pool
)

func dispatcherPool() *workerpool.Pool {
	poolOnce.Do(func() {
		pool = workerpool.New(16)
	})
	return pool
}

// Listen registers a handler for the given event name.
func Listen(event string, handler Handler) {
	mu.Lock()
	defer mu.Unlock()
	handlers[event] = append(handlers[event], handler)
}

// Fire dispatches an event synchronously to all registered listeners.
func Fire(event string, payload interface{}) {
	for _, h := range snapshot(event) {
		h(payload)
	}
}

// FireAsync dispatches the event to all listeners via the worker pool.
// It returns immediately without waiting for handlers to complete.
func FireAsync(event string, payload interface{}) {
	for _, h := range snapshot(event) {
		h := h
		if err := dispatcherPool().Submit(func() { h(payload) }); err != nil {
			h(payload)
		}
	}
}

// Flush removes all listeners (useful in tests).
func Flush() {
	mu.Lock()
	defer mu.Unlock()
	handlers = map[string][]Handler{}
}

func snapshot(event string) []Handler {
	mu.RLock()
	defer mu.RUnlock()
	hs := make([]Handler, len(handlers[event]))
	copy(hs, handlers[event])
	return hs
}

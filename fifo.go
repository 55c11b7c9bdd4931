// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import (
	"sync"

	"github.com/eapache/queue"
)

// FIFO is an unbounded thread-safe FIFO queue.
//
// FIFO never blocks: Enqueue always succeeds (there is no backpressure,
// the queue grows as needed) and Dequeue reports an empty queue with
// ErrWouldBlock. Every operation, including the IsEmpty and Count
// queries, runs under the same mutex, so none of them observes a
// half-finished append or remove. Query results are snapshots: under
// concurrent access they may be stale by the time the caller acts.
//
// Example:
//
//	f := syncx.NewFIFO[string]()
//	f.Enqueue("a")
//	v, err := f.Dequeue() // "a", nil
//	_, err = f.Dequeue()  // "", ErrWouldBlock
type FIFO[T any] struct {
	mu    sync.Mutex
	items *queue.Queue
}

// NewFIFO creates an empty FIFO.
func NewFIFO[T any]() *FIFO[T] {
	return &FIFO[T]{items: queue.New()}
}

// Enqueue appends item and returns immediately.
func (f *FIFO[T]) Enqueue(item T) {
	f.mu.Lock()
	f.items.Add(item)
	f.mu.Unlock()
}

// Dequeue removes and returns the oldest item.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (f *FIFO[T]) Dequeue() (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.items.Length() == 0 {
		var zero T
		return zero, ErrWouldBlock
	}
	item, _ := f.items.Remove().(T) // nil interface items come back as zero
	return item, nil
}

// Peek returns the oldest item without removing it.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (f *FIFO[T]) Peek() (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.items.Length() == 0 {
		var zero T
		return zero, ErrWouldBlock
	}
	item, _ := f.items.Peek().(T)
	return item, nil
}

// IsEmpty reports whether the queue held no items at the time of the call.
func (f *FIFO[T]) IsEmpty() bool {
	return f.Count() == 0
}

// Count returns the number of items at the time of the call.
func (f *FIFO[T]) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items.Length()
}

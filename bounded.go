// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// BoundedQueue is a blocking bounded FIFO queue.
//
// Capacity and emptiness are tracked by two counting semaphores:
// notFull holds one permit per free slot (starts at capacity) and
// notEmpty holds one permit per queued item (starts at 0). Every
// Produce takes a notFull permit and hands a notEmpty permit to
// exactly one consumer; Consume does the reverse. The ring itself is
// only touched under mu, so no waiter sees a torn buffer.
//
// Waiters are parked by the scheduler and woken in arrival order.
//
// Memory: O(capacity)
type BoundedQueue[T any] struct {
	notFull  *semaphore.Weighted // Permits to produce
	notEmpty *semaphore.Weighted // Permits to consume
	mu       sync.Mutex
	buf      ring[T]
}

// NewBoundedQueue creates a new blocking bounded queue.
// Panics if capacity < 1.
func NewBoundedQueue[T any](capacity int) *BoundedQueue[T] {
	if capacity < 1 {
		panic("syncx: capacity must be >= 1")
	}

	n := int64(capacity)
	q := &BoundedQueue[T]{
		notFull:  semaphore.NewWeighted(n),
		notEmpty: semaphore.NewWeighted(n),
		buf:      newRing[T](capacity),
	}
	// Weighted starts with every permit free; hold them all so that
	// consumers start with nothing to take.
	q.notEmpty.TryAcquire(n)

	return q
}

// Produce appends item, blocking while the queue is full.
func (q *BoundedQueue[T]) Produce(item T) {
	// Acquire with a context that is never done cannot fail.
	_ = q.notFull.Acquire(context.Background(), 1)
	q.push(item)
}

// TryProduce appends item without blocking.
// Returns ErrWouldBlock if the queue is full.
func (q *BoundedQueue[T]) TryProduce(item T) error {
	if !q.notFull.TryAcquire(1) {
		return ErrWouldBlock
	}
	q.push(item)
	return nil
}

// Consume removes and returns the oldest item, blocking while empty.
func (q *BoundedQueue[T]) Consume() T {
	_ = q.notEmpty.Acquire(context.Background(), 1)
	return q.pop()
}

// TryConsume removes and returns the oldest item without blocking.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *BoundedQueue[T]) TryConsume() (T, error) {
	if !q.notEmpty.TryAcquire(1) {
		var zero T
		return zero, ErrWouldBlock
	}
	return q.pop(), nil
}

// push requires a notFull permit; the permit guarantees a free slot.
func (q *BoundedQueue[T]) push(item T) {
	q.mu.Lock()
	if !q.buf.push(item) {
		q.mu.Unlock()
		panic("syncx: bounded queue overflow")
	}
	q.mu.Unlock()
	q.notEmpty.Release(1)
}

// pop requires a notEmpty permit; the permit guarantees a queued item.
func (q *BoundedQueue[T]) pop() T {
	q.mu.Lock()
	item, ok := q.buf.pop()
	q.mu.Unlock()
	if !ok {
		panic("syncx: bounded queue underflow")
	}
	q.notFull.Release(1)
	return item
}

// Len returns the number of queued items.
func (q *BoundedQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.len()
}

// Cap returns the queue capacity.
func (q *BoundedQueue[T]) Cap() int {
	return q.buf.cap()
}

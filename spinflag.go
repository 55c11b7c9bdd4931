// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import (
	"sync"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

const (
	// spinChecks is the number of CPU-pause polls before a poller starts
	// sleeping between checks.
	spinChecks = 64

	// pollSleepMax caps the sleep between two checks of a flag.
	pollSleepMax = 100 * time.Microsecond
)

// SpinFlagQueue is a bounded FIFO queue whose waiters busy-wait.
//
// Readiness is published through two independent flags, isEmpty and
// isFull, stored and loaded with relaxed ordering. A blocked Produce
// polls isFull (a blocked Consume polls isEmpty) with CPU pauses, then
// short sleeps, and never parks in the scheduler. The ring is mutated
// under mu, which re-checks the real length, so a stale flag costs a
// retry but never overflows or underflows the buffer.
//
// The flags are updated one after the other and are not ordered with
// respect to the ring: for a moment after a consume frees a slot,
// isFull may still read true. Pollers simply retry. This is the
// trade-off against [BoundedQueue], not a defect.
//
// Memory: O(capacity)
type SpinFlagQueue[T any] struct {
	isEmpty atomix.BoolPadded // Polled by consumers
	isFull  atomix.BoolPadded // Polled by producers
	mu      sync.Mutex
	buf     ring[T]
}

// NewSpinFlagQueue creates a new busy-wait bounded queue.
// Panics if capacity < 1.
func NewSpinFlagQueue[T any](capacity int) *SpinFlagQueue[T] {
	if capacity < 1 {
		panic("syncx: capacity must be >= 1")
	}

	q := &SpinFlagQueue[T]{buf: newRing[T](capacity)}
	q.isEmpty.StoreRelaxed(true)
	return q
}

// Produce appends item, busy-waiting while the queue is full.
func (q *SpinFlagQueue[T]) Produce(item T) {
	for {
		poll(&q.isFull)
		if q.push(item) {
			return
		}
	}
}

// TryProduce appends item without waiting.
// Returns ErrWouldBlock if the queue is full.
func (q *SpinFlagQueue[T]) TryProduce(item T) error {
	if q.isFull.LoadRelaxed() || !q.push(item) {
		return ErrWouldBlock
	}
	return nil
}

// Consume removes and returns the oldest item, busy-waiting while empty.
func (q *SpinFlagQueue[T]) Consume() T {
	for {
		poll(&q.isEmpty)
		if item, ok := q.pop(); ok {
			return item
		}
	}
}

// TryConsume removes and returns the oldest item without waiting.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *SpinFlagQueue[T]) TryConsume() (T, error) {
	if !q.isEmpty.LoadRelaxed() {
		if item, ok := q.pop(); ok {
			return item, nil
		}
	}
	var zero T
	return zero, ErrWouldBlock
}

func (q *SpinFlagQueue[T]) push(item T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.buf.push(item) {
		q.isFull.StoreRelaxed(true)
		return false
	}
	q.isEmpty.StoreRelaxed(false)
	if q.buf.full() {
		q.isFull.StoreRelaxed(true)
	}
	return true
}

func (q *SpinFlagQueue[T]) pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	item, ok := q.buf.pop()
	if !ok {
		q.isEmpty.StoreRelaxed(true)
		return item, false
	}
	q.isFull.StoreRelaxed(false)
	if q.buf.len() == 0 {
		q.isEmpty.StoreRelaxed(true)
	}
	return item, true
}

// Len returns the number of queued items.
func (q *SpinFlagQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.len()
}

// Cap returns the queue capacity.
func (q *SpinFlagQueue[T]) Cap() int {
	return q.buf.cap()
}

// poll busy-waits until busy reads false.
// The first spinChecks polls only pause the CPU; later polls sleep for at
// most pollSleepMax, however long the wait lasts.
func poll(busy *atomix.BoolPadded) {
	sw := spin.Wait{}
	backoff := iox.Backoff{}
	backoff.SetMax(pollSleepMax)
	for i := 0; busy.LoadRelaxed(); i++ {
		if i < spinChecks {
			sw.Once()
			continue
		}
		backoff.Wait()
	}
}

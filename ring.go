// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

// ring is a fixed-size circular buffer holding exactly capacity elements.
//
// head and tail only grow; the slot of position p is p % size. ring carries
// no synchronization of its own: every method must be called with the
// owning queue's lock held.
type ring[T any] struct {
	head   uint64 // Next position to pop
	tail   uint64 // Next position to push
	buffer []T
	size   uint64
}

func newRing[T any](capacity int) ring[T] {
	return ring[T]{
		buffer: make([]T, capacity),
		size:   uint64(capacity),
	}
}

// push appends elem. Returns false if the ring is full.
func (r *ring[T]) push(elem T) bool {
	if r.tail-r.head >= r.size {
		return false
	}
	r.buffer[r.tail%r.size] = elem
	r.tail++
	return true
}

// pop removes and returns the oldest element. Returns false if empty.
func (r *ring[T]) pop() (T, bool) {
	var zero T
	if r.head >= r.tail {
		return zero, false
	}
	slot := r.head % r.size
	elem := r.buffer[slot]
	r.buffer[slot] = zero // Release references for GC
	r.head++
	return elem, true
}

func (r *ring[T]) len() int {
	return int(r.tail - r.head)
}

func (r *ring[T]) full() bool {
	return r.tail-r.head >= r.size
}

func (r *ring[T]) cap() int {
	return int(r.size)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

// Queue is the combined producer-consumer interface for a bounded FIFO queue.
//
// Queue is implemented by two strategies with the same contract:
// [BoundedQueue] parks waiters on counting semaphores, [SpinFlagQueue]
// busy-waits on relaxed status flags. Select one with [New] and [Build].
//
// Items come out in the order they went in. The number of queued items never
// exceeds Cap().
//
// Example:
//
//	q := syncx.Build[int](syncx.New(5))
//
//	go func() {
//	    for i := range 10 {
//	        q.Produce(i) // Blocks while 5 items are queued
//	    }
//	}()
//
//	for range 10 {
//	    fmt.Println(q.Consume()) // Blocks while empty
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]

	// Cap returns the capacity fixed at construction.
	Cap() int

	// Len returns the number of queued items.
	// The value is a snapshot and may be stale as soon as it returns.
	Len() int
}

// Producer is the interface for appending items.
type Producer[T any] interface {
	// Produce appends item, waiting while the queue is full.
	//
	// There is no timeout: if no consumer ever runs, Produce never returns.
	// Callers needing cancellation must wrap the call themselves.
	Produce(item T)

	// TryProduce appends item without waiting.
	// Returns nil on success, ErrWouldBlock if the queue is full.
	TryProduce(item T) error
}

// Consumer is the interface for removing items.
type Consumer[T any] interface {
	// Consume removes and returns the oldest item, waiting while the
	// queue is empty.
	//
	// There is no timeout: if no producer ever runs, Consume never returns.
	Consume() T

	// TryConsume removes and returns the oldest item without waiting.
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	TryConsume() (T, error)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package syncx provides hand-built synchronization primitives and the
// parallel algorithms that exercise them.
//
//   - BoundedQueue: blocking bounded FIFO on counting semaphores
//   - SpinFlagQueue: bounded FIFO that busy-waits on relaxed status flags
//   - FIFO: unbounded non-blocking FIFO
//   - CyclicBarrier: reusable rendezvous for a fixed number of parties
//   - RWGate: shared reads, exclusive writes over a single value
//   - Reduce, ReduceFunc, ParallelFor: chunked fork/join with a barrier
//
// # Quick Start
//
//	q := syncx.NewBoundedQueue[Job](64)
//	b := syncx.NewCyclicBarrier(4)
//	g := syncx.NewRWGate("initial")
//	f := syncx.NewFIFO[Event]()
//
//	sum := syncx.Reduce(values, syncx.Sum, 8)
//
// # Bounded Queues
//
// BoundedQueue and SpinFlagQueue implement the same [Queue] contract:
// Produce waits while the queue is full, Consume waits while it is empty,
// items leave in insertion order and nothing is lost or duplicated.
// They differ in how a caller waits:
//
//	BoundedQueue  - parked on a semaphore, woken by exactly one peer operation
//	SpinFlagQueue - polls a relaxed atomic flag, pausing then sleeping briefly
//
// The builder selects the strategy:
//
//	q := syncx.Build[Job](syncx.New(64))        // → BoundedQueue
//	q := syncx.Build[Job](syncx.New(64).Spin()) // → SpinFlagQueue
//
// SpinFlagQueue keeps a waiting goroutine on its CPU. Its flags are
// eventually consistent: a flag can be stale for a moment after the buffer
// changes, and pollers retry. Prefer BoundedQueue unless waits are known
// to be very short.
//
// # Barrier
//
//	b := syncx.NewCyclicBarrier(3)
//	for range 3 {
//	    go func() {
//	        phase1()
//	        b.Wait() // Nobody starts phase2 until all finished phase1
//	        phase2()
//	        b.Wait() // Same barrier, next cycle
//	    }()
//	}
//
// # Reader/Writer Gate
//
//	g := syncx.NewRWGate("v1")
//	g.Read(func(v string) { render(v) }) // Concurrent with other readers
//	g.Write("v2")                         // Exclusive
//
// # Parallel Reduction
//
// Reduce splits the input into one contiguous chunk per worker, folds the
// chunks concurrently into per-worker partial slots and combines the
// partials after all workers meet at a CyclicBarrier:
//
//	syncx.Reduce([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, syncx.Sum, 3)     // 55
//	syncx.Reduce([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, syncx.Product, 3) // 3628800
//
// Float results may differ in the last bits between worker counts because
// the grouping of operations changes.
//
// # Error Handling
//
// Non-blocking operations (TryProduce, TryConsume, FIFO.Dequeue) report
// "not now" with [ErrWouldBlock], sourced from [code.hybscloud.com/iox].
// Invalid construction arguments (capacity, parties or workers < 1) panic.
//
// # Blocking and Cancellation
//
// No primitive supports timeouts or cancellation. A Produce on a queue
// nobody drains, a Consume on a queue nobody fills, or a barrier that
// never gathers all its parties blocks forever. Callers that need a
// deadline must wrap the call themselves, and tests must guard blocking
// calls with a wall-clock limit.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// polling backoff, [code.hybscloud.com/atomix] for relaxed atomic flags,
// [code.hybscloud.com/spin] for CPU pause instructions,
// [golang.org/x/sync/semaphore] for counting semaphores and
// [github.com/eapache/queue] for the unbounded ring.
package syncx

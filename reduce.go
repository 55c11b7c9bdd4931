// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import "sync"

// Number is the set of element types accepted by [Reduce].
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Op is an associative reduction operation with an identity element.
type Op int

const (
	// Sum adds elements. Identity: 0.
	Sum Op = iota
	// Product multiplies elements. Identity: 1.
	Product
)

func (op Op) String() string {
	switch op {
	case Sum:
		return "sum"
	case Product:
		return "product"
	default:
		return "unknown"
	}
}

// Reduce folds xs with op using the given number of workers.
//
// The result does not depend on workers, except for floating-point
// rounding: regrouping a float sum or product can change the last bits.
// Compare float results with a tolerance.
//
// Panics if workers < 1 or op is unknown.
//
// Example:
//
//	syncx.Reduce([]float64{1, 2, 3, 4}, syncx.Sum, 3)     // 10
//	syncx.Reduce([]float64{1, 2, 3, 4}, syncx.Product, 3) // 24
func Reduce[T Number](xs []T, op Op, workers int) T {
	switch op {
	case Sum:
		return ReduceFunc(xs, T(0), func(a, b T) T { return a + b }, workers)
	case Product:
		return ReduceFunc(xs, T(1), func(a, b T) T { return a * b }, workers)
	default:
		panic("syncx: unknown reduction op")
	}
}

// ReduceFunc folds xs with an associative combine function in parallel.
//
// xs is split into workers contiguous chunks of ceil(len(xs)/workers)
// elements; trailing chunks may be short or empty. Worker w folds its
// chunk into partials[w], seeded with identity, and then waits on a
// CyclicBarrier shared by all workers. Each partial slot is written by
// its owning worker only. The worker that trips the barrier folds the
// partials in worker order, so no partial is read before its writer is
// done. Workers with an empty chunk contribute identity and still
// arrive at the barrier exactly once.
//
// Panics if workers < 1.
func ReduceFunc[T any](xs []T, identity T, combine func(a, b T) T, workers int) T {
	partials := make([]T, workers)
	result := identity

	runChunked(len(xs), workers,
		func(w, lo, hi int) {
			acc := identity
			for _, x := range xs[lo:hi] {
				acc = combine(acc, x)
			}
			partials[w] = acc
		},
		func() {
			for _, p := range partials {
				result = combine(result, p)
			}
		},
	)
	return result
}

// ParallelFor runs body over [0, n) split into workers contiguous chunks.
//
// body(w, lo, hi) is called once per worker, concurrently, with the
// half-open range [lo, hi) owned by worker w; the range is empty when
// there are more workers than indices. ParallelFor returns after every
// worker has passed the shared barrier.
//
// Panics if workers < 1.
func ParallelFor(n, workers int, body func(worker, lo, hi int)) {
	runChunked(n, workers, body, nil)
}

// runChunked partitions [0, n) across workers goroutines, rendezvouses
// them on a CyclicBarrier and runs combine, if set, on the worker that
// trips it. It returns when all workers have finished.
func runChunked(n, workers int, body func(w, lo, hi int), combine func()) {
	if workers < 1 {
		panic("syncx: workers must be >= 1")
	}

	chunk := (n + workers - 1) / workers
	barrier := NewCyclicBarrier(workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		lo := min(w*chunk, n)
		hi := min(lo+chunk, n)
		go func() {
			defer wg.Done()
			body(w, lo, hi)
			if barrier.Wait() == workers-1 && combine != nil {
				combine()
			}
		}()
	}
	wg.Wait()
}

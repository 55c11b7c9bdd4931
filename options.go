// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

// Options configures queue creation and strategy selection.
type Options struct {
	// Waiting strategy
	spin bool // Busy-wait on status flags instead of parking

	// Capacity (exact, no rounding)
	capacity int
}

// Builder creates queues with fluent configuration.
//
// Builder selects the waiting strategy behind the [Queue] contract.
// The default parks blocked callers on counting semaphores; Spin()
// keeps them polling relaxed status flags on the CPU instead.
//
// Example:
//
//	// Blocking queue (default)
//	q := syncx.Build[Event](syncx.New(64))
//
//	// Busy-wait queue
//	q := syncx.Build[Event](syncx.New(64).Spin())
//
//	// Concrete types
//	bq := syncx.BuildBounded[Event](syncx.New(64))
//	sq := syncx.BuildSpinFlag[Event](syncx.New(64).Spin())
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity.
//
// Panics if capacity < 1.
func New(capacity int) *Builder {
	if capacity < 1 {
		panic("syncx: capacity must be >= 1")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// Spin selects the busy-wait strategy ([SpinFlagQueue]).
//
// Trade-off: waiters burn CPU instead of sleeping in the scheduler,
// and status flags may be briefly stale.
func (b *Builder) Spin() *Builder {
	b.opts.spin = true
	return b
}

// Build creates a Queue[T] with the configured strategy.
//
//	default → BoundedQueue (semaphores + mutex)
//	Spin()  → SpinFlagQueue (relaxed flags + busy-wait)
func Build[T any](b *Builder) Queue[T] {
	if b.opts.spin {
		return NewSpinFlagQueue[T](b.opts.capacity)
	}
	return NewBoundedQueue[T](b.opts.capacity)
}

// BuildBounded creates a BoundedQueue with compile-time type safety.
// Panics if the builder is configured with Spin().
func BuildBounded[T any](b *Builder) *BoundedQueue[T] {
	if b.opts.spin {
		panic("syncx: BuildBounded requires the default strategy, not Spin()")
	}
	return NewBoundedQueue[T](b.opts.capacity)
}

// BuildSpinFlag creates a SpinFlagQueue with compile-time type safety.
// Panics if the builder is not configured with Spin().
func BuildSpinFlag[T any](b *Builder) *SpinFlagQueue[T] {
	if !b.opts.spin {
		panic("syncx: BuildSpinFlag requires Spin()")
	}
	return NewSpinFlagQueue[T](b.opts.capacity)
}

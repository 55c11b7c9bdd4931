// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import "sync"

// RWGate guards a single value with shared reads and exclusive writes.
//
// Any number of Read calls may run at the same time. Write and Update
// run alone: entering the exclusive region closes the gate to new
// readers, waits for in-flight readers to drain, and reopens only after
// the new value is published. A reader therefore sees either the value
// before a write or the value after it, never a partial update.
//
// Writers queue behind each other. Readers arriving while a writer holds
// or waits for the region wait too; both sides are eventually admitted.
type RWGate[V any] struct {
	mu      sync.Mutex
	changed *sync.Cond // Signaled when readers drain or a writer leaves
	readers int        // In-flight readers
	writing bool       // A writer owns or is draining the region
	value   V
}

// NewRWGate creates a gate holding initial.
func NewRWGate[V any](initial V) *RWGate[V] {
	g := &RWGate[V]{value: initial}
	g.changed = sync.NewCond(&g.mu)
	return g
}

// Read runs fn with the current value inside the shared region.
// fn may run concurrently with other readers but never with a writer.
func (g *RWGate[V]) Read(fn func(v V)) {
	g.mu.Lock()
	for g.writing {
		g.changed.Wait()
	}
	g.readers++
	v := g.value
	g.mu.Unlock()

	defer g.leaveRead()
	fn(v)
}

func (g *RWGate[V]) leaveRead() {
	g.mu.Lock()
	g.readers--
	if g.readers == 0 {
		g.changed.Broadcast()
	}
	g.mu.Unlock()
}

// Load returns the current value.
func (g *RWGate[V]) Load() V {
	var v V
	g.Read(func(cur V) { v = cur })
	return v
}

// Write replaces the value inside the exclusive region.
func (g *RWGate[V]) Write(v V) {
	g.Update(func(V) V { return v })
}

// Update runs fn inside the exclusive region and stores its result.
// No reader and no other writer runs while fn executes.
func (g *RWGate[V]) Update(fn func(old V) V) {
	g.mu.Lock()
	for g.writing {
		g.changed.Wait()
	}
	g.writing = true
	for g.readers > 0 {
		g.changed.Wait()
	}
	old := g.value
	g.mu.Unlock()

	next := old
	defer func() {
		g.mu.Lock()
		g.value = next
		g.writing = false
		g.changed.Broadcast()
		g.mu.Unlock()
	}()
	next = fn(old)
}

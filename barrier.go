// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import "sync"

// CyclicBarrier is a reusable rendezvous point for a fixed number of parties.
//
// Each cycle admits exactly parties calls to Wait before any of them
// returns. The last caller to arrive does not block: it resets the
// arrival count, advances the generation and releases the other
// parties-1 callers. The barrier is then ready for the next cycle
// without being recreated.
//
// Release signals are double-buffered by generation: waiters of
// generation g park on release[g%2]. The tripping caller flips the
// generation under mu before it sends the parties-1 signals, so a fast
// party that re-enters Wait is counted into generation g+1 and parks on
// the other channel. It can never take a signal meant for generation g,
// and generation g+2 cannot start before every waiter of g has taken
// its signal (they must all arrive in g+1 first).
//
// This holds only when one fixed set of exactly parties goroutines shares
// the barrier, each calling Wait once per cycle. The tripping caller sends
// its release signals after unlocking; with more goroutines than parties,
// generation g+2 could fill up before those sends finish and one of its
// waiters could take a signal meant for generation g.
//
// There is no timeout: if fewer than parties callers arrive, the
// waiters block forever.
type CyclicBarrier struct {
	mu      sync.Mutex
	arrived int    // [0, parties)
	gen     uint64 // Completed cycles
	release [2]chan struct{}
	parties int
}

// NewCyclicBarrier creates a barrier for the given number of parties.
// Panics if parties < 1.
func NewCyclicBarrier(parties int) *CyclicBarrier {
	if parties < 1 {
		panic("syncx: parties must be >= 1")
	}

	b := &CyclicBarrier{parties: parties}
	for i := range b.release {
		// Buffered so the tripping caller never blocks while releasing.
		b.release[i] = make(chan struct{}, parties-1)
	}
	return b
}

// Wait blocks until all parties have called Wait in the current cycle.
//
// Returns the arrival index of the caller within its cycle, from 0 to
// parties-1. The caller that receives parties-1 tripped the barrier and
// returned without blocking.
func (b *CyclicBarrier) Wait() int {
	b.mu.Lock()
	gen := b.gen
	index := b.arrived
	b.arrived++

	if b.arrived < b.parties {
		b.mu.Unlock()
		<-b.release[gen%2]
		return index
	}

	// Last to arrive: reset for the next cycle before anyone is released.
	b.arrived = 0
	b.gen++
	b.mu.Unlock()

	sig := b.release[gen%2]
	for range b.parties - 1 {
		sig <- struct{}{}
	}
	return index
}

// Parties returns the number of parties required to trip the barrier.
func (b *CyclicBarrier) Parties() int {
	return b.parties
}

// Waiting returns the number of parties that have arrived in the current
// cycle and are blocked in Wait.
func (b *CyclicBarrier) Waiting() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.arrived
}

// Generation returns the number of completed cycles.
func (b *CyclicBarrier) Generation() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.gen
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx_test

import (
	"sort"
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/syncx"
)

// runCycle calls Wait from parties goroutines and returns the arrival
// indices once all of them have been released.
func runCycle(t *testing.T, b *syncx.CyclicBarrier, parties int) []int {
	t.Helper()
	indices := make([]int, parties)
	var wg sync.WaitGroup
	for i := range parties {
		wg.Add(1)
		go func() {
			defer wg.Done()
			indices[i] = b.Wait()
		}()
	}
	within(t, testTimeout, wg.Wait, "barrier did not release all parties")
	return indices
}

// TestBarrierReleasesAndReuses releases 4 parties twice on the same
// instance.
func TestBarrierReleasesAndReuses(t *testing.T) {
	b := syncx.NewCyclicBarrier(4)

	for cycle := range 2 {
		indices := runCycle(t, b, 4)
		sort.Ints(indices)
		for i, idx := range indices {
			if idx != i {
				t.Fatalf("cycle %d: arrival indices %v, want a permutation of 0..3", cycle, indices)
			}
		}
		if w := b.Waiting(); w != 0 {
			t.Fatalf("cycle %d: Waiting after release: got %d, want 0", cycle, w)
		}
	}
	if g := b.Generation(); g != 2 {
		t.Fatalf("Generation: got %d, want 2", g)
	}
}

// TestBarrierIncompleteNeverReleases verifies that 3 callers of a 4-party
// barrier stay blocked.
func TestBarrierIncompleteNeverReleases(t *testing.T) {
	b := syncx.NewCyclicBarrier(4)
	released := make(chan struct{}, 3)
	for range 3 {
		go func() {
			b.Wait()
			released <- struct{}{}
		}()
	}

	deadline := time.Now().Add(testTimeout)
	for b.Waiting() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("Waiting: got %d, want 3", b.Waiting())
		}
		time.Sleep(time.Millisecond)
	}

	select {
	case <-released:
		t.Fatal("barrier released with only 3 of 4 parties")
	case <-time.After(100 * time.Millisecond):
	}

	// The fourth party completes the cycle and frees the others.
	if idx := b.Wait(); idx != 3 {
		t.Fatalf("last arrival index: got %d, want 3", idx)
	}
	for range 3 {
		select {
		case <-released:
		case <-time.After(testTimeout):
			t.Fatal("waiters not released by the fourth party")
		}
	}
}

// TestBarrierLastCallerDoesNotBlock verifies that a single-party barrier
// returns immediately, every time.
func TestBarrierLastCallerDoesNotBlock(t *testing.T) {
	b := syncx.NewCyclicBarrier(1)
	within(t, time.Second, func() {
		for range 100 {
			if idx := b.Wait(); idx != 0 {
				t.Errorf("Wait: got %d, want 0", idx)
			}
		}
	}, "single-party barrier blocked")
}

// TestBarrierManyCycles drives the same parties through many cycles as fast
// as possible. A wake-up leaked from one cycle into the next would let a
// party run ahead; every party records its cycle before each Wait and all
// records of a cycle must be in place when any party leaves it.
func TestBarrierManyCycles(t *testing.T) {
	const (
		parties = 8
		cycles  = 2000
	)
	b := syncx.NewCyclicBarrier(parties)

	var mu sync.Mutex
	arrivals := make([]int, cycles)
	var failed string

	var wg sync.WaitGroup
	for range parties {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range cycles {
				mu.Lock()
				arrivals[c]++
				mu.Unlock()

				b.Wait()

				mu.Lock()
				if arrivals[c] != parties && failed == "" {
					failed = "party left a cycle before all parties arrived"
				}
				mu.Unlock()
			}
		}()
	}

	within(t, 30*time.Second, wg.Wait, "barrier cycles did not complete")
	if failed != "" {
		t.Fatal(failed)
	}
	if g := b.Generation(); g != cycles {
		t.Fatalf("Generation: got %d, want %d", g, cycles)
	}
}

// TestBarrierExactlyOneTripper verifies that each cycle has exactly one
// caller with index parties-1.
func TestBarrierExactlyOneTripper(t *testing.T) {
	const parties = 5
	b := syncx.NewCyclicBarrier(parties)
	for cycle := range 20 {
		trippers := 0
		for _, idx := range runCycle(t, b, parties) {
			if idx == parties-1 {
				trippers++
			}
		}
		if trippers != 1 {
			t.Fatalf("cycle %d: got %d trippers, want 1", cycle, trippers)
		}
	}
}

func TestBarrierParties(t *testing.T) {
	if p := syncx.NewCyclicBarrier(6).Parties(); p != 6 {
		t.Fatalf("Parties: got %d, want 6", p)
	}
}

func TestBarrierPanicsOnZeroParties(t *testing.T) {
	for _, n := range []int{0, -1} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Fatalf("NewCyclicBarrier(%d): expected panic", n)
				}
			}()
			syncx.NewCyclicBarrier(n)
		}()
	}
}

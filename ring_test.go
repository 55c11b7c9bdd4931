// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import "testing"

func TestRingBounds(t *testing.T) {
	r := newRing[int](3)
	if r.cap() != 3 {
		t.Fatalf("cap: got %d, want 3", r.cap())
	}
	if _, ok := r.pop(); ok {
		t.Fatal("pop on empty: got ok")
	}

	for round := range 10 {
		for i := range 3 {
			if !r.push(round*3 + i) {
				t.Fatalf("round %d: push(%d) failed", round, i)
			}
		}
		if !r.full() || r.push(-1) {
			t.Fatalf("round %d: ring not full at capacity", round)
		}
		for i := range 3 {
			v, ok := r.pop()
			if !ok || v != round*3+i {
				t.Fatalf("round %d: pop got (%d, %t), want (%d, true)", round, v, ok, round*3+i)
			}
		}
		if r.len() != 0 {
			t.Fatalf("round %d: len got %d, want 0", round, r.len())
		}
	}
}

// TestRingClearsSlots verifies that popped slots drop their references.
func TestRingClearsSlots(t *testing.T) {
	r := newRing[*int](2)
	v := 1
	r.push(&v)
	r.pop()
	for i, p := range r.buffer {
		if p != nil {
			t.Fatalf("slot %d still holds a pointer after pop", i)
		}
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx_test

import (
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// =============================================================================
// Test Helpers
// =============================================================================

// testTimeout bounds every call that could block forever on a bug.
const testTimeout = 10 * time.Second

// within runs f in a goroutine and fails the test if it does not return
// before timeout. The goroutine is leaked on failure.
func within(t *testing.T, timeout time.Duration, f func(), msg string) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		f()
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		t.Fatalf("timeout after %v: %s", timeout, msg)
	}
}

// stillBlocked reports whether done stays open for d.
func stillBlocked(done <-chan struct{}, d time.Duration) bool {
	select {
	case <-done:
		return false
	case <-time.After(d):
		return true
	}
}

// waitForCount waits until counter reaches target or timeout expires.
func waitForCount(t *testing.T, timeout time.Duration, counter *atomix.Int64, target int64, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	backoff := iox.Backoff{}
	for counter.Load() < target {
		if time.Now().After(deadline) {
			t.Fatalf("timeout after %v: %s (got %d, want %d)", timeout, msg, counter.Load(), target)
		}
		backoff.Wait()
	}
}

// peak tracks the number of active callers and the largest value seen.
type peak struct {
	mu     sync.Mutex
	active int
	max    int
}

func (p *peak) enter() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active++
	p.max = max(p.max, p.active)
	return p.active
}

func (p *peak) leave() {
	p.mu.Lock()
	p.active--
	p.mu.Unlock()
}

func (p *peak) load() (active, maxSeen int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active, p.max
}

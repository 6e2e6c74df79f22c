// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wakebench_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/wakebench"
)

// TestTokenQueueFIFO tests basic enqueue/dequeue ordering and the
// would-block signals on full and empty queues.
func TestTokenQueueFIFO(t *testing.T) {
	q := wakebench.NewTokenQueue(3)

	if q.Cap() != 4 {
		t.Fatalf("Cap: got %d, want 4", q.Cap())
	}

	// Enqueue to capacity
	for i := range 4 {
		if err := q.Enqueue(wakebench.Token(i + 100)); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}

	// Full queue returns ErrWouldBlock
	if err := q.Enqueue(999); !errors.Is(err, wakebench.ErrWouldBlock) {
		t.Fatalf("Enqueue on full: got %v, want ErrWouldBlock", err)
	}

	// Dequeue in FIFO order
	for i := range 4 {
		tok, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue(%d): %v", i, err)
		}
		if tok != wakebench.Token(i+100) {
			t.Fatalf("Dequeue(%d): got %d, want %d", i, tok, i+100)
		}
	}

	// Empty queue returns ErrWouldBlock
	if _, err := q.Dequeue(); !errors.Is(err, wakebench.ErrWouldBlock) {
		t.Fatalf("Dequeue on empty: got %v, want ErrWouldBlock", err)
	}
}

// TestTokenQueueFullDoesNotBlock tests that an enqueue on a full queue fails
// immediately instead of blocking or silently dropping the token.
func TestTokenQueueFullDoesNotBlock(t *testing.T) {
	q := wakebench.NewTokenQueue(2)

	if err := q.Enqueue(1); err != nil {
		t.Fatalf("Enqueue(1): %v", err)
	}
	if err := q.Enqueue(2); err != nil {
		t.Fatalf("Enqueue(2): %v", err)
	}
	if err := q.Enqueue(3); !errors.Is(err, wakebench.ErrWouldBlock) {
		t.Fatalf("Enqueue on full: got %v, want ErrWouldBlock", err)
	}

	// The queued tokens are intact.
	for want := wakebench.Token(1); want <= 2; want++ {
		tok, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue: %v", err)
		}
		if tok != want {
			t.Fatalf("Dequeue: got %d, want %d", tok, want)
		}
	}
}

// TestMemoryFence tests that a fenced enqueue is observable afterwards.
// The fence's cross-goroutine guarantees are exercised by the strategy
// scenario tests.
func TestMemoryFence(t *testing.T) {
	q := wakebench.NewTokenQueue(8)

	if err := q.Enqueue(42); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	q.MemoryFence()

	tok, err := q.Dequeue()
	if err != nil {
		t.Fatalf("Dequeue: %v", err)
	}
	if tok != 42 {
		t.Fatalf("Dequeue: got %d, want 42", tok)
	}
}

// TestSentinelValue tests that the sentinel is the maximum representable
// token and can round-trip the queue.
func TestSentinelValue(t *testing.T) {
	if wakebench.Sentinel != ^wakebench.Token(0) {
		t.Fatalf("Sentinel: got %d, want all bits set", wakebench.Sentinel)
	}

	q := wakebench.NewTokenQueue(2)
	if err := q.Enqueue(wakebench.Sentinel); err != nil {
		t.Fatalf("Enqueue sentinel: %v", err)
	}
	tok, err := q.Dequeue()
	if err != nil {
		t.Fatalf("Dequeue sentinel: %v", err)
	}
	if tok != wakebench.Sentinel {
		t.Fatalf("Dequeue sentinel: got %d", tok)
	}
}

// TestIsWouldBlock tests semantic error classification.
func TestIsWouldBlock(t *testing.T) {
	if !wakebench.IsWouldBlock(wakebench.ErrWouldBlock) {
		t.Fatal("IsWouldBlock(ErrWouldBlock): got false")
	}
	if wakebench.IsWouldBlock(errors.New("other")) {
		t.Fatal("IsWouldBlock(other): got true")
	}
	if wakebench.IsWouldBlock(nil) {
		t.Fatal("IsWouldBlock(nil): got true")
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eventloop_test

import (
	"testing"
	"time"

	"code.hybscloud.com/wakebench/internal/eventloop"
)

// TestSendCoalesces tests that signals issued before the loop processes one
// collapse into a single callback invocation.
func TestSendCoalesces(t *testing.T) {
	l := eventloop.New()

	count := 0
	var a *eventloop.Async
	a = l.NewAsync(func() {
		count++
		a.Close()
	})

	for range 10 {
		a.Send()
	}
	l.Run()

	if count != 1 {
		t.Fatalf("callback invocations: got %d, want 1", count)
	}
}

// TestSequentialWakeups tests that spaced signals each produce a callback
// and that closing the last handle terminates Run.
func TestSequentialWakeups(t *testing.T) {
	l := eventloop.New()

	fired := make(chan struct{})
	count := 0
	var a *eventloop.Async
	a = l.NewAsync(func() {
		count++
		if count == 3 {
			a.Close()
		}
		fired <- struct{}{}
	})

	done := make(chan struct{})
	go func() {
		l.Run()
		close(done)
	}()

	for i := range 3 {
		a.Send()
		select {
		case <-fired:
		case <-time.After(10 * time.Second):
			t.Fatalf("timeout waiting for callback %d", i)
		}
	}

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("timeout: Run did not return after last handle closed")
	}
	if count != 3 {
		t.Fatalf("callback invocations: got %d, want 3", count)
	}
}

// TestSendAfterClose tests that signals on a closed handle are dropped
// without blocking or panicking.
func TestSendAfterClose(t *testing.T) {
	l := eventloop.New()

	var a *eventloop.Async
	a = l.NewAsync(func() { a.Close() })

	a.Send()
	l.Run()

	for range 5 {
		a.Send()
	}
}

// TestTwoHandles tests that each handle's callback fires independently and
// Run returns only after every handle is closed.
func TestTwoHandles(t *testing.T) {
	l := eventloop.New()

	var got [2]int
	var a0, a1 *eventloop.Async
	a0 = l.NewAsync(func() {
		got[0]++
		a0.Close()
	})
	a1 = l.NewAsync(func() {
		got[1]++
		a1.Close()
	})

	a0.Send()
	a1.Send()

	done := make(chan struct{})
	go func() {
		l.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("timeout: Run did not return")
	}

	if got[0] != 1 || got[1] != 1 {
		t.Fatalf("callback invocations: got %v, want [1 1]", got)
	}
}

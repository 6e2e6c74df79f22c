// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wakebench

import "code.hybscloud.com/atomix"

// CoalescingSemaphore is the blocking strategy: the consumer waits on a
// semaphore, and a per-worker pending flag coalesces an unbounded burst of
// notifications into a single wakeup.
//
// Invariant: at most one wakeup signal is outstanding per worker at any
// time. A Notify that finds the flag already set is safe to skip because the
// eventually-waking consumer drains everything enqueued up to that point.
type CoalescingSemaphore struct {
	queue   *TokenQueue
	sem     chan struct{}
	pending atomix.Bool
	drain   func() bool
}

// NewCoalescingSemaphore creates a semaphore strategy bound to the shared
// queue.
func NewCoalescingSemaphore(queue *TokenQueue) *CoalescingSemaphore {
	return &CoalescingSemaphore{queue: queue}
}

// Init allocates the semaphore and binds the worker's drain function.
func (s *CoalescingSemaphore) Init(drain func() bool) error {
	// The pending flag caps outstanding units at one, so a capacity-1
	// channel is a sufficient semaphore and the post never blocks.
	s.sem = make(chan struct{}, 1)
	s.drain = drain
	return nil
}

// Notify wakes the owning consumer unless a wakeup is already in flight.
//
// The fence makes the enqueue that triggered this notify visible to the
// consumer before the wakeup is observed. Only the goroutine that wins the
// false-to-true transition posts the semaphore.
func (s *CoalescingSemaphore) Notify() {
	s.queue.MemoryFence()

	if s.pending.LoadRelaxed() {
		return
	}
	if s.pending.CompareAndSwapAcqRel(false, true) {
		s.sem <- struct{}{}
	}
}

// Run blocks on the semaphore, clears the pending flag, and drains the queue
// to empty, repeating until the sentinel is observed.
//
// The true-to-false transition must succeed: a semaphore unit exists only if
// some notifier set the flag. A failed transition is a protocol violation,
// not a recoverable condition.
func (s *CoalescingSemaphore) Run() {
	for {
		<-s.sem

		if !s.pending.CompareAndSwapAcqRel(true, false) {
			panic("wakebench: semaphore wakeup without pending flag set")
		}

		if s.drain() {
			return
		}
	}
}

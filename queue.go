// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wakebench

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/lfq"
)

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// TokenQueue is the bounded queue shared by the producer and all workers for
// the lifetime of one benchmark run.
//
// It wraps the CAS sequence-based MPMC queue from [code.hybscloud.com/lfq].
// The sequence-based variant reports ErrWouldBlock on Dequeue only when the
// queue is genuinely empty, which the drain-to-completion shutdown protocol
// relies on. Enqueue and Dequeue are non-blocking; both return
// [ErrWouldBlock] instead of waiting.
//
// Capacity rounds up to the next power of 2, minimum 2.
type TokenQueue struct {
	_     pad
	fence atomix.Uint64
	_     pad
	q     lfq.Queue[Token]
}

// NewTokenQueue creates a TokenQueue with the given capacity.
// Panics if capacity < 2.
func NewTokenQueue(capacity int) *TokenQueue {
	return &TokenQueue{
		q: lfq.BuildMPMC[Token](lfq.New(capacity).Compact()),
	}
}

// Enqueue adds a token to the queue.
// Returns ErrWouldBlock if the queue is full.
func (q *TokenQueue) Enqueue(tok Token) error {
	return q.q.Enqueue(&tok)
}

// Dequeue removes and returns a token from the queue.
// Returns ErrWouldBlock if the queue is empty.
func (q *TokenQueue) Dequeue() (Token, error) {
	return q.q.Dequeue()
}

// Cap returns the queue capacity.
func (q *TokenQueue) Cap() int {
	return q.q.Cap()
}

// MemoryFence establishes a full visibility boundary between a preceding
// Enqueue and any subsequent wakeup signal: a consumer woken after the fence
// observes the enqueued token. Implemented as a sequentially consistent RMW
// on a dedicated padded word.
//
// Every notify path that sends a signal must call MemoryFence first.
func (q *TokenQueue) MemoryFence() {
	q.fence.Add(1)
}

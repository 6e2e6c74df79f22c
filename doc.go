// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package wakebench measures end-to-end latency and throughput of three
// consumer-wakeup strategies draining a shared bounded lock-free queue fed
// by a single producer.
//
// The question it answers: given a fixed producer rate, which wakeup
// strategy minimizes per-token latency and maximizes sustained throughput?
//
//   - BusySpin: the consumer never blocks and polls the queue continuously.
//     Removes wakeup latency entirely at the cost of a full core per worker;
//     the latency/throughput upper bound.
//   - CoalescingSemaphore: the consumer blocks on a semaphore; a per-worker
//     pending flag collapses bursts of notifications into a single wakeup.
//   - EventLoop: the consumer suspends inside a cooperative event loop and
//     is woken through an async handle, the way event-driven servers
//     multiplex wakeups.
//
// # Benchmark Protocol
//
// The producer timestamps each unit of work, enqueues the timestamp as a
// [Token] into the shared [TokenQueue], and notifies one worker selected
// round-robin. Whichever worker eventually dequeues the token records
// now-token into its latency histogram. A reserved [Sentinel] token tells a
// worker to dump its statistics and terminate.
//
// Running a benchmark:
//
//	h := wakebench.New(10_000_000).Workers(4).Capacity(8 << 20).Build()
//	for _, kind := range wakebench.Kinds() {
//	    res, err := h.Run(kind)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    _ = res
//	}
//
// Each run prints one throughput line and, per worker, one final-statistics
// line with min/max/median/75th/95th/98th/99th/99.9th percentile latencies
// plus mean and standard deviation, in nanoseconds.
//
// # Shutdown Protocol
//
// After the production loop the harness enqueues exactly one sentinel per
// worker slot, each followed by a notify to the next round-robin slot. Which
// worker dequeues which sentinel is unspecified; a worker terminates on the
// first sentinel it observes and never dequeues a second one, so N sentinels
// terminate N workers. Every ordinary token is drained before the workers
// exit because each worker drains the queue to empty on every wakeup.
//
// # Visibility Discipline
//
// Every notify path executes [TokenQueue.MemoryFence] before signaling, so
// the enqueue that triggered the notification is visible to whichever
// goroutine the signal wakes. Omitting the fence risks a consumer waking,
// observing an empty queue, and suspending again while a token is still
// becoming visible.
//
// # Error Handling
//
// Queue full/empty conditions are semantic signals ([ErrWouldBlock], from
// [code.hybscloud.com/iox]). Protocol violations are not runtime conditions
// and panic immediately: an enqueue failure during a run means the queue was
// undersized for the offered load, and a semaphore wakeup without the
// pending flag set means a defect in the coalescing logic.
//
// # Dependencies
//
// The shared queue is [code.hybscloud.com/lfq] (CAS sequence-based MPMC).
// This package uses [code.hybscloud.com/atomix] for atomics with explicit
// memory ordering, [code.hybscloud.com/spin] for CPU pause in the busy-spin
// drain loop, and [github.com/HdrHistogram/hdrhistogram-go] for latency
// recording.
package wakebench

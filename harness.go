// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wakebench

import (
	"fmt"
	"io"
	"sync"
	"time"

	"code.hybscloud.com/wakebench/internal/hrtime"
)

// monotonicStamp is the default token clock: the runtime's monotonic
// nanosecond counter.
func monotonicStamp() Token {
	return Token(hrtime.Now())
}

// Harness drives one producer against N workers of a chosen strategy.
type Harness struct {
	opts  Options
	stamp func() Token
}

// Result reports one benchmark run.
type Result struct {
	Strategy   Kind
	Elapsed    time.Duration
	Throughput float64 // tokens per second
	// Counts holds each worker's recorded-latency count; the sum equals
	// the iteration count when no token is lost or duplicated.
	Counts []int64
}

// Run executes one benchmark with the given strategy: init every worker,
// run the timed production loop with round-robin notification, report
// throughput, then shut down by enqueueing one sentinel per worker slot and
// joining every worker.
//
// Run returns an error only for worker initialization failures. Protocol
// violations (an enqueue failing under the configured load) panic.
func (h *Harness) Run(kind Kind) (*Result, error) {
	queue := NewTokenQueue(h.opts.capacity)
	out := &syncWriter{w: h.opts.out}

	workers := make([]*Worker, h.opts.workers)
	for i := range workers {
		workers[i] = NewWorker(queue, newStrategy(kind, queue), h.stamp, out)
	}
	for i, w := range workers {
		if err := w.Init(); err != nil {
			return nil, fmt.Errorf("wakebench: init worker %d: %w", i, err)
		}
	}

	index := 0
	start := time.Now()
	for i := 0; i < h.opts.iterations; i++ {
		if err := queue.Enqueue(h.stamp()); err != nil {
			panic("wakebench: enqueue failed: queue capacity too small for offered load")
		}
		workers[index%len(workers)].Notify()
		index++
	}
	elapsed := time.Since(start)

	rate := float64(h.opts.iterations) / elapsed.Seconds()
	fmt.Fprintf(out, "Test %q: Elapsed: %f seconds, Rate: %f queues/second\n",
		kind, elapsed.Seconds(), rate)

	// One sentinel per worker slot. Any worker may dequeue any sentinel;
	// each terminates on the first one it sees, so N sentinels terminate
	// N workers. The round-robin index continues from the production loop.
	for range workers {
		if err := queue.Enqueue(Sentinel); err != nil {
			panic("wakebench: enqueue failed: no room for shutdown sentinel")
		}
		workers[index%len(workers)].Notify()
		index++
	}

	counts := make([]int64, len(workers))
	for i, w := range workers {
		w.Join()
		counts[i] = w.Count()
	}

	return &Result{
		Strategy:   kind,
		Elapsed:    elapsed,
		Throughput: rate,
		Counts:     counts,
	}, nil
}

// syncWriter serializes worker statistics lines; workers may dump
// concurrently at shutdown.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

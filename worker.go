// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wakebench

import (
	"fmt"
	"io"
)

// Worker owns one notification strategy, one latency recorder and the
// goroutine that runs the drain loop. Its lifecycle is
// Uninitialized → Running → Terminated; a worker never re-enters Running
// after observing the sentinel.
type Worker struct {
	queue    *TokenQueue
	strategy Strategy
	recorder *Recorder
	now      func() Token
	out      io.Writer
	done     chan struct{}

	// observe, when set, is called with every ordinary token this worker
	// dequeues. Test hook; nil in normal operation.
	observe func(Token)
}

// NewWorker creates a worker draining queue through the given strategy.
// The now function supplies dequeue-side timestamps from the same clock the
// producer stamps tokens with; out receives the final-statistics line.
func NewWorker(queue *TokenQueue, strategy Strategy, now func() Token, out io.Writer) *Worker {
	return &Worker{
		queue:    queue,
		strategy: strategy,
		recorder: NewRecorder(),
		now:      now,
		out:      out,
		done:     make(chan struct{}),
	}
}

// Init allocates the strategy's wakeup primitives and starts the worker
// goroutine. A strategy allocation failure is propagated; the harness has no
// retry policy for infrastructure failures.
func (w *Worker) Init() error {
	if err := w.strategy.Init(w.drain); err != nil {
		return fmt.Errorf("wakebench: worker init: %w", err)
	}
	go func() {
		w.strategy.Run()
		w.dump()
		close(w.done)
	}()
	return nil
}

// Notify forwards the producer's signal to the worker's strategy.
func (w *Worker) Notify() {
	w.strategy.Notify()
}

// drain empties the queue, recording now-token for every ordinary token.
// Returns true once the sentinel is observed; remaining tokens (other
// workers' sentinels) stay in the queue.
func (w *Worker) drain() bool {
	for {
		tok, err := w.queue.Dequeue()
		if err != nil {
			return false
		}
		if tok == Sentinel {
			return true
		}
		if w.observe != nil {
			w.observe(tok)
		}
		w.recorder.Record(int64(w.now()) - int64(tok))
	}
}

// dump writes the worker's final-statistics line.
func (w *Worker) dump() {
	fmt.Fprintln(w.out, w.recorder.Stats())
}

// Join blocks until the worker goroutine has exited. After Join the
// recorder is safe to read.
func (w *Worker) Join() {
	<-w.done
}

// Count returns the number of latencies this worker recorded.
func (w *Worker) Count() int64 {
	return w.recorder.Count()
}

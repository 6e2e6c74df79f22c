// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wakebench

import (
	"io"
	"os"

	"github.com/coder/quartz"
)

// Defaults match the original benchmark dimensions: four consumer threads,
// ten million tokens, and a queue large enough that Enqueue never
// legitimately fails under that load.
const (
	DefaultWorkers    = 4
	DefaultIterations = 10_000_000
	DefaultCapacity   = 8 << 20
)

// Options configures a benchmark harness.
type Options struct {
	iterations int
	workers    int
	capacity   int
	out        io.Writer
	clock      quartz.Clock
}

// Builder creates benchmark harnesses with fluent configuration.
//
// Example:
//
//	h := wakebench.New(1_000_000).Workers(8).Capacity(1 << 20).Build()
//	res, err := h.Run(wakebench.KindSemaphore)
type Builder struct {
	opts Options
}

// New creates a harness builder for the given iteration count.
// Panics if iterations < 1.
func New(iterations int) *Builder {
	if iterations < 1 {
		panic("wakebench: iterations must be >= 1")
	}
	return &Builder{opts: Options{
		iterations: iterations,
		workers:    DefaultWorkers,
		capacity:   DefaultCapacity,
		out:        os.Stdout,
	}}
}

// Workers sets the fixed consumer count per run.
// Panics if n < 1.
func (b *Builder) Workers(n int) *Builder {
	if n < 1 {
		panic("wakebench: workers must be >= 1")
	}
	b.opts.workers = n
	return b
}

// Capacity sets the shared queue capacity. The queue must be sized so that
// Enqueue never fails under the configured iteration count; an enqueue
// failure during a run is fatal. Rounds up to the next power of 2.
// Panics if n < 2.
func (b *Builder) Capacity(n int) *Builder {
	if n < 2 {
		panic("wakebench: capacity must be >= 2")
	}
	b.opts.capacity = n
	return b
}

// Output sets the writer that receives throughput and statistics lines.
// Defaults to os.Stdout.
func (b *Builder) Output(w io.Writer) *Builder {
	b.opts.out = w
	return b
}

// Clock sets the clock used to stamp tokens and timestamp dequeues. When
// unset, the runtime's monotonic nanosecond clock is used directly. A mock
// clock makes latencies deterministic in tests.
func (b *Builder) Clock(c quartz.Clock) *Builder {
	b.opts.clock = c
	return b
}

// Build creates the harness. The harness is reusable: each Run constructs a
// fresh queue and fresh workers.
func (b *Builder) Build() *Harness {
	h := &Harness{opts: b.opts}
	if c := b.opts.clock; c != nil {
		h.stamp = func() Token { return Token(c.Now().UnixNano()) }
	} else {
		h.stamp = monotonicStamp
	}
	return h
}

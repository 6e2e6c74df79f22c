// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wakebench

import "code.hybscloud.com/wakebench/internal/eventloop"

// EventLoop is the asynchronous strategy: the consumer suspends inside a
// cooperative event loop owned by the worker and is woken through an async
// handle that is safe to signal from the producer goroutine.
//
// Signals coalesce at the handle: several notifies before the loop processes
// one collapse into a single callback invocation, which is acceptable
// because the callback always drains the queue to empty.
type EventLoop struct {
	queue *TokenQueue
	loop  *eventloop.Loop
	async *eventloop.Async
}

// NewEventLoop creates an event-loop strategy bound to the shared queue.
func NewEventLoop(queue *TokenQueue) *EventLoop {
	return &EventLoop{queue: queue}
}

// Init creates the loop and registers the drain callback on an async
// handle. Observing the sentinel closes the handle, which terminates the
// loop; no further callbacks fire after that.
func (s *EventLoop) Init(drain func() bool) error {
	s.loop = eventloop.New()
	s.async = s.loop.NewAsync(func() {
		if drain() {
			s.async.Close()
		}
	})
	return nil
}

// Notify signals the async handle after fencing the triggering enqueue.
func (s *EventLoop) Notify() {
	s.queue.MemoryFence()
	s.async.Send()
}

// Run drives the event loop until the sentinel callback closes the handle.
func (s *EventLoop) Run() {
	s.loop.Run()
}

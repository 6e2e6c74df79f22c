// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wakebench

import "code.hybscloud.com/spin"

// BusySpin is the polling strategy: the consumer never blocks and attempts
// to dequeue in a tight loop, burning a full core per worker. Notify sends
// no signal, so no memory fence is needed either; the consumer's next poll
// observes the enqueue through the queue's own ordering.
type BusySpin struct {
	drain func() bool
}

// NewBusySpin creates a busy-polling strategy.
func NewBusySpin() *BusySpin {
	return &BusySpin{}
}

// Init binds the worker's drain function. Never fails.
func (s *BusySpin) Init(drain func() bool) error {
	s.drain = drain
	return nil
}

// Notify is a no-op; the consumer is always polling.
func (s *BusySpin) Notify() {}

// Run polls the drain function until it reports the sentinel, issuing a CPU
// pause between empty polls.
func (s *BusySpin) Run() {
	sw := spin.Wait{}
	for !s.drain() {
		sw.Once()
	}
}

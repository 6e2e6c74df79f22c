// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eventloop

import "code.hybscloud.com/atomix"

// Loop is a single-goroutine cooperative event loop. Between signals the
// loop goroutine is suspended on the wake channel; it holds no locks and
// burns no CPU.
type Loop struct {
	wake    chan struct{}
	handles []*Async
	open    int
}

// New creates an idle loop with no registered handles.
func New() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// NewAsync registers an async handle whose callback runs on the loop
// goroutine. Must be called before Run.
func (l *Loop) NewAsync(cb func()) *Async {
	a := &Async{loop: l, cb: cb}
	l.handles = append(l.handles, a)
	l.open++
	return a
}

// Run processes signals until every handle has been closed. It blocks the
// calling goroutine for the lifetime of the loop; callbacks run on that
// goroutine.
func (l *Loop) Run() {
	for l.open > 0 {
		<-l.wake
		for _, a := range l.handles {
			if a.closed {
				continue
			}
			if a.pending.CompareAndSwapAcqRel(true, false) {
				a.cb()
			}
		}
	}
}

// Async is a cross-goroutine wakeup handle registered with a Loop.
type Async struct {
	loop    *Loop
	cb      func()
	pending atomix.Bool
	closed  bool // loop goroutine only
}

// Send signals the handle. Safe to call from any goroutine; never blocks.
//
// Signals coalesce: if one is already pending when the next arrives, the
// callback fires once for both. Sends on a closed handle are dropped.
func (a *Async) Send() {
	if a.pending.LoadRelaxed() {
		return
	}
	if a.pending.CompareAndSwapAcqRel(false, true) {
		select {
		case a.loop.wake <- struct{}{}:
		default:
		}
	}
}

// Close deactivates the handle. Must be called on the loop goroutine, from
// inside a callback. Once every handle on the loop is closed, Run returns.
func (a *Async) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.loop.open--
}

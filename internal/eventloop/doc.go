// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package eventloop provides a minimal single-goroutine cooperative event
// loop with cross-goroutine async wakeup handles.
//
// A [Loop] runs callbacks on one goroutine. Other goroutines signal it
// through [Async] handles; signals issued before the loop processes one
// collapse into a single callback invocation, so callbacks must be written
// to process all available work (drain to empty).
//
// Handle registration happens before [Loop.Run]; closing a handle happens on
// the loop goroutine, from inside a callback. Run returns when every handle
// has been closed.
//
// Layout contract:
// Send is the only operation safe to call from outside the loop goroutine.
package eventloop

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wakebench

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// ErrWouldBlock indicates a queue operation cannot proceed immediately.
//
// For Enqueue: the queue is full. During a benchmark run a full queue is a
// fatal condition (the capacity was undersized for the offered load) and the
// harness panics instead of retrying.
//
// For Dequeue: the queue is empty. Workers treat this as the end of a drain
// burst and suspend again according to their strategy.
//
// This is an alias for [lfq.ErrWouldBlock] (itself sourced from
// [iox.ErrWouldBlock]) for ecosystem consistency.
var ErrWouldBlock = lfq.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

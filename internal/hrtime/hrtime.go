// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hrtime exposes the runtime's monotonic nanosecond clock.
//
// It is faster than time.Now because it returns a single int64 and avoids
// constructing a time.Time, which matters in the producer's hot loop where
// every token carries a timestamp.
package hrtime

import (
	_ "unsafe" // go:linkname
)

// nanotime returns the current monotonic time in nanoseconds.
//
//go:linkname nanotime runtime.nanotime
func nanotime() int64

// Now returns the current monotonic time in nanoseconds. Readings are
// non-decreasing within a process.
func Now() uint64 {
	return uint64(nanotime())
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wakebench

// Token is one unit of work: a 64-bit producer-side monotonic timestamp in
// nanoseconds, or the shutdown [Sentinel].
type Token uint64

// Sentinel is the reserved token value that signals worker shutdown. It
// carries no timing meaning. A worker that dequeues a sentinel dumps its
// statistics and terminates; it never dequeues a second one.
const Sentinel Token = ^Token(0)

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package wakebench

// RaceEnabled is true when the race detector is active.
// Used by tests to skip cross-goroutine benchmark scenarios; the underlying
// lock-free queue synchronizes through atomic memory orderings the race
// detector cannot observe, producing false positives.
const RaceEnabled = true

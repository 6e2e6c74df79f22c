// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hrtime_test

import (
	"testing"
	"time"

	"code.hybscloud.com/wakebench/internal/hrtime"
)

func TestNowMonotonic(t *testing.T) {
	prev := hrtime.Now()
	for range 1000 {
		now := hrtime.Now()
		if now < prev {
			t.Fatalf("clock went backwards: %d -> %d", prev, now)
		}
		prev = now
	}
}

func TestNowAdvances(t *testing.T) {
	start := hrtime.Now()
	time.Sleep(10 * time.Millisecond)
	elapsed := time.Duration(hrtime.Now() - start)
	if elapsed < 5*time.Millisecond {
		t.Fatalf("elapsed %v over a 10ms sleep", elapsed)
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wakebench

import (
	"fmt"

	hdrhistogram "github.com/HdrHistogram/hdrhistogram-go"
)

// Histogram bounds: 1ns to one hour, 3 significant figures.
const (
	lowestTrackable  = 1
	highestTrackable = 3600 * 1000 * 1000 * 1000
	sigfigs          = 3
)

// Recorder accumulates per-worker latency observations in an HDR histogram.
//
// A Recorder is owned by a single worker and is not safe for concurrent use;
// only the owning worker's goroutine records into it. Reading statistics is
// safe once the worker has terminated.
type Recorder struct {
	h *hdrhistogram.Histogram
}

// NewRecorder creates a Recorder tracking values from 1ns to one hour with
// three significant figures of precision.
func NewRecorder() *Recorder {
	return &Recorder{
		h: hdrhistogram.New(lowestTrackable, highestTrackable, sigfigs),
	}
}

// Record adds one latency observation in nanoseconds.
// Values outside the trackable range are dropped.
func (r *Recorder) Record(v int64) {
	_ = r.h.RecordValue(v)
}

// Count returns the number of recorded observations.
func (r *Recorder) Count() int64 {
	return r.h.TotalCount()
}

// Stats returns the final-statistics line: min, max, median, 75th, 95th,
// 98th, 99th and 99.9th percentiles plus mean and standard deviation, in
// nanoseconds.
func (r *Recorder) Stats() string {
	return fmt.Sprintf(
		"final stats (nanoseconds): min %d max %d median %d 75th %d 95th %d 98th %d 99th %d 99.9th %d mean: %f stddev: %f",
		r.h.Min(), r.h.Max(),
		r.h.ValueAtQuantile(50), r.h.ValueAtQuantile(75),
		r.h.ValueAtQuantile(95), r.h.ValueAtQuantile(98),
		r.h.ValueAtQuantile(99), r.h.ValueAtQuantile(99.9),
		r.h.Mean(), r.h.StdDev(),
	)
}

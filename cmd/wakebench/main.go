// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command wakebench runs the three consumer-wakeup strategy benchmarks in
// randomized order and prints one throughput line plus one final-statistics
// line per worker for each run.
//
// Usage:
//
//	wakebench [-n tokens] [-w workers] [-capacity slots]
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"code.hybscloud.com/wakebench"
)

func main() {
	iterations := flag.Int("n", wakebench.DefaultIterations, "tokens to enqueue per run")
	workers := flag.Int("w", wakebench.DefaultWorkers, "consumer workers per run")
	capacity := flag.Int("capacity", wakebench.DefaultCapacity, "shared queue capacity in slots")
	flag.Parse()

	h := wakebench.New(*iterations).
		Workers(*workers).
		Capacity(*capacity).
		Build()

	kinds := wakebench.Kinds()
	rand.Shuffle(len(kinds), func(i, j int) {
		kinds[i], kinds[j] = kinds[j], kinds[i]
	})

	for _, kind := range kinds {
		if _, err := h.Run(kind); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package goruntime

import "github.com/xxzx6uzm3/asymmetric-ciphers/common/metrics"

var (
	goRoutinesGaugeOpts = metrics.GaugeOpts{
		Namespace: "go",
		Name:      "goroutines",
		Help:      "Current number of goroutines.",
	}
	heapAllocGaugeOpts = metrics.GaugeOpts{
		Namespace: "go",
		Subsystem: "mem",
		Name:      "heap_alloc_bytes",
		Help:      "Bytes of allocated heap objects.",
	}
	heapObjectsGaugeOpts = metrics.GaugeOpts{
		Namespace: "go",
		Subsystem: "mem",
		Name:      "heap_objects",
		Help:      "Number of allocated heap objects.",
	}
	totalAllocGaugeOpts = metrics.GaugeOpts{
		Namespace: "go",
		Subsystem: "mem",
		Name:      "total_alloc_bytes",
		Help:      "Cumulative bytes allocated for heap objects.",
	}
	numGCGaugeOpts = metrics.GaugeOpts{
		Namespace: "go",
		Subsystem: "gc",
		Name:      "completed_cycles",
		Help:      "Number of completed GC cycles.",
	}
	lastPauseGaugeOpts = metrics.GaugeOpts{
		Namespace: "go",
		Subsystem: "gc",
		Name:      "last_pause_ns",
		Help:      "Duration of the most recent stop-the-world pause.",
	}
)

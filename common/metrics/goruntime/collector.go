/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package goruntime publishes Go runtime statistics through a metrics
// provider that, unlike prometheus, has no collectors of its own.
package goruntime

import (
	"runtime"
	"time"

	"github.com/xxzx6uzm3/asymmetric-ciphers/common/metrics"
)

type Collector struct {
	GoRoutines  metrics.Gauge
	HeapAlloc   metrics.Gauge
	HeapObjects metrics.Gauge
	TotalAlloc  metrics.Gauge
	NumGC       metrics.Gauge
	LastPause   metrics.Gauge
}

func NewCollector(p metrics.Provider) *Collector {
	return &Collector{
		GoRoutines:  p.NewGauge(goRoutinesGaugeOpts),
		HeapAlloc:   p.NewGauge(heapAllocGaugeOpts),
		HeapObjects: p.NewGauge(heapObjectsGaugeOpts),
		TotalAlloc:  p.NewGauge(totalAllocGaugeOpts),
		NumGC:       p.NewGauge(numGCGaugeOpts),
		LastPause:   p.NewGauge(lastPauseGaugeOpts),
	}
}

// CollectAndPublish publishes a fresh sample on every tick until ticks is
// closed.
func (c *Collector) CollectAndPublish(ticks <-chan time.Time) {
	for range ticks {
		c.Publish(CollectStats())
	}
}

func (c *Collector) Publish(stats Stats) {
	c.GoRoutines.Set(float64(stats.GoRoutines))
	c.HeapAlloc.Set(float64(stats.MemStats.HeapAlloc))
	c.HeapObjects.Set(float64(stats.MemStats.HeapObjects))
	c.TotalAlloc.Set(float64(stats.MemStats.TotalAlloc))
	c.NumGC.Set(float64(stats.MemStats.NumGC))
	c.LastPause.Set(float64(stats.MemStats.PauseNs[(stats.MemStats.NumGC+255)%256]))
}

type Stats struct {
	GoRoutines int
	MemStats   runtime.MemStats
}

func CollectStats() Stats {
	stats := Stats{GoRoutines: runtime.NumGoroutine()}
	runtime.ReadMemStats(&stats.MemStats)
	return stats
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metricsfakes

import (
	"sync"

	"github.com/xxzx6uzm3/asymmetric-ciphers/common/metrics"
)

type Counter struct {
	mutex       sync.RWMutex
	withArgs    [][]string
	withReturns metrics.Counter
	addArgs     []float64
}

func (c *Counter) With(labelValues ...string) metrics.Counter {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.withArgs = append(c.withArgs, labelValues)
	if c.withReturns != nil {
		return c.withReturns
	}
	return c
}

func (c *Counter) WithReturns(result metrics.Counter) {
	c.mutex.Lock()
	c.withReturns = result
	c.mutex.Unlock()
}

func (c *Counter) WithCallCount() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.withArgs)
}

func (c *Counter) WithArgsForCall(i int) []string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.withArgs[i]
}

func (c *Counter) Add(delta float64) {
	c.mutex.Lock()
	c.addArgs = append(c.addArgs, delta)
	c.mutex.Unlock()
}

func (c *Counter) AddCallCount() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.addArgs)
}

func (c *Counter) AddArgsForCall(i int) float64 {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.addArgs[i]
}

// Total is the sum of every Add.
func (c *Counter) Total() float64 {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	var sum float64
	for _, d := range c.addArgs {
		sum += d
	}
	return sum
}

type Gauge struct {
	mutex    sync.RWMutex
	withArgs [][]string
	addArgs  []float64
	setArgs  []float64
}

func (g *Gauge) With(labelValues ...string) metrics.Gauge {
	g.mutex.Lock()
	g.withArgs = append(g.withArgs, labelValues)
	g.mutex.Unlock()
	return g
}

func (g *Gauge) WithCallCount() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return len(g.withArgs)
}

func (g *Gauge) WithArgsForCall(i int) []string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.withArgs[i]
}

func (g *Gauge) Add(delta float64) {
	g.mutex.Lock()
	g.addArgs = append(g.addArgs, delta)
	g.mutex.Unlock()
}

func (g *Gauge) AddCallCount() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return len(g.addArgs)
}

func (g *Gauge) Set(value float64) {
	g.mutex.Lock()
	g.setArgs = append(g.setArgs, value)
	g.mutex.Unlock()
}

func (g *Gauge) SetCallCount() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return len(g.setArgs)
}

func (g *Gauge) SetArgsForCall(i int) float64 {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.setArgs[i]
}

type Histogram struct {
	mutex       sync.RWMutex
	withArgs    [][]string
	observeArgs []float64
}

func (h *Histogram) With(labelValues ...string) metrics.Histogram {
	h.mutex.Lock()
	h.withArgs = append(h.withArgs, labelValues)
	h.mutex.Unlock()
	return h
}

func (h *Histogram) WithCallCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.withArgs)
}

func (h *Histogram) WithArgsForCall(i int) []string {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.withArgs[i]
}

func (h *Histogram) Observe(value float64) {
	h.mutex.Lock()
	h.observeArgs = append(h.observeArgs, value)
	h.mutex.Unlock()
}

func (h *Histogram) ObserveCallCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.observeArgs)
}

func (h *Histogram) ObserveArgsForCall(i int) float64 {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.observeArgs[i]
}

var (
	_ metrics.Counter   = new(Counter)
	_ metrics.Gauge     = new(Gauge)
	_ metrics.Histogram = new(Histogram)
)

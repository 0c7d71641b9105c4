/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package metricsfakes provides recording fakes for the metrics interfaces.
// Unless a stub or return value is configured, the Provider hands out fresh
// fakes and With returns the receiver, so a test can inspect every call made
// through a single instrument.
package metricsfakes

import (
	"sync"

	"github.com/xxzx6uzm3/asymmetric-ciphers/common/metrics"
)

type Provider struct {
	NewCounterStub   func(metrics.CounterOpts) metrics.Counter
	NewGaugeStub     func(metrics.GaugeOpts) metrics.Gauge
	NewHistogramStub func(metrics.HistogramOpts) metrics.Histogram

	mutex         sync.RWMutex
	counterArgs   []metrics.CounterOpts
	gaugeArgs     []metrics.GaugeOpts
	histogramArgs []metrics.HistogramOpts
	counters      map[string]*Counter
	gauges        map[string]*Gauge
	histograms    map[string]*Histogram
}

func (p *Provider) NewCounter(o metrics.CounterOpts) metrics.Counter {
	p.mutex.Lock()
	p.counterArgs = append(p.counterArgs, o)
	stub := p.NewCounterStub
	if stub == nil {
		if p.counters == nil {
			p.counters = map[string]*Counter{}
		}
		c := &Counter{}
		p.counters[o.Name] = c
		p.mutex.Unlock()
		return c
	}
	p.mutex.Unlock()
	return stub(o)
}

func (p *Provider) NewCounterCallCount() int {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return len(p.counterArgs)
}

func (p *Provider) NewCounterArgsForCall(i int) metrics.CounterOpts {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.counterArgs[i]
}

// CounterNamed returns the default fake created for the named counter.
func (p *Provider) CounterNamed(name string) *Counter {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.counters[name]
}

func (p *Provider) NewGauge(o metrics.GaugeOpts) metrics.Gauge {
	p.mutex.Lock()
	p.gaugeArgs = append(p.gaugeArgs, o)
	stub := p.NewGaugeStub
	if stub == nil {
		if p.gauges == nil {
			p.gauges = map[string]*Gauge{}
		}
		g := &Gauge{}
		p.gauges[o.Name] = g
		p.mutex.Unlock()
		return g
	}
	p.mutex.Unlock()
	return stub(o)
}

func (p *Provider) NewGaugeCallCount() int {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return len(p.gaugeArgs)
}

// GaugeNamed returns the default fake created for the named gauge.
func (p *Provider) GaugeNamed(name string) *Gauge {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.gauges[name]
}

func (p *Provider) NewHistogram(o metrics.HistogramOpts) metrics.Histogram {
	p.mutex.Lock()
	p.histogramArgs = append(p.histogramArgs, o)
	stub := p.NewHistogramStub
	if stub == nil {
		if p.histograms == nil {
			p.histograms = map[string]*Histogram{}
		}
		h := &Histogram{}
		p.histograms[o.Name] = h
		p.mutex.Unlock()
		return h
	}
	p.mutex.Unlock()
	return stub(o)
}

func (p *Provider) NewHistogramCallCount() int {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return len(p.histogramArgs)
}

// HistogramNamed returns the default fake created for the named histogram.
func (p *Provider) HistogramNamed(name string) *Histogram {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.histograms[name]
}

var _ metrics.Provider = new(Provider)

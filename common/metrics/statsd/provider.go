/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statsd

import (
	"strings"

	"github.com/go-kit/kit/metrics/statsd"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/metrics"
)

// Provider emits meters through a go-kit statsd client. Statsd has no
// concept of labels, so label values are appended to the metric name as
// additional dot separated segments, ordered by the declared label names.
type Provider struct {
	Statsd *statsd.Statsd
}

func (p *Provider) NewCounter(o metrics.CounterOpts) metrics.Counter {
	return &Counter{
		statsd:     p.Statsd,
		name:       fqname(o.Namespace, o.Subsystem, o.Name),
		labelNames: o.LabelNames,
	}
}

func (p *Provider) NewGauge(o metrics.GaugeOpts) metrics.Gauge {
	return &Gauge{
		statsd:     p.Statsd,
		name:       fqname(o.Namespace, o.Subsystem, o.Name),
		labelNames: o.LabelNames,
	}
}

func (p *Provider) NewHistogram(o metrics.HistogramOpts) metrics.Histogram {
	return &Histogram{
		statsd:     p.Statsd,
		name:       fqname(o.Namespace, o.Subsystem, o.Name),
		labelNames: o.LabelNames,
	}
}

type Counter struct {
	statsd      *statsd.Statsd
	name        string
	labelNames  []string
	labelValues []string
}

func (c *Counter) With(labelValues ...string) metrics.Counter {
	return &Counter{
		statsd:      c.statsd,
		name:        c.name,
		labelNames:  c.labelNames,
		labelValues: append(append([]string{}, c.labelValues...), labelValues...),
	}
}

func (c *Counter) Add(delta float64) {
	c.statsd.NewCounter(fullname(c.name, c.labelNames, c.labelValues), 1).Add(delta)
}

type Gauge struct {
	statsd      *statsd.Statsd
	name        string
	labelNames  []string
	labelValues []string
}

func (g *Gauge) With(labelValues ...string) metrics.Gauge {
	return &Gauge{
		statsd:      g.statsd,
		name:        g.name,
		labelNames:  g.labelNames,
		labelValues: append(append([]string{}, g.labelValues...), labelValues...),
	}
}

func (g *Gauge) Add(delta float64) {
	g.statsd.NewGauge(fullname(g.name, g.labelNames, g.labelValues)).Add(delta)
}

func (g *Gauge) Set(value float64) {
	g.statsd.NewGauge(fullname(g.name, g.labelNames, g.labelValues)).Set(value)
}

type Histogram struct {
	statsd      *statsd.Statsd
	name        string
	labelNames  []string
	labelValues []string
}

func (h *Histogram) With(labelValues ...string) metrics.Histogram {
	return &Histogram{
		statsd:      h.statsd,
		name:        h.name,
		labelNames:  h.labelNames,
		labelValues: append(append([]string{}, h.labelValues...), labelValues...),
	}
}

func (h *Histogram) Observe(value float64) {
	h.statsd.NewTiming(fullname(h.name, h.labelNames, h.labelValues), 1).Observe(value)
}

func fqname(namespace, subsystem, name string) string {
	var parts []string
	for _, p := range []string{namespace, subsystem, name} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}

// fullname appends one segment per label name in declaration order.
// labelValues holds alternating label names and values, the go-kit
// convention. Unset labels render as empty segments and dots inside values
// are replaced so they cannot introduce extra segments.
func fullname(name string, labelNames, labelValues []string) string {
	if len(labelNames) == 0 {
		return name
	}
	values := map[string]string{}
	for i := 0; i+1 < len(labelValues); i += 2 {
		values[labelValues[i]] = labelValues[i+1]
	}
	segments := []string{name}
	for _, ln := range labelNames {
		segments = append(segments, strings.ReplaceAll(values[ln], ".", "_"))
	}
	return strings.Join(segments, ".")
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsa

import (
	"strconv"
	"time"

	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/primality"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/metrics"
)

var (
	keysGeneratedOpts = metrics.CounterOpts{
		Namespace:  "rsa",
		Name:       "keys_generated_total",
		Help:       "The number of key pairs generated, by profile and weakness.",
		LabelNames: []string{"profile", "weak"},
	}
	generationDurationOpts = metrics.HistogramOpts{
		Namespace:  "rsa",
		Name:       "key_generation_duration_seconds",
		Help:       "The time taken to generate a key pair, in seconds.",
		Buckets:    []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		LabelNames: []string{"profile"},
	}
	primePairRedrawsOpts = metrics.CounterOpts{
		Namespace:  "rsa",
		Name:       "prime_pair_redraws_total",
		Help:       "The number of prime pairs discarded during key generation.",
		LabelNames: []string{"profile"},
	}
)

type Metrics struct {
	KeysGenerated      metrics.Counter
	GenerationDuration metrics.Histogram
	PrimePairRedraws   metrics.Counter
	Primality          *primality.Metrics
}

func NewMetrics(p metrics.Provider) *Metrics {
	return &Metrics{
		KeysGenerated:      p.NewCounter(keysGeneratedOpts),
		GenerationDuration: p.NewHistogram(generationDurationOpts),
		PrimePairRedraws:   p.NewCounter(primePairRedrawsOpts),
		Primality:          primality.NewMetrics(p),
	}
}

func (m *Metrics) generated(profile SecurityProfile, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.KeysGenerated.With("profile", profile.Name, "weak", strconv.FormatBool(profile.Weak)).Add(1)
	m.GenerationDuration.With("profile", profile.Name).Observe(elapsed.Seconds())
}

func (m *Metrics) redraw(profile string) {
	if m == nil {
		return
	}
	m.PrimePairRedraws.With("profile", profile).Add(1)
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package primality

import "github.com/xxzx6uzm3/asymmetric-ciphers/common/metrics"

const (
	outcomePrime     = "prime"
	outcomeComposite = "composite"
)

var candidatesCheckedOpts = metrics.CounterOpts{
	Namespace:  "primality",
	Name:       "candidates_total",
	Help:       "The number of random candidates tested for primality, by outcome.",
	LabelNames: []string{"outcome"},
}

type Metrics struct {
	CandidatesChecked metrics.Counter
}

func NewMetrics(p metrics.Provider) *Metrics {
	return &Metrics{
		CandidatesChecked: p.NewCounter(candidatesCheckedOpts),
	}
}

func (m *Metrics) observe(outcome string) {
	if m == nil {
		return
	}
	m.CandidatesChecked.With("outcome", outcome).Add(1)
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsa_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/bigmath"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/rsa"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/metrics/metricsfakes"
)

func TestBuildBatch(t *testing.T) {
	provider := &metricsfakes.Provider{}
	g := &rsa.Generator{Metrics: rsa.NewMetrics(provider)}

	keys, weak, err := g.BuildBatch(context.Background(), "RSA-576", 6, 3)
	require.NoError(t, err)
	assert.True(t, weak)
	require.Len(t, keys, 6)

	moduli := map[string]struct{}{}
	for _, kp := range keys {
		require.NotNil(t, kp)
		assert.GreaterOrEqual(t, bigmath.Digits(kp.N()), 174)
		moduli[kp.N().String()] = struct{}{}
	}
	assert.Len(t, moduli, 6, "key pairs should be independent")
	assert.Equal(t, float64(6), provider.CounterNamed("keys_generated_total").Total())
}

func TestBuildBatchEdgeCases(t *testing.T) {
	g := &rsa.Generator{}

	keys, _, err := g.BuildBatch(context.Background(), "RSA-576", 0, 4)
	require.NoError(t, err)
	assert.Empty(t, keys)

	keys, _, err = g.BuildBatch(context.Background(), "RSA-576", 1, 0)
	require.NoError(t, err)
	assert.Len(t, keys, 1)

	_, _, err = g.BuildBatch(context.Background(), "RSA-576", -1, 1)
	assert.EqualError(t, err, "invalid key pair count -1")

	_, _, err = g.BuildBatch(context.Background(), "RSA-9999", 2, 2)
	var upe *rsa.UnknownProfileError
	assert.True(t, errors.As(err, &upe))
}

func TestBuildBatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := &rsa.Generator{}
	_, _, err := g.BuildBatch(ctx, "RSA-768", 4, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

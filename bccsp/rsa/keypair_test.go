/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsa_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/bigmath"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/rsa"
)

func textbookKey() *rsa.KeyPair {
	return rsa.FromKnownParams(big.NewInt(61), big.NewInt(53), big.NewInt(17))
}

func TestFromKnownParams(t *testing.T) {
	t.Parallel()

	kp := textbookKey()
	assert.Equal(t, int64(61), kp.P().Int64())
	assert.Equal(t, int64(53), kp.Q().Int64())
	assert.Equal(t, int64(3233), kp.N().Int64())
	assert.Equal(t, int64(3120), kp.Euler().Int64())
	assert.Equal(t, int64(17), kp.E().Int64())

	d, err := kp.D()
	require.NoError(t, err)
	assert.Equal(t, int64(2753), d.Int64())
}

func TestKeyPairAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	kp := textbookKey()
	kp.N().SetInt64(1)
	kp.E().SetInt64(1)
	kp.P().SetInt64(1)

	assert.Equal(t, int64(3233), kp.N().Int64())
	assert.Equal(t, int64(17), kp.E().Int64())
	assert.Equal(t, int64(61), kp.P().Int64())
}

func TestFromKnownParamsCopiesArguments(t *testing.T) {
	t.Parallel()

	p, q, e := big.NewInt(61), big.NewInt(53), big.NewInt(17)
	kp := rsa.FromKnownParams(p, q, e)
	p.SetInt64(7)
	e.SetInt64(5)

	assert.Equal(t, int64(61), kp.P().Int64())
	assert.Equal(t, int64(17), kp.E().Int64())
}

func TestWithExponent(t *testing.T) {
	t.Parallel()

	kp := textbookKey()
	kp7 := kp.WithExponent(big.NewInt(7))

	assert.Equal(t, int64(17), kp.E().Int64())
	assert.Equal(t, int64(7), kp7.E().Int64())
	assert.Equal(t, kp.N(), kp7.N())

	d, err := kp7.D()
	require.NoError(t, err)
	prod := new(big.Int).Mul(d, big.NewInt(7))
	assert.Equal(t, int64(1), prod.Mod(prod, kp7.Euler()).Int64())
}

func TestIncompatibleExponent(t *testing.T) {
	t.Parallel()

	kp := rsa.FromKnownParams(big.NewInt(61), big.NewInt(53), big.NewInt(6))
	_, err := kp.D()

	var nie *bigmath.NoInverseError
	require.True(t, errors.As(err, &nie))
	assert.Equal(t, int64(6), nie.A.Int64())
	assert.Equal(t, int64(3120), nie.M.Int64())

	_, err = kp.Private()
	assert.EqualError(t, err, "modular inverse of 6 mod 3120 does not exist")
}

func TestPublicPrivateViews(t *testing.T) {
	t.Parallel()

	kp := textbookKey()
	pub := kp.Public()
	assert.Equal(t, int64(17), pub.E.Int64())
	assert.Equal(t, int64(3233), pub.N.Int64())

	priv, err := kp.Private()
	require.NoError(t, err)
	assert.Equal(t, int64(2753), priv.D.Int64())
	assert.Equal(t, int64(3233), priv.N.Int64())
}

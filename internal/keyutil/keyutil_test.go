/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package keyutil_test

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/keystore"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/rsa"
	"github.com/xxzx6uzm3/asymmetric-ciphers/internal/keyutil"
	"golang.org/x/crypto/blake2b"
)

func storeKey(t *testing.T, dir, name string, kp *rsa.KeyPair) {
	ks, err := keystore.NewFileBasedKeyStore(dir, false)
	require.NoError(t, err)
	require.NoError(t, ks.StoreKey(name, kp))
}

func smallKey() *rsa.KeyPair {
	return rsa.FromKnownParams(big.NewInt(1000003), big.NewInt(999983), big.NewInt(5))
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	storeKey(t, dir, "small", smallKey())

	info, err := keyutil.Inspect(dir, "small")
	require.NoError(t, err)
	assert.Equal(t, "small", info.Name)
	assert.Equal(t, 12, info.ModulusDigits)
	assert.Equal(t, int64(5), info.Exponent.Int64())
	assert.Equal(t, 12, info.PrivateDigits)
	assert.Equal(t, "none", info.Profile)
	assert.False(t, info.ModulusMismatch)

	sum := blake2b.Sum256([]byte("5,999985999949"))
	assert.Equal(t, hex.EncodeToString(sum[:]), info.Fingerprint)
	assert.Len(t, info.Fingerprint, 64)

	buf := &bytes.Buffer{}
	keyutil.WriteInfo(buf, info)
	assert.Equal(t, "name: small\nprofile: none\nfingerprint: "+info.Fingerprint+"\nmodulus digits: 12\npublic exponent: 5\nprivate exponent digits: 12\n", buf.String())
}

func TestInspectGeneratedKey(t *testing.T) {
	kp, weak, err := rsa.GenerateKeyPair("RSA-576")
	require.NoError(t, err)
	require.True(t, weak)

	dir := t.TempDir()
	storeKey(t, dir, "generated", kp)

	info, err := keyutil.Inspect(dir, "generated")
	require.NoError(t, err)
	assert.Equal(t, "RSA-576", info.Profile)
	assert.GreaterOrEqual(t, info.ModulusDigits, 174)

	require.NoError(t, keyutil.Verify(dir, "generated"))
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	storeKey(t, dir, "small", smallKey())

	assert.NoError(t, keyutil.Verify(dir, "small"))
}

func TestVerifyFailures(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	write("odd.pub", "17,3233")
	write("odd_sk", "2753,3234")
	assert.EqualError(t, keyutil.Verify(dir, "odd"), "key odd: public and private moduli differ")

	info, err := keyutil.Inspect(dir, "odd")
	require.NoError(t, err)
	assert.True(t, info.ModulusMismatch)
	buf := &bytes.Buffer{}
	keyutil.WriteInfo(buf, info)
	assert.Contains(t, buf.String(), "warning: public and private moduli differ")

	write("wrong.pub", "5,999985999949")
	write("wrong_sk", "7,999985999949")
	err = keyutil.Verify(dir, "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key wrong failed verification")

	err = keyutil.Verify(dir, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed loading public key missing")

	err = keyutil.Verify(filepath.Join(dir, "nowhere"), "small")
	assert.EqualError(t, err, "read only KeyStore path "+filepath.Join(dir, "nowhere")+" does not exist")
}

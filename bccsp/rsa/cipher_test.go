/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsa_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/rsa"
)

func TestTextbookRoundTrip(t *testing.T) {
	t.Parallel()

	kp := textbookKey()
	ciphertext := rsa.Encrypt("HI", kp)
	require.Len(t, ciphertext, 2)
	assert.Equal(t, int64(3000), ciphertext[0].Int64())
	assert.Equal(t, int64(1486), ciphertext[1].Int64())

	plaintext, err := rsa.Decrypt(ciphertext, kp)
	require.NoError(t, err)
	assert.Equal(t, "HI", plaintext)
}

func TestRoundTripUnicode(t *testing.T) {
	t.Parallel()

	kp := rsa.FromKnownParams(big.NewInt(1000003), big.NewInt(999983), big.NewInt(5))
	for _, text := range []string{"", "a", "hello, world", "Привет", "素数 🔑", "tab\tnewline\n"} {
		plaintext, err := rsa.Decrypt(rsa.Encrypt(text, kp), kp)
		require.NoError(t, err)
		assert.Equal(t, text, plaintext)
	}
}

func TestCodePointAboveModulusCollides(t *testing.T) {
	t.Parallel()

	kp := textbookKey()
	plaintext, err := rsa.Decrypt(rsa.Encrypt("ሀ", kp), kp)
	require.NoError(t, err)
	assert.Equal(t, string(rune(0x1200-3233)), plaintext)
}

func TestPublicPrivateKeyCipher(t *testing.T) {
	t.Parallel()

	pub := rsa.PublicKey{E: big.NewInt(17), N: big.NewInt(3233)}
	priv := rsa.PrivateKey{D: big.NewInt(2753), N: big.NewInt(3233)}

	plaintext, err := priv.Decrypt(pub.Encrypt("RSA"))
	require.NoError(t, err)
	assert.Equal(t, "RSA", plaintext)
}

func TestDecryptErrors(t *testing.T) {
	t.Parallel()

	_, err := rsa.Decrypt([]*big.Int{big.NewInt(1)}, rsa.FromKnownParams(big.NewInt(61), big.NewInt(53), big.NewInt(10)))
	assert.EqualError(t, err, "modular inverse of 10 mod 3120 does not exist")

	priv := rsa.PrivateKey{D: big.NewInt(1), N: new(big.Int).Lsh(big.NewInt(1), 64)}
	_, err = priv.Decrypt([]*big.Int{big.NewInt(65), new(big.Int).Lsh(big.NewInt(1), 40)})
	assert.EqualError(t, err, "block 1 does not decrypt to a code point")

	for _, surrogate := range []int64{0xD800, 0xDBFF, 0xDC00, 0xDFFF} {
		_, err = priv.Decrypt([]*big.Int{big.NewInt(surrogate)})
		assert.EqualError(t, err, "block 0 does not decrypt to a code point", "surrogate %#x", surrogate)
	}
	plaintext, err := priv.Decrypt([]*big.Int{big.NewInt(0xD7FF), big.NewInt(0xE000)})
	require.NoError(t, err)
	assert.Equal(t, "\uD7FF\uE000", plaintext)

	_, err = priv.Decrypt([]*big.Int{nil})
	assert.EqualError(t, err, "block 0 is missing")
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsa

import (
	"math/big"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/bigmath"
)

var maxRune = big.NewInt(utf8.MaxRune)

// Encrypt encrypts every rune of plaintext separately, producing one block
// per rune. Code points that are not below n wrap around the modulus and
// cannot be recovered.
func Encrypt(plaintext string, key *KeyPair) []*big.Int {
	return key.Public().Encrypt(plaintext)
}

// Decrypt reverses Encrypt. It fails when the private exponent of key cannot
// be derived or a block does not decrypt to a valid code point. Surrogate
// halves are not valid code points.
func Decrypt(ciphertext []*big.Int, key *KeyPair) (string, error) {
	priv, err := key.Private()
	if err != nil {
		return "", err
	}
	return priv.Decrypt(ciphertext)
}

// Encrypt computes c = m^e mod n for every rune m of plaintext.
func (k PublicKey) Encrypt(plaintext string) []*big.Int {
	blocks := make([]*big.Int, 0, utf8.RuneCountInString(plaintext))
	for _, r := range plaintext {
		blocks = append(blocks, bigmath.ModPow(big.NewInt(int64(r)), k.E, k.N))
	}
	return blocks
}

// Decrypt computes m = c^d mod n for every block and reassembles the runes.
func (k PrivateKey) Decrypt(ciphertext []*big.Int) (string, error) {
	runes := make([]rune, 0, len(ciphertext))
	for i, block := range ciphertext {
		if block == nil {
			return "", errors.Errorf("block %d is missing", i)
		}
		m := bigmath.ModPow(block, k.D, k.N)
		if m.Cmp(maxRune) > 0 || !utf8.ValidRune(rune(m.Int64())) {
			return "", errors.Errorf("block %d does not decrypt to a code point", i)
		}
		runes = append(runes, rune(m.Int64()))
	}
	return string(runes), nil
}

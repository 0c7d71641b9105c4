/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package keystore persists RSA key material in its plain text export form:
// "{e},{n}" for public keys and "{d},{n}" for private keys, both in decimal.
package keystore

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/rsa"
)

// MarshalPublicKey renders pub as "{e},{n}".
func MarshalPublicKey(pub rsa.PublicKey) string {
	return fmt.Sprintf("%s,%s", pub.E, pub.N)
}

// MarshalPrivateKey renders priv as "{d},{n}".
func MarshalPrivateKey(priv rsa.PrivateKey) string {
	return fmt.Sprintf("%s,%s", priv.D, priv.N)
}

// ParseKey splits an exported key into its exponent and modulus. Surrounding
// white space is ignored.
func ParseKey(s string) (exponent, modulus *big.Int, err error) {
	fields := strings.Split(strings.TrimSpace(s), ",")
	if len(fields) != 2 {
		return nil, nil, errors.Errorf("malformed key: expected 2 comma separated fields, got %d", len(fields))
	}

	exponent, ok := new(big.Int).SetString(strings.TrimSpace(fields[0]), 10)
	if !ok || exponent.Sign() <= 0 {
		return nil, nil, errors.Errorf("malformed key: invalid exponent %q", fields[0])
	}
	modulus, ok = new(big.Int).SetString(strings.TrimSpace(fields[1]), 10)
	if !ok || modulus.Sign() <= 0 {
		return nil, nil, errors.Errorf("malformed key: invalid modulus %q", fields[1])
	}

	return exponent, modulus, nil
}

func ParsePublicKey(s string) (rsa.PublicKey, error) {
	e, n, err := ParseKey(s)
	if err != nil {
		return rsa.PublicKey{}, err
	}
	return rsa.PublicKey{E: e, N: n}, nil
}

func ParsePrivateKey(s string) (rsa.PrivateKey, error) {
	d, n, err := ParseKey(s)
	if err != nil {
		return rsa.PrivateKey{}, err
	}
	return rsa.PrivateKey{D: d, N: n}, nil
}

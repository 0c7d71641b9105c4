/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsa

import (
	"math/big"

	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/bigmath"
)

// KeyPair holds the primes of an RSA key together with the values derived
// from them. A KeyPair is never modified after construction; accessors
// return copies.
//
// The private exponent is not stored. D derives it from e and the totient
// each time it is needed.
type KeyPair struct {
	p     *big.Int
	q     *big.Int
	n     *big.Int
	euler *big.Int
	e     *big.Int
}

// FromKnownParams builds a KeyPair from caller supplied primes and public
// exponent. The values are not validated: an e that shares a factor with
// (p-1)(q-1) surfaces as a *bigmath.NoInverseError from D.
func FromKnownParams(p, q, e *big.Int) *KeyPair {
	return newKeyPair(p, q, e)
}

func newKeyPair(p, q, e *big.Int) *KeyPair {
	pm1 := new(big.Int).Sub(p, one)
	qm1 := new(big.Int).Sub(q, one)

	return &KeyPair{
		p:     new(big.Int).Set(p),
		q:     new(big.Int).Set(q),
		n:     new(big.Int).Mul(p, q),
		euler: pm1.Mul(pm1, qm1),
		e:     new(big.Int).Set(e),
	}
}

func (k *KeyPair) P() *big.Int     { return new(big.Int).Set(k.p) }
func (k *KeyPair) Q() *big.Int     { return new(big.Int).Set(k.q) }
func (k *KeyPair) N() *big.Int     { return new(big.Int).Set(k.n) }
func (k *KeyPair) Euler() *big.Int { return new(big.Int).Set(k.euler) }
func (k *KeyPair) E() *big.Int     { return new(big.Int).Set(k.e) }

// D returns the private exponent, the inverse of e modulo the totient.
func (k *KeyPair) D() (*big.Int, error) {
	return bigmath.ModularInverse(k.e, k.euler)
}

// WithExponent returns a copy of the key pair that uses e as its public
// exponent. The receiver is unchanged.
func (k *KeyPair) WithExponent(e *big.Int) *KeyPair {
	return &KeyPair{
		p:     k.p,
		q:     k.q,
		n:     k.n,
		euler: k.euler,
		e:     new(big.Int).Set(e),
	}
}

// PublicKey is the exported half of a key pair, {e, n}.
type PublicKey struct {
	E *big.Int
	N *big.Int
}

// PrivateKey is the exported private half of a key pair, {d, n}.
type PrivateKey struct {
	D *big.Int
	N *big.Int
}

func (k *KeyPair) Public() PublicKey {
	return PublicKey{E: k.E(), N: k.N()}
}

// Private derives d and returns the private view of the key pair.
func (k *KeyPair) Private() (PrivateKey, error) {
	d, err := k.D()
	if err != nil {
		return PrivateKey{}, err
	}
	return PrivateKey{D: d, N: k.N()}, nil
}

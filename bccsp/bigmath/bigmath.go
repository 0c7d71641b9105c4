/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package bigmath implements the number theory used by the RSA engine:
// Euclid's algorithm, Bézout coefficients, modular inverses and modular
// exponentiation over arbitrary-precision integers.
//
// Every function treats its arguments as read-only and returns freshly
// allocated values.
package bigmath

import (
	"fmt"
	"math/big"
)

var (
	one = big.NewInt(1)
	ten = big.NewInt(10)
)

// NoInverseError is returned when a modular inverse is requested for a value
// that is not coprime with the modulus.
type NoInverseError struct {
	A *big.Int
	M *big.Int
}

// Error returns the reason the inverse could not be computed.
func (e *NoInverseError) Error() string {
	return fmt.Sprintf("modular inverse of %s mod %s does not exist", e.A, e.M)
}

// GCD returns the greatest common divisor of a and b. The result is never
// negative and GCD(a, 0) is |a|.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	if x.Cmp(y) < 0 {
		x, y = y, x
	}

	r := new(big.Int)
	for y.Sign() != 0 {
		r.Mod(x, y)
		x, y, r = y, r, x
	}
	return x
}

// ExtendedGCD returns g, x and y such that a*x + b*y = g = gcd(a, b).
//
// The running coefficient pairs are carried through an iterative loop, so
// ExtendedGCD(0, b) yields (b, 0, 1) exactly like the textbook base case.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	// Invariant: oldR = a*oldS + b*oldT and r = a*s + b*t.
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		q.Quo(oldR, r)

		tmp.Mul(q, r)
		oldR, r = r, new(big.Int).Sub(oldR, tmp)

		tmp.Mul(q, s)
		oldS, s = s, new(big.Int).Sub(oldS, tmp)

		tmp.Mul(q, t)
		oldT, t = t, new(big.Int).Sub(oldT, tmp)
	}

	if oldR.Sign() < 0 {
		oldR.Neg(oldR)
		oldS.Neg(oldS)
		oldT.Neg(oldT)
	}
	return oldR, oldS, oldT
}

// ModularInverse returns d in [0, m) such that a*d ≡ 1 (mod m). A
// *NoInverseError is returned when gcd(a, m) != 1.
func ModularInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, &NoInverseError{A: new(big.Int).Set(a), M: new(big.Int).Set(m)}
	}

	g, x, _ := ExtendedGCD(new(big.Int).Mod(a, m), m)
	if g.Cmp(one) != 0 {
		return nil, &NoInverseError{A: new(big.Int).Set(a), M: new(big.Int).Set(m)}
	}
	return x.Mod(x, m), nil
}

// ModPow computes base^exponent mod modulus by square-and-multiply over the
// bits of exponent, reducing every intermediate product.
//
// ModPow panics if exponent is negative or modulus is not positive.
func ModPow(base, exponent, modulus *big.Int) *big.Int {
	if exponent.Sign() < 0 {
		panic("bigmath: negative exponent")
	}
	if modulus.Sign() <= 0 {
		panic("bigmath: non-positive modulus")
	}
	if modulus.Cmp(one) == 0 {
		return new(big.Int)
	}

	result := big.NewInt(1)
	b := new(big.Int).Mod(base, modulus)
	for i := exponent.BitLen() - 1; i >= 0; i-- {
		result.Mul(result, result)
		result.Mod(result, modulus)
		if exponent.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
	}
	return result
}

// Pow computes a^n by repeated squaring without a modulus. It is not used on
// the cryptographic path; intermediate values grow without bound.
func Pow(a *big.Int, n uint64) *big.Int {
	result := big.NewInt(1)
	b := new(big.Int).Set(a)
	for n > 0 {
		if n&1 == 1 {
			result.Mul(result, b)
		}
		n >>= 1
		if n > 0 {
			b.Mul(b, b)
		}
	}
	return result
}

// PowerOfTen returns 10^k.
func PowerOfTen(k int) *big.Int {
	if k < 0 {
		panic("bigmath: negative power of ten")
	}
	return Pow(ten, uint64(k))
}

// Digits returns the number of decimal digits of |x|. Digits(0) is 1.
func Digits(x *big.Int) int {
	if x.Sign() == 0 {
		return 1
	}
	return len(new(big.Int).Abs(x).Text(10))
}

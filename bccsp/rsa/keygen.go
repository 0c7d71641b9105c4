/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsa

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/pkg/errors"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/bigmath"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/primality"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/flogging"
)

var logger = flogging.MustGetLogger("rsa.keygen")

var one = big.NewInt(1)

// ExponentRange is the closed interval the public exponent is drawn from.
type ExponentRange struct {
	Min int64
	Max int64
}

var (
	// DefaultExponentRange keeps e small, which makes encryption cheap.
	DefaultExponentRange = ExponentRange{Min: 2, Max: 25}
	// WideExponentRange is the alternative range accepted by configuration.
	WideExponentRange = ExponentRange{Min: 2, Max: 100}
)

func (r ExponentRange) String() string {
	return fmt.Sprintf("[%d,%d]", r.Min, r.Max)
}

// ExponentSearchExhaustedError is returned when MaxExponentAttempts
// candidate exponents in a row share a factor with the totient.
type ExponentSearchExhaustedError struct {
	Attempts int
}

func (e *ExponentSearchExhaustedError) Error() string {
	return fmt.Sprintf("no public exponent coprime to the totient found after %d attempts", e.Attempts)
}

// A Generator produces key pairs for the named security profiles. The zero
// value is ready to use: it reads crypto/rand, draws e from
// DefaultExponentRange and never gives up a search.
type Generator struct {
	Rand                io.Reader
	ExponentRange       ExponentRange
	MaxPrimeAttempts    int
	MaxExponentAttempts int
	Metrics             *Metrics
}

func (g *Generator) reader() io.Reader {
	if g.Rand == nil {
		return rand.Reader
	}
	return g.Rand
}

func (g *Generator) exponentRange() ExponentRange {
	if g.ExponentRange == (ExponentRange{}) {
		return DefaultExponentRange
	}
	return g.ExponentRange
}

func (g *Generator) sampler() *primality.Sampler {
	s := &primality.Sampler{
		Rand:        g.reader(),
		MaxAttempts: g.MaxPrimeAttempts,
	}
	if g.Metrics != nil {
		s.Metrics = g.Metrics.Primality
	}
	return s
}

// GeneratePrimes draws two primes whose product has roughly digits decimal
// digits: p has digits/2 digits and q the remainder. The primes are not
// checked for equality.
func (g *Generator) GeneratePrimes(ctx context.Context, digits int) (p, q *big.Int, err error) {
	if digits < 2 {
		return nil, nil, errors.Errorf("cannot split %d digits between two primes", digits)
	}

	pSize := digits / 2
	qSize := digits - pSize

	s := g.sampler()
	p, err = s.RandomPrime(ctx, bigmath.PowerOfTen(pSize-1), decimalCeiling(pSize))
	if err != nil {
		return nil, nil, errors.WithMessage(err, "failed generating p")
	}
	q, err = s.RandomPrime(ctx, bigmath.PowerOfTen(qSize-1), decimalCeiling(qSize))
	if err != nil {
		return nil, nil, errors.WithMessage(err, "failed generating q")
	}

	return p, q, nil
}

// decimalCeiling returns the largest number with k digits, 10^k - 1.
func decimalCeiling(k int) *big.Int {
	c := bigmath.PowerOfTen(k)
	return c.Sub(c, one)
}

// GenerateExponent draws e from the configured range until gcd(e, euler) is
// one. The range is clipped so that e < euler.
func (g *Generator) GenerateExponent(ctx context.Context, euler *big.Int) (*big.Int, error) {
	r := g.exponentRange()
	low := big.NewInt(r.Min)
	high := big.NewInt(r.Max)
	if limit := new(big.Int).Sub(euler, one); high.Cmp(limit) > 0 {
		high = limit
	}
	if low.Cmp(high) > 0 {
		return nil, errors.Errorf("exponent range %s leaves no candidate below %s", r, euler)
	}

	span := new(big.Int).Sub(high, low)
	span.Add(span, one)

	for attempt := 1; ; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		offset, err := rand.Int(g.reader(), span)
		if err != nil {
			return nil, errors.Wrap(err, "failed reading random exponent")
		}
		e := offset.Add(offset, low)
		if bigmath.GCD(e, euler).Cmp(one) == 0 {
			return e, nil
		}

		if g.MaxExponentAttempts > 0 && attempt >= g.MaxExponentAttempts {
			return nil, &ExponentSearchExhaustedError{Attempts: attempt}
		}
	}
}

// Build generates a key pair for the named profile and reports whether the
// profile is weak.
//
// The prime pair is drawn again when the modulus comes up one digit short of
// the profile, or when no exponent in range is coprime to the totient and an
// exponent ceiling is configured.
func (g *Generator) Build(ctx context.Context, profileName string) (*KeyPair, bool, error) {
	profile, err := SelectProfile(profileName)
	if err != nil {
		return nil, false, err
	}

	start := time.Now()
	for draw := 1; ; draw++ {
		p, q, err := g.GeneratePrimes(ctx, profile.Digits)
		if err != nil {
			return nil, false, errors.WithMessagef(err, "failed generating primes for %s", profile.Name)
		}

		n := new(big.Int).Mul(p, q)
		if digits := bigmath.Digits(n); digits < profile.Digits {
			logger.Debugf("[%s] modulus has %d digits, want %d; redrawing primes", profile.Name, digits, profile.Digits)
			g.Metrics.redraw(profile.Name)
			continue
		}

		euler := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))
		e, err := g.GenerateExponent(ctx, euler)
		var exhausted *ExponentSearchExhaustedError
		if errors.As(err, &exhausted) {
			logger.Debugf("[%s] %s; redrawing primes", profile.Name, err)
			g.Metrics.redraw(profile.Name)
			continue
		}
		if err != nil {
			return nil, false, errors.WithMessagef(err, "failed generating exponent for %s", profile.Name)
		}

		kp := newKeyPair(p, q, e)
		elapsed := time.Since(start)
		g.Metrics.generated(profile, elapsed)
		logger.Debugw("generated key pair", "profile", profile.Name, "digits", bigmath.Digits(n), "e", e.String(), "draws", draw, "duration", elapsed)

		return kp, profile.Weak, nil
	}
}

// GenerateKeyPair builds a key pair for the named profile with a zero value
// Generator.
func GenerateKeyPair(profileName string) (*KeyPair, bool, error) {
	g := &Generator{}
	return g.Build(context.Background(), profileName)
}

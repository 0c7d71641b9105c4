/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package primality decides whether integers are probably prime and samples
// random primes from closed ranges.
//
// The test is Fermat's little theorem over a fixed set of four witnesses. It
// never rejects a prime, but Carmichael numbers coprime to every witness
// (29341, 46657, 75361, ...) are accepted.
package primality

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/bigmath"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/flogging"
)

var logger = flogging.MustGetLogger("primality")

// Witnesses are the bases used by IsProbablePrime.
var Witnesses = []int64{2, 3, 5, 7}

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// IsProbablePrime reports whether n passes the Fermat test for every witness
// below n. Values below 2 are never prime.
func IsProbablePrime(n *big.Int) bool {
	if n.Cmp(two) < 0 {
		return false
	}

	exp := new(big.Int).Sub(n, one)
	for _, w := range Witnesses {
		witness := big.NewInt(w)
		if witness.Cmp(n) >= 0 {
			continue
		}
		if bigmath.ModPow(witness, exp, n).Cmp(one) != 0 {
			return false
		}
	}
	return true
}

// SearchExhaustedError is returned when a Sampler with an attempt ceiling
// draws MaxAttempts composite candidates in a row.
type SearchExhaustedError struct {
	Low      *big.Int
	High     *big.Int
	Attempts int
}

func (e *SearchExhaustedError) Error() string {
	return fmt.Sprintf("no probable prime found in [%s, %s] after %d attempts", e.Low, e.High, e.Attempts)
}

// A Sampler draws uniformly distributed candidates from a range until one of
// them is a probable prime.
type Sampler struct {
	// Rand is the entropy source. crypto/rand.Reader is used when nil.
	Rand io.Reader
	// MaxAttempts bounds the number of candidates drawn per search. Zero
	// means unbounded.
	MaxAttempts int
	// Metrics is optional.
	Metrics *Metrics
}

// RandomPrime returns a probable prime p with low <= p <= high.
//
// The search stops early when ctx is done or, if MaxAttempts is set, with a
// *SearchExhaustedError once the ceiling is reached.
func (s *Sampler) RandomPrime(ctx context.Context, low, high *big.Int) (*big.Int, error) {
	if low.Cmp(high) > 0 {
		return nil, errors.Errorf("invalid range: low %s is greater than high %s", low, high)
	}

	reader := s.Rand
	if reader == nil {
		reader = rand.Reader
	}
	// Uniform over [low, high] means an offset in [0, high-low+1).
	span := new(big.Int).Sub(high, low)
	span.Add(span, one)

	for attempt := 1; ; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		offset, err := rand.Int(reader, span)
		if err != nil {
			return nil, errors.Wrap(err, "failed reading random candidate")
		}
		candidate := offset.Add(offset, low)

		if IsProbablePrime(candidate) {
			s.Metrics.observe(outcomePrime)
			logger.Debugf("found probable prime of %d digits after %d attempts", bigmath.Digits(candidate), attempt)
			return candidate, nil
		}
		s.Metrics.observe(outcomeComposite)

		if s.MaxAttempts > 0 && attempt >= s.MaxAttempts {
			return nil, &SearchExhaustedError{
				Low:      new(big.Int).Set(low),
				High:     new(big.Int).Set(high),
				Attempts: attempt,
			}
		}
	}
}

// RandomPrime samples a probable prime from [low, high] using crypto/rand
// and no attempt ceiling.
func RandomPrime(low, high *big.Int) (*big.Int, error) {
	s := &Sampler{}
	return s.RandomPrime(context.Background(), low, high)
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsa

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// BuildBatch generates count independent key pairs for the named profile
// using at most workers concurrent generations. Key pairs are returned in
// request order. The first failure cancels the remaining generations.
//
// Workers share g.Rand, which must be safe for concurrent use whenever
// workers is greater than one.
func (g *Generator) BuildBatch(ctx context.Context, profileName string, count, workers int) ([]*KeyPair, bool, error) {
	profile, err := SelectProfile(profileName)
	if err != nil {
		return nil, false, err
	}
	if count < 0 {
		return nil, false, errors.Errorf("invalid key pair count %d", count)
	}
	if workers < 1 {
		workers = 1
	}

	keys := make([]*KeyPair, count)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := 0; i < count; i++ {
		i := i
		eg.Go(func() error {
			kp, _, err := g.Build(ctx, profile.Name)
			if err != nil {
				return errors.WithMessagef(err, "key pair %d of %d", i+1, count)
			}
			keys[i] = kp
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, false, err
	}

	logger.Infof("generated %d %s key pairs with %d workers", count, profile.Name, workers)
	return keys, profile.Weak, nil
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsagen

import (
	"context"
	"os"

	"github.com/pkg/errors"
)

// keystoreChecker reports the keystore directory as unhealthy once it is no
// longer reachable.
type keystoreChecker struct {
	path string
}

func (k *keystoreChecker) HealthCheck(context.Context) error {
	fi, err := os.Stat(k.path)
	if err != nil {
		return errors.Wrap(err, "keystore unavailable")
	}
	if !fi.IsDir() {
		return errors.Errorf("keystore path %s is not a directory", k.path)
	}
	return nil
}

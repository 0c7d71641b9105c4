/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package operations

import "github.com/xxzx6uzm3/asymmetric-ciphers/common/metrics"

var versionOpts = metrics.GaugeOpts{
	Namespace:  "rsagen",
	Name:       "version",
	Help:       "The active version of rsagen.",
	LabelNames: []string{"version"},
}

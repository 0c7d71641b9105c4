/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metadata

// Variables defined by the build and passed in with ldflags
var (
	ProgramName = "rsagen"
	Version     = "latest"
	CommitSHA   = "development build"
)

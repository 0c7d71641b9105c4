/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package keystore

import (
	"regexp"

	"github.com/pkg/errors"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/rsa"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/flogging"
)

var logger = flogging.MustGetLogger("keystore")

// KeyStore stores exported key pairs under a name.
type KeyStore interface {
	// ReadOnly returns true if this KeyStore is read only, false otherwise.
	// If ReadOnly is true then StoreKey will fail.
	ReadOnly() bool

	// StoreKey stores the public and private halves of kp under name. An
	// existing key with the same name is never overwritten.
	StoreKey(name string, kp *rsa.KeyPair) error

	LoadPublicKey(name string) (rsa.PublicKey, error)
	LoadPrivateKey(name string) (rsa.PrivateKey, error)

	// List returns the sorted names of the stored keys.
	List() ([]string, error)
}

var keyNameRegexp = regexp.MustCompile(`^[[:alnum:]_-][[:alnum:]_.-]*$`)

// ValidateName rejects names that cannot be mapped to keystore entries.
func ValidateName(name string) error {
	if !keyNameRegexp.MatchString(name) {
		return errors.Errorf("invalid key name %q", name)
	}
	return nil
}

func exportKeyPair(kp *rsa.KeyPair) (pub, priv string, err error) {
	if kp == nil {
		return "", "", errors.New("invalid key pair. It must be different from nil")
	}
	private, err := kp.Private()
	if err != nil {
		return "", "", errors.WithMessage(err, "failed deriving private key")
	}
	return MarshalPublicKey(kp.Public()), MarshalPrivateKey(private), nil
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package keyutil inspects and verifies key pairs written by rsagen.
package keyutil

import (
	"encoding/hex"
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/bigmath"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/keystore"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/rsa"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/flogging"
	"golang.org/x/crypto/blake2b"
)

var logger = flogging.MustGetLogger("keyutil")

// SampleMessage is the message round-tripped by Verify.
const SampleMessage = "The quick brown fox jumps over the lazy dog ✓"

// KeyInfo describes a stored key pair.
type KeyInfo struct {
	Name            string
	ModulusDigits   int
	Exponent        *big.Int
	ExponentDigits  int
	PrivateDigits   int
	Profile         string
	Fingerprint     string
	ModulusMismatch bool
}

// Fingerprint is the hex BLAKE2b-256 digest of the exported public key.
func Fingerprint(pub rsa.PublicKey) string {
	sum := blake2b.Sum256([]byte(keystore.MarshalPublicKey(pub)))
	return hex.EncodeToString(sum[:])
}

func open(dir string) (keystore.KeyStore, error) {
	return keystore.NewFileBasedKeyStore(dir, true)
}

// Inspect loads both halves of the named key pair from dir.
func Inspect(dir, name string) (*KeyInfo, error) {
	ks, err := open(dir)
	if err != nil {
		return nil, err
	}
	pub, err := ks.LoadPublicKey(name)
	if err != nil {
		return nil, err
	}
	priv, err := ks.LoadPrivateKey(name)
	if err != nil {
		return nil, err
	}

	info := &KeyInfo{
		Name:            name,
		ModulusDigits:   bigmath.Digits(pub.N),
		Exponent:        pub.E,
		ExponentDigits:  bigmath.Digits(pub.E),
		PrivateDigits:   bigmath.Digits(priv.D),
		Fingerprint:     Fingerprint(pub),
		ModulusMismatch: pub.N.Cmp(priv.N) != 0,
	}
	info.Profile = profileFor(info.ModulusDigits)
	return info, nil
}

// profileFor returns the strongest profile whose digit target the modulus
// meets, or "none".
func profileFor(digits int) string {
	for _, p := range rsa.Profiles() {
		if digits >= p.Digits {
			return p.Name
		}
	}
	return "none"
}

// WriteInfo renders info in a key: value layout.
func WriteInfo(w io.Writer, info *KeyInfo) {
	fmt.Fprintf(w, "name: %s\n", info.Name)
	fmt.Fprintf(w, "profile: %s\n", info.Profile)
	fmt.Fprintf(w, "fingerprint: %s\n", info.Fingerprint)
	fmt.Fprintf(w, "modulus digits: %d\n", info.ModulusDigits)
	fmt.Fprintf(w, "public exponent: %s\n", info.Exponent)
	fmt.Fprintf(w, "private exponent digits: %d\n", info.PrivateDigits)
	if info.ModulusMismatch {
		fmt.Fprintln(w, "warning: public and private moduli differ")
	}
}

// Verify encrypts SampleMessage with the stored public key and checks that the
// stored private key recovers it.
func Verify(dir, name string) error {
	ks, err := open(dir)
	if err != nil {
		return err
	}
	pub, err := ks.LoadPublicKey(name)
	if err != nil {
		return err
	}
	priv, err := ks.LoadPrivateKey(name)
	if err != nil {
		return err
	}
	if pub.N.Cmp(priv.N) != 0 {
		return errors.Errorf("key %s: public and private moduli differ", name)
	}

	recovered, err := priv.Decrypt(pub.Encrypt(SampleMessage))
	if err != nil {
		return errors.WithMessagef(err, "key %s failed verification", name)
	}
	if recovered != SampleMessage {
		logger.Debugf("key %s decrypted sample message to %q", name, recovered)
		return errors.Errorf("key %s failed verification: decrypted sample message does not match", name)
	}
	return nil
}

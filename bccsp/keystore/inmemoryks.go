/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package keystore

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/rsa"
)

// NewInMemoryKeyStore instantiates an ephemeral in-memory keystore. Keys are
// held in their exported text form, exactly as the file store writes them.
func NewInMemoryKeyStore() KeyStore {
	return &inMemoryKeyStore{keys: map[string]exported{}}
}

type exported struct {
	pub, priv string
}

type inMemoryKeyStore struct {
	keys map[string]exported
	m    sync.RWMutex
}

// ReadOnly always returns false.
func (ks *inMemoryKeyStore) ReadOnly() bool {
	return false
}

func (ks *inMemoryKeyStore) StoreKey(name string, kp *rsa.KeyPair) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	pub, priv, err := exportKeyPair(kp)
	if err != nil {
		return err
	}

	ks.m.Lock()
	defer ks.m.Unlock()
	if _, found := ks.keys[name]; found {
		return errors.Errorf("key %s already exists in the keystore", name)
	}
	ks.keys[name] = exported{pub: pub, priv: priv}
	return nil
}

func (ks *inMemoryKeyStore) LoadPublicKey(name string) (rsa.PublicKey, error) {
	e, err := ks.get(name)
	if err != nil {
		return rsa.PublicKey{}, err
	}
	return ParsePublicKey(e.pub)
}

func (ks *inMemoryKeyStore) LoadPrivateKey(name string) (rsa.PrivateKey, error) {
	e, err := ks.get(name)
	if err != nil {
		return rsa.PrivateKey{}, err
	}
	return ParsePrivateKey(e.priv)
}

func (ks *inMemoryKeyStore) List() ([]string, error) {
	ks.m.RLock()
	defer ks.m.RUnlock()

	names := make([]string, 0, len(ks.keys))
	for name := range ks.keys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (ks *inMemoryKeyStore) get(name string) (exported, error) {
	ks.m.RLock()
	defer ks.m.RUnlock()

	e, found := ks.keys[name]
	if !found {
		return exported{}, errors.Errorf("no key found for name %s", name)
	}
	return e, nil
}

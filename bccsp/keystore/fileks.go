/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package keystore

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/xxzx6uzm3/asymmetric-ciphers/bccsp/rsa"
	"github.com/xxzx6uzm3/asymmetric-ciphers/internal/fileutil"
)

const (
	publicSuffix  = ".pub"
	privateSuffix = "_sk"
	tmpSuffix     = ".tmp"
)

// NewFileBasedKeyStore opens a key store rooted at path, creating the
// directory when it does not exist. A read only key store must point at an
// existing directory and rejects StoreKey.
func NewFileBasedKeyStore(path string, readOnly bool) (KeyStore, error) {
	if len(path) == 0 {
		return nil, errors.New("an invalid KeyStore path provided. Path cannot be an empty string")
	}

	exists, err := fileutil.DirExists(path)
	if err != nil {
		return nil, errors.WithMessagef(err, "invalid KeyStore path %s", path)
	}
	if !exists {
		if readOnly {
			return nil, errors.Errorf("read only KeyStore path %s does not exist", path)
		}
		logger.Debugf("Creating KeyStore at [%s]...", path)
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, errors.Wrapf(err, "failed creating KeyStore at %s", path)
		}
	}

	return &fileBasedKeyStore{path: path, readOnly: readOnly}, nil
}

// fileBasedKeyStore keeps every key pair in two files in a single folder:
// <name>.pub holding "{e},{n}" and <name>_sk holding "{d},{n}". Private key
// files are readable by the owner only.
type fileBasedKeyStore struct {
	path     string
	readOnly bool

	m sync.Mutex
}

func (ks *fileBasedKeyStore) ReadOnly() bool {
	return ks.readOnly
}

func (ks *fileBasedKeyStore) StoreKey(name string, kp *rsa.KeyPair) error {
	if ks.readOnly {
		return errors.New("read only KeyStore")
	}
	if err := ValidateName(name); err != nil {
		return err
	}
	pub, priv, err := exportKeyPair(kp)
	if err != nil {
		return err
	}

	ks.m.Lock()
	defer ks.m.Unlock()

	for _, p := range []string{ks.publicPath(name), ks.privatePath(name)} {
		if _, err := os.Stat(p); err == nil {
			return errors.Errorf("key %s already exists in the keystore", name)
		}
	}

	pubFile, privFile := name+publicSuffix, name+privateSuffix
	for _, f := range []string{pubFile, privFile} {
		if err := ks.removeStale(f + tmpSuffix); err != nil {
			return err
		}
	}

	if err := fileutil.CreateAndSyncFileAtomically(ks.path, pubFile+tmpSuffix, pubFile, []byte(pub), 0o644); err != nil {
		if errors.Is(err, os.ErrExist) {
			return errors.Errorf("key %s already exists in the keystore", name)
		}
		return errors.WithMessagef(err, "failed storing public key %s", name)
	}
	if err := fileutil.CreateAndSyncFileAtomically(ks.path, privFile+tmpSuffix, privFile, []byte(priv), 0o600); err != nil {
		os.Remove(ks.publicPath(name))
		if errors.Is(err, os.ErrExist) {
			return errors.Errorf("key %s already exists in the keystore", name)
		}
		return errors.WithMessagef(err, "failed storing private key %s", name)
	}

	logger.Debugf("Stored key pair [%s] at [%s]", name, ks.path)
	return nil
}

func (ks *fileBasedKeyStore) LoadPublicKey(name string) (rsa.PublicKey, error) {
	raw, err := ks.load(name, ks.publicPath(name))
	if err != nil {
		return rsa.PublicKey{}, errors.WithMessagef(err, "failed loading public key %s", name)
	}
	pub, err := ParsePublicKey(raw)
	if err != nil {
		return rsa.PublicKey{}, errors.WithMessagef(err, "failed parsing public key %s", name)
	}
	return pub, nil
}

func (ks *fileBasedKeyStore) LoadPrivateKey(name string) (rsa.PrivateKey, error) {
	raw, err := ks.load(name, ks.privatePath(name))
	if err != nil {
		return rsa.PrivateKey{}, errors.WithMessagef(err, "failed loading private key %s", name)
	}
	priv, err := ParsePrivateKey(raw)
	if err != nil {
		return rsa.PrivateKey{}, errors.WithMessagef(err, "failed parsing private key %s", name)
	}
	return priv, nil
}

func (ks *fileBasedKeyStore) List() ([]string, error) {
	entries, err := os.ReadDir(ks.path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed reading KeyStore at %s", ks.path)
	}

	seen := map[string]struct{}{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		var name string
		switch {
		case strings.HasSuffix(e.Name(), publicSuffix):
			name = strings.TrimSuffix(e.Name(), publicSuffix)
		case strings.HasSuffix(e.Name(), privateSuffix):
			name = strings.TrimSuffix(e.Name(), privateSuffix)
		default:
			continue
		}
		if ValidateName(name) == nil {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (ks *fileBasedKeyStore) load(name, path string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	logger.Debugf("Loading key [%s] at [%s]...", name, path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// removeStale deletes a temporary file left behind by an interrupted store.
func (ks *fileBasedKeyStore) removeStale(file string) error {
	err := os.Remove(filepath.Join(ks.path, file))
	if err == nil {
		logger.Warnf("Removed stale temporary file [%s] from [%s]", file, ks.path)
		return nil
	}
	if os.IsNotExist(err) {
		return nil
	}
	return errors.Wrapf(err, "failed removing stale file %s", file)
}

func (ks *fileBasedKeyStore) publicPath(name string) string {
	return filepath.Join(ks.path, name+publicSuffix)
}

func (ks *fileBasedKeyStore) privatePath(name string) string {
	return filepath.Join(ks.path, name+privateSuffix)
}

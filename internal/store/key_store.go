package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"ciphermsg/internal/domain"
	"ciphermsg/internal/util/memzero"
)

// DefaultKeyFile is the file name used when none is configured.
const DefaultKeyFile = "keypair.json.enc"

// ErrNoKeyPair is returned by LoadKeyPair when nothing has been saved yet.
var ErrNoKeyPair = errors.New("no key pair stored")

// KeyFileStore persists the local key pair to a single sealed file.
type KeyFileStore struct {
	path string
	kdf  kdfParams
	mu   sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore keeping name under dir. An empty
// name selects DefaultKeyFile.
func NewKeyFileStore(dir, name string) *KeyFileStore {
	if name == "" {
		name = DefaultKeyFile
	}
	return &KeyFileStore{path: filepath.Join(dir, name), kdf: scryptParamsDefault()}
}

// Path returns the location of the key file.
func (s *KeyFileStore) Path() string { return s.path }

// SaveKeyPair seals kp under passphrase and replaces the key file.
func (s *KeyFileStore) SaveKeyPair(passphrase string, kp domain.KeyPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(kp)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	b, err := seal(passphrase, raw, s.kdf)
	if err != nil {
		return err
	}
	return writeFile(s.path, b, 0o600)
}

// LoadKeyPair reads and unseals the key pair.
func (s *KeyFileStore) LoadKeyPair(passphrase string) (domain.KeyPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path)
	if err != nil {
		return domain.KeyPair{}, err
	}
	if b == nil {
		return domain.KeyPair{}, fmt.Errorf("%w at %s", ErrNoKeyPair, s.path)
	}

	pt, err := open(passphrase, b)
	if err != nil {
		return domain.KeyPair{}, err
	}
	defer memzero.Zero(pt)

	var kp domain.KeyPair
	if err := json.Unmarshal(pt, &kp); err != nil {
		return domain.KeyPair{}, fmt.Errorf("decode key file: %w", err)
	}
	if kp.Curve == "" || len(kp.Private) == 0 || len(kp.Public) == 0 {
		return domain.KeyPair{}, fmt.Errorf("decode key file: incomplete key pair")
	}
	return kp, nil
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)

package interfaces

import domaintypes "ciphermsg/internal/domain/types"

// KeyStore persists the local key pair.
type KeyStore interface {
	SaveKeyPair(passphrase string, kp domaintypes.KeyPair) error
	LoadKeyPair(passphrase string) (domaintypes.KeyPair, error)
}

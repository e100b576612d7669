package interfaces

import domaintypes "ciphermsg/internal/domain/types"

// IdentityService creates and loads the local key pair.
type IdentityService interface {
	GenerateKeyPair(passphrase string) (domaintypes.KeyPair, domaintypes.Fingerprint, error)
	LoadKeyPair(passphrase string) (domaintypes.KeyPair, error)
	Fingerprint(passphrase string) (domaintypes.Fingerprint, error)
}

// Package identity manages creation and loading of the local key pair.
//
// It enforces passphrase policy, generates a key pair on the configured curve
// and persists it via the domain.KeyStore.
package identity

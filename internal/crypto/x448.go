package crypto

import (
	"fmt"

	"github.com/cloudflare/circl/dh/x448"

	"ciphermsg/internal/domain"
	"ciphermsg/internal/util/memzero"
)

// X448Agreement agrees on a shared key with RFC 7748 X448.
type X448Agreement struct{}

// Curve returns domain.CurveX448.
func (X448Agreement) Curve() domain.Curve { return domain.CurveX448 }

// PrivateKeySize returns 56.
func (X448Agreement) PrivateKeySize() int { return X448KeySize }

// PublicKeySize returns 56.
func (X448Agreement) PublicKeySize() int { return X448KeySize }

// PublicKey returns the X448 public key for priv.
func (X448Agreement) PublicKey(priv domain.PrivateKey) (domain.PublicKey, error) {
	if len(priv) != X448KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(priv), X448KeySize)
	}
	var sk, pk x448.Key
	copy(sk[:], priv)
	defer memzero.Zero(sk[:])
	x448.KeyGen(&pk, &sk)
	return pk[:], nil
}

// DeriveSharedKey computes X448 Diffie-Hellman and runs it through HKDF.
// Low-order peer points are rejected with ErrInvalidPoint.
func (X448Agreement) DeriveSharedKey(priv domain.PrivateKey, pub domain.PublicKey) ([]byte, error) {
	if len(priv) != X448KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(priv), X448KeySize)
	}
	if len(pub) != X448KeySize {
		return nil, fmt.Errorf("%w: public key is %d bytes", ErrInvalidPoint, len(pub))
	}

	var sk, pk, shared x448.Key
	copy(sk[:], priv)
	copy(pk[:], pub)
	defer memzero.ZeroAll(sk[:], shared[:])

	if !x448.Shared(&shared, &sk, &pk) {
		return nil, fmt.Errorf("%w: low order point", ErrInvalidPoint)
	}
	return deriveSharedKey(shared[:])
}

// Compile-time assertion that X448Agreement implements domain.KeyAgreement.
var _ domain.KeyAgreement = X448Agreement{}

package crypto

import (
	"fmt"

	"golang.org/x/crypto/curve25519"

	"ciphermsg/internal/domain"
	"ciphermsg/internal/util/memzero"
)

// X25519Agreement agrees on a shared key with RFC 7748 X25519.
type X25519Agreement struct{}

// Curve returns domain.CurveX25519.
func (X25519Agreement) Curve() domain.Curve { return domain.CurveX25519 }

// PrivateKeySize returns 32.
func (X25519Agreement) PrivateKeySize() int { return X25519KeySize }

// PublicKeySize returns 32.
func (X25519Agreement) PublicKeySize() int { return X25519KeySize }

// PublicKey returns priv·Basepoint.
func (X25519Agreement) PublicKey(priv domain.PrivateKey) (domain.PublicKey, error) {
	if len(priv) != X25519KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(priv), X25519KeySize)
	}
	pub, err := curve25519.X25519(priv.Slice(), curve25519.Basepoint)
	if err != nil {
		return nil, err
	}
	return pub, nil
}

// DeriveSharedKey computes X25519 Diffie-Hellman and runs it through HKDF.
// Low-order peer points are rejected with ErrInvalidPoint.
func (X25519Agreement) DeriveSharedKey(priv domain.PrivateKey, pub domain.PublicKey) ([]byte, error) {
	if len(priv) != X25519KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(priv), X25519KeySize)
	}
	if len(pub) != X25519KeySize {
		return nil, fmt.Errorf("%w: public key is %d bytes", ErrInvalidPoint, len(pub))
	}
	secret, err := curve25519.X25519(priv.Slice(), pub.Slice())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	defer memzero.Zero(secret)
	return deriveSharedKey(secret)
}

// clampX25519 clamps k per RFC 7748.
func clampX25519(k []byte) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}

// Compile-time assertion that X25519Agreement implements domain.KeyAgreement.
var _ domain.KeyAgreement = X25519Agreement{}

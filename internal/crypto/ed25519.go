package crypto

import (
	"crypto/ed25519"
	"crypto/sha512"
	"fmt"

	"filippo.io/edwards25519"

	"ciphermsg/internal/domain"
	"ciphermsg/internal/util/memzero"
)

// Ed25519Agreement agrees on a shared key using Ed25519 signing keys.
//
// The private key is a 32-byte seed. Its scalar is the clamped first half of
// SHA-512(seed), so public keys match crypto/ed25519. The shared secret is the
// encoded point scalar·peer.
type Ed25519Agreement struct{}

// Curve returns domain.CurveEd25519.
func (Ed25519Agreement) Curve() domain.Curve { return domain.CurveEd25519 }

// PrivateKeySize returns the seed size.
func (Ed25519Agreement) PrivateKeySize() int { return Ed25519PrivateKeySize }

// PublicKeySize returns the compressed point size.
func (Ed25519Agreement) PublicKeySize() int { return Ed25519PublicKeySize }

// PublicKey returns the Ed25519 public key for the seed priv.
func (Ed25519Agreement) PublicKey(priv domain.PrivateKey) (domain.PublicKey, error) {
	if len(priv) != Ed25519PrivateKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(priv), Ed25519PrivateKeySize)
	}
	sk := ed25519.NewKeyFromSeed(priv)
	defer memzero.Zero(sk)
	pub := make([]byte, Ed25519PublicKeySize)
	copy(pub, sk[ed25519.SeedSize:])
	return pub, nil
}

// DeriveSharedKey computes scalar(priv)·pub and runs it through HKDF.
func (Ed25519Agreement) DeriveSharedKey(priv domain.PrivateKey, pub domain.PublicKey) ([]byte, error) {
	if len(priv) != Ed25519PrivateKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(priv), Ed25519PrivateKeySize)
	}
	if len(pub) != Ed25519PublicKeySize {
		return nil, fmt.Errorf("%w: public key is %d bytes", ErrInvalidPoint, len(pub))
	}

	point, err := new(edwards25519.Point).SetBytes(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	// Small-order points would collapse the shared secret to the identity.
	if new(edwards25519.Point).MultByCofactor(point).Equal(edwards25519.NewIdentityPoint()) == 1 {
		return nil, fmt.Errorf("%w: small order", ErrInvalidPoint)
	}
	// A torsion component would leak the private scalar mod 8.
	if !inPrimeOrderSubgroup(point) {
		return nil, fmt.Errorf("%w: not in prime-order subgroup", ErrInvalidPoint)
	}

	h := sha512.Sum512(priv)
	defer memzero.Zero(h[:])
	scalar, err := edwards25519.NewScalar().SetBytesWithClamping(h[:32])
	if err != nil {
		return nil, err
	}

	secret := new(edwards25519.Point).ScalarMult(scalar, point).Bytes()
	defer memzero.Zero(secret)
	return deriveSharedKey(secret)
}

// inPrimeOrderSubgroup reports whether l·p is the identity, computed as
// (l-1)·p + p since l itself reduces to zero as a scalar.
func inPrimeOrderSubgroup(p *edwards25519.Point) bool {
	var one [32]byte
	one[0] = 1
	s, err := edwards25519.NewScalar().SetCanonicalBytes(one[:])
	if err != nil {
		return false
	}
	lMinusOne := edwards25519.NewScalar().Negate(s)
	q := new(edwards25519.Point).ScalarMult(lMinusOne, p)
	q.Add(q, p)
	return q.Equal(edwards25519.NewIdentityPoint()) == 1
}

// Compile-time assertion that Ed25519Agreement implements domain.KeyAgreement.
var _ domain.KeyAgreement = Ed25519Agreement{}

package crypto

import (
	"fmt"
	"io"
	"strings"

	"ciphermsg/internal/domain"
)

// ParseCurve maps a user-supplied curve name to a domain.Curve.
func ParseCurve(name string) (domain.Curve, error) {
	c := domain.Curve(strings.ToLower(strings.TrimSpace(name)))
	switch c {
	case domain.CurveEd25519, domain.CurveX25519, domain.CurveX448:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedCurve, name)
}

// KeyAgreementFor returns the key agreement for curve c.
func KeyAgreementFor(c domain.Curve) (domain.KeyAgreement, error) {
	switch c {
	case domain.CurveEd25519:
		return Ed25519Agreement{}, nil
	case domain.CurveX25519:
		return X25519Agreement{}, nil
	case domain.CurveX448:
		return X448Agreement{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedCurve, c)
}

// PublicKeyFor derives the public key of priv on curve c.
func PublicKeyFor(c domain.Curve, priv domain.PrivateKey) (domain.PublicKey, error) {
	ka, err := KeyAgreementFor(c)
	if err != nil {
		return nil, err
	}
	return ka.PublicKey(priv)
}

// GenerateKeyPair returns a fresh key pair on curve c.
// X25519 private keys are clamped per RFC 7748.
func GenerateKeyPair(c domain.Curve) (domain.KeyPair, error) {
	ka, err := KeyAgreementFor(c)
	if err != nil {
		return domain.KeyPair{}, err
	}
	priv := make(domain.PrivateKey, ka.PrivateKeySize())
	if _, err := io.ReadFull(rng(), priv); err != nil {
		return domain.KeyPair{}, err
	}
	if c == domain.CurveX25519 {
		clampX25519(priv)
	}
	pub, err := ka.PublicKey(priv)
	if err != nil {
		return domain.KeyPair{}, err
	}
	return domain.KeyPair{Curve: c, Private: priv, Public: pub}, nil
}

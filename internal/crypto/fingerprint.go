package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"ciphermsg/internal/domain"
)

// fingerprintSize is the number of SHA-256 bytes kept in a fingerprint.
const fingerprintSize = 10

// Fingerprint returns a short, display-safe identifier for pub: the first
// 10 bytes of SHA-256(pub) as lowercase hex. It is safe to log.
func Fingerprint(pub domain.PublicKey) domain.Fingerprint {
	sum := sha256.Sum256(pub)
	return domain.Fingerprint(hex.EncodeToString(sum[:fingerprintSize]))
}

package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// deriveSharedKey turns a raw agreement output into an AES-256 key using
// HKDF-SHA256 with an all-zero salt and SharedKeyInfo.
func deriveSharedKey(secret []byte) ([]byte, error) {
	reader := hkdf.New(sha256.New, secret, nil, []byte(SharedKeyInfo))
	key := make([]byte, SharedKeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}

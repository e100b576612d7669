package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"io"

	"ciphermsg/internal/domain"
	"ciphermsg/internal/util/memzero"
)

// GCM seals and opens payloads with AES-256-GCM under the key agreed between
// a private and a public key. A fresh random IV is drawn for every Seal.
type GCM struct{}

// NewGCM returns the AES-256-GCM AEAD.
func NewGCM() GCM { return GCM{} }

// Seal encrypts plaintext and returns the tag, IV and ciphertext separately.
// The ciphertext has the same length as plaintext.
func (GCM) Seal(
	ka domain.KeyAgreement,
	priv domain.PrivateKey,
	pub domain.PublicKey,
	plaintext []byte,
) (domain.Sealed, error) {
	key, err := ka.DeriveSharedKey(priv, pub)
	if err != nil {
		return domain.Sealed{}, err
	}
	defer memzero.Zero(key)

	aesGCM, err := newAESGCM(key)
	if err != nil {
		return domain.Sealed{}, err
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(rng(), iv); err != nil {
		return domain.Sealed{}, fmt.Errorf("failed to generate iv: %w", err)
	}

	// gcm.Seal appends the tag after the ciphertext: output = ciphertext || tag.
	sealed := aesGCM.Seal(nil, iv, plaintext, nil)
	n := len(sealed) - TagSize
	return domain.Sealed{
		Tag:        sealed[n:],
		IV:         iv,
		CipherText: sealed[:n],
	}, nil
}

// Open verifies and decrypts payload = tag || iv || ciphertext.
func (GCM) Open(
	ka domain.KeyAgreement,
	priv domain.PrivateKey,
	pub domain.PublicKey,
	payload []byte,
) ([]byte, error) {
	key, err := ka.DeriveSharedKey(priv, pub)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	if len(payload) < TagSize+IVSize {
		return nil, fmt.Errorf("%w: payload is %d bytes", ErrAuthenticationFailed, len(payload))
	}
	tag := payload[:TagSize]
	iv := payload[TagSize : TagSize+IVSize]
	ciphertext := payload[TagSize+IVSize:]

	aesGCM, err := newAESGCM(key)
	if err != nil {
		return nil, err
	}

	// gcm.Open expects sealed = ciphertext || tag.
	sealed := make([]byte, 0, len(ciphertext)+TagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := aesGCM.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}

func newAESGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCMWithTagSize(block, TagSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}

// Compile-time assertion that GCM implements domain.AEAD.
var _ domain.AEAD = GCM{}

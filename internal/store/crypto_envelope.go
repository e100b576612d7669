package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"ciphermsg/internal/util/memzero"
)

const (
	// The current supported version of the encrypted blob format stored on disk.
	keystoreFormatVersion = 1

	saltSize = 16
)

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// sealed key file has been modified.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key file")

// blob is the on-disk JSON structure holding the ciphertext and KDF parameters.
type blob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// kdfParams are the scrypt cost parameters.
type kdfParams struct {
	N, R, P int
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() kdfParams { return kdfParams{N: 1 << 15, R: 8, P: 1} }

// acceptable reports whether kp is no costlier than the defaults and valid
// for scrypt. Files are only ever written with the defaults or cheaper.
func (kp kdfParams) acceptable() bool {
	limit := scryptParamsDefault()
	if kp.N <= 1 || kp.N > limit.N || kp.N&(kp.N-1) != 0 {
		return false
	}
	return kp.R >= 1 && kp.R <= limit.R && kp.P >= 1 && kp.P <= limit.P
}

// seal derives a key from passphrase and seals raw into a JSON blob.
func seal(passphrase string, raw []byte, kp kdfParams) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt, kp.N, kp.R, kp.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize()) // zero nonce; the salt makes every key unique
	ct := aead.Seal(nil, nonce, raw, salt)

	return json.Marshal(blob{
		V:      keystoreFormatVersion,
		Salt:   salt,
		N:      kp.N,
		R:      kp.R,
		P:      kp.P,
		Cipher: ct,
	})
}

// open decrypts the JSON blob using a key derived from passphrase.
func open(passphrase string, b []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrongPassphrase, err)
	}
	if bl.V > keystoreFormatVersion {
		return nil, fmt.Errorf("unsupported key file version %d", bl.V)
	}

	kp := kdfParams{N: bl.N, R: bl.R, P: bl.P}
	if !kp.acceptable() || len(bl.Salt) != saltSize {
		return nil, fmt.Errorf("%w: kdf parameters out of range", ErrWrongPassphrase)
	}

	key, err := scrypt.Key([]byte(passphrase), bl.Salt, kp.N, kp.R, kp.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrongPassphrase, err)
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	pt, err := aead.Open(nil, nonce, bl.Cipher, bl.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

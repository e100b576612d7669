package interfaces

import domaintypes "ciphermsg/internal/domain/types"

// KeyAgreement derives a shared symmetric key from one party's private key and
// the other party's public key. DeriveSharedKey must be deterministic and
// symmetric: (A.priv, B.pub) and (B.priv, A.pub) yield the same key.
//
// Implementations must be safe for concurrent use.
type KeyAgreement interface {
	Curve() domaintypes.Curve
	PrivateKeySize() int
	PublicKeySize() int
	PublicKey(priv domaintypes.PrivateKey) (domaintypes.PublicKey, error)
	DeriveSharedKey(
		priv domaintypes.PrivateKey,
		pub domaintypes.PublicKey,
	) ([]byte, error)
}

// AEAD seals and opens payloads under the key agreed between priv and pub.
//
// Implementations must be safe for concurrent use.
type AEAD interface {
	Seal(
		ka KeyAgreement,
		priv domaintypes.PrivateKey,
		pub domaintypes.PublicKey,
		plaintext []byte,
	) (domaintypes.Sealed, error)
	// Open takes tag || iv || ciphertext.
	Open(
		ka KeyAgreement,
		priv domaintypes.PrivateKey,
		pub domaintypes.PublicKey,
		payload []byte,
	) ([]byte, error)
}

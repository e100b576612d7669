package crypto

const (
	// SharedKeyInfo is the HKDF info string used for domain separation when
	// turning a raw agreement output into an AES key.
	SharedKeyInfo = "ciphermsg:shared-key:v1"

	// SharedKeySize is the size of the derived AES-256 key in bytes.
	SharedKeySize = 32
	// TagSize is the size of an AES-GCM authentication tag in bytes.
	TagSize = 16
	// IVSize is the size of an AES-GCM nonce in bytes.
	IVSize = 12

	// Ed25519PrivateKeySize is the size of an Ed25519 seed.
	Ed25519PrivateKeySize = 32
	// Ed25519PublicKeySize is the size of a compressed Ed25519 point.
	Ed25519PublicKeySize = 32
	// X25519KeySize is the size of X25519 private and public keys.
	X25519KeySize = 32
	// X448KeySize is the size of X448 private and public keys.
	X448KeySize = 56
)

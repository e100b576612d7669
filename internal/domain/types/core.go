package types

// Curve names the elliptic curve both parties' key pairs live on.
type Curve string

const (
	// CurveEd25519 uses Ed25519 signing keys for agreement (default).
	CurveEd25519 Curve = "ed25519"
	// CurveX25519 uses RFC 7748 X25519 keys.
	CurveX25519 Curve = "x25519"
	// CurveX448 uses RFC 7748 X448 keys.
	CurveX448 Curve = "x448"
)

// String returns the string form of the curve.
func (c Curve) String() string { return string(c) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

package types

import (
	"encoding/hex"
	"fmt"
)

// PrivateKey is raw private key material. Its size depends on the curve.
type PrivateKey []byte

// Slice returns the key as a []byte.
func (k PrivateKey) Slice() []byte { return k }

// String never reveals key material.
func (k PrivateKey) String() string { return "[REDACTED]" }

// GoString never reveals key material.
func (k PrivateKey) GoString() string { return "types.PrivateKey([REDACTED])" }

// Format keeps %x, %v and friends from printing key material.
func (k PrivateKey) Format(f fmt.State, _ rune) { _, _ = f.Write([]byte("[REDACTED]")) }

// PublicKey is raw public key material. Its size depends on the curve.
type PublicKey []byte

// Slice returns the key as a []byte.
func (p PublicKey) Slice() []byte { return p }

// String returns the lowercase hex form of the key.
func (p PublicKey) String() string { return hex.EncodeToString(p) }

// KeyPair is a private key together with its public key on Curve.
type KeyPair struct {
	Curve   Curve      `json:"curve"`
	Private PrivateKey `json:"private"`
	Public  PublicKey  `json:"public"`
}

package domain

import (
	interfaces "ciphermsg/internal/domain/interfaces"
	types "ciphermsg/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Curve       = types.Curve
	Fingerprint = types.Fingerprint
	PrivateKey  = types.PrivateKey
	PublicKey   = types.PublicKey
	KeyPair     = types.KeyPair
	Input       = types.Input
	Sealed      = types.Sealed
	Outcome     = types.Outcome
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyAgreement    = interfaces.KeyAgreement
	AEAD            = interfaces.AEAD
	KeyStore        = interfaces.KeyStore
	MessageCodec    = interfaces.MessageCodec
	IdentityService = interfaces.IdentityService
)

const (
	CurveEd25519 = types.CurveEd25519
	CurveX25519  = types.CurveX25519
	CurveX448    = types.CurveX448

	MarkerCurrent = types.MarkerCurrent
)

// ErrInvalidKeyFormat is re-exported from the types subpackage.
var ErrInvalidKeyFormat = types.ErrInvalidKeyFormat

// Bytes wraps raw bytes as an Input.
func Bytes(b []byte) Input { return types.Bytes(b) }

// Hex wraps hex text as an Input.
func Hex(s string) Input { return types.Hex(s) }

// Text wraps UTF-8 text as an Input.
func Text(s string) Input { return types.Text(s) }

package crypto

import "errors"

var (
	// ErrInvalidPoint is returned when a peer public key is not a valid,
	// usable curve point (undecodable, wrong length or small order).
	ErrInvalidPoint = errors.New("invalid point")

	// ErrAuthenticationFailed is returned when AES-GCM tag verification fails
	// or the payload is too short to carry a tag and IV.
	ErrAuthenticationFailed = errors.New("unable to authenticate data")

	// ErrInvalidKeySize is returned when a private key has the wrong size
	// for its curve.
	ErrInvalidKeySize = errors.New("invalid private key size")

	// ErrUnsupportedCurve is returned for an unknown curve name.
	ErrUnsupportedCurve = errors.New("unsupported curve")
)

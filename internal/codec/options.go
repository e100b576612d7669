package codec

import (
	"github.com/sirupsen/logrus"

	"ciphermsg/internal/domain"
)

// Option configures a Codec.
type Option func(*options)

type options struct {
	curve  domain.Curve
	ka     domain.KeyAgreement
	aead   domain.AEAD
	logger logrus.FieldLogger
}

// WithCurve selects the curve the codec's keys live on. Defaults to
// domain.CurveEd25519.
func WithCurve(c domain.Curve) Option {
	return func(o *options) { o.curve = c }
}

// WithKeyAgreement overrides the key agreement primitive. It takes
// precedence over WithCurve.
func WithKeyAgreement(ka domain.KeyAgreement) Option {
	return func(o *options) { o.ka = ka }
}

// WithAEAD overrides the AEAD primitive. Defaults to AES-256-GCM.
func WithAEAD(aead domain.AEAD) Option {
	return func(o *options) { o.aead = aead }
}

// WithLogger sets the logger used for debug output about envelopes that did
// not decode. Defaults to a logger that discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.logger = l }
}

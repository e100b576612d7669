package codec

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"ciphermsg/internal/crypto"
	"ciphermsg/internal/domain"
	"ciphermsg/internal/util/memzero"
)

// Codec encodes and decodes envelopes for a single private key.
type Codec struct {
	priv   domain.PrivateKey
	pub    domain.PublicKey
	ka     domain.KeyAgreement
	aead   domain.AEAD
	logger logrus.FieldLogger
}

// New returns a Codec around privateKey, supplied as raw bytes or hex.
//
// Malformed hex fails with domain.ErrInvalidKeyFormat; a key of the wrong
// size for the curve fails with crypto.ErrInvalidKeySize.
func New(privateKey domain.Input, opts ...Option) (*Codec, error) {
	o := options{curve: domain.CurveEd25519}
	for _, opt := range opts {
		opt(&o)
	}

	ka := o.ka
	if ka == nil {
		var err error
		if ka, err = crypto.KeyAgreementFor(o.curve); err != nil {
			return nil, err
		}
	}
	aead := o.aead
	if aead == nil {
		aead = crypto.NewGCM()
	}
	logger := o.logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	raw, err := privateKey.Resolve()
	if err != nil {
		return nil, err
	}
	if len(raw) != ka.PrivateKeySize() {
		return nil, fmt.Errorf("%w: got %d, want %d", crypto.ErrInvalidKeySize, len(raw), ka.PrivateKeySize())
	}
	priv := make(domain.PrivateKey, len(raw))
	copy(priv, raw)

	pub, err := ka.PublicKey(priv)
	if err != nil {
		memzero.Zero(priv)
		return nil, err
	}

	return &Codec{
		priv:   priv,
		pub:    pub,
		ka:     ka,
		aead:   aead,
		logger: logger.WithField("curve", ka.Curve().String()),
	}, nil
}

// PublicKey returns a copy of the public key matching the codec's private key.
func (c *Codec) PublicKey() domain.PublicKey {
	return append(domain.PublicKey(nil), c.pub...)
}

// Close wipes the private key. Later Encode and Decode calls fail with
// crypto.ErrInvalidKeySize.
func (c *Codec) Close() {
	memzero.Zero(c.priv)
	c.priv = nil
}

// Encode encrypts message for recipient and returns the envelope
// [0x01][tag][iv][ciphertext].
func (c *Codec) Encode(recipient, message domain.Input) ([]byte, error) {
	pub, err := recipient.Resolve()
	if err != nil {
		return nil, err
	}
	msg, err := message.Resolve()
	if err != nil {
		return nil, err
	}

	sealed, err := c.aead.Seal(c.ka, c.priv, pub, msg)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	payload := sealed.Bytes()
	out := make([]byte, 0, 1+len(payload))
	out = append(out, domain.MarkerCurrent)
	return append(out, payload...), nil
}

// Decode authenticates and decrypts envelope from sender.
//
// Envelopes that are not for this key pair, or not envelopes at all, are
// reported through Outcome.Decoded rather than an error.
func (c *Codec) Decode(sender, envelope domain.Input) (domain.Outcome, error) {
	pub, err := sender.Resolve()
	if err != nil {
		return domain.Outcome{}, err
	}
	env, err := envelope.Resolve()
	if err != nil {
		return domain.Outcome{}, err
	}
	return c.decode(pub, env, env)
}

// decode opens env and reports original when it does not decode.
func (c *Codec) decode(pub domain.PublicKey, env, original []byte) (domain.Outcome, error) {
	if len(env) == 0 || env[0] != domain.MarkerCurrent {
		return notDecoded(original), nil
	}

	plaintext, err := c.aead.Open(c.ka, c.priv, pub, env[1:])
	if err != nil {
		if !recoverable(err) {
			return domain.Outcome{}, fmt.Errorf("decode: %w", err)
		}
		c.logger.WithFields(logrus.Fields{
			"peer":   crypto.Fingerprint(pub).String(),
			"reason": err.Error(),
		}).Debug("envelope not decoded")
		return notDecoded(original), nil
	}

	return domain.Outcome{
		Decoded:   true,
		Message:   widen(plaintext),
		Plaintext: plaintext,
	}, nil
}

// recoverable reports whether err means "not a message for this key pair".
func recoverable(err error) bool {
	return errors.Is(err, crypto.ErrAuthenticationFailed) || errors.Is(err, crypto.ErrInvalidPoint)
}

func notDecoded(original []byte) domain.Outcome {
	return domain.Outcome{Decoded: false, Original: original}
}

// widen maps each byte to the code point of the same value.
func widen(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, v := range b {
		sb.WriteRune(rune(v))
	}
	return sb.String()
}

// Compile-time assertion that Codec implements domain.MessageCodec.
var _ domain.MessageCodec = (*Codec)(nil)

package identity

import (
	"fmt"
	"io"
	"unicode"

	"github.com/sirupsen/logrus"

	"ciphermsg/internal/crypto"
	"ciphermsg/internal/domain"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
)

// Service manages the local key pair using a backing store.
type Service struct {
	store  domain.KeyStore
	curve  domain.Curve
	logger logrus.FieldLogger
}

// New returns an identity service that generates keys on curve and persists
// them in s. A nil logger discards output.
func New(s domain.KeyStore, curve domain.Curve, logger logrus.FieldLogger) *Service {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Service{store: s, curve: curve, logger: logger}
}

// GenerateKeyPair creates a new key pair, saves it encrypted with the
// passphrase, and returns it with a short fingerprint of its public key.
// Any previously stored key pair is replaced.
func (s *Service) GenerateKeyPair(passphrase string) (domain.KeyPair, domain.Fingerprint, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.KeyPair{}, "", ErrWeakPassphrase
	}

	kp, err := crypto.GenerateKeyPair(s.curve)
	if err != nil {
		return domain.KeyPair{}, "", err
	}
	if err := s.store.SaveKeyPair(passphrase, kp); err != nil {
		crypto.Wipe(kp.Private)
		return domain.KeyPair{}, "", err
	}

	fp := crypto.Fingerprint(kp.Public)
	s.logger.WithFields(logrus.Fields{
		"curve":       kp.Curve.String(),
		"fingerprint": fp.String(),
	}).Info("generated key pair")
	return kp, fp, nil
}

// LoadKeyPair decrypts and returns the local key pair.
func (s *Service) LoadKeyPair(passphrase string) (domain.KeyPair, error) {
	return s.store.LoadKeyPair(passphrase)
}

// Fingerprint returns a short fingerprint of the local public key.
func (s *Service) Fingerprint(passphrase string) (domain.Fingerprint, error) {
	kp, err := s.store.LoadKeyPair(passphrase)
	if err != nil {
		return "", err
	}
	crypto.Wipe(kp.Private)
	return crypto.Fingerprint(kp.Public), nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)

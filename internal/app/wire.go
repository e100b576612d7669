package app

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"ciphermsg/internal/codec"
	"ciphermsg/internal/config"
	"ciphermsg/internal/crypto"
	"ciphermsg/internal/domain"
	identitysvc "ciphermsg/internal/services/identity"
	"ciphermsg/internal/store"
)

// Wire bundles the stores and services the CLI needs.
type Wire struct {
	Config   config.Config
	Logger   *logrus.Logger
	Keys     domain.KeyStore
	Identity domain.IdentityService
	curve    domain.Curve
}

// NewWire constructs the dependency graph from cfg. Log output goes to
// stderr; use NewWireWithLog to redirect it.
func NewWire(cfg config.Config) (*Wire, error) {
	return NewWireWithLog(cfg, os.Stderr)
}

// NewWireWithLog is NewWire with log output written to w.
func NewWireWithLog(cfg config.Config, w io.Writer) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	curve, err := crypto.ParseCurve(cfg.Curve)
	if err != nil {
		return nil, err
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	// File-based key store
	dir, name := cfg.KeyPath()
	keyStore := store.NewKeyFileStore(dir, name)

	identity := identitysvc.New(keyStore, curve, logger.WithField("component", "identity"))

	return &Wire{
		Config:   cfg,
		Logger:   logger,
		Keys:     keyStore,
		Identity: identity,
		curve:    curve,
	}, nil
}

// Codec loads the stored key pair and returns a codec for it. The caller
// must Close the codec when done.
func (w *Wire) Codec(passphrase string) (*codec.Codec, error) {
	kp, err := w.Identity.LoadKeyPair(passphrase)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(kp.Private)

	if kp.Curve != w.curve {
		return nil, fmt.Errorf("stored key pair is %s but curve %s is configured", kp.Curve, w.curve)
	}
	return codec.New(
		domain.Bytes(kp.Private),
		codec.WithCurve(kp.Curve),
		codec.WithLogger(w.Logger.WithField("component", "codec")),
	)
}

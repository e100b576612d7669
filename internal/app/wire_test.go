package app

import (
	"bytes"
	"errors"
	"testing"

	"github.com/maxatome/go-testdeep/td"

	"ciphermsg/internal/config"
	"ciphermsg/internal/domain"
	"ciphermsg/internal/store"
)

const pass = "Correct-Horse-9"

func testConfig(t *testing.T, curve domain.Curve) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Home = t.TempDir()
	cfg.Curve = curve.String()
	return cfg
}

func TestNewWire_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t, domain.CurveEd25519)
	cfg.Curve = "p256"

	_, err := NewWire(cfg)
	td.CmpTrue(t, errors.Is(err, config.ErrInvalidConfig))
}

func TestWire_CodecRoundTrip(t *testing.T) {
	var logs bytes.Buffer
	w, err := NewWireWithLog(testConfig(t, domain.CurveX25519), &logs)
	td.CmpNoError(t, err)

	kp, _, err := w.Identity.GenerateKeyPair(pass)
	td.CmpNoError(t, err)

	c, err := w.Codec(pass)
	td.CmpNoError(t, err)
	defer c.Close()
	td.Cmp(t, c.PublicKey(), kp.Public)

	env, err := c.Encode(domain.Bytes(kp.Public), domain.Text("note to self"))
	td.CmpNoError(t, err)
	out, err := c.Decode(domain.Bytes(kp.Public), domain.Bytes(env))
	td.CmpNoError(t, err)
	td.Cmp(t, out.Message, "note to self")
}

func TestWire_CodecWithoutKeyPair(t *testing.T) {
	w, err := NewWire(testConfig(t, domain.CurveEd25519))
	td.CmpNoError(t, err)

	_, err = w.Codec(pass)
	td.CmpTrue(t, errors.Is(err, store.ErrNoKeyPair))
}

func TestWire_CodecCurveMismatch(t *testing.T) {
	cfg := testConfig(t, domain.CurveX448)
	w, err := NewWire(cfg)
	td.CmpNoError(t, err)
	_, _, err = w.Identity.GenerateKeyPair(pass)
	td.CmpNoError(t, err)

	cfg.Curve = domain.CurveEd25519.String()
	w, err = NewWire(cfg)
	td.CmpNoError(t, err)
	_, err = w.Codec(pass)
	td.CmpError(t, err)
}

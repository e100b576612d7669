package crypto_test

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"testing"

	"filippo.io/edwards25519"

	"ciphermsg/internal/crypto"
	"ciphermsg/internal/domain"
)

var allCurves = []domain.Curve{domain.CurveEd25519, domain.CurveX25519, domain.CurveX448}

// makeKeyPair returns a fresh key pair on c.
func makeKeyPair(t *testing.T, c domain.Curve) domain.KeyPair {
	t.Helper()
	kp, err := crypto.GenerateKeyPair(c)
	if err != nil {
		t.Fatalf("GenerateKeyPair(%s): %v", c, err)
	}
	return kp
}

func TestDeriveSharedKey_Symmetric(t *testing.T) {
	for _, c := range allCurves {
		t.Run(c.String(), func(t *testing.T) {
			ka, err := crypto.KeyAgreementFor(c)
			if err != nil {
				t.Fatalf("KeyAgreementFor: %v", err)
			}
			alice := makeKeyPair(t, c)
			bob := makeKeyPair(t, c)

			ab, err := ka.DeriveSharedKey(alice.Private, bob.Public)
			if err != nil {
				t.Fatalf("derive (alice, bob): %v", err)
			}
			ba, err := ka.DeriveSharedKey(bob.Private, alice.Public)
			if err != nil {
				t.Fatalf("derive (bob, alice): %v", err)
			}
			if !bytes.Equal(ab, ba) {
				t.Fatal("shared keys differ")
			}
			if len(ab) != crypto.SharedKeySize {
				t.Fatalf("shared key is %d bytes, want %d", len(ab), crypto.SharedKeySize)
			}

			again, err := ka.DeriveSharedKey(alice.Private, bob.Public)
			if err != nil {
				t.Fatalf("derive again: %v", err)
			}
			if !bytes.Equal(ab, again) {
				t.Fatal("derivation is not deterministic")
			}
		})
	}
}

func TestDeriveSharedKey_DifferentPeersDiffer(t *testing.T) {
	for _, c := range allCurves {
		t.Run(c.String(), func(t *testing.T) {
			ka, _ := crypto.KeyAgreementFor(c)
			alice := makeKeyPair(t, c)
			bob := makeKeyPair(t, c)
			carol := makeKeyPair(t, c)

			ab, err := ka.DeriveSharedKey(alice.Private, bob.Public)
			if err != nil {
				t.Fatalf("derive: %v", err)
			}
			ac, err := ka.DeriveSharedKey(alice.Private, carol.Public)
			if err != nil {
				t.Fatalf("derive: %v", err)
			}
			if bytes.Equal(ab, ac) {
				t.Fatal("distinct peers produced the same shared key")
			}
		})
	}
}

func TestEd25519PublicKey_MatchesStdlib(t *testing.T) {
	kp := makeKeyPair(t, domain.CurveEd25519)
	want := ed25519.NewKeyFromSeed(kp.Private).Public().(ed25519.PublicKey)
	if !bytes.Equal(kp.Public, want) {
		t.Fatalf("public key %x, want %x", kp.Public, want)
	}
}

func TestDeriveSharedKey_LowOrderPointRejected(t *testing.T) {
	ed25519Identity := make([]byte, 32)
	ed25519Identity[0] = 1

	tests := []struct {
		name string
		c    domain.Curve
		pub  []byte
	}{
		{"ed25519 identity", domain.CurveEd25519, ed25519Identity},
		{"x25519 zero", domain.CurveX25519, make([]byte, 32)},
		{"x448 zero", domain.CurveX448, make([]byte, 56)},
		{"ed25519 mixed order", domain.CurveEd25519, withTorsion(t, makeKeyPair(t, domain.CurveEd25519).Public)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ka, _ := crypto.KeyAgreementFor(tt.c)
			kp := makeKeyPair(t, tt.c)
			_, err := ka.DeriveSharedKey(kp.Private, tt.pub)
			if !errors.Is(err, crypto.ErrInvalidPoint) {
				t.Fatalf("want ErrInvalidPoint, got %v", err)
			}
		})
	}
}

func TestDeriveSharedKey_WrongPublicKeyLength(t *testing.T) {
	for _, c := range allCurves {
		t.Run(c.String(), func(t *testing.T) {
			ka, _ := crypto.KeyAgreementFor(c)
			kp := makeKeyPair(t, c)
			_, err := ka.DeriveSharedKey(kp.Private, kp.Public[:len(kp.Public)-1])
			if !errors.Is(err, crypto.ErrInvalidPoint) {
				t.Fatalf("want ErrInvalidPoint, got %v", err)
			}
		})
	}
}

func TestEd25519_UndecodablePointRejected(t *testing.T) {
	// Roughly half of all y coordinates have no matching x; try a range and
	// require every failure to be classified as ErrInvalidPoint.
	kp := makeKeyPair(t, domain.CurveEd25519)
	ka := crypto.Ed25519Agreement{}

	rejected := 0
	for y := 2; y < 64; y++ {
		pub := make([]byte, 32)
		pub[0] = byte(y)
		_, err := ka.DeriveSharedKey(kp.Private, pub)
		if err == nil {
			continue
		}
		if !errors.Is(err, crypto.ErrInvalidPoint) {
			t.Fatalf("y=%d: want ErrInvalidPoint, got %v", y, err)
		}
		rejected++
	}
	if rejected == 0 {
		t.Fatal("expected at least one undecodable point")
	}
}

func TestPrivateKeySizeEnforced(t *testing.T) {
	for _, c := range allCurves {
		t.Run(c.String(), func(t *testing.T) {
			ka, _ := crypto.KeyAgreementFor(c)
			peer := makeKeyPair(t, c)
			short := make(domain.PrivateKey, ka.PrivateKeySize()-1)

			if _, err := ka.PublicKey(short); !errors.Is(err, crypto.ErrInvalidKeySize) {
				t.Fatalf("PublicKey: want ErrInvalidKeySize, got %v", err)
			}
			if _, err := ka.DeriveSharedKey(short, peer.Public); !errors.Is(err, crypto.ErrInvalidKeySize) {
				t.Fatalf("DeriveSharedKey: want ErrInvalidKeySize, got %v", err)
			}
		})
	}
}

func TestParseCurve(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Curve
		wantErr bool
	}{
		{"ed25519", domain.CurveEd25519, false},
		{" X25519 ", domain.CurveX25519, false},
		{"x448", domain.CurveX448, false},
		{"secp256k1", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := crypto.ParseCurve(tt.in)
		if tt.wantErr {
			if !errors.Is(err, crypto.ErrUnsupportedCurve) {
				t.Fatalf("ParseCurve(%q): want ErrUnsupportedCurve, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseCurve(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestPublicKeyFor_MatchesGenerated(t *testing.T) {
	for _, c := range allCurves {
		kp := makeKeyPair(t, c)
		pub, err := crypto.PublicKeyFor(c, kp.Private)
		if err != nil {
			t.Fatalf("PublicKeyFor(%s): %v", c, err)
		}
		if !bytes.Equal(pub, kp.Public) {
			t.Fatalf("%s: derived public key differs from generated one", c)
		}
	}
}

func TestFingerprint_ShortAndStable(t *testing.T) {
	kp := makeKeyPair(t, domain.CurveEd25519)
	fp := crypto.Fingerprint(kp.Public)
	if len(fp) != 20 {
		t.Fatalf("fingerprint length %d, want 20", len(fp))
	}
	if fp != crypto.Fingerprint(kp.Public) {
		t.Fatal("fingerprint not stable")
	}
}

// order8Point is the encoding of a point of order 8 on edwards25519.
const order8Point = "c7176a703d4dd84fba3c0b760d10670f2a2053fa2c39ccc64ec7fd7792ac037a"

// withTorsion returns pub + T, where T has order 8. The result decodes and is
// not small order, but lies outside the prime-order subgroup.
func withTorsion(t *testing.T, pub []byte) []byte {
	t.Helper()
	raw, _ := hex.DecodeString(order8Point)
	torsion, err := new(edwards25519.Point).SetBytes(raw)
	if err != nil {
		t.Fatalf("decode torsion point: %v", err)
	}
	if new(edwards25519.Point).MultByCofactor(torsion).Equal(edwards25519.NewIdentityPoint()) != 1 {
		t.Fatal("torsion point is not small order")
	}
	p, err := new(edwards25519.Point).SetBytes(pub)
	if err != nil {
		t.Fatalf("decode public key: %v", err)
	}
	return new(edwards25519.Point).Add(p, torsion).Bytes()
}

func TestEd25519_PrimeOrderPeersAccepted(t *testing.T) {
	ka := crypto.Ed25519Agreement{}
	for i := 0; i < 8; i++ {
		alice := makeKeyPair(t, domain.CurveEd25519)
		bob := makeKeyPair(t, domain.CurveEd25519)
		if _, err := ka.DeriveSharedKey(alice.Private, bob.Public); err != nil {
			t.Fatalf("honest peer rejected: %v", err)
		}
	}
}

// Package crypto exposes the primitives the message codec is built on.
//
// Contents
//
//   - Key agreement per curve (Ed25519Agreement, X25519Agreement,
//     X448Agreement, KeyAgreementFor)
//   - Shared-key derivation with HKDF-SHA256 over the raw agreement output
//   - AES-256-GCM sealing into tag, IV and ciphertext (GCM)
//   - Key generation and public-key derivation (GenerateKeyPair, PublicKeyFor)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Errors
//
// Two failure kinds are meaningful to callers that treat foreign data as
// plain bytes: ErrInvalidPoint (the peer public key is not usable key
// material) and ErrAuthenticationFailed (the payload did not authenticate
// under the derived key). Everything else is unexpected.
//
// # Concurrency
//
// Every function and type here is a pure function of its inputs and safe for
// concurrent use. This relies on crypto/rand, crypto/aes, filippo.io/edwards25519,
// golang.org/x/crypto/curve25519 and circl's x448 being reentrant, which they
// are.
//
// # Notes
//
// Derived shared keys and raw agreement outputs are wiped before returning
// where practical. Private keys are never logged.
package crypto

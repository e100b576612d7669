// Package codec encrypts messages into self-describing binary envelopes and
// decrypts them back, for one party holding a private key.
//
// # Envelope format
//
// Current format, produced by Encode:
//
//	[0x01][16-byte GCM tag][12-byte IV][ciphertext]
//
// Legacy wallet format, produced by EncodeLegacy:
//
//	[0x01][ASCII hex of tag || IV || ciphertext]
//
// The shared AES-256 key is derived from the codec's private key and the
// peer's public key (see package crypto), so the sender encodes with the
// recipient's public key and the recipient decodes with the sender's.
//
// # Decoding foreign data
//
// Decode and DecodeLegacy never fail because bytes are "not a message for
// me". A wrong marker byte, an invalid peer point, a short payload or a tag
// mismatch all yield an Outcome with Decoded == false and Original set to the
// caller's bytes. Any other primitive failure is returned as an error.
//
// On success Outcome.Message widens each plaintext byte to one code point
// (0-255). It is not UTF-8 decoding; legacy clients depend on this exact
// mapping. Outcome.Plaintext carries the raw bytes.
//
// # Concurrency
//
// A Codec holds no mutable state after New; Encode and Decode may be called
// from multiple goroutines, provided the KeyAgreement and AEAD in use are
// reentrant (the defaults are). Close must not race with other calls.
package codec

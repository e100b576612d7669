package types

// MarkerCurrent is the first byte of every envelope this codec produces.
const MarkerCurrent byte = 0x01

// Sealed is the output of the AEAD primitive. Bytes lays the parts out in
// envelope order.
type Sealed struct {
	Tag        []byte
	IV         []byte
	CipherText []byte
}

// Bytes returns tag || iv || ciphertext.
func (s Sealed) Bytes() []byte {
	out := make([]byte, 0, len(s.Tag)+len(s.IV)+len(s.CipherText))
	out = append(out, s.Tag...)
	out = append(out, s.IV...)
	return append(out, s.CipherText...)
}

// Outcome reports the result of decoding an envelope.
//
// When Decoded is true, Message holds the plaintext widened one byte per code
// point (0-255) and Plaintext the raw recovered bytes. When Decoded is false,
// Original holds the envelope exactly as the caller supplied it.
type Outcome struct {
	Decoded   bool
	Message   string
	Plaintext []byte
	Original  []byte
}

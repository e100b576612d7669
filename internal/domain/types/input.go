package types

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidKeyFormat is returned when hex text was supplied where raw bytes
// were expected and it does not decode.
var ErrInvalidKeyFormat = errors.New("invalid key format")

type inputKind uint8

const (
	inputBytes inputKind = iota
	inputHex
	inputText
)

// Input is a byte sequence supplied either as raw bytes, as hex text, or as
// UTF-8 text. The zero value is an empty byte sequence.
type Input struct {
	kind inputKind
	raw  []byte
	text string
}

// Bytes wraps raw bytes.
func Bytes(b []byte) Input { return Input{kind: inputBytes, raw: b} }

// Hex wraps hex-encoded text; it is decoded by Resolve.
func Hex(s string) Input { return Input{kind: inputHex, text: s} }

// Text wraps UTF-8 text; Resolve returns its bytes unchanged.
func Text(s string) Input { return Input{kind: inputText, text: s} }

// Resolve normalizes the input to raw bytes.
func (in Input) Resolve() ([]byte, error) {
	switch in.kind {
	case inputHex:
		b, err := hex.DecodeString(in.text)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKeyFormat, err)
		}
		return b, nil
	case inputText:
		return []byte(in.text), nil
	default:
		return in.raw, nil
	}
}

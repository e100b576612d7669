package codec

import (
	"encoding/hex"

	"ciphermsg/internal/domain"
)

// EncodeLegacy produces the wallet envelope: the marker byte followed by the
// ASCII hex text of everything Encode puts after its marker.
// Only peers that still read the wallet format need it; use Encode otherwise.
func (c *Codec) EncodeLegacy(recipient, message domain.Input) ([]byte, error) {
	env, err := c.Encode(recipient, message)
	if err != nil {
		return nil, err
	}
	text := hex.EncodeToString(env[1:])

	out := make([]byte, 0, 1+len(text))
	out = append(out, domain.MarkerCurrent)
	return append(out, text...), nil
}

// DecodeLegacy decodes wallet envelopes and falls back to Decode for anything
// else, so current envelopes decode through it too.
// Only peers that still send the wallet format need it.
func (c *Codec) DecodeLegacy(sender, envelope domain.Input) (domain.Outcome, error) {
	pub, err := sender.Resolve()
	if err != nil {
		return domain.Outcome{}, err
	}
	env, err := envelope.Resolve()
	if err != nil {
		return domain.Outcome{}, err
	}

	if len(env) > 0 && env[0] == domain.MarkerCurrent {
		if payload, ok := unhexText(env[1:]); ok {
			rebuilt := make([]byte, 0, 1+len(payload))
			rebuilt = append(rebuilt, domain.MarkerCurrent)
			rebuilt = append(rebuilt, payload...)
			return c.decode(pub, rebuilt, env)
		}
	}
	return c.decode(pub, env, env)
}

// unhexText decodes text when it is an even-length run of 0-9a-fA-F.
func unhexText(text []byte) ([]byte, bool) {
	if len(text)%2 != 0 {
		return nil, false
	}
	for _, b := range text {
		if !isHexDigit(b) {
			return nil, false
		}
	}
	out := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(out, text); err != nil {
		return nil, false
	}
	return out, true
}

func isHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

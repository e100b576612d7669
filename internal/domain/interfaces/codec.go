package interfaces

import domaintypes "ciphermsg/internal/domain/types"

// MessageCodec encrypts messages into envelopes and back for one private key.
type MessageCodec interface {
	Encode(recipient, message domaintypes.Input) ([]byte, error)
	Decode(sender, envelope domaintypes.Input) (domaintypes.Outcome, error)
	EncodeLegacy(recipient, message domaintypes.Input) ([]byte, error)
	DecodeLegacy(sender, envelope domaintypes.Input) (domaintypes.Outcome, error)
}

package crypto

import (
	"crypto/rand"
	"io"
)

// randReader is the random source used for key generation and IVs.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

func rng() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

// SetRandReaderForTesting sets the random reader used by GenerateKeyPair and
// GCM.Seal. This is intended for testing only. Returns a function to restore
// the original reader.
func SetRandReaderForTesting(r io.Reader) func() {
	original := randReader
	randReader = r
	return func() { randReader = original }
}

package crypto

import "ciphermsg/internal/util/memzero"

// Wipe zeroes b. It is best-effort; copies made by the runtime are not
// reachable from here.
func Wipe(b []byte) { memzero.Zero(b) }

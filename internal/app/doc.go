// Package app wires application dependencies for the CLI.
//
// It builds the logger, the key store and the identity service from a
// config.Config and exposes them via the Wire struct. Wire.Codec unlocks the
// stored key pair and returns a message codec on the configured curve.
package app

// Package commands defines the ciphermsg CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keygen       Create or replace the local key pair
//   - pubkey       Print the local public key (hex)
//   - fingerprint  Print the local public key fingerprint
//   - encode       Encrypt a message for a recipient public key
//   - decode       Decrypt an envelope from a sender public key
//
// # Implementation
//
// The root command resolves configuration (defaults, YAML file, environment,
// flags) and builds an app.Wire before any subcommand runs, so handlers share
// one logger and key store.
package commands

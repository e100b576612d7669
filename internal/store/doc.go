// Package store provides file-based persistence for the local key pair.
//
// KeyFileStore keeps a single key pair in one file under the configured home
// directory. The file is JSON sealed with a passphrase-derived key (scrypt +
// ChaCha20-Poly1305) and is replaced atomically on every save. All methods are
// concurrency-safe via internal locking.
package store

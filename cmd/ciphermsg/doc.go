// Command ciphermsg encrypts and decrypts short messages between two key
// pairs using the ciphermsg envelope format.
//
// Usage:
//
//	ciphermsg keygen -p <passphrase>
//	ciphermsg encode <recipient-pubkey-hex> <message> -p <passphrase> [--legacy]
//	ciphermsg decode <sender-pubkey-hex> <envelope> -p <passphrase> [--legacy]
//
// Every persistent flag may also be supplied as a CIPHERMSG_* environment
// variable, e.g. CIPHERMSG_PASSPHRASE or CIPHERMSG_LOG_LEVEL.
package main

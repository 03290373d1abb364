// Package pki manages the asymmetric key material used to authenticate
// endpoints. It can duplicate keys (optionally demoting them to
// public-only), decode PEM private keys with passphrase handling, assemble
// public keys from wire-format integers, serialize public keys into the
// protocol's key-blob format, and produce raw signatures over message
// digests.
//
// The bignum arithmetic and signature math are delegated to the standard
// crypto packages; this package owns the per-algorithm field handling, the
// public/private separation, and the zeroing of secret values. Elliptic
// curve keys are not supported.
package pki

// Package secure implements the TagoTiP/S envelope: a binary
// authenticated-encryption wrapper around a headless TagoTiP inner
// frame.
//
// # Wire layout
//
//	0        1           5                13              21           21+N    21+N+8
//	+--------+-----------+----------------+---------------+------------+-------+
//	| flags  | counter   | auth_hash      | device_hash   | ciphertext | tag   |
//	| (1)    | (4, BE)   | (8)            | (8)           | (N)        | (8)   |
//	+--------+-----------+----------------+---------------+------------+-------+
//
// The first 21 bytes (flags ∥ counter ∥ auth_hash ∥ device_hash) are
// the envelope header; they double as the AEAD's associated data,
// verbatim, binding the header to the ciphertext without encrypting
// it. Total envelope length is always N + 29.
//
// # Identifiers, not secrets
//
// auth_hash and device_hash (DeriveAuthHash, DeriveDeviceHash) are
// truncated SHA-256 fingerprints of the device's credentials. They
// let a server route an inbound envelope to the right device record —
// and, in turn, the right symmetric key — before any decryption is
// attempted: ParseEnvelopeHeader reads them without touching the key
// at all.
//
// # Method recovery
//
// The envelope carries no field for which frame kind (PUSH, PULL,
// PING, or a device-bound ACK) it contains — Open recovers it by
// trying all four candidate values against the AEAD tag, in ascending
// order, and returning the first one that authenticates. This relies
// on the candidate method varying the AEAD nonce (see buildNonce in
// envelope.go); under AEAD authenticity guarantees, the chance of two
// candidates both verifying on genuine ciphertext is negligible.
//
// # Key derivation
//
// DeriveKey turns a device's auth token and serial into a 16- or
// 32-byte symmetric key without any persisted key material: the same
// two textual credentials the device already proves possession of in
// every frame also regenerate its envelope key. See kdf.go for the
// exact recipe and kdf_test.go for the vector it is built against.
package secure

package secure

import (
	"crypto/sha256"

	"golang.org/x/crypto/hkdf"

	"github.com/tago-io/tagotip-sdk/errs"
	"github.com/tago-io/tagotip-sdk/internal/lexer"
)

// DeriveKey expands a device's textual credentials into a symmetric
// key. length must be 16 or 32.
//
// The recipe is a single HKDF-Extract call (RFC 5869) with the serial
// as input key material and the hex-stripped token as salt:
//
//	PRK = HMAC-SHA256(key=hex(token), msg=serial)
//	key = PRK[:length]
//
// No HKDF-Expand stage is needed because the maximum requested length
// (32 bytes) equals the SHA-256 digest size, so the extract step's
// output is already the full pseudorandom key. This recipe was
// recovered by matching the published test vector — see this
// package's tests for the exact vector it reproduces.
//
// As with DeriveAuthHash, token's "at" prefix is optional.
func DeriveKey(token, serial string, length int) ([]byte, error) {
	if length != 16 && length != 32 {
		return nil, errs.ErrInvalidKeySize
	}
	hexPart, ok := lexer.StripOptionalTokenPrefix(token)
	if !ok {
		return nil, errs.ErrInvalidAuth
	}
	prk := hkdf.Extract(sha256.New, []byte(serial), []byte(hexPart))
	key := make([]byte, length)
	copy(key, prk[:length])
	return key, nil
}

package secure

import (
	"crypto/sha256"

	"github.com/tago-io/tagotip-sdk/errs"
	"github.com/tago-io/tagotip-sdk/internal/lexer"
)

// DeriveAuthHash computes the routing identifier for an auth token:
// the first 8 bytes of SHA-256 over the hex remainder's ASCII text
// (not the bytes the hex would decode to). The "at" prefix is
// optional: token may be "at" followed by 32 hex characters, or the
// bare 32 hex characters themselves.
func DeriveAuthHash(token string) ([AuthHashLen]byte, error) {
	hexPart, ok := lexer.StripOptionalTokenPrefix(token)
	if !ok {
		return [AuthHashLen]byte{}, errs.ErrInvalidAuth
	}
	sum := sha256.Sum256([]byte(hexPart))
	var out [AuthHashLen]byte
	copy(out[:], sum[:AuthHashLen])
	return out, nil
}

// DeriveDeviceHash computes the associated-data binding for a device
// serial: the first 8 bytes of SHA-256 over its UTF-8 bytes.
func DeriveDeviceHash(serial string) [DeviceHashLen]byte {
	sum := sha256.Sum256([]byte(serial))
	var out [DeviceHashLen]byte
	copy(out[:], sum[:DeviceHashLen])
	return out
}

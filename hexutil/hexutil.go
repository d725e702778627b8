// Package hexutil provides the bounded hex encode/decode helpers the
// frame and secure packages' callers use for passthrough payloads and
// key material. It is a thin, explicitly-erroring wrapper around
// encoding/hex rather than a reimplementation: the standard library
// already rejects odd-length and non-hex input exactly as this
// protocol requires, so there is nothing to improve on here.
package hexutil

import (
	"encoding/hex"

	"github.com/tago-io/tagotip-sdk/errs"
)

// HexToBytes decodes an even-length hex string into bytes. An empty
// string decodes to an empty (non-nil) slice. Odd length or any
// non-hex character yields errs.ErrInvalidPassthrough.
func HexToBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, errs.ErrInvalidPassthrough
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errs.ErrInvalidPassthrough
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

// BytesToHex encodes b as lowercase, fixed-width two-nibble-per-byte
// hex.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

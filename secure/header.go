package secure

import (
	"bytes"
	"encoding/binary"

	"github.com/tago-io/tagotip-sdk/errs"
)

// EnvelopeHeader is the fixed 21-byte prefix of every envelope: a
// reserved flags byte, a big-endian counter, and the two truncated
// SHA-256 fingerprints that identify the sender without decrypting
// anything.
type EnvelopeHeader struct {
	Flags      uint8
	Counter    uint32
	AuthHash   [AuthHashLen]byte
	DeviceHash [DeviceHashLen]byte
}

// Bytes encodes h into its 21-byte wire form.
func (h EnvelopeHeader) Bytes() []byte {
	buf := make([]byte, HeaderLen)
	buf[0] = h.Flags
	binary.BigEndian.PutUint32(buf[1:5], h.Counter)
	copy(buf[5:13], h.AuthHash[:])
	copy(buf[13:21], h.DeviceHash[:])
	return buf
}

// ParseEnvelopeHeader parses the 21-byte header from the front of
// envelope without touching or requiring the ciphertext that follows.
// It is used for server-side routing (by auth hash/device hash) ahead
// of the key lookup Open needs.
func ParseEnvelopeHeader(envelope []byte) (EnvelopeHeader, error) {
	if len(envelope) < HeaderLen {
		return EnvelopeHeader{}, errs.ErrEnvelopeTooShort
	}
	var h EnvelopeHeader
	h.Flags = envelope[0]
	h.Counter = binary.BigEndian.Uint32(envelope[1:5])
	copy(h.AuthHash[:], envelope[5:13])
	copy(h.DeviceHash[:], envelope[13:21])
	return h, nil
}

var ackPrefix = []byte("ACK")

// IsEnvelope reports whether data looks like a binary TagoTiP/S
// envelope rather than a plaintext ACK frame sharing the same
// transport. It returns false for an empty buffer or one that begins
// with the ASCII bytes "ACK".
func IsEnvelope(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return !bytes.HasPrefix(data, ackPrefix)
}

package secure

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"

	"github.com/tago-io/tagotip-sdk/errs"
	"github.com/tago-io/tagotip-sdk/internal/ccm"
)

// buildNonce assembles the 13-byte CCM nonce from the candidate
// method, the header's device hash, and the counter. The published
// seal vector, not the envelope's prose description, is the authority
// for this layout: method (1 byte) ∥ four reserved zero bytes ∥ the
// first four bytes of device_hash ∥ counter (4 bytes, big-endian).
// The method byte is the only part that differs between the trial
// methods Open walks; auth_hash is not part of the nonce.
func buildNonce(method EnvelopeMethod, deviceHash [DeviceHashLen]byte, counter uint32) []byte {
	nonce := make([]byte, NonceLen)
	nonce[0] = byte(method)
	copy(nonce[5:9], deviceHash[:4])
	binary.BigEndian.PutUint32(nonce[9:13], counter)
	return nonce
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return ccm.New(block, TagLen, NonceLen)
}

// Seal encrypts inner under AES-128-CCM and returns the complete
// envelope: the 21-byte header, the ciphertext (same length as
// inner), and the 8-byte authentication tag. key must be exactly 16
// bytes.
func Seal(method EnvelopeMethod, inner []byte, counter uint32, authHash, deviceHash [AuthHashLen]byte, key []byte) ([]byte, error) {
	if len(key) != KeyLen {
		return nil, errs.ErrInvalidKeySize
	}
	header := EnvelopeHeader{Flags: 0, Counter: counter, AuthHash: authHash, DeviceHash: deviceHash}
	aad := header.Bytes()

	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	nonce := buildNonce(method, deviceHash, counter)
	ciphertext := aead.Seal(nil, nonce, inner, aad)

	out := make([]byte, 0, len(aad)+len(ciphertext))
	out = append(out, aad...)
	out = append(out, ciphertext...)
	return out, nil
}

// Open authenticates and decrypts envelope. Because the envelope
// carries no method field, Open recovers it by trial decryption over
// the four legal method values in ascending order (0=PUSH, 1=PULL,
// 2=PING, 3=ACK); the first candidate whose AEAD tag verifies wins.
// It returns errs.ErrDecryptFailed if none do.
func Open(envelope []byte, key []byte) (EnvelopeHeader, EnvelopeMethod, []byte, error) {
	if len(key) != KeyLen {
		return EnvelopeHeader{}, 0, nil, errs.ErrInvalidKeySize
	}
	if len(envelope) < HeaderLen+TagLen {
		return EnvelopeHeader{}, 0, nil, errs.ErrEnvelopeTooShort
	}
	header, err := ParseEnvelopeHeader(envelope)
	if err != nil {
		return EnvelopeHeader{}, 0, nil, err
	}
	aad := envelope[:HeaderLen]
	ciphertext := envelope[HeaderLen:]

	aead, err := newAEAD(key)
	if err != nil {
		return EnvelopeHeader{}, 0, nil, err
	}

	for _, method := range candidateMethods {
		nonce := buildNonce(method, header.DeviceHash, header.Counter)
		plaintext, err := aead.Open(nil, nonce, ciphertext, aad)
		if err == nil {
			return header, method, plaintext, nil
		}
	}
	return EnvelopeHeader{}, 0, nil, errs.ErrDecryptFailed
}

// Package ccm implements AES-CCM (RFC 3610), the authenticated
// encryption mode used by the TagoTiP/S envelope. No repository in
// the reference corpus wraps CCM — it is not exposed by crypto/cipher
// (only GCM and the classic block modes are) and no third-party
// module in the dependency graph provides it either, so this package
// builds the construction directly on top of crypto/cipher.Block,
// returning the same cipher.AEAD interface the standard library's own
// NewGCM does.
package ccm

import (
	"crypto/cipher"
	"crypto/subtle"
	"errors"
)

const blockSize = 16

var (
	// ErrInvalidBlockSize is returned by New when cipher.Block does
	// not operate on 16-byte blocks.
	ErrInvalidBlockSize = errors.New("ccm: cipher must have a 16-byte block size")
	// ErrInvalidTagSize is returned by New for a tag size outside
	// RFC 3610's valid range of even values from 4 to 16.
	ErrInvalidTagSize = errors.New("ccm: invalid tag size")
	// ErrInvalidNonceSize is returned by New for a nonce size outside
	// RFC 3610's valid range of 7 to 13 bytes.
	ErrInvalidNonceSize = errors.New("ccm: invalid nonce size")
	// errOpen is returned by Open on authentication failure. It
	// deliberately carries no detail, matching crypto/cipher.NewGCM's
	// own opaque failure behavior.
	errOpen = errors.New("ccm: message authentication failed")
)

type ccm struct {
	block    cipher.Block
	tagSize  int
	nonceSize int
	lenSize  int // L: bytes used to encode message length in B0/counter blocks
}

// New wraps block in an RFC 3610 CCM AEAD with the given tag and
// nonce sizes. tagSize must be an even number of bytes from 4 to 16.
// nonceSize must be from 7 to 13 bytes; the number of bytes reserved
// for the message-length field is L = 15 - nonceSize, which bounds
// the maximum plaintext length to 2^(8*L) - 1 bytes.
func New(block cipher.Block, tagSize, nonceSize int) (cipher.AEAD, error) {
	if block.BlockSize() != blockSize {
		return nil, ErrInvalidBlockSize
	}
	if tagSize < 4 || tagSize > 16 || tagSize%2 != 0 {
		return nil, ErrInvalidTagSize
	}
	if nonceSize < 7 || nonceSize > 13 {
		return nil, ErrInvalidNonceSize
	}
	return &ccm{block: block, tagSize: tagSize, nonceSize: nonceSize, lenSize: 15 - nonceSize}, nil
}

func (c *ccm) NonceSize() int { return c.nonceSize }
func (c *ccm) Overhead() int  { return c.tagSize }

// Seal encrypts and authenticates plaintext, appending the result to
// dst and returning the updated slice. The final c.tagSize bytes of
// the result are the authentication tag.
func (c *ccm) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != c.nonceSize {
		panic("ccm: invalid nonce length")
	}
	tag := c.mac(nonce, plaintext, additionalData)
	s0 := c.counterBlock(nonce, 0)
	c.encryptBlock(s0[:], s0[:])
	u := xorBytes(tag, s0[:c.tagSize])

	ret, ciphertext := sliceForAppend(dst, len(plaintext)+c.tagSize)
	c.ctrCrypt(ciphertext[:len(plaintext)], plaintext, nonce)
	copy(ciphertext[len(plaintext):], u)
	return ret
}

// Open decrypts and verifies ciphertext (which must include the
// trailing tag), appending the plaintext to dst. It returns
// errOpen without revealing anything about the input on
// authentication failure.
func (c *ccm) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != c.nonceSize {
		panic("ccm: invalid nonce length")
	}
	if len(ciphertext) < c.tagSize {
		return nil, errOpen
	}
	ct := ciphertext[:len(ciphertext)-c.tagSize]
	gotTag := ciphertext[len(ciphertext)-c.tagSize:]

	ret, plaintext := sliceForAppend(dst, len(ct))
	c.ctrCrypt(plaintext, ct, nonce)

	tag := c.mac(nonce, plaintext, additionalData)
	s0 := c.counterBlock(nonce, 0)
	c.encryptBlock(s0[:], s0[:])
	u := xorBytes(tag, s0[:c.tagSize])

	if subtle.ConstantTimeCompare(u, gotTag) != 1 {
		for i := range plaintext {
			plaintext[i] = 0
		}
		return nil, errOpen
	}
	return ret, nil
}

// counterBlock builds the 16-byte A_i block: flags(L-1 only) ∥
// nonce ∥ counter encoded big-endian in L bytes.
func (c *ccm) counterBlock(nonce []byte, counter uint64) [blockSize]byte {
	var b [blockSize]byte
	b[0] = byte(c.lenSize - 1)
	copy(b[1:1+c.nonceSize], nonce)
	putCounter(b[1+c.nonceSize:], counter)
	return b
}

func putCounter(dst []byte, v uint64) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte(v)
		v >>= 8
	}
}

func (c *ccm) encryptBlock(dst, src []byte) {
	c.block.Encrypt(dst, src)
}

// ctrCrypt XORs src with the CCM keystream (S1, S2, ...) into dst.
func (c *ccm) ctrCrypt(dst, src []byte, nonce []byte) {
	var ks [blockSize]byte
	counter := uint64(1)
	for len(src) > 0 {
		cb := c.counterBlock(nonce, counter)
		c.encryptBlock(ks[:], cb[:])
		n := len(src)
		if n > blockSize {
			n = blockSize
		}
		for i := 0; i < n; i++ {
			dst[i] = src[i] ^ ks[i]
		}
		dst = dst[n:]
		src = src[n:]
		counter++
	}
}

// mac computes the RFC 3610 CBC-MAC over B0, the length-prefixed and
// padded additional data, and the padded message, returning the first
// tagSize bytes.
func (c *ccm) mac(nonce, message, additionalData []byte) []byte {
	b0 := c.formatB0(nonce, len(message), len(additionalData))

	var x [blockSize]byte
	xorInto(x[:], b0[:])
	c.encryptBlock(x[:], x[:])

	if len(additionalData) > 0 {
		c.macAdditionalData(&x, additionalData)
	}
	c.macMessage(&x, message)

	tag := make([]byte, c.tagSize)
	copy(tag, x[:])
	return tag
}

func (c *ccm) formatB0(nonce []byte, msgLen, adLen int) [blockSize]byte {
	var b0 [blockSize]byte
	var flags byte
	if adLen > 0 {
		flags |= 1 << 6
	}
	m := c.tagSize
	flags |= byte(((m - 2) / 2) << 3)
	flags |= byte(c.lenSize - 1)
	b0[0] = flags
	copy(b0[1:1+c.nonceSize], nonce)
	putCounter(b0[1+c.nonceSize:], uint64(msgLen))
	return b0
}

// macAdditionalData mixes the length-prefixed, zero-padded additional
// data into the running CBC-MAC state x.
func (c *ccm) macAdditionalData(x *[blockSize]byte, ad []byte) {
	var header []byte
	switch {
	case len(ad) < 0xFF00:
		var h [2]byte
		h[0] = byte(len(ad) >> 8)
		h[1] = byte(len(ad))
		header = h[:]
	default:
		var h [6]byte
		h[0], h[1] = 0xFF, 0xFE
		putCounter(h[2:], uint64(len(ad)))
		header = h[:]
	}

	buf := make([]byte, 0, len(header)+len(ad)+blockSize)
	buf = append(buf, header...)
	buf = append(buf, ad...)
	if rem := len(buf) % blockSize; rem != 0 {
		buf = append(buf, make([]byte, blockSize-rem)...)
	}
	c.macBlocks(x, buf)
}

func (c *ccm) macMessage(x *[blockSize]byte, message []byte) {
	buf := message
	if rem := len(buf) % blockSize; rem != 0 || len(buf) == 0 {
		padded := make([]byte, len(buf)+(blockSize-rem)%blockSize)
		copy(padded, buf)
		if len(buf) == 0 {
			return
		}
		buf = padded
	}
	c.macBlocks(x, buf)
}

func (c *ccm) macBlocks(x *[blockSize]byte, buf []byte) {
	for len(buf) > 0 {
		xorInto(x[:], buf[:blockSize])
		c.encryptBlock(x[:], x[:])
		buf = buf[blockSize:]
	}
}

func xorInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}

func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}

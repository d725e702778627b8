package ccm

import (
	"crypto/aes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// TestSeal_RFC3610PacketVector1 checks this construction against RFC
// 3610's own published "Packet Vector #1" (13-byte nonce, M=8).
func TestSeal_RFC3610PacketVector1(t *testing.T) {
	key := mustDecodeHex(t, "C0C1C2C3C4C5C6C7C8C9CACBCCCDCECF")
	nonce := mustDecodeHex(t, "00000003020100A0A1A2A3A4A5")
	ad := mustDecodeHex(t, "0001020304050607")
	pt := mustDecodeHex(t, "08090A0B0C0D0E0F101112131415161718191A1B1C1D1E")
	want := mustDecodeHex(t, "588C979A61C663D2F066D0C2C0F98980"+"6D5F6B61DAC384"+"17E8D12CFDF926E0")

	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	aead, err := New(block, 8, len(nonce))
	require.NoError(t, err)

	got := aead.Seal(nil, nonce, pt, ad)
	assert.Equal(t, want, got)

	opened, err := aead.Open(nil, nonce, got, ad)
	require.NoError(t, err)
	assert.Equal(t, pt, opened)
}

func TestRoundTrip_EmptyPlaintext(t *testing.T) {
	key := make([]byte, 16)
	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	aead, err := New(block, 8, 13)
	require.NoError(t, err)

	nonce := make([]byte, 13)
	ad := []byte("header")

	ct := aead.Seal(nil, nonce, nil, ad)
	assert.Len(t, ct, 8)

	pt, err := aead.Open(nil, nonce, ct, ad)
	require.NoError(t, err)
	assert.Empty(t, pt)
}

func TestOpen_WrongAssociatedDataFails(t *testing.T) {
	key := make([]byte, 16)
	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	aead, err := New(block, 8, 13)
	require.NoError(t, err)

	nonce := make([]byte, 13)
	ct := aead.Seal(nil, nonce, []byte("hello"), []byte("aad-a"))
	_, err = aead.Open(nil, nonce, ct, []byte("aad-b"))
	assert.Error(t, err)
}

func TestNew_RejectsBadParameters(t *testing.T) {
	block, err := aes.NewCipher(make([]byte, 16))
	require.NoError(t, err)

	_, err = New(block, 7, 13) // odd tag size
	assert.ErrorIs(t, err, ErrInvalidTagSize)

	_, err = New(block, 8, 14) // nonce too long
	assert.ErrorIs(t, err, ErrInvalidNonceSize)
}

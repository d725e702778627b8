package hexutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tago-io/tagotip-sdk/errs"
)

func TestHexToBytes(t *testing.T) {
	b, err := HexToBytes("deadbeef")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, b)

	b, err = HexToBytes("")
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestHexToBytes_OddLength(t *testing.T) {
	_, err := HexToBytes("abc")
	assert.ErrorIs(t, err, errs.ErrInvalidPassthrough)
}

func TestHexToBytes_NonHex(t *testing.T) {
	_, err := HexToBytes("zz")
	assert.ErrorIs(t, err, errs.ErrInvalidPassthrough)
}

func TestBytesToHex(t *testing.T) {
	assert.Equal(t, "deadbeef", BytesToHex([]byte{0xde, 0xad, 0xbe, 0xef}))
	assert.Equal(t, "", BytesToHex(nil))
}

func TestRoundTrip(t *testing.T) {
	orig := []byte{0x00, 0x01, 0xff, 0x7f}
	s := BytesToHex(orig)
	back, err := HexToBytes(s)
	require.NoError(t, err)
	assert.Equal(t, orig, back)
}

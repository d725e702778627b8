package secure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tago-io/tagotip-sdk/errs"
	"github.com/tago-io/tagotip-sdk/hexutil"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hexutil.HexToBytes(s)
	require.NoError(t, err)
	return b
}

func TestSeal_SpecVector(t *testing.T) {
	key := mustHex(t, "fe09da81bc4400ee12ab56cd78ef9012")
	authHashBytes := mustHex(t, "4deedd7bab8817ec")
	deviceHashBytes := mustHex(t, "ab7788d22eb7372f")

	var authHash [AuthHashLen]byte
	var deviceHash [DeviceHashLen]byte
	copy(authHash[:], authHashBytes)
	copy(deviceHash[:], deviceHashBytes)

	inner := []byte("sensor-01|[temp:=32]")

	envelope, err := Seal(MethodPush, inner, 42, authHash, deviceHash, key)
	require.NoError(t, err)

	want := mustHex(t,
		"000000002a4deedd7bab8817ecab7788d22eb7372f"+
			"c8c5aa56d755582bacea13bb572493bb8cb10803cf826fdb833b79c6")
	assert.Equal(t, want, envelope)
	assert.Len(t, envelope, len(inner)+HeaderLen+TagLen)
}

func TestSeal_InvalidKeySize(t *testing.T) {
	var authHash, deviceHash [AuthHashLen]byte
	_, err := Seal(MethodPush, []byte("x"), 1, authHash, deviceHash, make([]byte, 24))
	assert.ErrorIs(t, err, errs.ErrInvalidKeySize)
}

func TestOpen_SpecVector(t *testing.T) {
	key := mustHex(t, "fe09da81bc4400ee12ab56cd78ef9012")
	envelope := mustHex(t,
		"000000002a4deedd7bab8817ecab7788d22eb7372f"+
			"c8c5aa56d755582bacea13bb572493bb8cb10803cf826fdb833b79c6")

	header, method, plaintext, err := Open(envelope, key)
	require.NoError(t, err)
	assert.Equal(t, MethodPush, method)
	assert.Equal(t, uint32(42), header.Counter)
	assert.Equal(t, "sensor-01|[temp:=32]", string(plaintext))
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := make([]byte, KeyLen)
	for i := range key {
		key[i] = byte(i * 7)
	}
	var authHash [AuthHashLen]byte
	var deviceHash [DeviceHashLen]byte
	for i := range authHash {
		authHash[i] = byte(i + 1)
	}
	for i := range deviceHash {
		deviceHash[i] = byte(i + 100)
	}

	for _, method := range []EnvelopeMethod{MethodPush, MethodPull, MethodPing, MethodAck} {
		inner := []byte("dev-01|[x:=1;y=hello]")
		envelope, err := Seal(method, inner, 7, authHash, deviceHash, key)
		require.NoError(t, err)

		header, gotMethod, plaintext, err := Open(envelope, key)
		require.NoError(t, err)
		assert.Equal(t, method, gotMethod)
		assert.Equal(t, inner, plaintext)
		assert.Equal(t, uint32(7), header.Counter)
		assert.Equal(t, authHash, header.AuthHash)
		assert.Equal(t, deviceHash, header.DeviceHash)
	}
}

func TestSealOpen_EmptyInner(t *testing.T) {
	key := make([]byte, KeyLen)
	var authHash, deviceHash [AuthHashLen]byte
	envelope, err := Seal(MethodPing, nil, 1, authHash, deviceHash, key)
	require.NoError(t, err)
	assert.Len(t, envelope, HeaderLen+TagLen)

	_, method, plaintext, err := Open(envelope, key)
	require.NoError(t, err)
	assert.Equal(t, MethodPing, method)
	assert.Empty(t, plaintext)
}

func TestOpen_TamperRejection(t *testing.T) {
	key := make([]byte, KeyLen)
	var authHash, deviceHash [AuthHashLen]byte
	envelope, err := Seal(MethodPush, []byte("payload"), 1, authHash, deviceHash, key)
	require.NoError(t, err)

	for i := range envelope {
		tampered := append([]byte(nil), envelope...)
		tampered[i] ^= 0x01
		_, _, _, err := Open(tampered, key)
		assert.ErrorIs(t, err, errs.ErrDecryptFailed, "byte %d", i)
	}
}

func TestOpen_EnvelopeTooShort(t *testing.T) {
	key := make([]byte, KeyLen)
	_, _, _, err := Open(make([]byte, 10), key)
	assert.ErrorIs(t, err, errs.ErrEnvelopeTooShort)
}

func TestOpen_InvalidKeySize(t *testing.T) {
	_, _, _, err := Open(make([]byte, HeaderLen+TagLen), make([]byte, 24))
	assert.ErrorIs(t, err, errs.ErrInvalidKeySize)
}

package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tago-io/tagotip-sdk/errs"
)

func TestParseAck_CountDetail(t *testing.T) {
	f, err := ParseAck("ACK|OK|3")
	require.NoError(t, err)
	assert.Equal(t, AckOK, f.Status)
	require.True(t, f.HasDetail)
	assert.Equal(t, AckDetailCount, f.Detail.Tag)
	assert.Equal(t, uint64(3), f.Detail.Count)
	assert.Equal(t, "ACK|OK|3", BuildAck(f))
}

func TestParseAck_VariablesDetail(t *testing.T) {
	f, err := ParseAck("ACK|OK|temp=32.5")
	require.NoError(t, err)
	assert.Equal(t, AckDetailVariables, f.Detail.Tag)
	assert.Equal(t, "temp=32.5", f.Detail.Text)
	assert.Equal(t, "ACK|OK|temp=32.5", BuildAck(f))
}

func TestParseAck_ErrorDetailKnownCode(t *testing.T) {
	f, err := ParseAck("ACK|ERR|invalid_token")
	require.NoError(t, err)
	assert.Equal(t, AckDetailError, f.Detail.Tag)
	assert.Equal(t, ErrCodeInvalidToken, f.Detail.ErrorCode)
	assert.Equal(t, "invalid_token", f.Detail.Text)
	assert.Equal(t, "ACK|ERR|invalid_token", BuildAck(f))
}

func TestParseAck_ErrorDetailAllKnownCodes(t *testing.T) {
	cases := []struct {
		token string
		code  ErrorCode
	}{
		{"invalid_token", ErrCodeInvalidToken},
		{"invalid_method", ErrCodeInvalidMethod},
		{"invalid_payload", ErrCodeInvalidPayload},
		{"invalid_seq", ErrCodeInvalidSeq},
		{"device_not_found", ErrCodeDeviceNotFound},
		{"variable_not_found", ErrCodeVariableNotFound},
		{"rate_limited", ErrCodeRateLimited},
		{"auth_failed", ErrCodeAuthFailed},
		{"unsupported_version", ErrCodeUnsupportedVersion},
		{"payload_too_large", ErrCodePayloadTooLarge},
		{"server_error", ErrCodeServerError},
	}
	for _, c := range cases {
		f, err := ParseAck("ACK|ERR|" + c.token)
		require.NoError(t, err)
		assert.Equal(t, AckDetailError, f.Detail.Tag)
		assert.Equal(t, c.code, f.Detail.ErrorCode, c.token)
		assert.Equal(t, c.token, c.code.String())
		assert.Equal(t, "ACK|ERR|"+c.token, BuildAck(f))
	}
}

func TestParseAck_ErrorDetailUnknownCode(t *testing.T) {
	f, err := ParseAck("ACK|ERR|something_else")
	require.NoError(t, err)
	assert.Equal(t, ErrCodeUnknown, f.Detail.ErrorCode)
	assert.Equal(t, "something_else", f.Detail.Text)
	assert.Equal(t, "ACK|ERR|something_else", BuildAck(f))
}

func TestParseAck_CommandDetail(t *testing.T) {
	f, err := ParseAck("ACK|CMD|reboot")
	require.NoError(t, err)
	assert.Equal(t, AckDetailCommand, f.Detail.Tag)
	assert.Equal(t, "reboot", f.Detail.Text)
}

func TestParseAck_PongWithoutDetail(t *testing.T) {
	f, err := ParseAck("ACK|PONG")
	require.NoError(t, err)
	assert.False(t, f.HasDetail)
	assert.Equal(t, "ACK|PONG", BuildAck(f))
}

func TestParseAck_PongWithRawDetail(t *testing.T) {
	f, err := ParseAck("ACK|PONG|extra")
	require.NoError(t, err)
	assert.Equal(t, AckDetailRaw, f.Detail.Tag)
	assert.Equal(t, "extra", f.Detail.Text)
}

func TestParseAck_SequenceNumber(t *testing.T) {
	f, err := ParseAck("ACK|!7|OK|3")
	require.NoError(t, err)
	require.True(t, f.HasSeq)
	assert.Equal(t, uint64(7), f.Seq)
	assert.Equal(t, "ACK|!7|OK|3", BuildAck(f))
}

func TestParseAck_InvalidLeadingToken(t *testing.T) {
	_, err := ParseAck("NOPE|OK")
	assert.ErrorIs(t, err, errs.ErrInvalidAck)
}

func TestParseAck_Empty(t *testing.T) {
	_, err := ParseAck("")
	assert.ErrorIs(t, err, errs.ErrInvalidAck)
}

func TestParseAck_TrailingNewlineTolerated(t *testing.T) {
	f, err := ParseAck("ACK|OK|3\n")
	require.NoError(t, err)
	assert.Equal(t, "ACK|OK|3", BuildAck(f))
}

func TestParseAck_Idempotent(t *testing.T) {
	input := "ACK|!5|ERR|invalid_token"
	first, err := ParseAck(input)
	require.NoError(t, err)
	second, err := ParseAck(BuildAck(first))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

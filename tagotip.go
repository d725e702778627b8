// Package tagotip provides a textual IoT telemetry protocol codec and
// its companion authenticated-encryption envelope, TagoTiP/S.
//
// # Basic Usage
//
// Parsing and rebuilding an uplink frame:
//
//	import "github.com/tago-io/tagotip-sdk"
//
//	f, err := tagotip.ParseUplink("PUSH|at0123456789abcdef0123456789abcdef|dev-01|[temp:=32.5;humidity:=65]")
//	if err != nil {
//	    // err is one of the sentinel errors in package errs
//	}
//	wire := tagotip.BuildUplink(f) // == the original input, on canonical form
//
// Sealing a frame into a TagoTiP/S envelope:
//
//	authHash, _ := tagotip.DeriveAuthHash(token)
//	deviceHash := tagotip.DeriveDeviceHash(serial)
//	key, _ := tagotip.DeriveKey(token, serial, 16)
//
//	inner := []byte(serial + "|[temp:=32]")
//	envelope, err := tagotip.Seal(tagotip.EnvelopeMethodPush, inner, counter, authHash, deviceHash, key)
//
//	header, method, plaintext, err := tagotip.Open(envelope, key)
//
// # Package Structure
//
// This package is a thin convenience layer over two packages that can
// also be used directly: frame (the textual codec) and secure (the
// binary envelope). Reach for those directly when building something
// that only needs one half of the protocol, e.g. a server that parses
// frames but never seals envelopes.
package tagotip

import (
	"github.com/tago-io/tagotip-sdk/frame"
	"github.com/tago-io/tagotip-sdk/secure"
)

// Frame codec types, re-exported for single-import convenience.
type (
	Method              = frame.Method
	AckStatus           = frame.AckStatus
	Operator            = frame.Operator
	ErrorCode           = frame.ErrorCode
	PassthroughEncoding = frame.PassthroughEncoding
	MetaPair            = frame.MetaPair
	LocationValue       = frame.LocationValue
	Value               = frame.Value
	Variable            = frame.Variable
	StructuredBody      = frame.StructuredBody
	PassthroughBody     = frame.PassthroughBody
	PushBody            = frame.PushBody
	PullBody            = frame.PullBody
	UplinkFrame         = frame.UplinkFrame
	AckDetail           = frame.AckDetail
	AckDetailTag        = frame.AckDetailTag
	AckFrame            = frame.AckFrame
)

// Method and status constants, re-exported for single-import
// convenience.
const (
	MethodPush = frame.MethodPush
	MethodPull = frame.MethodPull
	MethodPing = frame.MethodPing

	AckOK   = frame.AckOK
	AckPong = frame.AckPong
	AckCmd  = frame.AckCmd
	AckErr  = frame.AckErr

	OpNumber   = frame.OpNumber
	OpString   = frame.OpString
	OpBoolean  = frame.OpBoolean
	OpLocation = frame.OpLocation

	EncodingHex    = frame.EncodingHex
	EncodingBase64 = frame.EncodingBase64

	AckDetailCount     = frame.AckDetailCount
	AckDetailVariables = frame.AckDetailVariables
	AckDetailCommand   = frame.AckDetailCommand
	AckDetailError     = frame.AckDetailError
	AckDetailRaw       = frame.AckDetailRaw

	ErrCodeUnknown            = frame.ErrCodeUnknown
	ErrCodeInvalidToken       = frame.ErrCodeInvalidToken
	ErrCodeInvalidMethod      = frame.ErrCodeInvalidMethod
	ErrCodeInvalidPayload     = frame.ErrCodeInvalidPayload
	ErrCodeInvalidSeq         = frame.ErrCodeInvalidSeq
	ErrCodeDeviceNotFound     = frame.ErrCodeDeviceNotFound
	ErrCodeVariableNotFound   = frame.ErrCodeVariableNotFound
	ErrCodeRateLimited        = frame.ErrCodeRateLimited
	ErrCodeAuthFailed         = frame.ErrCodeAuthFailed
	ErrCodeUnsupportedVersion = frame.ErrCodeUnsupportedVersion
	ErrCodePayloadTooLarge    = frame.ErrCodePayloadTooLarge
	ErrCodeServerError        = frame.ErrCodeServerError
)

// ParseUplink parses a device-to-server frame. See package frame for
// the full grammar.
func ParseUplink(s string) (UplinkFrame, error) { return frame.ParseUplink(s) }

// BuildUplink serializes an uplink frame to its canonical wire form.
func BuildUplink(f UplinkFrame) string { return frame.BuildUplink(f) }

// ParseAck parses a server-to-device frame.
func ParseAck(s string) (AckFrame, error) { return frame.ParseAck(s) }

// BuildAck serializes an ACK frame to its canonical wire form.
func BuildAck(f AckFrame) string { return frame.BuildAck(f) }

// Envelope types and constants, re-exported for single-import
// convenience.
type (
	EnvelopeHeader = secure.EnvelopeHeader
	EnvelopeMethod = secure.EnvelopeMethod
)

const (
	EnvelopeMethodPush = secure.MethodPush
	EnvelopeMethodPull = secure.MethodPull
	EnvelopeMethodPing = secure.MethodPing
	EnvelopeMethodAck  = secure.MethodAck
)

// DeriveAuthHash computes the routing identifier for an auth token.
func DeriveAuthHash(token string) ([secure.AuthHashLen]byte, error) {
	return secure.DeriveAuthHash(token)
}

// DeriveDeviceHash computes the associated-data binding for a device
// serial.
func DeriveDeviceHash(serial string) [secure.DeviceHashLen]byte {
	return secure.DeriveDeviceHash(serial)
}

// DeriveKey expands a device's textual credentials into a 16- or
// 32-byte symmetric key.
func DeriveKey(token, serial string, length int) ([]byte, error) {
	return secure.DeriveKey(token, serial, length)
}

// Seal encrypts inner into a complete TagoTiP/S envelope.
func Seal(method EnvelopeMethod, inner []byte, counter uint32, authHash, deviceHash [secure.AuthHashLen]byte, key []byte) ([]byte, error) {
	return secure.Seal(method, inner, counter, authHash, deviceHash, key)
}

// Open authenticates, decrypts, and recovers the method of an
// envelope produced by Seal.
func Open(envelope []byte, key []byte) (EnvelopeHeader, EnvelopeMethod, []byte, error) {
	return secure.Open(envelope, key)
}

// ParseEnvelopeHeader reads an envelope's 21-byte header without
// decrypting its payload.
func ParseEnvelopeHeader(envelope []byte) (EnvelopeHeader, error) {
	return secure.ParseEnvelopeHeader(envelope)
}

// IsEnvelope reports whether data looks like a binary envelope rather
// than a plaintext ACK frame sharing the same transport.
func IsEnvelope(data []byte) bool { return secure.IsEnvelope(data) }

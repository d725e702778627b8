// Package errs defines the sentinel errors returned by the frame and
// secure packages. Each error's string form is the stable, lowercase,
// underscore-delimited discriminant a caller can match on; callers that
// only need programmatic dispatch should use errors.Is against these
// values instead of comparing strings.
package errs

import "errors"

// Frame-level discriminants.
var (
	// ErrEmptyFrame is returned when an input string has zero length or
	// consists only of whitespace.
	ErrEmptyFrame = errors.New("empty_frame")

	// ErrInvalidMethod is returned when the first segment of an uplink
	// frame is not one of PUSH, PULL, or PING.
	ErrInvalidMethod = errors.New("invalid_method")

	// ErrInvalidAuth is returned when the auth segment does not match
	// the literal "at" followed by 32 hexadecimal characters.
	ErrInvalidAuth = errors.New("invalid_auth")

	// ErrMissingBody is returned when a PUSH or PULL frame lacks its
	// required body segment.
	ErrMissingBody = errors.New("missing_body")

	// ErrInvalidVariable is returned when the variable grammar is
	// violated: bad operator, malformed literal, or malformed suffix.
	ErrInvalidVariable = errors.New("invalid_variable")

	// ErrInvalidPassthrough is returned when a passthrough body's hex
	// or base64 payload is malformed.
	ErrInvalidPassthrough = errors.New("invalid_passthrough")

	// ErrInvalidPull is returned when a PULL body is malformed.
	ErrInvalidPull = errors.New("invalid_pull")

	// ErrInvalidAck is returned when an ACK frame fails to parse at
	// the top level (empty input, or leading token other than ACK).
	ErrInvalidAck = errors.New("invalid_ack")
)

// Envelope-level discriminants.
var (
	// ErrEnvelopeTooShort is returned when an envelope buffer is
	// shorter than the minimum required for the operation: 21 bytes
	// for header parsing, 29 bytes for open.
	ErrEnvelopeTooShort = errors.New("envelope_too_short")

	// ErrInvalidKeySize is returned when a key supplied to seal, open,
	// or DeriveKey's consumers is not exactly the expected length.
	ErrInvalidKeySize = errors.New("invalid_key_size")

	// ErrDecryptFailed is returned when AEAD authentication fails
	// under every candidate method during open.
	ErrDecryptFailed = errors.New("decrypt_failed")
)

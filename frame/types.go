// Package frame implements the TagoTiP textual frame codec: the
// variable grammar, PUSH/PULL/PING bodies, and the top-level uplink
// and ACK frame parsers and builders.
//
// # Design
//
// Every value type here is a plain struct built by a parser and
// consumed by a builder; none carry identity or require mutation
// after construction. Numeric, boolean, and location literals are
// retained as their original strings rather than parsed into Go
// numeric types, so that ParseUplink followed by BuildUplink on
// canonical input reproduces the input byte for byte (see §"Canonical
// order" below).
//
// # Canonical order
//
// A variable's suffixes (#unit, @timestamp, ^group, {meta}) may appear
// in any order on input, but BuildUplink always emits them in the
// fixed order "# @ ^ {...}". Parsing a frame whose suffixes were
// written out of that order and rebuilding it will not reproduce the
// original bytes; this is intentional and matches how the protocol's
// canonical form is defined.
package frame

// Method is the uplink verb.
type Method int

const (
	MethodPush Method = iota
	MethodPull
	MethodPing
)

// String returns the uppercase wire token for m.
func (m Method) String() string {
	switch m {
	case MethodPush:
		return "PUSH"
	case MethodPull:
		return "PULL"
	case MethodPing:
		return "PING"
	default:
		return "PUSH"
	}
}

// AckStatus is the server-to-device ACK status.
type AckStatus int

const (
	AckOK AckStatus = iota
	AckPong
	AckCmd
	AckErr
)

// String returns the uppercase wire token for s.
func (s AckStatus) String() string {
	switch s {
	case AckOK:
		return "OK"
	case AckPong:
		return "PONG"
	case AckCmd:
		return "CMD"
	case AckErr:
		return "ERR"
	default:
		return "OK"
	}
}

// Operator selects a variable's value grammar and wire sigil.
type Operator int

const (
	OpNumber Operator = iota
	OpString
	OpBoolean
	OpLocation
)

// Sigil returns the operator's wire token.
func (o Operator) Sigil() string {
	switch o {
	case OpNumber:
		return ":="
	case OpString:
		return "="
	case OpBoolean:
		return "?="
	case OpLocation:
		return "@="
	default:
		return "="
	}
}

// ErrorCode is the closed enum of ACK ERR detail codes.
type ErrorCode int

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeInvalidToken
	ErrCodeInvalidMethod
	ErrCodeInvalidPayload
	ErrCodeInvalidSeq
	ErrCodeDeviceNotFound
	ErrCodeVariableNotFound
	ErrCodeRateLimited
	ErrCodeAuthFailed
	ErrCodeUnsupportedVersion
	ErrCodePayloadTooLarge
	ErrCodeServerError
)

var errorCodeTokens = map[string]ErrorCode{
	"invalid_token":       ErrCodeInvalidToken,
	"invalid_method":      ErrCodeInvalidMethod,
	"invalid_payload":     ErrCodeInvalidPayload,
	"invalid_seq":         ErrCodeInvalidSeq,
	"device_not_found":    ErrCodeDeviceNotFound,
	"variable_not_found":  ErrCodeVariableNotFound,
	"rate_limited":        ErrCodeRateLimited,
	"auth_failed":         ErrCodeAuthFailed,
	"unsupported_version": ErrCodeUnsupportedVersion,
	"payload_too_large":   ErrCodePayloadTooLarge,
	"server_error":        ErrCodeServerError,
}

var errorCodeNames = func() map[ErrorCode]string {
	m := make(map[ErrorCode]string, len(errorCodeTokens))
	for k, v := range errorCodeTokens {
		m[v] = k
	}
	return m
}()

// ParseErrorCode maps a wire token to its ErrorCode, falling back to
// ErrCodeUnknown for any token not in the closed set. The caller is
// expected to keep the original text alongside the code (see
// AckDetail.Text) since the UNKNOWN case carries no token of its own.
func ParseErrorCode(token string) ErrorCode {
	if code, ok := errorCodeTokens[token]; ok {
		return code
	}
	return ErrCodeUnknown
}

// String returns the wire token for c, or "UNKNOWN" if c is
// ErrCodeUnknown or not a recognized value.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// PassthroughEncoding selects a passthrough body's payload alphabet.
type PassthroughEncoding int

const (
	EncodingHex PassthroughEncoding = iota
	EncodingBase64
)

// Prefix returns the two-character wire prefix for e.
func (e PassthroughEncoding) Prefix() string {
	if e == EncodingBase64 {
		return ">b"
	}
	return ">x"
}

// MetaPair is a single key/value entry of a variable's meta block.
// Both Key and Value are required to be non-empty.
type MetaPair struct {
	Key   string
	Value string
}

// LocationValue is the payload of an Operator Location value. Lat and
// Lng are required; Alt is optional. All three are kept as their
// original literal strings.
type LocationValue struct {
	Lat string
	Lng string
	Alt string
	HasAlt bool
}

// Value is a tagged union over a variable's payload, discriminated by
// Operator: Str for OpNumber and OpString, Location for OpLocation,
// and for OpBoolean both Bool and Str (the literal "true" or
// "false"). The fields are not mutually exclusive: for OpBoolean the
// parser sets both, and BuildUplink writes Str, not Bool.
type Value struct {
	Operator Operator
	Str      string
	Bool     bool
	Location LocationValue
}

// Variable is a single name/operator/value triple plus its optional
// suffix modifiers. Meta is an ordered list: keys are not deduplicated
// and order is preserved exactly as parsed.
type Variable struct {
	Name      string
	Value     Value
	Unit      string
	HasUnit   bool
	Timestamp string
	HasTimestamp bool
	Group     string
	HasGroup  bool
	Meta      []MetaPair
}

// StructuredBody is an ordered list of variables plus optional
// body-wide modifiers that apply to the whole body rather than to any
// single variable.
type StructuredBody struct {
	Variables []Variable
	Timestamp string
	HasTimestamp bool
	Group     string
	HasGroup  bool
	Meta      []MetaPair
}

// PassthroughBody is an opaque binary payload carried as hex or
// base64 text.
type PassthroughBody struct {
	Encoding PassthroughEncoding
	Data     string
}

// PushBody is the exclusive union of a structured or passthrough PUSH
// payload: exactly one of Structured or Passthrough is populated.
type PushBody struct {
	IsPassthrough bool
	Structured    StructuredBody
	Passthrough   PassthroughBody
}

// PullBody is an ordered list of requested variable names.
type PullBody struct {
	Names []string
}

// UplinkFrame is a fully parsed device-to-server frame.
type UplinkFrame struct {
	Method   Method
	Seq      uint64
	HasSeq   bool
	Auth     string
	Serial   string
	PushBody PushBody
	HasPush  bool
	PullBody PullBody
	HasPull  bool
}

// AckDetailTag discriminates the populated field of an AckDetail.
type AckDetailTag int

const (
	AckDetailCount AckDetailTag = iota
	AckDetailVariables
	AckDetailCommand
	AckDetailError
	AckDetailRaw
)

// AckDetail is the tagged trailing field of an AckFrame. Exactly the
// field matching Tag is meaningful: Count for AckDetailCount, Text for
// AckDetailVariables/AckDetailCommand/AckDetailRaw, and both ErrorCode
// and Text for AckDetailError (Text preserves the original token even
// when ErrorCode is ErrCodeUnknown).
type AckDetail struct {
	Tag       AckDetailTag
	Count     uint64
	Text      string
	ErrorCode ErrorCode
}

// AckFrame is a fully parsed server-to-device frame.
type AckFrame struct {
	Status AckStatus
	Seq    uint64
	HasSeq bool
	Detail AckDetail
	HasDetail bool
}

// Package frame implements the TagoTiP textual wire grammar: uplink
// frames (device to server) and ACK frames (server to device).
//
// # Overview
//
// Two frame shapes share the same pipe-delimited structure:
//
//	Uplink: METHOD[!SEQ]|AUTH|SERIAL[|BODY]
//	ACK:    ACK[|!SEQ]|STATUS[|DETAIL]
//
// A BODY is present exactly when the method requires one: PUSH and
// PULL each carry a body, PING carries none. DETAIL is present
// whenever the ACK status has trailing information to report; its
// shape is status-dependent (see ParseAck).
//
// # Variable grammar
//
//	variable := name operator value suffix*
//	operator := ":=" | "=" | "?=" | "@="
//	suffix   := "#" unit | "@" timestamp | "^" group | "{" meta "}"
//	meta     := pair ("," pair)*
//	pair     := key "=" value
//
// Suffixes may be parsed in any order but BuildUplink always emits
// them in the fixed order "# @ ^ {...}" — a frame whose author wrote
// suffixes out of that order will not round-trip byte for byte
// through Parse then Build, by design.
//
// # Body forms
//
// A PUSH body is either a passthrough payload:
//
//	>x  deadbeef          (hex, even length)
//	>b  aGVsbG8=           (standard base64 alphabet)
//
// or a structured body: optional body-wide "@timestamp", "^group",
// "{meta}" modifiers (each at most once, any order) followed by a
// bracketed, semicolon-separated variable list:
//
//	@1700000000000^batch{site=dock}[temp:=19.2;ok?=true]
//
// A PULL body is a bracketed, semicolon-separated list of bare
// variable names with no operators or values:
//
//	[temperature;humidity]
//
// # Values are strings, not numbers
//
// Numeric and location literals are stored as their original text,
// never parsed into float64 or similar. This is what makes
// ParseUplink(BuildUplink(f)) reproduce f exactly: a value written as
// "32.50" stays "32.50", it does not become "32.5".
package frame

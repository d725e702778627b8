package frame

import (
	"strconv"
	"strings"

	"github.com/tago-io/tagotip-sdk/errs"
	"github.com/tago-io/tagotip-sdk/internal/lexer"
)

// ParseUplink parses a device-to-server frame of the form
// "METHOD[!SEQ]|AUTH|SERIAL[|BODY]". A single trailing newline is
// tolerated and discarded before parsing.
func ParseUplink(s string) (UplinkFrame, error) {
	s = strings.TrimSuffix(s, "\n")
	if strings.TrimSpace(s) == "" {
		return UplinkFrame{}, errs.ErrEmptyFrame
	}

	segments := strings.SplitN(s, "|", 4)
	if len(segments) < 3 {
		return UplinkFrame{}, errs.ErrInvalidMethod
	}

	methodSeg := segments[0]
	methodToken := methodSeg
	var seq uint64
	hasSeq := false
	if idx := strings.IndexByte(methodSeg, lexer.SeqSigil); idx >= 0 {
		methodToken = methodSeg[:idx]
		seqStr := methodSeg[idx+1:]
		if !lexer.IsUnsignedDecimal(seqStr) {
			return UplinkFrame{}, errs.ErrInvalidMethod
		}
		n, err := strconv.ParseUint(seqStr, 10, 64)
		if err != nil {
			return UplinkFrame{}, errs.ErrInvalidMethod
		}
		seq, hasSeq = n, true
	}

	var method Method
	switch methodToken {
	case "PUSH":
		method = MethodPush
	case "PULL":
		method = MethodPull
	case "PING":
		method = MethodPing
	default:
		return UplinkFrame{}, errs.ErrInvalidMethod
	}

	auth := segments[1]
	if !lexer.IsToken(auth) {
		return UplinkFrame{}, errs.ErrInvalidAuth
	}

	serial := segments[2]

	f := UplinkFrame{Method: method, Seq: seq, HasSeq: hasSeq, Auth: auth, Serial: serial}

	switch method {
	case MethodPing:
		if len(segments) > 3 {
			return UplinkFrame{}, errs.ErrMissingBody
		}
	case MethodPush:
		if len(segments) < 4 {
			return UplinkFrame{}, errs.ErrMissingBody
		}
		body, err := parsePushBody(segments[3])
		if err != nil {
			return UplinkFrame{}, err
		}
		f.PushBody, f.HasPush = body, true
	case MethodPull:
		if len(segments) < 4 {
			return UplinkFrame{}, errs.ErrMissingBody
		}
		body, err := parsePullBody(segments[3])
		if err != nil {
			return UplinkFrame{}, err
		}
		f.PullBody, f.HasPull = body, true
	}

	return f, nil
}

// BuildUplink serializes f into its canonical wire form. The sequence
// number, when present, is written as "!SEQ" immediately after the
// method token with no intervening pipe.
func BuildUplink(f UplinkFrame) string {
	var sb strings.Builder
	sb.WriteString(f.Method.String())
	if f.HasSeq {
		sb.WriteByte(lexer.SeqSigil)
		sb.WriteString(strconv.FormatUint(f.Seq, 10))
	}
	sb.WriteByte(lexer.PipeDelim)
	sb.WriteString(f.Auth)
	sb.WriteByte(lexer.PipeDelim)
	sb.WriteString(f.Serial)

	switch f.Method {
	case MethodPush:
		sb.WriteByte(lexer.PipeDelim)
		writePushBody(&sb, f.PushBody)
	case MethodPull:
		sb.WriteByte(lexer.PipeDelim)
		writePullBody(&sb, f.PullBody)
	}

	return sb.String()
}

package frame

import (
	"strconv"
	"strings"

	"github.com/tago-io/tagotip-sdk/errs"
	"github.com/tago-io/tagotip-sdk/internal/lexer"
)

// ParseAck parses a server-to-device frame of the form
// "ACK[|!SEQ]|STATUS[|DETAIL]". A single trailing newline is
// tolerated and discarded before parsing.
func ParseAck(s string) (AckFrame, error) {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return AckFrame{}, errs.ErrInvalidAck
	}

	segments := strings.SplitN(s, "|", 4)
	if segments[0] != "ACK" {
		return AckFrame{}, errs.ErrInvalidAck
	}

	rest := segments[1:]
	var seq uint64
	hasSeq := false
	if len(rest) > 0 && strings.HasPrefix(rest[0], "!") {
		seqStr := rest[0][1:]
		if !lexer.IsUnsignedDecimal(seqStr) {
			return AckFrame{}, errs.ErrInvalidAck
		}
		n, err := strconv.ParseUint(seqStr, 10, 64)
		if err != nil {
			return AckFrame{}, errs.ErrInvalidAck
		}
		seq, hasSeq = n, true
		rest = rest[1:]
	}

	if len(rest) == 0 {
		return AckFrame{}, errs.ErrInvalidAck
	}
	statusToken := rest[0]
	var status AckStatus
	switch statusToken {
	case "OK":
		status = AckOK
	case "PONG":
		status = AckPong
	case "CMD":
		status = AckCmd
	case "ERR":
		status = AckErr
	default:
		return AckFrame{}, errs.ErrInvalidAck
	}

	f := AckFrame{Status: status, Seq: seq, HasSeq: hasSeq}

	rest = rest[1:]
	if len(rest) == 0 {
		return f, nil
	}
	detailText := rest[0]

	var detail AckDetail
	switch status {
	case AckOK:
		if lexer.IsUnsignedDecimal(detailText) {
			n, err := strconv.ParseUint(detailText, 10, 64)
			if err != nil {
				return AckFrame{}, errs.ErrInvalidAck
			}
			detail = AckDetail{Tag: AckDetailCount, Count: n}
		} else {
			detail = AckDetail{Tag: AckDetailVariables, Text: detailText}
		}
	case AckPong:
		detail = AckDetail{Tag: AckDetailRaw, Text: detailText}
	case AckCmd:
		detail = AckDetail{Tag: AckDetailCommand, Text: detailText}
	case AckErr:
		detail = AckDetail{Tag: AckDetailError, Text: detailText, ErrorCode: ParseErrorCode(detailText)}
	}

	f.Detail, f.HasDetail = detail, true
	return f, nil
}

// BuildAck serializes f into its canonical wire form.
func BuildAck(f AckFrame) string {
	var sb strings.Builder
	sb.WriteString("ACK")
	if f.HasSeq {
		sb.WriteByte(lexer.PipeDelim)
		sb.WriteByte(lexer.SeqSigil)
		sb.WriteString(strconv.FormatUint(f.Seq, 10))
	}
	sb.WriteByte(lexer.PipeDelim)
	sb.WriteString(f.Status.String())
	if f.HasDetail {
		sb.WriteByte(lexer.PipeDelim)
		switch f.Detail.Tag {
		case AckDetailCount:
			sb.WriteString(strconv.FormatUint(f.Detail.Count, 10))
		default:
			sb.WriteString(f.Detail.Text)
		}
	}
	return sb.String()
}

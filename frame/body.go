package frame

import (
	"strings"

	"github.com/tago-io/tagotip-sdk/errs"
	"github.com/tago-io/tagotip-sdk/internal/lexer"
)

// parsePushBody parses the body segment of a PUSH frame: either a
// passthrough payload (">x..."/">b...") or a bracketed structured
// variable list with optional body-wide prefix modifiers.
func parsePushBody(s string) (PushBody, error) {
	if strings.HasPrefix(s, ">") {
		return parsePassthroughBody(s)
	}
	return parseStructuredBody(s)
}

func parsePassthroughBody(s string) (PushBody, error) {
	if len(s) < 2 {
		return PushBody{}, errs.ErrInvalidPassthrough
	}
	var enc PassthroughEncoding
	switch s[1] {
	case 'x':
		enc = EncodingHex
	case 'b':
		enc = EncodingBase64
	default:
		return PushBody{}, errs.ErrInvalidPassthrough
	}
	data := s[2:]
	if data == "" {
		return PushBody{}, errs.ErrInvalidPassthrough
	}
	switch enc {
	case EncodingHex:
		if !lexer.IsHexString(data) {
			return PushBody{}, errs.ErrInvalidPassthrough
		}
	case EncodingBase64:
		if !lexer.IsBase64String(data) {
			return PushBody{}, errs.ErrInvalidPassthrough
		}
	}
	return PushBody{
		IsPassthrough: true,
		Passthrough:   PassthroughBody{Encoding: enc, Data: data},
	}, nil
}

// parseStructuredBody parses optional body-wide "@timestamp",
// "^group", "{meta}" prefix modifiers (in any order, each at most
// once) followed by a mandatory "[" variable (";" variable)* "]"
// list.
func parseStructuredBody(s string) (PushBody, error) {
	body := StructuredBody{}
	i := 0
	for i < len(s) && s[i] != lexer.OpenBracket {
		switch s[i] {
		case lexer.TimeSigil:
			if body.HasTimestamp {
				return PushBody{}, errs.ErrInvalidVariable
			}
			end := scanUntilBodyModifier(s, i+1)
			if end == i+1 {
				return PushBody{}, errs.ErrInvalidVariable
			}
			body.Timestamp, body.HasTimestamp = s[i+1:end], true
			i = end
		case lexer.GroupSigil:
			if body.HasGroup {
				return PushBody{}, errs.ErrInvalidVariable
			}
			end := scanUntilBodyModifier(s, i+1)
			if end == i+1 {
				return PushBody{}, errs.ErrInvalidVariable
			}
			body.Group, body.HasGroup = s[i+1:end], true
			i = end
		case lexer.OpenMeta:
			if body.Meta != nil {
				return PushBody{}, errs.ErrInvalidVariable
			}
			end := strings.IndexByte(s[i:], lexer.CloseMeta)
			if end < 0 {
				return PushBody{}, errs.ErrInvalidVariable
			}
			end += i
			meta, err := parseMeta(s[i+1 : end])
			if err != nil {
				return PushBody{}, err
			}
			body.Meta = meta
			i = end + 1
		default:
			return PushBody{}, errs.ErrInvalidVariable
		}
	}
	if i >= len(s) || s[i] != lexer.OpenBracket {
		return PushBody{}, errs.ErrInvalidVariable
	}
	if !strings.HasSuffix(s, "]") {
		return PushBody{}, errs.ErrInvalidVariable
	}
	inner := s[i+1 : len(s)-1]
	vars, err := parseVariableList(inner)
	if err != nil {
		return PushBody{}, err
	}
	body.Variables = vars
	return PushBody{Structured: body}, nil
}

func scanUntilBodyModifier(s string, from int) int {
	i := from
	for i < len(s) {
		switch s[i] {
		case lexer.TimeSigil, lexer.GroupSigil, lexer.OpenMeta, lexer.OpenBracket:
			return i
		}
		i++
	}
	return i
}

func parseVariableList(s string) ([]Variable, error) {
	if s == "" {
		return nil, errs.ErrInvalidVariable
	}
	clauses := strings.Split(s, string(lexer.Semicolon))
	vars := make([]Variable, 0, len(clauses))
	for _, c := range clauses {
		v, err := parseVariable(c)
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
	}
	return vars, nil
}

// parsePullBody parses a "[" name (";" name)* "]" list of bare
// variable names (no operator, no value, no suffixes).
func parsePullBody(s string) (PullBody, error) {
	if len(s) < 2 || s[0] != lexer.OpenBracket || s[len(s)-1] != lexer.CloseBracket {
		return PullBody{}, errs.ErrInvalidPull
	}
	inner := s[1 : len(s)-1]
	if inner == "" {
		return PullBody{}, errs.ErrInvalidPull
	}
	names := strings.Split(inner, string(lexer.Semicolon))
	for _, n := range names {
		if !lexer.IsName(n) {
			return PullBody{}, errs.ErrInvalidPull
		}
	}
	return PullBody{Names: names}, nil
}

// writePushBody appends the canonical wire form of b to sb.
func writePushBody(sb *strings.Builder, b PushBody) {
	if b.IsPassthrough {
		sb.WriteString(b.Passthrough.Encoding.Prefix())
		sb.WriteString(b.Passthrough.Data)
		return
	}
	s := b.Structured
	if s.HasTimestamp {
		sb.WriteByte(lexer.TimeSigil)
		sb.WriteString(s.Timestamp)
	}
	if s.HasGroup {
		sb.WriteByte(lexer.GroupSigil)
		sb.WriteString(s.Group)
	}
	if len(s.Meta) > 0 {
		sb.WriteByte(lexer.OpenMeta)
		for i, p := range s.Meta {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(p.Key)
			sb.WriteByte('=')
			sb.WriteString(p.Value)
		}
		sb.WriteByte(lexer.CloseMeta)
	}
	sb.WriteByte(lexer.OpenBracket)
	for i, v := range s.Variables {
		if i > 0 {
			sb.WriteByte(lexer.Semicolon)
		}
		writeVariable(sb, v)
	}
	sb.WriteByte(lexer.CloseBracket)
}

// writePullBody appends the canonical wire form of b to sb.
func writePullBody(sb *strings.Builder, b PullBody) {
	sb.WriteByte(lexer.OpenBracket)
	for i, n := range b.Names {
		if i > 0 {
			sb.WriteByte(lexer.Semicolon)
		}
		sb.WriteString(n)
	}
	sb.WriteByte(lexer.CloseBracket)
}

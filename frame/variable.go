package frame

import (
	"strings"

	"github.com/tago-io/tagotip-sdk/errs"
	"github.com/tago-io/tagotip-sdk/internal/lexer"
)

// isSuffixIntroducer reports whether b ends a value or suffix
// literal: b is one of the three single-character suffix introducers
// or the meta-block opener. The frame-level splitter has already removed
// ';' and ']' from the substring handed to parseVariable, so those
// two structural terminators never need to appear here.
func isSuffixIntroducer(b byte) bool {
	switch b {
	case lexer.UnitSigil, lexer.TimeSigil, lexer.GroupSigil, lexer.OpenMeta:
		return true
	default:
		return false
	}
}

func scanUntilSuffix(s string, from int) int {
	i := from
	for i < len(s) && !isSuffixIntroducer(s[i]) {
		i++
	}
	return i
}

// parseVariable parses a single variable clause (name, operator,
// value, suffixes) from s, which must already have had any outer
// semicolon/bracket delimiters removed.
func parseVariable(s string) (Variable, error) {
	opPos := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ':', '=', '?', '@':
			opPos = i
		}
		if opPos >= 0 {
			break
		}
	}
	if opPos <= 0 {
		return Variable{}, errs.ErrInvalidVariable
	}
	name := s[:opPos]
	if !lexer.IsName(name) {
		return Variable{}, errs.ErrInvalidVariable
	}

	var op Operator
	var opLen int
	switch {
	case strings.HasPrefix(s[opPos:], ":="):
		op, opLen = OpNumber, 2
	case strings.HasPrefix(s[opPos:], "?="):
		op, opLen = OpBoolean, 2
	case strings.HasPrefix(s[opPos:], "@="):
		op, opLen = OpLocation, 2
	case s[opPos] == '=':
		op, opLen = OpString, 1
	default:
		return Variable{}, errs.ErrInvalidVariable
	}

	valStart := opPos + opLen
	valEnd := scanUntilSuffix(s, valStart)
	rawVal := s[valStart:valEnd]

	val, err := parseValue(op, rawVal)
	if err != nil {
		return Variable{}, err
	}

	v := Variable{Name: name, Value: val}
	if err := parseSuffixes(s[valEnd:], &v); err != nil {
		return Variable{}, err
	}
	return v, nil
}

func parseValue(op Operator, raw string) (Value, error) {
	switch op {
	case OpNumber:
		if !lexer.IsNumericLiteral(raw) {
			return Value{}, errs.ErrInvalidVariable
		}
		return Value{Operator: op, Str: raw}, nil
	case OpBoolean:
		if !lexer.IsBooleanLiteral(raw) {
			return Value{}, errs.ErrInvalidVariable
		}
		return Value{Operator: op, Str: raw, Bool: raw == "true"}, nil
	case OpLocation:
		loc, ok := parseLocation(raw)
		if !ok {
			return Value{}, errs.ErrInvalidVariable
		}
		return Value{Operator: op, Location: loc}, nil
	case OpString:
		if raw == "" {
			return Value{}, errs.ErrInvalidVariable
		}
		return Value{Operator: op, Str: raw}, nil
	default:
		return Value{}, errs.ErrInvalidVariable
	}
}

func parseLocation(raw string) (LocationValue, bool) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return LocationValue{}, false
	}
	for _, p := range parts {
		if !lexer.IsSignedDecimal(p) {
			return LocationValue{}, false
		}
	}
	loc := LocationValue{Lat: parts[0], Lng: parts[1]}
	if len(parts) == 3 {
		loc.Alt = parts[2]
		loc.HasAlt = true
	}
	return loc, true
}

func parseSuffixes(s string, v *Variable) error {
	i := 0
	for i < len(s) {
		switch s[i] {
		case lexer.UnitSigil:
			if v.HasUnit {
				return errs.ErrInvalidVariable
			}
			end := scanUntilSuffix(s, i+1)
			if end == i+1 {
				return errs.ErrInvalidVariable
			}
			v.Unit, v.HasUnit = s[i+1:end], true
			i = end
		case lexer.TimeSigil:
			if v.HasTimestamp {
				return errs.ErrInvalidVariable
			}
			end := scanUntilSuffix(s, i+1)
			if end == i+1 {
				return errs.ErrInvalidVariable
			}
			v.Timestamp, v.HasTimestamp = s[i+1:end], true
			i = end
		case lexer.GroupSigil:
			if v.HasGroup {
				return errs.ErrInvalidVariable
			}
			end := scanUntilSuffix(s, i+1)
			if end == i+1 {
				return errs.ErrInvalidVariable
			}
			v.Group, v.HasGroup = s[i+1:end], true
			i = end
		case lexer.OpenMeta:
			if v.Meta != nil {
				return errs.ErrInvalidVariable
			}
			end := strings.IndexByte(s[i:], lexer.CloseMeta)
			if end < 0 {
				return errs.ErrInvalidVariable
			}
			end += i
			meta, err := parseMeta(s[i+1 : end])
			if err != nil {
				return err
			}
			v.Meta = meta
			i = end + 1
		default:
			return errs.ErrInvalidVariable
		}
	}
	return nil
}

func parseMeta(s string) ([]MetaPair, error) {
	if s == "" {
		return nil, errs.ErrInvalidVariable
	}
	pairs := strings.Split(s, ",")
	out := make([]MetaPair, 0, len(pairs))
	for _, p := range pairs {
		eq := strings.IndexByte(p, '=')
		if eq <= 0 || eq == len(p)-1 {
			return nil, errs.ErrInvalidVariable
		}
		key, val := p[:eq], p[eq+1:]
		if key == "" || val == "" {
			return nil, errs.ErrInvalidVariable
		}
		out = append(out, MetaPair{Key: key, Value: val})
	}
	return out, nil
}

// writeVariable appends the canonical wire form of v to sb: name,
// operator, value, then suffixes in the fixed order "# @ ^ {...}".
func writeVariable(sb *strings.Builder, v Variable) {
	sb.WriteString(v.Name)
	sb.WriteString(v.Value.Operator.Sigil())
	writeValue(sb, v.Value)
	if v.HasUnit {
		sb.WriteByte(lexer.UnitSigil)
		sb.WriteString(v.Unit)
	}
	if v.HasTimestamp {
		sb.WriteByte(lexer.TimeSigil)
		sb.WriteString(v.Timestamp)
	}
	if v.HasGroup {
		sb.WriteByte(lexer.GroupSigil)
		sb.WriteString(v.Group)
	}
	if len(v.Meta) > 0 {
		sb.WriteByte(lexer.OpenMeta)
		for i, p := range v.Meta {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(p.Key)
			sb.WriteByte('=')
			sb.WriteString(p.Value)
		}
		sb.WriteByte(lexer.CloseMeta)
	}
}

func writeValue(sb *strings.Builder, v Value) {
	switch v.Operator {
	case OpLocation:
		sb.WriteString(v.Location.Lat)
		sb.WriteByte(',')
		sb.WriteString(v.Location.Lng)
		if v.Location.HasAlt {
			sb.WriteByte(',')
			sb.WriteString(v.Location.Alt)
		}
	default:
		sb.WriteString(v.Str)
	}
}

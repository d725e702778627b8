package frame

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariable_DuplicateMetaKeysPreserved(t *testing.T) {
	v, err := parseVariable("x:=1{a=1,a=2}")
	require.NoError(t, err)
	require.Len(t, v.Meta, 2)
	assert.Equal(t, MetaPair{Key: "a", Value: "1"}, v.Meta[0])
	assert.Equal(t, MetaPair{Key: "a", Value: "2"}, v.Meta[1])
}

func TestParseVariable_DuplicateSuffixRejected(t *testing.T) {
	_, err := parseVariable("x:=1#C#F")
	assert.Error(t, err)
}

func TestParseVariable_OutOfOrderSuffixesParseButDontRoundTrip(t *testing.T) {
	v, err := parseVariable("x:=1@1000#C")
	require.NoError(t, err)
	assert.True(t, v.HasTimestamp)
	assert.True(t, v.HasUnit)

	var sb strings.Builder
	writeVariable(&sb, v)
	assert.Equal(t, "x:=1#C@1000", sb.String())
}

func TestParseVariable_EmptyMetaRejected(t *testing.T) {
	_, err := parseVariable("x:=1{}")
	assert.Error(t, err)
}

func TestParseVariable_NegativeNumber(t *testing.T) {
	v, err := parseVariable("x:=-12.5")
	require.NoError(t, err)
	assert.Equal(t, "-12.5", v.Value.Str)
}

func TestParseVariable_ZeroLiteral(t *testing.T) {
	v, err := parseVariable("x:=0")
	require.NoError(t, err)
	assert.Equal(t, "0", v.Value.Str)

	v, err = parseVariable("x:=0.5")
	require.NoError(t, err)
	assert.Equal(t, "0.5", v.Value.Str)
}

func TestParseVariable_LeadingZeroRejected(t *testing.T) {
	_, err := parseVariable("x:=01")
	assert.Error(t, err)
}

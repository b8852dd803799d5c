package token_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfraser/dc4/internal/token"
)

type fixedRadix uint32

func (f fixedRadix) CurrentInputRadix() uint32 { return uint32(f) }

func tokenize(t *testing.T, src string, radix uint32) []token.Token {
	t.Helper()
	tz := token.New(strings.NewReader(src), fixedRadix(radix))
	var toks []token.Token
	for {
		tok, err := tz.Next()
		require.NoError(t, err)
		if tok.Kind == token.KindEOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestNumberLiteral(t *testing.T) {
	toks := tokenize(t, "3.14", 10)
	require.Len(t, toks, 1)
	assert.Equal(t, token.KindNumber, toks[0].Kind)
	assert.Equal(t, "3.14", string(toks[0].NumberLiteral))
	assert.EqualValues(t, 10, toks[0].Radix)
}

func TestNegativeLiteralStartsNewNumberMidRun(t *testing.T) {
	toks := tokenize(t, "3_4", 10)
	require.Len(t, toks, 2)
	assert.Equal(t, "3", string(toks[0].NumberLiteral))
	assert.Equal(t, "_4", string(toks[1].NumberLiteral))
}

func TestStringNesting(t *testing.T) {
	toks := tokenize(t, "[a[b]c]", 10)
	require.Len(t, toks, 1)
	assert.Equal(t, token.KindString, toks[0].Kind)
	assert.Equal(t, "a[b]c", string(toks[0].StringBytes))
}

func TestUnbalancedString(t *testing.T) {
	tz := token.New(strings.NewReader("[abc"), fixedRadix(10))
	_, err := tz.Next()
	assert.Error(t, err)
}

func TestComment(t *testing.T) {
	toks := tokenize(t, "1 # comment\n2", 10)
	require.Len(t, toks, 2)
	assert.Equal(t, "1", string(toks[0].NumberLiteral))
	assert.Equal(t, "2", string(toks[1].NumberLiteral))
}

func TestRegisterCommand(t *testing.T) {
	toks := tokenize(t, "sa", 10)
	require.Len(t, toks, 1)
	assert.Equal(t, token.OpStore, toks[0].Op)
	assert.True(t, toks[0].HasReg)
	assert.Equal(t, byte('a'), toks[0].Reg)
}

func TestConditionalWithElse(t *testing.T) {
	toks := tokenize(t, "<aeb", 10)
	require.Len(t, toks, 1)
	tok := toks[0]
	assert.Equal(t, token.OpCondLt, tok.Op)
	assert.Equal(t, byte('a'), tok.Reg)
	assert.True(t, tok.HasElseReg)
	assert.Equal(t, byte('b'), tok.ElseReg)
}

func TestConditionalWithoutElse(t *testing.T) {
	toks := tokenize(t, "<ap", 10)
	require.Len(t, toks, 2)
	assert.Equal(t, token.OpCondLt, toks[0].Op)
	assert.False(t, toks[0].HasElseReg)
	assert.Equal(t, token.OpPrint, toks[1].Op)
}

func TestNegatedConditionals(t *testing.T) {
	toks := tokenize(t, "!<a!>b!=c", 10)
	require.Len(t, toks, 3)
	assert.Equal(t, token.OpCondGe, toks[0].Op)
	assert.Equal(t, token.OpCondLe, toks[1].Op)
	assert.Equal(t, token.OpCondNe, toks[2].Op)
}

func TestBareBangIsShellReject(t *testing.T) {
	toks := tokenize(t, "!p", 10)
	require.Len(t, toks, 2)
	assert.Equal(t, token.OpShellReject, toks[0].Op)
	assert.Equal(t, token.OpPrint, toks[1].Op)
}

func TestExtensionComparisons(t *testing.T) {
	toks := tokenize(t, "()GN", 10)
	require.Len(t, toks, 4)
	assert.Equal(t, token.OpCompareLt, toks[0].Op)
	assert.Equal(t, token.OpCompareGt, toks[1].Op)
	assert.Equal(t, token.OpCompareEq, toks[2].Op)
	assert.Equal(t, token.OpCompareZero, toks[3].Op)
}

func TestUnimplementedByte(t *testing.T) {
	toks := tokenize(t, "\x01", 10)
	require.Len(t, toks, 1)
	assert.Equal(t, token.OpUnimplemented, toks[0].Op)
	assert.Equal(t, byte(1), toks[0].Unknown)
}

func TestRadixCapturedAtLiteralStart(t *testing.T) {
	tz := token.New(strings.NewReader("1A"), fixedRadix(16))
	tok, err := tz.Next()
	require.NoError(t, err)
	assert.EqualValues(t, 16, tok.Radix)
	assert.Equal(t, "1A", string(tok.NumberLiteral))
}

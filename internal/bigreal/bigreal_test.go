package bigreal

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	a := New(big.NewInt(1234), 3) // 1.234
	b := New(big.NewInt(42), 0)   // 42
	c := a.Add(b)
	assert.Equal(t, "43.234", c.Format(10))
}

func TestSub(t *testing.T) {
	a := New(big.NewInt(1234), 3)
	b := New(big.NewInt(42), 0)
	c := a.Sub(b)
	assert.Equal(t, "-40.766", c.Format(10))
}

func TestMulScaleTruncates(t *testing.T) {
	a := New(big.NewInt(25), 1) // 2.5
	b := New(big.NewInt(4), 2)  // 0.04
	c := a.Mul(b, 0)
	assert.Equal(t, uint32(2), c.Scale())
	assert.Equal(t, ".10", c.Format(10))
}

func TestDivScaleFollowsSettings(t *testing.T) {
	a := FromInt64(1)
	b := FromInt64(3)
	c, err := a.Div(b, 10)
	require.NoError(t, err)
	assert.Equal(t, ".3333333333", c.Format(10))
}

func TestDivByZero(t *testing.T) {
	a := FromInt64(5)
	b := FromInt64(0)
	_, err := a.Div(b, 0)
	assert.ErrorIs(t, err, ErrDivByZero)
}

func TestIntegerDivModIdentity(t *testing.T) {
	a := FromInt64(17)
	b := FromInt64(5)
	q, err := a.Div(b, 0)
	require.NoError(t, err)
	rem, err := a.Rem(b, 0)
	require.NoError(t, err)
	sum := q.Mul(b, 0).Add(rem)
	assert.Equal(t, 0, sum.Cmp(a))
}

func TestSqrtNegative(t *testing.T) {
	_, err := FromInt64(-4).Sqrt(0)
	assert.ErrorIs(t, err, ErrNegativeSqrt)
}

func TestSqrtExact(t *testing.T) {
	r, err := FromInt64(16).Sqrt(0)
	require.NoError(t, err)
	assert.Equal(t, "4", r.Format(10))
}

func TestModExp(t *testing.T) {
	r, err := ModExp(FromInt64(4), FromInt64(13), FromInt64(497))
	require.NoError(t, err)
	assert.Equal(t, "445", r.Format(10))
}

func TestModExpRequiresIntegerOperands(t *testing.T) {
	_, err := ModExp(New(big.NewInt(4), 1), FromInt64(13), FromInt64(497))
	assert.ErrorIs(t, err, ErrNonInteger)
}

func TestParseRoundTrip(t *testing.T) {
	n := Parse([]byte("1234"), 10)
	assert.Equal(t, "1234", n.Format(10))

	f := Parse([]byte("12.34"), 10)
	assert.Equal(t, "12.34", f.Format(10))

	neg := Parse([]byte("_5"), 10)
	assert.True(t, neg.IsNegative())
	assert.Equal(t, "-5", neg.Format(10))
}

func TestParseHexRadix(t *testing.T) {
	n := Parse([]byte("FF"), 16)
	assert.Equal(t, "255", n.Format(10))
}

func TestFormatNonDecimalRadix(t *testing.T) {
	n := New(big.NewInt(1234), 3) // 1.234
	assert.Equal(t, "1.3BE", n.Format(16))
}

func TestFormatOutputRadixOver16(t *testing.T) {
	n := FromInt64(1010)
	assert.Equal(t, "2 10 10", n.Format(20))
}

func TestFormatZero(t *testing.T) {
	assert.Equal(t, "0", Zero().Format(10))
}

func TestCloneIsIndependent(t *testing.T) {
	a := FromInt64(5)
	b := a.Clone()
	b.value.SetInt64(9)
	assert.Equal(t, "5", a.Format(10))
}

func TestNumDigits(t *testing.T) {
	assert.Equal(t, int64(4), New(big.NewInt(1234), 3).NumDigits())
	assert.Equal(t, int64(3), New(big.NewInt(5), 3).NumDigits())
}

func TestLineWrap(t *testing.T) {
	long := Parse([]byte("123456789012345678901234567890123456789012345678901234567890123456789012345"), 10)
	out := long.Format(10)
	for _, line := range splitBackslashNewline(out) {
		assert.LessOrEqual(t, len(line), lineBreakWidth)
	}
}

func splitBackslashNewline(s string) []string {
	var lines []string
	cur := ""
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && s[i+1] == '\n' {
			lines = append(lines, cur)
			cur = ""
			i++
			continue
		}
		cur += string(s[i])
	}
	lines = append(lines, cur)
	return lines
}

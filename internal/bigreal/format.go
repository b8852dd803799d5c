package bigreal

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const lineBreakWidth = 69

const hexDigits = "0123456789ABCDEF"

// Format renders r in the given output radix. Radix 10 produces the
// canonical decimal form directly. Any other radix produces each digit
// as a contiguous 0-9A-F run when radix <= 16, or as space-separated
// decimal groups when radix > 16 (a digit value can exceed 15 and has
// no single-glyph form then). Long lines are broken by inserting
// "\<newline>" so no line exceeds 69 columns, matching GNU dc.
func (r *Real) Format(radix uint32) string {
	var s string
	if radix == 10 {
		s = r.formatDecimal()
	} else {
		s = r.formatRadix(radix)
	}
	return Wrap(s)
}

func (r *Real) formatDecimal() string {
	if r.IsZero() {
		return "0"
	}
	neg := r.IsNegative()
	digits := new(big.Int).Abs(r.value).Text(10)
	if uint32(len(digits)) < r.scale {
		digits = strings.Repeat("0", int(r.scale)-len(digits)) + digits
	}
	var out strings.Builder
	if neg {
		out.WriteByte('-')
	}
	if r.scale == 0 {
		out.WriteString(digits)
		return out.String()
	}
	// GNU dc omits the leading zero for a magnitude under 1 (".5", not
	// "0.5"), so an empty or negative intLen contributes nothing here.
	intLen := len(digits) - int(r.scale)
	if intLen > 0 {
		out.WriteString(digits[:intLen])
	}
	out.WriteByte('.')
	out.WriteString(digits[intLen:])
	return out.String()
}

func (r *Real) formatRadix(radix uint32) string {
	var out strings.Builder
	if r.IsNegative() {
		out.WriteByte('-')
	}

	whole := r.changeScale(0)
	whole.Abs(whole)
	if whole.Sign() == 0 {
		if r.scale == 0 {
			out.WriteByte('0')
		}
	} else {
		writeDigits(&out, whole, radix)
	}

	if r.scale == 0 {
		return out.String()
	}
	out.WriteByte('.')

	// Fractional part: repeatedly multiply the remaining fraction by
	// radix and take the integer part as the next digit, stopping once
	// the accumulated place value (in radix) covers the same amount of
	// information as the decimal scale did.
	fracValue := new(big.Int).Abs(r.value)
	fracValue.Sub(fracValue, new(big.Int).Mul(whole, pow10(r.scale)))
	bigRadix := big.NewInt(int64(radix))
	fracValue.Mul(fracValue, bigRadix)

	maxPlace := pow10(r.scale)
	place := new(big.Int).Set(bigRadix)

	first := true
	for {
		digit, rem := new(big.Int).QuoRem(fracValue, maxPlace, new(big.Int))
		writeOneDigit(&out, digit, radix, first)
		first = false
		fracValue = new(big.Int).Mul(rem, bigRadix)
		if place.Cmp(maxPlace) >= 0 {
			break
		}
		place.Mul(place, bigRadix)
	}
	return out.String()
}

func pow10(n uint32) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

func writeDigits(out *strings.Builder, v *big.Int, radix uint32) {
	if radix <= 16 {
		out.WriteString(strings.ToUpper(v.Text(int(radix))))
		return
	}
	bigRadix := big.NewInt(int64(radix))
	var groups []string
	rem := new(big.Int).Set(v)
	zero := big.NewInt(0)
	for rem.Cmp(zero) > 0 {
		digit := new(big.Int)
		rem.QuoRem(rem, bigRadix, digit)
		groups = append(groups, digit.Text(10))
	}
	for i := len(groups) - 1; i >= 0; i-- {
		if i != len(groups)-1 {
			out.WriteByte(' ')
		}
		out.WriteString(groups[i])
	}
}

func writeOneDigit(out *strings.Builder, digit *big.Int, radix uint32, first bool) {
	if radix <= 16 {
		out.WriteByte(hexDigits[digit.Int64()])
		return
	}
	if !first {
		out.WriteByte(' ')
	}
	out.WriteString(strconv.FormatInt(digit.Int64(), 10))
}

// Wrap breaks s into lines of at most lineBreakWidth display columns,
// joining them with a trailing backslash before the newline, as GNU dc
// does for long numeric output. go-runewidth accounts for multi-byte
// runes so the same helper can wrap arbitrary string Values printed by
// 'p'/'f', not just ASCII digit runs.
func Wrap(s string) string {
	if runewidth.StringWidth(s) <= lineBreakWidth {
		return s
	}
	var out strings.Builder
	width := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if width+rw > lineBreakWidth {
			out.WriteString("\\\n")
			width = 0
		}
		out.WriteRune(r)
		width += rw
	}
	return out.String()
}

package bigreal

import "math/big"

// digitValue returns the value of a base-16 glyph (0-9, A-F), or -1 if
// c is not a digit glyph. Number literals always use hex glyphs for
// their digits regardless of the current input radix — a digit with
// value >= radix is still accepted and simply contributes
// digit*radix^position, per classic dc.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// IsDigit reports whether c can appear inside a number literal's digit
// run (not counting '.' or the leading '_').
func IsDigit(c byte) bool {
	return digitValue(c) >= 0
}

// Parse interprets a number literal's raw bytes — of the form
// `_?[0-9A-F]*(\.[0-9A-F]*)?` — in the given input radix.
//
// When radix is 10, the fractional character count is used directly
// as the result's scale. For any other radix, dc re-divides the value
// by radix once per fractional character, which is what real dc does
// and which can truncate input unless it had extra trailing zeroes
// (e.g. "16i 1.F p" truncates just as it does in dc4's original Rust
// implementation).
func Parse(lit []byte, radix uint32) *Real {
	n := new(big.Int)
	neg := false
	haveFrac := false
	fracDigits := uint32(0)
	base := big.NewInt(int64(radix))

	for _, c := range lit {
		switch {
		case c == '_':
			neg = true
		case c == '.':
			haveFrac = true
			fracDigits = 0
		case digitValue(c) >= 0:
			n.Mul(n, base)
			n.Add(n, big.NewInt(int64(digitValue(c))))
			if haveFrac {
				fracDigits++
			}
		}
	}
	if neg {
		n.Neg(n)
	}

	result := &Real{value: n, scale: 0}
	if !haveFrac || fracDigits == 0 {
		if haveFrac {
			result.scale = 0
		}
		return result
	}

	if radix == 10 {
		result.scale = fracDigits
		return result
	}

	divisor := &Real{value: big.NewInt(int64(radix)), scale: 0}
	for i := uint32(0); i < fracDigits; i++ {
		q, err := result.Div(divisor, fracDigits)
		if err != nil {
			break
		}
		result = q
	}
	return result
}

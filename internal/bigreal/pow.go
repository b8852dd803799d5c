package bigreal

import (
	"errors"
	"math/big"
)

// Exp raises r to the integer truncation of exponent. A non-zero
// fractional part in the exponent is truncated (the caller is
// responsible for surfacing any warning about that). For a negative
// exponent, the positive power is computed first and then 1 is divided
// by it at the given settings scale. 0^0 is 1.
func (r *Real) Exp(exponent *Real, settingsScale uint32) (*Real, error) {
	n := exponent.Trunc().value // truncated toward zero, scale 0

	if n.Sign() == 0 {
		return One(), nil
	}

	neg := n.Sign() < 0
	abs := new(big.Int).Abs(n)
	if !abs.IsInt64() {
		return nil, ErrOverflow
	}
	count := abs.Int64()

	rawScale := uint64(r.scale) * uint64(count)
	if rawScale > 0xFFFFFFFF {
		return nil, ErrOverflow
	}
	raw := new(big.Int).Exp(r.value, abs, nil)
	target := minScale(uint32(rawScale), maxScale(settingsScale, r.scale))
	power := truncateTo(raw, uint32(rawScale), target)

	if !neg {
		return power, nil
	}
	return One().Div(power, settingsScale)
}

// ModExp computes base^exponent mod modulus via square-and-multiply.
// All three operands must carry scale 0 (NonInteger otherwise);
// exponent must be non-negative and modulus non-zero. The result has
// scale 0. math/big's Int.Exp already implements square-and-multiply
// modular exponentiation, so it is used directly rather than
// hand-rolled.
func ModExp(base, exponent, modulus *Real) (*Real, error) {
	if !base.IsInteger() || !exponent.IsInteger() || !modulus.IsInteger() {
		return nil, ErrNonInteger
	}
	if exponent.IsNegative() {
		return nil, ErrNegativeExponent
	}
	if modulus.IsZero() {
		return nil, ErrDivByZero
	}
	result := new(big.Int).Exp(base.value, exponent.value, new(big.Int).Abs(modulus.value))
	return &Real{value: result, scale: 0}, nil
}

// ErrNonInteger is returned when an operation (ModExp) requires
// operands with scale 0 and one does not have it.
var ErrNonInteger = errors.New("non-integer operand")

// ErrNegativeExponent is returned by ModExp for a negative exponent
// ('|' requires one; '^' allows negative exponents and handles them
// itself via Exp's neg branch instead of this sentinel).
var ErrNegativeExponent = errors.New("negative exponent")

// ErrOverflow is returned by Exp when the exponent or the resulting
// scale is too large to compute.
var ErrOverflow = errors.New("exponent overflow")

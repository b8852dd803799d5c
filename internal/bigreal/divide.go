package bigreal

import (
	"errors"
	"math/big"
)

// ErrDivByZero is returned by Div, Rem and DivRem when the divisor is
// zero.
var ErrDivByZero = errors.New("divide by zero")

// Div returns r/o truncated toward zero, at the given result scale.
// The dividend is scaled by 10^scale (after both operands are aligned
// to their common scale) before the integer division, per dc's
// defined division rule.
func (r *Real) Div(o *Real, scale uint32) (*Real, error) {
	if o.IsZero() {
		return nil, ErrDivByZero
	}
	m := maxScale(r.scale, o.scale)
	dividend := r.changeScale(m + scale)
	divisor := o.changeScale(m)
	q := new(big.Int).Quo(dividend, divisor)
	return &Real{value: q, scale: scale}, nil
}

// Rem returns r - (r/o)*o, where the division is computed as in Div at
// the given settings scale. Because the quotient and product here are
// formed exactly (no further truncation), the result naturally lands
// at scale max(F_r, F_o+scale).
func (r *Real) Rem(o *Real, scale uint32) (*Real, error) {
	q, err := r.Div(o, scale)
	if err != nil {
		return nil, err
	}
	prodScale := scale + o.scale
	prod := new(big.Int).Mul(q.value, o.value)
	return r.Sub(&Real{value: prod, scale: prodScale}), nil
}

// DivRem returns the integer quotient (scale 0) and the corresponding
// remainder (computed the same way as Rem, but against the scale-0
// quotient, so it lands at scale max(F_r, F_o)).
func (r *Real) DivRem(o *Real) (quotient, remainder *Real, err error) {
	if o.IsZero() {
		return nil, nil, ErrDivByZero
	}
	q, err := r.Div(o, 0)
	if err != nil {
		return nil, nil, err
	}
	rem, err := r.Rem(o, 0)
	if err != nil {
		return nil, nil, err
	}
	return q, rem, nil
}

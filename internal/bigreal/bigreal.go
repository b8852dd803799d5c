// Package bigreal implements dc's arbitrary-precision signed decimal
// numbers: an integer magnitude paired with a non-negative fractional
// digit count ("scale"). The pair is not required to be minimal —
// stack-neutral operations such as dup preserve trailing fractional
// zeroes exactly as dc4's original Rust implementation does.
package bigreal

import "math/big"

// Real is a signed decimal: value * 10^-scale.
type Real struct {
	value *big.Int
	scale uint32
}

var ten = big.NewInt(10)

// Zero returns the number 0 at scale 0.
func Zero() *Real {
	return &Real{value: big.NewInt(0)}
}

// One returns the number 1 at scale 0.
func One() *Real {
	return &Real{value: big.NewInt(1)}
}

// FromInt64 builds a Real from a plain integer at scale 0.
func FromInt64(n int64) *Real {
	return &Real{value: big.NewInt(n)}
}

// FromUint64 builds a Real from a plain unsigned integer at scale 0.
func FromUint64(n uint64) *Real {
	return &Real{value: new(big.Int).SetUint64(n)}
}

// New builds a Real directly from a magnitude and scale. The magnitude
// is not copied defensively by callers that just produced it.
func New(value *big.Int, scale uint32) *Real {
	return &Real{value: value, scale: scale}
}

// Clone makes an independent copy, preserving scale exactly (dup must
// not normalize trailing fractional zeroes).
func (r *Real) Clone() *Real {
	return &Real{value: new(big.Int).Set(r.value), scale: r.scale}
}

// Scale returns the fractional-digit count F.
func (r *Real) Scale() uint32 {
	return r.scale
}

// IsZero, IsNegative, IsPositive report the sign of the numeric value.
func (r *Real) IsZero() bool     { return r.value.Sign() == 0 }
func (r *Real) IsNegative() bool { return r.value.Sign() < 0 }
func (r *Real) IsPositive() bool { return r.value.Sign() > 0 }

// IsInteger reports whether the scale is exactly zero. A value like
// 4.00 (scale 2, integer-valued) does not count: callers that require
// an integer operand (ModExp) want scale 0 specifically, not merely a
// zero fractional part at some larger scale.
func (r *Real) IsInteger() bool { return r.scale == 0 }

// Neg returns -r, preserving scale.
func (r *Real) Neg() *Real {
	return &Real{value: new(big.Int).Neg(r.value), scale: r.scale}
}

// Abs returns |r|, preserving scale.
func (r *Real) Abs() *Real {
	return &Real{value: new(big.Int).Abs(r.value), scale: r.scale}
}

// changeScale returns a magnitude equal in value to r but expressed at
// the given scale. Increasing the scale multiplies by powers of ten
// (exact); decreasing it truncates toward zero (not rounded), matching
// every "change shift" use throughout dc's arithmetic.
func (r *Real) changeScale(scale uint32) *big.Int {
	v := new(big.Int).Set(r.value)
	if scale > r.scale {
		pow := new(big.Int).Exp(ten, big.NewInt(int64(scale-r.scale)), nil)
		v.Mul(v, pow)
	} else if scale < r.scale {
		pow := new(big.Int).Exp(ten, big.NewInt(int64(r.scale-scale)), nil)
		v.Quo(v, pow)
	}
	return v
}

// ChangeScale returns r re-expressed at the given scale (see
// changeScale); Trunc is built on it.
func (r *Real) ChangeScale(scale uint32) *Real {
	return &Real{value: r.changeScale(scale), scale: scale}
}

// Trunc returns the integer part of r as its own Real at scale 0,
// truncating toward zero.
func (r *Real) Trunc() *Real {
	return r.ChangeScale(0)
}

// Int returns the integer part of r as a *big.Int, truncating toward
// zero. Used by asciify.
func (r *Real) Int() *big.Int {
	return r.changeScale(0)
}

func maxScale(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

func maxScale3(a, b, c uint32) uint32 {
	return maxScale(maxScale(a, b), c)
}

func minScale(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

// Cmp gives a total order by numeric value, ignoring scale beyond
// equality of value (1.0 and 1.00 compare equal).
func (r *Real) Cmp(o *Real) int {
	m := maxScale(r.scale, o.scale)
	return r.changeScale(m).Cmp(o.changeScale(m))
}

// Add returns r + o. Result scale is max(F_r, F_o); operands are
// aligned to that scale exactly before adding, so the result is exact.
func (r *Real) Add(o *Real) *Real {
	m := maxScale(r.scale, o.scale)
	sum := new(big.Int).Add(r.changeScale(m), o.changeScale(m))
	return &Real{value: sum, scale: m}
}

// Sub returns r - o, with the same scale rule as Add.
func (r *Real) Sub(o *Real) *Real {
	m := maxScale(r.scale, o.scale)
	diff := new(big.Int).Sub(r.changeScale(m), o.changeScale(m))
	return &Real{value: diff, scale: m}
}

// Mul returns r * o. The exact product is formed at scale F_r+F_o and
// then truncated (not rounded) down to min(F_r+F_o, max(settingsScale,
// F_r, F_o)).
func (r *Real) Mul(o *Real, settingsScale uint32) *Real {
	rawScale := r.scale + o.scale
	raw := new(big.Int).Mul(r.value, o.value)
	target := minScale(rawScale, maxScale3(settingsScale, r.scale, o.scale))
	return truncateTo(raw, rawScale, target)
}

// truncateTo re-expresses a magnitude known to be exact at fromScale
// down to toScale (<= fromScale), truncating toward zero.
func truncateTo(value *big.Int, fromScale, toScale uint32) *Real {
	v := new(big.Int).Set(value)
	if toScale < fromScale {
		pow := new(big.Int).Exp(ten, big.NewInt(int64(fromScale-toScale)), nil)
		v.Quo(v, pow)
	}
	return &Real{value: v, scale: toScale}
}

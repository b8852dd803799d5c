package bigreal

import "errors"

// ErrNegativeSqrt is returned by Sqrt for a negative operand.
var ErrNegativeSqrt = errors.New("square root of negative number")

// Sqrt computes the integer-square-root-on-scaled-value used by dc's
// 'v': the result lands at scale max(settingsScale, F_r), computed by
// scaling r up to twice that target scale and taking the truncating
// integer square root of the resulting magnitude. math/big's Int.Sqrt
// is itself a Newton-iteration truncating integer square root, which
// is exactly the algorithm this operation calls for.
func (r *Real) Sqrt(settingsScale uint32) (*Real, error) {
	if r.IsNegative() {
		return nil, ErrNegativeSqrt
	}
	if r.IsZero() {
		return r.Clone(), nil
	}
	target := maxScale(settingsScale, r.scale)
	scaled := r.changeScale(2 * target)
	root := scaled.Sqrt(scaled)
	return &Real{value: root, scale: target}, nil
}

package bigreal

import "math/big"

// Int64 returns the truncated integer part as an int64, and whether it
// fit.
func (r *Real) Int64() (int64, bool) {
	i := r.changeScale(0)
	if !i.IsInt64() {
		return 0, false
	}
	return i.Int64(), true
}

// Uint32 returns the truncated integer part as a uint32, and whether
// it fit and was non-negative. Used for radix/scale/quit-level
// arguments, all of which are bounded small non-negative integers.
func (r *Real) Uint32() (uint32, bool) {
	i := r.changeScale(0)
	if i.Sign() < 0 || !i.IsUint64() {
		return 0, false
	}
	u := i.Uint64()
	if u > 0xFFFFFFFF {
		return 0, false
	}
	return uint32(u), true
}

// Bytes returns the big-endian two's-complement-free byte
// representation of the truncated integer part's absolute value, for
// P's base-256 decomposition.
func (r *Real) Bytes() []byte {
	return new(big.Int).Abs(r.changeScale(0)).Bytes()
}

// Package value implements the tagged sum Value = Number(BigReal) |
// String([]byte) used uniformly on dc's main stack and in registers.
package value

import "github.com/wfraser/dc4/internal/bigreal"

// Kind tags which alternative a Value holds.
type Kind int

const (
	KindNumber Kind = iota
	KindString
)

// Value is either a Number or a String. Strings are arbitrary byte
// sequences with no enforced encoding.
type Value struct {
	Kind   Kind
	Number *bigreal.Real
	Str    []byte
}

// Number builds a Number value.
func Number(n *bigreal.Real) Value {
	return Value{Kind: KindNumber, Number: n}
}

// String builds a String value. The byte slice is kept, not copied.
func String(s []byte) Value {
	return Value{Kind: KindString, Str: s}
}

// IsNumber reports whether v holds a Number.
func (v Value) IsNumber() bool { return v.Kind == KindNumber }

// IsString reports whether v holds a String.
func (v Value) IsString() bool { return v.Kind == KindString }

// Clone makes an independent copy, preserving BigReal scale exactly
// (needed so 'd'/register push of a Number don't alias mutable state).
func (v Value) Clone() Value {
	if v.IsNumber() {
		return Number(v.Number.Clone())
	}
	cp := make([]byte, len(v.Str))
	copy(cp, v.Str)
	return String(cp)
}

// GoString renders v for diagnostics (not dc's 'p' output, which uses
// the evaluator's radix-aware formatting).
func (v Value) GoString() string {
	if v.IsNumber() {
		return v.Number.Format(10)
	}
	return string(v.Str)
}

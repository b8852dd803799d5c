// Package settings holds dc's mutable input/output radix and scale,
// owned per-evaluator (never global), per dc4's original DC4 struct
// fields iradix/oradix/scale.
package settings

import "fmt"

// Settings is the plain mutable triple governing number parsing,
// formatting, and the scale of computed results.
type Settings struct {
	InputRadix  uint32
	OutputRadix uint32
	Scale       uint32
}

// New returns the standard dc defaults: base 10 in, base 10 out, scale
// 0.
func New() *Settings {
	return &Settings{InputRadix: 10, OutputRadix: 10, Scale: 0}
}

// CurrentInputRadix implements token.Radixer, letting the tokenizer
// capture the radix in effect at the moment a number literal begins.
func (s *Settings) CurrentInputRadix() uint32 {
	return s.InputRadix
}

// SetInputRadix validates and applies a new input radix, which must be
// in [2,16].
func (s *Settings) SetInputRadix(r uint32) error {
	if r < 2 || r > 16 {
		return fmt.Errorf("input base must be a number between 2 and 16 (inclusive)")
	}
	s.InputRadix = r
	return nil
}

// SetOutputRadix validates and applies a new output radix, which must
// be >= 2 (no upper bound).
func (s *Settings) SetOutputRadix(r uint32) error {
	if r < 2 {
		return fmt.Errorf("output base must be a number greater than 1")
	}
	s.OutputRadix = r
	return nil
}

// SetScale validates and applies a new scale, which must be >= 0 (the
// type already enforces non-negativity; this exists for symmetry and
// to be the single place scale changes happen).
func (s *Settings) SetScale(scale uint32) error {
	s.Scale = scale
	return nil
}

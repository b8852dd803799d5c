package eval

import "github.com/wfraser/dc4/internal/value"

// Stack is dc's main Value stack: a generic-slice stack in the same
// style as a Forth VM's data stack, generalized from a fixed-width
// Cell to Value and made unbounded (dc's stack has no fixed depth
// limit).
type Stack struct {
	items []value.Value
}

// Depth returns the number of Values currently on the stack.
func (s *Stack) Depth() int {
	return len(s.items)
}

// Push adds v to the top.
func (s *Stack) Push(v value.Value) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top Value.
func (s *Stack) Pop() (value.Value, error) {
	if len(s.items) == 0 {
		return value.Value{}, &Error{Errno: StackUnderflow}
	}
	last := len(s.items) - 1
	v := s.items[last]
	s.items = s.items[:last]
	return v, nil
}

// Top returns the top Value without removing it.
func (s *Stack) Top() (value.Value, error) {
	if len(s.items) == 0 {
		return value.Value{}, &Error{Errno: StackUnderflow}
	}
	return s.items[len(s.items)-1], nil
}

// Clear empties the stack ('c').
func (s *Stack) Clear() {
	s.items = s.items[:0]
}

// All returns every Value, top first, without modifying the stack
// ('f' prints the whole thing this way).
func (s *Stack) All() []value.Value {
	result := make([]value.Value, len(s.items))
	for i := range s.items {
		result[i] = s.items[len(s.items)-1-i]
	}
	return result
}

// PeekN returns the top n Values, index 0 being the very top, without
// removing them. Used so operators can type-check every operand
// before consuming any of them ("operands are left untouched on
// failure").
func (s *Stack) PeekN(n int) ([]value.Value, error) {
	if len(s.items) < n {
		return nil, &Error{Errno: StackUnderflow}
	}
	out := make([]value.Value, n)
	for i := 0; i < n; i++ {
		out[i] = s.items[len(s.items)-1-i]
	}
	return out, nil
}

// PopN removes the top n Values; callers must have already validated
// with PeekN that n items exist.
func (s *Stack) PopN(n int) {
	s.items = s.items[:len(s.items)-n]
}

// Swap exchanges the top two Values ('r').
func (s *Stack) Swap() error {
	if len(s.items) < 2 {
		return &Error{Errno: StackUnderflow}
	}
	last := len(s.items) - 1
	s.items[last], s.items[last-1] = s.items[last-1], s.items[last]
	return nil
}

// Dup pushes a copy of the top Value ('d').
func (s *Stack) Dup() error {
	top, err := s.Top()
	if err != nil {
		return err
	}
	s.Push(top.Clone())
	return nil
}

// Rotate implements the 'R' extension: pop a count n and rotate the
// top |n| elements left (n>0) or right (n<0), silently doing nothing
// for a non-Number, out-of-range, or too-small-a-stack count. Grounded
// on original_source's Action::Rotate (src/state.rs).
func (s *Stack) Rotate(n int32) {
	if len(s.items) < 2 {
		return
	}
	abs := n
	if abs < 0 {
		abs = -abs
	}
	var start int
	switch {
	case abs == 0 || abs == 1:
		start = len(s.items) - 1
	case int(abs) >= len(s.items):
		start = 0
	default:
		start = len(s.items) - int(abs)
	}
	window := s.items[start:]
	if n > 0 {
		rotateLeftOne(window)
	} else {
		rotateRightOne(window)
	}
}

func rotateLeftOne(s []value.Value) {
	if len(s) < 2 {
		return
	}
	first := s[0]
	copy(s, s[1:])
	s[len(s)-1] = first
}

func rotateRightOne(s []value.Value) {
	if len(s) < 2 {
		return
	}
	last := s[len(s)-1]
	copy(s[1:], s[:len(s)-1])
	s[0] = last
}

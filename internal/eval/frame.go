package eval

import (
	"io"

	"github.com/wfraser/dc4/internal/token"
)

// frame is one suspended tokenization: either the bottom frame reading
// the external byte source, or a macro frame reading a string body.
// The evaluator keeps these in an explicit slice rather than host
// recursion, so macro call depth is never bounded by Go's call stack.
type frame struct {
	tok *token.Tokenizer
}

func newFrame(r io.Reader, radix token.Radixer) *frame {
	return &frame{tok: token.New(r, radix)}
}

// pushFrame opens a new frame over r, becoming the frame tokens are
// pulled from until it reaches end-of-stream or is popped by q/Q.
func (e *Evaluator) pushFrame(r io.Reader) {
	e.frames = append(e.frames, newFrame(r, e.Settings))
}

func (e *Evaluator) topFrame() *frame {
	return e.frames[len(e.frames)-1]
}

// popFrame discards the top frame, reporting whether one remained to
// discard.
func (e *Evaluator) popFrame() bool {
	if len(e.frames) == 0 {
		return false
	}
	e.frames = e.frames[:len(e.frames)-1]
	return true
}

// popFrames pops up to n frames for q/Q, stopping short of the bottom
// frame: Q must not exit the top level, only unwind macros within it.
// (q at a depth of fewer than two macro frames clears the frames itself
// in dispatch before this runs.)
func (e *Evaluator) popFrames(n int) {
	for i := 0; i < n && len(e.frames) > 1; i++ {
		e.frames = e.frames[:len(e.frames)-1]
	}
}

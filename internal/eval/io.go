package eval

import (
	"fmt"

	"github.com/wfraser/dc4/internal/bigreal"
	"github.com/wfraser/dc4/internal/value"
)

// render formats v the way 'p'/'n'/'f' print it: Numbers in the
// current output radix (with GNU dc's 69-column wrapping), Strings
// raw but still wrapped for multi-byte safety per the ambient output
// stack (go-runewidth).
func (e *Evaluator) render(v value.Value) string {
	if v.IsNumber() {
		return v.Number.Format(e.Settings.OutputRadix)
	}
	return bigreal.Wrap(string(v.Str))
}

func (e *Evaluator) doPrint() error {
	v, err := e.Stack.Top()
	if err != nil {
		return err
	}
	fmt.Fprintln(e.Out, e.render(v))
	return nil
}

func (e *Evaluator) doPrintNoNewlinePop() error {
	v, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	fmt.Fprint(e.Out, e.render(v))
	return nil
}

func (e *Evaluator) doPrintBytesPop() error {
	v, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	if v.IsString() {
		e.Out.Write(v.Str)
		return nil
	}
	e.Out.Write(v.Number.Bytes())
	return nil
}

func (e *Evaluator) doPrintStack() error {
	for _, v := range e.Stack.All() {
		fmt.Fprintln(e.Out, e.render(v))
	}
	return nil
}

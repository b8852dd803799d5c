package eval

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"math/big"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/wfraser/dc4/internal/bigreal"
	"github.com/wfraser/dc4/internal/value"
)

func emptyRegisterErr(reg byte) *Error {
	return &Error{Errno: StackUnderflow, Detail: fmt.Sprintf("register '%c' (0x%02X) is empty", reg, reg)}
}

func (e *Evaluator) store(reg byte) error {
	v, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	e.Regs.Get(reg).Set(v)
	return nil
}

func (e *Evaluator) load(reg byte) error {
	v, ok := e.Regs.Get(reg).Top()
	if !ok {
		return emptyRegisterErr(reg)
	}
	e.Stack.Push(v.Clone())
	return nil
}

func (e *Evaluator) pushRegStack(reg byte) error {
	v, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	e.Regs.Get(reg).Push(v)
	return nil
}

func (e *Evaluator) popRegStack(reg byte) error {
	v, ok := e.Regs.Get(reg).Pop()
	if !ok {
		return emptyRegisterErr(reg)
	}
	e.Stack.Push(v)
	return nil
}

func arrayIndex(v value.Value) (int64, error) {
	if !v.IsNumber() {
		return 0, &Error{Errno: TypeMismatch}
	}
	idx, ok := v.Number.Int64()
	if !ok || idx < 0 {
		return 0, &Error{Errno: OutOfRange, Detail: "array index must be a nonnegative integer"}
	}
	return idx, nil
}

func (e *Evaluator) storeRegArray(reg byte) error {
	vals, err := e.Stack.PeekN(2)
	if err != nil {
		return err
	}
	idx, err := arrayIndex(vals[0])
	if err != nil {
		return err
	}
	v := vals[1]
	e.Stack.PopN(2)
	e.Regs.Get(reg).ArrayStore(idx, v)
	return nil
}

func (e *Evaluator) loadRegArray(reg byte) error {
	top, err := e.Stack.Top()
	if err != nil {
		return err
	}
	idx, err := arrayIndex(top)
	if err != nil {
		return err
	}
	e.Stack.Pop()
	e.Stack.Push(e.Regs.Get(reg).ArrayLoad(idx))
	return nil
}

func (e *Evaluator) executeMacro() error {
	v, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	if v.IsString() {
		e.pushFrame(bytes.NewReader(v.Str))
		return nil
	}
	e.Stack.Push(v)
	return nil
}

func (e *Evaluator) quitLevels() error {
	v, err := e.peekOneNumber()
	if err != nil {
		return err
	}
	if !v.IsPositive() {
		return &Error{Errno: OutOfRange, Detail: "Q command requires a number >= 1"}
	}
	n, ok := v.Uint32()
	if !ok {
		return &Error{Errno: OutOfRange, Detail: "quit levels out of range"}
	}
	e.Stack.Pop()
	return &quitSignal{levels: int(n)}
}

func (e *Evaluator) setRadix(isInput bool) error {
	v, err := e.peekOneNumber()
	if err != nil {
		return err
	}
	n, ok := v.Uint32()
	if !ok {
		return &Error{Errno: OutOfRange}
	}
	if isInput {
		if err := e.Settings.SetInputRadix(n); err != nil {
			return &Error{Errno: OutOfRange, Detail: err.Error()}
		}
		e.Stack.Pop()
		return nil
	}
	if err := e.Settings.SetOutputRadix(n); err != nil {
		return &Error{Errno: OutOfRange, Detail: err.Error()}
	}
	e.Stack.Pop()
	return nil
}

func (e *Evaluator) setScale() error {
	v, err := e.peekOneNumber()
	if err != nil {
		return err
	}
	n, ok := v.Uint32()
	if !ok {
		return &Error{Errno: OutOfRange}
	}
	if err := e.Settings.SetScale(n); err != nil {
		return &Error{Errno: OutOfRange, Detail: err.Error()}
	}
	e.Stack.Pop()
	return nil
}

func (e *Evaluator) asciify() error {
	v, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	if v.IsString() {
		if len(v.Str) == 0 {
			e.Stack.Push(value.String(nil))
			return nil
		}
		e.Stack.Push(value.String(v.Str[:1]))
		return nil
	}
	mod := new(big.Int).Mod(v.Number.Int(), big.NewInt(256))
	e.Stack.Push(value.String([]byte{byte(mod.Int64())}))
	return nil
}

func (e *Evaluator) rotate() error {
	v, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	if !v.IsNumber() {
		return nil
	}
	n, ok := v.Number.Int64()
	if !ok || n < math.MinInt32 || n > math.MaxInt32 {
		return nil
	}
	e.Stack.Rotate(int32(n))
	return nil
}

func (e *Evaluator) numDigits() error {
	v, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	if v.IsString() {
		e.Stack.Push(value.Number(bigreal.FromInt64(int64(len(v.Str)))))
		return nil
	}
	e.Stack.Push(value.Number(bigreal.FromInt64(v.Number.NumDigits())))
	return nil
}

func (e *Evaluator) numFrxDigits() error {
	v, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	if v.IsString() {
		e.Stack.Push(value.Number(bigreal.Zero()))
		return nil
	}
	e.Stack.Push(value.Number(bigreal.FromUint64(uint64(v.Number.NumFrxDigits()))))
	return nil
}

// input implements '?': read one line from the external input source
// and run it as a macro immediately (not pushed as a Value), per
// original_source's Action::Input. If the bottom frame's source is an
// interactive terminal, pending output is flushed first so prompts
// printed just before '?' are visible before the read blocks --
// grounded in pawscript's terminal.go TTY-detection idiom.
func (e *Evaluator) input() error {
	if f, ok := e.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if flusher, ok := e.Out.(interface{ Flush() error }); ok {
			flusher.Flush()
		}
	}
	if e.inBuf == nil {
		e.inBuf = bufio.NewReader(e.In)
	}
	line, rerr := e.inBuf.ReadString('\n')
	if rerr != nil && line == "" {
		e.pushFrame(strings.NewReader(""))
		return nil
	}
	e.pushFrame(strings.NewReader(line))
	return nil
}

func (e *Evaluator) pushVersion() error {
	ver := uint64(e.version[0])<<24 | uint64(e.version[1])<<16 | uint64(e.version[2])
	e.Stack.Push(value.Number(bigreal.FromUint64(ver)))
	e.Stack.Push(value.String([]byte("dc4")))
	return nil
}

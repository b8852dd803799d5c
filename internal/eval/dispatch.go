package eval

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/wfraser/dc4/internal/bigreal"
	"github.com/wfraser/dc4/internal/token"
	"github.com/wfraser/dc4/internal/value"
)

// dispatch applies one command token to the evaluator's state. A
// returned *Error is non-fatal unless Fatal() is true; a *quitSignal
// is caught by run() to unwind frames.
func (e *Evaluator) dispatch(tok token.Token) error {
	switch tok.Kind {
	case token.KindNumber:
		e.Stack.Push(value.Number(bigreal.Parse(tok.NumberLiteral, tok.Radix)))
		return nil
	case token.KindString:
		e.Stack.Push(value.String(tok.StringBytes))
		return nil
	}

	switch tok.Op {
	case token.OpAdd:
		return e.arith(func(below, top *bigreal.Real) (*bigreal.Real, error) {
			return below.Add(top), nil
		})
	case token.OpSub:
		return e.arith(func(below, top *bigreal.Real) (*bigreal.Real, error) {
			return below.Sub(top), nil
		})
	case token.OpMul:
		return e.arith(func(below, top *bigreal.Real) (*bigreal.Real, error) {
			return below.Mul(top, e.Settings.Scale), nil
		})
	case token.OpDiv:
		return e.arith(func(below, top *bigreal.Real) (*bigreal.Real, error) {
			return below.Div(top, e.Settings.Scale)
		})
	case token.OpRem:
		return e.arith(func(below, top *bigreal.Real) (*bigreal.Real, error) {
			return below.Rem(top, e.Settings.Scale)
		})
	case token.OpExp:
		return e.arith(func(below, top *bigreal.Real) (*bigreal.Real, error) {
			return below.Exp(top, e.Settings.Scale)
		})
	case token.OpDivRem:
		return e.divRem()
	case token.OpModExp:
		return e.modExp()
	case token.OpSqrt:
		return e.unary(func(r *bigreal.Real) (*bigreal.Real, error) {
			return r.Sqrt(e.Settings.Scale)
		})

	case token.OpCompareLt, token.OpCompareGt, token.OpCompareEq:
		return e.extCompare(tok.Op)
	case token.OpCompareZero:
		return e.extCompareZero()

	case token.OpCondLt, token.OpCondGt, token.OpCondEq, token.OpCondGe, token.OpCondLe, token.OpCondNe:
		return e.conditional(tok)

	case token.OpStore:
		return e.store(tok.Reg)
	case token.OpLoad:
		return e.load(tok.Reg)
	case token.OpPushRegStack:
		return e.pushRegStack(tok.Reg)
	case token.OpPopRegStack:
		return e.popRegStack(tok.Reg)
	case token.OpStoreRegArray:
		return e.storeRegArray(tok.Reg)
	case token.OpLoadRegArray:
		return e.loadRegArray(tok.Reg)

	case token.OpExecuteMacro:
		return e.executeMacro()
	case token.OpQuit:
		// With fewer than two macro frames above the bottom frame, q
		// drops every frame, ending the current input source.
		if len(e.frames) <= 2 {
			e.frames = e.frames[:0]
		}
		return &quitSignal{levels: 2}
	case token.OpQuitLevels:
		return e.quitLevels()

	case token.OpShellReject:
		return &Error{Errno: ShellRejected}

	case token.OpPrint:
		return e.doPrint()
	case token.OpPrintNoNewlinePop:
		return e.doPrintNoNewlinePop()
	case token.OpPrintBytesPop:
		return e.doPrintBytesPop()
	case token.OpPrintStack:
		return e.doPrintStack()

	case token.OpSetInputRadix:
		return e.setRadix(true)
	case token.OpLoadInputRadix:
		e.Stack.Push(value.Number(bigreal.FromUint64(uint64(e.Settings.InputRadix))))
		return nil
	case token.OpSetOutputRadix:
		return e.setRadix(false)
	case token.OpLoadOutputRadix:
		e.Stack.Push(value.Number(bigreal.FromUint64(uint64(e.Settings.OutputRadix))))
		return nil
	case token.OpSetPrecision:
		return e.setScale()
	case token.OpLoadPrecision:
		e.Stack.Push(value.Number(bigreal.FromUint64(uint64(e.Settings.Scale))))
		return nil

	case token.OpAsciify:
		return e.asciify()
	case token.OpClearStack:
		e.Stack.Clear()
		return nil
	case token.OpDup:
		return e.Stack.Dup()
	case token.OpSwap:
		return e.Stack.Swap()
	case token.OpRotate:
		return e.rotate()
	case token.OpStackDepth:
		e.Stack.Push(value.Number(bigreal.FromInt64(int64(e.Stack.Depth()))))
		return nil
	case token.OpNumDigits:
		return e.numDigits()
	case token.OpNumFrxDigits:
		return e.numFrxDigits()

	case token.OpInput:
		return e.input()
	case token.OpVersion:
		return e.pushVersion()

	case token.OpUnimplemented:
		return unimplemented(tok.Unknown)
	}
	return &Error{Errno: Internal, Detail: fmt.Sprintf("unhandled opcode %d", tok.Op)}
}

// popTwoNumbers validates and returns the operand pair without
// consuming the stack until both operands are confirmed numeric, per
// the "operands untouched on failure" rule. below is the
// second-to-top operand (pushed first); top is the top (pushed last),
// matching original_source's get_two_ints(a=below, b=top) convention.
func (e *Evaluator) popTwoNumbers() (below, top *bigreal.Real, err error) {
	vals, err := e.Stack.PeekN(2)
	if err != nil {
		return nil, nil, err
	}
	t, b := vals[0], vals[1]
	if !t.IsNumber() || !b.IsNumber() {
		return nil, nil, &Error{Errno: TypeMismatch}
	}
	e.Stack.PopN(2)
	return b.Number, t.Number, nil
}

// peekOneNumber validates without consuming, so a computation that
// fails (NegativeSqrt, etc.) leaves the operand in place.
func (e *Evaluator) peekOneNumber() (*bigreal.Real, error) {
	v, err := e.Stack.Top()
	if err != nil {
		return nil, err
	}
	if !v.IsNumber() {
		return nil, &Error{Errno: TypeMismatch}
	}
	return v.Number, nil
}

// peekTwoNumbers is popTwoNumbers' non-consuming counterpart, for
// operations whose own computation (not just the type check) can
// fail: the operands must still be there afterward.
func (e *Evaluator) peekTwoNumbers() (below, top *bigreal.Real, err error) {
	vals, err := e.Stack.PeekN(2)
	if err != nil {
		return nil, nil, err
	}
	t, b := vals[0], vals[1]
	if !t.IsNumber() || !b.IsNumber() {
		return nil, nil, &Error{Errno: TypeMismatch}
	}
	return b.Number, t.Number, nil
}

func (e *Evaluator) arith(f func(below, top *bigreal.Real) (*bigreal.Real, error)) error {
	below, top, err := e.peekTwoNumbers()
	if err != nil {
		return err
	}
	result, err := f(below, top)
	if err != nil {
		return bigErrToEval(err)
	}
	e.Stack.PopN(2)
	e.Stack.Push(value.Number(result))
	return nil
}

func (e *Evaluator) unary(f func(*bigreal.Real) (*bigreal.Real, error)) error {
	v, err := e.peekOneNumber()
	if err != nil {
		return err
	}
	result, err := f(v)
	if err != nil {
		return bigErrToEval(err)
	}
	e.Stack.Pop()
	e.Stack.Push(value.Number(result))
	return nil
}

func (e *Evaluator) divRem() error {
	below, top, err := e.peekTwoNumbers()
	if err != nil {
		return err
	}
	q, r, err := below.DivRem(top)
	if err != nil {
		return bigErrToEval(err)
	}
	e.Stack.PopN(2)
	e.Stack.Push(value.Number(q))
	e.Stack.Push(value.Number(r))
	return nil
}

func (e *Evaluator) modExp() error {
	vals, err := e.Stack.PeekN(3)
	if err != nil {
		return err
	}
	m, exp, base := vals[0], vals[1], vals[2]
	if !m.IsNumber() || !exp.IsNumber() || !base.IsNumber() {
		return &Error{Errno: TypeMismatch}
	}
	result, err := bigreal.ModExp(base.Number, exp.Number, m.Number)
	if err != nil {
		return bigErrToEval(err)
	}
	e.Stack.PopN(3)
	e.Stack.Push(value.Number(result))
	return nil
}

func bigErrToEval(err error) *Error {
	switch {
	case errors.Is(err, bigreal.ErrDivByZero):
		return &Error{Errno: DivByZero}
	case errors.Is(err, bigreal.ErrNegativeSqrt):
		return &Error{Errno: NegativeSqrt}
	case errors.Is(err, bigreal.ErrNonInteger):
		return &Error{Errno: NonInteger}
	case errors.Is(err, bigreal.ErrNegativeExponent):
		return &Error{Errno: NegativeExponent}
	case errors.Is(err, bigreal.ErrOverflow):
		return &Error{Errno: Overflow}
	default:
		return &Error{Errno: Internal, Detail: err.Error()}
	}
}

// extCompare implements the '(' ')' 'G' pure-comparison extensions:
// pop two Numbers, push 1 or 0, never branching. Operand roles match
// the conditional commands' below/top convention exactly, so '(' and
// ')' agree with '<' and '>'.
func (e *Evaluator) extCompare(op token.Op) error {
	below, top, err := e.popTwoNumbers()
	if err != nil {
		return err
	}
	cmp := below.Cmp(top)
	var result bool
	switch op {
	case token.OpCompareLt:
		result = cmp > 0 // top < below
	case token.OpCompareGt:
		result = cmp < 0 // top > below
	case token.OpCompareEq:
		result = cmp == 0
	}
	e.Stack.Push(boolValue(result))
	return nil
}

func (e *Evaluator) extCompareZero() error {
	v, err := e.peekOneNumber()
	if err != nil {
		return err
	}
	e.Stack.Pop()
	e.Stack.Push(boolValue(v.IsZero()))
	return nil
}

func boolValue(b bool) value.Value {
	if b {
		return value.Number(bigreal.One())
	}
	return value.Number(bigreal.Zero())
}

// conditional predicate returns true when the macro should run, using
// original_source's RegisterAction::{Lt,Gt,Eq,Ge,Le,Ne} closures
// (a=below, b=top): Lt: b<a, Gt: b>a, Ge: b>=a, Le: b<=a, Eq/Ne: b==a.
func condTriggers(op token.Op, cmp int) bool {
	// cmp = below.Cmp(top): <0 means top>below, >0 means top<below.
	switch op {
	case token.OpCondLt:
		return cmp > 0 // top < below
	case token.OpCondGt:
		return cmp < 0 // top > below
	case token.OpCondEq:
		return cmp == 0
	case token.OpCondGe:
		return cmp <= 0 // top >= below
	case token.OpCondLe:
		return cmp >= 0 // top <= below
	case token.OpCondNe:
		return cmp != 0
	}
	return false
}

func (e *Evaluator) conditional(tok token.Token) error {
	below, top, err := e.popTwoNumbers()
	if err != nil {
		return err
	}
	cmp := below.Cmp(top)
	reg := tok.Reg
	if !condTriggers(tok.Op, cmp) {
		if !tok.HasElseReg {
			return nil
		}
		reg = tok.ElseReg
	}
	return e.runRegisterMacro(reg)
}

// runRegisterMacro executes register reg's top-frame scalar as a
// macro if it's a String; if it's a Number, it's pushed instead of
// executed. The same rule applies whether reg is the then-register or
// the 'xey' else-register, so both branches behave identically for a
// Number.
func (e *Evaluator) runRegisterMacro(reg byte) error {
	v, ok := e.Regs.Get(reg).Top()
	if !ok {
		return emptyRegisterErr(reg)
	}
	if v.IsNumber() {
		e.Stack.Push(v.Clone())
		return nil
	}
	e.pushFrame(bytes.NewReader(v.Str))
	return nil
}

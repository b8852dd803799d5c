// Package eval implements dc's interpreter core: the dispatch loop
// that pulls tokens from an explicit frame stack and applies them to
// a main Value stack, a register file, and mutable settings.
//
// The dispatch loop follows a classic fetch/dispatch VM step, the same
// shape as a Forth VM's instruction loop, generalized from Forth's
// address-based call/jmp frames to dc's string-macro frames.
package eval

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/juju/loggo"

	"github.com/wfraser/dc4/internal/registers"
	"github.com/wfraser/dc4/internal/settings"
	"github.com/wfraser/dc4/internal/token"
)

var logger = loggo.GetLogger("dc4.eval")

// Evaluator is one independent interpreter instance: its own stack,
// registers, and settings, with nothing shared across instances.
type Evaluator struct {
	Stack    Stack
	Regs     *registers.File
	Settings *settings.Settings

	Out    io.Writer
	ErrOut io.Writer
	In     io.Reader // source for '?', typically the process's stdin

	frames  []*frame
	version [3]int
	log     loggo.Logger
	inBuf   *bufio.Reader
}

// New builds an Evaluator writing normal output to out and
// diagnostics to errOut, reading '?' lines from in.
func New(out, errOut io.Writer, in io.Reader) *Evaluator {
	return &Evaluator{
		Regs:     registers.New(),
		Settings: settings.New(),
		Out:      out,
		ErrOut:   errOut,
		In:       in,
		log:      logger,
	}
}

// SetVersion sets the three components '@' pushes.
func (e *Evaluator) SetVersion(major, minor, patch int) {
	e.version = [3]int{major, minor, patch}
}

// PushSource opens a new bottom frame over r and runs until it (and
// anything it spawns) is exhausted or a fatal error occurs.
func (e *Evaluator) PushSource(r io.Reader) error {
	e.pushFrame(r)
	return e.run()
}

// PushString is PushSource for an in-memory expression (the '-e'
// command-line form).
func (e *Evaluator) PushString(s string) error {
	return e.PushSource(bytes.NewReader([]byte(s)))
}

// quitSignal unwinds frames without being logged as a diagnostic; it
// never escapes run().
type quitSignal struct {
	levels int
}

func (q *quitSignal) Error() string { return "quit" }

func (e *Evaluator) run() error {
	for {
		if len(e.frames) == 0 {
			return nil
		}
		tok, err := e.topFrame().tok.Next()
		if err != nil {
			if _, ok := err.(*token.Error); ok {
				e.diag(&Error{Errno: UnbalancedBracket})
			} else {
				return fmt.Errorf("reading input: %w", err)
			}
			if !e.popFrame() {
				return nil
			}
			continue
		}
		if tok.Kind == token.KindEOF {
			if !e.popFrame() {
				return nil
			}
			continue
		}

		dispatchErr := e.dispatch(tok)
		if dispatchErr == nil {
			continue
		}
		if qs, ok := dispatchErr.(*quitSignal); ok {
			e.popFrames(qs.levels)
			if len(e.frames) == 0 {
				return nil
			}
			continue
		}
		if ee, ok := dispatchErr.(*Error); ok {
			if ee.Fatal() {
				return ee
			}
			e.diag(ee)
			continue
		}
		return dispatchErr
	}
}

func (e *Evaluator) diag(err *Error) {
	e.log.Warningf("%s", err.Error())
	fmt.Fprintln(e.ErrOut, err.Error())
}

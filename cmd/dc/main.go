// Command dc is a thin front end over internal/eval: it only parses
// arguments, opens files, and picks exit codes. The argument loop
// (-e/--expression=, -f/--file=, --, -, bare stdin fallback) follows
// original_source's main.rs.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/juju/errors"

	"github.com/wfraser/dc4/internal/eval"
)

const (
	expressionPrefix = "--expression="
	filePrefix       = "--file="
)

var (
	versionMajor = "0"
	versionMinor = "0"
	versionPatch = "0"
)

type inputKind int

const (
	inputExpression inputKind = iota
	inputFile
	inputStdin
)

type input struct {
	kind inputKind
	text string // expression text or file path
}

func progname() string {
	return filepath.Base(os.Args[0])
}

func printVersion() {
	fmt.Printf("%s: version %s.%s.%s\n", progname(), versionMajor, versionMinor, versionPatch)
}

func printUsage() {
	fmt.Printf("usage: %s [-e expr | --expression=expr] [-f file | --file=file] [--] [file ...]\n", progname())
}

func parseArgs(args []string) ([]input, bool, error) {
	var inputs []input
	seenDoubleDash := false
	processStdin := true

	for i := 1; i < len(args); i++ {
		arg := args[i]

		switch {
		case seenDoubleDash:
			inputs = append(inputs, input{inputFile, arg})
			processStdin = false
		case arg == "-V" || arg == "--version":
			printVersion()
			return nil, false, nil
		case arg == "-h" || arg == "--help":
			printUsage()
			return nil, false, nil
		case arg == "-e":
			if i+1 >= len(args) {
				return nil, false, errors.New(`"-e" must be followed by an argument`)
			}
			i++
			inputs = append(inputs, input{inputExpression, args[i]})
			processStdin = false
		case len(arg) > len(expressionPrefix) && arg[:len(expressionPrefix)] == expressionPrefix:
			inputs = append(inputs, input{inputExpression, arg[len(expressionPrefix):]})
			processStdin = false
		case arg == "-f":
			if i+1 >= len(args) {
				return nil, false, errors.New(`"-f" must be followed by an argument`)
			}
			i++
			inputs = append(inputs, input{inputFile, args[i]})
			processStdin = false
		case arg == "--":
			seenDoubleDash = true
		case arg == "-":
			inputs = append(inputs, input{inputStdin, ""})
			processStdin = false
		case len(arg) > len(filePrefix) && arg[:len(filePrefix)] == filePrefix:
			inputs = append(inputs, input{inputFile, arg[len(filePrefix):]})
			processStdin = false
		case len(arg) > 0 && arg[0] == '-' && arg != "-":
			return nil, false, errors.Errorf("unrecognized option %q", arg)
		default:
			inputs = append(inputs, input{inputFile, arg})
			processStdin = false
		}
	}

	if processStdin {
		inputs = append(inputs, input{inputStdin, ""})
	}
	return inputs, true, nil
}

func run() error {
	inputs, shouldRun, err := parseArgs(os.Args)
	if err != nil {
		return errors.Annotate(err, "argument error")
	}
	if !shouldRun {
		return nil
	}

	e := eval.New(os.Stdout, os.Stderr, os.Stdin)
	major, minor, patch := 0, 0, 0
	fmt.Sscanf(versionMajor, "%d", &major)
	fmt.Sscanf(versionMinor, "%d", &minor)
	fmt.Sscanf(versionPatch, "%d", &patch)
	e.SetVersion(major, minor, patch)

	for _, in := range inputs {
		switch in.kind {
		case inputExpression:
			if err := e.PushString(in.text); err != nil {
				return errors.Annotatef(err, "evaluating expression")
			}
		case inputFile:
			f, err := os.Open(in.text)
			if err != nil {
				return errors.Annotatef(err, "opening %s", in.text)
			}
			err = e.PushSource(f)
			f.Close()
			if err != nil {
				return errors.Annotatef(err, "evaluating %s", in.text)
			}
		case inputStdin:
			if err := e.PushSource(os.Stdin); err != nil {
				return errors.Annotate(err, "evaluating standard input")
			}
		}
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, errors.Cause(err))
		os.Exit(1)
	}
}

package eval

import (
	"fmt"
	"strings"

	"orionlang/orion/object"
	"orionlang/orion/orionerr"
	"orionlang/orion/parser"
)

// builtinFunc is a built-in's call signature: the already-evaluated
// argument values and the call expression's source position, for error
// reporting.
type builtinFunc func(ev *Evaluator, args []object.Value, pos parser.Position) (object.Value, *orionerr.Error)

// builtins is the closed set of five names the evaluator recognizes at
// call time, ahead of any user-defined function of the same name
// (spec.md §4.3/§5).
var builtins = map[string]builtinFunc{
	"out":   builtinOut,
	"str":   builtinStr,
	"int":   builtinInt,
	"float": builtinFloat,
	"input": builtinInput,
}

// builtinOut writes its single argument's ToString form followed by a
// newline, and always returns Null. out takes exactly one argument
// (spec.md §4.3).
func builtinOut(ev *Evaluator, args []object.Value, pos parser.Position) (object.Value, *orionerr.Error) {
	if len(args) != 1 {
		return nil, orionerr.New(orionerr.Runtime, orionerr.ArityMismatch, pos.Line, pos.Column, "out expects 1 argument, got %d", len(args))
	}
	fmt.Fprintln(ev.writer, args[0].ToString())
	return object.NullValue, nil
}

func builtinStr(_ *Evaluator, args []object.Value, pos parser.Position) (object.Value, *orionerr.Error) {
	if len(args) != 1 {
		return nil, orionerr.New(orionerr.Runtime, orionerr.ArityMismatch, pos.Line, pos.Column, "str expects 1 argument, got %d", len(args))
	}
	return object.String(args[0].ToString()), nil
}

func builtinInt(_ *Evaluator, args []object.Value, pos parser.Position) (object.Value, *orionerr.Error) {
	if len(args) != 1 {
		return nil, orionerr.New(orionerr.Runtime, orionerr.ArityMismatch, pos.Line, pos.Column, "int expects 1 argument, got %d", len(args))
	}
	v, err := toInt(args[0])
	if err != nil {
		return nil, reposition(err, pos)
	}
	return v, nil
}

func builtinFloat(_ *Evaluator, args []object.Value, pos parser.Position) (object.Value, *orionerr.Error) {
	if len(args) != 1 {
		return nil, orionerr.New(orionerr.Runtime, orionerr.ArityMismatch, pos.Line, pos.Column, "float expects 1 argument, got %d", len(args))
	}
	v, err := toFloat(args[0])
	if err != nil {
		return nil, reposition(err, pos)
	}
	return v, nil
}

// builtinInput optionally prints its single argument as a prompt (without
// a trailing newline), then reads one line from the evaluator's reader.
func builtinInput(ev *Evaluator, args []object.Value, pos parser.Position) (object.Value, *orionerr.Error) {
	if len(args) > 1 {
		return nil, orionerr.New(orionerr.Runtime, orionerr.ArityMismatch, pos.Line, pos.Column, "input expects at most 1 argument, got %d", len(args))
	}
	if len(args) == 1 {
		fmt.Fprint(ev.writer, args[0].ToString())
	}
	line, err := ev.reader.ReadString('\n')
	if err != nil && line == "" {
		return nil, orionerr.New(orionerr.Runtime, orionerr.InputUnavailable, pos.Line, pos.Column, "no input available")
	}
	return object.String(strings.TrimRight(line, "\r\n")), nil
}

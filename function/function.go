// Package function holds Orion's user-defined function representation,
// grounded in the teacher's function.Function but with no captured scope:
// spec.md §4.3 binds every function activation to the global frame only, so
// there is nothing resembling a closure to carry.
package function

import (
	"orionlang/orion/parser"
)

// Function is one function declared with "fn". Calling it creates a fresh
// frame parented directly at the global frame, regardless of where in the
// source the call itself appears (spec.md §4.3: "no closures over
// intermediate scopes").
type Function struct {
	Name   string
	Params []parser.Param
	Body   *parser.Block
}

// Table maps every declared function name to its Function, populated by a
// first pass over the program before any statement runs (spec.md §4.3:
// function declarations are hoisted, so a function may call another
// declared later in the same source file).
type Table map[string]*Function

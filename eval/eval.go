// Package eval implements Orion's tree-walking evaluator: a parser.Visitor
// that executes an AST directly rather than compiling it, grounded in the
// teacher's eval.Evaluator but rebuilt around a tagged Signal (see
// signal.go) instead of the teacher's panic-based return unwinding, and
// around env.Frame instead of scope.Scope (no closures — spec.md §4.3).
package eval

import (
	"bufio"
	"io"

	"orionlang/orion/env"
	"orionlang/orion/function"
	"orionlang/orion/object"
	"orionlang/orion/orionerr"
	"orionlang/orion/parser"
)

// Evaluator walks an AST once per Run call. It implements parser.Visitor:
// each VisitX method writes its result into the evaluator's own scratch
// fields instead of returning a value, which is what lets a single
// interface serve both expression-shaped nodes (val/err) and statement-
// shaped nodes (sig/err/retVal) uniformly.
type Evaluator struct {
	global   *env.Frame
	curFrame *env.Frame
	funcs    function.Table
	writer   io.Writer
	reader   *bufio.Reader

	val    object.Value
	err    *orionerr.Error
	sig    sigKind
	retVal object.Value
	sigPos parser.Position
}

// New creates an Evaluator that writes "out" calls to w and reads "input"
// calls from r.
func New(w io.Writer, r io.Reader) *Evaluator {
	global := env.New(nil)
	return &Evaluator{
		global:   global,
		curFrame: global,
		funcs:    make(function.Table),
		writer:   w,
		reader:   bufio.NewReader(r),
	}
}

// evalExpr visits an expression node and returns what it left in the
// scratch fields. The node itself may recurse into evalExpr/execStmt
// again; curFrame is only ever changed at block/function boundaries, so it
// is always correct for the node currently being visited.
func (ev *Evaluator) evalExpr(e parser.Expr) (object.Value, *orionerr.Error) {
	e.Accept(ev)
	return ev.val, ev.err
}

// execStmt visits a statement node and returns the signal it produced.
func (ev *Evaluator) execStmt(s parser.Stmt) sigKind {
	s.Accept(ev)
	return ev.sig
}

// Run hoists every top-level function declaration, then either calls
// "main" (if one was declared) or executes the remaining top-level
// statements directly, matching the example programs' convention of
// wrapping the entry point in "fn main() { ... }" (DESIGN.md, Open
// Question decisions, item 5).
func (ev *Evaluator) Run(prog *parser.Program) (object.Value, *orionerr.Error) {
	prog.Accept(ev)
	return ev.val, ev.err
}

func (ev *Evaluator) VisitProgram(n *parser.Program) {
	ev.curFrame = ev.global
	for _, s := range n.Stmts {
		if fd, ok := s.(*parser.FunctionDecl); ok {
			ev.funcs[fd.Name] = &function.Function{Name: fd.Name, Params: fd.Params, Body: fd.Body}
		}
	}

	if main, ok := ev.funcs["main"]; ok {
		v, err := ev.callFunction(main, nil, n.P)
		ev.val, ev.err = v, err
		return
	}

	for _, s := range n.Stmts {
		if _, ok := s.(*parser.FunctionDecl); ok {
			continue
		}
		switch ev.execStmt(s) {
		case sigReturn:
			ev.err = orionerr.New(orionerr.Runtime, orionerr.ReturnOutsideFunction,
				ev.sigPos.Line, ev.sigPos.Column, "return used outside of any function")
			ev.val = nil
			return
		case sigError:
			ev.val = nil
			return
		}
	}
	ev.val, ev.err = object.NullValue, nil
}

// EvalLine runs one REPL-entered program directly against the persistent
// global frame — no "main" dispatch, since a REPL line is typically a bare
// statement or expression rather than a whole program. Function
// declarations are still registered into the shared function table, so a
// function defined on one line is callable from a later one. It returns
// the value of the last bare expression statement, for echoing.
func (ev *Evaluator) EvalLine(prog *parser.Program) (object.Value, *orionerr.Error) {
	ev.curFrame = ev.global
	last := object.Value(object.NullValue)
	for _, s := range prog.Stmts {
		if fd, ok := s.(*parser.FunctionDecl); ok {
			ev.funcs[fd.Name] = &function.Function{Name: fd.Name, Params: fd.Params, Body: fd.Body}
			continue
		}
		if es, ok := s.(*parser.ExprStmt); ok {
			v, err := ev.evalExpr(es.Expr)
			if err != nil {
				return nil, err
			}
			last = v
			continue
		}
		if ev.execStmt(s) == sigError {
			return nil, ev.err
		}
	}
	return last, nil
}

// callFunction runs fn's body in a fresh frame parented directly at the
// global frame — never at the caller's frame — implementing spec.md
// §4.3's "function activations bind only to the global frame, no closures
// over intermediate scopes".
func (ev *Evaluator) callFunction(fn *function.Function, args []object.Value, callSite parser.Position) (object.Value, *orionerr.Error) {
	if len(args) != len(fn.Params) {
		return nil, orionerr.New(orionerr.Runtime, orionerr.ArityMismatch, callSite.Line, callSite.Column,
			"%s expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}

	frame := env.New(ev.global)
	for i, param := range fn.Params {
		v := args[i]
		if param.Tag != parser.NoTag {
			coerced, err := coerceToTag(param.Tag, v)
			if err != nil {
				return nil, reposition(err, callSite)
			}
			v = coerced
		}
		frame.Declare(param.Name, v)
	}

	parent := ev.curFrame
	ev.curFrame = frame
	for _, stmt := range fn.Body.Stmts {
		if ev.execStmt(stmt) != sigNormal {
			break
		}
	}
	sig, retVal, err := ev.sig, ev.retVal, ev.err
	ev.curFrame = parent

	switch sig {
	case sigReturn:
		return retVal, nil
	case sigError:
		return nil, err
	default:
		return object.NullValue, nil // fell off the end without returning
	}
}

// --- statements --------------------------------------------------------

func (ev *Evaluator) VisitFunctionDecl(n *parser.FunctionDecl) {
	// Also registered here (in addition to Run's hoisting pass) so a
	// function declared inside a block is usable after its declaration
	// point, not just when declared at top level.
	ev.funcs[n.Name] = &function.Function{Name: n.Name, Params: n.Params, Body: n.Body}
	ev.sig = sigNormal
}

func (ev *Evaluator) VisitBlock(n *parser.Block) {
	parent := ev.curFrame
	ev.curFrame = env.New(parent)
	defer func() { ev.curFrame = parent }()

	for _, stmt := range n.Stmts {
		if ev.execStmt(stmt) != sigNormal {
			return
		}
	}
	ev.sig = sigNormal
}

func (ev *Evaluator) VisitIf(n *parser.If) {
	cond, err := ev.evalExpr(n.Cond)
	if err != nil {
		ev.sig, ev.err = sigError, err
		return
	}
	if object.Truthy(cond) {
		ev.sig = ev.execStmt(n.Then)
		return
	}
	if n.Else != nil {
		ev.sig = ev.execStmt(n.Else)
		return
	}
	ev.sig = sigNormal
}

func (ev *Evaluator) VisitWhile(n *parser.While) {
	for {
		cond, err := ev.evalExpr(n.Cond)
		if err != nil {
			ev.sig, ev.err = sigError, err
			return
		}
		if !object.Truthy(cond) {
			ev.sig = sigNormal
			return
		}
		if sig := ev.execStmt(n.Body); sig != sigNormal {
			ev.sig = sig
			return
		}
	}
}

func (ev *Evaluator) VisitFor(n *parser.For) {
	parent := ev.curFrame
	ev.curFrame = env.New(parent)
	defer func() { ev.curFrame = parent }()

	if n.Init != nil {
		if sig := ev.execStmt(n.Init); sig != sigNormal {
			ev.sig = sig
			return
		}
	}
	for {
		if n.Cond != nil {
			cond, err := ev.evalExpr(n.Cond)
			if err != nil {
				ev.sig, ev.err = sigError, err
				return
			}
			if !object.Truthy(cond) {
				ev.sig = sigNormal
				return
			}
		}
		if sig := ev.execStmt(n.Body); sig != sigNormal {
			ev.sig = sig
			return
		}
		if n.Update != nil {
			if sig := ev.execStmt(n.Update); sig != sigNormal {
				ev.sig = sig
				return
			}
		}
	}
}

func (ev *Evaluator) VisitReturn(n *parser.Return) {
	ev.sigPos = n.P
	if n.Value == nil {
		ev.sig, ev.retVal, ev.err = sigReturn, object.NullValue, nil
		return
	}
	v, err := ev.evalExpr(n.Value)
	if err != nil {
		ev.sig, ev.err = sigError, err
		return
	}
	ev.sig, ev.retVal, ev.err = sigReturn, v, nil
}

func (ev *Evaluator) VisitAssign(n *parser.Assign) {
	v, err := ev.evalExpr(n.Expr)
	if err != nil {
		ev.sig, ev.err = sigError, err
		return
	}

	if n.Tag != parser.NoTag {
		coerced, cerr := coerceToTag(n.Tag, v)
		if cerr != nil {
			ev.sig, ev.err = sigError, reposition(cerr, n.P)
			return
		}
		ev.curFrame.Declare(n.Name, coerced)
		ev.sig = sigNormal
		return
	}

	// An untyped assignment never narrows, even when the name was bound
	// with a type tag earlier: only the typed-declaration form above
	// coerces (spec.md §3).
	ev.curFrame.Assign(n.Name, v)
	ev.sig = sigNormal
}

func (ev *Evaluator) VisitExprStmt(n *parser.ExprStmt) {
	_, err := ev.evalExpr(n.Expr)
	if err != nil {
		ev.sig, ev.err = sigError, err
		return
	}
	ev.sig = sigNormal
}

// --- expressions ---------------------------------------------------------

func (ev *Evaluator) VisitNumberLit(n *parser.NumberLit) {
	if n.IsFloat {
		ev.val = object.Float(n.FloatVal)
	} else {
		ev.val = object.Int(n.IntVal)
	}
	ev.err = nil
}

func (ev *Evaluator) VisitStringLit(n *parser.StringLit) {
	ev.val, ev.err = object.String(n.Value), nil
}

// VisitIdent special-cases "true"/"false" ahead of a variable lookup: they
// are reserved keywords at the lexer level, so no binding can ever shadow
// them (see parser.parsePrimary).
func (ev *Evaluator) VisitIdent(n *parser.Ident) {
	switch n.Name {
	case "true":
		ev.val, ev.err = object.Bool(true), nil
		return
	case "false":
		ev.val, ev.err = object.Bool(false), nil
		return
	}
	v, ok := ev.curFrame.LookUp(n.Name)
	if !ok {
		ev.val = nil
		ev.err = orionerr.New(orionerr.Runtime, orionerr.UndefinedVariable, n.P.Line, n.P.Column, "undefined variable %q", n.Name)
		return
	}
	ev.val, ev.err = v, nil
}

func (ev *Evaluator) VisitUnary(n *parser.Unary) {
	operand, err := ev.evalExpr(n.Operand)
	if err != nil {
		ev.val, ev.err = nil, err
		return
	}
	switch n.Op {
	case "not":
		ev.val, ev.err = object.Bool(!object.Truthy(operand)), nil
	case "-":
		switch x := operand.(type) {
		case object.Int:
			ev.val, ev.err = -x, nil
		case object.Float:
			ev.val, ev.err = -x, nil
		default:
			ev.val = nil
			ev.err = orionerr.New(orionerr.Runtime, orionerr.TypeError, n.P.Line, n.P.Column,
				"unary '-' requires a number, got %s", operand.Type())
		}
	}
}

// VisitBinary evaluates "and"/"or" with short-circuit semantics that
// return the last-evaluated operand unmodified (spec.md §4.3: logical
// operators are not coerced to Bool); every other operator evaluates both
// sides and dispatches to applyBinary.
func (ev *Evaluator) VisitBinary(n *parser.Binary) {
	switch n.Op {
	case "and":
		left, err := ev.evalExpr(n.Left)
		if err != nil {
			ev.val, ev.err = nil, err
			return
		}
		if !object.Truthy(left) {
			ev.val, ev.err = left, nil
			return
		}
		ev.val, ev.err = ev.evalExpr(n.Right)
		return
	case "or":
		left, err := ev.evalExpr(n.Left)
		if err != nil {
			ev.val, ev.err = nil, err
			return
		}
		if object.Truthy(left) {
			ev.val, ev.err = left, nil
			return
		}
		ev.val, ev.err = ev.evalExpr(n.Right)
		return
	}

	left, err := ev.evalExpr(n.Left)
	if err != nil {
		ev.val, ev.err = nil, err
		return
	}
	right, err := ev.evalExpr(n.Right)
	if err != nil {
		ev.val, ev.err = nil, err
		return
	}
	ev.val, ev.err = applyBinary(n.Op, left, right, n.P)
}

// VisitCall recognizes the five built-in names at call time rather than
// reserving them at parse time (spec.md §4.3), then falls back to the
// function table populated by VisitProgram/VisitFunctionDecl.
func (ev *Evaluator) VisitCall(n *parser.Call) {
	args := make([]object.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := ev.evalExpr(a)
		if err != nil {
			ev.val, ev.err = nil, err
			return
		}
		args[i] = v
	}

	if builtin, ok := builtins[n.Callee]; ok {
		ev.val, ev.err = builtin(ev, args, n.P)
		return
	}

	fn, ok := ev.funcs[n.Callee]
	if !ok {
		ev.val = nil
		ev.err = orionerr.New(orionerr.Runtime, orionerr.UndefinedFunction, n.P.Line, n.P.Column, "undefined function %q", n.Callee)
		return
	}
	ev.val, ev.err = ev.callFunction(fn, args, n.P)
}

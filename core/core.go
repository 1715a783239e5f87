// Package core exposes the three stage-level contracts spec.md §6 asks for
// (tokenize, parse-to-ast, compile) behind one seam, so both the CLI and
// any future transport can sit on top of identical semantics without
// duplicating lexer/parser/evaluator wiring.
package core

import (
	"io"
	"strings"
	"time"

	"orionlang/orion/eval"
	"orionlang/orion/lexer"
	"orionlang/orion/object"
	"orionlang/orion/orionerr"
	"orionlang/orion/parser"
)

// TokenView is the external token representation: the lexer's internal
// NumberInt/NumberFloat split collapses to a single "NUMBER" kind here,
// matching spec.md §6.2's closed external Kind set.
type TokenView struct {
	Kind   string `json:"kind" yaml:"kind"`
	Lexeme string `json:"lexeme" yaml:"lexeme"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

func externalKind(k lexer.Kind) string {
	if k == lexer.NumberInt || k == lexer.NumberFloat {
		return "NUMBER"
	}
	return string(k)
}

// Tokenize implements spec.md §6's "tokenize(source) -> tokens|err".
func Tokenize(src string) ([]TokenView, *orionerr.Error) {
	toks, err := lexer.All(src)
	if err != nil {
		return nil, err.(*orionerr.Error)
	}
	views := make([]TokenView, len(toks))
	for i, t := range toks {
		views[i] = TokenView{Kind: externalKind(t.Kind), Lexeme: t.Lexeme, Line: t.Line, Column: t.Column}
	}
	return views, nil
}

// ParseToAST implements spec.md §6's "parse_to_ast(source) -> ast_text|err",
// rendering the program with the indented PrintingVisitor style (one line
// per node, children nested under their parent).
func ParseToAST(src string) (string, *orionerr.Error) {
	prog, err := parser.Parse(src)
	if err != nil {
		return "", err.(*orionerr.Error)
	}
	v := newPrintVisitor()
	prog.Accept(v)
	return v.buf.String(), nil
}

// Success is the "result.ok" envelope (spec.md §6).
type Success struct {
	Output      string `json:"output" yaml:"output"`
	ReturnValue string `json:"return_value" yaml:"return_value"`
	CompileMS   int    `json:"compile_ms" yaml:"compile_ms"`
	ExecMS      int    `json:"exec_ms" yaml:"exec_ms"`
}

// Failure is the "result.err" envelope (spec.md §6).
type Failure struct {
	Kind        string `json:"kind" yaml:"kind"`
	Message     string `json:"message" yaml:"message"`
	Line        int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column      int    `json:"column,omitempty" yaml:"column,omitempty"`
	HasPosition bool   `json:"-" yaml:"-"`
}

// Result is exactly one of OK or Err.
type Result struct {
	OK  *Success `json:"ok,omitempty" yaml:"ok,omitempty"`
	Err *Failure `json:"err,omitempty" yaml:"err,omitempty"`
}

func toFailure(err *orionerr.Error) *Failure {
	return &Failure{
		Kind:        string(err.Stage),
		Message:     err.Msg,
		Line:        err.Line,
		Column:      err.Column,
		HasPosition: err.HasPosition,
	}
}

// Compile implements spec.md §6's "compile(source, stdin?) -> result": it
// lexes+parses (the "compile" phase) then evaluates (the "exec" phase),
// timing each independently, and returns whichever envelope the run
// produced.
func Compile(src string, stdin io.Reader) Result {
	if stdin == nil {
		stdin = strings.NewReader("")
	}

	compileStart := time.Now()
	prog, err := parser.Parse(src)
	compileMS := msSince(compileStart)
	if err != nil {
		return Result{Err: toFailure(err.(*orionerr.Error))}
	}

	var out strings.Builder
	ev := eval.New(&out, stdin)

	execStart := time.Now()
	retVal, rerr := ev.Run(prog)
	execMS := msSince(execStart)

	if rerr != nil {
		return Result{Err: toFailure(rerr)}
	}

	return Result{OK: &Success{
		Output:      out.String(),
		ReturnValue: returnValueString(retVal),
		CompileMS:   compileMS,
		ExecMS:      execMS,
	}}
}

func returnValueString(v object.Value) string {
	if v == nil {
		return ""
	}
	return v.ToString()
}

func msSince(start time.Time) int {
	return int(time.Since(start) / time.Millisecond)
}

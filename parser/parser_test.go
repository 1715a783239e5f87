package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"orionlang/orion/orionerr"
)

func TestParse_TypedAndUntypedAssign(t *testing.T) {
	prog, err := Parse(`int x = 1
y = 2
`)
	assert.NoError(t, err)
	assert.Len(t, prog.Stmts, 2)

	a0 := prog.Stmts[0].(*Assign)
	assert.Equal(t, "x", a0.Name)
	assert.Equal(t, IntTag, a0.Tag)

	a1 := prog.Stmts[1].(*Assign)
	assert.Equal(t, "y", a1.Name)
	assert.Equal(t, NoTag, a1.Tag)
}

func TestParse_BinaryPrecedenceIsLeftAssociative(t *testing.T) {
	prog, err := Parse(`1 + 2 * 3 - 4`)
	assert.NoError(t, err)
	stmt := prog.Stmts[0].(*ExprStmt)

	// (1 + (2*3)) - 4 : outermost node is the '-'.
	top := stmt.Expr.(*Binary)
	assert.Equal(t, "-", top.Op)
	left := top.Left.(*Binary)
	assert.Equal(t, "+", left.Op)
	mul := left.Right.(*Binary)
	assert.Equal(t, "*", mul.Op)
}

func TestParse_LogicalPrecedenceBelowComparison(t *testing.T) {
	prog, err := Parse(`1 < 2 and 3 > 4 or 5 == 5`)
	assert.NoError(t, err)
	stmt := prog.Stmts[0].(*ExprStmt)

	top := stmt.Expr.(*Binary)
	assert.Equal(t, "or", top.Op)
	left := top.Left.(*Binary)
	assert.Equal(t, "and", left.Op)
	assert.Equal(t, "<", left.Left.(*Binary).Op)
	assert.Equal(t, ">", left.Right.(*Binary).Op)
}

func TestParse_UnaryAndParentheses(t *testing.T) {
	prog, err := Parse(`-(1 + 2) * not true`)
	assert.NoError(t, err)
	stmt := prog.Stmts[0].(*ExprStmt)

	top := stmt.Expr.(*Binary)
	assert.Equal(t, "*", top.Op)
	neg := top.Left.(*Unary)
	assert.Equal(t, "-", neg.Op)
	_ = neg.Operand.(*Binary) // the parenthesized "1 + 2"
	not := top.Right.(*Unary)
	assert.Equal(t, "not", not.Op)
	assert.Equal(t, "true", not.Operand.(*Ident).Name)
}

func TestParse_CallAndBareIdent(t *testing.T) {
	prog, err := Parse(`out(x, 1 + 2)
y
`)
	assert.NoError(t, err)

	call := prog.Stmts[0].(*ExprStmt).Expr.(*Call)
	assert.Equal(t, "out", call.Callee)
	assert.Len(t, call.Args, 2)

	bare := prog.Stmts[1].(*ExprStmt).Expr.(*Ident)
	assert.Equal(t, "y", bare.Name)
}

func TestParse_IfElse(t *testing.T) {
	prog, err := Parse(`if x > 0 {
	out(x)
} else {
	out(0)
}
`)
	assert.NoError(t, err)
	ifStmt := prog.Stmts[0].(*If)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParse_IfWithoutElse(t *testing.T) {
	prog, err := Parse(`if x > 0 {
	out(x)
}
`)
	assert.NoError(t, err)
	ifStmt := prog.Stmts[0].(*If)
	assert.Nil(t, ifStmt.Else)
}

func TestParse_While(t *testing.T) {
	prog, err := Parse(`while x < 10 {
	x = x + 1
}
`)
	assert.NoError(t, err)
	w := prog.Stmts[0].(*While)
	assert.NotNil(t, w.Cond)
	assert.Len(t, w.Body.Stmts, 1)
}

func TestParse_ForMinimalForm(t *testing.T) {
	prog, err := Parse(`for {
	out(1)
}
`)
	assert.NoError(t, err)
	f := prog.Stmts[0].(*For)
	assert.Nil(t, f.Init)
	assert.Nil(t, f.Cond)
	assert.Nil(t, f.Update)
}

func TestParse_ForCStyleForm(t *testing.T) {
	prog, err := Parse(`for int i = 0; i < 10; i = i + 1 {
	out(i)
}
`)
	assert.NoError(t, err)
	f := prog.Stmts[0].(*For)
	assert.NotNil(t, f.Init)
	assert.NotNil(t, f.Cond)
	assert.NotNil(t, f.Update)
	assert.Equal(t, "i", f.Init.(*Assign).Name)
}

func TestParse_FunctionDeclWithTypedParams(t *testing.T) {
	prog, err := Parse(`fn add(a int, b int) {
	return a + b
}
`)
	assert.NoError(t, err)
	fn := prog.Stmts[0].(*FunctionDecl)
	assert.Equal(t, "add", fn.Name)
	assert.Len(t, fn.Params, 2)
	assert.Equal(t, IntTag, fn.Params[0].Tag)
	ret := fn.Body.Stmts[0].(*Return)
	assert.NotNil(t, ret.Value)
}

func TestParse_MainFunctionAndBareReturn(t *testing.T) {
	prog, err := Parse(`fn main() {
	return
}
`)
	assert.NoError(t, err)
	fn := prog.Stmts[0].(*FunctionDecl)
	assert.Equal(t, "main", fn.Name)
	ret := fn.Body.Stmts[0].(*Return)
	assert.Nil(t, ret.Value)
}

func TestParse_HaltsAtFirstSyntaxError(t *testing.T) {
	_, err := Parse(`x = )`)
	assert.Error(t, err)
	oerr, ok := err.(*orionerr.Error)
	assert.True(t, ok)
	assert.Equal(t, orionerr.Parse, oerr.Stage)
}

func TestParse_UnterminatedBlockIsExpectedClosing(t *testing.T) {
	_, err := Parse(`if x { out(x)`)
	assert.Error(t, err)
	oerr, ok := err.(*orionerr.Error)
	assert.True(t, ok)
	assert.Equal(t, orionerr.ExpectedClosing, oerr.Reason)
}

func TestParse_NewlinesNeverBreakLookahead(t *testing.T) {
	prog, err := Parse("1 +\n2")
	assert.NoError(t, err)
	stmt := prog.Stmts[0].(*ExprStmt)
	bin := stmt.Expr.(*Binary)
	assert.Equal(t, "+", bin.Op)
}

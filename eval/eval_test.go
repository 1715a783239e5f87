package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orionlang/orion/object"
	"orionlang/orion/orionerr"
	"orionlang/orion/parser"
)

func run(t *testing.T, src string, stdin string) (string, object.Value, *orionerr.Error) {
	t.Helper()
	prog, err := parser.Parse(src)
	require.NoError(t, err)

	var out bytes.Buffer
	ev := New(&out, strings.NewReader(stdin))
	v, rerr := ev.Run(prog)
	return out.String(), v, rerr
}

func TestEval_HelloWorld(t *testing.T) {
	out, _, err := run(t, `fn main() {
	out("hello, world")
}
`, "")
	assert.Nil(t, err)
	assert.Equal(t, "hello, world\n", out)
}

func TestEval_ArithmeticAndStringCoercion(t *testing.T) {
	out, _, err := run(t, `fn main() {
	out("total: " + str(1 + 2 * 3))
}
`, "")
	assert.Nil(t, err)
	assert.Equal(t, "total: 7\n", out)
}

func TestEval_Conditional(t *testing.T) {
	out, _, err := run(t, `fn main() {
	int x = 5
	if x > 3 {
		out("big")
	} else {
		out("small")
	}
}
`, "")
	assert.Nil(t, err)
	assert.Equal(t, "big\n", out)
}

func TestEval_Loop(t *testing.T) {
	out, _, err := run(t, `fn main() {
	int i = 0
	while i < 3 {
		out(i)
		i = i + 1
	}
}
`, "")
	assert.Nil(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestEval_FunctionCallWithReturn(t *testing.T) {
	out, _, err := run(t, `fn add(a int, b int) {
	return a + b
}
fn main() {
	out(add(2, 3))
}
`, "")
	assert.Nil(t, err)
	assert.Equal(t, "5\n", out)
}

func TestEval_DivisionByZero(t *testing.T) {
	_, _, err := run(t, `fn main() {
	int x = 1 / 0
}
`, "")
	require.NotNil(t, err)
	assert.Equal(t, orionerr.DivisionByZero, err.Reason)
}

func TestEval_CStyleForLoop(t *testing.T) {
	out, _, err := run(t, `fn main() {
	for int i = 0; i < 3; i = i + 1 {
		out(i)
	}
}
`, "")
	assert.Nil(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestEval_ShortCircuitAndDoesNotEvaluateRight(t *testing.T) {
	out, _, err := run(t, `fn sideEffect() {
	out("evaluated")
	return true
}
fn main() {
	false and sideEffect()
}
`, "")
	assert.Nil(t, err)
	assert.Equal(t, "", out)
}

func TestEval_ShortCircuitOrReturnsLastOperand(t *testing.T) {
	_, v, err := run(t, `fn main() {
	return 0 or 7
}
`, "")
	assert.Nil(t, err)
	assert.Equal(t, object.Int(7), v)
}

func TestEval_NumericEqualityAcrossIntAndFloat(t *testing.T) {
	_, v, err := run(t, `fn main() {
	return 1 == 1.0
}
`, "")
	assert.Nil(t, err)
	assert.Equal(t, object.Bool(true), v)
}

func TestEval_IntDivisionTruncatesTowardZero(t *testing.T) {
	_, v, err := run(t, `fn main() {
	return 7 / 2
}
`, "")
	assert.Nil(t, err)
	assert.Equal(t, object.Int(3), v)
}

func TestEval_FloatOperandPromotesDivision(t *testing.T) {
	_, v, err := run(t, `fn main() {
	return 7 / 2.0
}
`, "")
	assert.Nil(t, err)
	assert.Equal(t, object.Float(3.5), v)
}

func TestEval_ScopeShadowing(t *testing.T) {
	out, _, err := run(t, `fn main() {
	int x = 1
	if true {
		int x = 2
		out(x)
	}
	out(x)
}
`, "")
	assert.Nil(t, err)
	assert.Equal(t, "2\n1\n", out)
}

func TestEval_UndefinedVariable(t *testing.T) {
	_, _, err := run(t, `fn main() {
	out(missing)
}
`, "")
	require.NotNil(t, err)
	assert.Equal(t, orionerr.UndefinedVariable, err.Reason)
}

func TestEval_UndefinedFunction(t *testing.T) {
	_, _, err := run(t, `fn main() {
	nope()
}
`, "")
	require.NotNil(t, err)
	assert.Equal(t, orionerr.UndefinedFunction, err.Reason)
}

func TestEval_ArityMismatch(t *testing.T) {
	_, _, err := run(t, `fn add(a int, b int) {
	return a + b
}
fn main() {
	add(1)
}
`, "")
	require.NotNil(t, err)
	assert.Equal(t, orionerr.ArityMismatch, err.Reason)
}

func TestEval_OutRejectsWrongArity(t *testing.T) {
	_, _, err := run(t, `fn main() {
	out("a", "b")
}
`, "")
	require.NotNil(t, err)
	assert.Equal(t, orionerr.ArityMismatch, err.Reason)

	_, _, err = run(t, `fn main() {
	out()
}
`, "")
	require.NotNil(t, err)
	assert.Equal(t, orionerr.ArityMismatch, err.Reason)
}

func TestEval_InputReadsFromReader(t *testing.T) {
	out, _, err := run(t, `fn main() {
	string name = input("name: ")
	out("hi " + name)
}
`, "ava\n")
	assert.Nil(t, err)
	assert.Equal(t, "name: hi ava\n", out)
}

func TestEval_TypedDeclarationNarrowsFloatToInt(t *testing.T) {
	_, v, err := run(t, `fn main() {
	int x = 3.9
	return x
}
`, "")
	assert.Nil(t, err)
	assert.Equal(t, object.Int(3), v)
}

func TestEval_ReturnOutsideFunctionIsAnError(t *testing.T) {
	_, _, err := run(t, `return 1`, "")
	require.NotNil(t, err)
	assert.Equal(t, orionerr.ReturnOutsideFunction, err.Reason)
}

func TestEval_UntypedReassignmentDoesNotRenarrow(t *testing.T) {
	out, _, err := run(t, `fn main() {
	int x = 10
	x = 3.5
	out(str(x))
}
`, "")
	assert.Nil(t, err)
	assert.Equal(t, "3.5\n", out)
}

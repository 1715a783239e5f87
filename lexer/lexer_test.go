package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"orionlang/orion/orionerr"
)

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestAll_Operators(t *testing.T) {
	toks, err := All(`== != <= >= && || = < > + - * / %`)
	assert.NoError(t, err)
	assert.Equal(t, []Kind{
		Equal, NotEqual, LessEqual, GreaterEqual, And, Or,
		Assign, LessThan, GreaterThan, Plus, Minus, Multiply, Divide, Modulo,
		EOF,
	}, kinds(toks))
}

func TestAll_NumbersIntAndFloat(t *testing.T) {
	toks, err := All(`42 3.14 0 10.`)
	assert.NoError(t, err)
	assert.Equal(t, NumberInt, toks[0].Kind)
	assert.Equal(t, "42", toks[0].Lexeme)
	assert.Equal(t, NumberFloat, toks[1].Kind)
	assert.Equal(t, "3.14", toks[1].Lexeme)
	assert.Equal(t, NumberInt, toks[2].Kind)
	// "10." has no fractional digits: the dot is not consumed.
	assert.Equal(t, NumberInt, toks[3].Kind)
	assert.Equal(t, "10", toks[3].Lexeme)
	assert.Equal(t, Dot, toks[4].Kind)
}

func TestAll_KeywordsAndIdentifiers(t *testing.T) {
	toks, err := All(`fn main if else while for return int float string bool and or not true false myVar _x9`)
	assert.NoError(t, err)
	want := []Kind{Fn, Main, If, Else, While, For, Return, IntType, Float, StrType, BoolType,
		And, Or, Not, True, False, Identifier, Identifier, EOF}
	assert.Equal(t, want, kinds(toks))
}

func TestAll_StringEscapes(t *testing.T) {
	toks, err := All(`"hello\nworld" 'a\'b'`)
	assert.NoError(t, err)
	assert.Equal(t, "hello\nworld", toks[0].Lexeme)
	assert.Equal(t, "a'b", toks[1].Lexeme)
}

func TestAll_UnterminatedString(t *testing.T) {
	_, err := All(`"unterminated`)
	assert.Error(t, err)
	oerr, ok := err.(*orionerr.Error)
	assert.True(t, ok)
	assert.Equal(t, orionerr.Lex, oerr.Stage)
	assert.Equal(t, orionerr.UnterminatedString, oerr.Reason)
}

func TestAll_UnterminatedBlockComment(t *testing.T) {
	_, err := All("/* never closed")
	assert.Error(t, err)
	oerr, ok := err.(*orionerr.Error)
	assert.True(t, ok)
	assert.Equal(t, orionerr.UnterminatedComment, oerr.Reason)
}

func TestAll_LineCommentsAreSkipped(t *testing.T) {
	toks, err := All("1 // a comment\n2")
	assert.NoError(t, err)
	assert.Equal(t, []Kind{NumberInt, NEWLINE, NumberInt, EOF}, kinds(toks))
}

func TestAll_UnexpectedCharacter(t *testing.T) {
	_, err := All(`@`)
	assert.Error(t, err)
	oerr, ok := err.(*orionerr.Error)
	assert.True(t, ok)
	assert.Equal(t, orionerr.UnexpectedCharacter, oerr.Reason)
}

func TestAll_EndsWithExactlyOneEOF(t *testing.T) {
	toks, err := All(`1 + 1`)
	assert.NoError(t, err)
	assert.Equal(t, EOF, toks[len(toks)-1].Kind)
	for _, tok := range toks[:len(toks)-1] {
		assert.NotEqual(t, EOF, tok.Kind)
	}
}

func TestAll_PositionsTrackLineAndColumn(t *testing.T) {
	toks, err := All("ab\ncd")
	assert.NoError(t, err)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 1, toks[0].Column)
	// "cd" starts on line 2, column 1.
	var cd Token
	for _, tok := range toks {
		if tok.Lexeme == "cd" {
			cd = tok
		}
	}
	assert.Equal(t, 2, cd.Line)
	assert.Equal(t, 1, cd.Column)
}

package lexer

import (
	"strings"

	"orionlang/orion/orionerr"
)

// Lexer scans Orion source text into tokens one at a time. It is stateless
// apart from the scan cursor, matching spec.md §2: "Stateless apart from the
// scan cursor."
type Lexer struct {
	src     string
	current byte
	pos     int
	length  int
	line    int
	column  int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	lex := &Lexer{
		src:    src,
		pos:    0,
		length: len(src),
		line:   1,
		column: 1,
	}
	if lex.length > 0 {
		lex.current = src[0]
	}
	return lex
}

// peek returns the byte after the current one without consuming it, or 0 at
// end of source.
func (lex *Lexer) peek() byte {
	if lex.pos+1 >= lex.length {
		return 0
	}
	return lex.src[lex.pos+1]
}

// advance consumes the current byte and moves the cursor forward, tracking
// line and column. Callers record a token's position before advancing, so
// the NEWLINE token keeps the position of the newline it represents.
func (lex *Lexer) advance() {
	if lex.current == '\n' {
		lex.line++
		lex.column = 1
	} else {
		lex.column++
	}
	lex.pos++
	if lex.pos >= lex.length {
		lex.current = 0
		lex.pos = lex.length
	} else {
		lex.current = lex.src[lex.pos]
	}
}

// skipInsignificant consumes spaces, tabs, carriage returns, and comments.
// Carriage returns are dropped per spec.md §6 ("the \r is skipped"); '\n'
// is left for the caller to turn into a NEWLINE token.
func (lex *Lexer) skipInsignificant() error {
	for {
		switch {
		case lex.current == ' ' || lex.current == '\t' || lex.current == '\r':
			lex.advance()
		case lex.current == '/' && lex.peek() == '/':
			for lex.current != '\n' && lex.current != 0 {
				lex.advance()
			}
		case lex.current == '/' && lex.peek() == '*':
			startLine, startCol := lex.line, lex.column
			lex.advance()
			lex.advance()
			closed := false
			for lex.current != 0 {
				if lex.current == '*' && lex.peek() == '/' {
					lex.advance()
					lex.advance()
					closed = true
					break
				}
				lex.advance()
			}
			if !closed {
				return orionerr.New(orionerr.Lex, orionerr.UnterminatedComment, startLine, startCol,
					"block comment starting here is never closed")
			}
		default:
			return nil
		}
	}
}

// Next scans and returns the next token, or an *orionerr.Error (Stage ==
// orionerr.Lex) if the source cannot be tokenized further.
func (lex *Lexer) Next() (Token, error) {
	if err := lex.skipInsignificant(); err != nil {
		return Token{}, err
	}

	line, col := lex.line, lex.column

	if lex.current == '\n' {
		lex.advance()
		return Token{Kind: NEWLINE, Lexeme: "\n", Line: line, Column: col}, nil
	}
	if lex.current == 0 {
		return Token{Kind: EOF, Lexeme: "", Line: line, Column: col}, nil
	}

	switch {
	case isDigit(lex.current):
		return lex.readNumber()
	case isAlpha(lex.current) || lex.current == '_':
		return lex.readIdentifier()
	case lex.current == '"' || lex.current == '\'':
		return lex.readString()
	}

	return lex.readOperatorOrPunctuation(line, col)
}

// readOperatorOrPunctuation handles the fixed set of operator and
// punctuation tokens, trying every two-character form before falling back to
// its single-character prefix (maximal munch, spec.md §4.1). '!', '&' and '|'
// have no single-character token: alone, each is an UnexpectedCharacter.
func (lex *Lexer) readOperatorOrPunctuation(line, col int) (Token, error) {
	c := lex.current
	two := func(second byte, kind Kind, lexeme string) (Token, bool) {
		if lex.peek() == second {
			lex.advance()
			lex.advance()
			return Token{Kind: kind, Lexeme: lexeme, Line: line, Column: col}, true
		}
		return Token{}, false
	}

	switch c {
	case '=':
		if tok, ok := two('=', Equal, "=="); ok {
			return tok, nil
		}
		lex.advance()
		return Token{Kind: Assign, Lexeme: "=", Line: line, Column: col}, nil
	case '!':
		if tok, ok := two('=', NotEqual, "!="); ok {
			return tok, nil
		}
		return Token{}, orionerr.New(orionerr.Lex, orionerr.UnexpectedCharacter, line, col, "unexpected character '!'")
	case '<':
		if tok, ok := two('=', LessEqual, "<="); ok {
			return tok, nil
		}
		lex.advance()
		return Token{Kind: LessThan, Lexeme: "<", Line: line, Column: col}, nil
	case '>':
		if tok, ok := two('=', GreaterEqual, ">="); ok {
			return tok, nil
		}
		lex.advance()
		return Token{Kind: GreaterThan, Lexeme: ">", Line: line, Column: col}, nil
	case '&':
		if tok, ok := two('&', And, "&&"); ok {
			return tok, nil
		}
		return Token{}, orionerr.New(orionerr.Lex, orionerr.UnexpectedCharacter, line, col, "unexpected character '&'")
	case '|':
		if tok, ok := two('|', Or, "||"); ok {
			return tok, nil
		}
		return Token{}, orionerr.New(orionerr.Lex, orionerr.UnexpectedCharacter, line, col, "unexpected character '|'")
	case '+':
		lex.advance()
		return Token{Kind: Plus, Lexeme: "+", Line: line, Column: col}, nil
	case '-':
		lex.advance()
		return Token{Kind: Minus, Lexeme: "-", Line: line, Column: col}, nil
	case '*':
		lex.advance()
		return Token{Kind: Multiply, Lexeme: "*", Line: line, Column: col}, nil
	case '/':
		lex.advance()
		return Token{Kind: Divide, Lexeme: "/", Line: line, Column: col}, nil
	case '%':
		lex.advance()
		return Token{Kind: Modulo, Lexeme: "%", Line: line, Column: col}, nil
	case '(':
		lex.advance()
		return Token{Kind: LParen, Lexeme: "(", Line: line, Column: col}, nil
	case ')':
		lex.advance()
		return Token{Kind: RParen, Lexeme: ")", Line: line, Column: col}, nil
	case '{':
		lex.advance()
		return Token{Kind: LBrace, Lexeme: "{", Line: line, Column: col}, nil
	case '}':
		lex.advance()
		return Token{Kind: RBrace, Lexeme: "}", Line: line, Column: col}, nil
	case '[':
		lex.advance()
		return Token{Kind: LBracket, Lexeme: "[", Line: line, Column: col}, nil
	case ']':
		lex.advance()
		return Token{Kind: RBracket, Lexeme: "]", Line: line, Column: col}, nil
	case ',':
		lex.advance()
		return Token{Kind: Comma, Lexeme: ",", Line: line, Column: col}, nil
	case ';':
		lex.advance()
		return Token{Kind: Semi, Lexeme: ";", Line: line, Column: col}, nil
	case '.':
		lex.advance()
		return Token{Kind: Dot, Lexeme: ".", Line: line, Column: col}, nil
	}

	return Token{}, orionerr.New(orionerr.Lex, orionerr.UnexpectedCharacter, line, col, "unexpected character %q", c)
}

// readString scans a single- or double-quoted string literal, processing
// the escapes listed in spec.md §4.1.
func (lex *Lexer) readString() (Token, error) {
	line, col := lex.line, lex.column
	quote := lex.current
	lex.advance()

	var b strings.Builder
	for lex.current != quote {
		if lex.current == 0 {
			return Token{}, orionerr.New(orionerr.Lex, orionerr.UnterminatedString, line, col,
				"string literal starting here is never closed")
		}
		if lex.current == '\\' {
			lex.advance()
			if lex.current == 0 {
				return Token{}, orionerr.New(orionerr.Lex, orionerr.UnterminatedString, line, col,
					"string literal starting here is never closed")
			}
			b.WriteByte(escape(lex.current))
			lex.advance()
			continue
		}
		b.WriteByte(lex.current)
		lex.advance()
	}
	lex.advance() // closing quote

	return Token{Kind: String, Lexeme: b.String(), Line: line, Column: col}, nil
}

// escape maps the character following a backslash to its literal byte.
// Anything not in the recognized set passes through unchanged, per
// spec.md §4.1 ("any other \x passes x through literally").
func escape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '\\':
		return '\\'
	case '"':
		return '"'
	case '\'':
		return '\''
	default:
		return c
	}
}

// readNumber scans an integer or float literal. A trailing '.' with no
// fractional digits is left unconsumed (spec.md §4.1).
func (lex *Lexer) readNumber() (Token, error) {
	line, col := lex.line, lex.column
	start := lex.pos

	for isDigit(lex.current) {
		lex.advance()
	}

	isFloat := false
	if lex.current == '.' && isDigit(lex.peek()) {
		isFloat = true
		lex.advance() // consume '.'
		for isDigit(lex.current) {
			lex.advance()
		}
	}

	lexeme := lex.src[start:lex.pos]
	if isFloat {
		return Token{Kind: NumberFloat, Lexeme: lexeme, Line: line, Column: col}, nil
	}
	return Token{Kind: NumberInt, Lexeme: lexeme, Line: line, Column: col}, nil
}

// readIdentifier scans [A-Za-z_][A-Za-z0-9_]* and classifies it as a
// keyword or a plain identifier.
func (lex *Lexer) readIdentifier() (Token, error) {
	line, col := lex.line, lex.column
	start := lex.pos

	for isAlpha(lex.current) || isDigit(lex.current) || lex.current == '_' {
		lex.advance()
	}

	lexeme := lex.src[start:lex.pos]
	return Token{Kind: lookupIdentifier(lexeme), Lexeme: lexeme, Line: line, Column: col}, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

// All scans the entire source and returns every token up to and including a
// terminal EOF. It is the batch entry point used by core.Tokenize and by the
// parser's token-stream construction.
func All(src string) ([]Token, error) {
	lex := New(src)
	tokens := make([]Token, 0, len(src)/4+1)
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens, nil
		}
	}
}

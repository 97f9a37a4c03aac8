package lexer

import (
	"fmt"
)

// Position locates a lexical unit in the source text.
type Position struct {
	Offset int // Byte offset, 0-based
	Line   int // 1-based
	Column int // 1-based, counted in runes
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string

	op    Operator
	value int32
	err   error

	pos Position
}

// NewToken creates a lexical unit that carries no value, such as a
// parenthesis or an unrecognized word.
func NewToken(tt TokenType, lexeme string, pos Position) Token {
	return Token{
		tt:     tt,
		lexeme: lexeme,
		pos:    pos,
	}
}

// NewInteger creates an integer lexical unit
func NewInteger(v int32, lexeme string, pos Position) Token {
	return Token{
		tt:     TokenInteger,
		lexeme: lexeme,
		value:  v,
		pos:    pos,
	}
}

// NewOperator creates an operator lexical unit
func NewOperator(op Operator, pos Position) Token {
	return Token{
		tt:     TokenOperator,
		lexeme: op.Symbol(),
		op:     op,
		pos:    pos,
	}
}

// NewUnrecognized creates a lexical unit for a word that could not be
// classified, err tells why.
func NewUnrecognized(lexeme string, err error, pos Position) Token {
	return Token{
		tt:     TokenUnrecognized,
		lexeme: lexeme,
		err:    err,
		pos:    pos,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

// Pos returns the position of the lexical unit
func (t Token) Pos() Position {
	return t.pos
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Operator returns the operator kind of a TokenOperator.
func (t Token) Operator() Operator {
	return t.op
}

// Int returns the value of a TokenInteger.
func (t Token) Int() int32 {
	return t.value
}

// Err returns the reason why the token is unrecognized, or nil.
func (t Token) Err() error {
	if t.tt != TokenUnrecognized {
		return nil
	}
	if t.err == nil {
		return ErrUnknownSymbol
	}
	return t.err
}

// Equal reports whether both tokens are structurally equal. Positions are
// not compared.
func (t Token) Equal(u Token) bool {
	if t.tt != u.tt {
		return false
	}
	switch t.tt {
	case TokenInteger:
		return t.value == u.value
	case TokenOperator:
		return t.op == u.op
	case TokenUnrecognized:
		return t.lexeme == u.lexeme
	}
	return true
}

func (t Token) String() string {
	switch t.tt {
	case TokenInteger:
		return fmt.Sprintf("%v(%d)", t.tt, t.value)
	case TokenOperator:
		return fmt.Sprintf("%v(%v)", t.tt, t.op)
	case TokenUnrecognized:
		return fmt.Sprintf("%v(%q)", t.tt, t.lexeme)
	}
	return t.tt.String()
}

package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/prefix-expr/lexer"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrTrailingTokens  = errors.New("trailing tokens after group")
	ErrUnmatchedParen  = errors.New("unmatched closing parenthesis")
	ErrMaxDepth        = errors.New("maximum nesting depth exceeded")
)

// Error is a parse error attached to the token where it was detected.
type Error struct {
	Err   error
	Token lexer.Token
}

func (e *Error) Error() string {
	pos := e.Token.Pos()
	if reason := e.Token.Err(); reason != nil && errors.Is(e.Err, ErrUnexpectedToken) {
		return fmt.Sprintf("parse error at line %d, column %d: %v %q: %v", pos.Line, pos.Column, e.Err, e.Token.Text(), reason)
	}
	if e.Token.Text() == "" {
		return fmt.Sprintf("parse error at line %d, column %d: %v", pos.Line, pos.Column, e.Err)
	}
	return fmt.Sprintf("parse error at line %d, column %d: %v (near %q)", pos.Line, pos.Column, e.Err, e.Token.Text())
}

// Unwrap returns both the parse error and, for unrecognized tokens, the
// lexical reason, so errors.Is matches either of them.
func (e *Error) Unwrap() []error {
	if reason := e.Token.Err(); reason != nil {
		return []error{e.Err, reason}
	}
	return []error{e.Err}
}

func newError(err error, tok lexer.Token) error {
	return &Error{Err: err, Token: tok}
}

// IsIncomplete reports whether err was caused by input that ended inside a
// group, meaning more input could complete it.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrUnexpectedEOF)
}

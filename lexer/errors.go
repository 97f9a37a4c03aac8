package lexer

import (
	"errors"
)

// Reasons attached to unrecognized tokens, see Token.Err.
var (
	ErrUnknownSymbol       = errors.New("unknown symbol")
	ErrUnsupportedOperator = errors.New("unsupported operator")
	ErrMalformedInteger    = errors.New("malformed integer literal")
	ErrIntegerRange        = errors.New("integer literal out of range")
)

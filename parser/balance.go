package parser

import (
	"github.com/xiam/prefix-expr/lexer"
)

// checkBalance matches every parenthesis. It reports the first closing
// parenthesis that has no opening one, or else the innermost group that is
// still open at the end of the input.
func checkBalance(tokens []lexer.Token) error {
	open := []int{}
	for i, tok := range tokens {
		switch tok.Type() {
		case lexer.TokenLeftParen:
			open = append(open, i)
		case lexer.TokenRightParen:
			if len(open) == 0 {
				return newError(ErrUnmatchedParen, tok)
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		return newError(ErrUnexpectedEOF, tokens[open[len(open)-1]])
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/xiam/prefix-expr/lexer"
)

func main() {
	input := `
		(+ 100
			(+ 300 400)
			(- 5 six)
		)
	`

	tokens := lexer.Tokenize(input)

	for i, tok := range tokens {
		pos := tok.Pos()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n", i, tt, pos.Line, pos.Column, tok.Text())
		if err := tok.Err(); err != nil {
			fmt.Printf("\t-> %v\n", err)
		}
		fmt.Println()
	}
}

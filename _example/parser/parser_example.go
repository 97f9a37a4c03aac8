package main

import (
	"log"

	"github.com/xiam/prefix-expr/ast"
	"github.com/xiam/prefix-expr/parser"
)

func main() {
	input := `(+ (+ 200 300) (+ (900 1000) 500))`

	forest, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(forest)
}

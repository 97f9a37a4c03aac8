package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/prefix-expr/ast"
	"github.com/xiam/prefix-expr/parser"
)

func printTree(forest ast.Forest) {
	_ = ast.Walk(forest, func(node *ast.Node, depth int, leave bool) error {
		indent := strings.Repeat("  ", depth)
		if node.IsGroup() {
			if leave {
				fmt.Printf("%s</%s>\n", indent, node.Type())
			} else {
				fmt.Printf("%s<%s>\n", indent, node.Type())
			}
			return nil
		}
		tok := node.Token()
		fmt.Printf("%s<%s type=%q>%s</%s>\n", indent, node.Type(), tok.Type(), tok.Text(), node.Type())
		return nil
	})
}

func main() {
	input := `(+ 1 2) (+ 100 (+ 300 400))`

	forest, err := parser.New(parser.Options{Strict: true}).Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	printTree(forest)
}

package main

import (
	"os"

	"github.com/xiam/prefix-expr/cmd/prefixexpr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

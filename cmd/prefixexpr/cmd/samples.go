package cmd

import (
	"github.com/spf13/cobra"

	prefixexpr "github.com/xiam/prefix-expr"
)

var samples = []string{
	"( + 500 700 )",
	"(+ 100 200)",
	"(+ 100 (+ 300 400))",
	"(+ (+ 300 400) + 100)",
	"(+ (+ 200 300) (+ 400 500))",
	"(+ (+ 200 300) (+ (900 1000) 500))",
}

func newSamplesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "Parse a built-in set of expressions",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newOutput(a.cfg.Output)
			w := cmd.OutOrStdout()

			for _, res := range prefixexpr.ParseAll(samples, a.parserOptions()) {
				out.printInput(w, res.Input)
				if res.Err != nil {
					out.printError(w, res.Err)
					continue
				}
				if err := out.write(w, res.Forest); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

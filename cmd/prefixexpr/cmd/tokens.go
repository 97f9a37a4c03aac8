package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xiam/prefix-expr/lexer"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [expression...]",
		Short: "Print the tokens of an expression",
		Long: `Print one line per token with its position, kind and, for unrecognized
words, the reason they were rejected. Arguments are joined with spaces, stdin
is read when there are none.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := strings.Join(args, " ")
			if len(args) == 0 {
				buf, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				in = string(buf)
			}

			tokens := lexer.Tokenize(in)
			a.logger.Printf("%d token(s)", len(tokens))

			w := cmd.OutOrStdout()
			for _, tok := range tokens {
				if err := tok.Err(); err != nil {
					fmt.Fprintf(w, "%v\t%v\t%v\n", tok.Pos(), tok, err)
					continue
				}
				fmt.Fprintf(w, "%v\t%v\n", tok.Pos(), tok)
			}
			return nil
		},
	}
}

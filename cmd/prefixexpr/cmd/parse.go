package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	prefixexpr "github.com/xiam/prefix-expr"
	"github.com/xiam/prefix-expr/internal/config"
)

var errFailedInputs = errors.New("some inputs could not be parsed")

func newParseCmd(a *app) *cobra.Command {
	var (
		file   string
		format string
		color  bool
	)

	cmd := &cobra.Command{
		Use:   "parse [expression...]",
		Short: "Parse expressions and print their trees",
		Long: `Parse every expression given as argument on its own. Without arguments the
expression is read from --file or, if that is not set either, from stdin.`,
		Example: `  prefixexpr parse "(+ 100 (+ 300 400))"
  echo "(+ 1 2)" | prefixexpr parse --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("format") {
				a.cfg.Output.Format = format
			}
			if flags.Changed("color") {
				a.cfg.Output.Color = color
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			out := newOutput(a.cfg.Output)

			if len(args) > 0 {
				return parseArgs(cmd, a, out, args)
			}

			var r io.Reader = cmd.InOrStdin()
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			reader := prefixexpr.NewReader(r)
			reader.SetOptions(a.parserOptions())

			forest, err := reader.Parse()
			if err != nil {
				return err
			}
			return out.write(cmd.OutOrStdout(), forest)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the expression from a file")
	cmd.Flags().StringVar(&format, "format", config.OutputText, "output format: text, encode, yaml or debug")
	cmd.Flags().BoolVar(&color, "color", false, "colorize text output")

	return cmd
}

func parseArgs(cmd *cobra.Command, a *app, out *output, args []string) error {
	w := cmd.OutOrStdout()

	failed := 0
	for _, res := range prefixexpr.ParseAll(args, a.parserOptions()) {
		if len(args) > 1 {
			out.printInput(w, res.Input)
		}
		if res.Err != nil {
			failed++
			out.printError(cmd.ErrOrStderr(), res.Err)
			continue
		}
		if err := out.write(w, res.Forest); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errFailedInputs, failed, len(args))
	}
	return nil
}

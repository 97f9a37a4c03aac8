// Package cmd implements the prefixexpr command line tool.
package cmd

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/xiam/prefix-expr/internal/config"
	"github.com/xiam/prefix-expr/parser"
)

// app holds the flags shared by every command and the configuration they
// resolve to.
type app struct {
	cfgFile  string
	verbose  bool
	strict   bool
	maxDepth int

	cfg    *config.Config
	logger *log.Logger
}

// Execute runs the root command with the arguments of the process.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "prefixexpr",
		Short: "Parse parenthesized prefix expressions",
		Long: `prefixexpr reads expressions such as "(+ 100 (+ 300 400))" and prints
the tree they describe.

Only integers, the + operator and parentheses are recognized, any other word
is reported as an error.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log parser activity to stderr")
	rootCmd.PersistentFlags().BoolVar(&a.strict, "strict", false, "reject unbalanced parentheses and dropped tokens")
	rootCmd.PersistentFlags().IntVar(&a.maxDepth, "max-depth", parser.DefaultMaxDepth, "maximum group nesting, negative for no limit")

	rootCmd.AddCommand(
		newParseCmd(a),
		newTokensCmd(a),
		newReplCmd(a),
		newSamplesCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// load reads the config file, if any, and applies the flags that were set
// explicitly on top of it.
func (a *app) load(cmd *cobra.Command) error {
	a.cfg = config.Default()
	if a.cfgFile != "" {
		cfg, err := config.Load(a.cfgFile)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	flags := cmd.Flags()
	if flags.Changed("strict") {
		a.cfg.Parser.Strict = a.strict
	}
	if flags.Changed("max-depth") {
		a.cfg.Parser.MaxDepth = a.maxDepth
	}

	a.logger = log.New(io.Discard, "", 0)
	if a.verbose {
		a.logger = log.New(cmd.ErrOrStderr(), "prefixexpr: ", log.LstdFlags)
	}
	return nil
}

func (a *app) parserOptions() parser.Options {
	opts := a.cfg.ParserOptions()
	opts.Logger = a.logger
	return opts
}

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/xiam/prefix-expr/parser"
)

const continuationPrompt = "... "

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse expressions interactively",
		Long: `Read expressions line by line and print their trees. Input that stops
inside a group keeps prompting until the group is closed. Type :quit to exit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ln := liner.NewLiner()
			defer ln.Close()
			ln.SetCtrlCAborts(true)

			history := a.cfg.REPL.History
			if history != "" {
				if f, err := os.Open(history); err == nil {
					_, _ = ln.ReadHistory(f)
					_ = f.Close()
				}
				defer func() {
					if f, err := os.Create(history); err == nil {
						_, _ = ln.WriteHistory(f)
						_ = f.Close()
					}
				}()
			}

			s := &session{
				parser: parser.New(a.parserOptions()),
				out:    newOutput(a.cfg.Output),
				stdout: cmd.OutOrStdout(),
				stderr: cmd.ErrOrStderr(),
			}

			for {
				src, ok := readByParseProbe(ln, a.cfg.REPL.Prompt, continuationPrompt)
				if !ok {
					fmt.Fprintln(s.stdout)
					return nil
				}
				if s.handle(src) {
					return nil
				}
				if strings.TrimSpace(src) != "" {
					ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
				}
			}
		},
	}
}

// session parses what the user types in the REPL.
type session struct {
	parser *parser.Parser
	out    *output

	stdout io.Writer
	stderr io.Writer
}

// handle parses src and prints the result. It returns true when the user
// asked to leave.
func (s *session) handle(src string) (exit bool) {
	line := strings.TrimSpace(src)

	if strings.HasPrefix(line, ":") {
		switch strings.ToLower(line) {
		case ":quit", ":q":
			return true
		default:
			fmt.Fprintln(s.stdout, "unknown command. Type :quit to exit.")
		}
		return false
	}

	if line == "" {
		return false
	}

	forest, err := s.parser.Parse([]byte(src))
	if err != nil {
		s.out.printError(s.stderr, err)
		return false
	}
	if err := s.out.write(s.stdout, forest); err != nil {
		s.out.printError(s.stderr, err)
	}
	return false
}

var probe = parser.New(parser.Options{Strict: true, MaxDepth: -1})

// needsMore reports whether src ends inside an open group.
func needsMore(src string) bool {
	_, err := probe.Parse([]byte(src))
	return parser.IsIncomplete(err)
}

func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl-C drops what was typed so far.
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") || !needsMore(src) {
			return src, true
		}
	}
}

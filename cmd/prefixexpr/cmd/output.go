package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/xiam/prefix-expr/ast"
	"github.com/xiam/prefix-expr/internal/config"
)

// output writes forests in the configured format.
type output struct {
	format string
	color  bool

	printer *ast.Printer
}

func newOutput(cfg config.OutputConfig) *output {
	o := &output{
		format:  cfg.Format,
		color:   cfg.Color,
		printer: &ast.Printer{Indent: cfg.Indent},
	}
	if o.color {
		o.printer.Leaf = render(leafStyle)
		o.printer.Header = render(headerStyle)
	}
	return o
}

func render(style lipgloss.Style) func(string) string {
	return func(s string) string {
		return style.Render(s)
	}
}

func (o *output) write(w io.Writer, forest ast.Forest) error {
	switch o.format {
	case config.OutputEncode:
		_, err := fmt.Fprintf(w, "%s\n", ast.Encode(forest))
		return err
	case config.OutputYAML:
		buf, err := ast.EncodeYAML(forest)
		if err != nil {
			return err
		}
		_, err = w.Write(buf)
		return err
	case config.OutputDebug:
		_, err := io.WriteString(w, ast.Dump(forest))
		return err
	default:
		return o.printer.Fprint(w, forest)
	}
}

func (o *output) printInput(w io.Writer, in string) {
	line := "Input: " + in
	if o.color {
		line = inputStyle.Render(line)
	}
	fmt.Fprintln(w, line)
}

func (o *output) printError(w io.Writer, err error) {
	msg := "Error: " + err.Error()
	if o.color {
		msg = errorStyle.Render(msg)
	}
	fmt.Fprintln(w, msg)
}

package ast

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xiam/prefix-expr/lexer"
)

// DefaultIndent is the indentation unit used by Print.
const DefaultIndent = "\t"

// GroupHeader is the line printed for every group.
const GroupHeader = "Group:"

// Printer renders a forest as indented lines: one line per leaf and a header
// line per group followed by its children, one indentation unit deeper.
type Printer struct {
	// Indent is the indentation unit, DefaultIndent if empty.
	Indent string

	// Leaf and Header restyle the text of leaf and header lines. Nil means
	// the text is printed as is.
	Leaf   func(string) string
	Header func(string) string
}

// Fprint writes the forest to w.
func (p *Printer) Fprint(w io.Writer, forest Forest) error {
	indent := p.Indent
	if indent == "" {
		indent = DefaultIndent
	}

	bw := bufio.NewWriter(w)

	err := Walk(forest, func(n *Node, depth int, leave bool) error {
		if leave {
			return nil
		}

		var line string
		if n.IsGroup() {
			line = style(p.Header, GroupHeader)
		} else {
			line = style(p.Leaf, n.tok.String())
		}

		if _, err := bw.WriteString(strings.Repeat(indent, depth)); err != nil {
			return err
		}
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		return bw.WriteByte('\n')
	})
	if err != nil {
		return err
	}

	return bw.Flush()
}

func style(fn func(string) string, s string) string {
	if fn == nil {
		return s
	}
	return fn(s)
}

// Fprint writes a human-readable representation of the forest to w, using
// tabs for indentation.
func Fprint(w io.Writer, forest Forest) error {
	p := &Printer{}
	return p.Fprint(w, forest)
}

// Sprint returns what Fprint would write.
func Sprint(forest Forest) string {
	var buf bytes.Buffer
	_ = Fprint(&buf, forest)
	return buf.String()
}

// Print displays a human-readable representation of the forest
func Print(forest Forest) {
	_ = Fprint(os.Stdout, forest)
}

// Encode transforms a forest into its canonical text representation: groups
// are wrapped in parentheses and siblings are separated by a single space.
func Encode(forest Forest) []byte {
	var buf bytes.Buffer

	space := false
	_ = Walk(forest, func(n *Node, depth int, leave bool) error {
		if leave {
			buf.WriteByte(')')
			space = true
			return nil
		}

		if space {
			buf.WriteByte(' ')
		}

		if n.IsGroup() {
			buf.WriteByte('(')
			space = false
			return nil
		}

		buf.WriteString(leafText(n.tok))
		space = true
		return nil
	})

	return buf.Bytes()
}

func leafText(tok lexer.Token) string {
	switch tok.Type() {
	case lexer.TokenInteger:
		return strconv.FormatInt(int64(tok.Int()), 10)
	case lexer.TokenOperator:
		return tok.Operator().Symbol()
	}
	return tok.Text()
}

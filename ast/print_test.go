package ast

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/xiam/prefix-expr/lexer"
)

func TestPrint(t *testing.T) {
	forest := Forest{
		group(add(t), group(add(t), integer(t, 200), integer(t, 300)), group(add(t), integer(t, 400), integer(t, 500))),
	}

	expected := strings.Join([]string{
		"Group:",
		"\tOperator(Add)",
		"\tGroup:",
		"\t\tOperator(Add)",
		"\t\tInteger(200)",
		"\t\tInteger(300)",
		"\tGroup:",
		"\t\tOperator(Add)",
		"\t\tInteger(400)",
		"\t\tInteger(500)",
		"",
	}, "\n")

	assert.Equal(t, expected, Sprint(forest))
}

func TestPrintAllTopLevelNodes(t *testing.T) {
	forest := Forest{group(integer(t, 1)), integer(t, 2)}
	assert.Equal(t, "Group:\n\tInteger(1)\nInteger(2)\n", Sprint(forest))
	assert.Equal(t, "", Sprint(nil))
}

func TestPrinterStyle(t *testing.T) {
	p := &Printer{
		Indent: "  ",
		Leaf:   func(s string) string { return "<" + s + ">" },
		Header: strings.ToUpper,
	}

	var buf bytes.Buffer
	err := p.Fprint(&buf, Forest{group(add(t), group())})
	assert.NoError(t, err)
	assert.Equal(t, "GROUP:\n  <Operator(Add)>\n  GROUP:\n", buf.String())
}

func TestEncode(t *testing.T) {
	testCases := []struct {
		In  Forest
		Out string
	}{
		{
			In:  nil,
			Out: ``,
		},
		{
			In:  Forest{integer(t, 1), integer(t, 2)},
			Out: `1 2`,
		},
		{
			In:  Forest{group()},
			Out: `()`,
		},
		{
			In:  Forest{group(), group(group()), integer(t, 3)},
			Out: `() (()) 3`,
		},
		{
			In:  Forest{group(add(t), integer(t, 100), group(add(t), integer(t, 300), integer(t, 400)))},
			Out: `(+ 100 (+ 300 400))`,
		},
		{
			In:  Forest{group(leaf(t, lexer.NewUnrecognized("foo", nil, lexer.Position{})), integer(t, 7))},
			Out: `(foo 7)`,
		},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, string(Encode(testCases[i].In)))
		assert.Equal(t, testCases[i].Out, testCases[i].In.String())
	}
}

func TestEncodeYAML(t *testing.T) {
	forest := Forest{
		group(add(t), integer(t, 100), group()),
		leaf(t, lexer.NewUnrecognized("x", nil, lexer.Position{})),
	}

	buf, err := EncodeYAML(forest)
	assert.NoError(t, err)

	var doc []interface{}
	assert.NoError(t, yaml.Unmarshal(buf, &doc))

	assert.Equal(t, []interface{}{
		map[string]interface{}{
			"group": []interface{}{
				"+",
				100,
				map[string]interface{}{"group": []interface{}{}},
			},
		},
		map[string]interface{}{
			"unrecognized": "x",
		},
	}, doc)
}

func TestEncodeYAMLEmpty(t *testing.T) {
	buf, err := EncodeYAML(nil)
	assert.NoError(t, err)
	assert.Equal(t, "[]\n", string(buf))
}

func TestDump(t *testing.T) {
	s := Dump(Forest{group(add(t), integer(t, 500))})
	assert.Contains(t, s, "(int32) 500")
	assert.Contains(t, s, "children")
}

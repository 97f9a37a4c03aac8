package ast

import (
	"gopkg.in/yaml.v3"

	"github.com/xiam/prefix-expr/lexer"
)

// MarshalYAML turns groups into {group: [...]} mappings, integers into
// numbers, operators into their symbol and unrecognized tokens into
// {unrecognized: text}.
func (n *Node) MarshalYAML() (interface{}, error) {
	if n.IsGroup() {
		children := n.children
		if children == nil {
			children = Forest{}
		}
		return map[string]Forest{"group": children}, nil
	}

	switch n.tok.Type() {
	case lexer.TokenInteger:
		return n.tok.Int(), nil
	case lexer.TokenOperator:
		return n.tok.Operator().Symbol(), nil
	}
	return map[string]string{"unrecognized": n.tok.Text()}, nil
}

// EncodeYAML returns the YAML document of a forest.
func EncodeYAML(forest Forest) ([]byte, error) {
	if forest == nil {
		forest = Forest{}
	}
	return yaml.Marshal(forest)
}

var _ = yaml.Marshaler(&Node{})

package ast

import (
	"errors"
	"fmt"

	"github.com/xiam/prefix-expr/lexer"
)

var (
	ErrParenthesisLeaf = errors.New("parenthesis can't be wrapped as a leaf")
	ErrLeafChildren    = errors.New("nodes of type leaf can't accept children")
)

// Node represents either a leaf wrapping one token or a group holding an
// ordered list of child nodes.
type Node struct {
	nt  NodeType
	tok lexer.Token

	children []*Node
}

// NewLeaf creates a node that wraps tok. Parentheses are structural and are
// never stored as leaves.
func NewLeaf(tok lexer.Token) (*Node, error) {
	if tok.Is(lexer.TokenLeftParen) || tok.Is(lexer.TokenRightParen) {
		return nil, ErrParenthesisLeaf
	}
	return &Node{
		nt:  NodeTypeLeaf,
		tok: tok,
	}, nil
}

// NewGroup creates a group node. The open token is the parenthesis that
// started the group and is only kept as position information.
func NewGroup(open lexer.Token, children ...*Node) *Node {
	return &Node{
		nt:       NodeTypeGroup,
		tok:      open,
		children: append([]*Node{}, children...),
	}
}

// Push appends a child node to a group.
func (n *Node) Push(node *Node) error {
	if !n.IsGroup() {
		return ErrLeafChildren
	}
	n.children = append(n.children, node)
	return nil
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// Token returns the token associated to the node
func (n *Node) Token() lexer.Token {
	return n.tok
}

// Children returns the child nodes of a group, in source order.
func (n *Node) Children() Forest {
	return n.children
}

// IsLeaf returns true if the node is of type leaf
func (n *Node) IsLeaf() bool {
	return n.nt == NodeTypeLeaf
}

// IsGroup returns true if the node is of type group
func (n *Node) IsGroup() bool {
	return n.nt == NodeTypeGroup
}

func (n *Node) String() string {
	if n.IsGroup() {
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.children))
	}
	return fmt.Sprintf("(%v): %v", n.nt, n.tok)
}

// Forest is an ordered list of nodes that share the same nesting level.
type Forest []*Node

func (f Forest) String() string {
	return string(Encode(f))
}

// Equal reports whether both forests have the same shape and their leaves
// hold structurally equal tokens.
func (f Forest) Equal(g Forest) bool {
	type pair struct {
		a, b Forest
	}

	stack := []pair{{f, g}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(p.a) != len(p.b) {
			return false
		}
		for i := range p.a {
			a, b := p.a[i], p.b[i]
			if a.nt != b.nt {
				return false
			}
			if a.IsLeaf() {
				if !a.tok.Equal(b.tok) {
					return false
				}
				continue
			}
			stack = append(stack, pair{a.children, b.children})
		}
	}
	return true
}

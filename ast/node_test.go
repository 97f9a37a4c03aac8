package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/prefix-expr/lexer"
)

func leaf(t *testing.T, tok lexer.Token) *Node {
	t.Helper()
	node, err := NewLeaf(tok)
	require.NoError(t, err)
	return node
}

func integer(t *testing.T, v int32) *Node {
	return leaf(t, lexer.NewInteger(v, "", lexer.Position{}))
}

func add(t *testing.T) *Node {
	return leaf(t, lexer.NewOperator(lexer.OperatorAdd, lexer.Position{}))
}

func group(children ...*Node) *Node {
	return NewGroup(lexer.NewToken(lexer.TokenLeftParen, "(", lexer.Position{}), children...)
}

func TestNode(t *testing.T) {
	node := integer(t, 5)
	assert.True(t, node.IsLeaf())
	assert.False(t, node.IsGroup())
	assert.Equal(t, NodeTypeLeaf, node.Type())
	assert.Equal(t, int32(5), node.Token().Int())
	assert.Empty(t, node.Children())

	err := node.Push(integer(t, 6))
	assert.ErrorIs(t, err, ErrLeafChildren)
}

func TestNodeGroup(t *testing.T) {
	g := group(add(t))
	assert.True(t, g.IsGroup())
	assert.Equal(t, NodeTypeGroup, g.Type())

	assert.NoError(t, g.Push(integer(t, 1)))
	assert.Len(t, g.Children(), 2)
	assert.Equal(t, "(group)[2]", g.String())
}

func TestNodeParenthesisLeaf(t *testing.T) {
	for _, tt := range []lexer.TokenType{lexer.TokenLeftParen, lexer.TokenRightParen} {
		node, err := NewLeaf(lexer.NewToken(tt, "", lexer.Position{}))
		assert.ErrorIs(t, err, ErrParenthesisLeaf)
		assert.Nil(t, node)
	}

	node, err := NewLeaf(lexer.NewUnrecognized("x", lexer.ErrUnknownSymbol, lexer.Position{}))
	assert.NoError(t, err)
	assert.Equal(t, `(leaf): Unrecognized("x")`, node.String())
}

func TestForestEqual(t *testing.T) {
	a := Forest{group(add(t), integer(t, 100), group(add(t), integer(t, 300), integer(t, 400)))}
	b := Forest{group(add(t), integer(t, 100), group(add(t), integer(t, 300), integer(t, 400)))}
	c := Forest{group(add(t), integer(t, 100), group(add(t), integer(t, 300), integer(t, 401)))}
	d := Forest{group(add(t), integer(t, 100), add(t), integer(t, 300), integer(t, 400))}

	assert.True(t, a.Equal(b))
	assert.True(t, Forest{}.Equal(nil))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(Forest{}))
}

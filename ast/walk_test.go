package ast

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalkOrder(t *testing.T) {
	forest := Forest{
		group(add(t), group(integer(t, 1)), integer(t, 2)),
		integer(t, 3),
	}

	events := []string{}
	err := Walk(forest, func(n *Node, depth int, leave bool) error {
		switch {
		case leave:
			events = append(events, fmt.Sprintf("%d:leave", depth))
		case n.IsGroup():
			events = append(events, fmt.Sprintf("%d:enter", depth))
		default:
			events = append(events, fmt.Sprintf("%d:%v", depth, n.Token()))
		}
		return nil
	})
	assert.NoError(t, err)

	assert.Equal(t, []string{
		"0:enter",
		"1:Operator(Add)",
		"1:enter",
		"2:Integer(1)",
		"1:leave",
		"1:Integer(2)",
		"0:leave",
		"0:Integer(3)",
	}, events)
}

func TestWalkSkipChildren(t *testing.T) {
	forest := Forest{group(integer(t, 1), integer(t, 2)), integer(t, 3)}

	visited := 0
	err := Walk(forest, func(n *Node, depth int, leave bool) error {
		if leave {
			return nil
		}
		visited++
		if n.IsGroup() {
			return SkipChildren
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, visited)
}

func TestWalkStopsOnError(t *testing.T) {
	errStop := errors.New("stop")

	visited := 0
	err := Walk(Forest{integer(t, 1), integer(t, 2), integer(t, 3)}, func(n *Node, depth int, leave bool) error {
		visited++
		if n.Token().Int() == 2 {
			return errStop
		}
		return nil
	})
	assert.ErrorIs(t, err, errStop)
	assert.Equal(t, 2, visited)
}

func TestWalkDeepNesting(t *testing.T) {
	const depth = 100000

	root := group()
	node := root
	for i := 0; i < depth; i++ {
		child := group()
		assert.NoError(t, node.Push(child))
		node = child
	}

	s := string(Encode(Forest{root}))
	assert.Equal(t, strings.Repeat("(", depth+1)+strings.Repeat(")", depth+1), s)
}

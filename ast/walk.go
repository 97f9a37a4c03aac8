package ast

import (
	"errors"
)

// SkipChildren can be returned by a WalkFunc when entering a group to skip
// its children. The group is still left.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every node in pre-order. Leaves are visited once
// with leave set to false. Groups are visited twice: once before their
// children and once more, with leave set to true, after them. depth is 0 for
// the nodes of the forest given to Walk.
type WalkFunc func(n *Node, depth int, leave bool) error

type walkItem struct {
	n     *Node
	depth int
	leave bool
}

// Walk traverses the forest in source order. It keeps its own stack, so the
// nesting depth of the forest is only limited by memory.
func Walk(forest Forest, fn WalkFunc) error {
	stack := make([]walkItem, 0, len(forest))
	for i := len(forest) - 1; i >= 0; i-- {
		stack = append(stack, walkItem{n: forest[i]})
	}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		err := fn(item.n, item.depth, item.leave)
		if item.leave || item.n.IsLeaf() {
			if err != nil && err != SkipChildren {
				return err
			}
			continue
		}

		stack = append(stack, walkItem{n: item.n, depth: item.depth, leave: true})
		if err == SkipChildren {
			continue
		}
		if err != nil {
			return err
		}

		children := item.n.children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, walkItem{n: children[i], depth: item.depth + 1})
		}
	}

	return nil
}

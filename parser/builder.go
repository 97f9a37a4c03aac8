package parser

import (
	"log"

	"github.com/xiam/prefix-expr/ast"
	"github.com/xiam/prefix-expr/lexer"
)

type builderState func(b *builder) builderState

type frameState uint8

const (
	frameAwaitBody frameState = iota
	frameAwaitSiblings
)

// frame is an opening parenthesis whose group is still being built.
type frame struct {
	state frameState
	open  lexer.Token

	// leaves read by the same call before the parenthesis
	before ast.Forest

	group *ast.Node
}

// result is what a single build call hands back to the frame that started
// it. Nodes are kept in reverse order: a call's forest is its own nodes
// followed by the forest of the call after it, so building it backwards
// turns every prepend into an append.
type result struct {
	reversed ast.Forest
	rest     int
}

func reverse(forest ast.Forest) ast.Forest {
	out := make(ast.Forest, len(forest))
	for i := range forest {
		out[len(forest)-1-i] = forest[i]
	}
	return out
}

// builder keeps the state of one Build call. Calls that would recurse push a
// frame instead, so the Go stack does not grow with the input.
type builder struct {
	tokens []lexer.Token
	pos    int

	stack []*frame
	depth int

	acc ast.Forest

	forest ast.Forest
	rest   []lexer.Token

	err error

	options Options
	logger  *log.Logger
}

func (b *builder) push(f *frame) {
	b.stack = append(b.stack, f)
}

func (b *builder) pop() *frame {
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return f
}

func (b *builder) top() *frame {
	return b.stack[len(b.stack)-1]
}

// builderCallState starts building at the current position, as if the
// builder was called on the remaining tokens.
func builderCallState(b *builder) builderState {
	b.acc = nil
	return builderScanState
}

func builderScanState(b *builder) builderState {
	if b.pos >= len(b.tokens) {
		return builderReturnState(result{reversed: reverse(b.acc), rest: len(b.tokens)})
	}

	tok := b.tokens[b.pos]

	switch tok.Type() {
	case lexer.TokenRightParen:
		b.pos++
		return builderReturnState(result{reversed: reverse(b.acc), rest: b.pos})

	case lexer.TokenInteger, lexer.TokenOperator:
		node, err := ast.NewLeaf(tok)
		if err != nil {
			return builderErrorState(newError(err, tok))
		}
		b.acc = append(b.acc, node)
		b.pos++
		return builderScanState

	case lexer.TokenLeftParen:
		if b.options.MaxDepth > 0 && b.depth >= b.options.MaxDepth {
			return builderErrorState(newError(ErrMaxDepth, tok))
		}
		b.push(&frame{
			state:  frameAwaitBody,
			open:   tok,
			before: b.acc,
		})
		b.depth++
		b.pos++
		return builderCallState

	default:
		return builderErrorState(newError(ErrUnexpectedToken, tok))
	}
}

func builderReturnState(res result) builderState {
	return func(b *builder) builderState {
		if len(b.stack) == 0 {
			b.forest = reverse(res.reversed)
			b.rest = b.tokens[res.rest:]
			return nil
		}

		f := b.top()
		switch f.state {
		case frameAwaitBody:
			f.group = ast.NewGroup(f.open, reverse(res.reversed)...)
			f.state = frameAwaitSiblings
			b.depth--
			b.pos = res.rest
			return builderCallState

		case frameAwaitSiblings:
			if res.rest < len(b.tokens) {
				dropped := b.tokens[res.rest:]
				if b.options.Strict {
					// Closing parentheses of enclosing groups end up here
					// even in balanced input, only content is an error.
					for _, tok := range dropped {
						if !tok.Is(lexer.TokenRightParen) {
							return builderErrorState(newError(ErrTrailingTokens, tok))
						}
					}
				} else {
					b.logger.Printf("dropping %d token(s) after group opened at %v", len(dropped), f.open.Pos())
				}
			}
			b.pop()

			reversed := append(res.reversed, f.group)
			for i := len(f.before) - 1; i >= 0; i-- {
				reversed = append(reversed, f.before[i])
			}

			return builderReturnState(result{reversed: reversed, rest: len(b.tokens)})
		}

		panic("unreachable")
	}
}

func builderErrorState(err error) builderState {
	return func(b *builder) builderState {
		b.err = err
		return nil
	}
}

package parser

import (
	"io"
	"log"

	"github.com/xiam/prefix-expr/ast"
	"github.com/xiam/prefix-expr/lexer"
)

// DefaultMaxDepth is the group nesting limit used when Options.MaxDepth is
// zero.
const DefaultMaxDepth = 1024

// Options configures parser behavior
type Options struct {
	// Strict rejects input that the default mode accepts with losses. See
	// ErrUnexpectedEOF, ErrUnmatchedParen and ErrTrailingTokens.
	Strict bool

	// MaxDepth limits how deeply groups can nest. Zero means
	// DefaultMaxDepth, a negative value disables the limit.
	MaxDepth int

	// Logger receives debug messages, nil discards them.
	Logger *log.Logger
}

// Parser builds trees out of token sequences. A Parser holds no state
// between calls and can be used from several goroutines at once.
type Parser struct {
	options Options
	logger  *log.Logger
}

// New creates a parser with the given options
func New(opts Options) *Parser {
	p := &Parser{}
	p.SetOptions(opts)
	return p
}

// SetOptions replaces the options of the parser.
func (p *Parser) SetOptions(opts Options) {
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	p.logger = opts.Logger
	if p.logger == nil {
		p.logger = log.New(io.Discard, "", 0)
	}
	p.options = opts
}

// Options returns the options in use, with defaults applied.
func (p *Parser) Options() Options {
	return p.options
}

// Build consumes tokens from the front and returns the forest they describe
// and the tokens that were left unconsumed.
//
// Leaves are collected until a closing parenthesis, which ends the current
// level and hands everything after it back as remainder. An opening
// parenthesis builds the group body first and then the siblings that follow
// the group; whatever those siblings leave unconsumed is dropped, so the
// remainder after a group is always empty. In strict mode parentheses must
// balance and dropping anything other than a closing parenthesis is an
// error.
func (p *Parser) Build(tokens []lexer.Token) (ast.Forest, []lexer.Token, error) {
	b := p.run(tokens)
	if b.err != nil {
		return nil, nil, b.err
	}
	return b.forest, b.rest, nil
}

func (p *Parser) run(tokens []lexer.Token) *builder {
	b := &builder{
		tokens:  tokens,
		options: p.options,
		logger:  p.logger,
	}

	if p.options.Strict {
		b.err = checkBalance(tokens)
	}

	for state := builderCallState; state != nil && b.err == nil; {
		state = state(b)
	}

	if b.err != nil {
		p.logger.Printf("build failed: %v", b.err)
		return b
	}

	p.logger.Printf("built %d top-level node(s) from %d token(s), %d left", len(b.forest), len(tokens), len(b.rest))
	return b
}

// Parse tokenizes and builds the input. Tokens left after an unmatched
// closing parenthesis are ignored; strict mode rejects them before building.
func (p *Parser) Parse(in []byte) (ast.Forest, error) {
	tokens := lexer.TokenizeBytes(in)

	b := p.run(tokens)
	if b.err != nil {
		return nil, b.err
	}

	if len(b.rest) > 0 {
		p.logger.Printf("ignoring %d token(s) left after an unmatched parenthesis, starting at %v", len(b.rest), b.rest[0].Pos())
	}

	return b.forest, nil
}

// Build runs Parser.Build with default options.
func Build(tokens []lexer.Token) (ast.Forest, []lexer.Token, error) {
	return New(Options{}).Build(tokens)
}

// Parse runs Parser.Parse with default options.
func Parse(in []byte) (ast.Forest, error) {
	return New(Options{}).Parse(in)
}

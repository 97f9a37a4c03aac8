package lexer

import (
	"errors"
	"strconv"
	"unicode"
	"unicode/utf8"
)

const eof rune = -1

type lexState func(*Lexer) lexState

// Lexer splits a source text into words and classifies each of them. A
// parenthesis is always a word of its own, any run of white space separates
// words.
type Lexer struct {
	in     string
	tokens []Token

	start    int
	startPos Position

	offset int
	line   int
	col    int
}

// New initializes a Lexer object
func New(in string) *Lexer {
	return &Lexer{
		in:   in,
		line: 1,
		col:  1,
	}
}

// Scan reads the whole input and returns its tokens in source order.
func (lx *Lexer) Scan() []Token {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	return lx.tokens
}

func (lx *Lexer) peek() rune {
	if lx.offset >= len(lx.in) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(lx.in[lx.offset:])
	return r
}

func (lx *Lexer) next() rune {
	if lx.offset >= len(lx.in) {
		return eof
	}
	r, w := utf8.DecodeRuneInString(lx.in[lx.offset:])
	lx.offset += w

	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return r
}

func (lx *Lexer) mark() {
	lx.start = lx.offset
	lx.startPos = Position{
		Offset: lx.offset,
		Line:   lx.line,
		Column: lx.col,
	}
}

func (lx *Lexer) emit(tok Token) {
	lx.tokens = append(lx.tokens, tok)
}

func isWordBreak(r rune) bool {
	return r == eof || unicode.IsSpace(r) || isLeftParen(r) || isRightParen(r)
}

func lexDefaultState(lx *Lexer) lexState {
	r := lx.peek()

	switch {
	case r == eof:
		return nil
	case unicode.IsSpace(r):
		lx.next()
		return lexDefaultState
	case isLeftParen(r), isRightParen(r):
		lx.mark()
		lx.next()
		return lexEmitWord
	default:
		lx.mark()
		return lexWord
	}
}

func lexWord(lx *Lexer) lexState {
	for !isWordBreak(lx.peek()) {
		lx.next()
	}
	return lexEmitWord
}

func lexEmitWord(lx *Lexer) lexState {
	lx.emit(classify(lx.in[lx.start:lx.offset], lx.startPos))
	return lexDefaultState
}

// classify looks at the first character of a word to decide what kind of
// token it is.
func classify(word string, pos Position) Token {
	r, _ := utf8.DecodeRuneInString(word)

	switch {
	case isLeftParen(r):
		return NewToken(TokenLeftParen, word, pos)
	case isRightParen(r):
		return NewToken(TokenRightParen, word, pos)
	case isArithmeticSign(r):
		return classifyOperator(word, pos)
	case isDigit(r):
		return classifyInteger(word, pos)
	}

	return NewUnrecognized(word, ErrUnknownSymbol, pos)
}

func classifyOperator(word string, pos Position) Token {
	if op, ok := LookupOperator(word); ok {
		return NewOperator(op, pos)
	}
	if utf8.RuneCountInString(word) == 1 {
		return NewUnrecognized(word, ErrUnsupportedOperator, pos)
	}
	// "-5" is not a negative literal.
	return NewUnrecognized(word, ErrUnknownSymbol, pos)
}

func classifyInteger(word string, pos Position) Token {
	i64, err := strconv.ParseInt(word, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return NewUnrecognized(word, ErrIntegerRange, pos)
		}
		return NewUnrecognized(word, ErrMalformedInteger, pos)
	}
	return NewInteger(int32(i64), word, pos)
}

// Tokenize takes a source text and returns all the tokens within it. It
// never fails: words that can't be classified become TokenUnrecognized.
func Tokenize(in string) []Token {
	return New(in).Scan()
}

// TokenizeBytes is like Tokenize but takes an array of bytes.
func TokenizeBytes(in []byte) []Token {
	return Tokenize(string(in))
}

package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenUnrecognized TokenType = iota
	TokenLeftParen              // Open parenthesis: "("
	TokenRightParen             // Close parenthesis: ")"
	TokenInteger                // 32-bit signed decimal integer
	TokenOperator               // Arithmetic operator, see Operator
)

var tokenValues = map[TokenType][]rune{
	TokenLeftParen:  []rune{'('},
	TokenRightParen: []rune{')'},
	TokenInteger:    []rune("0123456789"),
	TokenOperator:   []rune("+-*/"),
}

var tokenNames = map[TokenType]string{
	TokenUnrecognized: "Unrecognized",
	TokenLeftParen:    "LeftParen",
	TokenRightParen:   "RightParen",
	TokenInteger:      "Integer",
	TokenOperator:     "Operator",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenUnrecognized]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

var (
	isLeftParen  = isTokenType(TokenLeftParen)
	isRightParen = isTokenType(TokenRightParen)
	isDigit      = isTokenType(TokenInteger)

	// isArithmeticSign matches every arithmetic symbol, including the ones
	// that have no Operator yet.
	isArithmeticSign = isTokenType(TokenOperator)
)

// Operator is the closed set of operator kinds a TokenOperator can carry.
//
// To add an operator, declare a new constant below and register its symbol
// in operatorSymbols and its name in operatorNames. The lexer and the tree
// builder need no other change.
type Operator uint8

// Operator kinds
const (
	OperatorInvalid Operator = iota
	OperatorAdd              // "+"
)

var operatorSymbols = map[string]Operator{
	"+": OperatorAdd,
}

var operatorNames = map[Operator]string{
	OperatorInvalid: "Invalid",
	OperatorAdd:     "Add",
}

// LookupOperator returns the operator whose symbol is s.
func LookupOperator(s string) (Operator, bool) {
	op, ok := operatorSymbols[s]
	return op, ok
}

// Symbol returns the source text of the operator.
func (op Operator) Symbol() string {
	for s, v := range operatorSymbols {
		if v == op {
			return s
		}
	}
	return ""
}

func (op Operator) String() string {
	if v, ok := operatorNames[op]; ok {
		return v
	}
	return operatorNames[OperatorInvalid]
}

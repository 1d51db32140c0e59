package ast

import "fmt"

// BinOp is a binary connective.
type BinOp int

// Binary connectives.
const (
	And     BinOp = iota // '&'.
	Or                   // '|'.
	Implies              // '->'.

	// End of connectives.
	finalBinOp
)

// NotToken is the prefix negation token.
const NotToken = "~"

// BinOps lists every connective in the order the parser tries their tokens.
// No token may be a prefix of a token listed after it.
var BinOps = []BinOp{And, Or, Implies}

type binOpInfo struct {
	token      string
	precedence int // Higher binds tighter.
	apply      func(lhs, rhs bool) bool
}

var binOpTable = map[BinOp]binOpInfo{
	And:     {"&", 2, func(lhs, rhs bool) bool { return lhs && rhs }},
	Or:      {"|", 1, func(lhs, rhs bool) bool { return lhs || rhs }},
	Implies: {"->", 0, func(lhs, rhs bool) bool { return !lhs || rhs }},
}

// MaxPrecedence is above every binary precedence; negation binds at this level.
const MaxPrecedence = 3

func (op BinOp) info() binOpInfo {
	info, ok := binOpTable[op]
	if !ok {
		panic(fmt.Errorf("unknown binary operator %d", int(op)))
	}
	return info
}

// Token returns the text used both for parsing and printing op.
func (op BinOp) Token() string { return op.info().token }

// Precedence returns the binding rank of op.
func (op BinOp) Precedence() int { return op.info().precedence }

// Apply combines two operand values.
func (op BinOp) Apply(lhs, rhs bool) bool { return op.info().apply(lhs, rhs) }

// String returns the token of op.
func (op BinOp) String() string {
	if _, ok := binOpTable[op]; !ok {
		return fmt.Sprintf("BinOp(%d)", int(op))
	}
	return op.Token()
}

// Valid reports whether op is a known connective.
func (op BinOp) Valid() bool {
	_, ok := binOpTable[op]
	return ok
}

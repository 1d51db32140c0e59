package parser

import (
	"go.creack.net/gentt/ast"
	"go.creack.net/gentt/lexer"
)

const nameStartChars = "abcdefghijklmnopqrstuvwxyz"

type nudHandler func(*parser) (ast.Expr, error)

type lookupTable[T any] map[rune]T

// nud registers fn for every rune of starts.
func (p *parser) nud(starts string, fn nudHandler) {
	for _, r := range starts {
		if _, ok := p.nudLookupTable[r]; ok {
			panic("duplicate nud handler")
		}
		p.nudLookupTable[r] = fn
	}
}

func (p *parser) createTokenLookups() {
	// Literals & symbols.
	p.nud(lexer.Digits, parseConstantExpr)
	p.nud(nameStartChars, parseVariableExpr)

	// Prefixes.
	p.nud("(", parseGroupingExpr)
	p.nud(ast.NotToken, parseNotExpr)
}

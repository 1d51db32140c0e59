// Package parser turns boolean expression text into an ast.Expr.
//
// Grammar:
//
//	expr  := unary (BINOP expr)?
//	unary := '0' | '1' | '(' expr ')' | '~' unary | NAME
//	NAME  := [a-z][0-9]*
//
// The grammar is right-recursive; operator precedence is restored while the
// recursion unwinds (see fixupPrecedence).
package parser

import (
	"go.creack.net/gentt/ast"
	"go.creack.net/gentt/lexer"
)

type parser struct {
	lex *lexer.Lexer

	depth   int                         // Number of open parentheses.
	grouped map[*ast.BinaryExpr]struct{} // Binary nodes written in parentheses.

	nudLookupTable lookupTable[nudHandler]
}

func newParser(input string) *parser {
	p := &parser{
		lex:            lexer.New(input),
		grouped:        map[*ast.BinaryExpr]struct{}{},
		nudLookupTable: lookupTable[nudHandler]{},
	}
	p.createTokenLookups()
	return p
}

// Parse parses the whole input. On failure the error is a *SyntaxError and
// no expression is returned.
func Parse(input string) (ast.Expr, error) {
	p := newParser(input)
	expr, err := parseBinaryExpr(p)
	if err != nil {
		return nil, err
	}
	return expr, nil
}

// MustParse is like Parse but panics on error.
func MustParse(input string) ast.Expr {
	expr, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return expr
}

func (p *parser) isGrouped(e ast.Expr) bool {
	bin, ok := e.(*ast.BinaryExpr)
	if !ok {
		return false
	}
	_, ok = p.grouped[bin]
	return ok
}

// unexpected reports the rune at the current position, or EOF.
func (p *parser) unexpected() error {
	if p.lex.AtEOF() {
		return &SyntaxError{Kind: UnexpectedEOF, Pos: p.lex.Pos()}
	}
	return &SyntaxError{Kind: UnexpectedCharacter, Char: p.lex.Peek(), Pos: p.lex.Pos()}
}

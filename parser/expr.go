package parser

import (
	"go.creack.net/gentt/ast"
	"go.creack.net/gentt/lexer"
)

func parseBinaryExpr(p *parser) (ast.Expr, error) {
	left, err := parseUnaryExpr(p)
	if err != nil {
		return nil, err
	}

	// End of input, or the closing parenthesis of the enclosing group.
	p.lex.SkipWhitespace()
	if p.lex.AtEOF() || (p.depth > 0 && p.lex.Peek() == ')') {
		return left, nil
	}

	for _, op := range ast.BinOps {
		if !p.lex.TrySkip(op.Token()) {
			continue
		}
		right, err := parseBinaryExpr(p)
		if err != nil {
			return nil, err
		}
		return fixupPrecedence(op, left, right, p.isGrouped), nil
	}
	return nil, p.unexpected()
}

// fixupPrecedence builds `left op right` where right is the already parsed
// rest of the chain. When right is an ungrouped binary node binding looser
// than op, op captures right's left operand instead and right's operator
// becomes the root. This repeats down right's left spine, so an operator
// binding looser than everything before it ends up at the top.
//
// grouped reports nodes written in parentheses; those are never rotated.
// A nil grouped means no node is grouped.
func fixupPrecedence(op ast.BinOp, left, right ast.Expr, grouped func(ast.Expr) bool) ast.Expr {
	bin, ok := right.(*ast.BinaryExpr)
	if !ok || bin.Op.Precedence() >= op.Precedence() || (grouped != nil && grouped(bin)) {
		return ast.Binary(op, left, right)
	}
	return ast.Binary(bin.Op, fixupPrecedence(op, left, bin.Left, grouped), bin.Right)
}

func parseUnaryExpr(p *parser) (ast.Expr, error) {
	p.lex.SkipWhitespace()
	nudFn, exists := p.nudLookupTable[p.lex.Peek()]
	if !exists || p.lex.AtEOF() {
		return nil, p.unexpected()
	}
	return nudFn(p)
}

func parseConstantExpr(p *parser) (ast.Expr, error) {
	pos := p.lex.Pos()
	n, _ := p.lex.ParseInt()
	switch n {
	case 0:
		return ast.Const(false), nil
	case 1:
		return ast.Const(true), nil
	}
	return nil, &SyntaxError{Kind: UnexpectedNumber, Number: n, Pos: pos}
}

func parseVariableExpr(p *parser) (ast.Expr, error) {
	start := p.lex.Pos()
	p.lex.Accept(nameStartChars)
	p.lex.AcceptRun(lexer.Digits)
	return ast.Var(p.lex.Since(start)), nil
}

func parseGroupingExpr(p *parser) (ast.Expr, error) {
	p.lex.TrySkip("(")
	p.depth++
	expr, err := parseBinaryExpr(p)
	if err != nil {
		return nil, err
	}
	if !p.lex.TrySkip(")") {
		return nil, p.unexpected()
	}
	p.depth--
	if bin, ok := expr.(*ast.BinaryExpr); ok {
		p.grouped[bin] = struct{}{}
	}
	return expr, nil
}

func parseNotExpr(p *parser) (ast.Expr, error) {
	p.lex.TrySkip(ast.NotToken)
	operand, err := parseUnaryExpr(p)
	if err != nil {
		return nil, err
	}
	return ast.Not(operand), nil
}

package parser

import (
	"errors"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/gentt/ast"
)

var (
	a = ast.Var("a")
	b = ast.Var("b")
	c = ast.Var("c")
	d = ast.Var("d")
)

func and(l, r ast.Expr) ast.Expr     { return ast.Binary(ast.And, l, r) }
func or(l, r ast.Expr) ast.Expr      { return ast.Binary(ast.Or, l, r) }
func implies(l, r ast.Expr) ast.Expr { return ast.Binary(ast.Implies, l, r) }

func assertTree(t *testing.T, expected, got ast.Expr) {
	t.Helper()
	assert.Equal(t, expected, got, "tree mismatch: %v", pretty.Diff(expected, got))
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected ast.Expr
	}{
		{"0", ast.Const(false)},
		{"1", ast.Const(true)},
		{"a", a},
		{"a12", ast.Var("a12")},
		{"~a", ast.Not(a)},
		{"~~1", ast.Not(ast.Not(ast.Const(true)))},
		{"a & b", and(a, b)},
		{"a & b | c", or(and(a, b), c)},
		{"a | b & c", or(a, and(b, c))},
		{"a & (b | c)", and(a, or(b, c))},
		{"(a | b) & c", and(or(a, b), c)},
		{"(a | b) & c & d", and(or(a, b), and(c, d))},
		{"~a & b", and(ast.Not(a), b)},
		{"~(a & b)", ast.Not(and(a, b))},
		{"a & b & c", and(a, and(b, c))},
		{"a -> b -> c", implies(a, implies(b, c))},
		{"a -> b | c", implies(a, or(b, c))},
		{"a & b -> c | d", implies(and(a, b), or(c, d))},
		{"a & b | c -> d", implies(or(and(a, b), c), d)},
		{"a -> b & c | d", implies(a, or(and(b, c), d))},
		{"a & b | c & d", or(and(a, b), and(c, d))},
		{"a & (b | c) | d", or(and(a, or(b, c)), d)},
		{"a & (b -> c) | d", or(and(a, implies(b, c)), d)},
		{"((a))", a},
		{"\t( a\n|b )&~ c ", and(or(a, b), ast.Not(c))},
		{"a&b->c", implies(and(a, b), c)},
		{"1 | 0", or(ast.Const(true), ast.Const(false))},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assertTree(t, tt.expected, got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected *SyntaxError
	}{
		{"", &SyntaxError{Kind: UnexpectedEOF, Pos: 0}},
		{"   ", &SyntaxError{Kind: UnexpectedEOF, Pos: 3}},
		{"2", &SyntaxError{Kind: UnexpectedNumber, Number: 2, Pos: 0}},
		{"a & 10", &SyntaxError{Kind: UnexpectedNumber, Number: 10, Pos: 4}},
		{"a &", &SyntaxError{Kind: UnexpectedEOF, Pos: 3}},
		{"a -> ", &SyntaxError{Kind: UnexpectedEOF, Pos: 5}},
		{"~", &SyntaxError{Kind: UnexpectedEOF, Pos: 1}},
		{"(", &SyntaxError{Kind: UnexpectedEOF, Pos: 1}},
		{"(a", &SyntaxError{Kind: UnexpectedEOF, Pos: 2}},
		{"(a & b", &SyntaxError{Kind: UnexpectedEOF, Pos: 6}},
		{")", &SyntaxError{Kind: UnexpectedCharacter, Char: ')', Pos: 0}},
		{"a)", &SyntaxError{Kind: UnexpectedCharacter, Char: ')', Pos: 1}},
		{"(a))", &SyntaxError{Kind: UnexpectedCharacter, Char: ')', Pos: 3}},
		{"a b", &SyntaxError{Kind: UnexpectedCharacter, Char: 'b', Pos: 2}},
		{"ab", &SyntaxError{Kind: UnexpectedCharacter, Char: 'b', Pos: 1}},
		{"a && b", &SyntaxError{Kind: UnexpectedCharacter, Char: '&', Pos: 3}},
		{"a - b", &SyntaxError{Kind: UnexpectedCharacter, Char: '-', Pos: 2}},
		{"!a", &SyntaxError{Kind: UnexpectedCharacter, Char: '!', Pos: 0}},
		{"A", &SyntaxError{Kind: UnexpectedCharacter, Char: 'A', Pos: 0}},
		{"a & é", &SyntaxError{Kind: UnexpectedCharacter, Char: 'é', Pos: 4}},
		{"()", &SyntaxError{Kind: UnexpectedCharacter, Char: ')', Pos: 1}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		assert.Nil(t, got, "input %q", tt.input)
		var synErr *SyntaxError
		require.ErrorAs(t, err, &synErr, "input %q", tt.input)
		assert.Equal(t, tt.expected, synErr, "input %q", tt.input)
	}
}

func TestSyntaxErrorMessages(t *testing.T) {
	_, err := Parse("2")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedNumber)
	assert.EqualError(t, err, "unexpected number 2 at offset 0")

	_, err = Parse(")")
	assert.ErrorIs(t, err, ErrUnexpectedCharacter)
	assert.EqualError(t, err, "unexpected character ')' at offset 0")

	_, err = Parse("a &")
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
	assert.False(t, errors.Is(err, ErrUnexpectedCharacter))
	assert.EqualError(t, err, "unexpected EOF")

	assert.Equal(t, "ErrorKind(9)", ErrorKind(9).String())
	assert.Panics(t, func() { MustParse("a &") })
}

func TestParseVarsWithDigits(t *testing.T) {
	expr := MustParse("a1 & a2 | a1")
	assert.Equal(t, []string{"a1", "a2"}, expr.Vars())
}

func TestParsePrecedenceSemantics(t *testing.T) {
	got := MustParse("a & b | c")
	left := MustParse("(a & b) | c")
	right := MustParse("a & (b | c)")

	for _, vals := range []ast.Assignment{
		{"a": false, "b": false, "c": false},
		{"a": false, "b": false, "c": true},
		{"a": true, "b": false, "c": true},
		{"a": true, "b": true, "c": false},
	} {
		assert.Equal(t, left.Eval(vals), got.Eval(vals), "%v", vals)
	}

	vals := ast.Assignment{"a": false, "b": false, "c": true}
	assert.True(t, got.Eval(vals))
	assert.False(t, right.Eval(vals))
}

func TestRoundTrip(t *testing.T) {
	for _, input := range []string{
		"a",
		"~~a",
		"a & b | c",
		"(a & b) & c",
		"(a | b) & (c | d)",
		"a -> b -> c",
		"(a -> b) -> c",
		"a & b | c -> d",
		"a -> b & c | d",
		"~(a | b) & ~c",
		"(a -> b) & (b -> c) -> a -> c",
		"((a | b) & c | d) -> (a1 -> 0) | 1",
	} {
		expr := MustParse(input)
		rendered := expr.String()
		reparsed, err := Parse(rendered)
		require.NoError(t, err, "input %q rendered as %q", input, rendered)
		assertTree(t, expr, reparsed)
		assert.Equal(t, rendered, reparsed.String())
	}
}

func TestRenderMinimalParens(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"(a & b) | c", "a & b | c"},
		{"a & (b | c)", "a & (b | c)"},
		{"((a))", "a"},
		{"(a & b) & c", "(a & b) & c"},
		{"a & (b & c)", "a & b & c"},
		{"~(a)", "~a"},
		{"a->b", "a -> b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, MustParse(tt.input).String(), "input %q", tt.input)
	}
}

func TestFixupPrecedence(t *testing.T) {
	// Higher or equal precedence on the right: plain node.
	assertTree(t, or(a, and(b, c)), fixupPrecedence(ast.Or, a, and(b, c), nil))
	assertTree(t, and(a, and(b, c)), fixupPrecedence(ast.And, a, and(b, c), nil))
	assertTree(t, and(a, b), fixupPrecedence(ast.And, a, b, nil))

	// Lower precedence on the right: rotate.
	assertTree(t, or(and(a, b), c), fixupPrecedence(ast.And, a, or(b, c), nil))

	// Rotation continues down the left spine.
	assertTree(t,
		implies(or(and(a, b), c), d),
		fixupPrecedence(ast.And, a, implies(or(b, c), d), nil))

	// Grouped nodes are pinned.
	rhs := or(b, c)
	grouped := func(e ast.Expr) bool { return e == rhs }
	assertTree(t, and(a, or(b, c)), fixupPrecedence(ast.And, a, rhs, grouped))

	// A grouped node deeper in the spine stops the rotation there.
	inner := or(b, c)
	grouped = func(e ast.Expr) bool { return e == inner }
	assertTree(t,
		implies(and(a, or(b, c)), d),
		fixupPrecedence(ast.And, a, implies(inner, d), grouped))
}

// Package truthtable enumerates every assignment of an expression's free
// variables and renders the results as an aligned text table.
package truthtable

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.creack.net/gentt/ast"
)

// MaxVars bounds the number of free variables. The table has 2^n rows.
const MaxVars = 24

// ErrTooManyVars is returned by Build when the expression has more than
// MaxVars free variables.
var ErrTooManyVars = errors.New("too many variables")

// Table is the truth table of an expression. It is immutable once built.
type Table struct {
	vars    []string // Sorted; the first variable is the most significant bit.
	title   string
	results []bool
}

// Build evaluates expr for every assignment of its free variables, in binary
// counting order.
func Build(expr ast.Expr) (*Table, error) {
	vars := expr.Vars()
	if len(vars) > MaxVars {
		return nil, fmt.Errorf("%w: %d, the limit is %d", ErrTooManyVars, len(vars), MaxVars)
	}

	t := &Table{
		vars:    vars,
		title:   expr.String(),
		results: make([]bool, 0, 1<<len(vars)),
	}
	// Every row overwrites each entry, so the map is reused.
	vals := make(ast.Assignment, len(vars))
	for row := 0; row < 1<<len(vars); row++ {
		t.fill(vals, row)
		t.results = append(t.results, expr.Eval(vals))
	}
	return t, nil
}

func (t *Table) fill(vals ast.Assignment, row int) {
	n := len(t.vars)
	for i, name := range t.vars {
		vals[name] = row&(1<<(n-1-i)) != 0
	}
}

// Vars returns the column variables in order.
func (t *Table) Vars() []string { return slices.Clone(t.vars) }

// Title returns the rendered expression.
func (t *Table) Title() string { return t.title }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.results) }

// Result returns the value of the expression on the given row.
func (t *Table) Result(row int) bool { return t.results[row] }

// Results returns the result column.
func (t *Table) Results() []bool { return slices.Clone(t.results) }

// Assignment returns the variable values of the given row.
func (t *Table) Assignment(row int) ast.Assignment {
	if row < 0 || row >= len(t.results) {
		panic(fmt.Errorf("row %d out of range [0, %d)", row, len(t.results)))
	}
	vals := make(ast.Assignment, len(t.vars))
	t.fill(vals, row)
	return vals
}

// String renders the table as plain text, without a trailing newline.
func (t *Table) String() string {
	return t.format(plainPainter)
}

// painter decorates table fragments after the layout is computed.
type painter struct {
	header    func(string) string
	separator func(string) string
	truthy    func(string) string
	falsy     func(string) string
}

func identity(s string) string { return s }

var plainPainter = painter{
	header:    identity,
	separator: identity,
	truthy:    identity,
	falsy:     identity,
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func (t *Table) format(p painter) string {
	var sb strings.Builder

	// Cells are " content " joined by '|'.
	widths := make([]int, 0, len(t.vars)+1)
	var header strings.Builder
	for i, name := range t.vars {
		if i > 0 {
			header.WriteByte('|')
		}
		fmt.Fprintf(&header, " %s ", name)
		widths = append(widths, len(name))
	}
	if len(t.vars) > 0 {
		header.WriteByte('|')
	}
	fmt.Fprintf(&header, " %s ", t.title)
	widths = append(widths, len(t.title))
	sb.WriteString(p.header(header.String()))

	total := 0
	for _, w := range widths {
		total += w
	}
	sep := p.separator(strings.Repeat("-", total+3*len(widths)-1))

	for row, result := range t.results {
		sb.WriteByte('\n')
		sb.WriteString(sep)
		sb.WriteByte('\n')
		for i := range t.vars {
			if i > 0 {
				sb.WriteByte('|')
			}
			v := row&(1<<(len(t.vars)-1-i)) != 0
			fmt.Fprintf(&sb, " %-*s ", widths[i], bit(v))
		}
		if len(t.vars) > 0 {
			sb.WriteByte('|')
		}
		paint := p.falsy
		if result {
			paint = p.truthy
		}
		fmt.Fprintf(&sb, " %s ", paint(bit(result)))
	}
	return sb.String()
}

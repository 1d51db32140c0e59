package ast

import (
	"fmt"
	"slices"
	"strings"
)

// Expr is a boolean expression tree. Nodes are never mutated once built and
// each node owns its children.
type Expr interface {
	// String renders the expression with minimal parentheses.
	String() string
	// Vars returns the sorted, deduplicated free variables.
	Vars() []string
	// Eval computes the value of the expression. Every free variable must be
	// present in the assignment.
	Eval(Assignment) bool

	dump(sb *strings.Builder, ctx int)
	collectVars(seen map[string]struct{})
}

// Assignment maps variable names to values.
type Assignment map[string]bool

// ValidName reports whether name matches [a-z][0-9]*.
func ValidName(name string) bool {
	if name == "" || name[0] < 'a' || name[0] > 'z' {
		return false
	}
	for i := 1; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}

type Variable struct {
	Name string
}

// Var returns a variable node. It panics on an invalid name.
func Var(name string) *Variable {
	if !ValidName(name) {
		panic(fmt.Errorf("invalid variable name %q", name))
	}
	return &Variable{Name: name}
}

func (v *Variable) String() string { return render(v) }
func (v *Variable) Vars() []string { return freeVars(v) }

func (v *Variable) Eval(vals Assignment) bool {
	val, ok := vals[v.Name]
	if !ok {
		panic(fmt.Errorf("variable %q not assigned", v.Name))
	}
	return val
}

func (v *Variable) dump(sb *strings.Builder, _ int) { sb.WriteString(v.Name) }

func (v *Variable) collectVars(seen map[string]struct{}) { seen[v.Name] = struct{}{} }

type Constant struct {
	Value bool
}

// Const returns a constant node.
func Const(value bool) *Constant { return &Constant{Value: value} }

func (c *Constant) String() string       { return render(c) }
func (c *Constant) Vars() []string       { return freeVars(c) }
func (c *Constant) Eval(Assignment) bool { return c.Value }

func (*Constant) collectVars(map[string]struct{}) {}

func (c *Constant) dump(sb *strings.Builder, _ int) {
	if c.Value {
		sb.WriteByte('1')
		return
	}
	sb.WriteByte('0')
}

// NotExpr is the negation of its operand.
type NotExpr struct {
	Operand Expr
}

// Not returns the negation of operand.
func Not(operand Expr) *NotExpr {
	if operand == nil {
		panic("nil negation operand")
	}
	return &NotExpr{Operand: operand}
}

func (n *NotExpr) String() string            { return render(n) }
func (n *NotExpr) Vars() []string            { return freeVars(n) }
func (n *NotExpr) Eval(vals Assignment) bool { return !n.Operand.Eval(vals) }

func (n *NotExpr) dump(sb *strings.Builder, _ int) {
	sb.WriteString(NotToken)
	// Only a binary operand can need parentheses here.
	n.Operand.dump(sb, MaxPrecedence)
}

func (n *NotExpr) collectVars(seen map[string]struct{}) { n.Operand.collectVars(seen) }

type BinaryExpr struct {
	Op    BinOp
	Left  Expr
	Right Expr
}

// Binary returns the node left op right.
func Binary(op BinOp, left, right Expr) *BinaryExpr {
	if !op.Valid() {
		panic(fmt.Errorf("unknown binary operator %d", int(op)))
	}
	if left == nil || right == nil {
		panic("nil binary operand")
	}
	return &BinaryExpr{Op: op, Left: left, Right: right}
}

func (b *BinaryExpr) String() string { return render(b) }
func (b *BinaryExpr) Vars() []string { return freeVars(b) }

func (b *BinaryExpr) Eval(vals Assignment) bool {
	return b.Op.Apply(b.Left.Eval(vals), b.Right.Eval(vals))
}

// dump wraps the node in parentheses when it binds looser than its context.
// Chains re-associate to the right when parsed, so the left operand needs
// parentheses already at equal precedence.
func (b *BinaryExpr) dump(sb *strings.Builder, ctx int) {
	p := b.Op.Precedence()
	if p < ctx {
		sb.WriteByte('(')
	}
	b.Left.dump(sb, p+1)
	sb.WriteByte(' ')
	sb.WriteString(b.Op.Token())
	sb.WriteByte(' ')
	b.Right.dump(sb, p)
	if p < ctx {
		sb.WriteByte(')')
	}
}

func (b *BinaryExpr) collectVars(seen map[string]struct{}) {
	b.Left.collectVars(seen)
	b.Right.collectVars(seen)
}

func render(e Expr) string {
	var sb strings.Builder
	e.dump(&sb, 0)
	return sb.String()
}

func freeVars(e Expr) []string {
	seen := map[string]struct{}{}
	e.collectVars(seen)
	vars := make([]string, 0, len(seen))
	for name := range seen {
		vars = append(vars, name)
	}
	slices.Sort(vars)
	return vars
}

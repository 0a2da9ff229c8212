package cexpr

import (
	"strconv"
)

// Eval evaluates the expression as a function of the variable name at z. If
// the expression uses any other variable, the result is a *NameError.
func (e *Expr) Eval(name string, z Complex) (Complex, error) {
	if err := e.check(name); err != nil {
		return Complex{}, err
	}
	return e.n.eval(z), nil
}

// Func returns the expression as a function of the variable name. If the
// expression uses any other variable, the result is a *NameError. The
// returned function is safe to call concurrently.
func (e *Expr) Func(name string) (func(Complex) Complex, error) {
	if err := e.check(name); err != nil {
		return nil, err
	}
	n := e.n
	return func(z Complex) Complex { return n.eval(z) }, nil
}

// check verifies that name is the only variable in the expression.
func (e *Expr) check(name string) error {
	for _, v := range e.names {
		if v != name {
			return &NameError{Name: v, Bound: name}
		}
	}
	return nil
}

// eval computes the node's value with z bound to its one variable. The
// caller must have checked that the tree has no other variable.
func (n *node) eval(z Complex) Complex {
	switch n.kind {
	case nodeLit:
		return n.val
	case nodeVar:
		return z
	case nodeUnary:
		return n.unop.Apply(n.left.eval(z))
	case nodeBinary:
		return n.binop.Apply(n.left.eval(z), n.right.eval(z))
	default:
		panic("cexpr: invalid AST node " + n.kind.String())
	}
}

// Eval is a shortcut to parse a formula and evaluate it as a function of the
// variable name at z.
func Eval(src, name string, z Complex, opts ...ParseOption) (Complex, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return Complex{}, err
	}
	return e.Eval(name, z)
}

// NameError is an error evaluating an expression that uses a variable other
// than the one it is evaluated over.
type NameError struct {
	// Name is the unbound variable.
	Name string
	// Bound is the variable the expression was evaluated over.
	Bound string
}

func (err *NameError) Error() string {
	return "expression is not a function of " + strconv.Quote(err.Bound) + " alone: found variable " + strconv.Quote(err.Name)
}

package cexpr

import (
	"sort"
	"strconv"
)

// UnaryOp is a prefix operator.
type UnaryOp int8

const (
	unopNone UnaryOp = iota
	// OpNeg is negation, -z.
	OpNeg
	// OpLog is the principal natural logarithm.
	OpLog
	// OpExp is the exponential function.
	OpExp
	// OpSin is the sine.
	OpSin
	// OpCos is the cosine.
	OpCos
)

// Apply applies the operator to z.
func (op UnaryOp) Apply(z Complex) Complex {
	switch op {
	case OpNeg:
		return z.Neg()
	case OpLog:
		return z.Log()
	case OpExp:
		return z.Exp()
	case OpSin:
		return z.Sin()
	case OpCos:
		return z.Cos()
	default:
		panic("cexpr: invalid unary operator " + op.String())
	}
}

// String returns the operator's default symbol.
func (op UnaryOp) String() string {
	for _, u := range defaultUnary {
		if u.op == op {
			return u.sym
		}
	}
	return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
}

// BinaryOp is an infix operator.
type BinaryOp int8

const (
	binopNone BinaryOp = iota
	// OpAdd is addition.
	OpAdd
	// OpSub is subtraction.
	OpSub
	// OpMul is multiplication.
	OpMul
	// OpDiv is division.
	OpDiv
	// OpPow is the principal power.
	OpPow
)

// Apply applies the operator to z and w.
func (op BinaryOp) Apply(z, w Complex) Complex {
	switch op {
	case OpAdd:
		return z.Add(w)
	case OpSub:
		return z.Sub(w)
	case OpMul:
		return z.Mul(w)
	case OpDiv:
		return z.Div(w)
	case OpPow:
		return z.Pow(w)
	default:
		panic("cexpr: invalid binary operator " + op.String())
	}
}

// String returns the operator's symbol.
func (op BinaryOp) String() string {
	for _, layer := range [...]*binlayer{&sums, &products, &powers} {
		for k, b := range layer.ops {
			if b == op {
				return layer.syms[k]
			}
		}
	}
	return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
}

// unsym binds a unary operator symbol.
type unsym struct {
	sym string
	op  UnaryOp
}

// defaultUnary is the unary operator table used when parsing with no options.
var defaultUnary = []unsym{
	{"-", OpNeg},
	{"exp", OpExp},
	{"Log", OpLog},
	{"sin", OpSin},
	{"cos", OpCos},
}

// unarytable is a unary symbol table ready for matching: symbols are sorted
// longest first so that no symbol is shadowed by one of its prefixes.
type unarytable struct {
	syms []string
	ops  []UnaryOp
}

func newUnaryTable(binds []unsym) *unarytable {
	v := append([]unsym(nil), binds...)
	sort.SliceStable(v, func(i, j int) bool { return len(v[i].sym) > len(v[j].sym) })
	t := unarytable{
		syms: make([]string, len(v)),
		ops:  make([]UnaryOp, len(v)),
	}
	for k, u := range v {
		t.syms[k] = u.sym
		t.ops[k] = u.op
	}
	return &t
}

// globalunary is the matching table for defaultUnary.
var globalunary = newUnaryTable(defaultUnary)

// binlayer is the set of operators at one binary precedence level.
type binlayer struct {
	syms []string
	ops  []BinaryOp
	// right indicates right-associativity.
	right bool
}

var (
	sums     = binlayer{syms: []string{"+", "-"}, ops: []BinaryOp{OpAdd, OpSub}}
	products = binlayer{syms: []string{"*", "/"}, ops: []BinaryOp{OpMul, OpDiv}}
	powers   = binlayer{syms: []string{"^"}, ops: []BinaryOp{OpPow}, right: true}
)

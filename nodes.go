package cexpr

import (
	"math"
	"strings"
)

// node is a node in the abstract syntax tree of a formula. Trees are built
// once by the parser and never modified afterward.
type node struct {
	kind nodeKind

	val  Complex
	name string

	unop  UnaryOp
	binop BinaryOp

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeLit    // val
	nodeVar    // lookup(name)
	nodeUnary  // unop(left)
	nodeBinary // binop(left, right)
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes the node as fully parenthesized formula text. Parsing the
// result gives a tree that computes the same function.
func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeLit:
		n.fmtlit(b)
	case nodeVar:
		b.WriteString(n.name)
	case nodeUnary:
		b.WriteByte('(')
		b.WriteString(n.unop.String())
		if n.unop != OpNeg {
			b.WriteByte(' ')
		}
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeBinary:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.binop.String())
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		panic("cexpr: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// fmtlit writes a literal in formula syntax, which has no signed numbers and
// no combined real and imaginary literals.
func (n *node) fmtlit(b *strings.Builder) {
	z := n.val
	switch {
	case z.Im == 0:
		fmtreal(b, z.Re, "")
	case z.Re == 0:
		fmtreal(b, z.Im, string(ImagUnit))
	default:
		b.WriteByte('(')
		fmtreal(b, z.Re, "")
		b.WriteString(" + ")
		fmtreal(b, z.Im, string(ImagUnit))
		b.WriteByte(')')
	}
}

// infText is a decimal that overflows to +Inf.
var infText = "1" + strings.Repeat("0", 309)

func fmtreal(b *strings.Builder, x float64, suffix string) {
	switch {
	case math.Signbit(x):
		b.WriteString("(-")
		fmtreal(b, -x, suffix)
		b.WriteByte(')')
	case math.IsInf(x, 1):
		b.WriteString(infText)
		b.WriteString(suffix)
	default:
		b.WriteString(fmtfloat(x))
		b.WriteString(suffix)
	}
}

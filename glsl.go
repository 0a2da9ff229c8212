package cexpr

import (
	"math"
	"strconv"
	"strings"
)

// GLSLInput is the identifier that generated GLSL uses for the bound
// variable. The surrounding shader must declare it as a vec2.
const GLSLInput = "z"

// glslPrec is the number of digits after the point in generated float
// literals.
const glslPrec = 8

// GLSL renders the expression as a function of the variable name in the form
// of a GLSL expression of type vec2, with the variable read from GLSLInput.
// If the expression uses any other variable, the result is a *NameError.
// Addition, subtraction, and negation use native vector operators; every
// other operator is a call to one of c_mul, c_div, c_pow, c_log, c_exp,
// c_sin, or c_cos, which the surrounding shader must define. Package shader
// provides such definitions.
func (e *Expr) GLSL(name string) (string, error) {
	if err := e.check(name); err != nil {
		return "", err
	}
	var b strings.Builder
	e.n.glsl(&b)
	return b.String(), nil
}

func (n *node) glsl(b *strings.Builder) {
	switch n.kind {
	case nodeLit:
		b.WriteString("vec2(")
		b.WriteString(glslfloat(n.val.Re))
		b.WriteString(", ")
		b.WriteString(glslfloat(n.val.Im))
		b.WriteByte(')')
	case nodeVar:
		b.WriteString(GLSLInput)
	case nodeUnary:
		if n.unop == OpNeg {
			b.WriteString("(-")
			n.left.glsl(b)
			b.WriteByte(')')
			return
		}
		b.WriteString(glslUnaryFunc(n.unop))
		b.WriteByte('(')
		n.left.glsl(b)
		b.WriteByte(')')
	case nodeBinary:
		switch n.binop {
		case OpAdd, OpSub:
			b.WriteByte('(')
			n.left.glsl(b)
			b.WriteByte(' ')
			b.WriteString(n.binop.String())
			b.WriteByte(' ')
			n.right.glsl(b)
			b.WriteByte(')')
			return
		}
		b.WriteString(glslBinaryFunc(n.binop))
		b.WriteByte('(')
		n.left.glsl(b)
		b.WriteString(", ")
		n.right.glsl(b)
		b.WriteByte(')')
	default:
		panic("cexpr: invalid AST node " + n.kind.String())
	}
}

// glslUnaryFunc returns the helper function name for a unary operator other
// than negation.
func glslUnaryFunc(op UnaryOp) string {
	switch op {
	case OpLog:
		return "c_log"
	case OpExp:
		return "c_exp"
	case OpSin:
		return "c_sin"
	case OpCos:
		return "c_cos"
	default:
		panic("cexpr: no GLSL function for unary operator " + op.String())
	}
}

// glslBinaryFunc returns the helper function name for a binary operator other
// than addition and subtraction.
func glslBinaryFunc(op BinaryOp) string {
	switch op {
	case OpMul:
		return "c_mul"
	case OpDiv:
		return "c_div"
	case OpPow:
		return "c_pow"
	default:
		panic("cexpr: no GLSL function for binary operator " + op.String())
	}
}

// glslfloat formats a float literal. GLSL has no infinity literal, so
// infinities are written as divisions by zero.
func glslfloat(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "(1.0 / 0.0)"
	case math.IsInf(x, -1):
		return "(-1.0 / 0.0)"
	case math.IsNaN(x):
		return "(0.0 / 0.0)"
	}
	return strconv.FormatFloat(x, 'e', glslPrec, 64)
}

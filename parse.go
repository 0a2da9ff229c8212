package cexpr

import (
	"unicode/utf8"
)

// Sum     = Product { ('+' | '-') Product }
// Product = Power { ('*' | '/') Power }
// Power   = Unary [ '^' Power ]
// Unary   = { unop } Atom
// Atom    = 'i' | num 'i' | num | name | '(' Sum ')'
//
// Whitespace is allowed before and after every operator and bracket.

// Expr is a parsed formula. It is immutable, so it is safe to evaluate or
// render concurrently.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// names is the sorted list of variable names used in the expression.
	names []string
}

// Parse parses a formula. The given options are applied in order. Errors
// resulting from invalid text implement InputError.
func Parse(src string, opts ...ParseOption) (*Expr, error) {
	p := parsectx{}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	p.names = make(map[string]bool)
	p.table()
	l := lex(src)
	n, err := parsesum(l, &p)
	if err != nil {
		return nil, err
	}
	if n == nil {
		l.space()
		return nil, &EmptyExpressionError{Col: l.col(l.off), End: l.peek()}
	}
	l.space()
	if !l.done() {
		if l.peek() == ")" {
			return nil, &BracketError{Col: l.col(l.off), Right: ")"}
		}
		return nil, &TrailingInputError{Col: l.col(l.off), Text: l.rest()}
	}
	ex := Expr{
		n:     n,
		names: make([]string, 0, len(p.names)),
	}
	for k := range p.names {
		ex.names = append(ex.names, k)
	}
	sortstrs(ex.names)
	return &ex, nil
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// peek returns the next rune of input as a string, or the empty string at the
// end of input.
func (l *lexer) peek() string {
	if l.done() {
		return ""
	}
	_, sz := utf8.DecodeRuneInString(l.rest())
	return l.src[l.off : l.off+sz]
}

// A level parses one precedence level. If the input does not start with a
// term at that level, the result is nil with no error and nothing is
// consumed; callers must create an error where a term is required.
type level func(l *lexer, p *parsectx) (*node, error)

func parsesum(l *lexer, p *parsectx) (*node, error) {
	return parsebinary(l, p, &sums, parseproduct)
}

func parseproduct(l *lexer, p *parsectx) (*node, error) {
	return parsebinary(l, p, &products, parsepower)
}

func parsepower(l *lexer, p *parsectx) (*node, error) {
	return parsebinary(l, p, &powers, parseunary)
}

// parsebinary parses one or more operands joined by the operators of layer.
// Left-associative layers loop; right-associative ones recurse on the right
// operand.
func parsebinary(l *lexer, p *parsectx, layer *binlayer, operand level) (*node, error) {
	n, err := operand(l, p)
	if err != nil || n == nil {
		return n, err
	}
	for {
		mark := l.off
		l.space()
		k, ok := l.symbol(layer.syms)
		if !ok {
			l.off = mark
			return n, nil
		}
		l.space()
		var rhs *node
		if layer.right {
			rhs, err = parsebinary(l, p, layer, operand)
		} else {
			rhs, err = operand(l, p)
		}
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			return nil, &EmptyExpressionError{Col: l.col(l.off), End: l.peek()}
		}
		n = &node{kind: nodeBinary, binop: layer.ops[k], left: n, right: rhs}
		if layer.right {
			return n, nil
		}
	}
}

// parseunary parses any number of prefix operators followed by an atom. The
// operator nearest the atom binds tightest.
func parseunary(l *lexer, p *parsectx) (*node, error) {
	start := l.off
	l.space()
	var ops []UnaryOp
	for {
		k, ok := l.symbol(p.unary.syms)
		if !ok {
			break
		}
		ops = append(ops, p.unary.ops[k])
		l.space()
	}
	n, err := parseatom(l, p)
	if err != nil {
		return nil, err
	}
	if n == nil {
		if len(ops) == 0 {
			l.off = start
			return nil, nil
		}
		return nil, &EmptyExpressionError{Col: l.col(l.off), End: l.peek()}
	}
	for k := len(ops) - 1; k >= 0; k-- {
		n = &node{kind: nodeUnary, unop: ops[k], left: n}
	}
	return n, nil
}

// parseatom parses a literal, a variable, or a parenthesized sum.
func parseatom(l *lexer, p *parsectx) (*node, error) {
	start := l.off
	l.space()
	if l.accept("(") {
		n, err := parsesum(l, p)
		if err != nil {
			return nil, err
		}
		l.space()
		if n == nil {
			return nil, &EmptyExpressionError{Col: l.col(l.off), End: l.peek()}
		}
		if !l.accept(")") {
			return nil, &BracketError{Col: l.col(l.off), Left: "(", Right: l.peek()}
		}
		return n, nil
	}
	n, ok := l.primitive()
	if !ok {
		l.off = start
		return nil, nil
	}
	if n.kind == nodeVar {
		p.names[n.name] = true
	}
	return n, nil
}

// Vars returns the variable names used in the expression, sorted.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// String renders the expression as fully parenthesized formula text. Parsing
// the result with the default options gives an expression that computes the
// same function.
func (e *Expr) String() string {
	return e.n.String()
}

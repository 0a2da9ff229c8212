package cexpr

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// lexer is a cursor over formula text. Every recognizer either consumes its
// entire match and reports true, or consumes nothing and reports false.
type lexer struct {
	src string
	off int
}

func lex(src string) *lexer {
	return &lexer{src: src}
}

// rest returns the unscanned input.
func (l *lexer) rest() string {
	return l.src[l.off:]
}

// done reports whether the whole input has been scanned.
func (l *lexer) done() bool {
	return l.off >= len(l.src)
}

// col returns the 1-based rune column of byte offset off.
func (l *lexer) col(off int) int {
	return utf8.RuneCountInString(l.src[:off]) + 1
}

// space skips whitespace.
func (l *lexer) space() {
	for l.off < len(l.src) {
		r, sz := utf8.DecodeRuneInString(l.src[l.off:])
		if !unicode.IsSpace(r) {
			return
		}
		l.off += sz
	}
}

// accept scans sym if the input continues with it.
func (l *lexer) accept(sym string) bool {
	if !strings.HasPrefix(l.rest(), sym) {
		return false
	}
	l.off += len(sym)
	return true
}

// digits scans a run of ASCII digits.
func (l *lexer) digits() bool {
	k := l.off
	for k < len(l.src) && '0' <= l.src[k] && l.src[k] <= '9' {
		k++
	}
	if k == l.off {
		return false
	}
	l.off = k
	return true
}

// number scans an unsigned decimal, \d+(\.\d+)?. A dot not followed by a
// digit is not part of the number. Decimals too large for float64 become
// +Inf.
func (l *lexer) number() (float64, bool) {
	start := l.off
	if !l.digits() {
		return 0, false
	}
	mark := l.off
	if !l.accept(".") || !l.digits() {
		l.off = mark
	}
	x, err := strconv.ParseFloat(l.src[start:l.off], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// The text is always valid syntax, and ParseFloat already gives ±Inf
		// on overflow.
		panic("cexpr: unexpected number error: " + err.Error())
	}
	return x, true
}

// imagUnit scans the bare imaginary unit.
func (l *lexer) imagUnit() bool {
	return l.accept(string(ImagUnit))
}

// imaginary scans a number immediately followed by the imaginary unit.
func (l *lexer) imaginary() (float64, bool) {
	start := l.off
	x, ok := l.number()
	if !ok || !l.imagUnit() {
		l.off = start
		return 0, false
	}
	return x, true
}

// variable scans a variable name: one lowercase ASCII letter other than the
// imaginary unit.
func (l *lexer) variable() (string, bool) {
	if l.done() {
		return "", false
	}
	c := l.src[l.off]
	if c < 'a' || c > 'z' || c == ImagUnit {
		return "", false
	}
	l.off++
	return l.src[l.off-1 : l.off], true
}

// primitive scans a literal or variable, in order of preference: the bare
// imaginary unit, an imaginary literal, a real literal, a variable name.
func (l *lexer) primitive() (*node, bool) {
	if l.imagUnit() {
		return &node{kind: nodeLit, val: Complex{0, 1}}, true
	}
	if y, ok := l.imaginary(); ok {
		return &node{kind: nodeLit, val: Complex{0, y}}, true
	}
	if x, ok := l.number(); ok {
		return &node{kind: nodeLit, val: Complex{x, 0}}, true
	}
	if name, ok := l.variable(); ok {
		return &node{kind: nodeVar, name: name}, true
	}
	return nil, false
}

// symbol scans the first of syms that the input continues with. Callers
// order syms so that no symbol is preceded by a prefix of itself.
func (l *lexer) symbol(syms []string) (int, bool) {
	for k, sym := range syms {
		if l.accept(sym) {
			return k, true
		}
	}
	return -1, false
}

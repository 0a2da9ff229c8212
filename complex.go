package cexpr

import (
	"math"
	"strconv"
)

// ImagUnit is the letter denoting the imaginary unit. It is never a variable.
const ImagUnit = 'i'

// Complex is a complex number with double-precision parts. All operations
// return new values; no operation normalizes signed zeros, infinities, or
// NaNs.
type Complex struct {
	Re, Im float64
}

// FromPolar creates a complex number from its modulus and angle.
func FromPolar(abs, arg float64) Complex {
	s, c := math.Sincos(arg)
	return Complex{abs * c, abs * s}
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{z.Re + w.Re, z.Im + w.Im}
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{z.Re - w.Re, z.Im - w.Im}
}

// Mul returns z * w.
func (z Complex) Mul(w Complex) Complex {
	return Complex{z.Re*w.Re - z.Im*w.Im, z.Re*w.Im + z.Im*w.Re}
}

// Div returns z / w. Division by zero is not guarded; the result has
// infinite or NaN parts.
func (z Complex) Div(w Complex) Complex {
	d := w.Re*w.Re + w.Im*w.Im
	return Complex{(z.Re*w.Re + z.Im*w.Im) / d, (z.Im*w.Re - z.Re*w.Im) / d}
}

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{-z.Re, -z.Im}
}

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex {
	return Complex{z.Re, -z.Im}
}

// Abs returns the modulus of z.
func (z Complex) Abs() float64 {
	return math.Hypot(z.Re, z.Im)
}

// Arg returns the angle of z in (-π, π], with the conventions of math.Atan2.
func (z Complex) Arg() float64 {
	return math.Atan2(z.Im, z.Re)
}

// Log returns the principal natural logarithm of z. Log of zero is
// (-Inf, Arg(z)), i.e. (-Inf, 0) for positive zero.
func (z Complex) Log() Complex {
	return Complex{math.Log(z.Abs()), z.Arg()}
}

// Exp returns e^z.
func (z Complex) Exp() Complex {
	return FromPolar(math.Exp(z.Re), z.Im)
}

// Pow returns the principal value of z^w, computed as exp(w log z).
func (z Complex) Pow(w Complex) Complex {
	return w.Mul(z.Log()).Exp()
}

// Sin returns the sine of z, (e^iz - e^-iz) / 2i.
func (z Complex) Sin() Complex {
	iz := Complex{-z.Im, z.Re}
	return iz.Exp().Sub(iz.Neg().Exp()).Div(Complex{0, 2})
}

// Cos returns the cosine of z, (e^iz + e^-iz) / 2.
func (z Complex) Cos() Complex {
	iz := Complex{-z.Im, z.Re}
	return iz.Exp().Add(iz.Neg().Exp()).Div(Complex{2, 0})
}

// Equal reports whether z and w have exactly equal parts.
func (z Complex) Equal(w Complex) bool {
	return z.Re == w.Re && z.Im == w.Im
}

// String formats z so that ParseComplex returns an equal value for any finite
// z. Purely real numbers are written without an imaginary part, and purely
// imaginary ones without a real part.
func (z Complex) String() string {
	if z.Im == 0 {
		return fmtfloat(z.Re)
	}
	if z.Re == 0 {
		return fmtfloat(z.Im) + string(ImagUnit)
	}
	return fmtfloat(z.Re) + "+" + fmtfloat(z.Im) + string(ImagUnit)
}

// fmtfloat writes the shortest decimal that parses back to x, never using an
// exponent.
func fmtfloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// ParseComplex parses a complex number in the format produced by
// Complex.String, or a bare i. Whitespace is allowed around the + separating
// the real and imaginary parts and nowhere else.
func ParseComplex(s string) (Complex, error) {
	l := lex(s)
	z, ok := l.complexLiteral()
	if !ok || !l.done() {
		return Complex{}, &LiteralError{Text: s}
	}
	return z, nil
}

// complexLiteral scans a signed real, a signed imaginary, a sum of the two,
// or a bare imaginary unit.
func (l *lexer) complexLiteral() (Complex, bool) {
	start := l.off
	if l.imagUnit() {
		return Complex{0, 1}, true
	}
	re, ok := l.signedNumber()
	if !ok {
		return Complex{}, false
	}
	if l.accept(string(ImagUnit)) {
		return Complex{0, re}, true
	}
	mark := l.off
	l.space()
	if !l.accept("+") {
		l.off = mark
		return Complex{re, 0}, true
	}
	l.space()
	im, ok := l.signedNumber()
	if !ok || !l.accept(string(ImagUnit)) {
		l.off = start
		return Complex{}, false
	}
	return Complex{re, im}, true
}

// signedNumber scans a number with an optional leading minus sign.
func (l *lexer) signedNumber() (float64, bool) {
	start := l.off
	neg := l.accept("-")
	x, ok := l.number()
	if !ok {
		l.off = start
		return 0, false
	}
	if neg {
		x = -x
	}
	return x, true
}

// LiteralError is an error indicating text that is not a complex literal.
type LiteralError struct {
	// Text is the complete text that failed to parse.
	Text string
}

func (err *LiteralError) Error() string {
	return "not a complex number: " + strconv.Quote(err.Text)
}

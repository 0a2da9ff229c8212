// Package cexpr parses formulas over one complex variable and turns them into
// functions, either evaluated directly or rendered as GLSL.
//
// Formulas are written with the usual operators + - * / ^, the prefix
// operators - exp Log sin cos, and parentheses. "z^2 + 1", "exp(Log z)", and
// "sin z / (z - 2i)" are all formulas. Numbers have no sign or exponent, and
// an i immediately following a number makes it imaginary; i alone is the
// imaginary unit, so it can never be a variable. Variables are single
// lowercase letters. There is no implicit multiplication: "2z" and "2 z" are
// errors, "2*z" is not.
//
// Exponentiation is right-associative and binds more loosely than prefix
// operators, so "z^2^3" is "z^(2^3)" and "-z^2" is "(-z)^2".
//
// A parsed Expr is immutable. Its Func method gives a function that is safe
// to call from many goroutines at once, and its GLSL method gives a vec2
// expression to interpolate into a shader that defines the helpers in package
// shader.
//
package cexpr

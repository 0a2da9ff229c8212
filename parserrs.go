package cexpr

import "strconv"

// BracketError is an error indicating an unclosed or unopened parenthesis.
// It implements InputError.
type BracketError struct {
	// Col is the position where the close bracket was expected, or of the
	// unmatched close bracket.
	Col int
	// Left is the opening bracket, or empty for a close bracket with no
	// opening bracket.
	Left string
	// Right is the text found where the close bracket was expected, or the
	// unmatched close bracket itself. It is empty at the end of input.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	if err.Right == "" {
		return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
	}
	return errpos(err.Col, "expected close bracket for "+err.Left+" but found "+strconv.Quote(err.Right))
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating that no subexpression was found
// where one is required: in empty input, after an operator, or inside
// parentheses. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position where the subexpression should have started.
	Col int
	// End is the text found there instead, or empty at the end of input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// TrailingInputError is an error indicating text following a complete
// formula. It implements InputError.
type TrailingInputError struct {
	// Col is the position of the first unparsed rune.
	Col int
	// Text is the unparsed remainder of the input.
	Text string
}

func (err *TrailingInputError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Text)+" after expression")
}

func (err *TrailingInputError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid formula text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the text that caused the error.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*TrailingInputError)(nil)
)

package calculator

import (
	"strconv"
)

// OperatorError is an error indicating an operator token that is not
// understood by the parser, e.g. a binary operator where a term is expected.
// It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the parenthesis, or of the end of input.
	Col int
	// Left and Right are the unmatched parentheses; one of them is empty.
	Left  string
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close paren with no open paren")
	}
	return errpos(err.Col, "open paren with no close paren")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// SeparatorError is an error indicating a comma outside a function argument
// list, or one that separates nothing. It implements InputError.
type SeparatorError struct {
	// Col is the position of the separator.
	Col int
	// Sep is the separator.
	Sep string
}

func (err *SeparatorError) Error() string {
	return errpos(err.Col, "invalid occurrence of separator "+strconv.Quote(err.Sep))
}

func (err *SeparatorError) Pos() int {
	return err.Col
}

// AdjacencyError is an error indicating two adjacent terms with no operator
// between them, e.g. "2 3" or "2(3)". It implements InputError.
type AdjacencyError struct {
	// Col is the position of the second term.
	Col int
	// Token is the text of the second term's first token.
	Token string
}

func (err *AdjacencyError) Error() string {
	return errpos(err.Col, "missing operator before "+strconv.Quote(err.Token))
}

func (err *AdjacencyError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
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

// LimitError is an error indicating that an input exceeded a parsing limit.
// It implements InputError.
type LimitError struct {
	// Col is the position at which the limit was exceeded.
	Col int
	// What names the limit, "input length" or "nesting depth".
	What string
	// Max is the limit's value.
	Max int
}

func (err *LimitError) Error() string {
	return errpos(err.Col, err.What+" exceeds limit of "+strconv.Itoa(err.Max))
}

func (err *LimitError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function call with a number of arguments
// the function does not accept.
type CallError struct {
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments the call supplied.
	Len int
}

func (err *CallError) Error() string {
	return "cannot call " + err.Func + " with " + strconv.Itoa(err.Len) + " arguments"
}

// NameError is an error from a lookup of a name that is not in the registry.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "unknown name: " + strconv.Quote(err.Name)
}

// DomainError is an error from an operator or function applied to arguments
// outside its mathematical domain, including operations on finite arguments
// that would produce an infinite or undefined result.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Func is a name identifying the function or operator.
	Func string
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from input that does not parse implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*AdjacencyError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LimitError)(nil)
	_ InputError = (*LexError)(nil)
)

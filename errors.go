package rpn

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// Kinds of errors. Every error returned by this package unwraps to exactly one
// of these, so callers can use errors.Is to classify failures.
var (
	// ErrInvalidToken is a literal that is neither a number nor a name, or a
	// token that cannot appear in a postfix stream being evaluated.
	ErrInvalidToken = errors.New("invalid token")
	// ErrStackUnderflow is an operator with fewer than two operands.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrMalformed is an evaluation which ends with other than one value.
	ErrMalformed = errors.New("malformed expression")
	// ErrUnbalanced is an unmatched parenthesis.
	ErrUnbalanced = errors.New("unbalanced parentheses")
	// ErrArity is a function definition without exactly one variable.
	ErrArity = errors.New("function must have exactly one variable")
	// ErrDomain is an arbitrary-precision operation with no real result.
	ErrDomain = errors.New("outside domain")
)

// TokenError is an error indicating a literal that the tokenizer could not
// classify.
type TokenError struct {
	// Text is the entire literal.
	Text string
	// Col is the 1-based rune position of the start of the literal.
	Col int
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
}

func (err *TokenError) Unwrap() error {
	return ErrInvalidToken
}

// UnexpectedTokenError is an error indicating a parenthesis or variable in a
// postfix stream given to an evaluator.
type UnexpectedTokenError struct {
	// Tok is the offending token.
	Tok Token
	// Index is the 0-based position of Tok in the postfix stream.
	Index int
}

func (err *UnexpectedTokenError) Error() string {
	what := "unexpected token "
	switch err.Tok.Kind {
	case KindVar:
		what = "unbound variable "
	case KindOpen, KindClose:
		what = "unmatched parenthesis "
	}
	return "token " + strconv.Itoa(err.Index) + ": " + what + strconv.Quote(err.Tok.String())
}

func (err *UnexpectedTokenError) Unwrap() error {
	return ErrInvalidToken
}

// UnderflowError is an error indicating an operator without two operands.
type UnderflowError struct {
	// Op is the operator that was reduced.
	Op Op
	// Index is the 0-based position of the operator in the postfix stream.
	Index int
	// Have is the number of values that were available.
	Have int
}

func (err *UnderflowError) Error() string {
	return "token " + strconv.Itoa(err.Index) + ": operator " + err.Op.String() + " needs 2 operands, have " + strconv.Itoa(err.Have)
}

func (err *UnderflowError) Unwrap() error {
	return ErrStackUnderflow
}

// MalformedError is an error indicating that evaluation finished with no
// value or with more than one.
type MalformedError struct {
	// Values is the number of values left after evaluation.
	Values int
}

func (err *MalformedError) Error() string {
	if err.Values == 0 {
		return "no expression"
	}
	return "malformed expression: " + strconv.Itoa(err.Values) + " values without operators"
}

func (err *MalformedError) Unwrap() error {
	return ErrMalformed
}

// BracketError is an error indicating an unmatched parenthesis.
type BracketError struct {
	// Index is the 0-based position of the parenthesis in the infix stream.
	Index int
	// Close indicates a close parenthesis with no open parenthesis. If it is
	// false, the error is an open parenthesis that was never closed.
	Close bool
}

func (err *BracketError) Error() string {
	if err.Close {
		return "token " + strconv.Itoa(err.Index) + ": close bracket ) with no open bracket"
	}
	return "token " + strconv.Itoa(err.Index) + ": open bracket ( with no close bracket"
}

func (err *BracketError) Unwrap() error {
	return ErrUnbalanced
}

// ArityError is an error indicating a function definition that does not use
// exactly one variable name.
type ArityError struct {
	// Vars is the sorted list of distinct names used.
	Vars []string
}

func (err *ArityError) Error() string {
	if len(err.Vars) == 0 {
		return "function has no variable"
	}
	return "function has " + strconv.Itoa(len(err.Vars)) + " variables: " + strings.Join(err.Vars, ", ")
}

func (err *ArityError) Unwrap() error {
	return ErrArity
}

// DomainError is an error returned when an arbitrary-precision operation has
// no real result.
type DomainError struct {
	// X and Y are the operands. They are nil if the error is a NaN bound into
	// the expression rather than the result of an operation.
	X, Y *big.Float
	// Op is the operator.
	Op Op
}

func (err *DomainError) Error() string {
	if err.X == nil || err.Y == nil {
		return "NaN " + ErrDomain.Error()
	}
	return err.X.String() + " " + err.Op.String() + " " + err.Y.String() + " " + ErrDomain.Error()
}

func (err *DomainError) Unwrap() error {
	return ErrDomain
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

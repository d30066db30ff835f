package rpn

import (
	"github.com/edwingeng/deque"
)

// Eval evaluates a postfix stream. Each value is pushed onto a stack, and
// each operator pops its right operand, then its left operand, and pushes the
// result. Exactly one value must remain at the end.
//
// Parentheses and variables are *UnexpectedTokenError; bind variables with
// Bind first. Division by zero and powers with no real result are not errors:
// they produce infinities or NaN following IEEE 754.
func Eval(postfix Stream) (float64, error) {
	stack := deque.NewDeque()
	for i, tok := range postfix {
		switch tok.Kind {
		case KindValue:
			stack.PushBack(tok.Num)
		case KindOp:
			if n := stack.Len(); n < 2 {
				return 0, &UnderflowError{Op: tok.Op, Index: i, Have: n}
			}
			r := stack.PopBack().(float64)
			l := stack.PopBack().(float64)
			stack.PushBack(tok.Op.Apply(l, r))
		case KindVar, KindOpen, KindClose:
			return 0, &UnexpectedTokenError{Tok: tok, Index: i}
		default:
			panic("rpn: unknown token: " + tok.String())
		}
	}
	if stack.Len() != 1 {
		return 0, &MalformedError{Values: stack.Len()}
	}
	return stack.PopBack().(float64), nil
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ParseOption) (float64, error) {
	p, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return Eval(p)
}

// Bind returns a copy of postfix with every variable replaced by x. All
// variables receive the same value regardless of their names. The result
// never contains variables.
func Bind(postfix Stream, x float64) Stream {
	return bind(postfix, Value(x))
}

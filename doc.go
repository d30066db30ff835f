// Package rpn implements a floating-point calculator that converts infix
// expressions to postfix (reverse Polish) order and evaluates them with a
// stack.
//
// Evaluation happens in stages, each a pure function of its input: Tokenize
// splits text into numbers, variable names, operators, and parentheses;
// ToPostfix reorders the tokens by precedence; and Eval reduces the postfix
// tokens to a number. The operators are + - * / ^, with ^ binding tightest
// and * / binding tighter than + -. There is no unary minus.
//
// Bind substitutes a number for the variables in a postfix stream, so an
// expression can be parsed once and evaluated for many inputs. Func wraps
// that for expressions in exactly one variable.
//
package rpn

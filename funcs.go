package rpn

import (
	"math/big"
)

// Func is a function of one real variable, defined by an expression in that
// variable. A Func is never modified after Define returns it, so it is safe to
// call concurrently. To change a function, define a new one.
type Func struct {
	name string
	body Stream
}

// Define parses src as the body of a function. The expression must use
// exactly one distinct variable name, which becomes the parameter; otherwise
// the error is an *ArityError.
func Define(src string, opts ...ParseOption) (*Func, error) {
	p, err := Parse(src, opts...)
	if err != nil {
		return nil, err
	}
	return FuncOf(p)
}

// FuncOf creates a function from a postfix stream that uses exactly one
// distinct variable name. The stream is copied.
func FuncOf(postfix Stream) (*Func, error) {
	names := Vars(postfix)
	if len(names) != 1 {
		return nil, &ArityError{Vars: names}
	}
	return &Func{name: names[0], body: append(Stream(nil), postfix...)}, nil
}

// Call evaluates the function at x.
func (f *Func) Call(x float64) (float64, error) {
	return Eval(Bind(f.body, x))
}

// CallBig evaluates the function at x with prec bits of precision.
func (f *Func) CallBig(x *big.Float, prec uint) (*big.Float, error) {
	v, _ := x.Float64()
	arg := Token{Kind: KindValue, Num: v, Text: x.Text('g', -1)}
	return EvalBig(bind(f.body, arg), prec)
}

// Var returns the name of the function's parameter.
func (f *Func) Var() string {
	return f.name
}

// Postfix returns a copy of the function body in postfix order.
func (f *Func) Postfix() Stream {
	return append(Stream(nil), f.body...)
}

// String formats the function like "f(x) = x x * 1 +".
func (f *Func) String() string {
	return "f(" + f.name + ") = " + f.body.String()
}

// bind replaces every variable in postfix with arg.
func bind(postfix Stream, arg Token) Stream {
	r := make(Stream, len(postfix))
	for i, tok := range postfix {
		if tok.Kind == KindVar {
			tok = arg
		}
		r[i] = tok
	}
	return r
}

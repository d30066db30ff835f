package rpn

import (
	"math"
	"math/big"

	"github.com/edwingeng/deque"
	"github.com/zephyrtronium/bigfloat"
)

// DefaultPrec is the precision EvalBig uses when given 0.
const DefaultPrec = 64

// EvalBig evaluates a postfix stream like Eval, but with arbitrary-precision
// floats of prec bits. Numbers produced by Tokenize are parsed from their
// text at full precision.
//
// Because big.Float has no NaN, operations without a real result, such as 0/0
// or a negative number to a non-integer power, are a *DomainError. Division of
// a nonzero number by zero is an infinity, as with Eval.
func EvalBig(postfix Stream, prec uint) (*big.Float, error) {
	if prec == 0 {
		prec = DefaultPrec
	}
	nums := make(map[string]*big.Float)
	stack := deque.NewDeque()
	for i, tok := range postfix {
		switch tok.Kind {
		case KindValue:
			x, err := bignum(nums, tok, prec)
			if err != nil {
				return nil, err
			}
			stack.PushBack(x)
		case KindOp:
			if n := stack.Len(); n < 2 {
				return nil, &UnderflowError{Op: tok.Op, Index: i, Have: n}
			}
			r := stack.PopBack().(*big.Float)
			l := stack.PopBack().(*big.Float)
			z, err := bigop(tok.Op, new(big.Float).SetPrec(prec), l, r)
			if err != nil {
				return nil, err
			}
			stack.PushBack(z)
		case KindVar, KindOpen, KindClose:
			return nil, &UnexpectedTokenError{Tok: tok, Index: i}
		default:
			panic("rpn: unknown token: " + tok.String())
		}
	}
	if stack.Len() != 1 {
		return nil, &MalformedError{Values: stack.Len()}
	}
	return stack.PopBack().(*big.Float), nil
}

// bignum gets a number from a value token, parsing its text if it has any.
// Parsed numbers are cached in nums and must not be modified.
func bignum(nums map[string]*big.Float, tok Token, prec uint) (*big.Float, error) {
	if tok.Text == "" {
		if math.IsNaN(tok.Num) {
			return nil, &DomainError{}
		}
		return new(big.Float).SetPrec(prec).SetFloat64(tok.Num), nil
	}
	if r := nums[tok.Text]; r != nil {
		return r, nil
	}
	r, _, err := new(big.Float).SetPrec(prec).Parse(tok.Text, 10)
	if err != nil {
		// Text from Tokenize is always a valid float64 literal, so this only
		// happens for tokens built by hand.
		if math.IsNaN(tok.Num) {
			return nil, &DomainError{}
		}
		r = new(big.Float).SetPrec(prec).SetFloat64(tok.Num)
	}
	nums[tok.Text] = r
	return r, nil
}

// bigop sets z to l op r and returns it. l and r are not modified.
func bigop(op Op, z, l, r *big.Float) (_ *big.Float, err error) {
	defer func() {
		e := recover()
		if e == nil {
			return
		}
		if _, ok := e.(big.ErrNaN); !ok {
			panic(e)
		}
		err = &DomainError{X: l, Y: r, Op: op}
	}()
	switch op {
	case Add:
		return z.Add(l, r), nil
	case Sub:
		return z.Sub(l, r), nil
	case Mul:
		return z.Mul(l, r), nil
	case Div:
		return z.Quo(l, r), nil
	case Pow:
		return bigpow(z, l, r)
	default:
		panic("rpn: apply invalid operator " + op.String())
	}
}

// bigpow sets z to x^y.
func bigpow(z, x, y *big.Float) (*big.Float, error) {
	if x.Sign() == 0 || x.IsInf() || y.Sign() == 0 || y.IsInf() {
		// bigfloat.Pow needs a finite nonzero base and exponent. The results
		// in these cases are zero, one, or infinite, so float64 is exact.
		xf, _ := x.Float64()
		yf, _ := y.Float64()
		v := math.Pow(xf, yf)
		if math.IsNaN(v) {
			return nil, &DomainError{X: x, Y: y, Op: Pow}
		}
		return z.SetFloat64(v), nil
	}
	if !x.Signbit() {
		return z.Set(bigfloat.Pow(new(big.Float).SetPrec(z.Prec()), x, y)), nil
	}
	if !y.IsInt() {
		return nil, &DomainError{X: x, Y: y, Op: Pow}
	}
	// Pow returns its result, which is not always its first argument.
	z.Set(bigfloat.Pow(new(big.Float).SetPrec(z.Prec()), new(big.Float).Abs(x), y))
	// y is odd if halving it leaves a fraction.
	if !new(big.Float).SetMantExp(y, -1).IsInt() {
		z.Neg(z)
	}
	return z, nil
}

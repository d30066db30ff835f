package main

import (
	"fmt"

	"github.com/zephyrtronium/rpn"
)

// calc holds the evaluation settings shared by the interactive session and
// the HTTP handler.
type calc struct {
	opts []rpn.ParseOption
	// prec is the precision in bits, or 0 to evaluate with float64.
	prec uint
	// verb formats results.
	verb string
}

// eval parses and evaluates an expression.
func (c *calc) eval(src string) (string, error) {
	p, err := rpn.Parse(src, c.opts...)
	if err != nil {
		return "", err
	}
	return c.evalPostfix(p)
}

func (c *calc) evalPostfix(p rpn.Stream) (string, error) {
	if c.prec == 0 {
		r, err := rpn.Eval(p)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(c.verb, r), nil
	}
	r, err := rpn.EvalBig(p, c.prec)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(c.verb, r), nil
}

// call evaluates arg as an expression and applies f to the result.
func (c *calc) call(f *rpn.Func, arg string) (string, error) {
	p, err := rpn.Parse(arg, c.opts...)
	if err != nil {
		return "", fmt.Errorf("argument: %w", err)
	}
	if c.prec == 0 {
		x, err := rpn.Eval(p)
		if err != nil {
			return "", fmt.Errorf("argument: %w", err)
		}
		r, err := f.Call(x)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(c.verb, r), nil
	}
	x, err := rpn.EvalBig(p, c.prec)
	if err != nil {
		return "", fmt.Errorf("argument: %w", err)
	}
	r, err := f.CallBig(x, c.prec)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(c.verb, r), nil
}
